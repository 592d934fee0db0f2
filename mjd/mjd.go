// Package mjd converts between Modified Julian Day numbers and calendar
// dates. The file pipeline uses it to derive a dataset-wide observation
// date from per-table DATE-OBS values.
//
// The conversion uses the Fliegel & Van Flandern integer algorithm over the
// proleptic Gregorian calendar. MJD 0 is 1858-11-17.
package mjd

import (
	"fmt"

	"github.com/interferolib/oifits/errors"
)

// Offset between Julian Day Number (at noon) and MJD.
const jdnOffset = 2400001

// FromDate returns the MJD for the given calendar date.
func FromDate(year, month, day int) int64 {
	a := int64(14-month) / 12
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	jdn := int64(day) + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return jdn - jdnOffset
}

// ToDate returns the calendar date for the given MJD.
func ToDate(mjd int64) (year, month, day int) {
	j := mjd + jdnOffset
	a := j + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day = int(e - (153*m+2)/5 + 1)
	month = int(m + 3 - 12*(m/10))
	year = int(100*b + d - 4800 + m/10)
	return year, month, day
}

// ParseDate converts a DATE-OBS style "YYYY-MM-DD" string to an MJD.
// Trailing content after the date (e.g. a time suffix) is ignored, matching
// the tolerant parsing applied to legacy files.
func ParseDate(s string) (int64, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	var year, month, day int
	n, err := fmt.Sscanf(s, "%4d-%2d-%2d", &year, &month, &day)
	if err != nil || n != 3 {
		return 0, errors.Newf("unparseable date %q", s)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, errors.Newf("unparseable date %q", s)
	}
	return FromDate(year, month, day), nil
}

// FormatDate renders an MJD as "YYYY-MM-DD".
func FormatDate(mjd int64) string {
	year, month, day := ToDate(mjd)
	return fmt.Sprintf("%4d-%02d-%02d", year, month, day)
}
