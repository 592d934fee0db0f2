package oifits

import (
	"fmt"

	"github.com/interferolib/oifits/errors"
	"github.com/interferolib/oifits/logger"
	"github.com/interferolib/oifits/mjd"
)

// WriteFile writes every table of the dataset to a new file at path,
// driving the supplied tabular I/O layer. The write order is fixed:
// header, target catalog (always, even empty), then ArrayTables,
// WavelengthTables, CorrTables, PolarTables, each numbered sequentially
// from 1, then measurement tables grouped visibility, squared-visibility,
// closure-triple, flux.
//
// The first I/O error aborts the remaining writes and is returned; the
// destination contents are then indeterminate. An existing path is never
// overwritten.
func WriteFile(tio TableIO, path string, ds *Dataset) error {
	if err := tio.Create(path); err != nil {
		return failOp("create", path, err)
	}
	if err := writeTables(tio, ds); err != nil {
		tio.Close()
		return failOp("write", path, err)
	}
	if err := tio.Close(); err != nil {
		return failOp("close", path, err)
	}
	return nil
}

func writeTables(tio TableIO, ds *Dataset) error {
	if err := tio.WriteHeader(ds.Header); err != nil {
		return err
	}
	if err := tio.WriteTargets(ds.Targets); err != nil {
		return err
	}
	for i, a := range ds.Arrays {
		if err := tio.WriteArray(a, i+1); err != nil {
			return err
		}
	}
	for i, w := range ds.Wavelengths {
		if err := tio.WriteWavelength(w, i+1); err != nil {
			return err
		}
	}
	for i, c := range ds.Corrs {
		if err := tio.WriteCorr(c, i+1); err != nil {
			return err
		}
	}
	for i, p := range ds.Polars {
		if err := tio.WritePolar(p, i+1); err != nil {
			return err
		}
	}
	for i, v := range ds.Vis {
		if err := tio.WriteVis(v, i+1); err != nil {
			return err
		}
	}
	for i, v := range ds.Vis2 {
		if err := tio.WriteVis2(v, i+1); err != nil {
			return err
		}
	}
	for i, t := range ds.T3 {
		if err := tio.WriteT3(t, i+1); err != nil {
			return err
		}
	}
	for i, f := range ds.Flux {
		if err := tio.WriteFlux(f, i+1); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile loads every table from the file at path into ds, replacing any
// previous contents. Extension order on disk is not assumed: each table
// kind is located by its own scan from the start of the file.
//
// While measurement tables load, each non-empty ArrName/InsName/CorrName
// reference is resolved once by a scan of the loaded table lists and
// cached in the corresponding index; later references cost one index hit.
// An unresolved name is a warning, never fatal.
//
// If the loaded dataset is pure revision 1, the derived header fields are
// recomputed from table contents, since revision-1 files do not carry them
// reliably.
//
// On any fatal I/O error the dataset contents are indeterminate and must
// not be relied upon.
func ReadFile(tio TableIO, path string, ds *Dataset) error {
	if err := tio.Open(path); err != nil {
		return failOp("open", path, err)
	}
	if err := readTables(tio, ds); err != nil {
		tio.Close()
		return failOp("read", path, err)
	}
	if ds.IsRevisionOne() {
		ds.DeriveHeader()
	}
	if err := tio.Close(); err != nil {
		return failOp("close", path, err)
	}
	return nil
}

func readTables(tio TableIO, ds *Dataset) error {
	ds.Reset()

	if err := tio.ReadHeader(&ds.Header); err != nil {
		return err
	}
	if err := tio.ReadTargets(&ds.Targets); err != nil {
		return err
	}

	if err := tio.Rewind(); err != nil {
		return err
	}
	for {
		a, err := tio.ReadNextArray()
		if err != nil {
			if errors.IsEndOfData(err) {
				break
			}
			return err
		}
		ds.Arrays = append(ds.Arrays, a)
	}

	if err := tio.Rewind(); err != nil {
		return err
	}
	for {
		w, err := tio.ReadNextWavelength()
		if err != nil {
			if errors.IsEndOfData(err) {
				break
			}
			return err
		}
		ds.Wavelengths = append(ds.Wavelengths, w)
	}

	if err := tio.Rewind(); err != nil {
		return err
	}
	for {
		c, err := tio.ReadNextCorr()
		if err != nil {
			if errors.IsEndOfData(err) {
				break
			}
			return err
		}
		ds.Corrs = append(ds.Corrs, c)
	}

	if err := tio.Rewind(); err != nil {
		return err
	}
	for {
		p, err := tio.ReadNextPolar()
		if err != nil {
			if errors.IsEndOfData(err) {
				break
			}
			return err
		}
		ds.Polars = append(ds.Polars, p)
	}

	if err := tio.Rewind(); err != nil {
		return err
	}
	for {
		v, err := tio.ReadNextVis()
		if err != nil {
			if errors.IsEndOfData(err) {
				break
			}
			return err
		}
		ds.Vis = append(ds.Vis, v)
		ds.cacheRefs(v.ArrName, v.InsName, v.CorrName)
	}

	if err := tio.Rewind(); err != nil {
		return err
	}
	for {
		v, err := tio.ReadNextVis2()
		if err != nil {
			if errors.IsEndOfData(err) {
				break
			}
			return err
		}
		ds.Vis2 = append(ds.Vis2, v)
		ds.cacheRefs(v.ArrName, v.InsName, v.CorrName)
	}

	if err := tio.Rewind(); err != nil {
		return err
	}
	for {
		t, err := tio.ReadNextT3()
		if err != nil {
			if errors.IsEndOfData(err) {
				break
			}
			return err
		}
		ds.T3 = append(ds.T3, t)
		ds.cacheRefs(t.ArrName, t.InsName, t.CorrName)
	}

	if err := tio.Rewind(); err != nil {
		return err
	}
	for {
		f, err := tio.ReadNextFlux()
		if err != nil {
			if errors.IsEndOfData(err) {
				break
			}
			return err
		}
		ds.Flux = append(ds.Flux, f)
		ds.cacheRefs(f.ArrName, f.InsName, f.CorrName)
	}

	return nil
}

// cacheRefs resolves one measurement table's references against the loaded
// table lists, caching each hit in the corresponding index. Empty names
// are absent references and never trigger a lookup; a non-empty name that
// does not resolve is logged and left unindexed.
func (ds *Dataset) cacheRefs(arrname, insname, corrname string) {
	if arrname != "" {
		if _, ok := ds.arrayIndex[arrname]; !ok {
			if a := findArray(ds.Arrays, arrname); a != nil {
				ds.arrayIndex[arrname] = a
			}
		}
	}
	if insname != "" {
		if _, ok := ds.wavelengthIndex[insname]; !ok {
			if w := findWavelength(ds.Wavelengths, insname); w != nil {
				ds.wavelengthIndex[insname] = w
			}
		}
	}
	if corrname != "" {
		if _, ok := ds.corrIndex[corrname]; !ok {
			if c := findCorr(ds.Corrs, corrname); c != nil {
				ds.corrIndex[corrname] = c
			}
		}
	}
}

func findArray(arrays []*ArrayTable, arrname string) *ArrayTable {
	for _, a := range arrays {
		if a.ArrName == arrname {
			return a
		}
	}
	logger.Warnf("missing OI_ARRAY with ARRNAME=%s", arrname)
	return nil
}

func findWavelength(waves []*WavelengthTable, insname string) *WavelengthTable {
	for _, w := range waves {
		if w.InsName == insname {
			return w
		}
	}
	logger.Warnf("missing OI_WAVELENGTH with INSNAME=%s", insname)
	return nil
}

func findCorr(corrs []*CorrTable, corrname string) *CorrTable {
	for _, c := range corrs {
		if c.CorrName == corrname {
			return c
		}
	}
	logger.Warnf("missing OI_CORR with CORRNAME=%s", corrname)
	return nil
}

// DeriveHeader sets the Telescop, Instrume, Object and DateObs header
// fields from table contents. Origin and InsMode are left untouched.
//
// Telescop is the sole array name, "MULTIPLE" when several arrays are
// present, or "UNKNOWN" when none. Instrume and Object follow the same
// sole-or-"MULTIPLE" rule. DateObs is the calendar date of the earliest
// parseable per-table observation date; when no measurement table carries
// a parseable date, DateObs is left unchanged.
func (ds *Dataset) DeriveHeader() {
	const multiple = "MULTIPLE"

	switch len(ds.Arrays) {
	case 0:
		ds.Header.Telescop = "UNKNOWN"
	case 1:
		ds.Header.Telescop = ds.Arrays[0].ArrName
	default:
		ds.Header.Telescop = multiple
	}

	if len(ds.Wavelengths) == 1 {
		ds.Header.Instrume = ds.Wavelengths[0].InsName
	} else {
		ds.Header.Instrume = multiple
	}

	if len(ds.Targets.Targets) == 1 {
		ds.Header.Object = ds.Targets.Targets[0].Target
	} else {
		ds.Header.Object = multiple
	}

	if minMJD, ok := ds.minMJD(); ok {
		ds.Header.DateObs = mjd.FormatDate(minMJD)
	}
}

// minMJD returns the earliest of the measurement tables' DATE-OBS values.
// Tables with an unparseable date are skipped.
func (ds *Dataset) minMJD() (int64, bool) {
	found := false
	var min int64
	observe := func(dateObs string) {
		m, err := mjd.ParseDate(dateObs)
		if err != nil {
			return
		}
		if !found || m < min {
			min = m
			found = true
		}
	}
	for _, v := range ds.Vis {
		observe(v.DateObs)
	}
	for _, v := range ds.Vis2 {
		observe(v.DateObs)
	}
	for _, t := range ds.T3 {
		observe(t.DateObs)
	}
	for _, f := range ds.Flux {
		observe(f.DateObs)
	}
	return min, found
}

func failOp(op, path string, err error) error {
	logger.Errorw("tabular I/O error", "op", op, "path", path, "error", err)
	return errors.Wrap(err, fmt.Sprintf("%s %s", op, path))
}
