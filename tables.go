package oifits

// Revision numbers of the two published OIFITS standards. Unrecognized
// values are preserved on read so minor variants still round-trip.
const (
	Revision1 = 1
	Revision2 = 2
)

// Target is one row of the target catalog. TargetID is unique within a
// dataset and is what measurement records reference.
type Target struct {
	TargetID int
	Target   string  // designation
	RAEp0    float64 // RA at mean equinox /deg
	DecEp0   float64 // Dec at mean equinox /deg
	Equinox  float64 // equinox /yr
	RAErr    float64
	DecErr   float64
	SysVel   float64 // systemic radial velocity /m/s
	VelTyp   string
	VelDef   string
	PMRA     float64 // proper motion /deg/yr
	PMDec    float64
	PMRAErr  float64
	PMDecErr float64
	Parallax float64 // /deg
	ParaErr  float64
	SpecTyp  string
	Category string // "CAL" or "SCI"; revision 2 only, empty when absent
}

// TargetTable is the single target catalog of a dataset.
type TargetTable struct {
	Revision int
	Targets  []Target
}

// Element is one station of an array: a telescope position keyed by a
// station index unique within its ArrayTable. Elements are not assumed
// sorted by index.
type Element struct {
	TelName  string
	StaName  string
	StaIndex int
	Diameter float64    // /m
	StaXYZ   [3]float64 // position relative to array centre /m
	FOV      float64    // revision 2
	FOVType  string     // revision 2: "FWHM" or "RADIUS"
}

// ArrayTable describes the geometry of one interferometric array.
// ArrName is the join key referenced by measurement tables.
type ArrayTable struct {
	Revision int
	ArrName  string
	Frame    string // coordinate frame, e.g. "GEOCENTRIC"
	ArrayX   float64
	ArrayY   float64
	ArrayZ   float64
	Elements []Element
}

// WavelengthTable is the wavelength calibration of one instrument setup:
// an ordered sequence of spectral channels. InsName is the join key
// referenced by measurement tables.
type WavelengthTable struct {
	Revision int
	InsName  string
	EffWave  []float64 // effective wavelength per channel /m
	EffBand  []float64 // effective bandwidth per channel /m
}

// NumChannels returns the number of spectral channels.
func (w *WavelengthTable) NumChannels() int {
	return len(w.EffWave)
}

// MinWavelength returns the shortest effective wavelength /m.
func (w *WavelengthTable) MinWavelength() float64 {
	min := 1.0e11
	for _, wl := range w.EffWave {
		if wl < min {
			min = wl
		}
	}
	return min
}

// MaxWavelength returns the longest effective wavelength /m.
func (w *WavelengthTable) MaxWavelength() float64 {
	max := 0.0
	for _, wl := range w.EffWave {
		if wl > max {
			max = wl
		}
	}
	return max
}

// CorrTable is a sparse correlation matrix stored as parallel
// (row, column, coefficient) arrays. NData is the declared matrix
// dimension; the number of non-zero entries is len(Corr) and is
// independent of NData. CorrName is the join key.
type CorrTable struct {
	Revision int
	CorrName string
	NData    int
	IIndex   []int
	JIndex   []int
	Corr     []float64
}

// NumCorr returns the number of non-zero correlation entries.
func (c *CorrTable) NumCorr() int {
	return len(c.Corr)
}

// PolarRecord holds the per-channel Jones matrix elements of one station
// over one time interval.
type PolarRecord struct {
	TargetID int
	InsName  string
	MJDObs   float64
	MJDEnd   float64
	JXX      []complex128
	JYY      []complex128
	JXY      []complex128
	JYX      []complex128
	StaIndex int
}

// PolarTable holds per-station polarization parameters for one array.
// ArrName names the described array; it is not an index key.
type PolarTable struct {
	Revision int
	DateObs  string
	NPol     int
	ArrName  string
	Orient   string
	Model    string
	Records  []PolarRecord
}
