package oifits

// Measurement tables. Each table observes one date, references exactly one
// WavelengthTable by InsName, and optionally one ArrayTable by ArrName and
// one CorrTable by CorrName (empty name = absent). Every per-channel slice
// in a record has the referenced WavelengthTable's channel count; the file
// pipeline and Clone preserve this invariant, it is not re-checked per
// access.

// VisRecord is one complex-visibility observation on one baseline.
//
// RVis/RVisErr/IVis/IVisErr carry the optional split real/imaginary
// representation and VisRefMap the optional reference-channel matrix
// (NWave x NWave, row-major). A nil slice means the payload is absent for
// this record.
type VisRecord struct {
	TargetID  int
	Time      float64 // /s, zero in revision 2
	MJD       float64
	IntTime   float64 // /s
	VisAmp    []float64
	VisAmpErr []float64
	VisPhi    []float64 // /deg
	VisPhiErr []float64
	RVis      []float64
	RVisErr   []float64
	IVis      []float64
	IVisErr   []float64
	VisRefMap []bool
	UCoord    float64 // /m
	VCoord    float64 // /m
	StaIndex  [2]int
	Flag      []bool

	// Correlation matrix entry points, revision 2. Zero when absent.
	CorrIndxVisAmp int
	CorrIndxVisPhi int
}

// VisTable is an ordered sequence of complex-visibility records.
type VisTable struct {
	Revision int
	DateObs  string
	ArrName  string // optional
	InsName  string // mandatory
	CorrName string // optional
	AmpTyp   string // revision 2: "ABSOLUTE", "DIFFERENTIAL" or "CORRELATED FLUX"
	PhiTyp   string // revision 2: "ABSOLUTE" or "DIFFERENTIAL"
	AmpOrder int
	PhiOrder int
	NWave    int // channel count of the referenced WavelengthTable
	Records  []VisRecord
}

// Vis2Record is one squared-visibility observation on one baseline.
type Vis2Record struct {
	TargetID int
	Time     float64
	MJD      float64
	IntTime  float64
	Vis2Data []float64
	Vis2Err  []float64
	UCoord   float64
	VCoord   float64
	StaIndex [2]int
	Flag     []bool

	CorrIndxVis2Data int
}

// Vis2Table is an ordered sequence of squared-visibility records.
type Vis2Table struct {
	Revision int
	DateObs  string
	ArrName  string
	InsName  string
	CorrName string
	NWave    int
	Records  []Vis2Record
}

// T3Record is one closure-triple observation combining the three baselines
// among three stations.
type T3Record struct {
	TargetID int
	Time     float64
	MJD      float64
	IntTime  float64
	T3Amp    []float64
	T3AmpErr []float64
	T3Phi    []float64 // /deg
	T3PhiErr []float64
	U1Coord  float64
	V1Coord  float64
	U2Coord  float64
	V2Coord  float64
	StaIndex [3]int
	Flag     []bool

	CorrIndxT3Amp int
	CorrIndxT3Phi int
}

// T3Table is an ordered sequence of closure-triple records.
type T3Table struct {
	Revision int
	DateObs  string
	ArrName  string
	InsName  string
	CorrName string
	NWave    int
	Records  []T3Record
}

// FluxRecord is one spectral flux measurement from a single station.
// StaIndex is negative when the measurement is not tied to a station.
type FluxRecord struct {
	TargetID int
	MJD      float64
	IntTime  float64
	FluxData []float64
	FluxErr  []float64
	StaIndex int

	CorrIndxFluxData int
}

// FluxTable is an ordered sequence of spectral flux records.
type FluxTable struct {
	Revision int
	DateObs  string
	ArrName  string
	InsName  string
	CorrName string
	FOV      float64
	FOVType  string
	CalStat  string // "C" calibrated, "U" uncalibrated
	NWave    int
	Records  []FluxRecord
}
