package oifits_test

import (
	"github.com/interferolib/oifits"
)

// Fixture builders for a small but complete dataset: one VLTI-like array,
// one GRAVITY-like wavelength table, a correlation and a polarization
// table, and one measurement table of each kind referencing them.

const (
	testArrName  = "VLTI"
	testInsName  = "GRAVITY_SC"
	testCorrName = "CORR_GRAV"
	testDateObs  = "2019-03-04"
	testNWave    = 5
)

func makeTargets(rev int) oifits.TargetTable {
	t := oifits.Target{
		TargetID: 1,
		Target:   "Betelgeuse",
		RAEp0:    88.7929,
		DecEp0:   7.4071,
		Equinox:  2000.0,
		RAErr:    1e-6,
		DecErr:   1e-6,
		SysVel:   21910.0,
		VelTyp:   "HELIOCEN",
		VelDef:   "OPTICAL",
		PMRA:     7.6e-6,
		PMDec:    3.0e-6,
		Parallax: 1.7e-6,
		ParaErr:  4e-7,
		SpecTyp:  "M1-M2Ia-Iab",
	}
	if rev >= oifits.Revision2 {
		t.Category = "SCI"
	}
	return oifits.TargetTable{Revision: rev, Targets: []oifits.Target{t}}
}

func makeArray(rev int, arrname string) *oifits.ArrayTable {
	// Elements deliberately not ordered by station index.
	return &oifits.ArrayTable{
		Revision: rev,
		ArrName:  arrname,
		Frame:    "GEOCENTRIC",
		ArrayX:   1946404.3,
		ArrayY:   -5467644.3,
		ArrayZ:   -2642728.2,
		Elements: []oifits.Element{
			{TelName: "UT2", StaName: "U2", StaIndex: 2, Diameter: 8.2,
				StaXYZ: [3]float64{24.9, 14.9, 0.0}},
			{TelName: "UT1", StaName: "U1", StaIndex: 1, Diameter: 8.2,
				StaXYZ: [3]float64{-16.0, -16.0, 0.0}},
			{TelName: "UT3", StaName: "U3", StaIndex: 3, Diameter: 8.2,
				StaXYZ: [3]float64{44.9, 64.3, 0.0}},
			{TelName: "UT4", StaName: "U4", StaIndex: 4, Diameter: 8.2,
				StaXYZ: [3]float64{103.3, 43.9, 0.0}},
		},
	}
}

func makeWavelength(rev int, insname string) *oifits.WavelengthTable {
	return &oifits.WavelengthTable{
		Revision: rev,
		InsName:  insname,
		EffWave:  []float64{2.0e-6, 2.1e-6, 2.2e-6, 2.3e-6, 2.4e-6},
		EffBand:  []float64{1e-7, 1e-7, 1e-7, 1e-7, 1e-7},
	}
}

func makeCorr(corrname string) *oifits.CorrTable {
	return &oifits.CorrTable{
		Revision: oifits.Revision1,
		CorrName: corrname,
		NData:    20,
		IIndex:   []int{1, 3, 5},
		JIndex:   []int{2, 4, 6},
		Corr:     []float64{0.5, -0.2, 0.1},
	}
}

func makePolar(arrname string) *oifits.PolarTable {
	return &oifits.PolarTable{
		Revision: oifits.Revision1,
		DateObs:  testDateObs,
		NPol:     2,
		ArrName:  arrname,
		Orient:   "LABORATORY",
		Model:    "NOMINAL",
		Records: []oifits.PolarRecord{
			{
				TargetID: 1,
				InsName:  testInsName,
				MJDObs:   58546.1,
				MJDEnd:   58546.2,
				JXX:      []complex128{1, 1, 1, 1, 1},
				JYY:      []complex128{1, 1, 1, 1, 1},
				JXY:      []complex128{0.01i, 0.01i, 0.01i, 0.01i, 0.01i},
				JYX:      []complex128{-0.01i, -0.01i, -0.01i, -0.01i, -0.01i},
				StaIndex: 1,
			},
		},
	}
}

func chans(v float64) []float64 {
	out := make([]float64, testNWave)
	for i := range out {
		out[i] = v + float64(i)/100
	}
	return out
}

func flags() []bool {
	return make([]bool, testNWave)
}

func makeVis(rev int) *oifits.VisTable {
	t := &oifits.VisTable{
		Revision: rev,
		DateObs:  testDateObs,
		ArrName:  testArrName,
		InsName:  testInsName,
		NWave:    testNWave,
		Records: []oifits.VisRecord{
			{
				TargetID: 1, MJD: 58546.1, IntTime: 30,
				VisAmp: chans(0.4), VisAmpErr: chans(0.01),
				VisPhi: chans(10), VisPhiErr: chans(1),
				UCoord: 51.2, VCoord: -33.4,
				StaIndex: [2]int{1, 2}, Flag: flags(),
			},
			{
				TargetID: 1, MJD: 58546.2, IntTime: 30,
				VisAmp: chans(0.3), VisAmpErr: chans(0.01),
				VisPhi: chans(-20), VisPhiErr: chans(1),
				UCoord: 78.9, VCoord: 12.3,
				StaIndex: [2]int{2, 3}, Flag: flags(),
			},
		},
	}
	if rev >= oifits.Revision2 {
		t.CorrName = testCorrName
		t.AmpTyp = "ABSOLUTE"
		t.PhiTyp = "ABSOLUTE"
		// First record carries the optional payloads, second does not.
		rec := &t.Records[0]
		rec.RVis = chans(0.39)
		rec.RVisErr = chans(0.011)
		rec.IVis = chans(0.07)
		rec.IVisErr = chans(0.012)
		rec.VisRefMap = make([]bool, testNWave*testNWave)
		rec.CorrIndxVisAmp = 1
		rec.CorrIndxVisPhi = 6
	}
	return t
}

func makeVis2(rev int) *oifits.Vis2Table {
	t := &oifits.Vis2Table{
		Revision: rev,
		DateObs:  testDateObs,
		ArrName:  testArrName,
		InsName:  testInsName,
		NWave:    testNWave,
		Records: []oifits.Vis2Record{
			{
				TargetID: 1, MJD: 58546.1, IntTime: 30,
				Vis2Data: chans(0.16), Vis2Err: chans(0.008),
				UCoord: 51.2, VCoord: -33.4,
				StaIndex: [2]int{1, 2}, Flag: flags(),
			},
			{
				TargetID: 1, MJD: 58546.3, IntTime: 30,
				Vis2Data: chans(0.09), Vis2Err: chans(0.007),
				UCoord: 78.9, VCoord: 12.3,
				StaIndex: [2]int{3, 4}, Flag: flags(),
			},
		},
	}
	if rev >= oifits.Revision2 {
		t.CorrName = testCorrName
	}
	return t
}

func makeT3(rev int) *oifits.T3Table {
	t := &oifits.T3Table{
		Revision: rev,
		DateObs:  testDateObs,
		ArrName:  testArrName,
		InsName:  testInsName,
		NWave:    testNWave,
		Records: []oifits.T3Record{
			{
				TargetID: 1, MJD: 58546.15, IntTime: 60,
				T3Amp: chans(0.02), T3AmpErr: chans(0.002),
				T3Phi: chans(45), T3PhiErr: chans(3),
				U1Coord: 51.2, V1Coord: -33.4, U2Coord: 27.7, V2Coord: 45.7,
				StaIndex: [3]int{1, 2, 3}, Flag: flags(),
			},
		},
	}
	if rev >= oifits.Revision2 {
		t.CorrName = testCorrName
	}
	return t
}

func makeFlux() *oifits.FluxTable {
	return &oifits.FluxTable{
		Revision: oifits.Revision1,
		DateObs:  testDateObs,
		ArrName:  testArrName,
		InsName:  testInsName,
		FOV:      0.06,
		FOVType:  "FWHM",
		CalStat:  "C",
		NWave:    testNWave,
		Records: []oifits.FluxRecord{
			{
				TargetID: 1, MJD: 58546.1, IntTime: 30,
				FluxData: chans(120), FluxErr: chans(4),
				StaIndex: 1,
			},
		},
	}
}

// newTestDataset returns a populated pure revision-2 dataset with indices
// built.
func newTestDataset() *oifits.Dataset {
	ds := oifits.NewDataset()
	ds.Header = oifits.Header{
		Origin:   "ESO",
		DateObs:  testDateObs,
		Telescop: testArrName,
		Instrume: testInsName,
		InsMode:  "LOW-COMBINED",
		Object:   "Betelgeuse",
		ObsTech:  "SPECTRAL_INTERFEROMETRY",
	}
	ds.Targets = makeTargets(oifits.Revision2)
	ds.Arrays = []*oifits.ArrayTable{makeArray(oifits.Revision2, testArrName)}
	ds.Wavelengths = []*oifits.WavelengthTable{makeWavelength(oifits.Revision2, testInsName)}
	ds.Corrs = []*oifits.CorrTable{makeCorr(testCorrName)}
	ds.Polars = []*oifits.PolarTable{makePolar(testArrName)}
	ds.Vis = []*oifits.VisTable{makeVis(oifits.Revision2)}
	ds.Vis2 = []*oifits.Vis2Table{makeVis2(oifits.Revision2)}
	ds.T3 = []*oifits.T3Table{makeT3(oifits.Revision2)}
	ds.Flux = []*oifits.FluxTable{makeFlux()}
	ds.RebuildIndices()
	return ds
}

// newRevision1Dataset returns a pure revision-1 dataset: target catalog,
// one array, one wavelength table and one squared-visibility table, all
// revision 1, with none of the version-2 table kinds.
func newRevision1Dataset() *oifits.Dataset {
	ds := oifits.NewDataset()
	ds.Targets = makeTargets(oifits.Revision1)
	ds.Arrays = []*oifits.ArrayTable{makeArray(oifits.Revision1, testArrName)}
	ds.Wavelengths = []*oifits.WavelengthTable{makeWavelength(oifits.Revision1, testInsName)}
	ds.Vis2 = []*oifits.Vis2Table{makeVis2(oifits.Revision1)}
	ds.RebuildIndices()
	return ds
}
