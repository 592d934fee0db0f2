package oifits

import (
	"github.com/interferolib/oifits/errors"
	"github.com/interferolib/oifits/logger"
)

// Dataset aggregates every table of one OIFITS dataset, plus three
// name-keyed indices resolving ArrName/InsName/CorrName references from
// measurement records in constant time.
//
// The indices are populated during ReadFile and by RebuildIndices. They are
// not maintained automatically: after any structural mutation the caller
// must call RebuildIndices before relying on the lookups.
//
// A Dataset is not safe for concurrent use; callers must serialize access
// or use one Dataset per goroutine.
type Dataset struct {
	Header  Header
	Targets TargetTable

	Arrays      []*ArrayTable
	Wavelengths []*WavelengthTable
	Corrs       []*CorrTable
	Polars      []*PolarTable

	Vis  []*VisTable
	Vis2 []*Vis2Table
	T3   []*T3Table
	Flux []*FluxTable

	arrayIndex      map[string]*ArrayTable
	wavelengthIndex map[string]*WavelengthTable
	corrIndex       map[string]*CorrTable
}

// NewDataset returns an empty dataset with fresh indices. The target
// catalog defaults to revision 2.
func NewDataset() *Dataset {
	ds := &Dataset{}
	ds.Targets.Revision = Revision2
	ds.initIndices()
	return ds
}

func (ds *Dataset) initIndices() {
	ds.arrayIndex = make(map[string]*ArrayTable)
	ds.wavelengthIndex = make(map[string]*WavelengthTable)
	ds.corrIndex = make(map[string]*CorrTable)
}

// Reset drops every table and index, returning the dataset to its initial
// empty state.
func (ds *Dataset) Reset() {
	*ds = Dataset{}
	ds.Targets.Revision = Revision2
	ds.initIndices()
}

// RebuildIndices discards the three name-keyed indices and re-enters every
// ArrayTable, WavelengthTable and CorrTable currently in the dataset.
// Required after any structural mutation made after loading.
func (ds *Dataset) RebuildIndices() {
	ds.initIndices()
	for _, a := range ds.Arrays {
		ds.arrayIndex[a.ArrName] = a
	}
	for _, w := range ds.Wavelengths {
		ds.wavelengthIndex[w.InsName] = w
	}
	for _, c := range ds.Corrs {
		ds.corrIndex[c.CorrName] = c
	}
}

// LookupArray returns the ArrayTable with the given ARRNAME.
// Returns ErrNotFound if the name is not indexed.
func (ds *Dataset) LookupArray(arrname string) (*ArrayTable, error) {
	if a, ok := ds.arrayIndex[arrname]; ok {
		return a, nil
	}
	logger.Warnf("no OI_ARRAY with ARRNAME=%s", arrname)
	return nil, errors.NotFoundf("OI_ARRAY %q", arrname)
}

// LookupWavelength returns the WavelengthTable with the given INSNAME.
// Returns ErrNotFound if the name is not indexed.
func (ds *Dataset) LookupWavelength(insname string) (*WavelengthTable, error) {
	if w, ok := ds.wavelengthIndex[insname]; ok {
		return w, nil
	}
	logger.Warnf("no OI_WAVELENGTH with INSNAME=%s", insname)
	return nil, errors.NotFoundf("OI_WAVELENGTH %q", insname)
}

// LookupCorr returns the CorrTable with the given CORRNAME.
// Returns ErrNotFound if the name is not indexed.
func (ds *Dataset) LookupCorr(corrname string) (*CorrTable, error) {
	if c, ok := ds.corrIndex[corrname]; ok {
		return c, nil
	}
	logger.Warnf("no OI_CORR with CORRNAME=%s", corrname)
	return nil, errors.NotFoundf("OI_CORR %q", corrname)
}

// LookupElement returns the station of the named array with the given
// station index. Elements are not assumed ordered by index.
func (ds *Dataset) LookupElement(arrname string, staIndex int) (*Element, error) {
	a, err := ds.LookupArray(arrname)
	if err != nil {
		return nil, err
	}
	for i := range a.Elements {
		if a.Elements[i].StaIndex == staIndex {
			return &a.Elements[i], nil
		}
	}
	return nil, errors.NotFoundf("station %d in OI_ARRAY %q", staIndex, arrname)
}

// LookupTarget returns the target with the given TARGET_ID. Targets are
// not assumed ordered by ID.
func (ds *Dataset) LookupTarget(targetID int) (*Target, error) {
	for i := range ds.Targets.Targets {
		if ds.Targets.Targets[i].TargetID == targetID {
			return &ds.Targets.Targets[i], nil
		}
	}
	return nil, errors.NotFoundf("target %d", targetID)
}

// LookupTargetByName returns the first target with the given designation.
func (ds *Dataset) LookupTargetByName(name string) (*Target, error) {
	for i := range ds.Targets.Targets {
		if ds.Targets.Targets[i].Target == name {
			return &ds.Targets.Targets[i], nil
		}
	}
	return nil, errors.NotFoundf("target %q", name)
}

// IsRevisionOne reports whether every table revision matches version 1 of
// the OIFITS standard. Table kinds introduced in version 2 are ignored;
// absent kinds trivially pass.
func (ds *Dataset) IsRevisionOne() bool {
	if ds.Targets.Revision != Revision1 {
		return false
	}
	for _, a := range ds.Arrays {
		if a.Revision != Revision1 {
			return false
		}
	}
	for _, w := range ds.Wavelengths {
		if w.Revision != Revision1 {
			return false
		}
	}
	for _, v := range ds.Vis {
		if v.Revision != Revision1 {
			return false
		}
	}
	for _, v := range ds.Vis2 {
		if v.Revision != Revision1 {
			return false
		}
	}
	for _, t := range ds.T3 {
		if t.Revision != Revision1 {
			return false
		}
	}
	return true
}

// IsRevisionTwo reports whether every table revision matches version 2 of
// the OIFITS standard. Correlation, polarization and flux tables carry
// revision 1 in a version-2 file.
func (ds *Dataset) IsRevisionTwo() bool {
	if ds.Targets.Revision != Revision2 {
		return false
	}
	for _, a := range ds.Arrays {
		if a.Revision != Revision2 {
			return false
		}
	}
	for _, w := range ds.Wavelengths {
		if w.Revision != Revision2 {
			return false
		}
	}
	for _, c := range ds.Corrs {
		if c.Revision != Revision1 {
			return false
		}
	}
	for _, p := range ds.Polars {
		if p.Revision != Revision1 {
			return false
		}
	}
	for _, v := range ds.Vis {
		if v.Revision != Revision2 {
			return false
		}
	}
	for _, v := range ds.Vis2 {
		if v.Revision != Revision2 {
			return false
		}
	}
	for _, t := range ds.T3 {
		if t.Revision != Revision2 {
			return false
		}
	}
	for _, f := range ds.Flux {
		if f.Revision != Revision1 {
			return false
		}
	}
	return true
}

// CountData returns the total number of measurement records per
// interferometric kind.
func (ds *Dataset) CountData() (numVis, numVis2, numT3 int) {
	for _, v := range ds.Vis {
		numVis += len(v.Records)
	}
	for _, v := range ds.Vis2 {
		numVis2 += len(v.Records)
	}
	for _, t := range ds.T3 {
		numT3 += len(t.Records)
	}
	return numVis, numVis2, numT3
}

// Atomic reports whether the dataset is a single coherent observation:
// exactly one target, and every measurement record's MJD within windowDays
// of the earliest one. A dataset with no measurement records is not atomic.
func (ds *Dataset) Atomic(windowDays float64) bool {
	if len(ds.Targets.Targets) != 1 {
		return false
	}
	first := true
	var minMJD, maxMJD float64
	observe := func(m float64) {
		if first {
			minMJD, maxMJD = m, m
			first = false
			return
		}
		if m < minMJD {
			minMJD = m
		}
		if m > maxMJD {
			maxMJD = m
		}
	}
	for _, v := range ds.Vis {
		for i := range v.Records {
			observe(v.Records[i].MJD)
		}
	}
	for _, v := range ds.Vis2 {
		for i := range v.Records {
			observe(v.Records[i].MJD)
		}
	}
	for _, t := range ds.T3 {
		for i := range t.Records {
			observe(t.Records[i].MJD)
		}
	}
	for _, f := range ds.Flux {
		for i := range f.Records {
			observe(f.Records[i].MJD)
		}
	}
	if first {
		return false
	}
	return maxMJD-minMJD <= windowDays
}
