package oifits

// Deep copies per table kind. Every nesting level is duplicated — table
// struct, record slice, every per-channel slice inside each record — so
// source and copy can be mutated or spliced into another dataset
// independently. Optional per-record payloads that are absent (nil) in the
// source stay absent in the copy.

func dupFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

func dupBools(s []bool) []bool {
	if s == nil {
		return nil
	}
	out := make([]bool, len(s))
	copy(out, s)
	return out
}

func dupInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func dupComplexes(s []complex128) []complex128 {
	if s == nil {
		return nil
	}
	out := make([]complex128, len(s))
	copy(out, s)
	return out
}

// Clone returns a deep copy of the target catalog.
func (t *TargetTable) Clone() *TargetTable {
	out := *t
	out.Targets = make([]Target, len(t.Targets))
	copy(out.Targets, t.Targets)
	return &out
}

// Clone returns a deep copy of the array geometry table.
func (a *ArrayTable) Clone() *ArrayTable {
	out := *a
	out.Elements = make([]Element, len(a.Elements))
	copy(out.Elements, a.Elements)
	return &out
}

// Clone returns a deep copy of the wavelength table.
func (w *WavelengthTable) Clone() *WavelengthTable {
	out := *w
	out.EffWave = dupFloats(w.EffWave)
	out.EffBand = dupFloats(w.EffBand)
	return &out
}

// Clone returns a deep copy of the correlation table.
func (c *CorrTable) Clone() *CorrTable {
	out := *c
	out.IIndex = dupInts(c.IIndex)
	out.JIndex = dupInts(c.JIndex)
	out.Corr = dupFloats(c.Corr)
	return &out
}

// Clone returns a deep copy of the polarization table.
func (p *PolarTable) Clone() *PolarTable {
	out := *p
	out.Records = make([]PolarRecord, len(p.Records))
	for i := range p.Records {
		rec := p.Records[i]
		rec.JXX = dupComplexes(rec.JXX)
		rec.JYY = dupComplexes(rec.JYY)
		rec.JXY = dupComplexes(rec.JXY)
		rec.JYX = dupComplexes(rec.JYX)
		out.Records[i] = rec
	}
	return &out
}

// Clone returns a deep copy of the complex-visibility table.
func (v *VisTable) Clone() *VisTable {
	out := *v
	out.Records = make([]VisRecord, len(v.Records))
	for i := range v.Records {
		rec := v.Records[i]
		rec.VisAmp = dupFloats(rec.VisAmp)
		rec.VisAmpErr = dupFloats(rec.VisAmpErr)
		rec.VisPhi = dupFloats(rec.VisPhi)
		rec.VisPhiErr = dupFloats(rec.VisPhiErr)
		rec.RVis = dupFloats(rec.RVis)
		rec.RVisErr = dupFloats(rec.RVisErr)
		rec.IVis = dupFloats(rec.IVis)
		rec.IVisErr = dupFloats(rec.IVisErr)
		rec.VisRefMap = dupBools(rec.VisRefMap)
		rec.Flag = dupBools(rec.Flag)
		out.Records[i] = rec
	}
	return &out
}

// Clone returns a deep copy of the squared-visibility table.
func (v *Vis2Table) Clone() *Vis2Table {
	out := *v
	out.Records = make([]Vis2Record, len(v.Records))
	for i := range v.Records {
		rec := v.Records[i]
		rec.Vis2Data = dupFloats(rec.Vis2Data)
		rec.Vis2Err = dupFloats(rec.Vis2Err)
		rec.Flag = dupBools(rec.Flag)
		out.Records[i] = rec
	}
	return &out
}

// Clone returns a deep copy of the closure-triple table.
func (t *T3Table) Clone() *T3Table {
	out := *t
	out.Records = make([]T3Record, len(t.Records))
	for i := range t.Records {
		rec := t.Records[i]
		rec.T3Amp = dupFloats(rec.T3Amp)
		rec.T3AmpErr = dupFloats(rec.T3AmpErr)
		rec.T3Phi = dupFloats(rec.T3Phi)
		rec.T3PhiErr = dupFloats(rec.T3PhiErr)
		rec.Flag = dupBools(rec.Flag)
		out.Records[i] = rec
	}
	return &out
}

// Clone returns a deep copy of the spectral flux table.
func (f *FluxTable) Clone() *FluxTable {
	out := *f
	out.Records = make([]FluxRecord, len(f.Records))
	for i := range f.Records {
		rec := f.Records[i]
		rec.FluxData = dupFloats(rec.FluxData)
		rec.FluxErr = dupFloats(rec.FluxErr)
		out.Records[i] = rec
	}
	return &out
}
