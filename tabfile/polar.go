package tabfile

import "github.com/interferolib/oifits"

// encoding/json has no representation for complex128, so polarization
// tables cross the codec as [re, im] pairs.

type jsonPolarRecord struct {
	TargetID int          `json:"target_id"`
	InsName  string       `json:"insname"`
	MJDObs   float64      `json:"mjd_obs"`
	MJDEnd   float64      `json:"mjd_end"`
	JXX      [][2]float64 `json:"jxx"`
	JYY      [][2]float64 `json:"jyy"`
	JXY      [][2]float64 `json:"jxy"`
	JYX      [][2]float64 `json:"jyx"`
	StaIndex int          `json:"sta_index"`
}

type jsonPolarTable struct {
	Revision int               `json:"revision"`
	DateObs  string            `json:"date_obs"`
	NPol     int               `json:"npol"`
	ArrName  string            `json:"arrname"`
	Orient   string            `json:"orient"`
	Model    string            `json:"model"`
	Records  []jsonPolarRecord `json:"records"`
}

func pairsFromComplexes(s []complex128) [][2]float64 {
	if s == nil {
		return nil
	}
	out := make([][2]float64, len(s))
	for i, c := range s {
		out[i] = [2]float64{real(c), imag(c)}
	}
	return out
}

func complexesFromPairs(s [][2]float64) []complex128 {
	if s == nil {
		return nil
	}
	out := make([]complex128, len(s))
	for i, p := range s {
		out[i] = complex(p[0], p[1])
	}
	return out
}

func fromPolarTable(t *oifits.PolarTable) *jsonPolarTable {
	out := &jsonPolarTable{
		Revision: t.Revision,
		DateObs:  t.DateObs,
		NPol:     t.NPol,
		ArrName:  t.ArrName,
		Orient:   t.Orient,
		Model:    t.Model,
		Records:  make([]jsonPolarRecord, len(t.Records)),
	}
	for i, r := range t.Records {
		out.Records[i] = jsonPolarRecord{
			TargetID: r.TargetID,
			InsName:  r.InsName,
			MJDObs:   r.MJDObs,
			MJDEnd:   r.MJDEnd,
			JXX:      pairsFromComplexes(r.JXX),
			JYY:      pairsFromComplexes(r.JYY),
			JXY:      pairsFromComplexes(r.JXY),
			JYX:      pairsFromComplexes(r.JYX),
			StaIndex: r.StaIndex,
		}
	}
	return out
}

func (t *jsonPolarTable) toTable() *oifits.PolarTable {
	out := &oifits.PolarTable{
		Revision: t.Revision,
		DateObs:  t.DateObs,
		NPol:     t.NPol,
		ArrName:  t.ArrName,
		Orient:   t.Orient,
		Model:    t.Model,
		Records:  make([]oifits.PolarRecord, len(t.Records)),
	}
	for i, r := range t.Records {
		out.Records[i] = oifits.PolarRecord{
			TargetID: r.TargetID,
			InsName:  r.InsName,
			MJDObs:   r.MJDObs,
			MJDEnd:   r.MJDEnd,
			JXX:      complexesFromPairs(r.JXX),
			JYY:      complexesFromPairs(r.JYY),
			JXY:      complexesFromPairs(r.JXY),
			JYX:      complexesFromPairs(r.JYX),
			StaIndex: r.StaIndex,
		}
	}
	return out
}
