package oifits

import (
	"fmt"
	"strings"
)

// Summary returns a text report of the dataset contents: header fields,
// then per table kind a count and one line per instance. It does not
// mutate the dataset and each call returns a freshly built string.
func (ds *Dataset) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "OIFITS data:\n")
	fmt.Fprintf(&b, "  DATE-OBS=%s  OBJECT='%s'\n", ds.Header.DateObs, ds.Header.Object)
	fmt.Fprintf(&b, "  TELESCOP='%s'  INSTRUME='%s'\n", ds.Header.Telescop, ds.Header.Instrume)
	fmt.Fprintf(&b, "  INSMODE='%s'  OBSTECH='%s'\n\n", ds.Header.InsMode, ds.Header.ObsTech)

	fmt.Fprintf(&b, "  %d OI_ARRAY tables:\n", len(ds.Arrays))
	for i, a := range ds.Arrays {
		fmt.Fprintf(&b, "    #%-2d ARRNAME='%s'  %d elements\n",
			i+1, a.ArrName, len(a.Elements))
	}

	fmt.Fprintf(&b, "  %d OI_WAVELENGTH tables:\n", len(ds.Wavelengths))
	for i, w := range ds.Wavelengths {
		fmt.Fprintf(&b, "    #%-2d INSNAME='%s'  %d channels  %7.1f-%7.1fnm\n",
			i+1, w.InsName, w.NumChannels(),
			1e9*w.MinWavelength(), 1e9*w.MaxWavelength())
	}

	fmt.Fprintf(&b, "  %d OI_CORR tables:\n", len(ds.Corrs))
	for i, c := range ds.Corrs {
		fmt.Fprintf(&b, "    #%-2d CORRNAME='%s'  %d/%d non-zero correlations\n",
			i+1, c.CorrName, c.NumCorr(), c.NData)
	}

	fmt.Fprintf(&b, "  %d OI_INSPOL tables:\n", len(ds.Polars))
	for i, p := range ds.Polars {
		fmt.Fprintf(&b, "    #%-2d ARRNAME='%s'  %d records\n",
			i+1, p.ArrName, len(p.Records))
	}

	fmt.Fprintf(&b, "  %d OI_VIS tables:\n", len(ds.Vis))
	for i, v := range ds.Vis {
		writeDataSummary(&b, i+1, v.DateObs, v.InsName, v.ArrName, v.CorrName,
			len(v.Records), v.NWave)
	}

	fmt.Fprintf(&b, "  %d OI_VIS2 tables:\n", len(ds.Vis2))
	for i, v := range ds.Vis2 {
		writeDataSummary(&b, i+1, v.DateObs, v.InsName, v.ArrName, v.CorrName,
			len(v.Records), v.NWave)
	}

	fmt.Fprintf(&b, "  %d OI_T3 tables:\n", len(ds.T3))
	for i, t := range ds.T3 {
		writeDataSummary(&b, i+1, t.DateObs, t.InsName, t.ArrName, t.CorrName,
			len(t.Records), t.NWave)
	}

	fmt.Fprintf(&b, "  %d OI_FLUX tables:\n", len(ds.Flux))
	for i, f := range ds.Flux {
		writeDataSummary(&b, i+1, f.DateObs, f.InsName, f.ArrName, f.CorrName,
			len(f.Records), f.NWave)
	}

	return b.String()
}

func writeDataSummary(b *strings.Builder, n int, dateObs, insname, arrname, corrname string, numRec, nwave int) {
	fmt.Fprintf(b, "    #%-2d DATE-OBS=%s\n", n, dateObs)
	fmt.Fprintf(b, "    INSNAME='%s'  ARRNAME='%s'  CORRNAME='%s'\n",
		insname, arrname, corrname)
	fmt.Fprintf(b, "     %5d records x %3d wavebands\n", numRec, nwave)
}

// String implements fmt.Stringer.
func (ds *Dataset) String() string {
	return ds.Summary()
}
