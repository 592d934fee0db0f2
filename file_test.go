package oifits_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interferolib/oifits"
	"github.com/interferolib/oifits/errors"
	"github.com/interferolib/oifits/tabfile"
)

func writeDataset(t *testing.T, ds *oifits.Dataset) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.oifits")
	require.NoError(t, oifits.WriteFile(tabfile.New(), path, ds))
	return path
}

func TestWriteEmptyDataset(t *testing.T) {
	// An empty dataset still writes a header and a target catalog.
	ds := oifits.NewDataset()
	path := writeDataset(t, ds)

	got := oifits.NewDataset()
	require.NoError(t, oifits.ReadFile(tabfile.New(), path, got))
	assert.Empty(t, got.Targets.Targets)
	assert.Equal(t, oifits.Revision2, got.Targets.Revision)
}

func TestRoundTrip(t *testing.T) {
	ds := newTestDataset()
	path := writeDataset(t, ds)

	got := oifits.NewDataset()
	require.NoError(t, oifits.ReadFile(tabfile.New(), path, got))

	assert.Equal(t, ds.Header, got.Header)
	assert.Equal(t, ds.Targets, got.Targets)
	require.Len(t, got.Arrays, 1)
	require.Len(t, got.Wavelengths, 1)
	require.Len(t, got.Corrs, 1)
	require.Len(t, got.Polars, 1)
	require.Len(t, got.Vis, 1)
	require.Len(t, got.Vis2, 1)
	require.Len(t, got.T3, 1)
	require.Len(t, got.Flux, 1)

	assert.Equal(t, ds.Arrays[0], got.Arrays[0])
	assert.Equal(t, ds.Wavelengths[0], got.Wavelengths[0])
	assert.Equal(t, ds.Corrs[0], got.Corrs[0])
	assert.Equal(t, ds.Polars[0], got.Polars[0])
	assert.Equal(t, ds.Vis[0], got.Vis[0])
	assert.Equal(t, ds.Vis2[0], got.Vis2[0])
	assert.Equal(t, ds.T3[0], got.T3[0])
	assert.Equal(t, ds.Flux[0], got.Flux[0])

	// The loaded dataset is still pure revision 2.
	assert.True(t, got.IsRevisionTwo())
}

func TestReadBuildsIndices(t *testing.T) {
	path := writeDataset(t, newTestDataset())

	got := oifits.NewDataset()
	require.NoError(t, oifits.ReadFile(tabfile.New(), path, got))

	// Every non-empty reference in a measurement table resolves to a
	// table whose name matches the reference.
	for _, v := range got.Vis {
		w, err := got.LookupWavelength(v.InsName)
		require.NoError(t, err)
		assert.Equal(t, v.InsName, w.InsName)
		if v.ArrName != "" {
			a, err := got.LookupArray(v.ArrName)
			require.NoError(t, err)
			assert.Equal(t, v.ArrName, a.ArrName)
		}
		if v.CorrName != "" {
			c, err := got.LookupCorr(v.CorrName)
			require.NoError(t, err)
			assert.Equal(t, v.CorrName, c.CorrName)
		}
	}
}

func TestReadReorderedFile(t *testing.T) {
	// Extension order on disk is not assumed: feed the tables through the
	// collaborator in a scrambled order and make sure every kind loads.
	path := filepath.Join(t.TempDir(), "scrambled.oifits")
	ds := newTestDataset()

	f := tabfile.New()
	require.NoError(t, f.Create(path))
	require.NoError(t, f.WriteHeader(ds.Header))
	require.NoError(t, f.WriteTargets(ds.Targets))
	require.NoError(t, f.WriteVis2(ds.Vis2[0], 1))
	require.NoError(t, f.WriteFlux(ds.Flux[0], 1))
	require.NoError(t, f.WriteWavelength(ds.Wavelengths[0], 1))
	require.NoError(t, f.WriteT3(ds.T3[0], 1))
	require.NoError(t, f.WriteCorr(ds.Corrs[0], 1))
	require.NoError(t, f.WriteVis(ds.Vis[0], 1))
	require.NoError(t, f.WritePolar(ds.Polars[0], 1))
	require.NoError(t, f.WriteArray(ds.Arrays[0], 1))
	require.NoError(t, f.Close())

	got := oifits.NewDataset()
	require.NoError(t, oifits.ReadFile(tabfile.New(), path, got))

	assert.Len(t, got.Arrays, 1)
	assert.Len(t, got.Wavelengths, 1)
	assert.Len(t, got.Corrs, 1)
	assert.Len(t, got.Polars, 1)
	assert.Len(t, got.Vis, 1)
	assert.Len(t, got.Vis2, 1)
	assert.Len(t, got.T3, 1)
	assert.Len(t, got.Flux, 1)

	w, err := got.LookupWavelength(testInsName)
	require.NoError(t, err)
	assert.Equal(t, testInsName, w.InsName)
}

func TestDerivedHeader(t *testing.T) {
	// Revision-1 files do not carry the descriptive keywords reliably, so
	// the pipeline recomputes them from table contents after loading.
	path := writeDataset(t, newRevision1Dataset())

	got := oifits.NewDataset()
	require.NoError(t, oifits.ReadFile(tabfile.New(), path, got))

	assert.Equal(t, "VLTI", got.Header.Telescop)
	assert.Equal(t, "GRAVITY_SC", got.Header.Instrume)
	assert.Equal(t, "Betelgeuse", got.Header.Object)
	assert.Equal(t, "2019-03-04", got.Header.DateObs)
}

func TestDerivedHeaderMultipleArrays(t *testing.T) {
	ds := newRevision1Dataset()
	ds.Arrays = append(ds.Arrays, makeArray(oifits.Revision1, "CHARA"))
	path := writeDataset(t, ds)

	got := oifits.NewDataset()
	require.NoError(t, oifits.ReadFile(tabfile.New(), path, got))

	assert.Equal(t, "MULTIPLE", got.Header.Telescop)
}

func TestDerivedHeaderNoArray(t *testing.T) {
	ds := newRevision1Dataset()
	ds.Arrays = nil
	ds.Vis2[0].ArrName = ""
	path := writeDataset(t, ds)

	got := oifits.NewDataset()
	require.NoError(t, oifits.ReadFile(tabfile.New(), path, got))

	assert.Equal(t, "UNKNOWN", got.Header.Telescop)
}

func TestDerivedHeaderSkipsRevisionTwo(t *testing.T) {
	ds := newTestDataset()
	ds.Header.Telescop = "KEEP_ME"
	path := writeDataset(t, ds)

	got := oifits.NewDataset()
	require.NoError(t, oifits.ReadFile(tabfile.New(), path, got))

	assert.Equal(t, "KEEP_ME", got.Header.Telescop)
}

func TestWriteRefusesExistingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.oifits")
	require.NoError(t, os.WriteFile(path, []byte("precious"), 0o644))

	err := oifits.WriteFile(tabfile.New(), path, oifits.NewDataset())
	require.Error(t, err)
	assert.True(t, errors.IsExists(err))

	// The existing file is untouched.
	raw, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "precious", string(raw))
}

func TestReadMissingFile(t *testing.T) {
	err := oifits.ReadFile(tabfile.New(), filepath.Join(t.TempDir(), "nope.oifits"), oifits.NewDataset())
	require.Error(t, err)
	assert.False(t, errors.IsEndOfData(err))
}

func TestReadUnresolvedReferenceIsNotFatal(t *testing.T) {
	// A measurement table naming a wavelength table the file does not
	// contain still loads; only the later lookup reports the absence.
	ds := newTestDataset()
	ds.Vis2[0].InsName = "NOT_IN_FILE"
	path := writeDataset(t, ds)

	got := oifits.NewDataset()
	require.NoError(t, oifits.ReadFile(tabfile.New(), path, got))

	require.Len(t, got.Vis2, 1)
	_, err := got.LookupWavelength("NOT_IN_FILE")
	assert.True(t, errors.IsNotFound(err))
}
