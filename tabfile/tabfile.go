// Package tabfile is a reference implementation of the oifits.TableIO
// collaborator. It persists a dataset as a single JSON document per path,
// preserving the table order the pipeline wrote, and serves per-kind
// read-next scans over that order.
//
// It exists so the pipeline, the CLI and the tests run without an external
// binary-table codec; a FITS-backed implementation satisfies the same
// interface.
package tabfile

import (
	"encoding/json"
	"os"

	"github.com/interferolib/oifits"
	"github.com/interferolib/oifits/errors"
)

// Table kind tags stored in the document.
const (
	kindArray      = "array"
	kindWavelength = "wavelength"
	kindCorr       = "corr"
	kindPolar      = "polar"
	kindVis        = "vis"
	kindVis2       = "vis2"
	kindT3         = "t3"
	kindFlux       = "flux"
)

type entry struct {
	Kind   string          `json:"kind"`
	ExtVer int             `json:"extver"`
	Table  json.RawMessage `json:"table"`
}

type document struct {
	Header  oifits.Header      `json:"header"`
	Targets oifits.TargetTable `json:"targets"`
	Tables  []entry            `json:"tables"`
}

type mode int

const (
	modeClosed mode = iota
	modeReading
	modeWriting
)

// File drives one on-disk document at a time. The zero value is ready for
// Create or Open. Not safe for concurrent use.
type File struct {
	path    string
	mode    mode
	out     *os.File
	doc     document
	cursors map[string]int
}

// New returns a File ready for Create or Open.
func New() *File {
	return &File{}
}

var _ oifits.TableIO = (*File)(nil)

// Create opens a new document for writing. The path is reserved
// immediately; an existing path is never truncated.
func (f *File) Create(path string) error {
	if f.mode != modeClosed {
		return errors.Newf("tabfile: %s still open", f.path)
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrap(errors.ErrExists, path)
		}
		return errors.Wrapf(err, "create %s", path)
	}
	f.path = path
	f.mode = modeWriting
	f.out = out
	f.doc = document{}
	return nil
}

// Open loads an existing document read-only.
func (f *File) Open(path string) error {
	if f.mode != modeClosed {
		return errors.Newf("tabfile: %s still open", f.path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	f.path = path
	f.mode = modeReading
	f.doc = doc
	f.cursors = make(map[string]int)
	return nil
}

// Close flushes a written document to disk, or ends a read session.
func (f *File) Close() error {
	switch f.mode {
	case modeWriting:
		raw, err := json.Marshal(f.doc)
		if err != nil {
			f.out.Close()
			f.reset()
			return errors.Wrapf(err, "encode %s", f.path)
		}
		if _, err := f.out.Write(raw); err != nil {
			f.out.Close()
			f.reset()
			return errors.Wrapf(err, "write %s", f.path)
		}
		err = f.out.Close()
		f.reset()
		if err != nil {
			return errors.Wrapf(err, "close %s", f.path)
		}
		return nil
	case modeReading:
		f.reset()
		return nil
	default:
		return errors.New("tabfile: not open")
	}
}

func (f *File) reset() {
	f.path = ""
	f.mode = modeClosed
	f.out = nil
	f.doc = document{}
	f.cursors = nil
}

// Rewind repositions every per-kind read cursor before the first table.
func (f *File) Rewind() error {
	if f.mode != modeReading {
		return errors.New("tabfile: not open for reading")
	}
	f.cursors = make(map[string]int)
	return nil
}

func (f *File) ReadHeader(h *oifits.Header) error {
	if f.mode != modeReading {
		return errors.New("tabfile: not open for reading")
	}
	*h = f.doc.Header
	return nil
}

func (f *File) WriteHeader(h oifits.Header) error {
	if f.mode != modeWriting {
		return errors.New("tabfile: not open for writing")
	}
	f.doc.Header = h
	return nil
}

func (f *File) ReadTargets(t *oifits.TargetTable) error {
	if f.mode != modeReading {
		return errors.New("tabfile: not open for reading")
	}
	*t = f.doc.Targets
	if t.Targets == nil {
		t.Targets = []oifits.Target{}
	}
	return nil
}

func (f *File) WriteTargets(t oifits.TargetTable) error {
	if f.mode != modeWriting {
		return errors.New("tabfile: not open for writing")
	}
	f.doc.Targets = t
	return nil
}

// readNext scans forward from this kind's cursor for its next occurrence
// and decodes it into out.
func (f *File) readNext(kind string, out interface{}) error {
	if f.mode != modeReading {
		return errors.New("tabfile: not open for reading")
	}
	for i := f.cursors[kind]; i < len(f.doc.Tables); i++ {
		if f.doc.Tables[i].Kind != kind {
			continue
		}
		if err := json.Unmarshal(f.doc.Tables[i].Table, out); err != nil {
			return errors.Wrapf(err, "decode %s table", kind)
		}
		f.cursors[kind] = i + 1
		return nil
	}
	f.cursors[kind] = len(f.doc.Tables)
	return errors.Wrapf(errors.ErrEndOfData, "no more %s tables", kind)
}

func (f *File) writeTable(kind string, extVer int, table interface{}) error {
	if f.mode != modeWriting {
		return errors.New("tabfile: not open for writing")
	}
	raw, err := json.Marshal(table)
	if err != nil {
		return errors.Wrapf(err, "encode %s table", kind)
	}
	f.doc.Tables = append(f.doc.Tables, entry{Kind: kind, ExtVer: extVer, Table: raw})
	return nil
}

func (f *File) ReadNextArray() (*oifits.ArrayTable, error) {
	var t oifits.ArrayTable
	if err := f.readNext(kindArray, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (f *File) WriteArray(t *oifits.ArrayTable, extVer int) error {
	return f.writeTable(kindArray, extVer, t)
}

func (f *File) ReadNextWavelength() (*oifits.WavelengthTable, error) {
	var t oifits.WavelengthTable
	if err := f.readNext(kindWavelength, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (f *File) WriteWavelength(t *oifits.WavelengthTable, extVer int) error {
	return f.writeTable(kindWavelength, extVer, t)
}

func (f *File) ReadNextCorr() (*oifits.CorrTable, error) {
	var t oifits.CorrTable
	if err := f.readNext(kindCorr, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (f *File) WriteCorr(t *oifits.CorrTable, extVer int) error {
	return f.writeTable(kindCorr, extVer, t)
}

func (f *File) ReadNextPolar() (*oifits.PolarTable, error) {
	var t jsonPolarTable
	if err := f.readNext(kindPolar, &t); err != nil {
		return nil, err
	}
	return t.toTable(), nil
}

func (f *File) WritePolar(t *oifits.PolarTable, extVer int) error {
	return f.writeTable(kindPolar, extVer, fromPolarTable(t))
}

func (f *File) ReadNextVis() (*oifits.VisTable, error) {
	var t oifits.VisTable
	if err := f.readNext(kindVis, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (f *File) WriteVis(t *oifits.VisTable, extVer int) error {
	return f.writeTable(kindVis, extVer, t)
}

func (f *File) ReadNextVis2() (*oifits.Vis2Table, error) {
	var t oifits.Vis2Table
	if err := f.readNext(kindVis2, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (f *File) WriteVis2(t *oifits.Vis2Table, extVer int) error {
	return f.writeTable(kindVis2, extVer, t)
}

func (f *File) ReadNextT3() (*oifits.T3Table, error) {
	var t oifits.T3Table
	if err := f.readNext(kindT3, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (f *File) WriteT3(t *oifits.T3Table, extVer int) error {
	return f.writeTable(kindT3, extVer, t)
}

func (f *File) ReadNextFlux() (*oifits.FluxTable, error) {
	var t oifits.FluxTable
	if err := f.readNext(kindFlux, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (f *File) WriteFlux(t *oifits.FluxTable, extVer int) error {
	return f.writeTable(kindFlux, extVer, t)
}
