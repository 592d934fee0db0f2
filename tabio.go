package oifits

// TableIO is the contract required of the external tabular I/O layer that
// encodes tables on disk. The file pipeline drives exactly one file per
// call through this interface; exclusive use of the path for the duration
// of the call is assumed.
//
// Every ReadNext method returns the next table of its kind at or after the
// current position, or an error wrapping errors.ErrEndOfData when no
// further table of that kind exists. Any other error is fatal to the
// pipeline call that received it.
type TableIO interface {
	// Create opens a new file for writing. It must fail with an error
	// wrapping errors.ErrExists rather than truncate an existing path.
	Create(path string) error
	// Open opens an existing file read-only.
	Open(path string) error
	Close() error
	// Rewind repositions the read cursor before the first table, so a
	// per-kind scan can restart from the top of the file.
	Rewind() error

	ReadHeader(h *Header) error
	WriteHeader(h Header) error

	ReadTargets(t *TargetTable) error
	WriteTargets(t TargetTable) error

	ReadNextArray() (*ArrayTable, error)
	WriteArray(t *ArrayTable, extVer int) error

	ReadNextWavelength() (*WavelengthTable, error)
	WriteWavelength(t *WavelengthTable, extVer int) error

	ReadNextCorr() (*CorrTable, error)
	WriteCorr(t *CorrTable, extVer int) error

	ReadNextPolar() (*PolarTable, error)
	WritePolar(t *PolarTable, extVer int) error

	ReadNextVis() (*VisTable, error)
	WriteVis(t *VisTable, extVer int) error

	ReadNextVis2() (*Vis2Table, error)
	WriteVis2(t *Vis2Table, extVer int) error

	ReadNextT3() (*T3Table, error)
	WriteT3(t *T3Table, extVer int) error

	ReadNextFlux() (*FluxTable, error)
	WriteFlux(t *FluxTable, extVer int) error
}
