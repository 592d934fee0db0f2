package oifits

// Header holds the descriptive keywords of an OIFITS primary header.
//
// Telescop, Instrume, Object and DateObs are derived from table contents
// for pure revision-1 datasets (see Dataset.DeriveHeader); revision-2 files
// carry them explicitly.
type Header struct {
	Origin   string // institution
	DateObs  string // UTC start date of observations, "YYYY-MM-DD"
	Telescop string // telescope or array name
	Instrume string // instrument name
	InsMode  string // instrument mode
	Object   string // object designation
	Referenc string // bibliographic reference
	ProgID   string // programme ID
	ProcSoft string // processing software
	ObsTech  string // observation technique
}
