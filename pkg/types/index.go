package types

// Index is the parsed form of a SCIP index that has been converted to JSON
// by `scip print --json`. Only the fields the selector walks are modeled;
// everything else in the upstream format is ignored during decoding.
type Index struct {
	Documents []Document `json:"documents"`
}

// Document holds one source file's worth of indexed information, read-only
// to this tool. The symbols list is the ordered sequence of symbol records
// the upstream indexer emitted for the file.
type Document struct {
	RelativePath string              `json:"relative_path,omitempty"`
	Symbols      []SymbolInformation `json:"symbols,omitempty"`
}

// SymbolInformation is a single symbol record within a document. The symbol
// identifier string is the only attribute this tool interprets; whether the
// record is a definition or a reference is not distinguishable from the
// parsed structure alone.
type SymbolInformation struct {
	Symbol SymbolID `json:"symbol"`
}
