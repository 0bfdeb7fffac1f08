// Package loader validates and parses SCIP JSON index files before the core
// analysis runs.
//
// Validation happens in a fixed order, each failure producing a
// *types.InputError with its own kind: existence and readability, zero
// length, leading-byte sniffing for ANSI color codes and the SCIP CLI's
// native struct dump, JSON syntax, and finally the top-level shape contract
// (an object containing a "documents" key).
//
//	index, raw, err := loader.Load("index.json")
//	if err != nil {
//	    fmt.Println(loader.Describe(err))
//	}
//
// The raw bytes are returned alongside the parsed index because the
// correlator makes its own line-by-line pass over the serialized text.
package loader
