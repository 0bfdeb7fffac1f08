// Package types provides shared type definitions for scipdup.
//
// This package defines the domain types used across the analysis pipeline:
// the parsed SCIP index model, symbol identifiers and their structural
// predicates, candidate sets, occurrence maps, per-file reports, and the
// input-error taxonomy.
//
// # Symbol Identifiers
//
// SymbolID wraps the opaque identifier strings SCIP indexers emit, e.g.
//
//	rust-analyzer cargo my_crate 0.1.0 my_mod/MyType#neg().
//
// Three structural conventions are interpreted:
//
//	id.IsMemberScoped()  // contains "#": member of a type or impl block
//	id.IsFunction()      // ends in "().": function or method symbol
//	id.IsLocal()         // "local " prefix: file-local symbol
//
// # Collision Classification
//
// A Finding records every raw-text line where an identifier appears. Each
// true definition contributes at most two lines (the definition plus one
// metadata record), so a count above two means distinct impl blocks upstream
// serialized to the identical identifier string:
//
//	if finding.IsCollision() {
//	    // same symbol emitted for more than one impl block
//	}
//
// The threshold is a heuristic tied to the `scip print --json` serialization
// shape, not a general collision proof.
//
// # Error Taxonomy
//
// InputError tags every pre-analysis validation failure with an ErrorKind
// (NotFound, Empty, WrongFormat:AnsiColor, WrongFormat:NativeDump,
// MalformedSyntax, PermissionDenied, WrongShape) so each failure mode gets a
// distinct, actionable message. CorrelationError is a separate logic-error
// class for candidates that vanish between the structural pass and the
// raw-text pass; it must never be reported as a normal empty result.
package types
