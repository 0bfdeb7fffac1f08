// Package selector implements the structural pass of collision detection:
// walking a parsed SCIP index and collecting the candidate set of symbol
// identifiers that match a filter.
//
// # Basic Usage
//
//	sel := selector.New(selector.DefaultFilter())
//	candidates := sel.Select(index)
//
//	for _, id := range candidates.Sorted() {
//	    fmt.Println(id)
//	}
//
// # Filter Semantics
//
// All active predicates are applied as a conjunction:
//   - at least one case-insensitive substring pattern matches
//   - the identifier is member-scoped (contains "#")
//   - the identifier is not file-local ("local " prefix)
//   - the identifier contains no excluded path fragment
//   - with FunctionsOnly, the identifier ends in "()."
//
// The candidate set has set semantics; repeated occurrences of the same
// identifier across documents add nothing. An empty result signals "no
// symbols matched" and is not an error.
package selector
