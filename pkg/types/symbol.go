package types

import (
	"sort"
	"strings"
)

const (
	// memberScopeMarker denotes member/impl-scoped symbols. Free-standing
	// symbols (types, free functions) never contain it.
	memberScopeMarker = "#"

	// functionSuffix terminates function and method symbols in SCIP
	// identifier syntax.
	functionSuffix = "()."

	// localPrefix marks file-local symbols (local variables, parameters).
	localPrefix = "local "
)

// SymbolID is an opaque, indexer-generated symbol identifier, e.g.
// "rust-analyzer cargo my_crate 0.1.0 my_mod/MyType#neg().".
//
// The identifier is treated as an opaque key except for three structural
// conventions the matching logic relies on: a "#" marks member scope, a
// trailing "()." marks a function or method, and a "local " prefix marks a
// file-local symbol.
type SymbolID string

// IsMemberScoped reports whether the identifier names a member of a type or
// impl block rather than a free-standing symbol.
func (s SymbolID) IsMemberScoped() bool {
	return strings.Contains(string(s), memberScopeMarker)
}

// IsFunction reports whether the identifier names a function or method.
func (s SymbolID) IsFunction() bool {
	return strings.HasSuffix(string(s), functionSuffix)
}

// IsLocal reports whether the identifier names a file-local symbol.
func (s SymbolID) IsLocal() bool {
	return strings.HasPrefix(string(s), localPrefix)
}

// Quoted returns the identifier in its serialized JSON form, as it appears
// verbatim on a raw index line.
func (s SymbolID) Quoted() string {
	return `"` + string(s) + `"`
}

// CandidateSet is the set of unique symbol identifiers that passed the
// selector's filter predicates for a single run. Insertion order carries no
// meaning; presentation order is applied by the reporter.
type CandidateSet map[SymbolID]struct{}

// Add inserts an identifier. Duplicate inserts are no-ops.
func (c CandidateSet) Add(s SymbolID) {
	c[s] = struct{}{}
}

// Contains reports whether the identifier is in the set.
func (c CandidateSet) Contains(s SymbolID) bool {
	_, ok := c[s]
	return ok
}

// Sorted returns the identifiers in lexicographic order.
func (c CandidateSet) Sorted() []SymbolID {
	out := make([]SymbolID, 0, len(c))
	for s := range c {
		out = append(out, s)
	}
	sortSymbolIDs(out)
	return out
}

// OccurrenceMap maps a symbol identifier to the 1-based line numbers where
// its exact quoted form appears in the raw serialized input. Line lists are
// strictly ascending because the correlator scans sequentially. The map is
// immutable after construction.
type OccurrenceMap map[SymbolID][]int

// Sorted returns the mapped identifiers in lexicographic order.
func (m OccurrenceMap) Sorted() []SymbolID {
	out := make([]SymbolID, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sortSymbolIDs(out)
	return out
}

// sortSymbolIDs sorts identifiers in ascending lexicographic order
func sortSymbolIDs(ids []SymbolID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
}
