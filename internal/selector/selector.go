package selector

import (
	"strings"

	"github.com/dshills/scipdup/pkg/types"
)

// Default filter values. The CLI layer supplies these explicitly; the
// selector itself carries no implicit global state.
var (
	// DefaultPatterns are the trait-method names whose impl symbols most
	// often collide in practice.
	DefaultPatterns = []string{"neg", "mul"}

	// DefaultExcludeSubstrings drops noise sources that are not under the
	// caller's control: test directories and standard-library provenance.
	DefaultExcludeSubstrings = []string{"tests/", "/core "}
)

// Filter configures which symbol identifiers the selector keeps. All active
// predicates are applied as a conjunction.
type Filter struct {
	// Patterns are case-insensitive substrings; an identifier matches if it
	// contains at least one of them.
	Patterns []string

	// FunctionsOnly additionally requires the function-symbol suffix "().".
	// When false, non-function symbols (types, output bindings) are kept
	// as well.
	FunctionsOnly bool

	// ExcludeLocal drops "local "-prefixed identifiers. Local variables are
	// never impl-dispatch symbols.
	ExcludeLocal bool

	// ExcludeSubstrings drops identifiers containing any of these path
	// fragments.
	ExcludeSubstrings []string
}

// DefaultFilter returns the filter configuration matching the tool's
// defaults: neg/mul function symbols, locals and test/core noise excluded.
func DefaultFilter() Filter {
	return Filter{
		Patterns:          DefaultPatterns,
		FunctionsOnly:     true,
		ExcludeLocal:      true,
		ExcludeSubstrings: DefaultExcludeSubstrings,
	}
}

// Selector walks a parsed SCIP index and produces the candidate set of
// symbol identifiers matching its filter.
type Selector struct {
	filter Filter
	// lowered holds the patterns pre-lowercased for case-insensitive
	// matching.
	lowered []string
}

// New creates a Selector for the given filter. An empty pattern list falls
// back to the defaults.
func New(filter Filter) *Selector {
	if len(filter.Patterns) == 0 {
		filter.Patterns = DefaultPatterns
	}
	lowered := make([]string, len(filter.Patterns))
	for i, p := range filter.Patterns {
		lowered[i] = strings.ToLower(p)
	}
	return &Selector{filter: filter, lowered: lowered}
}

// Filter returns the active filter configuration.
func (s *Selector) Filter() Filter {
	return s.filter
}

// Select iterates every symbol record in every document exactly once and
// returns the set of identifiers passing all active predicates. An empty
// result is valid and means "no symbols matched", not failure. The selector
// assumes structurally valid input; shape validation happens in the loader
// before this runs.
func (s *Selector) Select(index *types.Index) types.CandidateSet {
	candidates := make(types.CandidateSet)
	for _, doc := range index.Documents {
		for _, sym := range doc.Symbols {
			if s.Matches(sym.Symbol) {
				candidates.Add(sym.Symbol)
			}
		}
	}
	return candidates
}

// Matches applies the full predicate conjunction to a single identifier.
func (s *Selector) Matches(id types.SymbolID) bool {
	if !s.matchesPattern(id) {
		return false
	}

	// Only member/impl-scoped symbols are ever of interest.
	if !id.IsMemberScoped() {
		return false
	}

	if s.filter.ExcludeLocal && id.IsLocal() {
		return false
	}

	for _, excl := range s.filter.ExcludeSubstrings {
		if strings.Contains(string(id), excl) {
			return false
		}
	}

	if s.filter.FunctionsOnly && !id.IsFunction() {
		return false
	}

	return true
}

// matchesPattern reports whether the identifier contains at least one of the
// configured patterns, case-insensitively.
func (s *Selector) matchesPattern(id types.SymbolID) bool {
	lower := strings.ToLower(string(id))
	for _, p := range s.lowered {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
