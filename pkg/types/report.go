package types

import "errors"

// Validation errors for reports
var (
	ErrEmptySymbol   = errors.New("finding symbol is required")
	ErrNoOccurrences = errors.New("finding must have at least one occurrence line")
	ErrUnorderedOccs = errors.New("occurrence lines must be strictly ascending")
)

// collisionThreshold is the expected per-definition line budget: one
// structural definition line plus at most one associated metadata line.
// More occurrences than that imply the same identifier string was emitted
// for more than one distinct impl block upstream. This is a documented
// heuristic tied to the serialization shape of `scip print --json` output,
// not a structural guarantee.
const collisionThreshold = 2

// Finding is the per-identifier outcome of one analysis run.
type Finding struct {
	Symbol SymbolID
	// Lines are the 1-based raw-text line numbers where the quoted
	// identifier appears, ascending.
	Lines []int
}

// FirstLine returns the first occurrence line.
func (f *Finding) FirstLine() int {
	if len(f.Lines) == 0 {
		return 0
	}
	return f.Lines[0]
}

// ExtraLines returns all occurrence lines beyond the first, the "also occurs
// at" evidence for colliding symbols.
func (f *Finding) ExtraLines() []int {
	if len(f.Lines) <= 1 {
		return nil
	}
	return f.Lines[1:]
}

// IsCollision reports whether the occurrence count exceeds the expected
// definition-plus-metadata baseline.
func (f *Finding) IsCollision() bool {
	return len(f.Lines) > collisionThreshold
}

// Validate checks structural integrity of the finding
func (f *Finding) Validate() error {
	if f.Symbol == "" {
		return ErrEmptySymbol
	}
	if len(f.Lines) == 0 {
		return ErrNoOccurrences
	}
	for i := 1; i < len(f.Lines); i++ {
		if f.Lines[i] <= f.Lines[i-1] {
			return ErrUnorderedOccs
		}
	}
	return nil
}

// Report is the structured result of analyzing one input file. Findings are
// ordered lexicographically by symbol identifier.
type Report struct {
	Path     string
	Patterns []string
	Findings []Finding
}

// UniqueCount returns the number of distinct identifiers found, colliding
// or not.
func (r *Report) UniqueCount() int {
	return len(r.Findings)
}

// CollisionCount returns the number of identifiers classified as colliding.
func (r *Report) CollisionCount() int {
	n := 0
	for i := range r.Findings {
		if r.Findings[i].IsCollision() {
			n++
		}
	}
	return n
}

// Empty reports whether no symbols matched the filter. An empty report is a
// valid outcome, not a failure.
func (r *Report) Empty() bool {
	return len(r.Findings) == 0
}
