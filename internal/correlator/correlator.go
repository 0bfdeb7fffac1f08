package correlator

import (
	"bufio"
	"bytes"
	"sort"
	"strings"

	"github.com/dshills/scipdup/pkg/types"
)

// symbolFieldMarker is the cheap line pre-filter: a line that cannot contain
// a symbol field never needs per-candidate comparison.
const symbolFieldMarker = `"symbol":`

// maxLineSize bounds the scanner buffer. Serialized symbol records are
// short, but a single-line (non-pretty-printed) index can exceed the bufio
// default.
const maxLineSize = 16 * 1024 * 1024

// Correlator re-scans the raw serialized index text and maps each candidate
// identifier to the lines where its exact quoted form appears. Re-scanning
// the raw bytes, rather than walking the parsed structure, recovers
// human-usable line numbers without requiring the parse step to carry
// positional metadata; the cost is a second full pass over the input.
type Correlator struct{}

// New creates a new Correlator instance
func New() *Correlator {
	return &Correlator{}
}

// Correlate scans raw exactly once, line by line with 1-based numbering, and
// returns the occurrence map for the candidate set. Line lists are strictly
// ascending by construction.
//
// A candidate with zero raw-text matches indicates an encoding mismatch
// between the parsed structure and the serialized text, or a logic error;
// it is returned as a *types.CorrelationError alongside the partial map so
// callers can surface it distinctly from an ordinary empty result.
func (c *Correlator) Correlate(raw []byte, candidates types.CandidateSet) (types.OccurrenceMap, error) {
	occurrences := make(types.OccurrenceMap, len(candidates))

	// Quoted forms are precomputed once; the scan compares against every
	// candidate only on lines that pass the pre-filter.
	quoted := make(map[types.SymbolID]string, len(candidates))
	for id := range candidates {
		quoted[id] = id.Quoted()
	}

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if !strings.Contains(line, symbolFieldMarker) {
			continue
		}
		for id, q := range quoted {
			if strings.Contains(line, q) {
				occurrences[id] = append(occurrences[id], lineNum)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if missing := missingCandidates(candidates, occurrences); len(missing) > 0 {
		return occurrences, &types.CorrelationError{Missing: missing}
	}

	return occurrences, nil
}

// missingCandidates returns candidates absent from the occurrence map, in
// lexicographic order for stable error messages.
func missingCandidates(candidates types.CandidateSet, occ types.OccurrenceMap) []types.SymbolID {
	var missing []types.SymbolID
	for id := range candidates {
		if _, ok := occ[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

// Classify converts a completed occurrence map into findings ordered
// lexicographically by identifier. Collision classification itself lives on
// types.Finding so the threshold is applied uniformly everywhere.
func Classify(occ types.OccurrenceMap) []types.Finding {
	findings := make([]types.Finding, 0, len(occ))
	for _, id := range occ.Sorted() {
		findings = append(findings, types.Finding{
			Symbol: id,
			Lines:  occ[id],
		})
	}
	return findings
}
