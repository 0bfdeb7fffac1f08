// Package correlator implements the positional pass of collision detection:
// re-scanning the raw serialized index text to map each candidate symbol to
// the 1-based lines where its exact quoted form appears.
//
// # Basic Usage
//
//	corr := correlator.New()
//	occ, err := corr.Correlate(raw, candidates)
//	if err != nil {
//	    // *types.CorrelationError: candidates with zero raw-text matches
//	}
//
//	findings := correlator.Classify(occ)
//
// # Scan Strategy
//
// Each line is first checked for the generic `"symbol":` field marker, which
// skips the vast majority of lines without per-candidate comparison. Only on
// a positive pre-filter is the line compared against every candidate's
// quoted form. The scan is sequential, so occurrence lists come out strictly
// ascending.
//
// # Why Raw Text
//
// The parsed structure does not retain positional metadata, and augmenting
// the parse step to carry it would complicate the common path. A second full
// pass over the bytes is the simplest way to report human-meaningful line
// numbers, and is acceptable at single-index-file scale.
package correlator
