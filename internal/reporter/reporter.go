package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/scipdup/internal/analyzer"
	"github.com/dshills/scipdup/internal/loader"
	"github.com/dshills/scipdup/pkg/types"
)

// Reporter renders analysis results as human-readable text blocks.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// WriteResults renders one block per file result in the given order and
// returns true if every result succeeded. Failures are rendered under their
// file header and do not stop subsequent blocks.
func (r *Reporter) WriteResults(results []analyzer.FileResult) bool {
	ok := true
	for _, res := range results {
		r.writeHeader(res.Path)
		if res.Err != nil {
			fmt.Fprintf(r.w, "ERROR: %s\n", loader.Describe(res.Err))
			ok = false
			continue
		}
		r.WriteReport(res.Report)
	}
	return ok
}

// WriteReport renders a single successful report: one line per identifier in
// lexicographic order, collision evidence inline, then the unique count.
func (r *Reporter) WriteReport(report *types.Report) {
	if report.Empty() {
		fmt.Fprintf(r.w, "No matching symbols found (patterns: %s).\n",
			strings.Join(report.Patterns, ", "))
		return
	}

	for i := range report.Findings {
		r.writeFinding(&report.Findings[i])
	}

	fmt.Fprintf(r.w, "\nUnique symbols: %d\n", report.UniqueCount())
}

// writeFinding renders one identifier line
func (r *Reporter) writeFinding(f *types.Finding) {
	if f.IsCollision() {
		fmt.Fprintf(r.w, "L%d: %s  (DUPLICATE! also at %s)\n",
			f.FirstLine(), f.Symbol, formatLines(f.ExtraLines()))
		return
	}
	fmt.Fprintf(r.w, "L%d: %s\n", f.FirstLine(), f.Symbol)
}

// writeHeader renders the per-file separator
func (r *Reporter) writeHeader(path string) {
	fmt.Fprintf(r.w, "\n=== %s ===\n", path)
}

// formatLines renders "L40, L88" style evidence lists
func formatLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = fmt.Sprintf("L%d", l)
	}
	return strings.Join(parts, ", ")
}
