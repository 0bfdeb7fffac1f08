package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/scipdup/pkg/types"
)

// sniffLen is how many leading bytes are inspected for known bad formats
// before JSON decoding is attempted.
const sniffLen = 100

// conversionHint names the upstream command that produces the expected
// input. Both wrong-format kinds carry it because capturing the wrong
// `scip print` output is the dominant real-world mistake.
const conversionHint = "try: scip print --json <file.scip> > output.json"

// nativeDumpPrefix is the prefix of the SCIP CLI's own Go-struct debug
// printer, seen when `scip print` runs without --json.
const nativeDumpPrefix = "&scip."

// Load validates and parses one SCIP JSON index file, returning both the
// parsed structure and the raw bytes so the correlator can make its own
// pass. Every failure is a *types.InputError with a distinct kind.
func Load(path string) (*types.Index, []byte, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}

	if len(raw) == 0 {
		return nil, nil, types.NewInputError(types.KindEmpty, path, "file is empty: %s", path)
	}

	if err := sniffFormat(path, raw); err != nil {
		return nil, nil, err
	}

	index, err := decode(path, raw)
	if err != nil {
		return nil, nil, err
	}

	return index, raw, nil
}

// readFile reads the file fully, mapping OS errors onto the taxonomy. Read
// errors outside the taxonomy pass through wrapped rather than mislabeled.
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil, types.NewInputError(types.KindNotFound, path,
			"path is a directory, expected a JSON index file: %s", path)
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		return raw, nil
	}
	switch {
	case os.IsNotExist(err):
		return nil, types.NewInputError(types.KindNotFound, path, "file not found: %s", path)
	case os.IsPermission(err):
		return nil, types.NewInputError(types.KindPermissionDenied, path, "permission denied: %s", path)
	default:
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
}

// sniffFormat checks the leading bytes against the known set of bad-format
// signatures. The set is small and stable, so these stay explicit string
// checks rather than a magic-byte table.
func sniffFormat(path string, raw []byte) error {
	head := raw
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	s := string(head)

	if strings.Contains(s, "\x1b[") || strings.Contains(s, "[0m") {
		return types.NewInputError(types.KindAnsiColor, path,
			"file contains ANSI escape codes (not valid JSON): %s\n"+
				"  this looks like colored debug output, not JSON\n"+
				"  %s", path, conversionHint)
	}

	if strings.HasPrefix(s, nativeDumpPrefix) {
		return types.NewInputError(types.KindNativeDump, path,
			"file contains Go struct format (not valid JSON): %s\n"+
				"  this looks like 'scip print' output without the --json flag\n"+
				"  %s", path, conversionHint)
	}

	return nil
}

// decode parses the raw bytes, distinguishing syntax failures from shape
// failures. The shape contract: top level is a JSON object containing a
// "documents" key.
func decode(path string, raw []byte) (*types.Index, error) {
	// Decoding into a raw-message map first separates "not an object" from
	// "not JSON" without a full second parse of the document bodies.
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return nil, types.NewInputError(types.KindWrongShape, path,
				"expected a JSON object at the top level: %s", path)
		}
		ie := types.NewInputError(types.KindMalformedSyntax, path, "invalid JSON in %s", path)
		ie.Err = err
		return nil, ie
	}

	if _, ok := top["documents"]; !ok {
		return nil, types.NewInputError(types.KindWrongShape, path,
			"missing 'documents' key in JSON (not a SCIP index?): %s", path)
	}

	var index types.Index
	if err := json.Unmarshal(raw, &index); err != nil {
		ie := types.NewInputError(types.KindWrongShape, path,
			"'documents' does not decode as a SCIP document list: %s", path)
		ie.Err = err
		return nil, ie
	}

	return &index, nil
}

// Describe renders an input error the way the CLI reports it. Non-input
// errors fall through to their own message.
func Describe(err error) string {
	if ie, ok := types.AsInputError(err); ok {
		return fmt.Sprintf("[%s] %s", ie.Kind, ie.Message)
	}
	return err.Error()
}
