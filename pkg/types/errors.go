package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies input failures detected before the core algorithm
// runs. Every kind maps to a distinct, actionable message because misuse of
// the upstream conversion tool is the dominant real-world failure mode.
type ErrorKind string

const (
	// KindNotFound - the path does not exist.
	KindNotFound ErrorKind = "NotFound"
	// KindEmpty - the file has zero length.
	KindEmpty ErrorKind = "Empty"
	// KindAnsiColor - content contains terminal color-escape sequences,
	// i.e. captured colorized debug output instead of JSON.
	KindAnsiColor ErrorKind = "WrongFormat:AnsiColor"
	// KindNativeDump - content matches the upstream indexer's own non-JSON
	// structured-dump prefix.
	KindNativeDump ErrorKind = "WrongFormat:NativeDump"
	// KindMalformedSyntax - content is not valid JSON at all.
	KindMalformedSyntax ErrorKind = "MalformedSyntax"
	// KindPermissionDenied - the file is unreadable due to access control.
	KindPermissionDenied ErrorKind = "PermissionDenied"
	// KindWrongShape - valid JSON whose top level is not an object or lacks
	// the required "documents" key.
	KindWrongShape ErrorKind = "WrongShape"
)

// InputError is a validation failure for a single input file. It is always
// recovered at the per-file boundary: one failing file never aborts the
// remaining files in a multi-file invocation.
type InputError struct {
	Kind ErrorKind
	Path string
	// Message is the human-readable explanation, including remediation
	// guidance for the wrong-format kinds.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface
func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause
func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError builds an InputError for path with a formatted message.
func NewInputError(kind ErrorKind, path, format string, args ...interface{}) *InputError {
	return &InputError{
		Kind:    kind,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsInputError unwraps err to an *InputError if it is one.
func AsInputError(err error) (*InputError, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// CorrelationError reports candidate identifiers that produced zero raw-text
// matches. For well-formed input this never happens; it indicates either a
// text-vs-structure encoding mismatch or a logic error, and is deliberately
// a separate class from InputError so it is never mistaken for bad user
// input or for an ordinary empty result.
type CorrelationError struct {
	Missing []SymbolID
}

// Error implements the error interface
func (e *CorrelationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, s := range e.Missing {
		names[i] = string(s)
	}
	return fmt.Sprintf("internal inconsistency: %d candidate symbol(s) not found in raw text: %s",
		len(e.Missing), strings.Join(names, ", "))
}
