package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/scipdup/pkg/types"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func requireKind(t *testing.T, err error, kind types.ErrorKind) *types.InputError {
	t.Helper()
	require.Error(t, err)
	ie, ok := types.AsInputError(err)
	require.True(t, ok, "expected *types.InputError, got %T: %v", err, err)
	assert.Equal(t, kind, ie.Kind)
	return ie
}

func loadErr(path string) error {
	_, _, err := Load(path)
	return err
}

func TestLoad_Valid(t *testing.T) {
	path := writeFixture(t, "index.json", `{
  "documents": [
    { "symbols": [ { "symbol": "m/Foo#neg()." } ] }
  ]
}`)

	index, raw, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, index)
	assert.NotEmpty(t, raw)

	require.Len(t, index.Documents, 1)
	require.Len(t, index.Documents[0].Symbols, 1)
	assert.Equal(t, types.SymbolID("m/Foo#neg()."), index.Documents[0].Symbols[0].Symbol)
}

func TestLoad_EmptyDocuments(t *testing.T) {
	path := writeFixture(t, "index.json", `{"documents": []}`)

	index, _, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, index.Documents)
}

func TestLoad_NotFound(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	ie := requireKind(t, err, types.KindNotFound)
	assert.Contains(t, ie.Message, "file not found")
}

func TestLoad_Directory(t *testing.T) {
	ie := requireKind(t, loadErr(t.TempDir()), types.KindNotFound)
	assert.Contains(t, ie.Message, "directory")
	assert.NotContains(t, ie.Message, "permission")
}

func TestLoad_Empty(t *testing.T) {
	path := writeFixture(t, "empty.json", "")
	ie := requireKind(t, loadErr(path), types.KindEmpty)
	assert.Contains(t, ie.Message, "empty")
}

func TestLoad_AnsiColor(t *testing.T) {
	path := writeFixture(t, "colored.json", "\x1b[1mIndex {\x1b[0m\n  documents: 3\n")
	ie := requireKind(t, loadErr(path), types.KindAnsiColor)
	assert.Contains(t, ie.Message, "ANSI escape codes")
	assert.Contains(t, ie.Message, "scip print --json")
}

func TestLoad_AnsiResetWithoutEscape(t *testing.T) {
	// Captures where the leading escape byte was stripped still carry the
	// reset sequence tail.
	path := writeFixture(t, "colored.json", "[0mIndex { documents: 3 }\n")
	requireKind(t, loadErr(path), types.KindAnsiColor)
}

func TestLoad_NativeDump(t *testing.T) {
	path := writeFixture(t, "dump.json", "&scip.Index{Metadata: &scip.Metadata{...}}\n")
	ie := requireKind(t, loadErr(path), types.KindNativeDump)
	assert.Contains(t, ie.Message, "--json flag")
}

func TestLoad_MalformedSyntax(t *testing.T) {
	path := writeFixture(t, "bad.json", `{"documents": [{]`)
	requireKind(t, loadErr(path), types.KindMalformedSyntax)
}

func TestLoad_TopLevelNotObject(t *testing.T) {
	path := writeFixture(t, "array.json", `[{"documents": []}]`)
	ie := requireKind(t, loadErr(path), types.KindWrongShape)
	assert.Contains(t, ie.Message, "JSON object")
}

func TestLoad_MissingDocumentsKey(t *testing.T) {
	path := writeFixture(t, "nodocs.json", `{"metadata": {"version": 1}}`)
	ie := requireKind(t, loadErr(path), types.KindWrongShape)
	assert.Contains(t, ie.Message, "'documents'")
}

func TestDescribe(t *testing.T) {
	err := types.NewInputError(types.KindEmpty, "x.json", "file is empty: x.json")
	assert.Equal(t, "[Empty] file is empty: x.json", Describe(err))

	plain := os.ErrClosed
	assert.Equal(t, plain.Error(), Describe(plain))
}
