package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectDocument = `
select:
  from: {name: users}
  where:
    - {field: id, op: "=", value: 7}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildText(t *testing.T) {
	path := writeFile(t, "select.yaml", selectDocument)

	out, err := execute(t, "build", path, "--dialect", "sqlite")
	require.NoError(t, err)
	assert.Equal(t, "SELECT *\nFROM users\nWHERE id = @w_0\n\n@w_0  Int32  7\n", out)
}

func TestBuildQuotes(t *testing.T) {
	path := writeFile(t, "select.yaml", selectDocument)

	out, err := execute(t, "build", path, "--dialect", "pgsql", "--quotes", "[]")
	require.NoError(t, err)
	assert.Contains(t, out, "FROM [users]\nWHERE [id] = @w_0\n")
}

func TestBuildFormatted(t *testing.T) {
	path := writeFile(t, "select.yaml", selectDocument)

	out, err := execute(t, "build", path, "--format", "--indent", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "SELECT\n  *\nFROM\n  [users]\nWHERE\n  [id] = @w_0\n")
}

func TestBuildJSON(t *testing.T) {
	path := writeFile(t, "select.yaml", selectDocument)

	out, err := execute(t, "build", path, "--dialect", "mysql", "-o", "json")
	require.NoError(t, err)

	var got buildOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "SELECT *\nFROM `users`\nWHERE `id` = @w_0", got.Query)
	require.Len(t, got.Parameters, 1)
	assert.Equal(t, "@w_0", got.Parameters[0].Name)
	assert.Equal(t, "Int32", got.Parameters[0].DbType.String())
	assert.EqualValues(t, 7, got.Parameters[0].Value)
}

func TestBuildConfigFile(t *testing.T) {
	path := writeFile(t, "select.yaml", selectDocument)
	cfg := writeFile(t, "izquery.yaml", "dialect: pgsql\n")

	out, err := execute(t, "build", path, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `FROM "users"`)
}

func TestBuildNoParameters(t *testing.T) {
	path := writeFile(t, "select.yaml", "select:\n  from: {name: users}\n")

	out, err := execute(t, "build", path, "--dialect", "none")
	require.NoError(t, err)
	assert.Equal(t, "SELECT *\nFROM users\n", out)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		args []string
	}{
		{name: "unknown dialect", doc: selectDocument, args: []string{"--dialect", "db2"}},
		{name: "bad output", doc: selectDocument, args: []string{"-o", "xml"}},
		{name: "empty document", doc: "", args: nil},
		{name: "unknown key", doc: "select:\n  form: {name: users}\n", args: nil},
		{name: "unsupported", doc: "update:\n  table: {name: users}\n  sets: [{column: a, value: 1}]\n  from: {name: other}\n", args: []string{"--dialect", "mysql"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "doc.yaml", tt.doc)
			_, err := execute(t, append([]string{"build", path}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestBuildMissingFile(t *testing.T) {
	_, err := execute(t, "build", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildArgs(t *testing.T) {
	_, err := execute(t, "build")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "izquery v"+Version+"\n", out)
}
