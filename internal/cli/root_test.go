package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_VerboseLogsRunID(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "q.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [t.id]\nfrom: {table: t}\n"), 0o600))

	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"translate", path, "--verbose", "-o", "text"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "SELECT t.id FROM t")
	assert.Contains(t, errOut.String(), "run_id=")
	assert.Contains(t, errOut.String(), "command=translate")
	assert.Contains(t, errOut.String(), "dialect=ansi")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leapquery.yaml"), []byte("dialect: mssql\noutput: json\n"), 0o600))
	path := filepath.Join(dir, "q.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [t.id]\nfrom: {table: t}\ntake: 3\n"), 0o600))

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"translate", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), `"dialect": "mssql"`)
	assert.Contains(t, out.String(), `SELECT TOP (3) t.id FROM t`)
}

func TestRootCmd_InvalidOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"dialects", "-o", "yaml"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
