// Package main provides tests for the leapquery CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapquery/internal/cli"
)

const usersQuery = `columns: [u.name]
from: {table: users, alias: u}
where: {op: ">", left: {col: u.age}, right: {const: 30}}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "leapquery v")
	assert.Contains(t, out, "9 SQL dialects")
}

func TestHelpCommand(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	for _, expected := range []string{"translate", "run", "dialects", "shell", "version"} {
		assert.Contains(t, out, expected)
	}
}

func TestTranslateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(usersQuery), 0o600))

	out, err := execute(t, "translate", path, "-d", "postgres", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Dialect string `json:"dialect"`
		SQL     string `json:"sql"`
		Params  []any  `json:"params"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "postgres", got.Dialect)
	assert.Equal(t, "SELECT u.name FROM users AS u WHERE u.age > $1", got.SQL)
	assert.Equal(t, []any{float64(30)}, got.Params)
}

func TestUnknownDialect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(usersQuery), 0o600))

	_, err := execute(t, "translate", path, "-d", "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}
