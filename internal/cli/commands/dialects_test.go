package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapquery/internal/cli/config"
	"github.com/leapstack-labs/leapquery/internal/cli/output"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
)

func TestDescribeDialect(t *testing.T) {
	tests := []struct {
		name string
		want DialectInfo
	}{
		{
			name: "ansi",
			want: DialectInfo{Name: "ansi", Placeholder: "?", Pagination: "offset-fetch", Skip: true, Concat: "||"},
		},
		{
			name: "postgres",
			want: DialectInfo{Name: "postgres", Extends: "ansi", Placeholder: "$1", Pagination: "limit-offset", Skip: true, Concat: "||", Booleans: true},
		},
		{
			name: "duckdb",
			want: DialectInfo{Name: "duckdb", Extends: "postgres", Placeholder: "?", Pagination: "limit-offset", Skip: true, Concat: "||", Booleans: true},
		},
		{
			name: "access",
			want: DialectInfo{Name: "access", Extends: "ansi", Placeholder: "?", Pagination: "top", Concat: "&"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := dialect.Get(tt.name)
			require.True(t, ok)
			got := describeDialect(d)
			tt.want.Functions = got.Functions
			assert.Equal(t, tt.want, got)
			assert.Positive(t, got.Functions)
		})
	}
}

func TestDialects_JSON(t *testing.T) {
	ctx, r := newTestContext(t, &config.Config{}, output.ModeJSON)
	require.NoError(t, runDialects(ctx))

	var infos []DialectInfo
	require.NoError(t, json.Unmarshal([]byte(r.Out.String()), &infos))
	require.Len(t, infos, 9)
	assert.Equal(t, dialect.List()[0], infos[0].Name)
}

func TestDialects_Table(t *testing.T) {
	ctx, r := newTestContext(t, &config.Config{}, output.ModeMarkdown)
	require.NoError(t, runDialects(ctx))

	out := r.Out.String()
	assert.Contains(t, out, "# Dialects (9)")
	assert.Contains(t, out, "Postgres")
	assert.Contains(t, out, "Mssql")
	assert.Contains(t, out, "CONCAT()")
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "leapquery v1.2.3")
	assert.Contains(t, buf.String(), "for 9 SQL dialects")
}
