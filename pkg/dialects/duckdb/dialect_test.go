package duckdb

import (
	"testing"

	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/dialects/postgres"
	"github.com/leapstack-labs/leapquery/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := DuckDB

	require.NotNil(t, d)
	assert.Equal(t, "duckdb", d.Name)
	assert.Same(t, postgres.Postgres, d.Parent())
	assert.Equal(t, core.PlaceholderQuestion, d.Placeholder)
	assert.Equal(t, postgres.Pagination, d.Config().Pagination)

	// inherited from postgres
	fn, ok := d.Function(core.MethodIndexOf)
	require.True(t, ok)
	assert.Equal(t, "STRPOS({0}, {1}) - 1", fn.Template)
	assert.True(t, d.IsReservedWord("returning"))
	assert.True(t, d.IsReservedWord("qualify"))
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("duckdb")
	require.True(t, ok, "duckdb dialect should be registered")
	assert.Same(t, DuckDB, d)
}

func TestTranslate(t *testing.T) {
	sel := &core.SelectExpression{
		Columns: []*core.ColumnDeclaration{
			core.Column("s", core.Call(core.Col("", "name"), core.MethodSubstring, core.Const(1), core.Const(3))),
		},
		From:  core.Table("people", "p"),
		Where: core.Eq(core.Col("", "id"), core.Const(7)),
		Skip:  core.Int64(2),
	}

	res, err := translate.Translate(sel, DuckDB)
	require.NoError(t, err)
	assert.Equal(t, "SELECT SUBSTRING(name, ? + 1, ?) AS s FROM people AS p WHERE id = ? OFFSET 2", res.SQL)
	assert.Equal(t, []any{1, 3, 7}, res.Params)
}
