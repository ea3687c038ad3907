package sqlite

import (
	"testing"

	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := SQLite

	require.NotNil(t, d)
	assert.Equal(t, "sqlite", d.Name)
	assert.Equal(t, "-1", d.Config().Pagination.LimitAll)
	assert.Equal(t, "||", d.Config().ConcatOperator)
	assert.Equal(t, "1", d.Config().TrueLiteral)
	assert.True(t, d.IsReservedWord("pragma"))
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("sqlite")
	require.True(t, ok, "sqlite dialect should be registered")
	assert.Same(t, SQLite, d)
}

func TestTranslate(t *testing.T) {
	name := core.Col("", "name")
	tbl := core.Table("people", "")

	tests := []struct {
		name    string
		sel     *core.SelectExpression
		opts    []translate.Option
		wantSQL string
	}{
		{
			name:    "open-ended skip",
			sel:     &core.SelectExpression{Columns: []*core.ColumnDeclaration{core.Column("name", name)}, From: tbl, Skip: core.Int64(3)},
			wantSQL: "SELECT name FROM people LIMIT -1 OFFSET 3",
		},
		{
			name: "substr and instr",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{
					core.Column("s", core.Call(name, core.MethodSubstring, core.Const(0), core.Const(2))),
					core.Column("i", core.Call(name, core.MethodIndexOf, core.Const("x"))),
					core.Column("n", core.Call(name, core.MethodLength)),
				},
				From: tbl,
			},
			wantSQL: "SELECT SUBSTR(name, ? + 1, ?) AS s, INSTR(name, ?) - 1 AS i, LENGTH(name) AS n FROM people",
		},
		{
			name: "inline boolean literals",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("name", name)},
				From:    tbl,
				Where:   core.Eq(core.Col("", "active"), core.Const(true)),
			},
			opts:    []translate.Option{translate.WithInlineConstants()},
			wantSQL: "SELECT name FROM people WHERE active = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := translate.Translate(tt.sel, SQLite, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, res.SQL)
		})
	}
}
