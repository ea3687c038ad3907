package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapquery/pkg/adapter"
	"github.com/leapstack-labs/leapquery/pkg/core"
)

func TestAdapter_Connect(t *testing.T) {
	t.Run("file-based", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.db")
		adp := New(nil)
		require.NoError(t, adp.Connect(context.Background(), core.AdapterConfig{Path: path}))
		defer func() { _ = adp.Close() }()

		require.NoError(t, adp.Exec(context.Background(), "CREATE TABLE t (x INTEGER)"))
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("in-memory keeps one database", func(t *testing.T) {
		ctx := context.Background()
		adp := New(nil)
		require.NoError(t, adp.Connect(ctx, core.AdapterConfig{}))
		defer func() { _ = adp.Close() }()

		require.NoError(t, adp.Exec(ctx, "CREATE TABLE t (x INTEGER)"))
		require.NoError(t, adp.Exec(ctx, "INSERT INTO t VALUES (?)", 1))
		rows, err := adp.Query(ctx, "SELECT x FROM t")
		require.NoError(t, err)
		table, err := adapter.Collect(rows)
		require.NoError(t, err)
		assert.Len(t, table.Rows, 1)
	})
}

func TestAdapter_NotConnected(t *testing.T) {
	adp := New(nil)
	assert.ErrorIs(t, adp.Exec(context.Background(), "SELECT 1"), adapter.ErrNotConnected)
}

func stringify(table *adapter.Table) [][]string {
	out := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = fmt.Sprint(v)
		}
	}
	return out
}

// TestAdapter_QueryTree runs translated SQL against a real engine, so the
// SQLite renderings are checked for meaning and not only for text.
func TestAdapter_QueryTree(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)
	require.NoError(t, adp.Connect(ctx, core.AdapterConfig{Path: ":memory:"}))
	defer func() { _ = adp.Close() }()

	require.NoError(t, adp.Exec(ctx, `CREATE TABLE people (id INTEGER, name TEXT, age INTEGER, active INTEGER)`))
	require.NoError(t, adp.Exec(ctx, `INSERT INTO people VALUES (1, 'ada', 36, 1), (2, 'grace', 45, 0), (3, 'linus', 30, 1), (4, NULL, 50, 1)`))

	id, name, age := core.Col("", "id"), core.Col("", "name"), core.Col("", "age")
	active := core.Col("", "active")
	people := core.Table("people", "")
	byID := []core.Ordering{{Expr: id}}
	cols := func(decls ...*core.ColumnDeclaration) []*core.ColumnDeclaration { return decls }

	tests := []struct {
		name string
		sel  *core.SelectExpression
		want [][]string
	}{
		{
			name: "contains",
			sel: &core.SelectExpression{
				Columns: cols(core.Column("name", name)),
				From:    people,
				Where:   core.Call(name, core.MethodContains, core.Const("a")),
				OrderBy: byID,
			},
			want: [][]string{{"ada"}, {"grace"}},
		},
		{
			name: "starts with",
			sel: &core.SelectExpression{
				Columns: cols(core.Column("name", name)),
				From:    people,
				Where:   core.Call(name, core.MethodStartsWith, core.Const("li")),
			},
			want: [][]string{{"linus"}},
		},
		{
			name: "zero-based substring and index",
			sel: &core.SelectExpression{
				Columns: cols(
					core.Column("part", core.Call(name, core.MethodSubstring, core.Const(1), core.Const(2))),
					core.Column("pos", core.Call(name, core.MethodIndexOf, core.Const("a"))),
				),
				From:    people,
				Where:   core.Binary(core.OpLessThan, id, core.Const(4)),
				OrderBy: byID,
			},
			want: [][]string{{"da", "0"}, {"ra", "2"}, {"in", "-1"}},
		},
		{
			name: "open-ended skip",
			sel: &core.SelectExpression{
				Columns: cols(core.Column("id", id)),
				From:    people,
				OrderBy: byID,
				Skip:    core.Int64(2),
			},
			want: [][]string{{"3"}, {"4"}},
		},
		{
			name: "null comparison",
			sel: &core.SelectExpression{
				Columns: cols(core.Column("id", id)),
				From:    people,
				Where:   core.Eq(name, core.Const(nil)),
			},
			want: [][]string{{"4"}},
		},
		{
			name: "value column as predicate",
			sel: &core.SelectExpression{
				Columns: cols(core.Column("id", id)),
				From:    people,
				Where:   core.And(active, core.Binary(core.OpGreaterThan, age, core.Const(35))),
				OrderBy: byID,
			},
			want: [][]string{{"1"}, {"4"}},
		},
		{
			name: "conditional and coalesce",
			sel: &core.SelectExpression{
				Columns: cols(
					core.Column("label", core.StaticCall(core.MethodCoalesce, name, core.Const("?"))),
					core.Column("band", core.If(
						core.Binary(core.OpGreaterThanOrEqual, age, core.Const(40)),
						core.Const("senior"),
						core.Const("junior"),
					)),
				),
				From:    people,
				OrderBy: byID,
			},
			want: [][]string{{"ada", "junior"}, {"grace", "senior"}, {"linus", "junior"}, {"?", "senior"}},
		},
		{
			name: "in list and exists",
			sel: &core.SelectExpression{
				Columns: cols(core.Column("id", id)),
				From:    people,
				Where: core.And(
					&core.InExpression{Operand: id, Values: []core.Expr{core.Const(2), core.Const(3)}},
					&core.ExistsExpression{Query: &core.SelectExpression{
						From:  core.Table("people", "p"),
						Where: core.Binary(core.OpGreaterThan, core.Col("p", "age"), core.Const(40)),
					}},
				),
				OrderBy: byID,
			},
			want: [][]string{{"2"}, {"3"}},
		},
		{
			name: "grouped aggregate",
			sel: &core.SelectExpression{
				Columns: cols(
					core.Column("active", active),
					core.Column("total", &core.AggregateExpression{Func: core.AggSum, Arg: age}),
				),
				From:    people,
				GroupBy: []core.Expr{active},
				Having:  core.Binary(core.OpGreaterThan, &core.AggregateExpression{Func: core.AggCount}, core.Const(1)),
			},
			want: [][]string{{"1", "116"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := adapter.QueryTree(ctx, adp, tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stringify(table))
		})
	}
}

// TestAdapter_LikeMatchesLiterally checks that wildcards in StartsWith,
// EndsWith and Contains operands are matched as plain text.
func TestAdapter_LikeMatchesLiterally(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)
	require.NoError(t, adp.Connect(ctx, core.AdapterConfig{Path: ":memory:"}))
	defer func() { _ = adp.Close() }()

	require.NoError(t, adp.Exec(ctx, `CREATE TABLE words (id INTEGER, s TEXT, p TEXT)`))
	require.NoError(t, adp.Exec(ctx, `INSERT INTO words VALUES
		(1, 'xabcx', 'a_c'),
		(2, 'xa_cx', 'a_c'),
		(3, '500', '5%'),
		(4, '5%00', '5%'),
		(5, 'a\b', 'x'),
		(6, 'ab', 'x')`))

	id, s, p := core.Col("", "id"), core.Col("", "s"), core.Col("", "p")
	query := func(where core.Expr) *core.SelectExpression {
		return &core.SelectExpression{
			Columns: []*core.ColumnDeclaration{core.Column("id", id)},
			From:    core.Table("words", ""),
			Where:   where,
			OrderBy: []core.Ordering{{Expr: id}},
		}
	}

	tests := []struct {
		name  string
		where core.Expr
		want  [][]string
	}{
		{"contains underscore", core.Call(s, core.MethodContains, core.Const("a_c")), [][]string{{"2"}}},
		{"starts with percent", core.Call(s, core.MethodStartsWith, core.Const("5%")), [][]string{{"4"}}},
		{"ends with backslash pair", core.Call(s, core.MethodEndsWith, core.Const(`\b`)), [][]string{{"5"}}},
		{"column pattern", core.Call(s, core.MethodContains, p), [][]string{{"2"}, {"4"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := adapter.QueryTree(ctx, adp, query(tt.where))
			require.NoError(t, err)
			assert.Equal(t, tt.want, stringify(table))
		})
	}
}
