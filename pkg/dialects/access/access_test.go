package access

import (
	"testing"

	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/dialects/ansi"
	"github.com/leapstack-labs/leapquery/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Access

	require.NotNil(t, d)
	assert.Equal(t, "access", d.Name)
	assert.Same(t, ansi.ANSI, d.Parent())
	assert.Equal(t, "[", d.Identifiers.Quote)
	assert.Equal(t, "]", d.Identifiers.QuoteEnd)
	assert.Equal(t, core.PlaceholderQuestion, d.Placeholder)

	cfg := d.Config()
	assert.Equal(t, "0", cfg.EmptyProjection)
	assert.Equal(t, "&", cfg.ConcatOperator)
	assert.Equal(t, core.PaginationTop, cfg.Pagination.Style)
	assert.False(t, cfg.Pagination.SupportsOffset)
	assert.False(t, cfg.NativeBooleans)
	assert.False(t, cfg.DistinctAggregates)
	assert.Equal(t, "MOD", d.Operator(core.OpModulo))

	ov := d.Overrides()
	assert.NotNil(t, ov.Join)
	assert.NotNil(t, ov.Compare)
	assert.NotNil(t, ov.Conditional)
	assert.NotNil(t, ov.Value)
	assert.Nil(t, ov.Select)
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("access")
	require.True(t, ok, "access dialect should be registered")
	assert.Same(t, Access, d)
}

func TestTranslate(t *testing.T) {
	customers := core.Table("Customers", "c")

	tests := []struct {
		name       string
		sel        *core.SelectExpression
		wantSQL    string
		wantParams []any
	}{
		{
			name: "cross join renders with a comma",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("x", core.Const(1))},
				From:    core.Join(core.JoinCross, core.Table("T1", ""), core.Table("T2", ""), nil),
			},
			wantSQL:    "SELECT ? AS x FROM T1, T2",
			wantParams: []any{1},
		},
		{
			name:    "empty projection",
			sel:     &core.SelectExpression{From: core.Table("T", "")},
			wantSQL: "SELECT 0 FROM T",
		},
		{
			name: "take renders as top",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("Name", core.Col("c", "Name"))},
				From:    customers,
				OrderBy: []core.Ordering{{Expr: core.Col("c", "Name")}},
				Take:    core.Int64(5),
			},
			wantSQL: "SELECT TOP 5 c.Name FROM Customers AS c ORDER BY c.Name",
		},
		{
			name: "distinct with top",
			sel: &core.SelectExpression{
				Distinct: true,
				Columns:  []*core.ColumnDeclaration{core.Column("City", core.Col("c", "City"))},
				From:     customers,
				Take:     core.Int64(3),
			},
			wantSQL: "SELECT DISTINCT TOP 3 c.City FROM Customers AS c",
		},
		{
			name: "instance compare",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{
					core.Column("r", core.Call(core.Col("", "a"), core.MethodCompareTo, core.Col("", "b"))),
				},
				From: core.Table("T", ""),
			},
			wantSQL: "SELECT IIF(a = b, 0, IIF(a < b, -1, 1)) AS r FROM T",
		},
		{
			name: "static compare",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{
					core.Column("r", core.StaticCall(core.MethodCompare, core.Col("", "a"), core.Col("", "b"))),
				},
				From: core.Table("T", ""),
			},
			wantSQL: "SELECT IIF(a = b, 0, IIF(a < b, -1, 1)) AS r FROM T",
		},
		{
			name: "conditional",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{
					core.Column("label", core.If(core.Eq(core.Col("", "a"), core.Const(1)), core.Const("one"), core.Const("other"))),
				},
				From: core.Table("T", ""),
			},
			wantSQL:    "SELECT IIF(a = ?, ?, ?) AS label FROM T",
			wantParams: []any{1, "one", "other"},
		},
		{
			name: "predicate as value",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("same", core.Eq(core.Col("", "a"), core.Col("", "b")))},
				From:    core.Table("T", ""),
			},
			wantSQL: "SELECT IIF(a = b, 1, 0) AS same FROM T",
		},
		{
			name: "boolean column as condition",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("a", core.Col("", "a"))},
				From:    core.Table("T", ""),
				Where:   core.Col("", "Active"),
			},
			wantSQL: "SELECT a FROM T WHERE Active <> 0",
		},
		{
			name: "ampersand concat and LEN",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{
					core.Column("fullname", core.Binary(core.OpConcat, core.Col("", "First"), core.Col("", "Last"))),
					core.Column("n", core.Call(core.Col("", "First"), core.MethodLength)),
				},
				From: core.Table("People", ""),
			},
			wantSQL: "SELECT First & Last AS fullname, LEN(First) AS n FROM People",
		},
		{
			name: "modulo keyword",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("m", core.Binary(core.OpModulo, core.Col("", "a"), core.Col("", "b")))},
				From:    core.Table("T", ""),
			},
			wantSQL: "SELECT a MOD b AS m FROM T",
		},
		{
			name: "nested joins are parenthesized",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("id", core.Col("a", "id"))},
				From: core.Join(core.JoinInner,
					core.Join(core.JoinInner, core.Table("T1", "a"), core.Table("T2", "b"),
						core.Eq(core.Col("a", "id"), core.Col("b", "id"))),
					core.Table("T3", "c"),
					core.Eq(core.Col("b", "id"), core.Col("c", "id"))),
			},
			wantSQL: "SELECT a.id FROM (T1 AS a INNER JOIN T2 AS b ON a.id = b.id) INNER JOIN T3 AS c ON b.id = c.id",
		},
		{
			name: "comma cross join on the left is parenthesized",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("id", core.Col("a", "id"))},
				From: core.Join(core.JoinInner,
					core.Join(core.JoinCross, core.Table("T1", "a"), core.Table("T2", "b"), nil),
					core.Table("T3", "c"),
					core.Eq(core.Col("a", "id"), core.Col("c", "id"))),
			},
			wantSQL: "SELECT a.id FROM (T1 AS a, T2 AS b) INNER JOIN T3 AS c ON a.id = c.id",
		},
		{
			name: "contains escapes wildcards in brackets",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("Name", core.Col("", "Name"))},
				From:    core.Table("Customers", ""),
				Where:   core.Call(core.Col("", "Name"), core.MethodContains, core.Const("10%")),
			},
			wantSQL:    "SELECT Name FROM Customers WHERE Name LIKE '%' & ? & '%'",
			wantParams: []any{"10[%]"},
		},
		{
			name: "reserved identifier is bracketed",
			sel: &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("Value", core.Col("", "Value"))},
				From:    core.Table("Order Details", ""),
			},
			wantSQL: "SELECT [Value] FROM [Order Details]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := translate.Translate(tt.sel, Access)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, res.SQL)
			assert.Equal(t, tt.wantParams, res.Params)
		})
	}
}

func TestSkipIsRejectedWithLayeredCauses(t *testing.T) {
	order := []core.Ordering{{Expr: core.Col("", "Name")}}

	tests := []struct {
		name      string
		orderBy   []core.Ordering
		take      *int64
		wantErr   error
		wantCause core.Cause
	}{
		{"no ordering", nil, core.Int64(10), core.ErrSkipWithoutOrdering, core.CauseSkipWithoutOrdering},
		{"no take", order, nil, core.ErrSkipWithoutTake, core.CauseSkipWithoutTake},
		{"ordered with take", order, core.Int64(10), core.ErrPaginationUnsupported, core.CausePaginationUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := &core.SelectExpression{
				Columns: []*core.ColumnDeclaration{core.Column("Name", core.Col("", "Name"))},
				From:    core.Table("Customers", ""),
				OrderBy: tt.orderBy,
				Skip:    core.Int64(5),
				Take:    tt.take,
			}

			res, err := translate.Translate(sel, Access)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, core.ErrUnsupportedOperation)

			var unsupported *core.UnsupportedOperationError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.wantCause, unsupported.Cause)
			assert.Equal(t, "access", unsupported.Dialect)
			assert.Equal(t, "skip", unsupported.Operation)
		})
	}
}

func TestDistinctAggregateUnsupported(t *testing.T) {
	sel := &core.SelectExpression{
		Columns: []*core.ColumnDeclaration{
			core.Column("n", &core.AggregateExpression{Func: core.AggCount, Arg: core.Col("", "City"), Distinct: true}),
		},
		From: core.Table("Customers", ""),
	}

	_, err := translate.Translate(sel, Access)
	assert.ErrorIs(t, err, core.ErrFeatureUnsupported)
}

func TestCoalesceLimitedToTwoOperands(t *testing.T) {
	two := &core.SelectExpression{
		Columns: []*core.ColumnDeclaration{
			core.Column("v", core.StaticCall(core.MethodCoalesce, core.Col("", "a"), core.Col("", "b"))),
		},
		From: core.Table("T", ""),
	}
	res, err := translate.Translate(two, Access)
	require.NoError(t, err)
	assert.Equal(t, "SELECT IIF(a IS NULL, b, a) AS v FROM T", res.SQL)

	three := &core.SelectExpression{
		Columns: []*core.ColumnDeclaration{
			core.Column("v", core.StaticCall(core.MethodCoalesce, core.Col("", "a"), core.Col("", "b"), core.Col("", "c"))),
		},
		From: core.Table("T", ""),
	}
	_, err = translate.Translate(three, Access)
	assert.ErrorIs(t, err, core.ErrFeatureUnsupported)
}
