package databricks

import (
	"testing"

	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Databricks

	require.NotNil(t, d)
	assert.Equal(t, "databricks", d.Name)
	assert.Equal(t, "`", d.Identifiers.Quote)
	assert.Equal(t, "ALL", d.Config().Pagination.LimitAll)
	assert.Equal(t, "`pivot`", d.QuoteIdentifierIfNeeded("pivot"))
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("databricks")
	require.True(t, ok, "databricks dialect should be registered")
	assert.Same(t, Databricks, d)
}

func TestTranslate(t *testing.T) {
	name := core.Col("e", "name")
	sel := &core.SelectExpression{
		Columns: []*core.ColumnDeclaration{
			core.Column("name", name),
			core.Column("i", core.Call(name, core.MethodIndexOf, core.Const("a"))),
		},
		From:    core.Table("events", "e"),
		OrderBy: []core.Ordering{{Expr: name, Direction: core.Desc}},
		Skip:    core.Int64(5),
	}

	res, err := translate.Translate(sel, Databricks)
	require.NoError(t, err)
	assert.Equal(t, "SELECT e.name, LOCATE(?, e.name) - 1 AS i FROM events AS e ORDER BY e.name DESC LIMIT ALL OFFSET 5", res.SQL)
}
