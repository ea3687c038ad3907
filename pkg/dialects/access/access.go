// Package access provides the Microsoft Access (Jet/ACE) SQL dialect.
//
// Access diverges from ANSI more than any other supported engine: bracket
// quoting, SELECT TOP without skip, IIF in place of CASE, "&" concatenation,
// comma cross joins and mandatory parentheses around nested joins.
package access

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/dialects/ansi"
)

func init() {
	dialect.Register(Access)
}

// Access is the Microsoft Access SQL dialect.
var Access = dialect.Extends(ansi.ANSI).
	Named("access").
	Identifiers("[", "]", "]]").
	Pagination(Pagination).
	EmptyProjection("0").
	ConcatOperator("&").
	LikeEscape("", "%_["). // no ESCAPE clause; wildcards go in brackets
	Operator(core.OpModulo, dialect.ModKeywordOperators[core.OpModulo]).
	Functions(Functions).
	DistinctAggregates(false).
	BooleanLiterals("True", "False").
	WithKeywords(reservedWords...).
	// Joins
	OverrideJoin(dialect.NestedJoins).
	OverrideJoin(dialect.CommaCrossJoin).
	// No CASE expression
	OverrideCompare(dialect.InlineIfCompare("IIF")).
	OverrideConditional(dialect.InlineIfConditional("IIF")).
	OverrideValue(dialect.InlineIfValue("IIF")).
	Build()
