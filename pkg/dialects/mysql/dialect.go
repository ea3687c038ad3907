// Package mysql provides the MySQL SQL dialect definition.
//
// MySQL parses "||" as logical OR by default, so concatenation always
// renders through CONCAT(). A backslash starts an escape sequence inside
// string literals, so LIKE patterns are escaped with "!".
package mysql

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/dialects/ansi"
)

func init() {
	dialect.Register(MySQL)
}

// MySQL is the MySQL dialect.
var MySQL = dialect.Extends(ansi.ANSI).
	Named("mysql").
	Identifiers("`", "`", "``").
	Pagination(Pagination).
	ConcatOperator("").
	LikeEscape("!", core.DefaultLikeWildcards).
	Functions(dialect.CommaFunctions, Functions).
	NativeBooleans(true).
	WithKeywords(reservedWords...).
	Build()
