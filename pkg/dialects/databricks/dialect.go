// Package databricks provides the Databricks (Spark SQL) dialect definition.
//
// This package is pure Go with no database driver dependencies.
package databricks

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/dialects/ansi"
)

func init() {
	dialect.Register(Databricks)
}

// Databricks is the Databricks SQL dialect.
var Databricks = dialect.Extends(ansi.ANSI).
	Named("databricks").
	Identifiers("`", "`", "``").
	Pagination(Pagination).
	Functions(Functions).
	LikeEscape("!", core.DefaultLikeWildcards). // a backslash would escape the closing quote
	CrossJoinKeyword(true).
	NativeBooleans(true).
	WithKeywords(reservedWords...).
	Build()
