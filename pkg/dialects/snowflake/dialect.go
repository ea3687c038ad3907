// Package snowflake provides the Snowflake SQL dialect definition.
//
// This package is pure Go with no database driver dependencies.
package snowflake

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/dialects/ansi"
)

func init() {
	dialect.Register(Snowflake)
}

// Snowflake is the Snowflake SQL dialect.
var Snowflake = dialect.Extends(ansi.ANSI).
	Named("snowflake").
	Pagination(Pagination).
	Functions(Functions).
	LikeEscape("!", core.DefaultLikeWildcards). // a backslash would escape the closing quote
	CrossJoinKeyword(true).
	NativeBooleans(true).
	WithKeywords(reservedWords...).
	Build()
