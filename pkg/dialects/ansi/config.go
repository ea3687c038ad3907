package ansi

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
)

// Config defines the ANSI SQL dialect configuration.
// This is pure data with no behavior.
var Config = &core.DialectConfig{
	Name: "ansi",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
		Escape:   `""`,
	},
	Placeholder: core.PlaceholderQuestion,
	Pagination: core.PaginationConfig{
		Style:          core.PaginationOffsetFetch,
		SupportsOffset: true,
	},
	EmptyProjection:    "1",
	ConcatOperator:     "||",
	LikeEscape:         core.LikeEscape{Char: `\`, Wildcards: core.DefaultLikeWildcards},
	Functions:          dialect.StandardFunctions,
	DistinctAggregates: true,
	TrueLiteral:        "TRUE",
	FalseLiteral:       "FALSE",
	Keywords:           dialect.ANSIKeywords,
}
