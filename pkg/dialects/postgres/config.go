package postgres

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
)

// Pagination is the PostgreSQL pagination configuration. OFFSET stands on
// its own, so no LIMIT placeholder is needed for an open-ended skip.
var Pagination = core.PaginationConfig{
	Style:          core.PaginationLimitOffset,
	SupportsOffset: true,
	UnorderedSkip:  true,
	OpenEndedSkip:  true,
}

// Functions overrides the ANSI renderings with their PostgreSQL spellings.
var Functions = map[core.MethodKind]core.FunctionDef{
	core.MethodLength:  core.Fn("LENGTH({0})"),
	core.MethodIndexOf: {Template: "STRPOS({0}, {1}) - 1", Compound: true},
	core.MethodCeiling: core.Fn("CEIL({0})"),
	core.MethodNow:     core.Fn("NOW()"),
}

var reservedWords = []string{
	"ANALYSE", "ANALYZE", "ARRAY", "ASYMMETRIC", "BOTH", "COLLATE",
	"CONCURRENTLY", "CURRENT_CATALOG", "CURRENT_ROLE", "CURRENT_SCHEMA",
	"DEFERRABLE", "DO", "FREEZE", "ILIKE", "INITIALLY", "ISNULL", "LATERAL",
	"LEADING", "LOCALTIME", "LOCALTIMESTAMP", "NOTNULL", "OFFSET", "OVERLAPS",
	"PLACING", "RETURNING", "SIMILAR", "SYMMETRIC", "TABLESAMPLE", "TRAILING",
	"VARIADIC", "VERBOSE", "WINDOW",
}
