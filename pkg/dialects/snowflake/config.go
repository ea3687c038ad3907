package snowflake

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
)

// Pagination is the Snowflake pagination configuration. LIMIT NULL means
// no limit, which serves an open-ended skip.
var Pagination = core.PaginationConfig{
	Style:          core.PaginationLimitOffset,
	SupportsOffset: true,
	UnorderedSkip:  true,
	OpenEndedSkip:  true,
	LimitAll:       "NULL",
}

// Functions overrides the ANSI renderings with their Snowflake spellings.
var Functions = map[core.MethodKind]core.FunctionDef{
	core.MethodLength:    core.Fn("LENGTH({0})"),
	core.MethodSubstring: core.Fn("SUBSTR({0}, {1} + 1[, {2}])"),
	core.MethodIndexOf:   {Template: "POSITION({1}, {0}) - 1", Compound: true},
	core.MethodCeiling:   core.Fn("CEIL({0})"),
}

var reservedWords = []string{
	"ACCOUNT", "CONNECTION", "GSCLUSTER", "ILIKE", "INCREMENT", "ISSUE",
	"LATERAL", "LOCALTIME", "LOCALTIMESTAMP", "MINUS", "ORGANIZATION",
	"QUALIFY", "REGEXP", "RLIKE", "ROW", "ROWS", "SAMPLE", "TABLESAMPLE",
	"TRY_CAST",
}
