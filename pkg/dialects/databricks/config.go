package databricks

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
)

// Pagination is the Databricks pagination configuration.
var Pagination = core.PaginationConfig{
	Style:          core.PaginationLimitOffset,
	SupportsOffset: true,
	UnorderedSkip:  true,
	OpenEndedSkip:  true,
	LimitAll:       "ALL",
}

// Functions overrides the ANSI renderings with their Spark SQL spellings.
var Functions = map[core.MethodKind]core.FunctionDef{
	core.MethodLength:    core.Fn("LENGTH({0})"),
	core.MethodSubstring: core.Fn("SUBSTRING({0}, {1} + 1[, {2}])"),
	core.MethodIndexOf:   {Template: "LOCATE({1}, {0}) - 1", Compound: true},
	core.MethodCeiling:   core.Fn("CEIL({0})"),
}

var reservedWords = []string{
	"ANTI", "DIV", "LATERAL", "MINUS", "OUTER", "PERCENT", "PIVOT",
	"QUALIFY", "RLIKE", "REGEXP", "ROWS", "SEMI", "TABLESAMPLE", "UNPIVOT",
	"VIEW",
}
