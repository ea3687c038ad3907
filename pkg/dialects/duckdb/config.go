package duckdb

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
)

// Functions overrides the PostgreSQL renderings DuckDB spells differently.
var Functions = map[core.MethodKind]core.FunctionDef{
	core.MethodSubstring: core.Fn("SUBSTRING({0}, {1} + 1[, {2}])"),
	core.MethodNow:       core.Fn("CURRENT_TIMESTAMP"),
}

var reservedWords = []string{
	"ANTI", "ASOF", "COLUMNS", "DESCRIBE", "PIVOT", "PIVOT_LONGER",
	"PIVOT_WIDER", "POSITIONAL", "QUALIFY", "SEMI", "SHOW", "SUMMARIZE",
	"UNPIVOT",
}
