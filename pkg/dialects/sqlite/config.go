package sqlite

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
)

// Pagination is the SQLite pagination configuration. OFFSET needs a LIMIT,
// so an open-ended skip is written as LIMIT -1.
var Pagination = core.PaginationConfig{
	Style:          core.PaginationLimitOffset,
	SupportsOffset: true,
	UnorderedSkip:  true,
	OpenEndedSkip:  true,
	LimitAll:       "-1",
}

// Functions overrides the ANSI renderings SQLite does not understand.
var Functions = map[core.MethodKind]core.FunctionDef{
	core.MethodLength:    core.Fn("LENGTH({0})"),
	core.MethodSubstring: core.Fn("SUBSTR({0}, {1} + 1[, {2}])"),
	core.MethodIndexOf:   {Template: "INSTR({0}, {1}) - 1", Compound: true},
	core.MethodCeiling:   core.Fn("CEIL({0})"),
}

var reservedWords = []string{
	"ABORT", "ACTION", "AFTER", "ANALYZE", "ATTACH", "AUTOINCREMENT",
	"BEFORE", "CASCADE", "CONFLICT", "DATABASE", "DEFERRABLE", "DEFERRED",
	"DETACH", "EACH", "EXCLUSIVE", "EXPLAIN", "FAIL", "GLOB", "IF", "IGNORE",
	"IMMEDIATE", "INDEX", "INDEXED", "INITIALLY", "INSTEAD", "ISNULL", "KEY",
	"NO", "NOTNULL", "OF", "OFFSET", "PLAN", "PRAGMA", "QUERY", "RAISE",
	"RECURSIVE", "REGEXP", "REINDEX", "RELEASE", "RENAME", "REPLACE",
	"RESTRICT", "ROW", "SAVEPOINT", "TEMP", "TEMPORARY", "TRANSACTION",
	"TRIGGER", "VACUUM", "VIEW", "VIRTUAL", "WITHOUT",
}
