package mysql

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
)

// Pagination is the MySQL pagination configuration. The comma form puts
// skip first; an open-ended skip uses the largest unsigned BIGINT as limit.
var Pagination = core.PaginationConfig{
	Style:          core.PaginationLimitComma,
	SupportsOffset: true,
	UnorderedSkip:  true,
	OpenEndedSkip:  true,
	LimitAll:       "18446744073709551615",
}

// Functions overrides the ANSI renderings with their MySQL spellings.
// It is applied on top of dialect.CommaFunctions.
var Functions = map[core.MethodKind]core.FunctionDef{
	core.MethodLength:  core.Fn("CHAR_LENGTH({0})"),
	core.MethodIndexOf: {Template: "LOCATE({1}, {0}) - 1", Compound: true},
	core.MethodNow:     core.Fn("NOW()"),
}

var reservedWords = []string{
	"ACCESSIBLE", "ANALYZE", "CHANGE", "DATABASE", "DATABASES", "DIV",
	"DUAL", "ENCLOSED", "ESCAPED", "EXPLAIN", "FORCE", "FULLTEXT",
	"HIGH_PRIORITY", "IGNORE", "INDEX", "INTERVAL", "KEY", "KEYS", "KILL",
	"LIMIT", "LINES", "LOAD", "LOCK", "LOW_PRIORITY", "MATCH", "MOD",
	"OPTIMIZE", "OPTION", "OUTFILE", "PURGE", "READ", "REGEXP", "RENAME",
	"REPLACE", "REQUIRE", "RLIKE", "SCHEMA", "SCHEMAS", "SEPARATOR", "SHOW",
	"SPATIAL", "STRAIGHT_JOIN", "TERMINATED", "UNLOCK", "UNSIGNED", "USAGE",
	"USE", "XOR", "ZEROFILL",
}
