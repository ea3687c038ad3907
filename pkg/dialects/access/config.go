package access

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
)

// Pagination is the Access pagination configuration. Take renders as
// SELECT TOP n; skip is not expressible.
var Pagination = core.PaginationConfig{
	Style: core.PaginationTop,
}

// Functions replaces the ANSI function renderings with their Jet SQL
// spellings.
var Functions = map[core.MethodKind]core.FunctionDef{
	core.MethodToUpper:   core.Fn("UCASE({0})"),
	core.MethodToLower:   core.Fn("LCASE({0})"),
	core.MethodTrim:      core.Fn("TRIM({0})"),
	core.MethodLength:    core.Fn("LEN({0})"),
	core.MethodSubstring: core.Fn("MID({0}, {1} + 1[, {2}])"),
	core.MethodIndexOf:   {Template: "INSTR({0}, {1}) - 1", Compound: true},
	core.MethodAbs:       core.Fn("ABS({0})"),
	core.MethodCeiling:   {Template: "-INT(-{0})", Compound: true},
	core.MethodFloor:     core.Fn("INT({0})"),
	core.MethodRound:     core.Fn("ROUND({0}[, {1}])"),
	core.MethodCoalesce:  {Template: "IIF({0} IS NULL, {1}, {0})", MaxOperands: 2},
	core.MethodNow:       core.Fn("NOW()"),
}

var reservedWords = []string{
	"ALPHANUMERIC", "AUTOINCREMENT", "BINARY", "BYTE", "COUNTER", "CURRENCY",
	"DATABASE", "DATETIME", "DISALLOW", "DISTINCTROW", "DOUBLE", "IEEEDOUBLE",
	"IEEESINGLE", "IGNORE", "IMP", "INT", "LONG", "LONGBINARY", "LONGTEXT",
	"MEMO", "MOD", "MONEY", "NUMBER", "OWNERACCESS", "PARAMETERS", "PERCENT",
	"PIVOT", "SHORT", "SINGLE", "SMALLINT", "TEXT", "TOP", "TRANSFORM",
	"VALUE", "VARBINARY", "VARCHAR", "XOR", "YESNO",
}
