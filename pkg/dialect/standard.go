// Package dialect provides SQL dialect configuration and override tables.
//
// This file contains pre-built function tables - the "menu items" that
// dialects can compose from. Each entry maps a method kind to the template
// that renders it.
package dialect

import "github.com/leapstack-labs/leapquery/pkg/core"

// StandardFunctions renders portable method calls in ANSI SQL.
//
// Compare, CompareTo, Equals, StartsWith, EndsWith, Contains and Concat are
// not listed: the translator renders them from comparison operators, LIKE
// and the dialect's concatenation style.
var StandardFunctions = map[core.MethodKind]core.FunctionDef{
	core.MethodToUpper:   core.Fn("UPPER({0})"),
	core.MethodToLower:   core.Fn("LOWER({0})"),
	core.MethodTrim:      core.Fn("TRIM({0})"),
	core.MethodLength:    core.Fn("CHAR_LENGTH({0})"),
	core.MethodSubstring: core.Fn("SUBSTRING({0} FROM {1} + 1[ FOR {2}])"),
	core.MethodIndexOf:   {Template: "POSITION({1} IN {0}) - 1", Compound: true},
	core.MethodAbs:       core.Fn("ABS({0})"),
	core.MethodCeiling:   core.Fn("CEILING({0})"),
	core.MethodFloor:     core.Fn("FLOOR({0})"),
	core.MethodRound:     core.Fn("ROUND({0}[, {1}])"),
	core.MethodCoalesce:  core.Fn("COALESCE({*})"),
	core.MethodNow:       core.Fn("CURRENT_TIMESTAMP"),
}

// CommaFunctions uses the comma-argument SUBSTRING form understood by most
// engines that predate the FROM/FOR syntax.
var CommaFunctions = map[core.MethodKind]core.FunctionDef{
	core.MethodSubstring: core.Fn("SUBSTRING({0}, {1} + 1[, {2}])"),
	core.MethodLength:    core.Fn("LENGTH({0})"),
}

// ANSIKeywords are reserved in SQL:2016 and quoted when used as identifiers.
var ANSIKeywords = []string{
	"ALL", "AND", "ANY", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST", "CHECK",
	"COLUMN", "CONSTRAINT", "CREATE", "CROSS", "CURRENT", "DEFAULT", "DELETE",
	"DESC", "DISTINCT", "DROP", "ELSE", "END", "EXISTS", "FALSE", "FETCH",
	"FOR", "FOREIGN", "FROM", "FULL", "GROUP", "HAVING", "IN", "INNER",
	"INSERT", "INTERSECT", "INTO", "IS", "JOIN", "LEFT", "LIKE", "LIMIT",
	"NATURAL", "NOT", "NULL", "OFFSET", "ON", "OR", "ORDER", "OUTER",
	"PRIMARY", "REFERENCES", "RIGHT", "ROWS", "SELECT", "SET", "SOME", "TABLE",
	"THEN", "TO", "TRUE", "UNION", "UNIQUE", "UPDATE", "USER", "USING",
	"VALUES", "WHEN", "WHERE", "WITH",
}
