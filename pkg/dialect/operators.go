// Package dialect provides SQL dialect configuration and override tables.
//
// This file contains operator spellings that form the "toolbox" of
// reusable operator configurations. These can be composed into any dialect.
package dialect

import "github.com/leapstack-labs/leapquery/pkg/core"

// ANSIOperators contains the standard SQL spelling of every binary operator.
// Dialects override individual entries with Builder.Operator.
var ANSIOperators = map[core.BinaryOp]string{
	// Logical operators (lowest precedence)
	core.OpOr:  "OR",
	core.OpAnd: "AND",

	// Comparison operators
	core.OpEqual:              "=",
	core.OpNotEqual:           "<>",
	core.OpLessThan:           "<",
	core.OpLessThanOrEqual:    "<=",
	core.OpGreaterThan:        ">",
	core.OpGreaterThanOrEqual: ">=",

	// Arithmetic operators
	core.OpAdd:      "+",
	core.OpSubtract: "-",
	core.OpConcat:   "||", // replaced by DialectConfig.ConcatOperator at render time

	// Multiplicative operators (highest precedence for binary ops)
	core.OpMultiply: "*",
	core.OpDivide:   "/",
	core.OpModulo:   "%",
}

// ModKeywordOperators spells modulo as the MOD keyword (Access).
var ModKeywordOperators = map[core.BinaryOp]string{
	core.OpModulo: "MOD",
}
