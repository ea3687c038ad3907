// Package mssql provides the Microsoft SQL Server (T-SQL) dialect
// definition.
package mssql

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/dialects/ansi"
)

func init() {
	dialect.Register(MSSQL)
}

// MSSQL is the SQL Server dialect. T-SQL has no boolean values, so
// predicates used as values go through CASE and boolean constants are 1/0.
var MSSQL = dialect.Extends(ansi.ANSI).
	Named("mssql").
	Identifiers("[", "]", "]]").
	PlaceholderStyle(core.PlaceholderAtP).
	Pagination(Pagination).
	ConcatOperator("+").
	LikeEscape(`\`, "%_["). // "[" opens a character class
	Functions(Functions).
	CrossJoinKeyword(true).
	BooleanLiterals("1", "0").
	WithKeywords(reservedWords...).
	Build()
