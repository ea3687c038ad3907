package mssql

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
)

// Pagination is the SQL Server pagination configuration. A bare take uses
// SELECT TOP (n); any skip switches to OFFSET ... FETCH, which T-SQL only
// accepts after ORDER BY. A derived table or other subquery cannot be
// ordered unless it is also paged.
var Pagination = core.PaginationConfig{
	Style:          core.PaginationTopOffsetFetch,
	SupportsOffset: true,
	OpenEndedSkip:  true,

	PagedSubqueryOrdering: true,
}

// Functions overrides the ANSI renderings with their T-SQL spellings.
var Functions = map[core.MethodKind]core.FunctionDef{
	core.MethodTrim:      core.Fn("LTRIM(RTRIM({0}))"),
	core.MethodLength:    core.Fn("LEN({0})"),
	core.MethodSubstring: core.Fn("SUBSTRING({0}, {1} + 1, [{2}|LEN({0})])"),
	core.MethodIndexOf:   {Template: "CHARINDEX({1}, {0}) - 1", Compound: true},
	core.MethodRound:     core.Fn("ROUND({0}, [{1}|0])"),
	core.MethodNow:       core.Fn("GETDATE()"),
}

var reservedWords = []string{
	"BACKUP", "BREAK", "BROWSE", "BULK", "CHECKPOINT", "CLUSTERED",
	"COMPUTE", "CONTAINS", "CONTAINSTABLE", "DATABASE", "DBCC", "DENY",
	"DISK", "DUMP", "ERRLVL", "EXEC", "EXECUTE", "FILE", "FILLFACTOR",
	"FREETEXT", "FREETEXTTABLE", "HOLDLOCK", "IDENTITY", "IDENTITYCOL",
	"IDENTITY_INSERT", "INDEX", "KILL", "LINENO", "LOAD", "NOCHECK",
	"NONCLUSTERED", "OFFSETS", "OPENDATASOURCE", "OPENQUERY", "OPENROWSET",
	"OPENXML", "PERCENT", "PIVOT", "PLAN", "PRINT", "PROC", "RAISERROR",
	"READTEXT", "RECONFIGURE", "REPLICATION", "RESTORE", "REVERT", "ROWCOUNT",
	"ROWGUIDCOL", "RULE", "SAVE", "SETUSER", "SHUTDOWN", "STATISTICS",
	"TEXTSIZE", "TOP", "TRAN", "TRUNCATE", "TSEQUAL", "UNPIVOT",
	"UPDATETEXT", "USE", "WAITFOR", "WRITETEXT",
}
