// Package sqlite provides the SQLite SQL dialect definition.
//
// This package is pure Go with no database driver dependencies; the
// modernc.org/sqlite adapter lives in pkg/adapters/sqlite.
package sqlite

import (
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/dialects/ansi"
)

func init() {
	dialect.Register(SQLite)
}

// SQLite is the SQLite SQL dialect.
var SQLite = dialect.Extends(ansi.ANSI).
	Named("sqlite").
	Pagination(Pagination).
	Functions(Functions).
	NativeBooleans(true).
	BooleanLiterals("1", "0").
	WithKeywords(reservedWords...).
	Build()
