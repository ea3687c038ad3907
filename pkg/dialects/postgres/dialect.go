// Package postgres provides the PostgreSQL SQL dialect definition.
//
// This package is pure Go with no database driver dependencies.
// It can be imported by any package that needs PostgreSQL dialect information
// without pulling in the pgx driver.
package postgres

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/dialects/ansi"
)

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect.
var Postgres = dialect.Extends(ansi.ANSI).
	Named("postgres").
	PlaceholderStyle(core.PlaceholderDollar).
	Pagination(Pagination).
	Functions(Functions).
	CrossJoinKeyword(true).
	NativeBooleans(true).
	WithKeywords(reservedWords...).
	Build()
