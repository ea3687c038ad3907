// Package duckdb provides the DuckDB SQL dialect definition.
//
// This package is pure Go with no database driver dependencies.
// It can be imported by any package that needs DuckDB dialect information
// without pulling in the go-duckdb driver.
package duckdb

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/dialects/postgres"
)

func init() {
	dialect.Register(DuckDB)
}

// DuckDB extends PostgreSQL: same pagination and function names, but "?"
// placeholders.
var DuckDB = dialect.Extends(postgres.Postgres).
	Named("duckdb").
	PlaceholderStyle(core.PlaceholderQuestion).
	Functions(Functions).
	WithKeywords(reservedWords...).
	Build()
