// Package duckdb provides a DuckDB database adapter for leapquery.
//
// Import this package with a blank identifier to register the adapter:
//
//	import _ "github.com/leapstack-labs/leapquery/pkg/adapters/duckdb"
package duckdb

import (
	"log/slog"

	"github.com/leapstack-labs/leapquery/pkg/adapter"
)

func init() {
	adapter.Register("duckdb", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
