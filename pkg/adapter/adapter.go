// Package adapter provides database adapter interfaces for executing
// translated queries.
//
// This package contains the public contract that all database adapters must
// implement. Concrete adapter implementations are in pkg/adapters/
// subdirectories and register themselves in init().
package adapter

import (
	"context"

	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
)

// Type aliases for the core types adapters exchange.
type (
	// Config is an alias for core.AdapterConfig.
	Config = core.AdapterConfig

	// Rows is an alias for core.Rows.
	Rows = core.Rows
)

// Adapter defines the interface that all database adapters must implement.
// It connects to a database and executes the SQL and parameters produced by
// the translator.
type Adapter interface {
	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows (e.g., INSERT, CREATE).
	Exec(ctx context.Context, sql string, args ...any) error

	// Query executes a SQL statement that returns rows.
	Query(ctx context.Context, sql string, args ...any) (*Rows, error)

	// Dialect returns the SQL dialect that queries for this adapter must be
	// translated with.
	Dialect() *dialect.Dialect
}
