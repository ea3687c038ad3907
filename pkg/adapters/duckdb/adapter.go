// Package duckdb provides a DuckDB database adapter for leapquery.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapquery/pkg/adapter"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	duckdialect "github.com/leapstack-labs/leapquery/pkg/dialects/duckdb"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// Adapter implements the adapter.Adapter interface for DuckDB.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new DuckDB adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the DuckDB dialect.
func (a *Adapter) Dialect() *dialect.Dialect {
	return duckdialect.DuckDB
}

// Connect establishes a connection to DuckDB.
// Use ":memory:" as the path for an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	params, err := parseParams(cfg.Params)
	if err != nil {
		return err
	}
	setup, err := params.statements()
	if err != nil {
		return err
	}

	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	a.Logger.Debug("connecting to duckdb", slog.String("path", path))

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("failed to open duckdb connection: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	a.DB = db
	a.Cfg = cfg

	if err := a.setupSession(ctx, setup); err != nil {
		_ = a.Close()
		return err
	}
	return nil
}

func (a *Adapter) setupSession(ctx context.Context, stmts []string) error {
	for _, stmt := range stmts {
		a.Logger.Debug("duckdb session setup", slog.String("statement", stmt))
		if err := a.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run %q: %w", stmt, err)
		}
	}
	return nil
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
