// Package sqlite provides a SQLite database adapter for leapquery, backed by
// the pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapquery/pkg/adapter"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	litedialect "github.com/leapstack-labs/leapquery/pkg/dialects/sqlite"

	_ "modernc.org/sqlite" // sqlite driver
)

const memoryPath = ":memory:"

// Adapter implements the adapter.Adapter interface for SQLite.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new SQLite adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the SQLite dialect.
func (a *Adapter) Dialect() *dialect.Dialect {
	return litedialect.SQLite
}

// Connect opens the database file at cfg.Path, or an in-memory database
// when the path is empty or ":memory:".
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	path := cfg.Path
	if path == "" {
		path = memoryPath
	}

	a.Logger.Debug("connecting to sqlite", slog.String("path", path))

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite connection: %w", err)
	}
	if path == memoryPath {
		// every connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
