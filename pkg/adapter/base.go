package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapquery/pkg/core"
)

// ErrNotConnected is returned when an adapter is used before Connect.
var ErrNotConnected = errors.New("database connection not established")

// BaseSQLAdapter provides common database/sql functionality for adapters.
// Embed this struct in concrete adapter implementations to get standard
// Close, Exec, and Query implementations.
type BaseSQLAdapter struct {
	DB     *sql.DB
	Cfg    core.AdapterConfig
	Logger *slog.Logger
}

func (b *BaseSQLAdapter) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB == nil {
		return nil
	}
	b.logger().Debug("closing database connection")
	err := b.DB.Close()
	b.DB = nil
	return err
}

// Exec executes a SQL statement that doesn't return rows.
func (b *BaseSQLAdapter) Exec(ctx context.Context, sqlStr string, args ...any) error {
	if b.DB == nil {
		return ErrNotConnected
	}
	b.logger().Debug("exec", slog.String("sql", sqlStr), slog.Int("params", len(args)))
	if _, err := b.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}
	return nil
}

// Query executes a SQL statement that returns rows.
func (b *BaseSQLAdapter) Query(ctx context.Context, sqlStr string, args ...any) (*core.Rows, error) {
	if b.DB == nil {
		return nil, ErrNotConnected
	}
	b.logger().Debug("query", slog.String("sql", sqlStr), slog.Int("params", len(args)))
	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := b.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return &core.Rows{Rows: rows}, nil
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool {
	return b.DB != nil
}

// Table is a fully read result set.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Collect reads every row and closes rows. []byte values are copied to
// strings so they outlive the driver buffer.
func Collect(rows *Rows) (*Table, error) {
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	t := &Table{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		t.Rows = append(t.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return t, nil
}
