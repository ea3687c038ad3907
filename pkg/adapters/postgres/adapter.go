// Package postgres provides a PostgreSQL database adapter for leapquery,
// backed by pgx through its database/sql bridge.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/leapstack-labs/leapquery/pkg/adapter"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	pgdialect "github.com/leapstack-labs/leapquery/pkg/dialects/postgres"
)

const applicationName = "leapquery"

// Adapter implements the adapter.Adapter interface for PostgreSQL.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new PostgreSQL adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the PostgreSQL dialect.
func (a *Adapter) Dialect() *dialect.Dialect {
	return pgdialect.Postgres
}

// Connect establishes a connection to PostgreSQL.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	connCfg, err := pgx.ParseConfig(connectionURL(cfg))
	if err != nil {
		return fmt.Errorf("invalid postgres configuration: %w", err)
	}
	if _, ok := connCfg.RuntimeParams["application_name"]; !ok {
		connCfg.RuntimeParams["application_name"] = applicationName
	}

	a.Logger.Debug("connecting to postgres",
		slog.String("host", connCfg.Host),
		slog.Int("port", int(connCfg.Port)),
		slog.String("database", connCfg.Database))

	db := stdlib.OpenDB(*connCfg)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// connectionURL builds a postgres:// URL from cfg. Options become query
// parameters, so credentials and values need no manual quoting.
func connectionURL(cfg adapter.Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   host + ":" + strconv.Itoa(port),
		Path:   "/" + cfg.Database,
	}
	switch {
	case cfg.Username != "" && cfg.Password != "":
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	case cfg.Username != "":
		u.User = url.User(cfg.Username)
	}

	q := url.Values{}
	q.Set("sslmode", "disable")
	keys := make([]string, 0, len(cfg.Options))
	for k := range cfg.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, cfg.Options[k])
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
