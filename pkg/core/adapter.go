package core

import "database/sql"

// AdapterConfig holds configuration for connecting to a database.
type AdapterConfig struct {
	Type     string
	Path     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Options  map[string]string
	// Params holds adapter-specific settings, such as DuckDB extensions.
	Params   map[string]any
}

// Rows wraps sql.Rows to provide a consistent interface.
type Rows struct {
	*sql.Rows
}
