package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/leapquery/internal/cli/config"
	"github.com/leapstack-labs/leapquery/pkg/adapter"

	_ "github.com/leapstack-labs/leapquery/pkg/adapters/duckdb"   // register adapters
	_ "github.com/leapstack-labs/leapquery/pkg/adapters/postgres" // register adapters
	_ "github.com/leapstack-labs/leapquery/pkg/adapters/sqlite"   // register adapters
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Category    string // "global" or "target"
}

// getConfigSchema returns the configuration schema. It mirrors
// internal/cli/config Config and TargetConfig.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "dialect", Type: "string", Description: "SQL dialect; defaults to the target's type, else ansi", Category: "global"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: " + strings.Join(config.OutputFormats, ", "), Category: "global"},
		{Name: "pretty", Type: "bool", Default: "false", Description: "Break clauses onto separate lines", Category: "global"},
		{Name: "inline_constants", Type: "bool", Default: "false", Description: "Render constants as literals instead of placeholders", Category: "global"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Debug logging on stderr", Category: "global"},

		{Name: "type", Type: "string", Description: "Adapter: " + strings.Join(adapter.ListAdapters(), ", "), Category: "target"},
		{Name: "path", Type: "string", Description: "Database file (duckdb, sqlite), relative to the config file", Category: "target"},
		{Name: "host", Type: "string", Description: "Database host (postgres)", Category: "target"},
		{Name: "port", Type: "int", Default: "5432", Description: "Database port (postgres)", Category: "target"},
		{Name: "database", Type: "string", Description: "Database name (postgres)", Category: "target"},
		{Name: "user", Type: "string", Description: "Database username (postgres)", Category: "target"},
		{Name: "password", Type: "string", Description: "Database password; `${VAR}` is expanded", Category: "target"},
		{Name: "options", Type: "map[string]string", Description: "Additional driver connection options", Category: "target"},
		{Name: "params", Type: "map[string]any", Description: "Adapter settings, such as DuckDB extensions and settings", Category: "target"},
	}
}

// generateConfigDocs writes the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "configuration.md"), configurationPage(getConfigSchema()), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}

func configurationPage(fields []ConfigField) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "leapquery configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("leapquery reads `" + config.ConfigFileNames[0] + "` from the working directory or the nearest parent directory. Environment variables prefixed with `" + config.EnvPrefix + "` and command-line flags override it.")

	w.Header(2, "Settings")
	w.Table([]string{"Field", "Type", "Default", "Description"}, fieldRows(fields, "global"))

	w.Header(2, "Targets")
	w.Paragraph("`target` is the default database. Additional databases go under `targets` and are selected with `--target <name>`.")
	w.Table([]string{"Field", "Type", "Default", "Description"}, fieldRows(fields, "target"))

	w.Header(2, "Example")
	w.CodeBlock("yaml", `dialect: postgres
output: markdown
target:
  type: duckdb
  path: ./warehouse.duckdb
  params:
    extensions: [httpfs]
targets:
  prod:
    type: postgres
    host: db.internal
    database: app
    user: reader
    password: ${PGPASSWORD}`)
	return w.Bytes()
}

func fieldRows(fields []ConfigField, category string) [][]string {
	var rows [][]string
	for _, f := range fields {
		if f.Category != category {
			continue
		}
		def := f.Default
		if def == "" {
			def = "-"
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, def, f.Description})
	}
	return rows
}
