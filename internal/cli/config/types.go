// Package config provides configuration management for the leapquery CLI.
//
// Values are layered with koanf: built-in defaults, then leapquery.yaml,
// then LEAPQUERY_* environment variables, then command-line flags.
package config

import (
	"github.com/leapstack-labs/leapquery/pkg/adapter"
	"github.com/leapstack-labs/leapquery/pkg/core"
)

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix     = "LEAPQUERY_"
)

// ConfigFileNames are searched, in order, in each candidate directory.
var ConfigFileNames = []string{"leapquery.yaml", "leapquery.yml"}

// Config holds all CLI configuration options.
type Config struct {
	// Dialect used by translate. Empty means the target's dialect.
	Dialect         string                   `koanf:"dialect"`
	OutputFormat    string                   `koanf:"output"`
	Pretty          bool                     `koanf:"pretty"`
	InlineConstants bool                     `koanf:"inline_constants"`
	Verbose         bool                     `koanf:"verbose"`
	Target          *TargetConfig            `koanf:"target"`
	Targets         map[string]*TargetConfig `koanf:"targets"`

	// ConfigFile is the file the values were read from, if any.
	ConfigFile string `koanf:"-"`
}

// TargetConfig describes the database that run executes against.
type TargetConfig struct {
	Type     string            `koanf:"type"`
	Path     string            `koanf:"path"`
	Host     string            `koanf:"host"`
	Port     int               `koanf:"port"`
	Database string            `koanf:"database"`
	User     string            `koanf:"user"`
	Password string            `koanf:"password"`
	Options  map[string]string `koanf:"options"`
	Params   map[string]any    `koanf:"params"`
}

// AdapterConfig converts the target into the adapter's connection settings.
func (t *TargetConfig) AdapterConfig() core.AdapterConfig {
	return core.AdapterConfig{
		Type:     t.Type,
		Path:     t.Path,
		Host:     t.Host,
		Port:     t.Port,
		Database: t.Database,
		Username: t.User,
		Password: t.Password,
		Options:  t.Options,
		Params:   t.Params,
	}
}

// EffectiveDialect returns the dialect translate should use: the explicit
// setting, or else the dialect of the target's adapter.
func (c *Config) EffectiveDialect() string {
	if c.Dialect != "" {
		return c.Dialect
	}
	if c.Target == nil {
		return ""
	}
	if d, err := adapter.DialectOf(c.Target.Type); err == nil {
		return d.Name
	}
	return c.Target.Type
}
