package duckdb

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Params holds DuckDB-specific configuration.
// Parsed from adapter.Config.Params using mapstructure.
type Params struct {
	// Extensions to install and load (e.g., "httpfs", "json")
	Extensions []string `mapstructure:"extensions"`

	// Settings to apply at session level (e.g., memory_limit, threads)
	Settings map[string]string `mapstructure:"settings"`
}

func parseParams(raw map[string]any) (*Params, error) {
	p := &Params{}
	if len(raw) == 0 {
		return p, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           p,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid duckdb params: %w", err)
	}
	return p, nil
}

var extensionName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// statements returns the session setup run after connecting: INSTALL and
// LOAD for each extension in order, then one SET per setting sorted by name.
func (p *Params) statements() ([]string, error) {
	stmts := make([]string, 0, 2*len(p.Extensions)+len(p.Settings))
	for _, ext := range p.Extensions {
		if !extensionName.MatchString(ext) {
			return nil, fmt.Errorf("invalid duckdb extension name %q", ext)
		}
		stmts = append(stmts, "INSTALL "+ext, "LOAD "+ext)
	}

	keys := make([]string, 0, len(p.Settings))
	for k := range p.Settings {
		if !extensionName.MatchString(k) {
			return nil, fmt.Errorf("invalid duckdb setting name %q", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := strings.ReplaceAll(p.Settings[k], "'", "''")
		stmts = append(stmts, fmt.Sprintf("SET %s = '%s'", k, v))
	}
	return stmts, nil
}
