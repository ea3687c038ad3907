package config

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapquery/pkg/adapter"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
)

// OutputFormats lists the accepted values of the output setting.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// ErrTargetTypeRequired is returned when a target names no adapter.
var ErrTargetTypeRequired = errors.New("target type is required")

// Validate checks that the configured dialect, target, and output format
// exist. Dialects and adapters must be registered before it is called.
func (c *Config) Validate() error {
	if !contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected one of %v)", c.OutputFormat, OutputFormats)
	}

	if c.Target != nil {
		if c.Target.Type == "" {
			return fmt.Errorf("invalid target configuration: %w", ErrTargetTypeRequired)
		}
		if !adapter.IsRegistered(c.Target.Type) {
			return fmt.Errorf("invalid target configuration: %w", &adapter.UnknownAdapterError{
				Type:      c.Target.Type,
				Available: adapter.ListAdapters(),
			})
		}
	}

	if name := c.EffectiveDialect(); name != "" {
		if _, err := dialect.Lookup(name); err != nil {
			return err
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
