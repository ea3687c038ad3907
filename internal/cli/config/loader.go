package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// flagsNotInConfig are persistent flags that select how config is loaded
// rather than carrying a config value.
var flagsNotInConfig = map[string]bool{"config": true, "target": true}

// configExistsIn returns the config file in dir, or "".
func configExistsIn(dir string) string {
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// findConfigUpward searches upward from startDir for a leapquery config file.
// Returns empty string if not found within maxUpwardSearchLevels.
func findConfigUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if path := configExistsIn(dir); path != "" {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// targetName selects an entry of the targets map as the active target.
func Load(cfgFile, targetName string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"output":           DefaultOutput,
		"pretty":           false,
		"inline_constants": false,
		"verbose":          false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	if cfgFile == "" {
		if cwd, err := os.Getwd(); err == nil {
			cfgFile = findConfigUpward(cwd)
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Load environment variables
	// Transform: LEAPQUERY_TARGET__TYPE -> target.type
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			// Only load flags that were explicitly set
			if !f.Changed || flagsNotInConfig[f.Name] {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFile = cfgFile

	if targetName != "" {
		t, ok := cfg.Targets[targetName]
		if !ok {
			return nil, fmt.Errorf("unknown target %q (defined: %s)", targetName, strings.Join(targetNames(cfg.Targets), ", "))
		}
		cfg.Target = t
	}

	if cfg.Target != nil {
		expandTargetEnvVars(cfg.Target)
		// relative database files are anchored at the config file
		if cfgFile != "" && cfg.Target.Path != "" && cfg.Target.Path != ":memory:" && !filepath.IsAbs(cfg.Target.Path) {
			cfg.Target.Path = filepath.Join(filepath.Dir(cfgFile), cfg.Target.Path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func targetNames(targets map[string]*TargetConfig) []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if not found
	})
}

// expandTargetEnvVars expands environment variables in sensitive target fields.
func expandTargetEnvVars(t *TargetConfig) {
	t.Password = expandEnvVars(t.Password)
	t.User = expandEnvVars(t.User)
	t.Host = expandEnvVars(t.Host)
	t.Database = expandEnvVars(t.Database)
	t.Path = expandEnvVars(t.Path)
}
