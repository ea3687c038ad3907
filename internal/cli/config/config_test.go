package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapquery/internal/testutil"
	"github.com/leapstack-labs/leapquery/pkg/adapter"
	"github.com/leapstack-labs/leapquery/pkg/dialect"

	_ "github.com/leapstack-labs/leapquery/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/leapquery/pkg/adapters/sqlite"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/all"
)

const sampleConfig = `
dialect: mysql
pretty: true
target:
  type: sqlite
  path: data/app.db
targets:
  prod:
    type: postgres
    host: ${LEAPQUERY_TEST_HOST}
    port: 5433
    database: analytics
    password: ${LEAPQUERY_TEST_PASSWORD}
    options:
      sslmode: require
`

// newFlags mirrors the root command's persistent flags.
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringP("target", "t", "", "")
	fs.StringP("dialect", "d", "", "")
	fs.StringP("output", "o", "", "")
	fs.Bool("pretty", false, "")
	fs.Bool("inline-constants", false, "")
	fs.BoolP("verbose", "v", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "leapquery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Pretty)
	assert.Nil(t, cfg.Target)
	assert.Empty(t, cfg.ConfigFile)
	assert.Empty(t, cfg.EffectiveDialect())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, sampleConfig)

	cfg, err := Load(path, "", nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "mysql", cfg.Dialect)
	assert.True(t, cfg.Pretty)
	require.NotNil(t, cfg.Target)
	assert.Equal(t, "sqlite", cfg.Target.Type)
	assert.Equal(t, filepath.Join(dir, "data", "app.db"), cfg.Target.Path, "relative paths anchor at the config file")
	assert.Equal(t, "mysql", cfg.EffectiveDialect())
}

func TestEffectiveDialect(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "none", cfg: Config{}, want: ""},
		{name: "explicit wins", cfg: Config{Dialect: "mssql", Target: &TargetConfig{Type: "sqlite"}}, want: "mssql"},
		{name: "from adapter", cfg: Config{Target: &TargetConfig{Type: "postgres"}}, want: "postgres"},
		{name: "unregistered adapter", cfg: Config{Target: &TargetConfig{Type: "oracle"}}, want: "oracle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EffectiveDialect())
		})
	}
}

func TestLoadSearchesUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "dialect: snowflake\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	t.Chdir(nested)

	cfg, err := Load("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "snowflake", cfg.Dialect)
	assert.Equal(t, "leapquery.yaml", filepath.Base(cfg.ConfigFile))
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sampleConfig)

	tests := []struct {
		name        string
		env         map[string]string
		args        []string
		wantDialect string
		wantOutput  string
		wantPretty  bool
		wantTarget  string
	}{
		{
			name:        "file only",
			wantDialect: "mysql",
			wantOutput:  "auto",
			wantPretty:  true,
			wantTarget:  "sqlite",
		},
		{
			name:        "env overrides file",
			env:         map[string]string{"LEAPQUERY_DIALECT": "postgres", "LEAPQUERY_PRETTY": "false", "LEAPQUERY_TARGET__TYPE": "postgres"},
			wantDialect: "postgres",
			wantOutput:  "auto",
			wantPretty:  false,
			wantTarget:  "postgres",
		},
		{
			name:        "flags override env",
			env:         map[string]string{"LEAPQUERY_DIALECT": "postgres", "LEAPQUERY_OUTPUT": "markdown"},
			args:        []string{"-d", "access", "-o", "json"},
			wantDialect: "access",
			wantOutput:  "json",
			wantPretty:  true,
			wantTarget:  "sqlite",
		},
		{
			name:        "unset flags do not override",
			args:        []string{"--verbose"},
			wantDialect: "mysql",
			wantOutput:  "auto",
			wantPretty:  true,
			wantTarget:  "sqlite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(path, "", newFlags(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.wantDialect, cfg.Dialect)
			assert.Equal(t, tt.wantOutput, cfg.OutputFormat)
			assert.Equal(t, tt.wantPretty, cfg.Pretty)
			assert.Equal(t, tt.wantTarget, cfg.Target.Type)
		})
	}
}

func TestLoadNamedTarget(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sampleConfig)
	t.Setenv("LEAPQUERY_TEST_HOST", "db.internal")
	t.Setenv("LEAPQUERY_TEST_PASSWORD", "s3cret")

	cfg, err := Load(path, "prod", nil)
	require.NoError(t, err)
	require.NotNil(t, cfg.Target)

	ac := cfg.Target.AdapterConfig()
	assert.Equal(t, "postgres", ac.Type)
	assert.Equal(t, "db.internal", ac.Host)
	assert.Equal(t, 5433, ac.Port)
	assert.Equal(t, "s3cret", ac.Password)
	assert.Equal(t, map[string]string{"sslmode": "require"}, ac.Options)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "unknown target",
			content: sampleConfig,
			target:  "staging",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), `unknown target "staging"`)
				assert.Contains(t, err.Error(), "prod")
			},
		},
		{
			name:    "unknown dialect",
			content: "dialect: cobol\n",
			check: func(t *testing.T, err error) {
				var unknown *dialect.UnknownDialectError
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, "cobol", unknown.Name)
			},
		},
		{
			name:    "unknown adapter",
			content: "target:\n  type: oracle\n",
			check: func(t *testing.T, err error) {
				var unknown *adapter.UnknownAdapterError
				require.ErrorAs(t, err, &unknown)
				assert.Contains(t, unknown.Available, "sqlite")
			},
		},
		{
			name:    "target without type",
			content: "target:\n  path: x.db\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrTargetTypeRequired)
			},
		},
		{
			name:    "bad output",
			content: "output: yaml\n",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), `invalid output format "yaml"`)
			},
		},
		{
			name:    "malformed file",
			content: "dialect: [",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "error reading config file")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path, tt.target, nil)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("LEAPQUERY_TEST_USER", "alice")

	assert.Equal(t, "alice", expandEnvVars("${LEAPQUERY_TEST_USER}"))
	assert.Equal(t, "u-alice-x", expandEnvVars("u-${LEAPQUERY_TEST_USER}-x"))
	assert.Equal(t, "${LEAPQUERY_TEST_MISSING}", expandEnvVars("${LEAPQUERY_TEST_MISSING}"))
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.NotNil(t, GetLogger(ctx), "discard logger fallback")
	assert.Equal(t, DefaultOutput, GetConfig(ctx).OutputFormat)

	logger := testutil.NewTestLogger(t)
	cfg := &Config{Dialect: "ansi"}
	ctx = WithLogger(WithConfig(ctx, cfg), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.Same(t, cfg, GetConfig(ctx))
}
