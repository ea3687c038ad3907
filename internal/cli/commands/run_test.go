package commands

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapquery/internal/cli/config"
	"github.com/leapstack-labs/leapquery/internal/cli/output"
	"github.com/leapstack-labs/leapquery/internal/cli/testutil"
	logutil "github.com/leapstack-labs/leapquery/internal/testutil"
	"github.com/leapstack-labs/leapquery/pkg/adapter"
	sqliteadapter "github.com/leapstack-labs/leapquery/pkg/adapters/sqlite"
)

// seedDatabase creates a SQLite file with a small users table.
func seedDatabase(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.db")

	a := sqliteadapter.New(nil)
	ctx := context.Background()
	require.NoError(t, a.Connect(ctx, adapter.Config{Type: "sqlite", Path: path}))
	defer func() { _ = a.Close() }()

	require.NoError(t, a.Exec(ctx, "CREATE TABLE users (id INTEGER, name TEXT, age INTEGER)"))
	require.NoError(t, a.Exec(ctx, "INSERT INTO users VALUES (1, 'ada', 36), (2, 'grace', 45), (3, 'linus', 30)"))
	return path
}

func TestRun_JSON(t *testing.T) {
	db := seedDatabase(t)
	query := testutil.WriteFile(t, t.TempDir(), "users.yaml", usersQuery+"order_by:\n  - {expr: {col: u.name}}\n")

	cfg := &config.Config{Target: &config.TargetConfig{Type: "sqlite", Path: db}}
	ctx, r := newTestContext(t, cfg, output.ModeJSON)

	require.NoError(t, runRun(ctx, query, false))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.Out.String()), &rows))
	assert.Equal(t, []map[string]any{{"name": "ada"}, {"name": "grace"}}, rows)
}

func TestRun_TableWithSQL(t *testing.T) {
	db := seedDatabase(t)
	query := testutil.WriteFile(t, t.TempDir(), "users.yaml", usersQuery)

	cfg := &config.Config{Target: &config.TargetConfig{Type: "sqlite", Path: db}}
	ctx, r := newTestContext(t, cfg, output.ModeMarkdown)

	require.NoError(t, runRun(ctx, query, true))

	assert.Contains(t, r.ErrOut.String(), "SELECT u.name FROM users AS u WHERE u.age > ?")
	assert.Contains(t, r.Out.String(), "ada")
	assert.Contains(t, r.Out.String(), "grace")
	assert.NotContains(t, r.Out.String(), "linus")
	assert.Contains(t, r.Out.String(), "(2 rows)")
}

func TestRun_LogsExecution(t *testing.T) {
	db := seedDatabase(t)
	query := testutil.WriteFile(t, t.TempDir(), "users.yaml", usersQuery)

	cfg := &config.Config{Target: &config.TargetConfig{Type: "sqlite", Path: db}}
	ctx, _ := newTestContext(t, cfg, output.ModeJSON)
	logger, rec := logutil.NewRecordingLogger()
	ctx = config.WithLogger(ctx, logger)

	require.NoError(t, runRun(ctx, query, false))

	assert.Contains(t, rec.String(), `"msg":"query executed"`)
	assert.Contains(t, rec.String(), `"adapter":"sqlite"`)
	assert.Contains(t, rec.String(), `"rows":2`)
}

func TestRun_Errors(t *testing.T) {
	query := testutil.WriteFile(t, t.TempDir(), "users.yaml", usersQuery)

	t.Run("no target", func(t *testing.T) {
		ctx, _ := newTestContext(t, &config.Config{}, output.ModeText)
		require.ErrorIs(t, runRun(ctx, query, false), ErrNoTarget)
	})

	t.Run("unknown adapter", func(t *testing.T) {
		cfg := &config.Config{Target: &config.TargetConfig{Type: "oracle"}}
		ctx, _ := newTestContext(t, cfg, output.ModeText)
		var unknown *adapter.UnknownAdapterError
		require.ErrorAs(t, runRun(ctx, query, false), &unknown)
	})

	t.Run("missing table", func(t *testing.T) {
		cfg := &config.Config{Target: &config.TargetConfig{Type: "sqlite", Path: filepath.Join(t.TempDir(), "empty.db")}}
		ctx, _ := newTestContext(t, cfg, output.ModeText)
		err := runRun(ctx, query, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "users")
	})
}
