package commands

import (
	"context"
	"testing"

	"github.com/leapstack-labs/leapquery/internal/cli/config"
	"github.com/leapstack-labs/leapquery/internal/cli/output"
	"github.com/leapstack-labs/leapquery/internal/cli/testutil"

	// Register adapters and dialects
	_ "github.com/leapstack-labs/leapquery/pkg/adapters/sqlite"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/all"
)

const usersQuery = `columns: [u.name]
from: {table: users, alias: u}
where: {op: ">", left: {col: u.age}, right: {const: 30}}
`

const pagedQuery = `columns: [u.name]
from: {table: users, alias: u}
order_by:
  - {expr: {col: u.name}}
skip: 2
take: 5
`

// newTestContext returns a context carrying cfg and a non-TTY renderer in
// the given mode.
func newTestContext(t *testing.T, cfg *config.Config, mode output.Mode) (context.Context, *testutil.TestRenderer) {
	t.Helper()
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = string(mode)
	}
	r := testutil.NewTestRenderer(mode, false)
	return testutil.Context(t, cfg, r), r
}
