package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapquery/internal/cli/config"
	"github.com/leapstack-labs/leapquery/internal/cli/output"
	"github.com/leapstack-labs/leapquery/pkg/adapter"
	"github.com/leapstack-labs/leapquery/pkg/querydoc"
	"github.com/leapstack-labs/leapquery/pkg/translate"
)

// ErrNoTarget is returned by run when no database target is configured.
var ErrNoTarget = errors.New("no target configured: add a target to leapquery.yaml or select one with --target")

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	var showSQL bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Translate a query document and execute it against the target",
		Long: `Translate a query document for the target database's dialect and
execute it through the target's adapter. Constants are always sent as
parameters, so --inline-constants does not apply.`,
		Example: `  # Run against the default target
  leapquery run query.yaml

  # Run against a named target and print the SQL that was sent
  leapquery run query.yaml --target prod --show-sql`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.Context(), args[0], showSQL)
		},
	}

	cmd.Flags().BoolVar(&showSQL, "show-sql", false, "Print the translated SQL before the results")

	return cmd
}

func runRun(ctx context.Context, path string, showSQL bool) error {
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)
	r := output.FromContext(ctx)

	if cfg.Target == nil {
		return ErrNoTarget
	}

	sel, err := querydoc.Load(path)
	if err != nil {
		return err
	}

	a, err := adapter.NewAdapter(cfg.Target.AdapterConfig(), logger)
	if err != nil {
		return err
	}
	if err := a.Connect(ctx, cfg.Target.AdapterConfig()); err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	var opts []translate.Option
	if cfg.Pretty {
		opts = append(opts, translate.WithPretty())
	}

	if showSQL {
		res, err := translate.Translate(sel, a.Dialect(), opts...)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(r.ErrWriter(), r.Muted(res.SQL))
	}

	start := time.Now()
	table, err := adapter.QueryTree(ctx, a, sel, opts...)
	if err != nil {
		return err
	}
	logger.Info("query executed",
		slog.String("adapter", cfg.Target.Type),
		slog.Int("rows", len(table.Rows)),
		slog.Duration("elapsed", time.Since(start)))

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(rowMaps(table))
	}
	r.Table(table.Columns, table.Rows)
	r.Println(r.Muted(fmt.Sprintf("(%d rows)", len(table.Rows))))
	return nil
}

// rowMaps converts a table into one column-keyed object per row.
func rowMaps(t *adapter.Table) []map[string]any {
	out := make([]map[string]any, len(t.Rows))
	for i, row := range t.Rows {
		m := make(map[string]any, len(t.Columns))
		for j, col := range t.Columns {
			m[col] = row[j]
		}
		out[i] = m
	}
	return out
}
