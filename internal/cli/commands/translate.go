package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapquery/internal/cli/config"
	"github.com/leapstack-labs/leapquery/internal/cli/output"
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/querydoc"
	"github.com/leapstack-labs/leapquery/pkg/translate"
)

// DefaultDialect is used when neither --dialect nor a target names one.
const DefaultDialect = "ansi"

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

// TranslateOptions holds options for the translate command.
type TranslateOptions struct {
	All   bool
	Watch bool
}

// TranslationOutput is the JSON form of one translation.
type TranslationOutput struct {
	Dialect string `json:"dialect"`
	SQL     string `json:"sql,omitempty"`
	Params  []any  `json:"params,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand() *cobra.Command {
	opts := &TranslateOptions{}

	cmd := &cobra.Command{
		Use:   "translate <file>",
		Short: "Translate a query document into SQL",
		Long: `Translate a YAML or JSON query document into SQL for a dialect.

The dialect comes from --dialect, the config file, or the active target.
With --all the document is rendered for every registered dialect, and a
dialect that cannot express the query reports why instead of failing the
command.`,
		Example: `  # Translate for PostgreSQL
  leapquery translate query.yaml -d postgres

  # Compare every dialect side by side
  leapquery translate query.yaml --all

  # Re-translate whenever the file changes
  leapquery translate query.yaml -d mssql --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd.Context(), opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Translate for every registered dialect")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-translate when the file changes")

	return cmd
}

func runTranslate(ctx context.Context, opts *TranslateOptions, path string) error {
	logger := config.GetLogger(ctx)
	r := output.FromContext(ctx)

	if !opts.Watch {
		return translateFile(ctx, opts, path)
	}

	if err := translateFile(ctx, opts, path); err != nil {
		r.Warning(err.Error())
	}
	return watchFile(ctx, logger, path, func() {
		if err := translateFile(ctx, opts, path); err != nil {
			r.Warning(err.Error())
		}
	})
}

// translateOptions maps the configuration onto translator options.
func translateOptions(cfg *config.Config) []translate.Option {
	var opts []translate.Option
	if cfg.Pretty {
		opts = append(opts, translate.WithPretty())
	}
	if cfg.InlineConstants {
		opts = append(opts, translate.WithInlineConstants())
	}
	return opts
}

func translateFile(ctx context.Context, opts *TranslateOptions, path string) error {
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)
	r := output.FromContext(ctx)

	sel, err := querydoc.Load(path)
	if err != nil {
		return err
	}

	if opts.All {
		results, err := translateAll(ctx, sel, translateOptions(cfg))
		if err != nil {
			return err
		}
		logger.Debug("translated for all dialects", slog.Int("dialects", len(results)))
		return writeTranslations(r, results)
	}

	name := cfg.EffectiveDialect()
	if name == "" {
		name = DefaultDialect
	}
	d, err := dialect.Lookup(name)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := translate.Translate(sel, d, translateOptions(cfg)...)
	if err != nil {
		return err
	}
	logger.Debug("translated query",
		slog.String("dialect", d.Name),
		slog.Int("params", len(res.Params)),
		slog.Duration("elapsed", time.Since(start)))

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(TranslationOutput{Dialect: d.Name, SQL: res.SQL, Params: res.Params})
	}
	r.SQL(res.SQL)
	writeParams(r, res.Params)
	return nil
}

// translateAll renders sel for every registered dialect concurrently. A
// dialect's translation error is recorded in its result rather than
// returned.
func translateAll(ctx context.Context, sel *core.SelectExpression, opts []translate.Option) ([]TranslationOutput, error) {
	names := dialect.List()
	results := make([]TranslationOutput, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, ok := dialect.Get(name)
			if !ok {
				return fmt.Errorf("dialect %q disappeared from the registry", name)
			}
			results[i] = TranslationOutput{Dialect: name}
			res, err := translate.Translate(sel, d, opts...)
			if err != nil {
				if errors.Is(err, core.ErrMalformedTree) {
					return err
				}
				results[i].Error = err.Error()
				return nil
			}
			results[i].SQL = res.SQL
			results[i].Params = res.Params
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeTranslations(r *output.Renderer, results []TranslationOutput) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(results)
	}
	for i, res := range results {
		if i > 0 {
			r.Println()
		}
		r.Header(2, res.Dialect)
		if res.Error != "" {
			r.Println(r.Muted("-- " + res.Error))
			continue
		}
		r.SQL(res.SQL)
		writeParams(r, res.Params)
	}
	return nil
}

func writeParams(r *output.Renderer, params []any) {
	if len(params) > 0 {
		r.Println(r.Muted(fmt.Sprintf("-- params: %v", params)))
	}
}

// watchFile calls onChange after each write to path until ctx is done. The
// parent directory is watched so editors that replace the file on save
// keep triggering.
func watchFile(ctx context.Context, logger *slog.Logger, path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	logger.Info("watching for changes", slog.String("file", abs))

	// Debounce timer
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce = time.After(watchDebounce)

		case <-debounce:
			debounce = nil
			logger.Debug("file changed", slog.String("file", abs))
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", slog.String("error", err.Error()))
		}
	}
}
