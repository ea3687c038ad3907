// Package cli provides the command-line interface for leapquery.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapquery/internal/cli/commands"
	"github.com/leapstack-labs/leapquery/internal/cli/config"
	"github.com/leapstack-labs/leapquery/internal/cli/output"
	"github.com/leapstack-labs/leapquery/pkg/dialect"

	// Register adapters and dialects
	_ "github.com/leapstack-labs/leapquery/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/leapquery/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/leapquery/pkg/adapters/sqlite"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/all"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile    string
		targetFlag string
	)

	rootCmd := &cobra.Command{
		Use:   "leapquery",
		Short: "leapquery - portable query translation",
		Long: `leapquery compiles dialect-neutral query documents into SQL for
Access, ANSI, Databricks, DuckDB, MySQL, PostgreSQL, Snowflake, SQL Server
and SQLite, and can run them against a configured database.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, targetFlag, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose).With(
				slog.String("run_id", uuid.NewString()),
				slog.String("command", cmd.Name()),
			)

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			ctx = output.WithRenderer(ctx, renderer)
			cmd.SetContext(ctx)

			if cfg.ConfigFile != "" {
				logger.Debug("using config file", slog.String("path", cfg.ConfigFile))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: leapquery.yaml, searched upward)")
	rootCmd.PersistentFlags().StringVarP(&targetFlag, "target", "t", "", "Named target from the targets section")
	rootCmd.PersistentFlags().StringP("dialect", "d", "", "SQL dialect (default: the target's dialect, else ansi)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Break clauses onto separate lines")
	rootCmd.PersistentFlags().Bool("inline-constants", false, "Render constants as literals instead of placeholders")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	// Register completion for dialect flag
	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewTranslateCommand())
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewShellCommand())

	return rootCmd
}

// newLogger writes text logs to w: warnings and above normally, debug
// with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
