package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapquery/pkg/dialect"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display leapquery version and the number of registered dialects.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "leapquery v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Portable query translation for %d SQL dialects\n", len(dialect.List()))
		},
	}
}
