package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/leapquery/internal/cli/output"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
)

// DialectInfo summarizes a registered dialect.
type DialectInfo struct {
	Name        string `json:"name"`
	Extends     string `json:"extends,omitempty"`
	Placeholder string `json:"placeholder"`
	Pagination  string `json:"pagination"`
	Skip        bool   `json:"skip"`
	Concat      string `json:"concat"`
	Booleans    bool   `json:"native_booleans"`
	Functions   int    `json:"functions"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered SQL dialects and their capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(cmd.Context())
		},
	}
}

func describeDialect(d *dialect.Dialect) DialectInfo {
	cfg := d.Config()
	info := DialectInfo{
		Name:        d.Name,
		Placeholder: d.FormatPlaceholder(1),
		Pagination:  cfg.Pagination.Style.String(),
		Skip:        cfg.Pagination.SupportsOffset,
		Concat:      cfg.ConcatOperator,
		Booleans:    cfg.NativeBooleans,
		Functions:   len(cfg.Functions),
	}
	if info.Concat == "" {
		info.Concat = "CONCAT()"
	}
	if p := d.Parent(); p != nil {
		info.Extends = p.Name
	}
	return info
}

func runDialects(ctx context.Context) error {
	r := output.FromContext(ctx)

	var infos []DialectInfo
	for _, name := range dialect.List() {
		if d, ok := dialect.Get(name); ok {
			infos = append(infos, describeDialect(d))
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	titleCaser := cases.Title(language.English)
	rows := make([][]any, len(infos))
	for i, info := range infos {
		rows[i] = []any{
			titleCaser.String(info.Name),
			info.Extends,
			info.Placeholder,
			info.Pagination,
			yesNo(info.Skip),
			info.Concat,
			yesNo(info.Booleans),
			info.Functions,
		}
	}
	r.Header(1, fmt.Sprintf("Dialects (%d)", len(infos)))
	r.Table([]string{"Dialect", "Extends", "Placeholder", "Pagination", "Skip", "Concat", "Native booleans", "Functions"}, rows)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
