package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/leapquery/internal/cli"
	"github.com/leapstack-labs/leapquery/internal/cli/config"
)

// generateCLIDocs writes an overview page plus one page per visible
// top-level command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	if err := os.WriteFile(filepath.Join(outDir, "index.md"), cliIndex(root), 0600); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	log.Printf("  Generated index.md")

	for _, cmd := range documented(root) {
		if err := os.WriteFile(filepath.Join(outDir, cmd.Name()+".md"), commandPage(cmd), 0600); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
		log.Printf("  Generated %s.md", cmd.Name())
	}
	return nil
}

// documented returns the subcommands that get a reference page.
func documented(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.Hidden || sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		out = append(out, sub)
	}
	return out
}

func cliIndex(root *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for leapquery")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "go install github.com/leapstack-labs/leapquery/cmd/leapquery@latest")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documented(root) {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	w.Table(flagHeaders, flagRows(root.PersistentFlags()))

	w.Header(2, "Environment Variables")
	w.Paragraph("Configuration keys can also be set from the environment. Flags override the environment, which overrides the config file.")
	w.Table([]string{"Variable", "Description"}, envRows(getConfigSchema()))

	w.Header(2, "Exit Codes")
	w.Paragraph("`leapquery` exits with `0` on success and `1` on any error. Errors are written to stderr.")
	return w.Bytes()
}

func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	w.Paragraph(desc)

	w.Header(2, "Usage")
	w.CodeBlock("bash", strings.TrimSuffix(cmd.UseLine(), " [flags]"))

	if len(cmd.Aliases) > 0 {
		w.Header(2, "Aliases")
		aliases := make([]string, len(cmd.Aliases))
		for i, a := range cmd.Aliases {
			aliases[i] = InlineCode(a)
		}
		w.BulletList(aliases)
	}

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		w.Table(flagHeaders, flagRows(cmd.LocalFlags()))
	}
	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		w.Table(flagHeaders, flagRows(cmd.InheritedFlags()))
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}
	return w.Bytes()
}

var flagHeaders = []string{"Option", "Short", "Default", "Description"}

func flagRows(flags *pflag.FlagSet) [][]string {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		short := ""
		if f.Shorthand != "" {
			short = InlineCode("-" + f.Shorthand)
		}
		def := f.DefValue
		if f.Value.Type() == "string" && def != "" {
			def = InlineCode(def)
		}
		rows = append(rows, []string{InlineCode("--" + f.Name), short, def, cleanDescription(f.Usage)})
	})
	return rows
}

// envRows lists the variables for scalar config keys. Target keys are nested
// under TARGET with a double underscore.
func envRows(fields []ConfigField) [][]string {
	var rows [][]string
	for _, f := range fields {
		if strings.HasPrefix(f.Type, "map") {
			continue
		}
		name := config.EnvPrefix + strings.ToUpper(f.Name)
		if f.Category == "target" {
			name = config.EnvPrefix + "TARGET__" + strings.ToUpper(f.Name)
		}
		rows = append(rows, []string{InlineCode(name), f.Description})
	}
	return rows
}

// dedent strips the indentation shared by every non-blank line.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
