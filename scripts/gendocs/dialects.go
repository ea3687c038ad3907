package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"

	_ "github.com/leapstack-labs/leapquery/pkg/dialects/all" // register dialects
)

// generateDialectDocs writes an overview page plus one page per registered
// dialect describing how it renders each capability.
func generateDialectDocs(outDir string) error {
	log.Printf("Generating dialect docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	names := dialect.List()
	if err := os.WriteFile(filepath.Join(outDir, "index.md"), dialectIndex(names), 0600); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, name := range names {
		d, _ := dialect.Get(name)
		if err := os.WriteFile(filepath.Join(outDir, name+".md"), dialectPage(d), 0600); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", name, err)
		}
		log.Printf("  Generated %s.md", name)
	}
	return nil
}

func dialectIndex(names []string) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("Dialects", "SQL dialects supported by leapquery")
	w.GeneratedMarker()
	w.Header(1, "Dialects")
	w.Paragraph("Every dialect extends another and overrides only what differs. Select one with `--dialect` or the `dialect` config key.")

	var rows [][]string
	for _, name := range names {
		d, _ := dialect.Get(name)
		parent := "-"
		if p := d.Parent(); p != nil {
			parent = InlineCode(p.Name)
		}
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/dialects/%s)", InlineCode(name), name),
			parent,
			InlineCode(d.FormatPlaceholder(1)),
			d.Config().Pagination.Style.String(),
		})
	}
	w.Table([]string{"Dialect", "Extends", "Placeholder", "Pagination"}, rows)
	return w.Bytes()
}

func dialectPage(d *dialect.Dialect) []byte {
	cfg := d.Config()
	w := NewMarkdownWriter()
	w.Frontmatter(d.Name, "SQL rendering rules for the "+d.Name+" dialect")
	w.GeneratedMarker()
	w.Header(1, d.Name)

	w.Header(2, "Capabilities")
	concat := cfg.ConcatOperator
	if concat == "" {
		concat = "CONCAT()"
	}
	w.Table([]string{"Capability", "Value"}, [][]string{
		{"Placeholder", InlineCode(d.FormatPlaceholder(1))},
		{"Pagination", cfg.Pagination.Style.String()},
		{"Skip", yesNo(cfg.Pagination.SupportsOffset)},
		{"Skip without ordering", yesNo(cfg.Pagination.UnorderedSkip)},
		{"Skip without take", yesNo(cfg.Pagination.OpenEndedSkip)},
		{"Concatenation", InlineCode(concat)},
		{"Native booleans", yesNo(cfg.NativeBooleans)},
		{"Boolean literals", InlineCode(cfg.TrueLiteral) + " / " + InlineCode(cfg.FalseLiteral)},
	})

	w.Header(2, "Functions")
	methods := make([]core.MethodKind, 0, len(cfg.Functions))
	for m := range cfg.Functions {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].String() < methods[j].String() })

	var rows [][]string
	for _, m := range methods {
		rows = append(rows, []string{InlineCode(m.String()), InlineCode(cleanDescription(cfg.Functions[m].Template))})
	}
	w.Table([]string{"Method", "Template"}, rows)
	w.Paragraph("`{n}` is the n-th operand, `{*}` all operands, and `[a|b]` renders `a` when its operands are present and `b` otherwise. Methods not listed here cannot be translated for " + d.Name + ".")
	return w.Bytes()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
