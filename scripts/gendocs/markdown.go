package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// MarkdownWriter accumulates a generated markdown page.
type MarkdownWriter struct {
	buf bytes.Buffer
}

// NewMarkdownWriter creates an empty page.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Frontmatter writes the YAML header read by the docs site.
func (w *MarkdownWriter) Frontmatter(title, description string) {
	fmt.Fprintf(&w.buf, "---\ntitle: %s\ndescription: %s\n---\n\n", title, cleanDescription(description))
}

// GeneratedMarker notes that the page must not be edited by hand.
func (w *MarkdownWriter) GeneratedMarker() {
	w.buf.WriteString("<!-- Code generated by scripts/gendocs. DO NOT EDIT. -->\n\n")
}

// Header writes a heading at level.
func (w *MarkdownWriter) Header(level int, text string) {
	fmt.Fprintf(&w.buf, "%s %s\n\n", strings.Repeat("#", level), text)
}

// Paragraph writes a block of text.
func (w *MarkdownWriter) Paragraph(text string) {
	w.buf.WriteString(strings.TrimSpace(text) + "\n\n")
}

// CodeBlock writes a fenced code block.
func (w *MarkdownWriter) CodeBlock(lang, code string) {
	fmt.Fprintf(&w.buf, "```%s\n%s\n```\n\n", lang, strings.TrimRight(code, "\n"))
}

// BulletList writes one bullet per item.
func (w *MarkdownWriter) BulletList(items []string) {
	for _, item := range items {
		w.buf.WriteString("- " + item + "\n")
	}
	w.buf.WriteString("\n")
}

// Table writes a markdown table. Nothing is written when rows is empty.
func (w *MarkdownWriter) Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	t := table.NewWriter()
	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)
	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}
		t.AppendRow(row)
	}
	w.buf.WriteString(t.RenderMarkdown() + "\n\n")
}

// Bytes returns the page content.
func (w *MarkdownWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// InlineCode wraps s in backticks.
func InlineCode(s string) string {
	return "`" + s + "`"
}

// cleanDescription collapses whitespace. Table renders escape pipes.
func cleanDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
