package output

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table writes rows under the given column headers. Markdown mode renders
// a markdown table; every other mode draws a box table.
func (r *Renderer) Table(cols []string, rows [][]any) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	t.AppendHeader(header)

	for _, row := range rows {
		out := make(table.Row, len(row))
		for i, v := range row {
			out[i] = FormatValue(v)
		}
		t.AppendRow(out)
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// FormatValue renders a database value for display.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
