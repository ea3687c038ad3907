package output

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTest(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{"", false, ModeMarkdown},
		{ModeText, false, ModeText},
		{ModeMarkdown, true, ModeMarkdown},
		{ModeJSON, true, ModeJSON},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			r, _, _ := newTest(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRendererDetectsNonTerminal(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestHeader(t *testing.T) {
	r, out, _ := newTest(ModeMarkdown, false)
	r.Header(2, "Dialects")
	assert.Equal(t, "## Dialects\n\n", out.String())

	r, out, _ = newTest(ModeText, false)
	r.Header(2, "Dialects")
	assert.Equal(t, "Dialects\n", out.String(), "no escape codes without a terminal")
}

func TestSQL(t *testing.T) {
	r, out, _ := newTest(ModeMarkdown, false)
	r.SQL("SELECT 1")
	assert.Equal(t, "```sql\nSELECT 1\n```\n", out.String())

	r, out, _ = newTest(ModeText, false)
	r.SQL("SELECT 1")
	assert.Equal(t, "SELECT 1\n", out.String())
}

func TestTable(t *testing.T) {
	rows := [][]any{{int64(1), "ada"}, {int64(2), nil}}

	r, out, _ := newTest(ModeMarkdown, false)
	r.Table([]string{"id", "name"}, rows)
	md := out.String()
	assert.Regexp(t, `(?i)\| id \| name \|`, md)
	assert.Contains(t, md, "| 1 | ada |")
	assert.Contains(t, md, "| 2 | NULL |")

	r, out, _ = newTest(ModeText, false)
	r.Table([]string{"id", "name"}, rows)
	text := out.String()
	assert.Contains(t, text, "┌")
	assert.Contains(t, text, "ada")
	assert.Contains(t, text, "NULL")
}

func TestJSON(t *testing.T) {
	r, out, _ := newTest(ModeJSON, false)
	require.NoError(t, r.JSON(map[string]any{"sql": "SELECT 1"}))
	assert.JSONEq(t, `{"sql": "SELECT 1"}`, out.String())
}

func TestDiagnosticsGoToErrWriter(t *testing.T) {
	r, out, errOut := newTest(ModeText, false)
	r.Success("done")
	r.Warning("careful")
	assert.Empty(t, out.String())
	assert.Equal(t, "✓ done\n! careful\n", errOut.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# T", FormatHeader(0, "T"))
	assert.Equal(t, "### T", FormatHeader(3, "T"))
	assert.Equal(t, "- **Pagination**: TOP", FormatKeyValue("Pagination", "TOP"))
	assert.Equal(t, "abc", FormatValue([]byte("abc")))
	assert.Equal(t, "2024-01-02T03:04:05Z", FormatValue(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestContext(t *testing.T) {
	r, _, _ := newTest(ModeJSON, false)
	ctx := WithRenderer(context.Background(), r)
	assert.Same(t, r, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
