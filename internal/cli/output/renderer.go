// Package output renders command results for terminals, markdown consumers,
// and JSON tooling.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how results are written.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	lr := lipgloss.NewRenderer(out)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: NewStyles(lr),
	}
}

// EffectiveMode resolves auto: text on a terminal, markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto && r.mode != "" {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// IsTTY reports whether output goes to a terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// Writer returns the standard output writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// ErrWriter returns the diagnostics writer.
func (r *Renderer) ErrWriter() io.Writer { return r.errOut }

// Styles returns the renderer's styles.
func (r *Renderer) Styles() *Styles { return r.styles }

// Println writes a line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a section title.
func (r *Renderer) Header(level int, title string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, title))
		r.Println()
		return
	}
	r.Println(r.styles.Header.Render(title))
}

// Success writes a confirmation to the diagnostics writer.
func (r *Renderer) Success(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Success.Render("✓ "+msg))
}

// Warning writes a warning to the diagnostics writer.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("! "+msg))
}

// Muted styles s as secondary text.
func (r *Renderer) Muted(s string) string {
	return r.styles.Muted.Render(s)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SQL writes a statement: fenced in markdown mode, plain otherwise.
func (r *Renderer) SQL(sql string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println("```sql")
		r.Println(sql)
		r.Println("```")
		return
	}
	r.Println(sql)
}

type rendererKey struct{}

// WithRenderer stores r in ctx.
func WithRenderer(ctx context.Context, r *Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// FromContext retrieves the renderer from the command context.
func FromContext(ctx context.Context) *Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*Renderer); ok {
		return r
	}
	// Return default renderer if none in context
	return NewRenderer(os.Stdout, os.Stderr, ModeAuto)
}
