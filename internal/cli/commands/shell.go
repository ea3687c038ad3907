package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapquery/internal/cli/config"
	"github.com/leapstack-labs/leapquery/internal/cli/output"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/querydoc"
	"github.com/leapstack-labs/leapquery/pkg/translate"
)

const (
	shellPrompt     = "leapquery> "
	shellContPrompt = "     ...> "
)

// NewShellCommand creates the shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Translate query documents interactively",
		Long: `Start an interactive session that translates query documents as you
type them. A document may span several lines and ends with a line holding
a single semicolon, or with a flow mapping that ends in one:

  leapquery> {columns: [t.id], from: {table: t}, take: 5};

Dot-commands switch the dialect and rendering options; type .help to list
them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context())
		},
	}
}

func runShell(ctx context.Context) error {
	cfg := config.GetConfig(ctx)
	r := output.FromContext(ctx)

	home, _ := os.UserHomeDir()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shellPrompt,
		HistoryFile:     filepath.Join(home, ".leapquery_history"),
		AutoComplete:    newShellCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	s := newShellSession(cfg, r)
	r.Printf("leapquery shell (dialect: %s)\n", s.dialect)
	r.Println("Type .help for commands, .quit to exit")
	r.Println()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.reset()
			rl.SetPrompt(shellPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if s.handle(line) {
			return nil
		}
		if s.pending() {
			rl.SetPrompt(shellContPrompt)
		} else {
			rl.SetPrompt(shellPrompt)
		}
	}
}

// shellSession holds the state of one interactive session.
type shellSession struct {
	r       *output.Renderer
	dialect string
	pretty  bool
	inline  bool
	buf     strings.Builder
}

func newShellSession(cfg *config.Config, r *output.Renderer) *shellSession {
	name := cfg.EffectiveDialect()
	if name == "" {
		name = DefaultDialect
	}
	return &shellSession{r: r, dialect: name, pretty: cfg.Pretty, inline: cfg.InlineConstants}
}

func (s *shellSession) reset()        { s.buf.Reset() }
func (s *shellSession) pending() bool { return s.buf.Len() > 0 }

// handle processes one input line and reports whether the session should end.
func (s *shellSession) handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" && !s.pending() {
		return false
	}
	if strings.HasPrefix(trimmed, ".") && !s.pending() {
		return s.command(strings.Fields(trimmed))
	}

	if !strings.HasSuffix(trimmed, ";") {
		s.buf.WriteString(line)
		s.buf.WriteString("\n")
		return false
	}
	s.buf.WriteString(strings.TrimSuffix(trimmed, ";"))
	doc := s.buf.String()
	s.reset()

	if err := s.translate(doc); err != nil {
		s.r.Warning(err.Error())
	}
	return false
}

func (s *shellSession) translate(doc string) error {
	sel, err := querydoc.Decode(strings.NewReader(doc))
	if err != nil {
		return err
	}
	d, err := dialect.Lookup(s.dialect)
	if err != nil {
		return err
	}
	var opts []translate.Option
	if s.pretty {
		opts = append(opts, translate.WithPretty())
	}
	if s.inline {
		opts = append(opts, translate.WithInlineConstants())
	}
	res, err := translate.Translate(sel, d, opts...)
	if err != nil {
		return err
	}
	s.r.SQL(res.SQL)
	writeParams(s.r, res.Params)
	return nil
}

func (s *shellSession) command(parts []string) bool {
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true

	case ".help":
		printShellHelp(s.r)

	case ".dialect":
		if len(parts) < 2 {
			s.r.Println(s.dialect)
			return false
		}
		if _, err := dialect.Lookup(parts[1]); err != nil {
			s.r.Warning(err.Error())
			return false
		}
		s.dialect = strings.ToLower(parts[1])
		s.r.Success("dialect: " + s.dialect)

	case ".dialects":
		s.r.Println(strings.Join(dialect.List(), ", "))

	case ".pretty":
		s.pretty = !s.pretty
		s.r.Success(fmt.Sprintf("pretty: %t", s.pretty))

	case ".inline":
		s.inline = !s.inline
		s.r.Success(fmt.Sprintf("inline constants: %t", s.inline))

	default:
		s.r.Warning(fmt.Sprintf("unknown command: %s (type .help for commands)", parts[0]))
	}
	return false
}

func printShellHelp(r *output.Renderer) {
	r.Println(`
Commands:
  .help             Show this help message
  .dialect [name]   Show or switch the target dialect
  .dialects         List registered dialects
  .pretty           Toggle multi-line output
  .inline           Toggle inline constants
  .quit / .exit     Exit the shell

Tips:
  - End a document with a semicolon (;)
  - Use arrow keys to navigate history
  - Tab completion works for dot-commands and dialect names`)
}

// newShellCompleter completes dot-commands and dialect names.
func newShellCompleter() *readline.PrefixCompleter {
	var dialects []readline.PrefixCompleterInterface
	for _, name := range dialect.List() {
		dialects = append(dialects, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".dialect", dialects...),
		readline.PcItem(".dialects"),
		readline.PcItem(".pretty"),
		readline.PcItem(".inline"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
