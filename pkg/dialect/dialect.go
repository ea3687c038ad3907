// Package dialect provides SQL dialect configuration and override tables.
//
// This package contains the public contract for dialect definitions used by
// the translator. Concrete dialect implementations are registered from
// pkg/dialects/*/ packages.
package dialect

import (
	"maps"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/spi"
)

// Dialect represents a SQL dialect: capability configuration plus the
// override handlers installed on top of the base translator.
// A Dialect is immutable after Build and safe for concurrent use.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig
	Placeholder core.PlaceholderStyle

	config        core.DialectConfig
	reservedWords map[string]struct{} // upper-cased words that need quoting as identifiers
	templates     map[core.MethodKind]*Template
	overrides     spi.Overrides
	parent        *Dialect
}

// Config returns the pure data configuration for this dialect.
// Callers must treat the result as read-only.
func (d *Dialect) Config() *core.DialectConfig {
	return &d.config
}

// GetName returns the dialect name.
// This method allows Dialect to satisfy interfaces that require Name() string.
func (d *Dialect) GetName() string {
	return d.Name
}

// Parent returns the dialect this one extends, or nil.
func (d *Dialect) Parent() *Dialect {
	return d.parent
}

// Overrides returns the dialect's handler table. Each entry already chains
// to the handlers inherited from Parent.
func (d *Dialect) Overrides() spi.Overrides {
	return d.overrides
}

// Function returns the rendering for a method kind.
func (d *Dialect) Function(kind core.MethodKind) (core.FunctionDef, bool) {
	fn, ok := d.config.Functions[kind]
	return fn, ok
}

// Template returns the compiled template for a method kind.
func (d *Dialect) Template(kind core.MethodKind) (*Template, bool) {
	t, ok := d.templates[kind]
	return t, ok
}

// Operator returns the SQL spelling of a binary operator.
func (d *Dialect) Operator(op core.BinaryOp) string {
	if s, ok := d.config.Operators[op]; ok {
		return s
	}
	return ANSIOperators[op]
}

// FormatPlaceholder returns a placeholder for the given parameter index (1-based).
// Returns "?" for PlaceholderQuestion style, "$1", "$2" etc. for PlaceholderDollar
// style and "@p1", "@p2" etc. for PlaceholderAtP style.
func (d *Dialect) FormatPlaceholder(index int) string {
	switch d.Placeholder {
	case core.PlaceholderDollar:
		return "$" + strconv.Itoa(index)
	case core.PlaceholderAtP:
		return "@p" + strconv.Itoa(index)
	default: // PlaceholderQuestion
		return "?"
	}
}

// IsReservedWord returns true if the word needs quoting when used as an identifier.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[strings.ToUpper(word)]
	return ok
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., ] -> ]])
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// QuoteIdentifierIfNeeded quotes an identifier only if it's a reserved word
// or not a plain identifier.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if !isPlainIdentifier(name) || d.IsReservedWord(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}

func isPlainIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	config    core.DialectConfig
	overrides spi.Overrides
	parent    *Dialect
}

// New creates a dialect builder from a DialectConfig.
// The config is copied; later changes to cfg do not affect the builder.
func New(cfg *core.DialectConfig) *Builder {
	return &Builder{config: cloneConfig(cfg)}
}

// Extends creates a builder for a dialect derived from parent. The new
// dialect starts with the parent's configuration and handlers; Override*
// calls layer on top of them, and each handler's base continuation runs the
// parent's.
func Extends(parent *Dialect) *Builder {
	return &Builder{
		config:    cloneConfig(&parent.config),
		overrides: parent.overrides,
		parent:    parent,
	}
}

func cloneConfig(cfg *core.DialectConfig) core.DialectConfig {
	c := *cfg
	c.Operators = maps.Clone(cfg.Operators)
	c.Functions = maps.Clone(cfg.Functions)
	c.Keywords = append([]string(nil), cfg.Keywords...)
	if c.Operators == nil {
		c.Operators = make(map[core.BinaryOp]string)
	}
	if c.Functions == nil {
		c.Functions = make(map[core.MethodKind]core.FunctionDef)
	}
	return c
}

// Named sets the dialect name.
func (b *Builder) Named(name string) *Builder {
	b.config.Name = name
	return b
}

// Identifiers configures identifier quoting.
func (b *Builder) Identifiers(quote, quoteEnd, escape string) *Builder {
	b.config.Identifiers = core.IdentifierConfig{
		Quote:    quote,
		QuoteEnd: quoteEnd,
		Escape:   escape,
	}
	return b
}

// PlaceholderStyle sets the parameter placeholder style.
func (b *Builder) PlaceholderStyle(style core.PlaceholderStyle) *Builder {
	b.config.Placeholder = style
	return b
}

// Pagination sets the pagination syntax and capabilities.
func (b *Builder) Pagination(p core.PaginationConfig) *Builder {
	b.config.Pagination = p
	return b
}

// EmptyProjection sets the placeholder column for an empty projection.
func (b *Builder) EmptyProjection(column string) *Builder {
	b.config.EmptyProjection = column
	return b
}

// ConcatOperator sets the string concatenation operator. An empty operator
// makes concatenation render through CONCAT().
func (b *Builder) ConcatOperator(op string) *Builder {
	b.config.ConcatOperator = op
	return b
}

// LikeEscape sets the LIKE escape character and the metacharacters it
// guards. An empty char with a non-empty wildcard set selects bracket
// escaping.
func (b *Builder) LikeEscape(char, wildcards string) *Builder {
	b.config.LikeEscape = core.LikeEscape{Char: char, Wildcards: wildcards}
	return b
}

// Operator overrides the spelling of a binary operator.
func (b *Builder) Operator(op core.BinaryOp, symbol string) *Builder {
	b.config.Operators[op] = symbol
	return b
}

// Functions adds or replaces function renderings.
func (b *Builder) Functions(sets ...map[core.MethodKind]core.FunctionDef) *Builder {
	for _, set := range sets {
		maps.Copy(b.config.Functions, set)
	}
	return b
}

// RemoveFunctions marks method kinds as unsupported.
func (b *Builder) RemoveFunctions(kinds ...core.MethodKind) *Builder {
	for _, k := range kinds {
		delete(b.config.Functions, k)
	}
	return b
}

// CrossJoinKeyword toggles "CROSS JOIN" rendering for cross joins.
func (b *Builder) CrossJoinKeyword(on bool) *Builder {
	b.config.CrossJoinKeyword = on
	return b
}

// NativeBooleans toggles direct use of values as conditions.
func (b *Builder) NativeBooleans(on bool) *Builder {
	b.config.NativeBooleans = on
	return b
}

// DistinctAggregates toggles support for DISTINCT inside aggregates.
func (b *Builder) DistinctAggregates(on bool) *Builder {
	b.config.DistinctAggregates = on
	return b
}

// BooleanLiterals sets the inline spellings of true and false.
func (b *Builder) BooleanLiterals(t, f string) *Builder {
	b.config.TrueLiteral = t
	b.config.FalseLiteral = f
	return b
}

// WithKeywords registers reserved keywords.
func (b *Builder) WithKeywords(kws ...string) *Builder {
	b.config.Keywords = append(b.config.Keywords, kws...)
	return b
}

// ---------- Overrides ----------

// chain layers child over parent: child's base continuation runs parent,
// whose base continuation runs the translator default.
func chain[N any](child, parent spi.Handler[N]) spi.Handler[N] {
	if child == nil {
		return parent
	}
	if parent == nil {
		return child
	}
	return func(v spi.Visitor, n N, base func() error) error {
		return child(v, n, func() error { return parent(v, n, base) })
	}
}

// OverrideSelect installs a handler for whole SELECT statements.
func (b *Builder) OverrideSelect(h spi.Handler[*core.SelectExpression]) *Builder {
	b.overrides.Select = chain(h, b.overrides.Select)
	return b
}

// OverrideJoin installs a handler for joins.
func (b *Builder) OverrideJoin(h spi.Handler[*core.JoinExpression]) *Builder {
	b.overrides.Join = chain(h, b.overrides.Join)
	return b
}

// OverrideColumns installs a handler for projection lists.
func (b *Builder) OverrideColumns(h spi.Handler[[]*core.ColumnDeclaration]) *Builder {
	b.overrides.Columns = chain(h, b.overrides.Columns)
	return b
}

// OverrideCompare installs a handler for Compare and CompareTo calls.
func (b *Builder) OverrideCompare(h spi.Handler[*core.MethodCallExpression]) *Builder {
	b.overrides.Compare = chain(h, b.overrides.Compare)
	return b
}

// OverrideMethod installs a handler for all other method calls.
func (b *Builder) OverrideMethod(h spi.Handler[*core.MethodCallExpression]) *Builder {
	b.overrides.Method = chain(h, b.overrides.Method)
	return b
}

// OverrideConditional installs a handler for conditional expressions.
func (b *Builder) OverrideConditional(h spi.Handler[*core.ConditionalExpression]) *Builder {
	b.overrides.Conditional = chain(h, b.overrides.Conditional)
	return b
}

// OverrideValue installs a handler for expressions consumed as values.
func (b *Builder) OverrideValue(h spi.Handler[core.Expr]) *Builder {
	b.overrides.Value = chain(h, b.overrides.Value)
	return b
}

// OverridePredicate installs a handler for expressions consumed as conditions.
func (b *Builder) OverridePredicate(h spi.Handler[core.Expr]) *Builder {
	b.overrides.Predicate = chain(h, b.overrides.Predicate)
	return b
}

// Build returns the finished dialect.
// It panics if a function template does not compile.
func (b *Builder) Build() *Dialect {
	cfg := cloneConfig(&b.config)
	if cfg.EmptyProjection == "" {
		cfg.EmptyProjection = "1"
	}
	if cfg.TrueLiteral == "" {
		cfg.TrueLiteral, cfg.FalseLiteral = "TRUE", "FALSE"
	}
	if cfg.LikeEscape == (core.LikeEscape{}) {
		cfg.LikeEscape = core.LikeEscape{Char: `\`}
	}
	if cfg.LikeEscape.Wildcards == "" {
		cfg.LikeEscape.Wildcards = core.DefaultLikeWildcards
	}
	if cfg.Identifiers.Quote == "" {
		cfg.Identifiers = core.IdentifierConfig{Quote: `"`, QuoteEnd: `"`, Escape: `""`}
	}

	d := &Dialect{
		Name:          cfg.Name,
		Identifiers:   cfg.Identifiers,
		Placeholder:   cfg.Placeholder,
		config:        cfg,
		reservedWords: make(map[string]struct{}, len(cfg.Keywords)),
		templates:     make(map[core.MethodKind]*Template, len(cfg.Functions)),
		overrides:     b.overrides,
		parent:        b.parent,
	}
	for _, kw := range cfg.Keywords {
		d.reservedWords[strings.ToUpper(kw)] = struct{}{}
	}
	for kind, fn := range cfg.Functions {
		d.templates[kind] = MustCompileTemplate(fn.Template)
	}
	return d
}
