// Package translate compiles expression trees into dialect-specific SQL.
//
// A Translator walks a *core.SelectExpression depth-first and writes SQL
// into a format.Sink. Every node kind has a default rendering; the active
// dialect's override handlers run first and reach the default through their
// base continuation.
package translate

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
	"github.com/leapstack-labs/leapquery/pkg/format"
	"github.com/leapstack-labs/leapquery/pkg/spi"
)

// Result is the output of one translation.
type Result struct {
	SQL    string
	Params []any // values for the placeholders in SQL, in order
}

type options struct {
	pretty bool
	inline bool
}

// Option configures a translation.
type Option func(*options)

// WithPretty breaks clauses onto separate lines and indents subqueries.
func WithPretty() Option {
	return func(o *options) { o.pretty = true }
}

// WithInlineConstants renders constants as escaped SQL literals instead of
// placeholders. The output is meant for reading, not for execution.
func WithInlineConstants() Option {
	return func(o *options) { o.inline = true }
}

// Translate validates sel and renders it for d.
// Translation is all-or-nothing: on error no partial SQL is returned.
func Translate(sel *core.SelectExpression, d *dialect.Dialect, opts ...Option) (*Result, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}

	t := New(d, opts...)
	if err := t.VisitSelect(sel); err != nil {
		return nil, err
	}
	return t.Result(), nil
}

// Translator holds the state of a single translation. It is not safe for
// concurrent use; build one per call.
type Translator struct {
	dialect *dialect.Dialect
	cfg     *core.DialectConfig
	ov      spi.Overrides
	sink    *format.Sink
	opts    options
	started bool // the root select has been validated
	depth   int  // subquery nesting
}

var _ spi.Visitor = (*Translator)(nil)

// New creates a translator for d. The first select it visits is validated
// as the root of the tree.
func New(d *dialect.Dialect, opts ...Option) *Translator {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Translator{
		dialect: d,
		cfg:     d.Config(),
		ov:      d.Overrides(),
		sink:    format.NewSink(d.FormatPlaceholder, o.pretty),
		opts:    o,
	}
}

// Result returns the SQL and parameters written so far.
func (t *Translator) Result() *Result {
	return &Result{SQL: t.sink.String(), Params: t.sink.Params()}
}

// Config implements spi.Visitor.
func (t *Translator) Config() *core.DialectConfig { return t.cfg }

// Write implements spi.Visitor.
func (t *Translator) Write(s string) { t.sink.Write(s) }

// Keyword implements spi.Visitor.
func (t *Translator) Keyword(s string) { t.sink.Keyword(s) }

// Space implements spi.Visitor.
func (t *Translator) Space() { t.sink.Space() }

// Clause implements spi.Visitor.
func (t *Translator) Clause() { t.sink.Clause() }

// Unsupported implements spi.Visitor.
func (t *Translator) Unsupported(operation string, cause core.Cause) error {
	return &core.UnsupportedOperationError{
		Dialect:   t.dialect.Name,
		Operation: operation,
		Cause:     cause,
	}
}

// run invokes the override h, or def when the dialect installs none.
func run[N any](h spi.Handler[N], v spi.Visitor, n N, def func() error) error {
	if h == nil {
		return def()
	}
	return h(v, n, def)
}
