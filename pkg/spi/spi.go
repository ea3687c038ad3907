// Package spi provides Service Provider Interface types for dialect
// override handlers to interact with the translator without circular
// dependencies.
package spi

import "github.com/leapstack-labs/leapquery/pkg/core"

// Visitor exposes translator operations to dialect override handlers.
// This interface allows dialect-specific code to render sub-trees without
// importing pkg/translate.
type Visitor interface {
	// Config returns the active dialect's configuration.
	Config() *core.DialectConfig

	// Output
	Write(s string)
	Keyword(s string)
	Space()
	Clause()

	// Dispatch
	Visit(e core.Expr) error          // render e without context coercion
	VisitValue(e core.Expr) error     // render e where a value is expected
	VisitPredicate(e core.Expr) error // render e where a condition is expected
	VisitSource(s core.Source) error
	VisitSelect(s *core.SelectExpression) error

	// VisitComparison renders "a <op> b" for a comparison operator,
	// parenthesizing operands as precedence requires.
	VisitComparison(op core.BinaryOp, a, b core.Expr) error

	// Unsupported builds the error for a construct the dialect cannot express.
	Unsupported(operation string, cause core.Cause) error
}

// Handler overrides the rendering of one node kind.
// base runs the parent dialect's handler chain, ending at the base
// translator's default rendering for n. A handler may call base at most
// once, or not at all when it replaces the rendering entirely.
type Handler[N any] func(v Visitor, n N, base func() error) error

// Overrides is the table of handlers a dialect installs. A nil entry keeps
// the inherited behavior.
type Overrides struct {
	// Select renders a whole SELECT, including pagination.
	Select Handler[*core.SelectExpression]

	// Join renders a JoinExpression source.
	Join Handler[*core.JoinExpression]

	// Columns renders the projection list, including the empty case.
	Columns Handler[[]*core.ColumnDeclaration]

	// Compare renders Compare and CompareTo calls in either form.
	Compare Handler[*core.MethodCallExpression]

	// Method renders every other method call.
	Method Handler[*core.MethodCallExpression]

	// Conditional renders a ConditionalExpression.
	Conditional Handler[*core.ConditionalExpression]

	// Value is called for each expression consumed as a value.
	// The default wraps predicates in CASE WHEN p THEN 1 ELSE 0 END.
	Value Handler[core.Expr]

	// Predicate is called for each expression consumed as a condition.
	// The default compares non-predicates against zero.
	Predicate Handler[core.Expr]
}
