// Package dialect provides SQL dialect configuration and override tables.
//
// This file contains stateless override handlers that form the "toolbox" of
// reusable rendering logic. Dialects whose backend has no CASE expression
// compose the inline-if family with the name of their conditional function.
package dialect

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/spi"
)

// ---------- Inline-if handlers ----------

// InlineIfCompare renders Compare and CompareTo, in either form, as
// fn(a = b, 0, fn(a < b, -1, 1)).
func InlineIfCompare(fn string) spi.Handler[*core.MethodCallExpression] {
	return func(v spi.Visitor, m *core.MethodCallExpression, _ func() error) error {
		ops := m.Operands()
		if len(ops) != 2 {
			return core.Malformed(core.KindMethodCall, "%s needs two operands, got %d", m.Method, len(ops))
		}
		v.Write(fn + "(")
		if err := v.VisitComparison(core.OpEqual, ops[0], ops[1]); err != nil {
			return err
		}
		v.Write(", 0, " + fn + "(")
		if err := v.VisitComparison(core.OpLessThan, ops[0], ops[1]); err != nil {
			return err
		}
		v.Write(", -1, 1))")
		return nil
	}
}

// InlineIfConditional renders a conditional as fn(test, ifTrue, ifFalse).
func InlineIfConditional(fn string) spi.Handler[*core.ConditionalExpression] {
	return func(v spi.Visitor, c *core.ConditionalExpression, _ func() error) error {
		v.Write(fn + "(")
		if err := v.VisitPredicate(c.Test); err != nil {
			return err
		}
		v.Write(", ")
		if err := v.VisitValue(c.IfTrue); err != nil {
			return err
		}
		v.Write(", ")
		if err := v.VisitValue(c.IfFalse); err != nil {
			return err
		}
		v.Write(")")
		return nil
	}
}

// InlineIfValue renders a predicate consumed as a value as fn(p, 1, 0) and
// defers every other expression to base.
func InlineIfValue(fn string) spi.Handler[core.Expr] {
	return func(v spi.Visitor, e core.Expr, base func() error) error {
		if !core.IsPredicate(e) {
			return base()
		}
		v.Write(fn + "(")
		if err := v.Visit(e); err != nil {
			return err
		}
		v.Write(", 1, 0)")
		return nil
	}
}
