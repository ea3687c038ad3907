package translate

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapquery/pkg/core"
)

// concatPart is one piece of a string concatenation: an expression or raw
// SQL text such as a LIKE wildcard. An escaped expression has its LIKE
// metacharacters neutralized at run time.
type concatPart struct {
	expr    core.Expr
	raw     string
	escaped bool
}

func exprParts(exprs ...core.Expr) []concatPart {
	parts := make([]concatPart, len(exprs))
	for i, e := range exprs {
		parts[i] = concatPart{expr: e}
	}
	return parts
}

// concat joins parts with the dialect's operator, or CONCAT() when it has none.
func (t *Translator) concat(parts ...concatPart) error {
	op := t.cfg.ConcatOperator
	if op == "" {
		t.sink.Write("CONCAT(")
		err := t.sink.List(len(parts), func(i int) error {
			if parts[i].expr == nil {
				t.sink.Write(parts[i].raw)
				return nil
			}
			if parts[i].escaped {
				return t.escapedOperand(parts[i].expr)
			}
			return t.VisitValue(parts[i].expr)
		})
		if err != nil {
			return err
		}
		t.sink.Write(")")
		return nil
	}

	for i, part := range parts {
		if i > 0 {
			t.sink.Write(" " + op + " ")
		}
		switch {
		case part.expr == nil:
			t.sink.Write(part.raw)
		case part.escaped:
			if err := t.escapedOperand(part.expr); err != nil {
				return err
			}
		default:
			if err := t.operand(part.expr, false, core.PrecedenceAddition, i > 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// like renders "subject LIKE <pattern>", with the pattern assembled by concat.
func (t *Translator) like(subject core.Expr, pattern ...concatPart) error {
	if err := t.operand(subject, false, core.PrecedenceComparison, false); err != nil {
		return err
	}
	t.sink.Write(" LIKE ")
	if err := t.concat(pattern...); err != nil {
		return err
	}
	if esc := t.cfg.LikeEscape; !esc.Brackets() {
		t.sink.Write(" ESCAPE " + quoteString(esc.Char))
	}
	return nil
}

// literalPattern turns the searched-for operand into a pattern piece that
// matches its text literally. String constants are escaped before binding;
// anything else is escaped in SQL.
func (t *Translator) literalPattern(e core.Expr) concatPart {
	if c, ok := e.(*core.ConstantExpression); ok {
		if s, isString := c.Value.(string); isString {
			return concatPart{expr: core.Const(t.cfg.LikeEscape.Escape(s))}
		}
		return concatPart{expr: e}
	}
	return concatPart{expr: e, escaped: true}
}

// escapedOperand renders e wrapped in one REPLACE per LIKE metacharacter.
func (t *Translator) escapedOperand(e core.Expr) error {
	pairs := t.cfg.LikeEscape.Replacements()
	t.sink.Write(strings.Repeat("REPLACE(", len(pairs)))
	if err := t.VisitValue(e); err != nil {
		return err
	}
	for _, p := range pairs {
		t.sink.Write(", " + quoteString(p[0]) + ", " + quoteString(p[1]) + ")")
	}
	return nil
}

const wildcard = "'%'"

func (t *Translator) methodCall(m *core.MethodCallExpression) error {
	if m.Method.IsComparison() {
		return run(t.ov.Compare, t, m, func() error { return t.compareDefault(m) })
	}
	return run(t.ov.Method, t, m, func() error { return t.methodDefault(m) })
}

func (t *Translator) compareDefault(m *core.MethodCallExpression) error {
	ops := m.Operands()
	if len(ops) != 2 {
		return core.Malformed(core.KindMethodCall, "%s needs two operands, got %d", m.Method, len(ops))
	}
	t.sink.Write("CASE WHEN ")
	if err := t.VisitComparison(core.OpEqual, ops[0], ops[1]); err != nil {
		return err
	}
	t.sink.Write(" THEN 0 WHEN ")
	if err := t.VisitComparison(core.OpLessThan, ops[0], ops[1]); err != nil {
		return err
	}
	t.sink.Write(" THEN -1 ELSE 1 END")
	return nil
}

func (t *Translator) methodDefault(m *core.MethodCallExpression) error {
	ops := m.Operands()

	switch m.Method {
	case core.MethodEquals:
		return t.binary(core.Eq(ops[0], ops[1]))
	case core.MethodStartsWith:
		return t.like(ops[0], t.literalPattern(ops[1]), concatPart{raw: wildcard})
	case core.MethodEndsWith:
		return t.like(ops[0], concatPart{raw: wildcard}, t.literalPattern(ops[1]))
	case core.MethodContains:
		return t.like(ops[0], concatPart{raw: wildcard}, t.literalPattern(ops[1]), concatPart{raw: wildcard})
	case core.MethodConcat:
		return t.concat(exprParts(ops...)...)
	}

	fn, ok := t.dialect.Function(m.Method)
	tpl, compiled := t.dialect.Template(m.Method)
	if !ok || !compiled {
		return t.Unsupported(m.Method.String(), core.CauseFeatureUnsupported)
	}
	if fn.MaxOperands > 0 && len(ops) > fn.MaxOperands {
		return &core.UnsupportedOperationError{
			Dialect:   t.dialect.Name,
			Operation: m.Method.String(),
			Cause:     core.CauseFeatureUnsupported,
			Reason:    fmt.Sprintf("at most %d operands, got %d", fn.MaxOperands, len(ops)),
		}
	}
	if err := tpl.Render(len(ops), &templateWriter{t: t, ops: ops}); err != nil {
		return core.Malformed(core.KindMethodCall, "%s: %v", m.Method, err)
	}
	return nil
}

// methodPrecedence reports how tightly a rendered method call binds.
func (t *Translator) methodPrecedence(m *core.MethodCallExpression) int {
	switch m.Method {
	case core.MethodCompare, core.MethodCompareTo:
		return core.PrecedenceAtom
	case core.MethodEquals, core.MethodStartsWith, core.MethodEndsWith, core.MethodContains:
		return core.PrecedenceComparison
	case core.MethodConcat:
		if t.cfg.ConcatOperator == "" {
			return core.PrecedenceAtom
		}
		return core.PrecedenceAddition
	}
	if fn, ok := t.dialect.Function(m.Method); ok && fn.Compound {
		return core.PrecedenceAddition
	}
	return core.PrecedenceAtom
}

// templateWriter renders a function template's operand references.
type templateWriter struct {
	t   *Translator
	ops []core.Expr
}

func (w *templateWriter) Text(s string) { w.t.sink.Write(s) }

func (w *templateWriter) Operand(i int, bare bool) error {
	if bare {
		return w.t.VisitValue(w.ops[i])
	}
	return w.t.operand(w.ops[i], false, core.PrecedenceAtom, false)
}

func (w *templateWriter) Operands() error {
	return w.t.sink.List(len(w.ops), func(i int) error { return w.t.VisitValue(w.ops[i]) })
}
