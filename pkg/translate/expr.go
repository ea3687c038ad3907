package translate

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
)

// Visit implements spi.Visitor. It dispatches on the node kind without
// coercing between value and predicate context.
func (t *Translator) Visit(e core.Expr) error {
	switch n := e.(type) {
	case *core.ColumnExpression:
		if n.Alias != "" {
			t.sink.Write(t.dialect.QuoteIdentifierIfNeeded(n.Alias) + ".")
		}
		t.sink.Write(t.dialect.QuoteIdentifierIfNeeded(n.Name))
		return nil
	case *core.ConstantExpression:
		t.constant(n)
		return nil
	case *core.BinaryExpression:
		return t.binary(n)
	case *core.UnaryExpression:
		return t.unary(n)
	case *core.IsNullExpression:
		return t.isNull(n.Operand, n.Negated)
	case *core.InExpression:
		return t.in(n)
	case *core.ExistsExpression:
		if n.Negated {
			t.sink.Write("NOT ")
		}
		t.sink.Write("EXISTS ")
		return t.subquery(n.Query)
	case *core.ScalarExpression:
		return t.subquery(n.Query)
	case *core.AggregateExpression:
		return t.aggregate(n)
	case *core.MethodCallExpression:
		return t.methodCall(n)
	case *core.ConditionalExpression:
		return run(t.ov.Conditional, t, n, func() error { return t.conditionalDefault(n) })
	case nil:
		return core.Malformed(core.KindSelect, "missing expression")
	default:
		return core.Malformed(e.Kind(), "unexpected expression %T", e)
	}
}

// VisitValue implements spi.Visitor.
func (t *Translator) VisitValue(e core.Expr) error {
	return run(t.ov.Value, t, e, func() error { return t.valueDefault(e) })
}

func (t *Translator) valueDefault(e core.Expr) error {
	if !core.IsPredicate(e) {
		return t.Visit(e)
	}
	t.sink.Write("CASE WHEN ")
	if err := t.Visit(e); err != nil {
		return err
	}
	t.sink.Write(" THEN 1 ELSE 0 END")
	return nil
}

// VisitPredicate implements spi.Visitor.
func (t *Translator) VisitPredicate(e core.Expr) error {
	return run(t.ov.Predicate, t, e, func() error { return t.predicateDefault(e) })
}

func (t *Translator) predicateDefault(e core.Expr) error {
	if core.IsPredicate(e) || t.cfg.NativeBooleans {
		return t.Visit(e)
	}
	if err := t.operand(e, false, core.PrecedenceComparison, false); err != nil {
		return err
	}
	t.sink.Write(" <> 0")
	return nil
}

// VisitComparison implements spi.Visitor.
func (t *Translator) VisitComparison(op core.BinaryOp, a, b core.Expr) error {
	if err := t.operand(a, false, core.PrecedenceComparison, false); err != nil {
		return err
	}
	t.sink.Write(" " + t.dialect.Operator(op) + " ")
	return t.operand(b, false, core.PrecedenceComparison, true)
}

// operand renders e in value or predicate context, parenthesized when it
// binds looser than parent, or equally loose when strict.
func (t *Translator) operand(e core.Expr, predicate bool, parent int, strict bool) error {
	p := t.precedence(e, predicate)
	wrap := p < parent || (strict && p == parent)
	if wrap {
		t.sink.Write("(")
	}
	var err error
	if predicate {
		err = t.VisitPredicate(e)
	} else {
		err = t.VisitValue(e)
	}
	if err != nil {
		return err
	}
	if wrap {
		t.sink.Write(")")
	}
	return nil
}

// precedence returns how tightly e binds once rendered in the given context.
func (t *Translator) precedence(e core.Expr, predicate bool) int {
	isPred := core.IsPredicate(e)
	switch {
	case predicate && !isPred && !t.cfg.NativeBooleans:
		return core.PrecedenceComparison // "<value> <> 0"
	case !predicate && isPred:
		return core.PrecedenceAtom // wrapped in a conditional
	}

	switch n := e.(type) {
	case *core.BinaryExpression:
		if n.Op == core.OpConcat && t.cfg.ConcatOperator == "" {
			return core.PrecedenceAtom
		}
		return n.Op.Precedence()
	case *core.UnaryExpression:
		if n.Op == core.OpNot {
			return core.PrecedenceNot
		}
		return core.PrecedenceUnary
	case *core.IsNullExpression, *core.InExpression:
		return core.PrecedenceComparison
	case *core.MethodCallExpression:
		return t.methodPrecedence(n)
	default:
		return core.PrecedenceAtom
	}
}

func isNullConstant(e core.Expr) bool {
	c, ok := e.(*core.ConstantExpression)
	return ok && c.IsNull()
}

func (t *Translator) binary(n *core.BinaryExpression) error {
	// x = NULL never matches; render the null test instead
	if n.Op == core.OpEqual || n.Op == core.OpNotEqual {
		switch {
		case isNullConstant(n.Right):
			return t.isNull(n.Left, n.Op == core.OpNotEqual)
		case isNullConstant(n.Left):
			return t.isNull(n.Right, n.Op == core.OpNotEqual)
		}
	}

	if n.Op == core.OpConcat {
		return t.concat(exprParts(n.Left, n.Right)...)
	}

	logical := n.Op.IsLogical()
	prec := n.Op.Precedence()
	if err := t.operand(n.Left, logical, prec, false); err != nil {
		return err
	}
	t.sink.Write(" " + t.dialect.Operator(n.Op) + " ")

	strict := !n.Op.IsAssociative()
	if n.Op == core.OpSubtract && isNegation(n.Right) {
		strict = true // avoid "a - -b", which starts a comment
	}
	if strict {
		return t.strictOperand(n.Right, logical, prec)
	}
	return t.operand(n.Right, logical, prec, false)
}

// strictOperand is operand with strict set, forcing parentheses on a
// negation so that two minus signs are never adjacent.
func (t *Translator) strictOperand(e core.Expr, predicate bool, parent int) error {
	if isNegation(e) {
		parent = core.PrecedenceAtom
	}
	return t.operand(e, predicate, parent, true)
}

func isNegation(e core.Expr) bool {
	u, ok := e.(*core.UnaryExpression)
	return ok && u.Op == core.OpNegate
}

func (t *Translator) unary(n *core.UnaryExpression) error {
	if n.Op == core.OpNot {
		t.sink.Write("NOT ")
		return t.operand(n.Operand, true, core.PrecedenceAtom, false)
	}
	t.sink.Write("-")
	return t.strictOperand(n.Operand, false, core.PrecedenceUnary)
}

func (t *Translator) isNull(operand core.Expr, negated bool) error {
	if err := t.operand(operand, false, core.PrecedenceComparison, true); err != nil {
		return err
	}
	if negated {
		t.sink.Write(" IS NOT NULL")
	} else {
		t.sink.Write(" IS NULL")
	}
	return nil
}

func (t *Translator) in(n *core.InExpression) error {
	// An empty list matches nothing
	if n.Query == nil && len(n.Values) == 0 {
		if n.Negated {
			t.sink.Write("1 = 1")
		} else {
			t.sink.Write("1 = 0")
		}
		return nil
	}

	if err := t.operand(n.Operand, false, core.PrecedenceComparison, true); err != nil {
		return err
	}
	if n.Negated {
		t.sink.Write(" NOT")
	}
	t.sink.Write(" IN ")
	if n.Query != nil {
		return t.subquery(n.Query)
	}
	t.sink.Write("(")
	if err := t.sink.List(len(n.Values), func(i int) error { return t.VisitValue(n.Values[i]) }); err != nil {
		return err
	}
	t.sink.Write(")")
	return nil
}

func (t *Translator) aggregate(n *core.AggregateExpression) error {
	name := n.Func.String()
	if n.Arg == nil {
		t.sink.Write(name + "(*)")
		return nil
	}
	if n.Distinct && !t.cfg.DistinctAggregates {
		return t.Unsupported(name+"(DISTINCT)", core.CauseFeatureUnsupported)
	}
	t.sink.Write(name + "(")
	if n.Distinct {
		t.sink.Write("DISTINCT ")
	}
	if err := t.VisitValue(n.Arg); err != nil {
		return err
	}
	t.sink.Write(")")
	return nil
}

func (t *Translator) conditionalDefault(n *core.ConditionalExpression) error {
	t.sink.Write("CASE WHEN ")
	if err := t.VisitPredicate(n.Test); err != nil {
		return err
	}
	t.sink.Write(" THEN ")
	if err := t.VisitValue(n.IfTrue); err != nil {
		return err
	}
	t.sink.Write(" ELSE ")
	if err := t.VisitValue(n.IfFalse); err != nil {
		return err
	}
	t.sink.Write(" END")
	return nil
}
