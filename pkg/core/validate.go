package core

// Validate checks the structural invariants of a query tree and returns the
// first violation as a *MalformedTreeError. It does not consult any dialect:
// capability checks happen during translation.
func Validate(sel *SelectExpression) error {
	return validateSelect(sel)
}

func validateSelect(sel *SelectExpression) error {
	if sel == nil {
		return Malformed(KindSelect, "select is nil")
	}
	if sel.Skip != nil && *sel.Skip < 0 {
		return Malformed(KindSelect, "skip must be non-negative, got %d", *sel.Skip)
	}
	if sel.Take != nil && *sel.Take < 0 {
		return Malformed(KindSelect, "take must be non-negative, got %d", *sel.Take)
	}

	seen := make(map[string]bool, len(sel.Columns))
	for i, col := range sel.Columns {
		if col == nil {
			return Malformed(KindColumnDeclaration, "column %d is nil", i)
		}
		if col.Name == "" {
			return Malformed(KindColumnDeclaration, "column %d has no name", i)
		}
		if seen[col.Name] {
			return Malformed(KindColumnDeclaration, "duplicate column name %q", col.Name)
		}
		seen[col.Name] = true
		if err := validateExpr(col.Expr, KindColumnDeclaration); err != nil {
			return err
		}
	}

	if sel.From != nil {
		if err := validateSource(sel.From); err != nil {
			return err
		}
	}
	if sel.Where != nil {
		if err := validateExpr(sel.Where, KindSelect); err != nil {
			return err
		}
	}
	for _, g := range sel.GroupBy {
		if err := validateExpr(g, KindSelect); err != nil {
			return err
		}
	}
	if sel.Having != nil {
		if err := validateExpr(sel.Having, KindSelect); err != nil {
			return err
		}
	}
	for _, o := range sel.OrderBy {
		if err := validateExpr(o.Expr, KindSelect); err != nil {
			return err
		}
	}
	return nil
}

func validateSource(src Source) error {
	if isNil(src) {
		return Malformed(KindJoin, "source is nil")
	}
	switch s := src.(type) {
	case *TableExpression:
		if s.Name == "" {
			return Malformed(KindTable, "table name is empty")
		}
	case *SelectExpression:
		return validateSelect(s)
	case *JoinExpression:
		if isNil(s.Left) || isNil(s.Right) {
			return Malformed(KindJoin, "%s join is missing a side", s.Type)
		}
		if s.Type < JoinInner || s.Type > JoinCross {
			return Malformed(KindJoin, "unknown join type %d", int(s.Type))
		}
		hasCond := !isNil(s.Condition)
		if s.Type.RequiresCondition() && !hasCond {
			return Malformed(KindJoin, "%s join requires a condition", s.Type)
		}
		if !s.Type.RequiresCondition() && hasCond {
			return Malformed(KindJoin, "cross join must not have a condition")
		}
		if err := validateSource(s.Left); err != nil {
			return err
		}
		if err := validateSource(s.Right); err != nil {
			return err
		}
		if hasCond {
			return validateExpr(s.Condition, KindJoin)
		}
	}
	return nil
}

// validateExpr checks e; parent names the node that owns e, for error reporting.
func validateExpr(e Expr, parent NodeKind) error {
	if isNil(e) {
		return Malformed(parent, "missing operand")
	}

	switch n := e.(type) {
	case *ColumnExpression:
		if n.Name == "" {
			return Malformed(KindColumn, "column name is empty")
		}
	case *ConstantExpression:
	case *BinaryExpression:
		if n.Op < OpEqual || n.Op > OpConcat {
			return Malformed(KindBinary, "unknown operator %d", int(n.Op))
		}
		if err := validateExpr(n.Left, KindBinary); err != nil {
			return err
		}
		return validateExpr(n.Right, KindBinary)
	case *UnaryExpression:
		if n.Op != OpNot && n.Op != OpNegate {
			return Malformed(KindUnary, "unknown operator %d", int(n.Op))
		}
		return validateExpr(n.Operand, KindUnary)
	case *IsNullExpression:
		return validateExpr(n.Operand, KindIsNull)
	case *InExpression:
		if (n.Values == nil) == (n.Query == nil) {
			return Malformed(KindIn, "exactly one of values and query must be set")
		}
		if err := validateExpr(n.Operand, KindIn); err != nil {
			return err
		}
		for _, v := range n.Values {
			if err := validateExpr(v, KindIn); err != nil {
				return err
			}
		}
		if n.Query != nil {
			return validateSelect(n.Query)
		}
	case *ExistsExpression:
		if n.Query == nil {
			return Malformed(KindExists, "query is nil")
		}
		return validateSelect(n.Query)
	case *ScalarExpression:
		if n.Query == nil {
			return Malformed(KindScalar, "query is nil")
		}
		return validateSelect(n.Query)
	case *AggregateExpression:
		if n.Func < AggCount || n.Func > AggAvg {
			return Malformed(KindAggregate, "unknown aggregate %d", int(n.Func))
		}
		if n.Arg == nil {
			if n.Func != AggCount || n.Distinct {
				return Malformed(KindAggregate, "%s requires an argument", n.Func)
			}
			return nil
		}
		return validateExpr(n.Arg, KindAggregate)
	case *MethodCallExpression:
		if !n.Method.AcceptsArity(n.IsStatic(), len(n.Args)) {
			form := "instance"
			if n.IsStatic() {
				form = "static"
			}
			return Malformed(KindMethodCall, "%s does not accept %d arguments in %s form", n.Method, len(n.Args), form)
		}
		for _, op := range n.Operands() {
			if err := validateExpr(op, KindMethodCall); err != nil {
				return err
			}
		}
	case *ConditionalExpression:
		for _, part := range []Expr{n.Test, n.IfTrue, n.IfFalse} {
			if err := validateExpr(part, KindConditional); err != nil {
				return err
			}
		}
	}
	return nil
}
