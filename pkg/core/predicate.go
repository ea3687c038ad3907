package core

// IsPredicate reports whether e yields a boolean when rendered.
//
// Predicate versus value is a property of how an expression is consumed, so
// translators coerce: a predicate used as a value is wrapped in a conditional,
// and a value used as a condition is compared against zero.
func IsPredicate(e Expr) bool {
	switch n := e.(type) {
	case *BinaryExpression:
		return n.Op.IsComparison() || n.Op.IsLogical()
	case *UnaryExpression:
		return n.Op == OpNot
	case *IsNullExpression, *InExpression, *ExistsExpression:
		return true
	case *MethodCallExpression:
		return n.Method.IsPredicate()
	default:
		return false
	}
}
