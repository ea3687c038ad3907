package core

// Walk traverses the tree rooted at n depth-first, in rendering order.
// fn is called for each node before its children; returning false skips the
// children of that node. Nil children are not visited.
func Walk(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	for _, child := range children(n) {
		Walk(child, fn)
	}
}

// Count returns the number of nodes under root (inclusive) matching pred.
func Count(root Node, pred func(Node) bool) int {
	total := 0
	Walk(root, func(n Node) bool {
		if pred(n) {
			total++
		}
		return true
	})
	return total
}

func children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if !isNil(c) {
				out = append(out, c)
			}
		}
	}
	addExprs := func(exprs []Expr) {
		for _, e := range exprs {
			add(e)
		}
	}

	switch n := n.(type) {
	case *SelectExpression:
		for _, c := range n.Columns {
			add(c)
		}
		add(n.From, n.Where)
		addExprs(n.GroupBy)
		add(n.Having)
		for _, o := range n.OrderBy {
			add(o.Expr)
		}
	case *ColumnDeclaration:
		add(n.Expr)
	case *JoinExpression:
		add(n.Left, n.Right, n.Condition)
	case *BinaryExpression:
		add(n.Left, n.Right)
	case *UnaryExpression:
		add(n.Operand)
	case *IsNullExpression:
		add(n.Operand)
	case *InExpression:
		add(n.Operand)
		addExprs(n.Values)
		add(n.Query)
	case *ExistsExpression:
		add(n.Query)
	case *ScalarExpression:
		add(n.Query)
	case *AggregateExpression:
		add(n.Arg)
	case *MethodCallExpression:
		addExprs(n.Operands())
	case *ConditionalExpression:
		add(n.Test, n.IfTrue, n.IfFalse)
	}
	return out
}

// isNil reports whether n is a nil interface or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *SelectExpression:
		return v == nil
	case *TableExpression:
		return v == nil
	case *JoinExpression:
		return v == nil
	case *ColumnDeclaration:
		return v == nil
	case *ColumnExpression:
		return v == nil
	case *ConstantExpression:
		return v == nil
	case *BinaryExpression:
		return v == nil
	case *UnaryExpression:
		return v == nil
	case *IsNullExpression:
		return v == nil
	case *InExpression:
		return v == nil
	case *ExistsExpression:
		return v == nil
	case *ScalarExpression:
		return v == nil
	case *AggregateExpression:
		return v == nil
	case *MethodCallExpression:
		return v == nil
	case *ConditionalExpression:
		return v == nil
	}
	return false
}
