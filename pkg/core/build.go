package core

// Constructors for building trees in code. They allocate nodes and nothing
// else; Validate still applies to the result.

// Col returns a column reference qualified by alias (may be empty).
func Col(alias, name string) *ColumnExpression {
	return &ColumnExpression{Alias: alias, Name: name}
}

// Const returns a constant expression.
func Const(v any) *ConstantExpression {
	return &ConstantExpression{Value: v}
}

// Binary returns a binary expression.
func Binary(op BinaryOp, left, right Expr) *BinaryExpression {
	return &BinaryExpression{Op: op, Left: left, Right: right}
}

// Eq returns left = right.
func Eq(left, right Expr) *BinaryExpression { return Binary(OpEqual, left, right) }

// And returns left AND right.
func And(left, right Expr) *BinaryExpression { return Binary(OpAnd, left, right) }

// Or returns left OR right.
func Or(left, right Expr) *BinaryExpression { return Binary(OpOr, left, right) }

// Not returns NOT operand.
func Not(operand Expr) *UnaryExpression {
	return &UnaryExpression{Op: OpNot, Operand: operand}
}

// Call returns an instance method call on target.
func Call(target Expr, method MethodKind, args ...Expr) *MethodCallExpression {
	return &MethodCallExpression{Target: target, Method: method, Args: args}
}

// StaticCall returns a static method call.
func StaticCall(method MethodKind, args ...Expr) *MethodCallExpression {
	return &MethodCallExpression{Method: method, Args: args}
}

// If returns a conditional expression.
func If(test, ifTrue, ifFalse Expr) *ConditionalExpression {
	return &ConditionalExpression{Test: test, IfTrue: ifTrue, IfFalse: ifFalse}
}

// Table returns a table source.
func Table(name, alias string) *TableExpression {
	return &TableExpression{Name: name, Alias: alias}
}

// Join returns a join source.
func Join(typ JoinType, left, right Source, cond Expr) *JoinExpression {
	return &JoinExpression{Type: typ, Left: left, Right: right, Condition: cond}
}

// Column returns a projection item.
func Column(name string, e Expr) *ColumnDeclaration {
	return &ColumnDeclaration{Name: name, Expr: e}
}

// Int64 returns a pointer to n, for Skip and Take.
func Int64(n int64) *int64 { return &n }
