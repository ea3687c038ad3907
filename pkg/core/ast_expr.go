package core

// ---------- Expression Types ----------

// ColumnExpression is a resolved column reference, optionally qualified by
// a table alias.
type ColumnExpression struct {
	Alias string // optional table alias qualifier
	Name  string
}

func (*ColumnExpression) node()     {}
func (*ColumnExpression) exprNode() {}

// Kind implements Node.
func (*ColumnExpression) Kind() NodeKind { return KindColumn }

// ConstantExpression is a user-supplied literal value. Translators emit it as
// a bound parameter; a nil Value renders NULL.
type ConstantExpression struct {
	Value any
}

func (*ConstantExpression) node()     {}
func (*ConstantExpression) exprNode() {}

// Kind implements Node.
func (*ConstantExpression) Kind() NodeKind { return KindConstant }

// IsNull reports whether the constant is the SQL NULL value.
func (c *ConstantExpression) IsNull() bool { return c.Value == nil }

// BinaryExpression applies a binary operator to two operands.
type BinaryExpression struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*BinaryExpression) node()     {}
func (*BinaryExpression) exprNode() {}

// Kind implements Node.
func (*BinaryExpression) Kind() NodeKind { return KindBinary }

// UnaryExpression applies a unary operator.
type UnaryExpression struct {
	Op      UnaryOp
	Operand Expr
}

func (*UnaryExpression) node()     {}
func (*UnaryExpression) exprNode() {}

// Kind implements Node.
func (*UnaryExpression) Kind() NodeKind { return KindUnary }

// IsNullExpression tests an operand for NULL.
type IsNullExpression struct {
	Operand Expr
	Negated bool
}

func (*IsNullExpression) node()     {}
func (*IsNullExpression) exprNode() {}

// Kind implements Node.
func (*IsNullExpression) Kind() NodeKind { return KindIsNull }

// InExpression tests membership in a value list or a subquery.
// Exactly one of Values and Query is set.
type InExpression struct {
	Operand Expr
	Values  []Expr
	Query   *SelectExpression
	Negated bool
}

func (*InExpression) node()     {}
func (*InExpression) exprNode() {}

// Kind implements Node.
func (*InExpression) Kind() NodeKind { return KindIn }

// ExistsExpression tests whether a subquery returns rows.
type ExistsExpression struct {
	Query   *SelectExpression
	Negated bool
}

func (*ExistsExpression) node()     {}
func (*ExistsExpression) exprNode() {}

// Kind implements Node.
func (*ExistsExpression) Kind() NodeKind { return KindExists }

// ScalarExpression is a single-value subquery used as a value.
type ScalarExpression struct {
	Query *SelectExpression
}

func (*ScalarExpression) node()     {}
func (*ScalarExpression) exprNode() {}

// Kind implements Node.
func (*ScalarExpression) Kind() NodeKind { return KindScalar }

// AggregateExpression applies an aggregate function. Arg is nil only for
// COUNT(*).
type AggregateExpression struct {
	Func     AggregateFunc
	Arg      Expr
	Distinct bool
}

func (*AggregateExpression) node()     {}
func (*AggregateExpression) exprNode() {}

// Kind implements Node.
func (*AggregateExpression) Kind() NodeKind { return KindAggregate }

// MethodCallExpression is a portable function call. Target is nil for the
// static form, where every operand is passed in Args.
type MethodCallExpression struct {
	Target Expr
	Method MethodKind
	Args   []Expr
}

func (*MethodCallExpression) node()     {}
func (*MethodCallExpression) exprNode() {}

// Kind implements Node.
func (*MethodCallExpression) Kind() NodeKind { return KindMethodCall }

// IsStatic reports whether the call has no target.
func (m *MethodCallExpression) IsStatic() bool { return m.Target == nil }

// Operands returns the target (when present) followed by the arguments.
// Instance and static forms of the same call yield the same operand list.
func (m *MethodCallExpression) Operands() []Expr {
	if m.Target == nil {
		return m.Args
	}
	ops := make([]Expr, 0, len(m.Args)+1)
	ops = append(ops, m.Target)
	return append(ops, m.Args...)
}

// ConditionalExpression is an if-then-else value.
type ConditionalExpression struct {
	Test    Expr
	IfTrue  Expr
	IfFalse Expr
}

func (*ConditionalExpression) node()     {}
func (*ConditionalExpression) exprNode() {}

// Kind implements Node.
func (*ConditionalExpression) Kind() NodeKind { return KindConditional }
