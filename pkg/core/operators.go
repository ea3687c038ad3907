package core

// BinaryOp is the operator of a BinaryExpression.
type BinaryOp int

// BinaryOp constants.
const (
	OpEqual BinaryOp = iota
	OpNotEqual
	OpLessThan
	OpLessThanOrEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpAnd
	OpOr
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpConcat
)

var binaryOpNames = [...]string{
	OpEqual:              "Equal",
	OpNotEqual:           "NotEqual",
	OpLessThan:           "LessThan",
	OpLessThanOrEqual:    "LessThanOrEqual",
	OpGreaterThan:        "GreaterThan",
	OpGreaterThanOrEqual: "GreaterThanOrEqual",
	OpAnd:                "And",
	OpOr:                 "Or",
	OpAdd:                "Add",
	OpSubtract:           "Subtract",
	OpMultiply:           "Multiply",
	OpDivide:             "Divide",
	OpModulo:             "Modulo",
	OpConcat:             "Concat",
}

// String returns the string representation of BinaryOp.
func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpNames) {
		return "unknown"
	}
	return binaryOpNames[op]
}

// IsComparison reports whether op compares two values.
func (op BinaryOp) IsComparison() bool { return op >= OpEqual && op <= OpGreaterThanOrEqual }

// IsLogical reports whether op combines two predicates.
func (op BinaryOp) IsLogical() bool { return op == OpAnd || op == OpOr }

// IsArithmetic reports whether op produces a value from two values.
func (op BinaryOp) IsArithmetic() bool { return op >= OpAdd && op <= OpConcat }

// ParseBinaryOp maps an operator name (case-sensitive, as returned by String)
// or its common SQL symbol to a BinaryOp.
func ParseBinaryOp(s string) (BinaryOp, bool) {
	switch s {
	case "=", "==":
		return OpEqual, true
	case "<>", "!=":
		return OpNotEqual, true
	case "<":
		return OpLessThan, true
	case "<=":
		return OpLessThanOrEqual, true
	case ">":
		return OpGreaterThan, true
	case ">=":
		return OpGreaterThanOrEqual, true
	case "+":
		return OpAdd, true
	case "-":
		return OpSubtract, true
	case "*":
		return OpMultiply, true
	case "/":
		return OpDivide, true
	case "%":
		return OpModulo, true
	case "||":
		return OpConcat, true
	}
	for i, name := range binaryOpNames {
		if name == s {
			return BinaryOp(i), true
		}
	}
	return 0, false
}

// UnaryOp is the operator of a UnaryExpression.
type UnaryOp int

// UnaryOp constants.
const (
	OpNot UnaryOp = iota
	OpNegate
)

// String returns the string representation of UnaryOp.
func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "Not"
	case OpNegate:
		return "Negate"
	default:
		return "unknown"
	}
}

// AggregateFunc is the function of an AggregateExpression.
type AggregateFunc int

// AggregateFunc constants.
const (
	AggCount AggregateFunc = iota
	AggSum
	AggMin
	AggMax
	AggAvg
)

// String returns the SQL function name.
func (f AggregateFunc) String() string {
	switch f {
	case AggCount:
		return "COUNT"
	case AggSum:
		return "SUM"
	case AggMin:
		return "MIN"
	case AggMax:
		return "MAX"
	case AggAvg:
		return "AVG"
	default:
		return "unknown"
	}
}

// Operator precedence levels, lowest binding first. Atoms (columns,
// constants, function calls, CASE) bind tightest.
const (
	PrecedenceNone = iota
	PrecedenceOr
	PrecedenceAnd
	PrecedenceNot
	PrecedenceComparison
	PrecedenceAddition
	PrecedenceMultiply
	PrecedenceUnary
	PrecedenceAtom
)

// Precedence returns the binding strength of op.
func (op BinaryOp) Precedence() int {
	switch {
	case op == OpOr:
		return PrecedenceOr
	case op == OpAnd:
		return PrecedenceAnd
	case op.IsComparison():
		return PrecedenceComparison
	case op == OpMultiply, op == OpDivide, op == OpModulo:
		return PrecedenceMultiply
	case op.IsArithmetic():
		return PrecedenceAddition
	default:
		return PrecedenceNone
	}
}

// IsAssociative reports whether (a op b) op c equals a op (b op c), so a
// right operand of equal precedence needs no parentheses.
func (op BinaryOp) IsAssociative() bool {
	switch op {
	case OpAnd, OpOr, OpAdd, OpMultiply, OpConcat:
		return true
	default:
		return false
	}
}
