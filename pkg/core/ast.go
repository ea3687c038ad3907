package core

// Node is the base interface for all expression tree nodes.
// The set of implementations is closed: every node kind lives in this package.
type Node interface {
	// Kind returns the node's kind tag.
	Kind() NodeKind
	node() // Marker method to seal the interface
}

// Expr is a marker interface for value and predicate expressions.
type Expr interface {
	Node
	exprNode() // Marker method to distinguish expressions
}

// Source is a marker interface for items that can appear in a FROM clause.
type Source interface {
	Node
	sourceNode() // Marker method to distinguish FROM items
}

// NodeKind enumerates every node kind in the tree.
type NodeKind int

// NodeKind constants, one per node type.
const (
	KindSelect NodeKind = iota
	KindTable
	KindJoin
	KindColumnDeclaration
	KindColumn
	KindConstant
	KindBinary
	KindUnary
	KindIsNull
	KindIn
	KindExists
	KindScalar
	KindAggregate
	KindMethodCall
	KindConditional
)

var nodeKindNames = [...]string{
	KindSelect:            "Select",
	KindTable:             "Table",
	KindJoin:              "Join",
	KindColumnDeclaration: "ColumnDeclaration",
	KindColumn:            "Column",
	KindConstant:          "Constant",
	KindBinary:            "Binary",
	KindUnary:             "Unary",
	KindIsNull:            "IsNull",
	KindIn:                "In",
	KindExists:            "Exists",
	KindScalar:            "Scalar",
	KindAggregate:         "Aggregate",
	KindMethodCall:        "MethodCall",
	KindConditional:       "Conditional",
}

// String returns the string representation of NodeKind.
func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "unknown"
	}
	return nodeKindNames[k]
}
