package core

// ---------- FROM Sources ----------

// TableExpression references a resolved table.
type TableExpression struct {
	Schema string // optional
	Name   string
	Alias  string // optional
}

func (*TableExpression) node()       {}
func (*TableExpression) sourceNode() {}

// Kind implements Node.
func (*TableExpression) Kind() NodeKind { return KindTable }

// JoinType is the kind of a JoinExpression.
type JoinType int

// JoinType constants.
const (
	JoinInner JoinType = iota
	JoinLeftOuter
	JoinCross
)

// String returns the string representation of JoinType.
func (t JoinType) String() string {
	switch t {
	case JoinInner:
		return "INNER"
	case JoinLeftOuter:
		return "LEFT OUTER"
	case JoinCross:
		return "CROSS"
	default:
		return "unknown"
	}
}

// RequiresCondition reports whether the join type needs an ON condition.
// A cross join must not carry one.
func (t JoinType) RequiresCondition() bool { return t != JoinCross }

// JoinExpression combines two sources.
type JoinExpression struct {
	Type      JoinType
	Left      Source
	Right     Source
	Condition Expr // nil iff Type == JoinCross
}

func (*JoinExpression) node()       {}
func (*JoinExpression) sourceNode() {}

// Kind implements Node.
func (*JoinExpression) Kind() NodeKind { return KindJoin }
