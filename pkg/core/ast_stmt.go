package core

// ---------- Select ----------

// SelectExpression is the root of a query tree. It also appears as a FROM
// source (derived table) and inside In, Exists and Scalar subqueries.
type SelectExpression struct {
	Alias    string
	Distinct bool
	Columns  []*ColumnDeclaration
	From     Source
	Where    Expr
	GroupBy  []Expr
	Having   Expr
	OrderBy  []Ordering
	Skip     *int64
	Take     *int64
}

func (*SelectExpression) node()       {}
func (*SelectExpression) sourceNode() {}

// Kind implements Node.
func (*SelectExpression) Kind() NodeKind { return KindSelect }

// HasSkip reports whether the select requests a row offset.
func (s *SelectExpression) HasSkip() bool { return s.Skip != nil }

// HasTake reports whether the select requests a row limit.
func (s *SelectExpression) HasTake() bool { return s.Take != nil }

// ColumnDeclaration is one named item of a projection.
type ColumnDeclaration struct {
	Name string
	Expr Expr
}

func (*ColumnDeclaration) node() {}

// Kind implements Node.
func (*ColumnDeclaration) Kind() NodeKind { return KindColumnDeclaration }

// ---------- Ordering ----------

// Direction is the sort direction of an Ordering.
type Direction int

// Direction constants.
const (
	Asc Direction = iota
	Desc
)

// String returns the SQL keyword for the direction.
func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// Ordering is an ORDER BY item. It is not a node.
type Ordering struct {
	Expr      Expr
	Direction Direction
}
