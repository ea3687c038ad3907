// Package dialect provides SQL dialect configuration and override tables.
//
// This file contains join keywords and join handlers that form the
// "toolbox" of reusable join renderings. These can be composed into any
// dialect.
package dialect

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/spi"
)

// JoinKeywords maps each join type to its ANSI keyword sequence.
var JoinKeywords = map[core.JoinType]string{
	core.JoinInner:     "INNER JOIN",
	core.JoinLeftOuter: "LEFT OUTER JOIN",
	core.JoinCross:     "CROSS JOIN",
}

// CommaCrossJoin renders a cross join as "<left>, <right>" and defers every
// other join type to base.
func CommaCrossJoin(v spi.Visitor, j *core.JoinExpression, base func() error) error {
	if j.Type != core.JoinCross {
		return base()
	}
	if err := v.VisitSource(j.Left); err != nil {
		return err
	}
	v.Write(", ")
	return v.VisitSource(j.Right)
}

// NestedJoins parenthesizes a keyword join whose left side is itself a
// join: "(a INNER JOIN b ON ...) INNER JOIN c ON ...". Engines in the Jet
// family reject the unparenthesized form, and a comma cross join on the left
// would otherwise hide its tables from the ON condition.
func NestedJoins(v spi.Visitor, j *core.JoinExpression, base func() error) error {
	left, ok := j.Left.(*core.JoinExpression)
	if !ok || j.Type == core.JoinCross {
		return base()
	}
	v.Write("(")
	if err := v.VisitSource(left); err != nil {
		return err
	}
	v.Write(") ")
	v.Keyword(JoinKeywords[j.Type])
	v.Space()
	_, nested := j.Right.(*core.JoinExpression)
	if nested {
		v.Write("(")
	}
	if err := v.VisitSource(j.Right); err != nil {
		return err
	}
	if nested {
		v.Write(")")
	}
	v.Write(" ON ")
	return v.VisitPredicate(j.Condition)
}
