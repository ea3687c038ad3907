package translate

import (
	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
)

// VisitSelect implements spi.Visitor.
func (t *Translator) VisitSelect(sel *core.SelectExpression) error {
	if !t.started {
		t.started = true
		if err := core.Validate(sel); err != nil {
			return err
		}
	}
	return run(t.ov.Select, t, sel, func() error { return t.selectDefault(sel) })
}

func (t *Translator) selectDefault(sel *core.SelectExpression) error {
	if err := t.checkPagination(sel); err != nil {
		return err
	}

	// SELECT [DISTINCT] [TOP n]
	t.sink.Keyword("SELECT")
	if sel.Distinct {
		t.sink.Write(" DISTINCT")
	}
	if t.usesTop(sel) {
		t.writeTop(sel)
	}
	t.sink.Space()

	// Columns
	err := run(t.ov.Columns, t, sel.Columns, func() error { return t.columnsDefault(sel.Columns) })
	if err != nil {
		return err
	}

	// FROM
	if sel.From != nil {
		t.sink.Clause()
		t.sink.Write("FROM ")
		if err := t.VisitSource(sel.From); err != nil {
			return err
		}
	}

	// WHERE
	if sel.Where != nil {
		t.sink.Clause()
		t.sink.Write("WHERE ")
		if err := t.VisitPredicate(sel.Where); err != nil {
			return err
		}
	}

	// GROUP BY
	if len(sel.GroupBy) > 0 {
		t.sink.Clause()
		t.sink.Write("GROUP BY ")
		if err := t.sink.List(len(sel.GroupBy), func(i int) error { return t.VisitValue(sel.GroupBy[i]) }); err != nil {
			return err
		}
	}

	// HAVING
	if sel.Having != nil {
		t.sink.Clause()
		t.sink.Write("HAVING ")
		if err := t.VisitPredicate(sel.Having); err != nil {
			return err
		}
	}

	// ORDER BY
	if t.ordered(sel) {
		t.sink.Clause()
		t.sink.Write("ORDER BY ")
		err := t.sink.List(len(sel.OrderBy), func(i int) error {
			o := sel.OrderBy[i]
			if err := t.VisitValue(o.Expr); err != nil {
				return err
			}
			if o.Direction == core.Desc {
				t.sink.Write(" DESC")
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	t.writePagination(sel)
	return nil
}

// ordered reports whether sel renders an ORDER BY clause.
func (t *Translator) ordered(sel *core.SelectExpression) bool {
	if len(sel.OrderBy) == 0 {
		return false
	}
	if t.depth == 0 || !t.cfg.Pagination.PagedSubqueryOrdering {
		return true
	}
	return sel.HasTake() || sel.HasSkip()
}

// columnsDefault renders the projection. A plain column whose name matches
// the declared name needs no alias.
func (t *Translator) columnsDefault(cols []*core.ColumnDeclaration) error {
	if len(cols) == 0 {
		t.sink.Write(t.cfg.EmptyProjection)
		return nil
	}
	return t.sink.List(len(cols), func(i int) error {
		col := cols[i]
		if err := t.VisitValue(col.Expr); err != nil {
			return err
		}
		if ref, ok := col.Expr.(*core.ColumnExpression); ok && ref.Name == col.Name {
			return nil
		}
		t.sink.Write(" AS " + t.dialect.QuoteIdentifierIfNeeded(col.Name))
		return nil
	})
}

// VisitSource implements spi.Visitor.
func (t *Translator) VisitSource(src core.Source) error {
	switch s := src.(type) {
	case *core.TableExpression:
		if s.Schema != "" {
			t.sink.Write(t.dialect.QuoteIdentifierIfNeeded(s.Schema) + ".")
		}
		t.sink.Write(t.dialect.QuoteIdentifierIfNeeded(s.Name))
		if s.Alias != "" {
			t.sink.Write(" AS " + t.dialect.QuoteIdentifierIfNeeded(s.Alias))
		}
		return nil

	case *core.JoinExpression:
		return run(t.ov.Join, t, s, func() error { return t.joinDefault(s) })

	case *core.SelectExpression:
		if err := t.subquery(s); err != nil {
			return err
		}
		alias := s.Alias
		if alias == "" {
			alias = t.sink.NextAlias()
		}
		t.sink.Write(" AS " + t.dialect.QuoteIdentifierIfNeeded(alias))
		return nil

	default:
		return core.Malformed(core.KindJoin, "unknown source %T", src)
	}
}

func (t *Translator) joinDefault(j *core.JoinExpression) error {
	if j.Type == core.JoinCross && !t.cfg.CrossJoinKeyword {
		if err := t.VisitSource(j.Left); err != nil {
			return err
		}
		t.sink.Write(", ")
		return t.joinRight(j.Right)
	}

	if err := t.joinLeft(j.Left); err != nil {
		return err
	}
	t.sink.Space()
	t.sink.Keyword(dialect.JoinKeywords[j.Type])
	t.sink.Space()
	if err := t.joinRight(j.Right); err != nil {
		return err
	}
	if j.Condition != nil {
		t.sink.Write(" ON ")
		return t.VisitPredicate(j.Condition)
	}
	return nil
}

// joinLeft renders the left side of a keyword join. A cross join there is
// spelled CROSS JOIN even in dialects that otherwise use a comma: the comma
// binds looser than JOIN and would hide its tables from the ON condition.
func (t *Translator) joinLeft(src core.Source) error {
	left, ok := src.(*core.JoinExpression)
	if !ok || left.Type != core.JoinCross || t.cfg.CrossJoinKeyword {
		return t.VisitSource(src)
	}
	if err := t.joinLeft(left.Left); err != nil {
		return err
	}
	t.sink.Space()
	t.sink.Keyword(dialect.JoinKeywords[core.JoinCross])
	t.sink.Space()
	return t.joinRight(left.Right)
}

// joinRight renders the right side of a join, parenthesizing nested joins.
func (t *Translator) joinRight(src core.Source) error {
	if _, nested := src.(*core.JoinExpression); !nested {
		return t.VisitSource(src)
	}
	t.sink.Write("(")
	if err := t.VisitSource(src); err != nil {
		return err
	}
	t.sink.Write(")")
	return nil
}

// subquery renders a parenthesized SELECT.
func (t *Translator) subquery(sel *core.SelectExpression) error {
	t.sink.Write("(")
	t.sink.Indent()
	t.sink.Break()
	t.depth++
	if err := t.VisitSelect(sel); err != nil {
		return err
	}
	t.depth--
	t.sink.Dedent()
	t.sink.Break()
	t.sink.Write(")")
	return nil
}
