package translate

import (
	"strconv"

	"github.com/leapstack-labs/leapquery/pkg/core"
)

// paginationCheck is one link of the skip guard chain.
type paginationCheck struct {
	cause core.Cause
	fails func(sel *core.SelectExpression, p core.PaginationConfig) bool
}

// paginationChecks run in order; the first failure wins. A dialect that
// cannot skip at all still reports the missing ordering or take first.
var paginationChecks = []paginationCheck{
	{
		cause: core.CauseSkipWithoutOrdering,
		fails: func(sel *core.SelectExpression, p core.PaginationConfig) bool {
			return len(sel.OrderBy) == 0 && !p.UnorderedSkip
		},
	},
	{
		cause: core.CauseSkipWithoutTake,
		fails: func(sel *core.SelectExpression, p core.PaginationConfig) bool {
			return !sel.HasTake() && !p.OpenEndedSkip
		},
	},
	{
		cause: core.CausePaginationUnsupported,
		fails: func(_ *core.SelectExpression, p core.PaginationConfig) bool {
			return !p.SupportsOffset
		},
	},
}

func (t *Translator) checkPagination(sel *core.SelectExpression) error {
	if !sel.HasSkip() {
		return nil
	}
	for _, check := range paginationChecks {
		if check.fails(sel, t.cfg.Pagination) {
			return t.Unsupported("skip", check.cause)
		}
	}
	return nil
}

// usesTop reports whether take renders as SELECT TOP.
func (t *Translator) usesTop(sel *core.SelectExpression) bool {
	switch t.cfg.Pagination.Style {
	case core.PaginationTop:
		return sel.HasTake()
	case core.PaginationTopOffsetFetch:
		return sel.HasTake() && !sel.HasSkip()
	default:
		return false
	}
}

func (t *Translator) writeTop(sel *core.SelectExpression) {
	n := strconv.FormatInt(*sel.Take, 10)
	if t.cfg.Pagination.Style == core.PaginationTopOffsetFetch {
		n = "(" + n + ")"
	}
	t.sink.Write(" TOP " + n)
}

// writePagination renders the trailing skip/take clauses.
func (t *Translator) writePagination(sel *core.SelectExpression) {
	p := t.cfg.Pagination
	var skip, take string
	if sel.HasSkip() {
		skip = strconv.FormatInt(*sel.Skip, 10)
	}
	if sel.HasTake() {
		take = strconv.FormatInt(*sel.Take, 10)
	}

	switch p.Style {
	case core.PaginationOffsetFetch, core.PaginationTopOffsetFetch:
		if skip != "" {
			t.sink.Clause()
			t.sink.Write("OFFSET " + skip + " ROWS")
			if take != "" {
				t.sink.Write(" FETCH NEXT " + take + " ROWS ONLY")
			}
			return
		}
		if take != "" && p.Style == core.PaginationOffsetFetch {
			t.sink.Clause()
			t.sink.Write("FETCH FIRST " + take + " ROWS ONLY")
		}

	case core.PaginationLimitOffset:
		limit := take
		if limit == "" && skip != "" {
			limit = p.LimitAll
		}
		if limit != "" {
			t.sink.Clause()
			t.sink.Write("LIMIT " + limit)
		}
		if skip != "" {
			t.sink.Clause()
			t.sink.Write("OFFSET " + skip)
		}

	case core.PaginationLimitComma:
		switch {
		case skip != "" && take != "":
			t.sink.Clause()
			t.sink.Write("LIMIT " + skip + ", " + take)
		case skip != "":
			t.sink.Clause()
			t.sink.Write("LIMIT " + skip + ", " + p.LimitAll)
		case take != "":
			t.sink.Clause()
			t.sink.Write("LIMIT " + take)
		}

	case core.PaginationTop:
		// take is rendered by writeTop; skip was rejected by the guard chain
	}
}
