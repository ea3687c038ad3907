package adapter

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/translate"
)

// QueryTree translates sel with the adapter's dialect and runs it.
func QueryTree(ctx context.Context, a Adapter, sel *core.SelectExpression, opts ...translate.Option) (*Table, error) {
	res, err := translate.Translate(sel, a.Dialect(), opts...)
	if err != nil {
		return nil, fmt.Errorf("translate for %s: %w", a.Dialect().Name, err)
	}
	rows, err := a.Query(ctx, res.SQL, res.Params...)
	if err != nil {
		return nil, err
	}
	return Collect(rows)
}
