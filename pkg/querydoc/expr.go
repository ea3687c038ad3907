package querydoc

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapquery/pkg/core"
)

// exprDecoder decodes one expression kind. The discriminating key is the
// first entry of keys; the rest are the optional keys of that kind.
type exprDecoder struct {
	keys   []string
	decode func(m map[string]*yaml.Node, n *yaml.Node) (core.Expr, error)
}

var exprDecoders []exprDecoder

func init() {
	exprDecoders = []exprDecoder{
		{[]string{"col"}, decodeColumn},
		{[]string{"const"}, decodeConstant},
		{[]string{"op", "left", "right"}, decodeBinary},
		{[]string{"and"}, foldLogical(core.OpAnd)},
		{[]string{"or"}, foldLogical(core.OpOr)},
		{[]string{"not"}, decodeUnary(core.OpNot)},
		{[]string{"neg"}, decodeUnary(core.OpNegate)},
		{[]string{"is_null", "negated"}, decodeIsNull},
		{[]string{"in", "values", "query", "negated"}, decodeIn},
		{[]string{"exists", "negated"}, decodeExists},
		{[]string{"scalar"}, decodeScalar},
		{[]string{"agg", "arg", "distinct"}, decodeAggregate},
		{[]string{"call", "target", "args"}, decodeCall},
		{[]string{"if", "then", "else"}, decodeConditional},
	}
}

func decodeExpr(n *yaml.Node) (core.Expr, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorAt(n, "expected an expression mapping")
	}
	for _, d := range exprDecoders {
		if !hasKey(n, d.keys[0]) {
			continue
		}
		m, err := fields(n, d.keys...)
		if err != nil {
			return nil, err
		}
		return d.decode(m, n)
	}
	return nil, errorAt(n, "unknown expression")
}

func decodeExprList(n *yaml.Node) ([]core.Expr, error) {
	items, err := sequence(n)
	if err != nil {
		return nil, err
	}
	out := make([]core.Expr, 0, len(items))
	for _, item := range items {
		e, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func required(m map[string]*yaml.Node, n *yaml.Node, key string) (*yaml.Node, error) {
	v, ok := m[key]
	if !ok {
		return nil, errorAt(n, "missing %q", key)
	}
	return v, nil
}

func decodeColumn(m map[string]*yaml.Node, _ *yaml.Node) (core.Expr, error) {
	s, err := str(m["col"])
	if err != nil {
		return nil, err
	}
	alias, name := splitQualified(s)
	return core.Col(alias, name), nil
}

func decodeConstant(m map[string]*yaml.Node, _ *yaml.Node) (core.Expr, error) {
	v, err := scalarValue(m["const"])
	if err != nil {
		return nil, err
	}
	return core.Const(v), nil
}

func decodeBinary(m map[string]*yaml.Node, n *yaml.Node) (core.Expr, error) {
	name, err := str(m["op"])
	if err != nil {
		return nil, err
	}
	op, ok := core.ParseBinaryOp(name)
	if !ok {
		return nil, errorAt(m["op"], "unknown operator %q", name)
	}
	var sides [2]core.Expr
	for i, key := range []string{"left", "right"} {
		v, err := required(m, n, key)
		if err != nil {
			return nil, err
		}
		if sides[i], err = decodeExpr(v); err != nil {
			return nil, err
		}
	}
	return core.Binary(op, sides[0], sides[1]), nil
}

// foldLogical turns a list of two or more operands into a left-deep chain.
func foldLogical(op core.BinaryOp) func(map[string]*yaml.Node, *yaml.Node) (core.Expr, error) {
	return func(m map[string]*yaml.Node, n *yaml.Node) (core.Expr, error) {
		key := strings.ToLower(op.String())
		operands, err := decodeExprList(m[key])
		if err != nil {
			return nil, err
		}
		if len(operands) < 2 {
			return nil, errorAt(n, "%s needs at least two operands", key)
		}
		e := operands[0]
		for _, next := range operands[1:] {
			e = core.Binary(op, e, next)
		}
		return e, nil
	}
}

func decodeUnary(op core.UnaryOp) func(map[string]*yaml.Node, *yaml.Node) (core.Expr, error) {
	return func(m map[string]*yaml.Node, _ *yaml.Node) (core.Expr, error) {
		key := "not"
		if op == core.OpNegate {
			key = "neg"
		}
		operand, err := decodeExpr(m[key])
		if err != nil {
			return nil, err
		}
		return &core.UnaryExpression{Op: op, Operand: operand}, nil
	}
}

func decodeIsNull(m map[string]*yaml.Node, _ *yaml.Node) (core.Expr, error) {
	operand, err := decodeExpr(m["is_null"])
	if err != nil {
		return nil, err
	}
	negated, err := optBool(m, "negated")
	if err != nil {
		return nil, err
	}
	return &core.IsNullExpression{Operand: operand, Negated: negated}, nil
}

func decodeIn(m map[string]*yaml.Node, n *yaml.Node) (core.Expr, error) {
	operand, err := decodeExpr(m["in"])
	if err != nil {
		return nil, err
	}
	in := &core.InExpression{Operand: operand}
	if in.Negated, err = optBool(m, "negated"); err != nil {
		return nil, err
	}
	values, hasValues := m["values"]
	query, hasQuery := m["query"]
	switch {
	case hasValues && hasQuery:
		return nil, errorAt(n, "in takes either values or query, not both")
	case hasValues:
		if in.Values, err = decodeExprList(values); err != nil {
			return nil, err
		}
		if in.Values == nil {
			in.Values = []core.Expr{}
		}
	case hasQuery:
		if in.Query, err = decodeSelect(query); err != nil {
			return nil, err
		}
	default:
		return nil, errorAt(n, "in needs values or a query")
	}
	return in, nil
}

func decodeExists(m map[string]*yaml.Node, _ *yaml.Node) (core.Expr, error) {
	query, err := decodeSelect(m["exists"])
	if err != nil {
		return nil, err
	}
	negated, err := optBool(m, "negated")
	if err != nil {
		return nil, err
	}
	return &core.ExistsExpression{Query: query, Negated: negated}, nil
}

func decodeScalar(m map[string]*yaml.Node, _ *yaml.Node) (core.Expr, error) {
	query, err := decodeSelect(m["scalar"])
	if err != nil {
		return nil, err
	}
	return &core.ScalarExpression{Query: query}, nil
}

var aggregateFuncs = map[string]core.AggregateFunc{
	"COUNT": core.AggCount,
	"SUM":   core.AggSum,
	"MIN":   core.AggMin,
	"MAX":   core.AggMax,
	"AVG":   core.AggAvg,
}

func decodeAggregate(m map[string]*yaml.Node, _ *yaml.Node) (core.Expr, error) {
	name, err := str(m["agg"])
	if err != nil {
		return nil, err
	}
	fn, ok := aggregateFuncs[strings.ToUpper(name)]
	if !ok {
		return nil, errorAt(m["agg"], "unknown aggregate %q", name)
	}
	agg := &core.AggregateExpression{Func: fn}
	if v, ok := m["arg"]; ok {
		if agg.Arg, err = decodeExpr(v); err != nil {
			return nil, err
		}
	}
	if agg.Distinct, err = optBool(m, "distinct"); err != nil {
		return nil, err
	}
	return agg, nil
}

// decodeCall reads a method call. Without a target the call is static and
// every operand is listed in args.
func decodeCall(m map[string]*yaml.Node, _ *yaml.Node) (core.Expr, error) {
	name, err := str(m["call"])
	if err != nil {
		return nil, err
	}
	method, ok := core.ParseMethodKind(name)
	if !ok {
		return nil, errorAt(m["call"], "unknown method %q", name)
	}
	call := &core.MethodCallExpression{Method: method}
	if v, ok := m["target"]; ok {
		if call.Target, err = decodeExpr(v); err != nil {
			return nil, err
		}
	}
	if v, ok := m["args"]; ok {
		if call.Args, err = decodeExprList(v); err != nil {
			return nil, err
		}
	}
	return call, nil
}

func decodeConditional(m map[string]*yaml.Node, n *yaml.Node) (core.Expr, error) {
	var parts [3]core.Expr
	for i, key := range []string{"if", "then", "else"} {
		v, err := required(m, n, key)
		if err != nil {
			return nil, err
		}
		if parts[i], err = decodeExpr(v); err != nil {
			return nil, err
		}
	}
	return core.If(parts[0], parts[1], parts[2]), nil
}
