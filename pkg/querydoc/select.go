package querydoc

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapquery/pkg/core"
)

var selectKeys = []string{
	"alias", "distinct", "columns", "from", "where", "group_by", "having",
	"order_by", "skip", "take",
}

func decodeSelect(n *yaml.Node) (*core.SelectExpression, error) {
	m, err := fields(n, selectKeys...)
	if err != nil {
		return nil, err
	}
	sel := &core.SelectExpression{}

	if v, ok := m["alias"]; ok {
		if sel.Alias, err = str(v); err != nil {
			return nil, err
		}
	}
	if sel.Distinct, err = optBool(m, "distinct"); err != nil {
		return nil, err
	}
	if v, ok := m["columns"]; ok {
		if sel.Columns, err = decodeColumns(v); err != nil {
			return nil, err
		}
	}
	if v, ok := m["from"]; ok {
		if sel.From, err = decodeSource(v); err != nil {
			return nil, err
		}
	}
	if v, ok := m["where"]; ok {
		if sel.Where, err = decodeExpr(v); err != nil {
			return nil, err
		}
	}
	if v, ok := m["group_by"]; ok {
		if sel.GroupBy, err = decodeExprList(v); err != nil {
			return nil, err
		}
	}
	if v, ok := m["having"]; ok {
		if sel.Having, err = decodeExpr(v); err != nil {
			return nil, err
		}
	}
	if v, ok := m["order_by"]; ok {
		if sel.OrderBy, err = decodeOrdering(v); err != nil {
			return nil, err
		}
	}
	if v, ok := m["skip"]; ok {
		if sel.Skip, err = int64Ptr(v); err != nil {
			return nil, err
		}
	}
	if v, ok := m["take"]; ok {
		if sel.Take, err = int64Ptr(v); err != nil {
			return nil, err
		}
	}
	return sel, nil
}

// decodeColumns reads the projection. A bare string "x" or "t.x" declares
// a column named x that reads that column.
func decodeColumns(n *yaml.Node) ([]*core.ColumnDeclaration, error) {
	items, err := sequence(n)
	if err != nil {
		return nil, err
	}
	cols := make([]*core.ColumnDeclaration, 0, len(items))
	for _, item := range items {
		if item.Kind == yaml.ScalarNode {
			alias, name := splitQualified(item.Value)
			cols = append(cols, core.Column(name, core.Col(alias, name)))
			continue
		}
		m, err := fields(item, "name", "expr")
		if err != nil {
			return nil, err
		}
		nameNode, ok := m["name"]
		if !ok {
			return nil, errorAt(item, "column needs a name")
		}
		name, err := str(nameNode)
		if err != nil {
			return nil, err
		}
		exprNode, ok := m["expr"]
		if !ok {
			return nil, errorAt(item, "column %q needs an expr", name)
		}
		e, err := decodeExpr(exprNode)
		if err != nil {
			return nil, err
		}
		cols = append(cols, core.Column(name, e))
	}
	return cols, nil
}

func decodeOrdering(n *yaml.Node) ([]core.Ordering, error) {
	items, err := sequence(n)
	if err != nil {
		return nil, err
	}
	out := make([]core.Ordering, 0, len(items))
	for _, item := range items {
		m, err := fields(item, "expr", "desc")
		if err != nil {
			return nil, err
		}
		exprNode, ok := m["expr"]
		if !ok {
			return nil, errorAt(item, "ordering needs an expr")
		}
		e, err := decodeExpr(exprNode)
		if err != nil {
			return nil, err
		}
		desc, err := optBool(m, "desc")
		if err != nil {
			return nil, err
		}
		o := core.Ordering{Expr: e}
		if desc {
			o.Direction = core.Desc
		}
		out = append(out, o)
	}
	return out, nil
}

var joinTypes = map[string]core.JoinType{
	"inner": core.JoinInner,
	"left":  core.JoinLeftOuter,
	"cross": core.JoinCross,
}

func decodeSource(n *yaml.Node) (core.Source, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorAt(n, "expected a table, join or select")
	}
	switch {
	case hasKey(n, "table"):
		m, err := fields(n, "table", "schema", "alias")
		if err != nil {
			return nil, err
		}
		t := &core.TableExpression{}
		if t.Name, err = str(m["table"]); err != nil {
			return nil, err
		}
		if v, ok := m["schema"]; ok {
			if t.Schema, err = str(v); err != nil {
				return nil, err
			}
		}
		if v, ok := m["alias"]; ok {
			if t.Alias, err = str(v); err != nil {
				return nil, err
			}
		}
		return t, nil

	case hasKey(n, "join"):
		m, err := fields(n, "join", "left", "right", "on")
		if err != nil {
			return nil, err
		}
		kind, err := str(m["join"])
		if err != nil {
			return nil, err
		}
		typ, ok := joinTypes[strings.ToLower(kind)]
		if !ok {
			return nil, errorAt(m["join"], "unknown join type %q", kind)
		}
		j := &core.JoinExpression{Type: typ}
		for _, side := range []struct {
			key string
			dst *core.Source
		}{{"left", &j.Left}, {"right", &j.Right}} {
			v, ok := m[side.key]
			if !ok {
				return nil, errorAt(n, "join needs a %s source", side.key)
			}
			if *side.dst, err = decodeSource(v); err != nil {
				return nil, err
			}
		}
		if v, ok := m["on"]; ok {
			if j.Condition, err = decodeExpr(v); err != nil {
				return nil, err
			}
		}
		return j, nil

	case hasKey(n, "select"):
		m, err := fields(n, "select", "alias")
		if err != nil {
			return nil, err
		}
		sel, err := decodeSelect(m["select"])
		if err != nil {
			return nil, err
		}
		if v, ok := m["alias"]; ok {
			if sel.Alias, err = str(v); err != nil {
				return nil, err
			}
		}
		return sel, nil
	}
	return nil, errorAt(n, "expected a table, join or select")
}

func hasKey(n *yaml.Node, key string) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}
