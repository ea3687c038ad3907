// Package querydoc reads query trees from YAML or JSON documents.
//
// A document is a mapping describing one select:
//
//	columns:
//	  - name: total
//	    expr: {agg: SUM, arg: {col: o.amount}}
//	from:
//	  join: inner
//	  left: {table: customers, alias: c}
//	  right: {table: orders, alias: o}
//	  on: {op: "=", left: {col: c.id}, right: {col: o.customer_id}}
//	where: {call: StartsWith, target: {col: c.name}, args: [{const: A}]}
//	order_by:
//	  - {expr: {col: c.name}, desc: true}
//	take: 10
//
// Expressions are mappings keyed by their kind: col, const, op, and, or,
// not, neg, is_null, in, exists, scalar, agg, call and if. Errors carry the
// line and column of the offending node.
package querydoc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapquery/pkg/core"
)

// ErrInvalidDocument is matched by every *DecodeError.
var ErrInvalidDocument = errors.New("invalid query document")

// DecodeError reports a problem at a position in the document.
type DecodeError struct {
	Line   int
	Column int
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Is matches ErrInvalidDocument.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidDocument
}

func errorAt(n *yaml.Node, format string, args ...any) error {
	return &DecodeError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// Decode reads one query document from r. The tree is returned as written;
// structural checks are left to core.Validate.
func Decode(r io.Reader) (*core.SelectExpression, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	n := &root
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	return decodeSelect(n)
}

// Load reads the query document at path.
func Load(path string) (*core.SelectExpression, error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to open query document: %w", err)
	}
	defer func() { _ = f.Close() }()

	sel, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sel, nil
}
