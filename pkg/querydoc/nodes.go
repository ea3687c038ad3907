package querydoc

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// fields returns the entries of a mapping node, rejecting keys outside allowed.
func fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorAt(n, "expected a mapping")
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if !contains(allowed, key.Value) {
			return nil, errorAt(key, "unknown key %q (expected one of %s)", key.Value, strings.Join(allowed, ", "))
		}
		if _, dup := out[key.Value]; dup {
			return nil, errorAt(key, "duplicate key %q", key.Value)
		}
		out[key.Value] = val
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sequence(n *yaml.Node) ([]*yaml.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errorAt(n, "expected a list")
	}
	return n.Content, nil
}

func str(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return "", errorAt(n, "expected a string")
	}
	return n.Value, nil
}

func boolean(n *yaml.Node) (bool, error) {
	var b bool
	if n.Kind != yaml.ScalarNode || n.Decode(&b) != nil {
		return false, errorAt(n, "expected true or false")
	}
	return b, nil
}

// optBool reads an optional boolean field.
func optBool(m map[string]*yaml.Node, key string) (bool, error) {
	n, ok := m[key]
	if !ok {
		return false, nil
	}
	return boolean(n)
}

func int64Ptr(n *yaml.Node) (*int64, error) {
	var v int64
	if n.Kind != yaml.ScalarNode || n.Decode(&v) != nil {
		return nil, errorAt(n, "expected an integer")
	}
	return &v, nil
}

// scalarValue converts a constant's YAML scalar into a Go value. Integers
// become int64 so parameter types do not depend on the platform.
func scalarValue(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, errorAt(n, "constant must be a scalar")
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, errorAt(n, "invalid constant: %v", err)
	}
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case uint64:
		return nil, errorAt(n, "integer %d out of range", x)
	}
	return v, nil
}

// splitQualified splits "alias.name" into its parts.
func splitQualified(s string) (qualifier, name string) {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return "", s
}
