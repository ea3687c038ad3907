package core

import "strings"

// MethodKind identifies a portable function call.
type MethodKind int

// MethodKind constants.
const (
	MethodCompare MethodKind = iota
	MethodCompareTo
	MethodEquals
	MethodStartsWith
	MethodEndsWith
	MethodContains
	MethodToUpper
	MethodToLower
	MethodTrim
	MethodLength
	MethodSubstring
	MethodIndexOf
	MethodConcat
	MethodAbs
	MethodCeiling
	MethodFloor
	MethodRound
	MethodCoalesce
	MethodNow
)

// arity is an inclusive argument-count range. max < 0 means unbounded.
// A nil *arity means the form is not allowed.
type arity struct{ min, max int }

func (a *arity) allows(n int) bool {
	return a != nil && n >= a.min && (a.max < 0 || n <= a.max)
}

type methodSpec struct {
	name      string
	instance  *arity // arguments excluding the target
	static    *arity
	predicate bool
}

var methodSpecs = [...]methodSpec{
	MethodCompare:    {name: "Compare", static: &arity{2, 2}},
	MethodCompareTo:  {name: "CompareTo", instance: &arity{1, 1}},
	MethodEquals:     {name: "Equals", instance: &arity{1, 1}, static: &arity{2, 2}, predicate: true},
	MethodStartsWith: {name: "StartsWith", instance: &arity{1, 1}, predicate: true},
	MethodEndsWith:   {name: "EndsWith", instance: &arity{1, 1}, predicate: true},
	MethodContains:   {name: "Contains", instance: &arity{1, 1}, predicate: true},
	MethodToUpper:    {name: "ToUpper", instance: &arity{0, 0}},
	MethodToLower:    {name: "ToLower", instance: &arity{0, 0}},
	MethodTrim:       {name: "Trim", instance: &arity{0, 0}},
	MethodLength:     {name: "Length", instance: &arity{0, 0}},
	MethodSubstring:  {name: "Substring", instance: &arity{1, 2}},
	MethodIndexOf:    {name: "IndexOf", instance: &arity{1, 1}},
	MethodConcat:     {name: "Concat", static: &arity{2, -1}},
	MethodAbs:        {name: "Abs", static: &arity{1, 1}},
	MethodCeiling:    {name: "Ceiling", static: &arity{1, 1}},
	MethodFloor:      {name: "Floor", static: &arity{1, 1}},
	MethodRound:      {name: "Round", static: &arity{1, 2}},
	MethodCoalesce:   {name: "Coalesce", static: &arity{2, -1}},
	MethodNow:        {name: "Now", static: &arity{0, 0}},
}

func (k MethodKind) spec() (methodSpec, bool) {
	if k < 0 || int(k) >= len(methodSpecs) {
		return methodSpec{}, false
	}
	return methodSpecs[k], true
}

// String returns the method name.
func (k MethodKind) String() string {
	s, ok := k.spec()
	if !ok {
		return "unknown"
	}
	return s.name
}

// IsPredicate reports whether calls of this kind yield a boolean.
func (k MethodKind) IsPredicate() bool {
	s, _ := k.spec()
	return s.predicate
}

// IsComparison reports whether the kind is Compare or CompareTo.
func (k MethodKind) IsComparison() bool { return k == MethodCompare || k == MethodCompareTo }

// AcceptsArity reports whether a call with the given form and argument count
// (excluding the target) is well formed.
func (k MethodKind) AcceptsArity(static bool, args int) bool {
	s, ok := k.spec()
	if !ok {
		return false
	}
	if static {
		return s.static.allows(args)
	}
	return s.instance.allows(args)
}

// MethodKinds returns every method kind in declaration order.
func MethodKinds() []MethodKind {
	kinds := make([]MethodKind, len(methodSpecs))
	for i := range methodSpecs {
		kinds[i] = MethodKind(i)
	}
	return kinds
}

// ParseMethodKind looks up a method kind by name, case-insensitively.
func ParseMethodKind(name string) (MethodKind, bool) {
	for i, s := range methodSpecs {
		if strings.EqualFold(s.name, name) {
			return MethodKind(i), true
		}
	}
	return 0, false
}
