package core

import "strings"

// DefaultLikeWildcards are the LIKE metacharacters escaped in every dialect.
const DefaultLikeWildcards = "%_"

// LikeEscape describes how literal text is embedded in a LIKE pattern built
// for StartsWith, EndsWith and Contains.
type LikeEscape struct {
	// Char prefixes each metacharacter and is declared with ESCAPE.
	// Empty means metacharacters are wrapped in brackets ("[%]") and no
	// ESCAPE clause is written.
	Char string

	// Wildcards lists the characters with special meaning inside a pattern.
	Wildcards string
}

// Brackets reports whether metacharacters are escaped as character classes.
func (e LikeEscape) Brackets() bool { return e.Char == "" }

// Replacements returns the substitutions that make s match literally, in the
// order they must be applied one after another. The escape itself comes
// first so later substitutions are not escaped twice.
func (e LikeEscape) Replacements() [][2]string {
	first := [2]string{e.Char, e.Char + e.Char}
	wrap := func(w string) string { return e.Char + w }
	if e.Brackets() {
		first = [2]string{"[", "[[]"}
		wrap = func(w string) string { return "[" + w + "]" }
	}

	out := [][2]string{first}
	for _, r := range e.Wildcards {
		if w := string(r); w != first[0] {
			out = append(out, [2]string{w, wrap(w)})
		}
	}
	return out
}

// Escape returns s with every metacharacter escaped.
func (e LikeEscape) Escape(s string) string {
	pairs := e.Replacements()
	args := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		args = append(args, p[0], p[1])
	}
	return strings.NewReplacer(args...).Replace(s)
}
