// Package format provides the output sink that translators write SQL into.
package format

import (
	"bytes"
	"strconv"
	"strings"
)

const indentSize = 2

// Sink accumulates translated SQL text, the generated alias counter and the
// ordered parameter list for one translation.
//
// In compact mode Clause writes a single space; in pretty mode it starts a
// new line at the current indentation depth.
type Sink struct {
	placeholder func(index int) string
	output      *bytes.Buffer
	depth       int
	pretty      bool
	atLineStart bool
	aliases     int
	params      []any
}

// NewSink creates a sink. placeholder formats the 1-based parameter index.
func NewSink(placeholder func(index int) string, pretty bool) *Sink {
	return &Sink{
		placeholder: placeholder,
		output:      &bytes.Buffer{},
		pretty:      pretty,
	}
}

// String returns the SQL written so far.
func (s *Sink) String() string {
	return strings.TrimRight(s.output.String(), " \n")
}

// Params returns the parameter values in placeholder order.
func (s *Sink) Params() []any {
	return s.params
}

// Write appends s verbatim.
func (s *Sink) Write(text string) {
	if s.atLineStart && len(text) > 0 && text[0] != '\n' {
		s.writeIndent()
	}
	s.output.WriteString(text)
	s.atLineStart = false
}

// Keyword appends an upper-cased keyword.
func (s *Sink) Keyword(kw string) {
	s.Write(strings.ToUpper(kw))
}

// Space appends a single space.
func (s *Sink) Space() {
	s.output.WriteByte(' ')
}

// Clause separates two clauses of a statement.
func (s *Sink) Clause() {
	if !s.pretty {
		s.Space()
		return
	}
	s.output.WriteByte('\n')
	s.atLineStart = true
}

// Break starts a new line in pretty mode and writes nothing otherwise.
// It is used inside parentheses, where compact output needs no space.
func (s *Sink) Break() {
	if s.pretty {
		s.output.WriteByte('\n')
		s.atLineStart = true
	}
}

func (s *Sink) writeIndent() {
	for i := 0; i < s.depth*indentSize; i++ {
		s.output.WriteByte(' ')
	}
	s.atLineStart = false
}

// Indent increases the depth used by pretty clause breaks.
func (s *Sink) Indent() {
	s.depth++
}

// Dedent decreases the depth used by pretty clause breaks.
func (s *Sink) Dedent() {
	if s.depth > 0 {
		s.depth--
	}
}

// NextAlias returns a fresh source alias: t0, t1, ...
func (s *Sink) NextAlias() string {
	alias := "t" + strconv.Itoa(s.aliases)
	s.aliases++
	return alias
}

// AddParam records a parameter value and returns its placeholder.
func (s *Sink) AddParam(v any) string {
	s.params = append(s.params, v)
	return s.placeholder(len(s.params))
}

// List writes count items separated by ", ", stopping at the first error.
func (s *Sink) List(count int, item func(i int) error) error {
	for i := 0; i < count; i++ {
		if i > 0 {
			s.Write(", ")
		}
		if err := item(i); err != nil {
			return err
		}
	}
	return nil
}
