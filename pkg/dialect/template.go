package dialect

import (
	"fmt"
	"strconv"
	"strings"
)

// Template is a compiled core.FunctionDef template.
type Template struct {
	source string
	parts  []templatePart
	arity  int // operands referenced outside optional sections
}

const allOperands = -1

type templatePart struct {
	text    string
	operand int // operand index, allOperands, or unused when text/section is set
	isRef   bool
	bare    bool // delimited like a function argument; needs no parentheses
	section *templateSection
}

type templateSection struct {
	then, otherwise []templatePart
	refs            []int
}

// TemplateWriter receives the pieces of a rendered template.
type TemplateWriter interface {
	Text(s string)
	// Operand renders operand i. bare reports whether the reference sits in
	// argument position, where no parentheses are needed.
	Operand(i int, bare bool) error
	// Operands renders every operand separated by ", ".
	Operands() error
}

// CompileTemplate parses a function template.
func CompileTemplate(src string) (*Template, error) {
	p := &templateParser{src: src}
	parts, err := p.parse(false)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", src, err)
	}
	t := &Template{source: src, parts: parts}
	for _, part := range parts {
		if part.isRef && part.operand+1 > t.arity {
			t.arity = part.operand + 1
		}
	}
	return t, nil
}

// MustCompileTemplate is like CompileTemplate but panics on error.
// It simplifies initialization of package-level dialects.
func MustCompileTemplate(src string) *Template {
	t, err := CompileTemplate(src)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the template source.
func (t *Template) String() string { return t.source }

// Arity returns the minimum operand count the template needs.
func (t *Template) Arity() int { return t.arity }

// Render writes the template for a call with the given operand count.
func (t *Template) Render(operands int, w TemplateWriter) error {
	if operands < t.arity {
		return fmt.Errorf("template %q needs %d operands, got %d", t.source, t.arity, operands)
	}
	return renderParts(t.parts, operands, w)
}

func renderParts(parts []templatePart, operands int, w TemplateWriter) error {
	for _, part := range parts {
		switch {
		case part.section != nil:
			chosen := part.section.then
			for _, ref := range part.section.refs {
				if ref >= operands {
					chosen = part.section.otherwise
					break
				}
			}
			if err := renderParts(chosen, operands, w); err != nil {
				return err
			}
		case part.isRef && part.operand == allOperands:
			if err := w.Operands(); err != nil {
				return err
			}
		case part.isRef:
			if part.operand >= operands {
				return fmt.Errorf("operand %d out of range", part.operand)
			}
			if err := w.Operand(part.operand, part.bare); err != nil {
				return err
			}
		default:
			w.Text(part.text)
		}
	}
	return nil
}

type templateParser struct {
	src string
	pos int
}

// parse reads parts until the end of input, or until ']' or '|' when
// inSection is set.
func (p *templateParser) parse(inSection bool) ([]templatePart, error) {
	var parts []templatePart
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			parts = append(parts, templatePart{text: text.String()})
			text.Reset()
		}
	}

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '{':
			flush()
			ref, err := p.ref()
			if err != nil {
				return nil, err
			}
			parts = append(parts, ref)
		case c == '[' && !inSection:
			flush()
			sec, err := p.section()
			if err != nil {
				return nil, err
			}
			parts = append(parts, templatePart{section: sec})
		case c == '[':
			return nil, fmt.Errorf("nested section at offset %d", p.pos)
		case (c == ']' || c == '|') && inSection:
			flush()
			return parts, nil
		default:
			text.WriteByte(c)
			p.pos++
		}
	}
	if inSection {
		return nil, fmt.Errorf("unterminated section")
	}
	flush()
	return parts, nil
}

func (p *templateParser) ref() (templatePart, error) {
	start := p.pos
	end := strings.IndexByte(p.src[start:], '}')
	if end < 0 {
		return templatePart{}, fmt.Errorf("unterminated reference at offset %d", start)
	}
	body := p.src[start+1 : start+end]
	p.pos = start + end + 1

	part := templatePart{isRef: true, bare: p.isArgument(start, p.pos)}
	if body == "*" {
		part.operand = allOperands
		return part, nil
	}
	n, err := strconv.Atoi(body)
	if err != nil || n < 0 {
		return templatePart{}, fmt.Errorf("invalid reference {%s}", body)
	}
	part.operand = n
	return part, nil
}

// isArgument reports whether the reference spanning src[start:end] is
// delimited like a function argument.
func (p *templateParser) isArgument(start, end int) bool {
	before := strings.TrimRight(p.src[:start], " ")
	after := strings.TrimLeft(p.src[end:], " ")
	if before == "" || after == "" {
		return false
	}
	return strings.ContainsRune("(,[|", rune(before[len(before)-1])) &&
		strings.ContainsRune("),[]|", rune(after[0]))
}

func (p *templateParser) section() (*templateSection, error) {
	p.pos++ // '['
	sec := &templateSection{}
	then, err := p.parse(true)
	if err != nil {
		return nil, err
	}
	sec.then = then
	if p.src[p.pos] == '|' {
		p.pos++
		otherwise, err := p.parse(true)
		if err != nil {
			return nil, err
		}
		if p.src[p.pos] != ']' {
			return nil, fmt.Errorf("section has more than one alternative")
		}
		sec.otherwise = otherwise
	}
	p.pos++ // ']'
	for _, part := range sec.then {
		if part.isRef {
			sec.refs = append(sec.refs, part.operand)
		}
	}
	return sec, nil
}
