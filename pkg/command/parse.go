package command

import (
	"strings"

	"github.com/arthur-debert/docrender/pkg/errors"
)

// specialNames are the single-character command names, as in \*{x}.
const specialNames = "<>=!~*#$%@?+|"

// escapable characters are taken literally after a backslash.
const escapable = "\\{}[]"

// Parse reads authored markup into a command tree.
//
// Commands are written \name[opt]...{arg}...; names are word characters or
// a single character of <>=!~*#$%@?+|. A backslash escapes \ { } [ and ].
// Unescaped brackets in text are kept literally as long as they balance.
// A command without brackets swallows one following space.
func Parse(input string) (Node, error) {
	p := &parser{input: input}
	nodes, err := p.sequence(0)
	if err != nil {
		return nil, err
	}
	return Seq(nodes...), nil
}

// MustParse is Parse for static markup, panicking on errors.
func MustParse(input string) Node {
	n, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return n
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrParse, format, args...).
		WithDetail("position", p.pos).
		WithDetail("input", p.input)
}

// sequence parses nodes up to the closing byte term (0 for end of input).
// The terminator itself is left for the caller.
func (p *parser) sequence(term byte) ([]Node, error) {
	var (
		nodes []Node
		text  strings.Builder
		depth int
	)
	open := byte('{')
	if term == ']' {
		open = '['
	}
	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, Text(text.String()))
			text.Reset()
		}
	}

	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch {
		case c == term && depth == 0:
			flush()
			return nodes, nil
		case c == '\\':
			next := byte(0)
			if p.pos+1 < len(p.input) {
				next = p.input[p.pos+1]
			}
			switch {
			case next != 0 && strings.IndexByte(escapable, next) >= 0:
				text.WriteByte(next)
				p.pos += 2
			case isWord(next) || (next != 0 && strings.IndexByte(specialNames, next) >= 0):
				flush()
				cmd, err := p.command()
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, cmd)
			default:
				text.WriteByte(c)
				p.pos++
			}
		case term != 0 && c == open:
			depth++
			text.WriteByte(c)
			p.pos++
		case term != 0 && c == term:
			depth--
			text.WriteByte(c)
			p.pos++
		default:
			text.WriteByte(c)
			p.pos++
		}
	}

	if term != 0 {
		return nil, p.errorf("missing closing '%c'", term)
	}
	flush()
	return nodes, nil
}

// command parses \name[...]{...} starting at the backslash.
func (p *parser) command() (*Command, error) {
	p.pos++ // backslash
	start := p.pos
	if strings.IndexByte(specialNames, p.peek()) >= 0 {
		p.pos++
	} else {
		for isWord(p.peek()) {
			p.pos++
		}
	}
	cmd := &Command{Name: p.input[start:p.pos]}

	for p.peek() == '[' {
		arg, err := p.bracketed(']')
		if err != nil {
			return nil, err
		}
		cmd.Optionals = append(cmd.Optionals, arg)
	}
	for p.peek() == '{' {
		arg, err := p.bracketed('}')
		if err != nil {
			return nil, err
		}
		cmd.Arguments = append(cmd.Arguments, arg)
	}

	if len(cmd.Optionals) == 0 && len(cmd.Arguments) == 0 && p.peek() == ' ' {
		p.pos++
	}
	return cmd, nil
}

func (p *parser) bracketed(term byte) (Node, error) {
	p.pos++ // opening bracket
	nodes, err := p.sequence(term)
	if err != nil {
		return nil, err
	}
	p.pos++ // closing bracket
	return Seq(nodes...), nil
}

func isWord(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
