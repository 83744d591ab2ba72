// Package command defines the command tree rendered by documents.
//
// A tree node is either literal text or a named command carrying ordered
// optional and required arguments, each of which is again a node:
//
//	\title{Goblin \super{1}}
//	\table{6:L;10:C}{cell}{cell}
//	\footnote[a]{text}
//
// Trees are immutable once built and are usually produced either by Parse
// from authored markup or by the template binder.
package command

import "strings"

// Node is a command tree node. It is implemented only by Literal and
// *Command; callers switch on the concrete type.
type Node interface {
	// String prints the node back as markup that Parse accepts.
	String() string
	node()
}

// Literal is plain text.
type Literal struct {
	Text string
}

// Command is a named command. A command with an empty name is a sequence:
// its arguments are rendered one after the other.
type Command struct {
	Name      string
	Optionals []Node
	Arguments []Node
}

func (Literal) node()  {}
func (*Command) node() {}

// Text returns a literal node.
func Text(text string) Literal {
	return Literal{Text: text}
}

// New returns a command with the given arguments and no optionals.
func New(name string, args ...Node) *Command {
	return &Command{Name: name, Arguments: args}
}

// Texts returns a command whose arguments are all literals.
func Texts(name string, args ...string) *Command {
	nodes := make([]Node, len(args))
	for i, arg := range args {
		nodes[i] = Text(arg)
	}
	return New(name, nodes...)
}

// WithOptionals returns a copy of c carrying opts as its optionals.
func (c *Command) WithOptionals(opts ...Node) *Command {
	return &Command{Name: c.Name, Optionals: opts, Arguments: c.Arguments}
}

// Seq groups nodes into a single node rendered in order. A single node is
// returned as is and no nodes yield an empty literal.
func Seq(nodes ...Node) Node {
	switch len(nodes) {
	case 0:
		return Text("")
	case 1:
		return nodes[0]
	default:
		return &Command{Arguments: nodes}
	}
}

// IsSeq reports whether c is an unnamed sequence.
func (c *Command) IsSeq() bool {
	return c.Name == ""
}

// String prints the literal with markup characters escaped.
func (l Literal) String() string {
	return escaper.Replace(l.Text)
}

// String prints the command as markup. Commands without any bracketed part
// are followed by a single space which Parse consumes again.
func (c *Command) String() string {
	var b strings.Builder
	if !c.IsSeq() {
		b.WriteByte('\\')
		b.WriteString(c.Name)
		for _, opt := range c.Optionals {
			b.WriteByte('[')
			b.WriteString(opt.String())
			b.WriteByte(']')
		}
	}
	for _, arg := range c.Arguments {
		if c.IsSeq() {
			b.WriteString(arg.String())
			continue
		}
		b.WriteByte('{')
		b.WriteString(arg.String())
		b.WriteByte('}')
	}
	if !c.IsSeq() && len(c.Optionals) == 0 && len(c.Arguments) == 0 {
		b.WriteByte(' ')
	}
	return b.String()
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`{`, `\{`,
	`}`, `\}`,
	`[`, `\[`,
	`]`, `\]`,
)

// Plain returns the literal text of a tree with all command names dropped,
// arguments concatenated and optionals ignored.
func Plain(n Node) string {
	var b strings.Builder
	writePlain(&b, n)
	return b.String()
}

func writePlain(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case Literal:
		b.WriteString(n.Text)
	case *Command:
		for _, arg := range n.Arguments {
			writePlain(b, arg)
		}
	}
}
