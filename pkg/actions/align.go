package actions

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/arthur-debert/docrender/pkg/buffer"
	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/document"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Align renders its argument as a block with the given alignment.
type Align struct {
	Alignment buffer.Alignment
}

// NewAlign returns an Align action.
func NewAlign(a buffer.Alignment) *Align {
	return &Align{Alignment: a}
}

func (a *Align) Execute(doc *document.Document, _, args []command.Node) error {
	if err := exactly("align", 1, args); err != nil {
		return err
	}

	sub := doc.Sub()
	sub.SetAlignment(a.Alignment)
	if err := sub.Add(args[0]); err != nil {
		return err
	}
	sub.AddText("\n")

	contents := sub.Contents()
	if strings.HasSuffix(contents, "\n\n") {
		contents = contents[:len(contents)-1]
	}
	doc.AddText(contents)
	return nil
}

// UpperCase renders its argument upper-cased. Zero-width sequences matched
// by the document's ignore pattern are left untouched.
type UpperCase struct{}

func (UpperCase) Execute(doc *document.Document, _, args []command.Node) error {
	if err := exactly("uppercase", 1, args); err != nil {
		return err
	}
	text, err := doc.Convert(args[0])
	if err != nil {
		return err
	}
	doc.AddText(mapVisible(doc, text, cases.Upper(language.Und).String))
	return nil
}

// mapVisible applies f to the parts of text outside ignore matches.
func mapVisible(doc *document.Document, text string, f func(string) string) string {
	ignore := doc.Ignore()
	if ignore == nil {
		return f(text)
	}
	var b strings.Builder
	last := 0
	for _, m := range ignore.FindAllStringIndex(text, -1) {
		b.WriteString(f(text[last:m[0]]))
		b.WriteString(text[m[0]:m[1]])
		last = m[1]
	}
	b.WriteString(f(text[last:]))
	return b.String()
}

// DefaultRuleWidth is the rule length used on documents without a width.
const DefaultRuleWidth = 40

// Hrule draws a horizontal rule on a line of its own. The first optional
// is the rule's length as a percentage of the document width.
type Hrule struct{}

func (Hrule) Execute(doc *document.Document, opts, _ []command.Node) error {
	width := doc.Width()
	if width <= 0 {
		width = DefaultRuleWidth
	}
	if len(opts) > 0 {
		text, err := doc.Convert(opts[0])
		if err != nil {
			return err
		}
		if percent, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(text, "%"))); err == nil && percent > 0 {
			width = width * percent / 100
		}
	}
	if width < 1 {
		width = 1
	}
	doc.AddText("\n" + strings.Repeat("-", width) + "\n")
	return nil
}

// List renders each argument as an item behind Bullet, continuation lines
// indented to the bullet's width.
type List struct {
	Bullet string
}

// NewList returns a List using bullet.
func NewList(bullet string) *List {
	return &List{Bullet: bullet}
}

func (a *List) Execute(doc *document.Document, _, args []command.Node) error {
	if err := atLeast("list", 1, args); err != nil {
		return err
	}

	bulletWidth := doc.VisibleLength(a.Bullet)
	width := 0
	if doc.Width() > 0 {
		width = max(2, doc.Width()-bulletWidth)
	}
	indent := strings.Repeat(" ", bulletWidth)

	for i, item := range args {
		if i > 0 {
			doc.AddText("\n")
		}
		doc.AddText(a.Bullet)

		sub := doc.SubWidth(width)
		if err := sub.Add(item); err != nil {
			return err
		}
		for line, ok := sub.Line(); ok; line, ok = sub.Line() {
			doc.AddText(line + "\n" + indent)
		}
		doc.AddText(sub.Contents())
	}
	return nil
}

// Pad renders its argument trimmed, with every blank turned into Char and
// Char added at both ends.
type Pad struct {
	Char rune
}

func (a *Pad) Execute(doc *document.Document, _, args []command.Node) error {
	if err := exactly("pad", 1, args); err != nil {
		return err
	}
	text, err := doc.Convert(args[0])
	if err != nil {
		return err
	}
	padded := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return a.Char
		}
		return r
	}, strings.TrimSpace(text))
	doc.AddText(string(a.Char) + padded + string(a.Char))
	return nil
}
