package actions

import (
	"strconv"

	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/dlclark/regexp2"
)

var (
	optionalRef   = regexp2.MustCompile(`(?<!\\)%(\d+)`, regexp2.None)
	optionalGroup = regexp2.MustCompile(`\[\[((?:(?!\]\]).)*?)\]\]`, regexp2.Singleline)
	reference     = regexp2.MustCompile(`\\([$%@])|\$count\b|%(\d+)|([$@])(\d+)`, regexp2.None)
)

// Pattern substitutes operands into a template:
//
//	%n       the n-th optional, rendered
//	$n       the n-th argument, rendered; $0 is all arguments
//	@n       the n-th argument as markup
//	$count   the document counter
//	[[...]]  dropped when an optional inside it is missing
//
// A sigil preceded by a backslash is kept literally. References to missing
// arguments are left in place. With WithCommands set the result is parsed
// as markup and rendered; otherwise it is added as text.
type Pattern struct {
	Template     string
	WithCommands bool
}

// NewPattern returns a Pattern adding its result as text.
func NewPattern(template string) *Pattern {
	return &Pattern{Template: template}
}

// NewCommandPattern returns a Pattern whose result is rendered as markup.
func NewCommandPattern(template string) *Pattern {
	return &Pattern{Template: template, WithCommands: true}
}

func (a *Pattern) Execute(doc *document.Document, opts, args []command.Node) error {
	out, err := a.expand(doc, opts, args)
	if err != nil {
		return err
	}

	if !a.WithCommands {
		doc.AddText(out)
		return nil
	}
	node, err := command.Parse(out)
	if err != nil {
		return err
	}
	return doc.Add(node)
}

// expand substitutes the template in one pass, so text produced by an
// operand is never scanned for references or escapes again.
func (a *Pattern) expand(doc *document.Document, opts, args []command.Node) (string, error) {
	var renderErr error
	render := func(n command.Node) string {
		if renderErr != nil {
			return ""
		}
		text, err := doc.Convert(n)
		if err != nil {
			renderErr = err
			return ""
		}
		if a.WithCommands {
			return command.Text(text).String()
		}
		return text
	}

	template, err := optionalGroup.ReplaceFunc(a.Template, func(m regexp2.Match) string {
		inner := m.GroupByNumber(1).String()
		for ref, _ := optionalRef.FindStringMatch(inner); ref != nil; ref, _ = optionalRef.FindNextMatch(ref) {
			n, _ := strconv.Atoi(ref.GroupByNumber(1).String())
			if n < 1 || n > len(opts) {
				return ""
			}
		}
		return inner
	}, -1, -1)
	if err != nil {
		return "", err
	}

	rendered := make(map[int]string, len(args))
	out, err := reference.ReplaceFunc(template, func(m regexp2.Match) string {
		switch {
		case m.GroupByNumber(1).Length > 0:
			if a.WithCommands {
				return m.String()
			}
			return m.GroupByNumber(1).String()
		case m.String() == "$count":
			return strconv.Itoa(doc.Counter())
		case m.GroupByNumber(2).Length > 0:
			n, _ := strconv.Atoi(m.GroupByNumber(2).String())
			if n < 1 || n > len(opts) {
				return ""
			}
			return render(opts[n-1])
		}

		n, _ := strconv.Atoi(m.GroupByNumber(4).String())
		if n > len(args) {
			return m.String()
		}
		if m.GroupByNumber(3).String() == "@" {
			if n == 0 {
				return command.Seq(args...).String()
			}
			return args[n-1].String()
		}
		if text, ok := rendered[n]; ok {
			return text
		}
		var text string
		if n == 0 {
			text = render(command.Seq(args...))
		} else {
			text = render(args[n-1])
		}
		rendered[n] = text
		return text
	}, -1, -1)
	if err != nil {
		return "", err
	}
	if renderErr != nil {
		return "", renderErr
	}
	return out, nil
}
