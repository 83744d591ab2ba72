package template

import (
	"strings"

	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Formattable is a value that can be rendered.
type Formattable interface {
	Format() command.Node
}

// Text is a plain text value.
type Text string

func (t Text) Format() command.Node {
	return command.Text(string(t))
}

// Markup is a value that is already a command tree.
type Markup struct {
	Node command.Node
}

func (m Markup) Format() command.Node {
	return m.Node
}

// ValueSource resolves named values. dm tells whether the viewer may see
// values reserved to the game master.
type ValueSource interface {
	ComputeValue(name string, dm bool) (Formattable, bool)
}

// ValueFunc adapts a function to ValueSource.
type ValueFunc func(name string, dm bool) (Formattable, bool)

func (f ValueFunc) ComputeValue(name string, dm bool) (Formattable, bool) {
	return f(name, dm)
}

// Binder builds command trees from templates.
type Binder struct {
	Source ValueSource
	// DM is passed to the value source.
	DM bool
	// Type is the kind of entry rendered; it styles labeled values.
	Type string
}

// Bind converts a template into a command tree. References are replaced by
// the markup of their values, so they may sit inside commands of the
// template text. Missing values show as error markers; only malformed
// template markup fails.
func (b *Binder) Bind(t *Template) (command.Node, error) {
	var markup strings.Builder
	for _, token := range t.Tokens() {
		if token.IsLiteral() {
			markup.WriteString(token.Text)
			continue
		}
		if node := b.reference(token); node != nil {
			markup.WriteString(node.String())
		}
	}

	node, err := command.Parse(markup.String())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplate, "cannot bind template").
			WithDetail("template", t.Text())
	}
	return node, nil
}

// BindText binds text through the process-wide token cache.
func (b *Binder) BindText(text string) (command.Node, error) {
	return b.Bind(Shared(text))
}

func (b *Binder) reference(token Token) command.Node {
	switch token.Sigil {
	case SigilValue:
		if value, ok := b.compute(token.Name); ok {
			return value.Format()
		}
		return errorNode(" * " + token.Name + " * ")
	case SigilLabeled:
		return b.labeled(token.Name)
	default:
		logger := logging.GetLogger("template")
		logger.Warn().
			Str("sigil", string(token.Sigil)).
			Str("name", token.Name).
			Msg("Reserved reference dropped")
		return nil
	}
}

func (b *Binder) compute(name string) (Formattable, bool) {
	if b.Source == nil {
		return nil, false
	}
	value, ok := b.Source.ComputeValue(name, b.DM)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func (b *Binder) labeled(name string) command.Node {
	content := errorNode(" * unknown * ")
	if value, ok := b.compute(name); ok {
		content = value.Format()
	}

	label := Label(name)

	container := "value-label-container"
	if b.Type != "" {
		container += " back-" + b.Type
	}
	value := command.New("value",
		command.New("divider", command.Text(container),
			command.New("divider", command.Text("value-label"), command.Text(label))),
		command.New("divider", command.Text("value-content"), content),
	)
	if b.Type != "" {
		value = value.WithOptionals(command.Text(b.Type))
	}
	return value
}

// Label turns a value name into the label shown next to it: "hit_dice"
// becomes "Hit Dice" and the word "dm" becomes "DM". Leading '<' and '>'
// are dropped.
func Label(name string) string {
	words := strings.FieldsFunc(strings.TrimLeft(name, "<>"), func(r rune) bool {
		return r == '_' || r == ' '
	})
	title := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		if strings.EqualFold(w, "dm") {
			words[i] = "DM"
		} else {
			words[i] = title.String(w)
		}
	}
	return strings.Join(words, " ")
}

func errorNode(message string) command.Node {
	return command.Texts("color", "error", message)
}
