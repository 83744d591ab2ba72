package actions

import (
	"strings"

	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/document"
)

// Palette resolves color names to the escape sequences that start and end
// them.
type Palette interface {
	Sequence(name string) (start, end string, ok bool)
}

// Color renders \color{name}{text} as text wrapped in the palette's
// sequences for name. Names the palette does not know render the text
// alone.
type Color struct {
	Palette Palette
}

func (a *Color) Execute(doc *document.Document, _, args []command.Node) error {
	if err := exactly("color", 2, args); err != nil {
		return err
	}
	name, err := doc.Convert(args[0])
	if err != nil {
		return err
	}
	start, end, ok := a.Palette.Sequence(strings.TrimSpace(name))
	if !ok {
		return doc.Add(args[1])
	}
	doc.AddText(start)
	if err := doc.Add(args[1]); err != nil {
		return err
	}
	doc.AddText(end)
	return nil
}
