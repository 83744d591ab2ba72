package actions

import (
	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/document"
)

// Footnote registers its argument as a footnote and prints the marker as
// \super{marker}. The first optional, when given, is the marker.
type Footnote struct{}

func (Footnote) Execute(doc *document.Document, opts, args []command.Node) error {
	if err := exactly("footnote", 1, args); err != nil {
		return err
	}
	marker := ""
	if len(opts) > 0 {
		text, err := doc.Convert(opts[0])
		if err != nil {
			return err
		}
		marker = text
	}
	marker = doc.RegisterFootnote(marker, args[0])
	return doc.Add(command.Texts("super", marker))
}
