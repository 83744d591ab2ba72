package actions

import (
	"strings"

	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/document"
)

// Selection picks an action by the text of one argument. The action found
// is run on all arguments; when none matches, the Default-th argument is
// rendered instead. Indices are 1-based.
type Selection struct {
	Index   int
	Default int
	Actions map[string]document.Action
}

func (a *Selection) Execute(doc *document.Document, opts, args []command.Node) error {
	if len(args) < a.Index || len(args) < a.Default || a.Index < 1 {
		return doc.Add(errorMarker("not enough arguments for selection"))
	}
	key, err := doc.Convert(args[a.Index-1])
	if err != nil {
		return err
	}
	if action, ok := a.Actions[strings.TrimSpace(key)]; ok {
		return action.Execute(doc, opts, args)
	}
	if a.Default < 1 {
		return doc.Add(errorMarker("no selection for '" + key + "'"))
	}
	return doc.Add(args[a.Default-1])
}

func errorMarker(message string) command.Node {
	return command.Texts("color", "error", message)
}
