package actions

import (
	"strconv"

	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/arthur-debert/docrender/pkg/errors"
)

// Default renders all optionals and then all arguments, in order.
type Default struct{}

func (Default) Execute(doc *document.Document, opts, args []command.Node) error {
	if err := doc.AddAll(opts...); err != nil {
		return err
	}
	return doc.AddAll(args...)
}

// Drop renders nothing.
type Drop struct{}

func (Drop) Execute(*document.Document, []command.Node, []command.Node) error {
	return nil
}

// Identity renders a selection of its operands. Non-negative indices name
// arguments (1-based); negative ones name optionals, -1 being the first.
// An index out of range is skipped. Without any index nothing is rendered.
type Identity struct {
	Order []int
}

// NewIdentity returns an Identity rendering the given operands.
func NewIdentity(order ...int) *Identity {
	return &Identity{Order: order}
}

func (a *Identity) Execute(doc *document.Document, opts, args []command.Node) error {
	if err := atLeast("identity", 1, args); err != nil {
		return err
	}
	for _, n := range a.Order {
		var node command.Node
		switch {
		case n < 0 && -n-1 < len(opts):
			node = opts[-n-1]
		case n > 0 && n <= len(args):
			node = args[n-1]
		default:
			continue
		}
		if err := doc.Add(node); err != nil {
			return err
		}
	}
	return nil
}

// Wrap is the text placed around one optional or argument of a Delimiter.
// A skipped position is not rendered at all.
type Wrap struct {
	Before string
	After  string
	Skip   bool
}

// Delimiter emits Start, then the optionals and arguments each wrapped in
// the Wrap at its position (cycling when there are more operands than
// wraps), then End. Operands of a kind with no wraps are not rendered.
type Delimiter struct {
	Start     string
	End       string
	Optionals []Wrap
	Arguments []Wrap
}

// NewDelimiter returns a Delimiter emitting only start and end.
func NewDelimiter(start, end string) *Delimiter {
	return &Delimiter{Start: start, End: end}
}

// Around returns a Delimiter that wraps every argument in before and after.
func Around(before, after string) *Delimiter {
	return &Delimiter{Arguments: []Wrap{{Before: before, After: after}}}
}

func (a *Delimiter) Execute(doc *document.Document, opts, args []command.Node) error {
	doc.AddText(a.Start)
	if err := wrapAll(doc, a.Optionals, opts); err != nil {
		return err
	}
	if err := wrapAll(doc, a.Arguments, args); err != nil {
		return err
	}
	doc.AddText(a.End)
	return nil
}

func wrapAll(doc *document.Document, wraps []Wrap, nodes []command.Node) error {
	if len(wraps) == 0 {
		return nil
	}
	for i, node := range nodes {
		w := wraps[i%len(wraps)]
		if w.Skip {
			continue
		}
		doc.AddText(w.Before)
		if err := doc.Add(node); err != nil {
			return err
		}
		doc.AddText(w.After)
	}
	return nil
}

// Multi chains actions. The first runs on the command's operands; each
// following one gets the previous output as its only argument.
type Multi struct {
	Actions []document.Action
}

// NewMulti chains the given actions.
func NewMulti(actions ...document.Action) *Multi {
	return &Multi{Actions: actions}
}

func (a *Multi) Execute(doc *document.Document, opts, args []command.Node) error {
	if len(a.Actions) < 2 {
		return errors.Newf(errors.ErrInternal, "multi needs at least two actions, has %d", len(a.Actions))
	}
	if err := atLeast("multi", 1, args); err != nil {
		return err
	}

	sub := doc.Sub()
	if err := a.Actions[0].Execute(sub, opts, args); err != nil {
		return err
	}
	for _, next := range a.Actions[1:] {
		previous := sub.Contents()
		sub = doc.Sub()
		if err := next.Execute(sub, nil, []command.Node{command.Text(previous)}); err != nil {
			return err
		}
	}
	doc.AddText(sub.Contents())
	return nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
