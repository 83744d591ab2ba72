package document

import (
	"strings"

	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/registry"
)

// Action renders one command into a document. Optionals and arguments are
// handed over unrendered: an action renders them with Document.Add or
// Document.Convert, or into a sub-document, as its formatting requires.
//
// Actions are configured at construction and hold no render state, so one
// action value serves any number of concurrent documents.
type Action interface {
	Execute(doc *Document, optionals, arguments []command.Node) error
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(doc *Document, optionals, arguments []command.Node) error

// Execute calls f.
func (f ActionFunc) Execute(doc *Document, optionals, arguments []command.Node) error {
	return f(doc, optionals, arguments)
}

// Registry maps command names to actions.
type Registry = registry.Registry[Action]

// Layer is one named set of registry entries.
type Layer = registry.Layer[Action]

// UnknownPolicy decides what happens to commands missing from the registry.
type UnknownPolicy int

const (
	// ContentsUnknown drops the command name and renders its optionals,
	// then its arguments.
	ContentsUnknown UnknownPolicy = iota
	// DropUnknown discards the command and its arguments.
	DropUnknown
	// EchoUnknown writes the command's markup as literal text.
	EchoUnknown
)

// String returns the configuration name of the policy
func (p UnknownPolicy) String() string {
	switch p {
	case ContentsUnknown:
		return "contents"
	case DropUnknown:
		return "drop"
	case EchoUnknown:
		return "echo"
	default:
		return "unknown"
	}
}

// ParseUnknownPolicy parses "contents", "drop" or "echo". An empty name
// is "contents".
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "contents", "":
		return ContentsUnknown, nil
	case "drop":
		return DropUnknown, nil
	case "echo":
		return EchoUnknown, nil
	default:
		return ContentsUnknown, errors.Newf(errors.ErrInvalidInput, "unknown command policy %q", s)
	}
}
