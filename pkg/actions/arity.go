package actions

import (
	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/errors"
)

func exactly(name string, n int, args []command.Node) error {
	if len(args) != n {
		return errors.Arity(name, plural("exactly", n), len(args))
	}
	return nil
}

func atLeast(name string, n int, args []command.Node) error {
	if len(args) < n {
		return errors.Arity(name, plural("at least", n), len(args))
	}
	return nil
}

func plural(qualifier string, n int) string {
	switch n {
	case 1:
		return qualifier + " one argument"
	case 2:
		return qualifier + " two arguments"
	default:
		return qualifier + " " + itoa(n) + " arguments"
	}
}
