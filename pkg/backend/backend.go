// Package backend assembles the action tables and documents of the
// rendering backends.
//
// Each backend's table is built once from layers: ASCII is the base, ANSI
// copies it and overrides the entries a terminal can style, and HTML has
// a table of its own. Callers may add layers on top, for example the
// domain catalogs. Built tables are frozen and safe to share.
package backend

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/logging"
	"github.com/arthur-debert/docrender/pkg/registry"
	"github.com/arthur-debert/docrender/pkg/styles"
)

// Kind names a backend.
type Kind string

const (
	ASCII Kind = "ascii"
	ANSI  Kind = "ansi"
	HTML  Kind = "html"
)

// Kinds returns all backends.
func Kinds() []Kind {
	return []Kind{ASCII, ANSI, HTML}
}

// ParseKind parses a backend name.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Kinds() {
		if k == kind {
			return k, nil
		}
	}
	return "", errors.Newf(errors.ErrBackend, "unknown backend %q", s).WithDetail("backend", s)
}

// DefaultWidth is the line width a backend wraps at unless told otherwise.
func DefaultWidth(kind Kind) int {
	if kind == HTML {
		return 0
	}
	return 80
}

// Settings tune the construction of a backend's action table.
type Settings struct {
	// Theme provides the ANSI palette; nil means the default theme.
	Theme *styles.Theme
	// LinkSuffix is appended to HTML link targets.
	LinkSuffix string
}

// Layers returns the layers of kind's action table, base first.
func Layers(kind Kind, settings Settings) ([]document.Layer, error) {
	theme := settings.Theme
	if theme == nil {
		theme = styles.Default()
	}
	switch kind {
	case ASCII:
		return []document.Layer{asciiLayer()}, nil
	case ANSI:
		return []document.Layer{asciiLayer(), ansiLayer(theme)}, nil
	case HTML:
		return []document.Layer{htmlLayer(settings.LinkSuffix)}, nil
	default:
		return nil, errors.Newf(errors.ErrBackend, "unknown backend %q", kind)
	}
}

// Build returns kind's frozen action table with extra layers on top.
func Build(kind Kind, settings Settings, extra ...document.Layer) (document.Registry, error) {
	layers, err := Layers(kind, settings)
	if err != nil {
		return nil, err
	}
	reg, err := registry.Build(append(layers, extra...)...)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackend, "cannot build %s action table", kind)
	}

	logger := logging.GetLogger("backend")
	logger.Debug().
		Str("backend", string(kind)).
		Int("layers", len(layers)+len(extra)).
		Int("actions", reg.Count()).
		Msg("Built action table")
	return reg, nil
}

var defaults = map[Kind]func() (document.Registry, error){}

func init() {
	for _, kind := range Kinds() {
		defaults[kind] = sync.OnceValues(func() (document.Registry, error) {
			return Build(kind, Settings{})
		})
	}
}

// Registry returns the shared default action table of kind.
func Registry(kind Kind) (document.Registry, error) {
	build, ok := defaults[kind]
	if !ok {
		return nil, errors.Newf(errors.ErrBackend, "unknown backend %q", kind)
	}
	return build()
}

var ansiIgnore = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(DefaultANSIIgnore)
})

// Options describe a document to create.
type Options struct {
	Kind Kind
	// Width of the document; negative means DefaultWidth.
	Width int
	// Ignore overrides the backend's pattern of zero-width text.
	Ignore string
	// Registry overrides the backend's default action table.
	Registry document.Registry

	Unknown         document.UnknownPolicy
	DM              bool
	FootnoteRule    int
	FootnoteColumns string
}

// NewDocument creates a root document for a backend.
func NewDocument(opts Options) (*document.Document, error) {
	reg := opts.Registry
	if reg == nil {
		var err error
		if reg, err = Registry(opts.Kind); err != nil {
			return nil, err
		}
	}

	width := opts.Width
	if width < 0 {
		width = DefaultWidth(opts.Kind)
	}

	var ignore *regexp.Regexp
	switch {
	case opts.Ignore != "":
		re, err := regexp.Compile(opts.Ignore)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid ignore pattern %q", opts.Ignore)
		}
		ignore = re
	case opts.Kind == ANSI:
		ignore = ansiIgnore()
	}

	return document.New(document.Options{
		Name:            string(opts.Kind),
		Width:           width,
		Ignore:          ignore,
		Registry:        reg,
		Unknown:         opts.Unknown,
		DM:              opts.DM,
		FootnoteRule:    opts.FootnoteRule,
		FootnoteColumns: opts.FootnoteColumns,
	}), nil
}

// Describe lists the command names of a table with the type of the action
// bound to each, sorted by name.
func Describe(reg document.Registry) [][2]string {
	names := reg.List()
	sort.Strings(names)
	rows := make([][2]string, 0, len(names))
	for _, name := range names {
		action, _ := reg.Lookup(name)
		rows = append(rows, [2]string{name, actionType(action)})
	}
	return rows
}

func actionType(a document.Action) string {
	if a == nil {
		return "none"
	}
	return strings.TrimPrefix(strings.TrimPrefix(fmt.Sprintf("%T", a), "*"), "actions.")
}
