// Package document drives rendering of command trees.
//
// A Document owns one buffer and dispatches command nodes through its action
// registry. Actions that need an isolated formatting scope render into a
// sub-document, which shares the registry, counters and footnote list of its
// root but has its own buffer and alignment, and splice the result back into
// the parent as literal text.
//
// Documents are not safe for concurrent use; create one per render.
package document

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/docrender/pkg/buffer"
	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/logging"
	"github.com/arthur-debert/docrender/pkg/registry"
)

const (
	// DefaultFootnoteRule is the width percentage of the rule above footnotes.
	DefaultFootnoteRule = 30
	// DefaultFootnoteColumns lays out footnotes as a marker and a text column.
	DefaultFootnoteColumns = "f4:L;100:L"

	maxDepth = 64
)

// Options configures a root document.
type Options struct {
	// Name identifies the backend in logs.
	Name string
	// Width is the line width; zero disables wrapping.
	Width int
	// Ignore matches substrings that take no columns, may be nil.
	Ignore *regexp.Regexp
	// Registry resolves command names. Nil means an empty registry.
	Registry Registry
	// Unknown is the fallback for names missing from the registry.
	Unknown UnknownPolicy
	// DM marks renders for a viewer allowed to see DM-only values.
	DM bool
	// FootnoteRule is the width percentage of the rule above footnotes.
	FootnoteRule int
	// FootnoteColumns is the column layout used for the footnote list.
	FootnoteColumns string
}

// Footnote is a deferred note collected while rendering.
type Footnote struct {
	Marker   string
	Text     command.Node
	Sequence int
}

// state is shared by a root document and all of its sub-documents.
type state struct {
	opts            Options
	footnotes       []Footnote
	footnoteCounter int
	counter         int
	depth           int
	errs            []error
	attributes      map[string]string
}

// Document renders command trees into text.
type Document struct {
	buffer *buffer.Buffer
	state  *state
	sub    bool
}

// New returns a root document.
func New(opts Options) *Document {
	if opts.Registry == nil {
		opts.Registry = registry.New[Action]()
	}
	if opts.FootnoteRule <= 0 {
		opts.FootnoteRule = DefaultFootnoteRule
	}
	if opts.FootnoteColumns == "" {
		opts.FootnoteColumns = DefaultFootnoteColumns
	}
	return &Document{
		buffer: buffer.New(opts.Width, opts.Ignore),
		state: &state{
			opts:       opts,
			attributes: make(map[string]string),
		},
	}
}

// Sub returns a sub-document of the same width.
func (d *Document) Sub() *Document {
	return d.SubWidth(d.buffer.Width())
}

// SubWidth returns a sub-document with its own buffer of the given width.
func (d *Document) SubWidth(width int) *Document {
	return &Document{
		buffer: d.buffer.Derive(width),
		state:  d.state,
		sub:    true,
	}
}

// IsSub reports whether d was created by Sub or SubWidth.
func (d *Document) IsSub() bool {
	return d.sub
}

// Name returns the backend name given in the options.
func (d *Document) Name() string {
	return d.state.opts.Name
}

// Width returns the line width of this document's buffer.
func (d *Document) Width() int {
	return d.buffer.Width()
}

// Alignment returns the alignment of this document's buffer.
func (d *Document) Alignment() buffer.Alignment {
	return d.buffer.Alignment()
}

// SetAlignment changes the alignment of lines completed from now on.
func (d *Document) SetAlignment(a buffer.Alignment) {
	d.buffer.SetAlignment(a)
}

// Registry returns the action registry.
func (d *Document) Registry() Registry {
	return d.state.opts.Registry
}

// DM reports whether the render is for a DM viewer.
func (d *Document) DM() bool {
	return d.state.opts.DM
}

// Ignore returns the pattern of zero-width substrings, possibly nil.
func (d *Document) Ignore() *regexp.Regexp {
	return d.buffer.Ignore()
}

// VisibleLength measures text the way this document's buffer does.
func (d *Document) VisibleLength(text string) int {
	return d.buffer.VisibleLength(text)
}

// AddText appends literal text.
func (d *Document) AddText(text string) {
	d.buffer.Add(text)
}

// EndLine terminates the current line unless it is empty.
func (d *Document) EndLine() {
	d.buffer.EndLine()
}

// Line pops the next completed line of this document's buffer.
func (d *Document) Line() (string, bool) {
	return d.buffer.Line()
}

// Add renders a node into the document. Errors from actions, arity
// violations in particular, are returned unchanged.
func (d *Document) Add(node command.Node) error {
	switch n := node.(type) {
	case nil:
		return nil
	case command.Literal:
		d.buffer.Add(n.Text)
		return nil
	case *command.Command:
		return d.addCommand(n)
	default:
		return errors.Newf(errors.ErrInternal, "unsupported node type %T", node)
	}
}

// AddAll renders nodes in order, stopping at the first error.
func (d *Document) AddAll(nodes ...command.Node) error {
	for _, n := range nodes {
		if err := d.Add(n); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) addCommand(c *command.Command) error {
	if c.IsSeq() {
		return d.AddAll(c.Arguments...)
	}

	action, ok := d.state.opts.Registry.Lookup(c.Name)
	if !ok {
		return d.unknown(c)
	}
	if action == nil {
		return nil
	}

	d.state.depth++
	defer func() { d.state.depth-- }()
	if d.state.depth > maxDepth {
		return errors.Newf(errors.ErrInternal, "commands nested deeper than %d", maxDepth).
			WithDetail("command", c.Name)
	}
	return action.Execute(d, c.Optionals, c.Arguments)
}

func (d *Document) unknown(c *command.Command) error {
	policy := d.state.opts.Unknown
	logger := logging.GetLogger("document")
	logger.Warn().
		Str("command", c.Name).
		Str("backend", d.state.opts.Name).
		Str("policy", policy.String()).
		Msg("No action for command")

	d.state.errs = append(d.state.errs,
		errors.Newf(errors.ErrUnknownCommand, "no action for command '%s'", c.Name).
			WithDetail("command", c.Name))

	switch policy {
	case EchoUnknown:
		d.buffer.Add(strings.TrimSuffix(c.String(), " "))
	case ContentsUnknown:
		if err := d.AddAll(c.Optionals...); err != nil {
			return err
		}
		return d.AddAll(c.Arguments...)
	}
	return nil
}

// Convert renders node into a fresh sub-document and returns its text.
func (d *Document) Convert(node command.Node) (string, error) {
	sub := d.Sub()
	if err := sub.Add(node); err != nil {
		return "", err
	}
	return sub.Contents(), nil
}

// Contents returns the buffered text of this document without footnotes.
func (d *Document) Contents() string {
	return d.buffer.Contents()
}

// Counter returns the running counter and increments it.
func (d *Document) Counter() int {
	c := d.state.counter
	d.state.counter++
	return c
}

// FootnoteCounter increments the footnote counter and returns it; the
// first call returns 1.
func (d *Document) FootnoteCounter() int {
	d.state.footnoteCounter++
	return d.state.footnoteCounter
}

// RegisterFootnote records a footnote and returns the marker to print in
// its place. An empty marker is replaced by the next footnote number.
func (d *Document) RegisterFootnote(marker string, text command.Node) string {
	if marker == "" {
		marker = strconv.Itoa(d.FootnoteCounter())
	}
	d.state.footnotes = append(d.state.footnotes, Footnote{
		Marker:   marker,
		Text:     text,
		Sequence: len(d.state.footnotes) + 1,
	})
	return marker
}

// Footnotes returns the footnotes registered so far, in order.
func (d *Document) Footnotes() []Footnote {
	return append([]Footnote(nil), d.state.footnotes...)
}

// Errors returns the non-fatal problems met while rendering.
func (d *Document) Errors() []error {
	return append([]error(nil), d.state.errs...)
}

// Attribute returns a document attribute.
func (d *Document) Attribute(name string) (string, bool) {
	v, ok := d.state.attributes[name]
	return v, ok
}

// SetAttribute sets a document attribute, visible to all sub-documents.
func (d *Document) SetAttribute(name, value string) {
	d.state.attributes[name] = value
}

// Finalize returns the rendered text. On a root document registered
// footnotes follow the body: a paragraph break, a rule and the list of
// markers and texts laid out as a table. Footnotes registered by footnote
// texts are listed after them. Finalize can be called repeatedly.
func (d *Document) Finalize() (string, error) {
	page := d.buffer.Contents()
	if d.sub || len(d.state.footnotes) == 0 {
		return page, nil
	}

	notes, err := d.renderFootnotes()
	if err != nil {
		return page, err
	}
	return page + notes, nil
}

func (d *Document) renderFootnotes() (string, error) {
	registered, counter := len(d.state.footnotes), d.state.footnoteCounter
	defer func() {
		d.state.footnotes = d.state.footnotes[:registered]
		d.state.footnoteCounter = counter
	}()

	sub := d.Sub()
	err := sub.AddAll(
		command.New("par"),
		command.New("hrule").WithOptionals(command.Text(strconv.Itoa(d.state.opts.FootnoteRule))),
	)
	if err != nil {
		return "", err
	}

	for done := 0; done < len(d.state.footnotes); {
		pending := d.state.footnotes[done:]
		done = len(d.state.footnotes)

		cells := []command.Node{command.Text(d.state.opts.FootnoteColumns)}
		for _, note := range pending {
			cells = append(cells, command.Text(note.Marker+")"), note.Text)
		}
		if err := sub.Add(command.New("table", cells...)); err != nil {
			return "", err
		}
	}
	return sub.Contents(), nil
}

// String returns Finalize's text, logging instead of returning errors.
func (d *Document) String() string {
	out, err := d.Finalize()
	if err != nil {
		logger := logging.GetLogger("document")
		logger.Error().Err(err).Msg("Failed to finalize document")
	}
	return out
}

// Render adds node and finalizes the document.
func (d *Document) Render(node command.Node) (string, error) {
	done := logging.LogOperationStart(logging.GetLogger("document"), "render")
	defer done()

	if err := d.Add(node); err != nil {
		return "", err
	}
	return d.Finalize()
}

// MustRender is Render for static content, panicking on errors.
func (d *Document) MustRender(node command.Node) string {
	out, err := d.Render(node)
	if err != nil {
		panic(err)
	}
	return out
}

// Write finalizes the document and writes it to w. The render completes in
// memory first; a failing writer is logged and reported as a WRITE error.
func (d *Document) Write(w io.Writer) error {
	out, err := d.Finalize()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		logger := logging.GetLogger("document")
		logger.Warn().Err(err).Str("backend", d.state.opts.Name).Msg("Failed to write rendered output")
		return errors.Wrap(err, errors.ErrWrite, "cannot write rendered output")
	}
	return nil
}
