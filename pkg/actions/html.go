package actions

import (
	"strings"

	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/beevik/etree"
)

const contentMark = "@@content@@"

// Tags returns the opening and closing tag of an HTML element with the
// given attributes, passed as key, value pairs. Attributes with an empty
// value are left out; values are escaped.
func Tags(tag string, attrs ...string) (open, close string) {
	doc := etree.NewDocument()
	el := doc.CreateElement(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] != "" {
			el.CreateAttr(attrs[i], attrs[i+1])
		}
	}
	el.SetText(contentMark)

	out, err := doc.WriteToString()
	if err != nil {
		return "<" + tag + ">", "</" + tag + ">"
	}
	i := strings.Index(out, contentMark)
	return out[:i], out[i+len(contentMark):]
}

// classes joins non-empty CSS class names.
func classes(names ...string) string {
	var kept []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, " ")
}

// Element wraps its arguments in an HTML element. The first optional, if
// given, adds CSS classes to Class.
type Element struct {
	Tag   string
	Class string
}

// NewElement returns an Element for tag with the given classes.
func NewElement(tag string, class ...string) *Element {
	return &Element{Tag: tag, Class: classes(class...)}
}

func (a *Element) Execute(doc *document.Document, opts, args []command.Node) error {
	class := a.Class
	if len(opts) > 0 {
		extra, err := doc.Convert(opts[0])
		if err != nil {
			return err
		}
		class = classes(class, extra)
	}

	open, close := Tags(a.Tag, "class", class)
	doc.AddText(open)
	if err := doc.AddAll(args...); err != nil {
		return err
	}
	doc.AddText(close)
	return nil
}

// Link renders \link{text}{target} as an anchor to Prefix+target+Suffix.
// Without a target the text itself is the target. Target, when set,
// rewrites the target first. The first optional adds a CSS class to Class.
type Link struct {
	Prefix string
	Suffix string
	Class  string
	Target func(string) string
}

func (a *Link) Execute(doc *document.Document, opts, args []command.Node) error {
	if err := atLeast("link", 1, args); err != nil {
		return err
	}
	targetNode := args[0]
	if len(args) > 1 {
		targetNode = args[1]
	}
	target, err := doc.Convert(targetNode)
	if err != nil {
		return err
	}
	target = strings.TrimSpace(target)
	if a.Target != nil {
		target = a.Target(target)
	}
	class := a.Class
	if len(opts) > 0 {
		extra, err := doc.Convert(opts[0])
		if err != nil {
			return err
		}
		class = classes(class, extra)
	}

	open, close := Tags("a", "class", class, "href", a.Prefix+target+a.Suffix)
	doc.AddText(open)
	if err := doc.Add(args[0]); err != nil {
		return err
	}
	doc.AddText(close)
	return nil
}

// HTMLTable renders a column layout and its cells as an HTML table. Column
// names become cell classes; titles, when any column has one, form a
// header row. The first optional adds classes to the table.
type HTMLTable struct{}

func (HTMLTable) Execute(doc *document.Document, opts, args []command.Node) error {
	if err := atLeast("table", 1, args); err != nil {
		return err
	}
	if len(args) == 1 {
		return nil
	}
	layout, err := doc.Convert(args[0])
	if err != nil {
		return err
	}
	columns := ParseColumns(layout)

	class := ""
	if len(opts) > 0 {
		if class, err = doc.Convert(opts[0]); err != nil {
			return err
		}
	}
	tableOpen, tableClose := Tags("table", "class", classes(class))
	doc.AddText("\n" + tableOpen)

	if hasTitles(columns) {
		rowOpen, rowClose := Tags("tr", "class", "title")
		doc.AddText(rowOpen)
		for _, c := range columns {
			open, close := Tags("th", "class", classes(c.Name))
			doc.AddText(open + c.Title + close)
		}
		doc.AddText(rowClose)
	}

	rowOpen, rowClose := Tags("tr")
	cells := args[1:]
	for i, cell := range cells {
		col := columns[i%len(columns)]
		if i%len(columns) == 0 {
			doc.AddText(rowOpen)
		}
		open, close := Tags("td", "class", classes(col.Name, "align-"+col.Alignment.String()))
		doc.AddText(open + strings.ReplaceAll(col.Leader, "|", ""))
		if err := doc.Add(cell); err != nil {
			return err
		}
		doc.AddText(strings.ReplaceAll(col.Trailer, "|", "") + close)
		if i%len(columns) == len(columns)-1 || i == len(cells)-1 {
			doc.AddText(rowClose)
		}
	}
	doc.AddText(tableClose + "\n")
	return nil
}

func hasTitles(columns []Column) bool {
	for _, c := range columns {
		if c.Title != "" {
			return true
		}
	}
	return false
}
