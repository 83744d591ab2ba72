package actions

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/docrender/pkg/buffer"
	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/arthur-debert/docrender/pkg/logging"
)

// Column is one column of a table layout.
type Column struct {
	// Width is a proportional share, or a fixed width when negative.
	Width     int
	Alignment buffer.Alignment
	Leader    string
	Trailer   string
	Name      string
	Title     string
}

var (
	columnName  = regexp.MustCompile(`\((.*?)\)`)
	columnTitle = regexp.MustCompile(`\[-?(.*?)\]`)
)

// ParseColumns parses a table layout: columns separated by ';', each
// "width:align,leader,trailer" with every part optional. A width prefixed
// with 'f' is fixed. "(name)" and "[title]" may appear anywhere in a
// column and are taken out before the rest is read.
func ParseColumns(layout string) []Column {
	parts := strings.Split(layout, ";")
	columns := make([]Column, 0, len(parts))
	for _, part := range parts {
		col := Column{Width: 1}
		if m := columnName.FindStringSubmatch(part); m != nil {
			col.Name = m[1]
			part = strings.Replace(part, m[0], "", 1)
		}
		if m := columnTitle.FindStringSubmatch(part); m != nil {
			col.Title = m[1]
			part = strings.Replace(part, m[0], "", 1)
		}

		if pos := strings.IndexByte(part, ':'); pos >= 0 {
			if pos > 0 {
				col.Width = parseWidth(part[:pos])
			}
			part = part[pos+1:]
		}

		fields := strings.Split(part, ",")
		if a, err := buffer.ParseAlignment(fields[0]); err == nil {
			col.Alignment = a
		}
		if len(fields) >= 2 {
			col.Leader = fields[1]
		}
		if len(fields) >= 3 {
			col.Trailer = fields[2]
		}
		columns = append(columns, col)
	}
	return columns
}

func parseWidth(s string) int {
	fixed := strings.HasPrefix(s, "f")
	w, err := strconv.Atoi(strings.TrimPrefix(s, "f"))
	if err != nil {
		logger := logging.GetLogger("actions")
		logger.Warn().Str("width", s).Msg("Invalid column width ignored")
		return 1
	}
	if fixed {
		return -w
	}
	return w
}

// Layout computes the width of every column for a table of total visible
// width. Fixed columns and columns whose share would drop below one get
// their own width; the rest is split proportionally and what rounding
// leaves over is spread from the last column backwards. Columns are then
// narrowed from the last one until a row fits total.
//
// A total of zero or less is unbounded: proportional columns get width 0
// and are never wrapped.
func Layout(doc *document.Document, columns []Column, total int) []int {
	if total <= 0 {
		return unbounded(columns)
	}

	widths := 0
	for _, c := range columns {
		widths += max(1, abs(c.Width))
		total -= doc.VisibleLength(c.Leader) + doc.VisibleLength(c.Trailer)
	}
	available := total

	fixed := 0
	adjusted := make([]int, len(columns))
	for i, c := range columns {
		if widths > 0 && c.Width*total/widths >= 1 {
			adjusted[i] = c.Width
			continue
		}
		fixed++
		diff := 1
		if c.Width < 0 {
			diff = max(1, -c.Width)
			adjusted[i] = c.Width
		} else {
			adjusted[i] = -1
		}
		total -= diff
		widths -= diff
	}

	rest := total
	for i := range adjusted {
		if adjusted[i] > 0 {
			adjusted[i] = max(1, adjusted[i]*total/widths)
			rest -= adjusted[i]
		}
	}

	for i, j := len(adjusted), len(adjusted)-fixed; i > 0; i, j = i-1, j-1 {
		if adjusted[i-1] <= 0 {
			adjusted[i-1] = -adjusted[i-1]
			continue
		}
		if j > 0 && rest > 0 {
			adjusted[i-1] += rest / j
			rest -= rest / j
		}
	}
	return clamp(adjusted, available)
}

func unbounded(columns []Column) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		if c.Width < 0 {
			widths[i] = -c.Width
		}
	}
	return widths
}

// clamp narrows widths from the last column backwards, down to one each,
// until they add up to at most available.
func clamp(widths []int, available int) []int {
	over := -available
	for _, w := range widths {
		over += w
	}
	for i := len(widths) - 1; i >= 0 && over > 0; i-- {
		cut := min(over, widths[i]-1)
		if cut <= 0 {
			continue
		}
		widths[i] -= cut
		over -= cut
	}
	return widths
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Table lays out its arguments as rows of columns. The first argument is
// the column layout, the others fill the cells row by row. Each cell is
// wrapped in its own column; a row takes as many lines as its tallest
// cell.
type Table struct{}

func (Table) Execute(doc *document.Document, _, args []command.Node) error {
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
	widths := Layout(doc, columns, doc.Width())

	docs := make([]*document.Document, len(columns))
	for i, c := range columns {
		docs[i] = doc.SubWidth(widths[i])
		docs[i].SetAlignment(c.Alignment)
	}

	cells := args[1:]
	for start := 0; start < len(cells); start += len(columns) {
		for j := 0; j < len(columns) && start+j < len(cells); j++ {
			if err := docs[j].Add(cells[start+j]); err != nil {
				return err
			}
			docs[j].EndLine()
		}
		emitRows(doc, columns, widths, docs)
	}
	return nil
}

func emitRows(doc *document.Document, columns []Column, widths []int, docs []*document.Document) {
	for {
		lines := make([]string, len(docs))
		found := false
		for j, d := range docs {
			if line, ok := d.Line(); ok {
				lines[j] = line
				found = true
			}
		}
		if !found {
			return
		}
		for j, c := range columns {
			doc.AddText(c.Leader)
			if lines[j] != "" {
				doc.AddText(lines[j])
			} else {
				doc.AddText(strings.Repeat(" ", widths[j]))
			}
			doc.AddText(c.Trailer)
		}
		doc.EndLine()
	}
}
