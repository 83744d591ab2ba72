package backend

import (
	"github.com/arthur-debert/docrender/pkg/actions"
	"github.com/arthur-debert/docrender/pkg/buffer"
	"github.com/arthur-debert/docrender/pkg/document"
)

var sizes = []string{
	"tiny", "scriptsize", "footnotesize", "small", "normalsize",
	"large", "Large", "LARGE", "huge", "Huge", "huger",
}

var dropped = []string{
	"icon", "image", "picture", "imageLink", "highlight",
	"navigation", "columns", "footer", "newpage", "toc",
}

// asciiLayer is the base table: plain fixed-width text.
func asciiLayer() document.Layer {
	first := actions.NewIdentity(1)
	second := actions.NewIdentity(2)

	entries := map[string]document.Action{
		"bold":       actions.UpperCase{},
		"emph":       actions.UpperCase{},
		"uppercase":  actions.UpperCase{},
		"italic":     first,
		"underline":  first,
		"sansserif":  first,
		"serif":      first,
		"typewriter": first,

		"left":   actions.NewAlign(buffer.Left),
		"right":  actions.NewAlign(buffer.Right),
		"center": actions.NewAlign(buffer.Center),
		"block":  actions.NewAlign(buffer.Block),

		"title":     actions.NewMulti(actions.NewAlign(buffer.Center), actions.UpperCase{}),
		"subtitle":  actions.NewAlign(buffer.Center),
		"textblock": actions.NewAlign(buffer.Block),

		"par":       actions.NewDelimiter("\n\n", ""),
		"linebreak": actions.NewDelimiter("\n", ""),
		"hrule":     actions.Hrule{},
		"list":      actions.NewList(" * "),
		"table":     actions.Table{},
		"footnote":  actions.Footnote{},
		"super":     actions.NewPattern("($1)"),
		"sub":       actions.NewPattern("($1)"),
		"frac":      actions.NewPattern("[[%1 ]]$1/$2"),

		"hat":    actions.Accent('\u0302'),
		"umlaut": actions.Accent('\u0308'),
		"acute":  actions.Accent('\u0301'),
		"grave":  actions.Accent('\u0300'),

		"link":       first,
		"nopictures": first,
		"window":     first,
		"grouped":    first,
		"id":         second,
		"divider":    second,
		"span":       second,
		"color":      second,
		"editable":   actions.NewIdentity(3),

		"count":        actions.NewPattern("$1 (max $2) $3"),
		"less":         actions.NewDelimiter("<", ""),
		"greater":      actions.NewDelimiter(">", ""),
		"lessequal":    actions.NewDelimiter("<=", ""),
		"greaterequal": actions.NewDelimiter(">=", ""),

		"value": actions.NewCommandPattern(`\table{f15:l;1:l}{$1}{$2}`),
	}
	for _, size := range sizes {
		entries[size] = first
	}
	for _, name := range dropped {
		entries[name] = actions.Drop{}
	}
	return document.Layer{Name: string(ASCII), Entries: entries}
}
