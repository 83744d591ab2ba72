package backend

import (
	"github.com/arthur-debert/docrender/pkg/actions"
	"github.com/arthur-debert/docrender/pkg/buffer"
	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/muesli/termenv"
)

// DefaultANSIIgnore matches the SGR sequences the ANSI backend emits.
const DefaultANSIIgnore = `\x1b\[[0-9;]*m`

func sgr(code string) string {
	return termenv.CSI + code + "m"
}

// ansiLayer replaces the ASCII entries that a terminal can show with
// escape sequences.
func ansiLayer(palette actions.Palette) document.Layer {
	bold := actions.Around(sgr(termenv.BoldSeq), sgr("22"))
	return document.Layer{Name: string(ANSI), Entries: map[string]document.Action{
		"bold":      bold,
		"emph":      actions.Around(sgr("31"), sgr("39")),
		"italic":    actions.Around(sgr(termenv.ItalicSeq), sgr("23")),
		"underline": actions.Around(sgr(termenv.UnderlineSeq), sgr("24")),
		"title": actions.NewMulti(
			actions.Around(sgr(termenv.BoldSeq)+sgr(termenv.UnderlineSeq), sgr("24")+sgr("22")),
			actions.NewAlign(buffer.Center),
		),
		"subtitle": actions.NewMulti(bold, actions.NewAlign(buffer.Center)),
		"color":    &actions.Color{Palette: palette},
	}}
}
