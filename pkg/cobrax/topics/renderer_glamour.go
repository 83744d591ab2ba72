package topics

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats
// pass through.
type GlamourRenderer struct {
	// Style is a glamour standard style name ("dark", "light", "notty")
	// or a path to a JSON style. Empty or "auto" detects the terminal.
	Style string
	// Width wraps the output; 0 keeps glamour's default.
	Width int

	once     sync.Once
	renderer *glamour.TermRenderer
	err      error
}

// NewGlamourRenderer creates a renderer that detects the terminal style.
func NewGlamourRenderer(width int) *GlamourRenderer {
	return &GlamourRenderer{Style: "auto", Width: width}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	return options
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	r.once.Do(func() {
		r.renderer, r.err = glamour.NewTermRenderer(r.options()...)
	})
	if r.err != nil {
		return content
	}

	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
