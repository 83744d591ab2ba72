// Package styles loads the color themes of docrender.
//
// A theme is read from YAML and has two parts: lipgloss styles for the
// CLI's own messages, and the palette of named colors that the ANSI
// backend turns into SGR escape sequences for \color.
package styles

import (
	_ "embed"
	"os"
	"sort"
	"sync"

	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	MarginLeft  int    `yaml:"marginLeft,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors  map[string]ColorDef `yaml:"colors"`
	Styles  map[string]StyleDef `yaml:"styles"`
	Palette map[string]string   `yaml:"palette"`
}

// Theme is a loaded styles configuration.
type Theme struct {
	styles  map[string]lipgloss.Style
	palette map[string]string
}

// ResetForeground ends any palette color.
const ResetForeground = termenv.CSI + "39m"

//go:embed styles.yaml
var embeddedStyles []byte

var defaultTheme = sync.OnceValue(func() *Theme {
	theme, err := Load(embeddedStyles)
	if err != nil {
		return &Theme{styles: map[string]lipgloss.Style{}, palette: map[string]string{}}
	}
	return theme
})

// Default returns the theme embedded in the binary.
func Default() *Theme {
	return defaultTheme()
}

// LoadFile loads a theme from a YAML file. Sections missing from the file
// are taken from the default theme.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read styles file %s", path)
	}
	theme, err := Load(data)
	if err != nil {
		return nil, err
	}
	base := Default()
	if len(theme.styles) == 0 {
		theme.styles = base.styles
	}
	if len(theme.palette) == 0 {
		theme.palette = base.palette
	}
	return theme, nil
}

// Load parses a theme from YAML data.
func Load(data []byte) (*Theme, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles data")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	theme := &Theme{
		styles:  make(map[string]lipgloss.Style, len(config.Styles)),
		palette: make(map[string]string, len(config.Palette)),
	}
	for name, def := range config.Styles {
		theme.styles[name] = buildStyle(def, colors)
	}
	for name, color := range config.Palette {
		seq := termenv.ANSI.Color(color)
		if seq == nil {
			return nil, errors.Newf(errors.ErrConfigInvalid, "palette color %s has invalid value %q", name, color)
		}
		theme.palette[name] = termenv.CSI + seq.Sequence(false) + "m"
	}
	return theme, nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	return style
}

// Style returns the named style, or a plain style if there is none.
func (t *Theme) Style(name string) lipgloss.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Merge combines the named styles, earlier ones taking precedence.
func (t *Theme) Merge(names ...string) lipgloss.Style {
	result := lipgloss.NewStyle()
	for _, name := range names {
		result = result.Inherit(t.Style(name))
	}
	return result
}

// Sequence returns the escape sequences that start and end the palette
// color name.
func (t *Theme) Sequence(name string) (start, end string, ok bool) {
	start, ok = t.palette[name]
	if !ok {
		return "", "", false
	}
	return start, ResetForeground, true
}

// Colors lists the palette color names, sorted.
func (t *Theme) Colors() []string {
	names := make([]string, 0, len(t.palette))
	for name := range t.palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetStyle returns a style of the default theme.
func GetStyle(name string) lipgloss.Style {
	return Default().Style(name)
}
