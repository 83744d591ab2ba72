package template_test

import (
	"testing"

	"github.com/arthur-debert/docrender/pkg/backend"
	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(m map[string]template.Formattable) template.ValueSource {
	return template.ValueFunc(func(name string, dm bool) (template.Formattable, bool) {
		if name == "secret" && !dm {
			return nil, false
		}
		v, ok := m[name]
		return v, ok
	})
}

var source = values(map[string]template.Formattable{
	"first":  template.Text("A"),
	"title":  template.Text("B"),
	"braces": template.Text("{a}"),
	"bolded": template.Markup{Node: command.Texts("bold", "x")},
	"secret": template.Text("s"),
	"hd":     template.Text("2d8"),
})

func renderText(t *testing.T, kind backend.Kind, b *template.Binder, text string) string {
	t.Helper()
	node, err := b.BindText(text)
	require.NoError(t, err)
	doc, err := backend.NewDocument(backend.Options{Kind: kind})
	require.NoError(t, err)
	out, err := doc.Render(node)
	require.NoError(t, err)
	return out
}

func TestBind(t *testing.T) {
	tests := []struct {
		name string
		dm   bool
		text string
		want string
	}{
		{"values", false, "start $first ${title} end", "start A B end"},
		{"value inside a command", false, `\bold{$first}`, "A"},
		{"markup characters in values stay text", false, `\bold{$braces}`, "{A}"},
		{"markup values", false, "[$bolded]", "[X]"},
		{"missing value", false, "x $nothing y", "x  * nothing *  y"},
		{"dm only value hidden", false, "$secret", " * secret * "},
		{"dm only value shown", true, "$secret", "s"},
		{"reserved sigils dropped", false, "a#ext?q&r b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &template.Binder{Source: source, DM: tt.dm}
			assert.Equal(t, tt.want, renderText(t, backend.ASCII, b, tt.text))
		})
	}
}

func TestBindErrorMarker(t *testing.T) {
	b := &template.Binder{Source: source}

	node, err := b.BindText("$missing")
	require.NoError(t, err)
	assert.Equal(t, `\color{error}{ * missing * }`, node.String())
}

func TestBindLabeled(t *testing.T) {
	b := &template.Binder{Source: source, Type: "monster"}

	out := renderText(t, backend.HTML, b, "%hd")
	assert.Equal(t,
		`<div class="value monster">`+
			`<div class="value-label-container back-monster"><div class="value-label">Hd</div></div>`+
			`<div class="value-content">2d8</div>`+
			`</div>`,
		out)

	out = renderText(t, backend.HTML, &template.Binder{Source: source}, "%nope")
	assert.Equal(t,
		`<div class="value">`+
			`<div class="value-label-container"><div class="value-label">Nope</div></div>`+
			`<div class="value-content"><span class="error"> * unknown * </span></div>`+
			`</div>`,
		out)
}

func TestBindLabeledASCII(t *testing.T) {
	b := &template.Binder{Source: source, Type: "monster"}

	doc, err := backend.NewDocument(backend.Options{Kind: backend.ASCII, Width: 40})
	require.NoError(t, err)
	node, err := b.BindText("%hd")
	require.NoError(t, err)
	out, err := doc.Render(node)
	require.NoError(t, err)

	assert.Equal(t, "Hd             2d8                      \n", out)
}

func TestBindMalformedTemplate(t *testing.T) {
	b := &template.Binder{Source: source}

	_, err := b.BindText(`\bold{$first`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplate))
}

func TestBindWithoutSource(t *testing.T) {
	b := &template.Binder{}

	node, err := b.BindText("$x")
	require.NoError(t, err)
	assert.Equal(t, `\color{error}{ * x * }`, node.String())
}
