package command

import (
	"testing"

	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Node
	}{
		{
			name:  "plain text",
			input: "just some text",
			want:  Text("just some text"),
		},
		{
			name:  "empty",
			input: "",
			want:  Text(""),
		},
		{
			name:  "single command",
			input: `\bold{strong}`,
			want:  Texts("bold", "strong"),
		},
		{
			name:  "text around command",
			input: `a \emph{b} c`,
			want:  Seq(Text("a "), Texts("emph", "b"), Text(" c")),
		},
		{
			name:  "optionals and arguments",
			input: `\footnote[a][b]{text}`,
			want: &Command{
				Name:      "footnote",
				Optionals: []Node{Text("a"), Text("b")},
				Arguments: []Node{Text("text")},
			},
		},
		{
			name:  "nested",
			input: `\title{Goblin \super{1}}`,
			want:  New("title", Seq(Text("Goblin "), Texts("super", "1"))),
		},
		{
			name:  "bare command swallows one space",
			input: `one\par  two`,
			want:  Seq(Text("one"), New("par"), Text(" two")),
		},
		{
			name:  "special name",
			input: `\*{x}`,
			want:  Texts("*", "x"),
		},
		{
			name:  "escapes",
			input: `a \{b\} \[c\] \\`,
			want:  Text(`a {b} [c] \`),
		},
		{
			name:  "balanced braces in argument",
			input: `\code{a{b}c}`,
			want:  Texts("code", "a{b}c"),
		},
		{
			name:  "lone backslash is literal",
			input: `50\ off`,
			want:  Text(`50\ off`),
		},
		{
			name:  "multiple arguments",
			input: `\table{6:L;10:R}{a}{b}`,
			want:  Texts("table", "6:L;10:R", "a", "b"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unclosed argument", input: `\bold{text`},
		{name: "unclosed optional", input: `\footnote[a{text}`},
		{name: "unclosed nested", input: `\a{\b{c}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
			assert.Contains(t, errors.GetErrorDetails(err), "position")
		})
	}

	assert.Panics(t, func() { MustParse(`\x{`) })
}

func TestStringRoundTrip(t *testing.T) {
	trees := []Node{
		Text("plain [text] with {braces} and \\"),
		Seq(Text("a "), Texts("bold", "b"), Text(" c")),
		Seq(Text("x"), New("par"), Text("y")),
		(&Command{Name: "footnote", Arguments: []Node{Text("note")}}).WithOptionals(Text("a")),
		New("title", Seq(Text("Goblin "), Texts("super", "1"))),
		Texts("table", "6:L;10:R", "a", "b"),
	}

	for _, tree := range trees {
		t.Run(tree.String(), func(t *testing.T) {
			got, err := Parse(tree.String())
			require.NoError(t, err)
			assert.Equal(t, tree, got)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, `\bold{a\{b\}}`, Texts("bold", "a{b}").String())
	assert.Equal(t, `\par `, New("par").String())
	assert.Equal(t, `\hrule[30]{}`, New("hrule", Text("")).WithOptionals(Text("30")).String())
}

func TestPlain(t *testing.T) {
	tree := MustParse(`\title[x]{Goblin \super{1}} rules`)
	assert.Equal(t, "Goblin 1 rules", Plain(tree))
}

func TestSeq(t *testing.T) {
	assert.Equal(t, Text(""), Seq())
	assert.Equal(t, Text("a"), Seq(Text("a")))

	seq, ok := Seq(Text("a"), Text("b")).(*Command)
	require.True(t, ok)
	assert.True(t, seq.IsSeq())
}
