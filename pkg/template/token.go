package template

import (
	"regexp"
)

// Sigils introducing a reference.
const (
	// SigilValue inserts a value: $name or ${name}.
	SigilValue = '$'
	// SigilLabeled inserts a value with a label: %name.
	SigilLabeled = '%'
	// SigilExtension, SigilQuery and SigilReference are reserved.
	SigilExtension = '#'
	SigilQuery     = '?'
	SigilReference = '&'
)

var referencePattern = regexp.MustCompile(`([$#%?&])(?:\{(.*?)\}|(\w+))`)

// Token is a piece of a template: literal text, or a reference to a named
// value when Sigil is set.
type Token struct {
	Sigil rune
	Name  string
	Text  string
}

// IsLiteral reports whether t is literal text.
func (t Token) IsLiteral() bool {
	return t.Sigil == 0
}

func (t Token) String() string {
	if t.IsLiteral() {
		return t.Text
	}
	return string(t.Sigil) + "{" + t.Name + "}"
}

// Tokenize splits text into literals and references. Adjacent literals are
// never produced and empty literals are left out.
func Tokenize(text string) []Token {
	var tokens []Token
	last := 0
	for _, m := range referencePattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			tokens = append(tokens, Token{Text: text[last:m[0]]})
		}
		name := ""
		if m[4] >= 0 {
			name = text[m[4]:m[5]]
		} else {
			name = text[m[6]:m[7]]
		}
		tokens = append(tokens, Token{
			Sigil: rune(text[m[2]]),
			Name:  name,
			Text:  text[m[0]:m[1]],
		})
		last = m[1]
	}
	if last < len(text) {
		tokens = append(tokens, Token{Text: text[last:]})
	}
	return tokens
}
