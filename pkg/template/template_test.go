package template

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Token
	}{
		{
			name: "values",
			text: "start $first ${title} end",
			want: []Token{
				{Text: "start "},
				{Sigil: '$', Name: "first", Text: "$first"},
				{Text: " "},
				{Sigil: '$', Name: "title", Text: "${title}"},
				{Text: " end"},
			},
		},
		{
			name: "all sigils",
			text: "%a#b?c&d",
			want: []Token{
				{Sigil: '%', Name: "a", Text: "%a"},
				{Sigil: '#', Name: "b", Text: "#b"},
				{Sigil: '?', Name: "c", Text: "?c"},
				{Sigil: '&', Name: "d", Text: "&d"},
			},
		},
		{
			name: "braced names may hold anything",
			text: "${dm notes}!",
			want: []Token{
				{Sigil: '$', Name: "dm notes", Text: "${dm notes}"},
				{Text: "!"},
			},
		},
		{
			name: "lone sigils stay literal",
			text: "50% off $ now",
			want: []Token{{Text: "50% off $ now"}},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func countingTokenizer(calls *int32) func(string) []Token {
	return func(text string) []Token {
		atomic.AddInt32(calls, 1)
		return Tokenize(text)
	}
}

func TestTemplateTokenizesOnce(t *testing.T) {
	var calls int32
	tpl := newWith("a $b c", countingTokenizer(&calls))

	var wg sync.WaitGroup
	results := make([][]Token, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tpl.Tokens()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
	assert.Len(t, results[0], 3)
}

func TestCacheTokenizesOncePerText(t *testing.T) {
	var calls int32
	cache := NewCache(countingTokenizer(&calls))

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := "first $x"
			if i%2 == 1 {
				text = "second $y"
			}
			cache.Tokens(text)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 2, cache.Len())
}

func TestSharedTemplates(t *testing.T) {
	a := Shared("shared $value")
	b := Shared("shared $value")

	assert.Equal(t, a.Tokens(), b.Tokens())
	assert.Equal(t, "shared $value", a.Text())
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"hit_dice":   "Hit Dice",
		"dm_notes":   "DM Notes",
		"dm notes":   "DM Notes",
		">speed":     "Speed",
		"armorClass": "ArmorClass",
	}
	for in, want := range tests {
		assert.Equal(t, want, Label(in), in)
	}
}
