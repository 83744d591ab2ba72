// Package template turns template text with value references into
// command trees.
//
// A template is markup with references introduced by a sigil:
//
//	$name, ${name}   the value of name
//	%name            the value of name in a labeled container
//	#x ?x &x         reserved, dropped
//
// Tokenizing happens once per template. Template caches its tokens for its
// own lifetime; Cache shares tokens between templates with the same text.
package template

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Template is template text with its tokens computed on first use. It is
// safe for concurrent use.
type Template struct {
	text   string
	tokens func() []Token
}

// New returns a template for text.
func New(text string) *Template {
	return newWith(text, Tokenize)
}

// Shared returns a template whose tokens come from the process-wide cache.
func Shared(text string) *Template {
	return newWith(text, shared.Tokens)
}

func newWith(text string, tokenize func(string) []Token) *Template {
	return &Template{
		text: text,
		tokens: sync.OnceValue(func() []Token {
			return tokenize(text)
		}),
	}
}

// Text returns the template text.
func (t *Template) Text() string {
	return t.text
}

// Tokens returns the tokens of the template, computing them on the first
// call. Callers must not modify the result.
func (t *Template) Tokens() []Token {
	return t.tokens()
}

// Cache maps template text to tokens. Concurrent first requests for the
// same text tokenize it once.
type Cache struct {
	tokenize func(string) []Token

	mu      sync.RWMutex
	entries map[string][]Token
	group   singleflight.Group
}

// NewCache returns an empty cache using tokenize, Tokenize if nil.
func NewCache(tokenize func(string) []Token) *Cache {
	if tokenize == nil {
		tokenize = Tokenize
	}
	return &Cache{tokenize: tokenize, entries: make(map[string][]Token)}
}

var shared = NewCache(nil)

// Tokens returns the cached tokens of text.
func (c *Cache) Tokens(text string) []Token {
	c.mu.RLock()
	tokens, ok := c.entries[text]
	c.mu.RUnlock()
	if ok {
		return tokens
	}

	v, _, _ := c.group.Do(text, func() (interface{}, error) {
		c.mu.RLock()
		tokens, ok := c.entries[text]
		c.mu.RUnlock()
		if ok {
			return tokens, nil
		}

		tokens = c.tokenize(text)
		c.mu.Lock()
		c.entries[text] = tokens
		c.mu.Unlock()
		return tokens, nil
	})
	return v.([]Token)
}

// Len returns the number of cached texts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
