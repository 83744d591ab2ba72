// Package buffer implements the width-bounded text accumulator behind every
// document: greedy word wrapping with left, right, center and block
// alignment.
//
// Width is measured in visible terminal columns. Substrings matching the
// buffer's ignore pattern (terminal escape sequences, typically) are kept in
// the output but never counted, so styled text wraps like plain text.
package buffer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Buffer accumulates text and splits it into aligned lines. It is not safe
// for concurrent use.
type Buffer struct {
	width     int
	ignore    *regexp.Regexp
	alignment Alignment
	lines     []string
	current   string
}

// New returns a buffer wrapping at width columns. A width of zero or less
// disables wrapping: only explicit newlines end lines and nothing is
// padded. ignore may be nil.
func New(width int, ignore *regexp.Regexp) *Buffer {
	if width < 0 {
		width = 0
	}
	return &Buffer{width: width, ignore: ignore}
}

// Derive returns an empty buffer with the given width and the same ignore
// pattern.
func (b *Buffer) Derive(width int) *Buffer {
	return New(width, b.ignore)
}

// Width returns the line width, zero when unbounded.
func (b *Buffer) Width() int {
	return b.width
}

// Ignore returns the ignore pattern, possibly nil.
func (b *Buffer) Ignore() *regexp.Regexp {
	return b.ignore
}

// Alignment returns the alignment applied to lines completed from now on.
func (b *Buffer) Alignment() Alignment {
	return b.alignment
}

// SetAlignment changes the alignment of lines completed from now on.
func (b *Buffer) SetAlignment(a Alignment) {
	b.alignment = a
}

// Add appends text and completes every line that became full.
func (b *Buffer) Add(text string) {
	b.current += text
	for b.checkLength() {
	}
}

// EndLine terminates the current line unless it is empty.
func (b *Buffer) EndLine() {
	if b.VisibleLength(b.current) > 0 {
		b.Add("\n")
	}
}

// Line pops the next completed line.
func (b *Buffer) Line() (string, bool) {
	if len(b.lines) == 0 {
		return "", false
	}
	line := b.lines[0]
	b.lines = b.lines[1:]
	return line, true
}

// HasMoreCompleteLines reports whether Line would return a line.
func (b *Buffer) HasMoreCompleteLines() bool {
	return len(b.lines) > 0
}

// HasMore reports whether any content, complete or partial, is left.
func (b *Buffer) HasMore() bool {
	return b.HasMoreCompleteLines() || b.current != ""
}

// Lines drains all completed lines, each followed by a newline, plus the
// partial last line without forcing a break.
func (b *Buffer) Lines() string {
	result := b.Contents()
	b.lines = nil
	b.current = ""
	return result
}

// Contents returns what Lines would return without draining the buffer.
func (b *Buffer) Contents() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(b.current)
	return sb.String()
}

// Current returns the partial line not yet completed.
func (b *Buffer) Current() string {
	return b.current
}

// VisibleLength returns the number of columns text occupies once ignored
// substrings are removed.
func (b *Buffer) VisibleLength(text string) int {
	if text == "" {
		return 0
	}
	if b.ignore != nil {
		text = b.ignore.ReplaceAllString(text, "")
	}
	return runewidth.StringWidth(text)
}

// SubstringLength returns the byte length of the longest prefix of text
// showing at most n columns. Ignored substrings before the cut are part of
// the prefix; a prefix is never empty when text is not.
func (b *Buffer) SubstringLength(text string, n int) int {
	if text == "" {
		return 0
	}
	if b.VisibleLength(text) <= n {
		return len(text)
	}

	var skips [][]int
	if b.ignore != nil {
		skips = b.ignore.FindAllStringIndex(text, -1)
	}

	pos, seen := 0, 0
	for pos < len(text) {
		if len(skips) > 0 && skips[0][0] == pos {
			if skips[0][1] > pos {
				pos = skips[0][1]
				skips = skips[1:]
				continue
			}
			skips = skips[1:]
		}
		r, size := utf8.DecodeRuneInString(text[pos:])
		w := runewidth.RuneWidth(r)
		if seen+w > n {
			break
		}
		seen += w
		pos += size
	}

	if pos == 0 {
		_, size := utf8.DecodeRuneInString(text)
		return size
	}
	return pos
}

// checkLength completes one line if possible and reports whether it did.
func (b *Buffer) checkLength() bool {
	if pos := b.firstNewline(); pos >= 0 {
		b.process(pos, true, true, false)
		return true
	}
	if b.width <= 0 || b.VisibleLength(b.current) <= b.width {
		return false
	}

	if pos := b.lastFittingSpace(); pos >= 0 {
		b.process(pos, false, false, false)
	} else {
		b.process(b.SubstringLength(b.current, b.width), false, false, true)
	}
	return true
}

// firstNewline returns the position of the first newline if the text before
// it fits on a line, -1 otherwise.
func (b *Buffer) firstNewline() int {
	pos := strings.IndexByte(b.current, '\n')
	if pos < 0 {
		return -1
	}
	if b.width > 0 && b.VisibleLength(b.current[:pos]) > b.width {
		return -1
	}
	return pos
}

// lastFittingSpace returns the position of the last space such that the text
// before it fits on a line, -1 if there is none.
func (b *Buffer) lastFittingSpace() int {
	found := -1
	for pos := 0; pos < len(b.current); pos++ {
		if b.current[pos] != ' ' {
			continue
		}
		if b.VisibleLength(b.current[:pos]) > b.width {
			break
		}
		found = pos
	}
	return found
}

// process completes the line made of the first pos bytes of the current
// text. paragraph marks a line ended by an explicit newline, newline that the
// break character is a newline (no spaces are skipped after it) and forced
// a cut inside a word (no break character to drop).
func (b *Buffer) process(pos int, paragraph, newline, forced bool) {
	if pos == 0 {
		b.lines = append(b.lines, "")
	} else {
		b.lines = append(b.lines, b.align(b.current[:pos], paragraph))
	}

	end := pos
	if !forced {
		end++
	}
	if !newline {
		for end < len(b.current) && b.current[end] == ' ' {
			end++
		}
	}
	if end > len(b.current) {
		end = len(b.current)
	}
	b.current = b.current[end:]
}

func (b *Buffer) align(text string, paragraph bool) string {
	if b.width <= 0 {
		return text
	}
	missing := b.width - b.VisibleLength(text)
	if missing <= 0 {
		return text
	}

	switch {
	case b.alignment == Right:
		return spaces(missing) + text
	case b.alignment == Center:
		return spaces(missing-missing/2) + text + spaces(missing/2)
	case b.alignment == Block && !paragraph:
		if justified, ok := justify(text, missing); ok {
			return justified
		}
	}
	return text + spaces(missing)
}

// justify widens the spaces of text by missing columns, starting at the
// middle space and alternating outwards. It fails for text without spaces.
func justify(text string, missing int) (string, bool) {
	var positions []int
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			positions = append(positions, i)
		}
	}
	count := len(positions)
	if count == 0 {
		return text, false
	}

	extra := make([]int, count)
	take := func(index int) {
		if count <= 0 || missing <= 0 {
			return
		}
		add := (missing + count - 1) / count
		count--
		extra[index] += add
		missing -= add
	}

	start := len(positions) / 2
	take(start)
	for off := 1; missing > 0 && (start-off >= 0 || start+off < len(positions)); off++ {
		if start-off >= 0 {
			take(start - off)
		}
		if start+off < len(positions) {
			take(start + off)
		}
	}

	var sb strings.Builder
	sb.Grow(len(text) + missing)
	next := 0
	for i := 0; i < len(text); i++ {
		if next < len(positions) && positions[next] == i {
			sb.WriteString(spaces(extra[next]))
			next++
		}
		sb.WriteByte(text[i])
	}
	return sb.String(), true
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
