package buffer

import (
	"strings"

	"github.com/arthur-debert/docrender/pkg/errors"
)

// Alignment selects how completed lines are padded to the buffer width.
type Alignment int

const (
	// Left pads lines at the end.
	Left Alignment = iota
	// Right pads lines at the front.
	Right
	// Center splits the padding, the odd space going in front.
	Center
	// Block distributes the padding between words. The last line of a
	// paragraph is left aligned.
	Block
)

// String returns the name of the alignment
func (a Alignment) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case Center:
		return "center"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// Short returns the one letter form used in table column layouts.
func (a Alignment) Short() string {
	return strings.ToUpper(a.String()[:1])
}

// ParseAlignment accepts the full names and the one letter forms in any case.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "center", "centre", "c":
		return Center, nil
	case "block", "justify", "b":
		return Block, nil
	default:
		return Left, errors.Newf(errors.ErrInvalidInput, "unknown alignment: %q", s)
	}
}
