package messages

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	indent = "    "
	arrow  = "⇵"
)

// Box-drawing runes are ambiguous-width; measure them as narrow so the
// frame lines up regardless of the terminal locale.
var widthCond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Builder helps construct terminal output blocks.
type Builder struct {
	lines []string
}

// NewBuilder creates a new, empty output builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithBlankLine appends an empty line.
func (b *Builder) WithBlankLine() *Builder {
	b.lines = append(b.lines, "")
	return b
}

// WithLine appends a single line of text as-is.
func (b *Builder) WithLine(text string) *Builder {
	b.lines = append(b.lines, text)
	return b
}

// WithBanner adds a box-drawn frame around title, padded by blank lines.
// The frame is sized by display width, so wide runes like emoji line up.
func (b *Builder) WithBanner(title string) *Builder {
	width := widthCond.StringWidth(title) + 2
	border := strings.Repeat("─", width)

	return b.
		WithBlankLine().
		WithLine("┌" + border + "┐").
		WithLine("│ " + title + " │").
		WithLine("└" + border + "┘").
		WithBlankLine()
}

// WithResult adds the original and processed phrase joined by an arrow.
func (b *Builder) WithResult(original, processed string) *Builder {
	return b.
		WithBlankLine().
		WithLine(indent + original).
		WithLine(indent + arrow).
		WithLine(indent + processed).
		WithBlankLine()
}

// String returns the built block with a trailing newline.
func (b *Builder) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}
