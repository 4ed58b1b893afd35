package sprite

import (
	"strings"
	"unicode/utf8"
)

const (
	// Space is the default padding character; it makes a transparent box.
	Space = " "
	// Blank is the empty padding string; it collapses the box instead of
	// filling it.
	Blank = ""

	newline = "\n"
)

// Options holds the formatting fields of a Sprite: everything except the
// text itself. Copy the Options of one sprite into NewWithOptions to build
// another sprite with the same formatting but different content.
type Options struct {
	// Padding is the fill used when widening lines or adding blank rows.
	// Space makes a transparent box, Blank collapses the box, and anything
	// else like "." creates an opaque background.
	Padding string
	// Align controls where padding is inserted.
	Align Alignment
	// MinWidth is the minimum box width; the box never renders narrower
	// than this even when the text is.
	MinWidth int
	// MinHeight is the minimum box height.
	MinHeight int
}

// Sprite is an immutable rectangular area enclosing some ASCII text. The
// geometry accessors (Dim, Textbox, Rows, Row) are recomputed from the raw
// text on every call rather than cached, so a Sprite has no hidden state
// to invalidate. Sprites are plain values: copying one is free and two
// sprites with the same text and options are interchangeable.
//
// The zero Sprite is Null, the empty sprite that acts as the identity for
// Merge.
type Sprite struct {
	text string
	opts Options
}

// Null is the empty sprite: no text, no padding. Merging it with other
// sprites is a no-op.
var Null = Sprite{}

// New returns a Sprite for text with default formatting: space padding,
// left alignment, no minimum size.
func New(text string) Sprite {
	return Sprite{text: text, opts: Options{Padding: Space, Align: AlignLeft}}
}

// NewWithOptions returns a Sprite for text with explicit formatting.
// Negative minimum sizes are clamped to zero.
func NewWithOptions(text string, opts Options) Sprite {
	if opts.MinWidth < 0 {
		opts.MinWidth = 0
	}
	if opts.MinHeight < 0 {
		opts.MinHeight = 0
	}
	return Sprite{text: text, opts: opts}
}

// Text returns the raw, unpadded text.
func (s Sprite) Text() string {
	return s.text
}

// Options returns a copy of the sprite's formatting options.
func (s Sprite) Options() Options {
	return s.opts
}

// Dim returns the box dimensions: the widest line width widened to at least
// MinWidth, and the line count widened to at least MinHeight. Empty text has
// width 0 and height 0 before the minimum-size widening.
func (s Sprite) Dim() (width, height int) {
	lines := splitLines(s.text)
	for _, line := range lines {
		if w := utf8.RuneCountInString(line); w > width {
			width = w
		}
	}
	if width < s.opts.MinWidth {
		width = s.opts.MinWidth
	}
	height = len(lines)
	if height < s.opts.MinHeight {
		height = s.opts.MinHeight
	}
	return width, height
}

// Textbox returns the aligned, padded rendering of the sprite: every line
// padded to the box width, then the block padded to the box height with
// full-width blank rows. With a non-empty padding the result always has
// exactly Dim height rows of exactly Dim width characters.
func (s Sprite) Textbox() string {
	width, height := s.Dim()

	lines := splitLines(s.text)
	padded := make([]string, 0, height)
	for _, line := range lines {
		front, back := margins(utf8.RuneCountInString(line), width, s.opts.Align, false)
		padded = append(padded, strings.Repeat(s.opts.Padding, front)+line+strings.Repeat(s.opts.Padding, back))
	}

	if len(padded) >= height {
		return strings.Join(padded, newline)
	}

	blank := strings.Repeat(s.opts.Padding, width)
	top, bottom := margins(len(padded), height, s.opts.Align, true)
	rows := make([]string, 0, height)
	for i := 0; i < top; i++ {
		rows = append(rows, blank)
	}
	rows = append(rows, padded...)
	for i := 0; i < bottom; i++ {
		rows = append(rows, blank)
	}
	return strings.Join(rows, newline)
}

// Rows returns the textbox split into individual rows.
func (s Sprite) Rows() []string {
	return splitLines(s.Textbox())
}

// Row returns the textbox row at index, or a full-width blank row (the
// padding repeated box-width times) when index is out of range. The
// fallback lets sprites of different heights be addressed row-by-row
// during a merge without bounds juggling.
func (s Sprite) Row(index int) string {
	rows := s.Rows()
	if index >= 0 && index < len(rows) {
		return rows[index]
	}
	width, _ := s.Dim()
	return strings.Repeat(s.opts.Padding, width)
}

// String renders the sprite as its textbox.
func (s Sprite) String() string {
	return s.Textbox()
}

// withMinWidth returns a copy whose box is at least width wide.
func (s Sprite) withMinWidth(width int) Sprite {
	if width > s.opts.MinWidth {
		s.opts.MinWidth = width
	}
	return s
}

// withMinHeight returns a copy whose box is at least height tall.
func (s Sprite) withMinHeight(height int) Sprite {
	if height > s.opts.MinHeight {
		s.opts.MinHeight = height
	}
	return s
}

// margins distributes the slack between dim and min across the front and
// back of an axis so that front + dim + back == max(dim, min). Front-aligned
// (left, or top when vertical) pushes all slack to the back, back-aligned
// pushes it to the front, and centered splits it evenly with the odd unit
// going to the back.
func margins(dim, min int, align Alignment, vertical bool) (front, back int) {
	if dim >= min {
		return 0, 0
	}
	gap := min - dim

	frontAligned, backAligned := align.Left(), align.Right()
	if vertical {
		frontAligned, backAligned = align.Top(), align.Bottom()
	}

	switch {
	case frontAligned:
		return 0, gap
	case backAligned:
		return gap, 0
	default:
		return gap / 2, gap/2 + gap%2
	}
}

// splitLines splits text into lines the way the textbox accounting expects:
// empty text has no lines, and a single trailing newline does not produce a
// trailing empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, newline)
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	}
	return lines
}
