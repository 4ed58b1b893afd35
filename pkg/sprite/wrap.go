package sprite

import "strings"

// Margin names one edge of a sprite and the number of padded rows or
// columns to add there. Only AlignTop, AlignBottom, AlignLeft and
// AlignRight are meaningful edges; other alignments are ignored by Wrap.
type Margin struct {
	Edge  Alignment
	Width int
}

// Wrap returns a new Sprite with extra padded rows and columns added around
// s. Edges without a Margin default to zero. When padding is non-empty the
// inner sprite is first re-rendered with that padding so its own fill and
// the new margin fill match; an empty padding keeps the sprite's existing
// fill. Negative margin widths are clamped to zero.
func Wrap(s Sprite, padding string, margins ...Margin) Sprite {
	var top, right, bottom, left int
	for _, m := range margins {
		width := m.Width
		if width < 0 {
			width = 0
		}
		switch m.Edge {
		case AlignTop:
			top = width
		case AlignRight:
			right = width
		case AlignBottom:
			bottom = width
		case AlignLeft:
			left = width
		}
	}

	if padding != Blank {
		opts := s.Options()
		opts.Padding = padding
		s = NewWithOptions(s.Text(), opts)
	}

	fill := s.Options().Padding
	width, _ := s.Dim()

	blank := strings.Repeat(fill, left+width+right)
	leftPad := strings.Repeat(fill, left)
	rightPad := strings.Repeat(fill, right)

	inner := s.Rows()
	rows := make([]string, 0, top+len(inner)+bottom)
	for i := 0; i < top; i++ {
		rows = append(rows, blank)
	}
	for _, row := range inner {
		rows = append(rows, leftPad+row+rightPad)
	}
	for i := 0; i < bottom; i++ {
		rows = append(rows, blank)
	}

	return NewWithOptions(strings.Join(rows, newline), Options{Padding: fill, Align: s.Options().Align})
}
