// Package border assembles decorative rectangular frames from corner and
// repeating edge-tile sprites, sized to enclose arbitrary text. It is a
// consumer of the sprite merge engine: every frame line is built by tiling
// edge sprites between two corners with a RIGHT-merge.
package border

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"gitlab.com/tinyland/lab/spritebox/pkg/sprite"
)

// ErrMisconfigured is the configuration-error kind for invalid frame tile
// sets. All validation failures in New wrap it, so callers can match with
// errors.Is.
var ErrMisconfigured = errors.New("ascii border misconfigured")

// minPadding is the minimum fill between the text body and the frame, in
// tile-relative units, applied on every side.
const minPadding = 1

// Border holds the six tile sprites of a frame: four corners plus the
// repeating horizontal and vertical edge units. Construct one with New;
// the zero value is not usable.
type Border struct {
	topLeft     sprite.Sprite
	topRight    sprite.Sprite
	bottomLeft  sprite.Sprite
	bottomRight sprite.Sprite
	top         sprite.Sprite
	bottom      sprite.Sprite
	left        sprite.Sprite
	right       sprite.Sprite
}

// New validates a tile map and builds a Border from it. The map is keyed by
// the tile's position: the four corner alignments are all required; at least
// one of AlignTop/AlignBottom and at least one of AlignLeft/AlignRight must
// be present (a missing half of a pair reuses the other half). The top and
// bottom tiles must have equal widths and the left and right tiles equal
// heights; any violation returns an error wrapping ErrMisconfigured.
func New(tiles map[sprite.Alignment]sprite.Sprite) (*Border, error) {
	b := &Border{}

	corners := []struct {
		pos sprite.Alignment
		dst *sprite.Sprite
	}{
		{sprite.AlignTopLeft, &b.topLeft},
		{sprite.AlignTopRight, &b.topRight},
		{sprite.AlignBottomLeft, &b.bottomLeft},
		{sprite.AlignBottomRight, &b.bottomRight},
	}
	for _, c := range corners {
		s, ok := tiles[c.pos]
		if !ok {
			return nil, fmt.Errorf("%w: all four corners are required (missing %v)", ErrMisconfigured, c.pos)
		}
		*c.dst = s
	}

	top, hasTop := tiles[sprite.AlignTop]
	bottom, hasBottom := tiles[sprite.AlignBottom]
	if !hasTop && !hasBottom {
		return nil, fmt.Errorf("%w: missing top and bottom sprites", ErrMisconfigured)
	}
	if !hasTop {
		top = bottom
	}
	if !hasBottom {
		bottom = top
	}
	b.top, b.bottom = top, bottom

	topW, _ := b.top.Dim()
	bottomW, _ := b.bottom.Dim()
	if topW != bottomW {
		return nil, fmt.Errorf("%w: top and bottom sprites must match widths, %d != %d", ErrMisconfigured, topW, bottomW)
	}
	if topW == 0 {
		return nil, fmt.Errorf("%w: top and bottom sprites must have non-zero width", ErrMisconfigured)
	}

	left, hasLeft := tiles[sprite.AlignLeft]
	right, hasRight := tiles[sprite.AlignRight]
	if !hasLeft && !hasRight {
		return nil, fmt.Errorf("%w: missing left and right sprites", ErrMisconfigured)
	}
	if !hasLeft {
		left = right
	}
	if !hasRight {
		right = left
	}
	b.left, b.right = left, right

	_, leftH := b.left.Dim()
	_, rightH := b.right.Dim()
	if leftH != rightH {
		return nil, fmt.Errorf("%w: left and right sprites must match heights, %d != %d", ErrMisconfigured, leftH, rightH)
	}
	if leftH == 0 {
		return nil, fmt.Errorf("%w: left and right sprites must have non-zero height", ErrMisconfigured)
	}

	return b, nil
}

// Render returns the decorative top and bottom frame lines for a text body,
// joined by a newline. Each line is a corner, enough repetitions of the edge
// tile to cover the body width plus the minimum padding on both sides, and
// the closing corner. Composing the frame around the actual body is the
// caller's job via further merges (or use Frame for the full assembly).
//
// fill must be a single character; anything else falls back to a space.
func (b *Border) Render(text string, align sprite.Alignment, fill string) sprite.Sprite {
	fill = normalizeFill(fill)
	across, _ := b.tileCounts(text, fill)

	topLine := b.tiledLine(b.topLeft, b.top, b.topRight, across, align)
	bottomLine := b.tiledLine(b.bottomLeft, b.bottom, b.bottomRight, across, align)

	rendered := topLine.Textbox() + "\n" + bottomLine.Textbox()
	return sprite.NewWithOptions(rendered, sprite.Options{Padding: sprite.Space, Align: align})
}

// Frame returns the fully assembled frame enclosing text: the top line, the
// interior (left tiles, the aligned body, right tiles), and the bottom line
// stacked with a BOTTOM-merge. align positions the body inside the interior
// and fill provides the interior background.
func (b *Border) Frame(text string, align sprite.Alignment, fill string) sprite.Sprite {
	fill = normalizeFill(fill)
	across, down := b.tileCounts(text, fill)

	tileW, _ := b.top.Dim()
	_, tileH := b.left.Dim()

	body := sprite.NewWithOptions(text, sprite.Options{
		Padding:   fill,
		Align:     align,
		MinWidth:  across * tileW,
		MinHeight: down * tileH,
	})

	leftColumn := b.tiledColumn(b.left, down, align)
	rightColumn := b.tiledColumn(b.right, down, align)
	interior := sprite.Merge(sprite.AlignRight, align, leftColumn, body, rightColumn)

	topLine := b.tiledLine(b.topLeft, b.top, b.topRight, across, align)
	bottomLine := b.tiledLine(b.bottomLeft, b.bottom, b.bottomRight, across, align)

	return sprite.Merge(sprite.AlignBottom, align, topLine, interior, bottomLine)
}

// tileCounts computes how many whole edge-tile repetitions cover the text
// body plus the minimum padding on each side, horizontally and vertically.
func (b *Border) tileCounts(text string, fill string) (across, down int) {
	body := sprite.NewWithOptions(text, sprite.Options{Padding: fill, Align: sprite.AlignLeft})
	textW, textH := body.Dim()

	tileW, _ := b.top.Dim()
	_, tileH := b.left.Dim()

	across = (textW+2*minPadding)/tileW + 1
	down = (textH+2*minPadding)/tileH + 1
	return across, down
}

// tiledLine RIGHT-merges corner + n*tile + corner into one frame line.
func (b *Border) tiledLine(opening, tile, closing sprite.Sprite, n int, align sprite.Alignment) sprite.Sprite {
	parts := make([]sprite.Sprite, 0, n+2)
	parts = append(parts, opening)
	for i := 0; i < n; i++ {
		parts = append(parts, tile)
	}
	parts = append(parts, closing)
	return sprite.Merge(sprite.AlignRight, align, parts...)
}

// tiledColumn BOTTOM-merges n repetitions of a vertical edge tile.
func (b *Border) tiledColumn(tile sprite.Sprite, n int, align sprite.Alignment) sprite.Sprite {
	parts := make([]sprite.Sprite, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, tile)
	}
	return sprite.Merge(sprite.AlignBottom, align, parts...)
}

// normalizeFill coerces fill to a single character, defaulting to space.
func normalizeFill(fill string) string {
	if utf8.RuneCountInString(fill) != 1 {
		return sprite.Space
	}
	return fill
}
