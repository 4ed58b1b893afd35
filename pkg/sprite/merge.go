package sprite

import "strings"

// Merge concatenates sprites along an edge into a single new Sprite.
// edge selects the direction: AlignBottom appends each sprite below the
// previous one; any other value (conventionally AlignRight, the default
// edge) appends to the right. align becomes the alignment of the resulting
// sprite; the inputs keep their own padding and alignment while being
// reconciled.
//
// The sequence is folded from the right: the tail is merged first and the
// head is then combined with that single merged block. Each adjacent pair
// is measured and padded independently before joining — sizes are never
// normalized globally up front — so the fold order is part of the observable
// behavior, not an implementation detail.
//
// Zero sprites yield Null; a single sprite is returned unchanged.
func Merge(edge, align Alignment, sprites ...Sprite) Sprite {
	if len(sprites) == 0 {
		return Null
	}
	if len(sprites) == 1 {
		return sprites[0]
	}

	head := sprites[0]
	tail := Merge(edge, align, sprites[1:]...)

	w1, h1 := head.Dim()
	w2, h2 := tail.Dim()

	var joined []string
	if edge == AlignBottom {
		// Widen both blocks to the common width, then stack the rows.
		width := maxInt(w1, w2)
		head = head.withMinWidth(width)
		tail = tail.withMinWidth(width)
		joined = append(joined, head.Rows()...)
		joined = append(joined, tail.Rows()...)
	} else {
		// Heighten both blocks to the common height, then join row by row.
		// Row's out-of-range fallback covers collapsed (empty-padding)
		// blocks that render fewer physical rows than their box height.
		height := maxInt(h1, h2)
		head = head.withMinHeight(height)
		tail = tail.withMinHeight(height)
		for i := 0; i < height; i++ {
			joined = append(joined, head.Row(i)+tail.Row(i))
		}
	}

	return NewWithOptions(strings.Join(joined, newline), Options{Padding: Space, Align: align})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
