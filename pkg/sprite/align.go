// Package sprite provides immutable rectangular blocks of ASCII text and the
// combinators for composing them: padding to a minimum size under a 9-way
// alignment, edge-to-edge merging, and margin wrapping. Every operation
// returns a new Sprite; nothing is mutated in place, so values are safe to
// share across goroutines.
package sprite

import (
	"fmt"
	"strings"
)

// Alignment controls where padding is inserted when a sprite is widened to a
// minimum size. It combines a horizontal axis (left/center/right) and a
// vertical axis (top/middle/bottom); e.g. AlignTopLeft is top+left and
// AlignCenter is middle+center.
type Alignment int

const (
	// AlignLeft aligns to the left edge, vertically centered (default).
	AlignLeft Alignment = iota
	// AlignTopLeft aligns to the top-left corner.
	AlignTopLeft
	// AlignBottomLeft aligns to the bottom-left corner.
	AlignBottomLeft
	// AlignRight aligns to the right edge, vertically centered.
	AlignRight
	// AlignTopRight aligns to the top-right corner.
	AlignTopRight
	// AlignBottomRight aligns to the bottom-right corner.
	AlignBottomRight
	// AlignTop aligns to the top edge, horizontally centered.
	AlignTop
	// AlignCenter centers on both axes.
	AlignCenter
	// AlignBottom aligns to the bottom edge, horizontally centered.
	AlignBottom
)

// Alignments returns all nine alignment values.
func Alignments() []Alignment {
	return []Alignment{
		AlignLeft, AlignTopLeft, AlignBottomLeft,
		AlignRight, AlignTopRight, AlignBottomRight,
		AlignTop, AlignCenter, AlignBottom,
	}
}

// Left reports whether a sits on the left horizontal third.
func (a Alignment) Left() bool {
	return a == AlignTopLeft || a == AlignLeft || a == AlignBottomLeft
}

// Center reports whether a is horizontally centered.
func (a Alignment) Center() bool {
	return a == AlignTop || a == AlignCenter || a == AlignBottom
}

// Right reports whether a sits on the right horizontal third.
func (a Alignment) Right() bool {
	return a == AlignTopRight || a == AlignRight || a == AlignBottomRight
}

// Top reports whether a sits on the top vertical third.
func (a Alignment) Top() bool {
	return a == AlignTopLeft || a == AlignTop || a == AlignTopRight
}

// Middle reports whether a is vertically centered.
func (a Alignment) Middle() bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}

// Bottom reports whether a sits on the bottom vertical third.
func (a Alignment) Bottom() bool {
	return a == AlignBottomLeft || a == AlignBottom || a == AlignBottomRight
}

var alignmentNames = map[Alignment]string{
	AlignLeft:        "left",
	AlignTopLeft:     "top-left",
	AlignBottomLeft:  "bottom-left",
	AlignRight:       "right",
	AlignTopRight:    "top-right",
	AlignBottomRight: "bottom-right",
	AlignTop:         "top",
	AlignCenter:      "center",
	AlignBottom:      "bottom",
}

// String returns the lowercase hyphenated name of the alignment.
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("alignment(%d)", int(a))
}

// ParseAlignment converts a name like "top-left" or "center" into an
// Alignment. Names are matched case-insensitively; "topleft" is accepted as
// an alias for "top-left" (and likewise for the other corners).
func ParseAlignment(name string) (Alignment, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for a, n := range alignmentNames {
		if want == n || want == strings.ReplaceAll(n, "-", "") {
			return a, nil
		}
	}
	return AlignLeft, fmt.Errorf("sprite: unknown alignment %q", name)
}
