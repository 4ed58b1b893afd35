// Package figfont renders text into large ASCII letterforms using figlet
// fonts. It is the string-producing collaborator of the sprite layer: the
// output is plain multi-line text ready to become a Sprite, and nothing in
// here inspects font metadata.
package figfont

import (
	"fmt"
	"strings"

	figure "github.com/common-nighthawk/go-figure"
)

// DefaultFont is used when no font name is given.
const DefaultFont = "standard"

// Render converts text into the named figlet font. An unknown font name is
// not an error: the result degrades to a diagnostic placeholder of the form
//
//	<font="NAME(invalid)">TEXT</font>
//
// which is itself valid sprite input.
func Render(text, font string) (out string) {
	if font == "" {
		font = DefaultFont
	}
	// go-figure panics on unknown font names in strict mode; recover into
	// the placeholder instead of propagating.
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("<font=%q>%s</font>", font+"(invalid)", text)
		}
	}()
	return strings.Join(figure.NewFigure(text, font, true).Slicify(), "\n")
}

// Fonts returns the curated font names cycled through by the preview and
// accepted by the -list-fonts demo flag. All of them ship with go-figure.
func Fonts() []string {
	return []string{
		"standard",
		"slant",
		"small",
		"big",
		"block",
		"banner",
		"digital",
		"doh",
		"doom",
		"3-d",
		"larry3d",
		"shadow",
		"lean",
		"mini",
	}
}

// Doh renders text in the doh font.
func Doh(text string) string {
	return Render(text, "doh")
}

// Digital renders text in the digital font:
//
//	+-+-+-+-+-+-+-+
//	|d|i|g|i|t|a|l|
//	+-+-+-+-+-+-+-+
func Digital(text string) string {
	return Render(text, "digital")
}

// Doom renders text in the doom font.
func Doom(text string) string {
	return Render(text, "doom")
}

// ThreeD renders text in the 3-d font.
func ThreeD(text string) string {
	return Render(text, "3-d")
}
