// Package frame manages named sets of border tiles. A Set names the eight
// sprites of a rectangular frame (four corners, four repeating edges) and
// feeds them to the border package. Builtin sets cover the common
// box-drawing styles; custom sets can be registered programmatically or
// loaded from TOML files.
package frame

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/spritebox/pkg/border"
	"gitlab.com/tinyland/lab/spritebox/pkg/sprite"
)

// DefaultSet is the name of the set returned when a lookup fails.
const DefaultSet = "ascii"

// Set defines the tile text for each position of a frame. Corner and edge
// tiles may be multi-character and multi-line; an empty edge string means
// "reuse the opposite edge" (an empty corner is a configuration error,
// surfaced by Border).
type Set struct {
	Name string

	TopLeft  string
	Top      string
	TopRight string

	Left  string
	Right string

	BottomLeft  string
	Bottom      string
	BottomRight string
}

var (
	mu       sync.RWMutex
	registry = map[string]Set{}
)

func init() {
	registerBuiltins()
}

// Get returns a named frame set, falling back to the default when the name
// is unknown. Lookup is case-insensitive.
func Get(name string) Set {
	mu.RLock()
	defer mu.RUnlock()
	if s, ok := registry[strings.ToLower(name)]; ok {
		return s
	}
	return registry[DefaultSet]
}

// Names returns all registered set names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a set to the registry under its lowercase name, replacing
// any existing set with the same name.
func Register(s Set) error {
	if err := s.validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(s.Name)] = s
	return nil
}

// Tiles converts the set into the tile map consumed by border.New. Empty
// tile strings are omitted so Border applies its reuse-the-other-half rule.
func (s Set) Tiles() map[sprite.Alignment]sprite.Sprite {
	tiles := map[sprite.Alignment]sprite.Sprite{}
	for pos, text := range map[sprite.Alignment]string{
		sprite.AlignTopLeft:     s.TopLeft,
		sprite.AlignTop:         s.Top,
		sprite.AlignTopRight:    s.TopRight,
		sprite.AlignLeft:        s.Left,
		sprite.AlignRight:       s.Right,
		sprite.AlignBottomLeft:  s.BottomLeft,
		sprite.AlignBottom:      s.Bottom,
		sprite.AlignBottomRight: s.BottomRight,
	} {
		if text != "" {
			tiles[pos] = sprite.New(text)
		}
	}
	return tiles
}

// Border builds the validated Border for this set.
func (s Set) Border() (*border.Border, error) {
	return border.New(s.Tiles())
}

// validate checks the structural requirements a registry entry must meet.
// Geometric validation (matching tile widths and heights) stays with
// border.New; this only rejects sets that could never build a Border.
func (s Set) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("frame: set has no name")
	}
	for pos, text := range map[string]string{
		"top-left":     s.TopLeft,
		"top-right":    s.TopRight,
		"bottom-left":  s.BottomLeft,
		"bottom-right": s.BottomRight,
	} {
		if text == "" {
			return fmt.Errorf("frame: set %q missing %s corner", s.Name, pos)
		}
	}
	if s.Top == "" && s.Bottom == "" {
		return fmt.Errorf("frame: set %q missing top and bottom edges", s.Name)
	}
	if s.Left == "" && s.Right == "" {
		return fmt.Errorf("frame: set %q missing left and right edges", s.Name)
	}
	return nil
}
