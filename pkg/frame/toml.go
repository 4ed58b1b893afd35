package frame

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// tomlSet is the TOML-serializable representation of a Set:
//
//	name = "brick"
//
//	[corners]
//	top_left = "#"
//	top_right = "#"
//	bottom_left = "#"
//	bottom_right = "#"
//
//	[edges]
//	top = "="
//	bottom = "="
//	left = "H"
//	right = "H"
type tomlSet struct {
	Name    string      `toml:"name"`
	Corners tomlCorners `toml:"corners"`
	Edges   tomlEdges   `toml:"edges"`
}

type tomlCorners struct {
	TopLeft     string `toml:"top_left"`
	TopRight    string `toml:"top_right"`
	BottomLeft  string `toml:"bottom_left"`
	BottomRight string `toml:"bottom_right"`
}

type tomlEdges struct {
	Top    string `toml:"top"`
	Bottom string `toml:"bottom"`
	Left   string `toml:"left"`
	Right  string `toml:"right"`
}

// LoadFromTOML parses a frame set definition from raw TOML bytes. The
// returned set is validated but not registered; call Register to make it
// available by name.
func LoadFromTOML(data []byte) (Set, error) {
	var ts tomlSet
	if err := toml.Unmarshal(data, &ts); err != nil {
		return Set{}, fmt.Errorf("frame: parse TOML: %w", err)
	}

	s := Set{
		Name:        ts.Name,
		TopLeft:     ts.Corners.TopLeft,
		TopRight:    ts.Corners.TopRight,
		BottomLeft:  ts.Corners.BottomLeft,
		BottomRight: ts.Corners.BottomRight,
		Top:         ts.Edges.Top,
		Bottom:      ts.Edges.Bottom,
		Left:        ts.Edges.Left,
		Right:       ts.Edges.Right,
	}
	if err := s.validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// LoadFromFile reads and parses a frame set definition from a TOML file.
func LoadFromFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("frame: read %s: %w", path, err)
	}
	return LoadFromTOML(data)
}
