package border

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"gitlab.com/tinyland/lab/spritebox/pkg/sprite"
)

// asciiTiles returns a complete single-character tile map: "+" corners,
// "-" horizontal edges, "|" vertical edges.
func asciiTiles() map[sprite.Alignment]sprite.Sprite {
	return map[sprite.Alignment]sprite.Sprite{
		sprite.AlignTopLeft:     sprite.New("+"),
		sprite.AlignTopRight:    sprite.New("+"),
		sprite.AlignBottomLeft:  sprite.New("+"),
		sprite.AlignBottomRight: sprite.New("+"),
		sprite.AlignTop:         sprite.New("-"),
		sprite.AlignBottom:      sprite.New("-"),
		sprite.AlignLeft:        sprite.New("|"),
		sprite.AlignRight:       sprite.New("|"),
	}
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func TestNewMissingCorner(t *testing.T) {
	tiles := asciiTiles()
	delete(tiles, sprite.AlignBottomRight)
	_, err := New(tiles)
	if err == nil {
		t.Fatal("New without bottom-right corner returned nil error")
	}
	if !errors.Is(err, ErrMisconfigured) {
		t.Errorf("error %v does not wrap ErrMisconfigured", err)
	}
}

func TestNewMissingBothHorizontalEdges(t *testing.T) {
	tiles := asciiTiles()
	delete(tiles, sprite.AlignTop)
	delete(tiles, sprite.AlignBottom)
	if _, err := New(tiles); !errors.Is(err, ErrMisconfigured) {
		t.Errorf("New without top and bottom = %v, want ErrMisconfigured", err)
	}
}

func TestNewMissingBothVerticalEdges(t *testing.T) {
	tiles := asciiTiles()
	delete(tiles, sprite.AlignLeft)
	delete(tiles, sprite.AlignRight)
	if _, err := New(tiles); !errors.Is(err, ErrMisconfigured) {
		t.Errorf("New without left and right = %v, want ErrMisconfigured", err)
	}
}

func TestNewMismatchedHorizontalWidths(t *testing.T) {
	tiles := asciiTiles()
	tiles[sprite.AlignBottom] = sprite.New("--")
	_, err := New(tiles)
	if !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("New with mismatched widths = %v, want ErrMisconfigured", err)
	}
	if !strings.Contains(err.Error(), "widths") {
		t.Errorf("error %q does not mention widths", err)
	}
}

func TestNewMismatchedVerticalHeights(t *testing.T) {
	tiles := asciiTiles()
	tiles[sprite.AlignRight] = sprite.New("|\n|")
	if _, err := New(tiles); !errors.Is(err, ErrMisconfigured) {
		t.Errorf("New with mismatched heights = %v, want ErrMisconfigured", err)
	}
}

func TestNewZeroSizeTiles(t *testing.T) {
	tiles := asciiTiles()
	tiles[sprite.AlignTop] = sprite.Null
	tiles[sprite.AlignBottom] = sprite.Null
	if _, err := New(tiles); !errors.Is(err, ErrMisconfigured) {
		t.Errorf("New with zero-width edge tiles = %v, want ErrMisconfigured", err)
	}
}

func TestNewMissingBottomReusesTop(t *testing.T) {
	tiles := asciiTiles()
	delete(tiles, sprite.AlignBottom)
	tiles[sprite.AlignTop] = sprite.New("=")
	b, err := New(tiles)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out := b.Render("hi", sprite.AlignCenter, sprite.Space)
	rows := out.Rows()
	if len(rows) != 2 {
		t.Fatalf("Render produced %d rows, want 2", len(rows))
	}
	if !strings.Contains(rows[1], "=") {
		t.Errorf("bottom line %q does not reuse the top tile", rows[1])
	}
}

// ---------------------------------------------------------------------------
// Render / Frame
// ---------------------------------------------------------------------------

func TestRenderTopAndBottomLines(t *testing.T) {
	b, err := New(asciiTiles())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := b.Render("hi", sprite.AlignCenter, sprite.Space)
	want := "+-----+\n+-----+"
	if got.Textbox() != want {
		t.Errorf("Render = %q, want %q", got.Textbox(), want)
	}
}

func TestRenderCoversBodyWidth(t *testing.T) {
	b, err := New(asciiTiles())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := b.Render("text", sprite.AlignLeft, sprite.Space)
	rows := got.Rows()
	if len(rows) != 2 {
		t.Fatalf("Render produced %d rows, want 2", len(rows))
	}
	topLen := utf8.RuneCountInString(rows[0])
	bottomLen := utf8.RuneCountInString(rows[1])
	if topLen != bottomLen {
		t.Errorf("line lengths differ: %d vs %d", topLen, bottomLen)
	}
	if topLen < len("text")+2 {
		t.Errorf("line length %d, want at least text width + 2 = %d", topLen, len("text")+2)
	}
}

func TestFrameFullAssembly(t *testing.T) {
	b, err := New(asciiTiles())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := b.Frame("hi", sprite.AlignCenter, sprite.Space)
	want := strings.Join([]string{
		"+-----+",
		"|     |",
		"| hi  |",
		"|     |",
		"|     |",
		"+-----+",
	}, "\n")
	if got.Textbox() != want {
		t.Errorf("Frame =\n%s\nwant\n%s", got.Textbox(), want)
	}
}

func TestFrameRectangular(t *testing.T) {
	b, err := New(asciiTiles())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := b.Frame("multi\nline\nbody", sprite.AlignTopLeft, ".")
	w, h := got.Dim()
	rows := got.Rows()
	if len(rows) != h {
		t.Fatalf("%d rows, want %d", len(rows), h)
	}
	for i, row := range rows {
		if utf8.RuneCountInString(row) != w {
			t.Errorf("row %d width %d, want %d", i, utf8.RuneCountInString(row), w)
		}
	}
	if !strings.Contains(got.Textbox(), ".") {
		t.Error("interior fill missing from frame")
	}
}

func TestFrameInvalidFillFallsBackToSpace(t *testing.T) {
	b, err := New(asciiTiles())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	withBadFill := b.Frame("hi", sprite.AlignCenter, "##")
	withSpace := b.Frame("hi", sprite.AlignCenter, sprite.Space)
	if withBadFill.Textbox() != withSpace.Textbox() {
		t.Errorf("multi-char fill output differs from space fill:\n%s\nvs\n%s",
			withBadFill.Textbox(), withSpace.Textbox())
	}
}

func TestFrameMultiCellTiles(t *testing.T) {
	tiles := map[sprite.Alignment]sprite.Sprite{
		sprite.AlignTopLeft:     sprite.New("/*"),
		sprite.AlignTopRight:    sprite.New("*\\"),
		sprite.AlignBottomLeft:  sprite.New("\\*"),
		sprite.AlignBottomRight: sprite.New("*/"),
		sprite.AlignTop:         sprite.New("=="),
		sprite.AlignBottom:      sprite.New("=="),
		sprite.AlignLeft:        sprite.New("|"),
		sprite.AlignRight:       sprite.New("|"),
	}
	b, err := New(tiles)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := b.Render("wide body text", sprite.AlignLeft, sprite.Space)
	rows := got.Rows()
	if len(rows) != 2 {
		t.Fatalf("Render produced %d rows, want 2", len(rows))
	}
	if utf8.RuneCountInString(rows[0]) < len("wide body text")+2 {
		t.Errorf("top line %q too short for body", rows[0])
	}
}
