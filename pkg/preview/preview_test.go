package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/spritebox/pkg/sprite"
)

func TestCycleWraps(t *testing.T) {
	tests := []struct {
		idx, delta, n int
		want          int
	}{
		{0, 1, 3, 1},
		{2, 1, 3, 0},
		{0, -1, 3, 2},
		{1, -1, 3, 0},
		{0, 1, 0, 0},
	}
	for _, tt := range tests {
		if got := cycle(tt.idx, tt.delta, tt.n); got != tt.want {
			t.Errorf("cycle(%d,%d,%d) = %d, want %d", tt.idx, tt.delta, tt.n, got, tt.want)
		}
	}
}

func TestUpdateCyclesSelections(t *testing.T) {
	m := New("hi")
	startFont, startFrame := m.Font(), m.Frame()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if m.Font() == startFont {
		t.Error("down key did not change the font")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.Frame() == startFrame {
		t.Error("tab key did not change the frame set")
	}
}

func TestUpdateAlignCycleCoversAllValues(t *testing.T) {
	m := New("hi")
	seen := map[sprite.Alignment]bool{m.Align(): true}
	for i := 0; i < len(sprite.Alignments())-1; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
		m = next.(Model)
		seen[m.Align()] = true
	}
	if len(seen) != len(sprite.Alignments()) {
		t.Errorf("align cycle covered %d values, want %d", len(seen), len(sprite.Alignments()))
	}
}

func TestViewContainsFrame(t *testing.T) {
	m := New("hi")
	view := m.View()
	if !strings.Contains(view, m.Font()) {
		t.Errorf("view does not mention the current font %q", m.Font())
	}
	if !strings.Contains(view, "spritebox preview") {
		t.Error("view missing the title line")
	}
}

func TestRenderEmptyInputFallsBackToDefaultPhrase(t *testing.T) {
	m := New("")
	if out := m.render(); out == "" {
		t.Error("render of empty input produced no output")
	}
}
