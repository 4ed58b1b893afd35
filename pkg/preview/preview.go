// Package preview provides the interactive frame-and-font preview launched
// by the demo binary's -preview flag. It is a small bubbletea program: a
// text input for the phrase, with keys for cycling through the figlet fonts,
// frame sets, and body alignments while the composed result re-renders live.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/spritebox/pkg/figfont"
	"gitlab.com/tinyland/lab/spritebox/pkg/frame"
	"gitlab.com/tinyland/lab/spritebox/pkg/sprite"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75"))
)

// Model is the bubbletea model for the preview. Construct it with New.
type Model struct {
	input  textinput.Model
	fonts  []string
	frames []string
	aligns []sprite.Alignment

	fontIdx  int
	frameIdx int
	alignIdx int

	width  int
	height int
}

// New returns a preview model seeded with the given phrase.
func New(text string) Model {
	input := textinput.New()
	input.Placeholder = "type something"
	input.SetValue(text)
	input.Focus()

	return Model{
		input:  input,
		fonts:  figfont.Fonts(),
		frames: frame.Names(),
		aligns: sprite.Alignments(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Arrow keys cycle the font, tab cycles the
// frame set, ctrl+o cycles the body alignment; everything printable goes to
// the text input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			m.fontIdx = cycle(m.fontIdx, -1, len(m.fonts))
			return m, nil
		case "down":
			m.fontIdx = cycle(m.fontIdx, 1, len(m.fonts))
			return m, nil
		case "tab":
			m.frameIdx = cycle(m.frameIdx, 1, len(m.frames))
			return m, nil
		case "shift+tab":
			m.frameIdx = cycle(m.frameIdx, -1, len(m.frames))
			return m, nil
		case "ctrl+o":
			m.alignIdx = cycle(m.alignIdx, 1, len(m.aligns))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("spritebox preview"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.render())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"font %s (↑/↓) · frame %s (tab) · align %s (ctrl+o) · esc quits",
		m.Font(), m.Frame(), m.Align())))
	b.WriteString("\n")
	return b.String()
}

// Font returns the currently selected font name.
func (m Model) Font() string {
	return m.fonts[m.fontIdx]
}

// Frame returns the currently selected frame set name.
func (m Model) Frame() string {
	return m.frames[m.frameIdx]
}

// Align returns the currently selected body alignment.
func (m Model) Align() sprite.Alignment {
	return m.aligns[m.alignIdx]
}

// render composes the current phrase through the figfont/frame pipeline.
func (m Model) render() string {
	text := m.input.Value()
	if text == "" {
		text = "spritebox"
	}

	body := figfont.Render(text, m.Font())
	b, err := frame.Get(m.Frame()).Border()
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return b.Frame(body, m.Align(), sprite.Space).Textbox()
}

// cycle steps an index by delta within [0, n), wrapping at both ends.
func cycle(idx, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((idx+delta)%n + n) % n
}

// Run launches the preview program and blocks until the user quits.
func Run(text string) error {
	_, err := tea.NewProgram(New(text), tea.WithAltScreen()).Run()
	return err
}
