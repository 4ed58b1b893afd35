// spritebox renders text as framed ASCII banners.
//
// It pipes a phrase through a figlet font, encloses the result in a tiled
// frame built from corner and edge sprites, and prints the composed block.
// Input comes from -text or from stdin when piped; ANSI escape sequences in
// piped input are stripped before layout so widths stay honest.
//
// Usage:
//
//	spritebox [flags]
//
// Flags:
//
//	-text string        Text to render (default: stdin, or "spritebox")
//	-font string        Figlet font name; "none" skips font rendering
//	-frame string       Frame set name (see -list-frames)
//	-frame-file string  Path to a TOML frame set definition
//	-align string       Body alignment inside the frame (default: center)
//	-fill string        Interior fill character (default: space)
//	-margin int         Blank margin rows/columns around the result
//	-center             Center the output in the terminal
//	-frame-only         Print only the top and bottom frame lines
//	-list-fonts         List available font names
//	-list-frames        List available frame set names
//	-no-color           Disable colored output
//	-preview            Launch the interactive preview
//	-verbose            Enable verbose logging
//	-version            Print version and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/spritebox/pkg/figfont"
	"gitlab.com/tinyland/lab/spritebox/pkg/frame"
	"gitlab.com/tinyland/lab/spritebox/pkg/preview"
	"gitlab.com/tinyland/lab/spritebox/pkg/sprite"
	"gitlab.com/tinyland/lab/spritebox/pkg/terminal"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

const defaultPhrase = "spritebox"

func main() {
	var (
		text       = flag.String("text", "", "Text to render")
		fontName   = flag.String("font", figfont.DefaultFont, `Figlet font name ("none" skips font rendering)`)
		frameName  = flag.String("frame", frame.DefaultSet, "Frame set name")
		frameFile  = flag.String("frame-file", "", "Path to a TOML frame set definition")
		alignName  = flag.String("align", "center", "Body alignment inside the frame")
		fill       = flag.String("fill", sprite.Space, "Interior fill character")
		margin     = flag.Int("margin", 0, "Blank margin rows/columns around the result")
		center     = flag.Bool("center", false, "Center the output in the terminal")
		frameOnly  = flag.Bool("frame-only", false, "Print only the top and bottom frame lines")
		listFonts  = flag.Bool("list-fonts", false, "List available font names")
		listFrames = flag.Bool("list-frames", false, "List available frame set names")
		noColor    = flag.Bool("no-color", false, "Disable colored output")
		runPreview = flag.Bool("preview", false, "Launch the interactive preview")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		showVer    = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	setupLogging(*verbose)

	if *showVer {
		fmt.Printf("spritebox %s (%s, %s)\n", version, commit, date)
		return
	}
	if *listFonts {
		fmt.Println(strings.Join(figfont.Fonts(), "\n"))
		return
	}
	if *listFrames {
		fmt.Println(strings.Join(frame.Names(), "\n"))
		return
	}

	phrase := readPhrase(*text)

	if *runPreview {
		if err := preview.Run(phrase); err != nil {
			slog.Error("preview failed", "error", err)
			os.Exit(1)
		}
		return
	}

	align, err := sprite.ParseAlignment(*alignName)
	if err != nil {
		slog.Error("invalid alignment", "error", err)
		os.Exit(1)
	}

	set := frame.Get(*frameName)
	if *frameFile != "" {
		set, err = frame.LoadFromFile(*frameFile)
		if err != nil {
			slog.Error("loading frame set", "error", err)
			os.Exit(1)
		}
	}

	b, err := set.Border()
	if err != nil {
		slog.Error("building border", "frame", set.Name, "error", err)
		os.Exit(1)
	}

	body := phrase
	if *fontName != "none" {
		body = figfont.Render(phrase, *fontName)
	}
	slog.Debug("composing banner", "font", *fontName, "frame", set.Name, "align", align)

	var out sprite.Sprite
	if *frameOnly {
		out = b.Render(body, align, *fill)
	} else {
		out = b.Frame(body, align, *fill)
	}

	if *margin > 0 {
		out = sprite.Wrap(out, sprite.Space,
			sprite.Margin{Edge: sprite.AlignTop, Width: *margin},
			sprite.Margin{Edge: sprite.AlignBottom, Width: *margin},
			sprite.Margin{Edge: sprite.AlignLeft, Width: *margin},
			sprite.Margin{Edge: sprite.AlignRight, Width: *margin},
		)
	}

	if *center {
		out = centerInTerminal(out)
	}

	fmt.Println(colorize(out.Textbox(), *noColor))
}

// setupLogging installs a text slog handler on stderr. Verbose mode lowers
// the level to debug.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// readPhrase resolves the text to render: the -text flag wins, then piped
// stdin (with ANSI escapes stripped), then the default phrase.
func readPhrase(flagText string) string {
	if flagText != "" {
		return flagText
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			slog.Warn("reading stdin", "error", err)
		}
		if piped := strings.TrimRight(ansi.Strip(string(data)), "\n"); piped != "" {
			return piped
		}
	}
	return defaultPhrase
}

// centerInTerminal pads the sprite on the left so it sits centered in the
// current terminal width. Output wider than the terminal is left untouched.
func centerInTerminal(s sprite.Sprite) sprite.Sprite {
	cols := terminal.GetSize().Cols
	width, _ := s.Dim()
	if width >= cols {
		return s
	}
	return sprite.Wrap(s, sprite.Space, sprite.Margin{Edge: sprite.AlignLeft, Width: (cols - width) / 2})
}

// colorize applies the accent color to the rendered block when stdout is a
// color-capable terminal.
func colorize(rendered string, noColor bool) string {
	if noColor {
		return rendered
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return rendered
	}
	if termenv.EnvColorProfile() == termenv.Ascii {
		return rendered
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Render(rendered)
}
