package frame

// registerBuiltins loads the builtin frame sets into the registry.
func registerBuiltins() {
	for _, s := range []Set{
		asciiSet(),
		singleSet(),
		doubleSet(),
		roundedSet(),
		heavySet(),
		dashedSet(),
		starsSet(),
	} {
		// Builtins are statically valid.
		_ = Register(s)
	}
}

// asciiSet is the classic +--+ frame, safe for any terminal or log file.
func asciiSet() Set {
	return Set{
		Name:    "ascii",
		TopLeft: "+", Top: "-", TopRight: "+",
		Left: "|", Right: "|",
		BottomLeft: "+", Bottom: "-", BottomRight: "+",
	}
}

func singleSet() Set {
	return Set{
		Name:    "single",
		TopLeft: "┌", Top: "─", TopRight: "┐",
		Left: "│", Right: "│",
		BottomLeft: "└", Bottom: "─", BottomRight: "┘",
	}
}

func doubleSet() Set {
	return Set{
		Name:    "double",
		TopLeft: "╔", Top: "═", TopRight: "╗",
		Left: "║", Right: "║",
		BottomLeft: "╚", Bottom: "═", BottomRight: "╝",
	}
}

func roundedSet() Set {
	return Set{
		Name:    "rounded",
		TopLeft: "╭", Top: "─", TopRight: "╮",
		Left: "│", Right: "│",
		BottomLeft: "╰", Bottom: "─", BottomRight: "╯",
	}
}

func heavySet() Set {
	return Set{
		Name:    "heavy",
		TopLeft: "┏", Top: "━", TopRight: "┓",
		Left: "┃", Right: "┃",
		BottomLeft: "┗", Bottom: "━", BottomRight: "┛",
	}
}

func dashedSet() Set {
	return Set{
		Name:    "dashed",
		TopLeft: "┌", Top: "┄", TopRight: "┐",
		Left: "┆", Right: "┆",
		BottomLeft: "└", Bottom: "┄", BottomRight: "┘",
	}
}

func starsSet() Set {
	return Set{
		Name:    "stars",
		TopLeft: "*", Top: "*", TopRight: "*",
		Left: "*", Right: "*",
		BottomLeft: "*", Bottom: "*", BottomRight: "*",
	}
}
