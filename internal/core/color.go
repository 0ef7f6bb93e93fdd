package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI palette entry.
type Color uint8

// Palette used by the table renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
