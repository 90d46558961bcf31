package core

// Color represents a foreground color for a screen cell. The platform layer
// maps each value to a terminal color.
type Color uint8

// Colors used by the gallows board.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightRed
	ColorGray
)
