package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI colors at render time.
type Color uint8

// Predefined colors. The seven piece colors follow the conventional
// tetromino palette.
const (
	ColorDefault Color = iota
	ColorCyan          // I
	ColorBlue          // J
	ColorOrange        // L
	ColorYellow        // O
	ColorGreen         // S
	ColorMagenta       // T
	ColorRed           // Z
	ColorWhite
	ColorGray
)
