package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by the game presenters.
const (
	ColorDefault Color = iota
	ColorRed           // Obstacles
	ColorGreen         // Platforms
	ColorYellow        // Goal
	ColorCyan          // Player
	ColorWhite         // Paddles, ball, scores
	ColorGray          // Center line, HUD hints
)
