package core

// Color is a foreground color for a screen cell. The platform decides how
// each value looks on the terminal.
type Color uint8

// Colors used by the puzzle renderer.
const (
	ColorDefault Color = iota
	ColorGray          // Walls, help text, noise
	ColorWhite         // Rocks
	ColorIce           // Open ice
	ColorGreen         // Start gate
	ColorRed           // Exit
	ColorBrightGreen   // Entry arrow, status messages
	ColorBrightRed     // Exit arrow
	ColorBrightYellow  // Player, overlay titles
	ColorBrightCyan    // Revealed solution
	ColorBrightWhite   // HUD, overlay frame
)
