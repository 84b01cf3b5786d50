package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorGold
)

// hexColors maps the display tokens used by power-ups to terminal colors.
var hexColors = map[string]Color{
	"#00ffff": ColorBrightCyan,
	"#ff6600": ColorOrange,
	"#ff00ff": ColorBrightMagenta,
	"#00ff00": ColorBrightGreen,
	"#ff0000": ColorBrightRed,
	"#ffff00": ColorBrightYellow,
	"#ffd700": ColorGold,
}

// ColorFromHex returns the closest predefined color for a hex token.
func ColorFromHex(hex string) Color {
	if c, ok := hexColors[hex]; ok {
		return c
	}
	return ColorDefault
}
