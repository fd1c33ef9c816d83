package core

// Color is a foreground color token for a screen cell. It holds either an
// ANSI color code ("1", "208") or a hex color ("#ff4b4b"); the platform layer
// turns it into a terminal style. The empty Color is the terminal default.
type Color string

// Named colors used for pit chrome and HUD text.
const (
	ColorDefault    Color = ""
	ColorRed        Color = "1"
	ColorGreen      Color = "2"
	ColorYellow     Color = "3"
	ColorBlue       Color = "4"
	ColorMagenta    Color = "5"
	ColorCyan       Color = "6"
	ColorWhite      Color = "7"
	ColorBrightRed  Color = "9"
	ColorBrightCyan Color = "14"
	ColorOrange     Color = "208"
	ColorGray       Color = "245"
	ColorDarkGray   Color = "240"
)
