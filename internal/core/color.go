package core

import "fmt"

// Color is a 24-bit RGB color carried by draw intents.
// The presenter decides how to map it onto the output device.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color in #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette colors used by the game.
var (
	ColorBackground  = RGB(20, 20, 28)
	ColorPlayer      = RGB(80, 200, 255)
	ColorObstacle    = RGB(255, 80, 100)
	ColorWhite       = RGB(255, 255, 255)
	ColorTip         = RGB(190, 190, 190)
	ColorButton      = RGB(7, 59, 76)
	ColorButtonHover = RGB(255, 209, 102)
)
