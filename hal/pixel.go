package hal

import "image/color"

var (
	// On lights a panel pixel.
	On = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	// Off clears a panel pixel.
	Off = color.RGBA{}
)

func lit(c color.RGBA) bool {
	return c.R != 0 || c.G != 0 || c.B != 0
}
