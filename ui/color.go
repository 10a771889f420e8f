package ui

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hueDivisor controls how many generations one hue step spans
const hueDivisor = 20.0

var (
	BackgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	PageColor       = color.RGBA{R: 0, G: 0, B: 20, A: 255}
	AntColor        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	HeadingColor    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	CursorColor     = color.RGBA{R: 255, G: 255, B: 255, A: 110} // straight alpha
	TextColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// AgeColor maps a generation stamp to a colour cycling through the hues, so
// neighbouring cells turned on at different times are told apart.
func AgeColor(stamp int) color.RGBA {
	if stamp <= 0 {
		return BackgroundColor
	}
	hue := math.Mod(math.Mod(float64(stamp)/hueDivisor, 256)/255*360, 360)
	r, g, b := colorful.Hsv(hue, 0.5, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
