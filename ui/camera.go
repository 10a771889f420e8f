package ui

import (
	"math"

	"langtons-ant/game/types"
)

// Camera maps model cells to screen pixels. Offset is in model units,
// Scale is the width of one cell in pixels.
type Camera struct {
	OffsetX, OffsetY float64
	Scale            float64
	width, height    float64
}

func NewCamera(width, height int, scale float64) *Camera {
	c := &Camera{}
	c.setScale(scale)
	c.Resize(width, height)
	return c
}

// Resize updates the viewport; the model origin stays at its centre.
func (c *Camera) Resize(width, height int) {
	c.width = float64(width)
	c.height = float64(height)
}

func (c *Camera) Viewport() (int, int) {
	return int(c.width), int(c.height)
}

func (c *Camera) screenPos(m, offset, size float64) float64 {
	return math.Floor((m+offset)*c.Scale + size/2)
}

func (c *Camera) toScreen(m, offset, size float64) int {
	return int(c.screenPos(m, offset, size))
}

// toModel returns the largest cell whose floored screen position does not
// exceed s, which makes it the exact inverse of toScreen. The estimate is off
// by at most one cell per pixel, so the corrections are bounded.
func (c *Camera) toModel(s, offset, size float64) int {
	m := math.Floor((s-size/2)/c.Scale - offset)
	limit := int(math.Ceil(1/c.Scale)) + 1
	for i := 0; i < limit && c.screenPos(m+1, offset, size) <= s; i++ {
		m++
	}
	for i := 0; i < limit && c.screenPos(m, offset, size) > s; i++ {
		m--
	}
	return int(m)
}

// ModelToScreen returns the top-left pixel of a cell.
func (c *Camera) ModelToScreen(x, y float64) (int, int) {
	return c.toScreen(x, c.OffsetX, c.width), c.toScreen(y, c.OffsetY, c.height)
}

// ScreenToModel returns the cell under a pixel.
func (c *Camera) ScreenToModel(x, y float64) (int, int) {
	return c.toModel(x, c.OffsetX, c.width), c.toModel(y, c.OffsetY, c.height)
}

func (c *Camera) setScale(scale float64) {
	c.Scale = math.Min(types.MaxPixelWidth, math.Max(types.MinPixelWidth, scale))
}

// Zoom scales by 1 + delta/10 per scroll notch, clamped to the pixel width bounds.
func (c *Camera) Zoom(delta float64) {
	c.setScale(c.Scale * (1 - delta/-10))
}

// Pan moves the view by a screen-pixel distance, independent of zoom.
func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX += dx / c.Scale
	c.OffsetY += dy / c.Scale
}

// Visible reports whether the screen rectangle starting at (x, y) with the
// given size intersects the viewport.
func (c *Camera) Visible(x, y int, size float64) bool {
	if float64(x)+size < 0 || float64(y)+size < 0 {
		return false
	}
	return float64(x) <= c.width && float64(y) <= c.height
}
