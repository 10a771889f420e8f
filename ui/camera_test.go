package ui

import (
	"math"
	"testing"

	"langtons-ant/game/types"

	"github.com/stretchr/testify/assert"
)

func TestCamera_ModelToScreen(t *testing.T) {
	c := NewCamera(800, 450, 40)

	x, y := c.ModelToScreen(0, 0)
	assert.Equal(t, 400, x)
	assert.Equal(t, 225, y)

	x, y = c.ModelToScreen(-1, 2)
	assert.Equal(t, 360, x)
	assert.Equal(t, 305, y)

	c.OffsetX, c.OffsetY = 0.5, -0.25
	x, y = c.ModelToScreen(0, 0)
	assert.Equal(t, 420, x)
	assert.Equal(t, 215, y)
}

func TestCamera_RoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		width, height    int
		scale            float64
		offsetX, offsetY float64
	}{
		{"default", 800, 450, 40, 0, 0},
		{"unit scale", 801, 451, 1, 0, 0},
		{"fractional pan", 640, 480, 7.3, 0.37, -12.91},
		{"odd scale", 1280, 720, 1.0001, 1234.5678, -0.0001},
		{"large scale", 300, 200, 333.3, -2.5, 9.75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(tc.width, tc.height, tc.scale)
			c.OffsetX, c.OffsetY = tc.offsetX, tc.offsetY

			for x := -60; x <= 60; x += 7 {
				for y := -60; y <= 60; y += 5 {
					sx, sy := c.ModelToScreen(float64(x), float64(y))
					mx, my := c.ScreenToModel(float64(sx), float64(sy))
					assert.Equal(t, x, mx, "x of (%d, %d)", x, y)
					assert.Equal(t, y, my, "y of (%d, %d)", x, y)
				}
			}
		})
	}
}

func TestCamera_ScreenToModelCoversCell(t *testing.T) {
	c := NewCamera(800, 450, 10)
	c.OffsetX = 0.3

	// every pixel of a cell maps back to that cell
	sx, _ := c.ModelToScreen(4, 0)
	nx, _ := c.ModelToScreen(5, 0)
	for px := sx; px < nx; px++ {
		mx, _ := c.ScreenToModel(float64(px)+0.5, 0)
		assert.Equal(t, 4, mx, "pixel %d", px)
	}
}

func TestCamera_ZoomIsMonotonic(t *testing.T) {
	c := NewCamera(800, 450, 40)
	prev := c.Scale
	for i := 0; i < 20; i++ {
		c.Zoom(1)
		assert.Greater(t, c.Scale, prev)
		prev = c.Scale
	}

	c = NewCamera(800, 450, 40)
	prev = c.Scale
	for c.Scale > 0.1 {
		c.Zoom(-1)
		if c.Scale > 0.1 {
			assert.Less(t, c.Scale, prev)
		}
		prev = c.Scale
	}
	c.Zoom(-1)
	assert.Equal(t, 0.1, c.Scale)
}

func TestCamera_ZoomFloor(t *testing.T) {
	tests := []struct {
		delta float64
		want  float64
	}{
		{1, 44},
		{-1, 36},
		{-10, 0.1},
		{-25, 0.1},
	}
	for _, tc := range tests {
		c := NewCamera(800, 450, 40)
		c.Zoom(tc.delta)
		assert.InDelta(t, tc.want, c.Scale, 1e-9, "delta %v", tc.delta)
	}

	assert.Equal(t, 0.1, NewCamera(10, 10, -3).Scale)
}

func TestCamera_ZoomCeiling(t *testing.T) {
	c := NewCamera(800, 450, 40)
	for i := 0; i < 430; i++ {
		c.Zoom(1)
	}
	assert.Equal(t, float64(types.MaxPixelWidth), c.Scale)

	x, y := c.ScreenToModel(400, 225)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	assert.Equal(t, float64(types.MaxPixelWidth), NewCamera(10, 10, 1e9).Scale)
}

func TestCamera_ScreenToModelAtHugeScale(t *testing.T) {
	c := NewCamera(800, 450, 40)
	c.Scale = 2.5e19
	c.Pan(0.5*c.Scale, 0)

	x, y := c.ScreenToModel(400, 225)
	assert.Equal(t, -1, x)
	assert.Equal(t, 0, y)
}

func TestCamera_PanIsZoomIndependent(t *testing.T) {
	for _, scale := range []float64{1, 4, 40, 0.5} {
		c := NewCamera(800, 450, scale)
		x0, y0 := c.ModelToScreen(3, -2)
		c.Pan(20, -30)
		x1, y1 := c.ModelToScreen(3, -2)
		assert.InDelta(t, 20, x1-x0, 1, "scale %v", scale)
		assert.InDelta(t, -30, y1-y0, 1, "scale %v", scale)
	}

	c := NewCamera(800, 450, 4)
	c.Pan(8, 2)
	assert.True(t, math.Abs(c.OffsetX-2) < 1e-12)
	assert.True(t, math.Abs(c.OffsetY-0.5) < 1e-12)
}

func TestCamera_Visible(t *testing.T) {
	c := NewCamera(100, 100, 1)
	assert.True(t, c.Visible(0, 0, 10))
	assert.True(t, c.Visible(-5, -5, 10))
	assert.False(t, c.Visible(-20, 0, 10))
	assert.False(t, c.Visible(0, 101, 10))
}
