//go:build !ebiten

package frontend

import (
	"math"

	"langtons-ant/game/types"
	"langtons-ant/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibFrontend draws every on cell as a rectangle each frame.
type RaylibFrontend struct {
	Title        string
	FPS          int32
	screenWidth  int32
	screenHeight int32
	painting     bool
}

// New returns the frontend selected at build time.
func New(title string, fps int) ui.Frontend {
	return NewRaylibFrontend(title, fps)
}

// Name identifies the frontend selected at build time.
const Name = "raylib"

func NewRaylibFrontend(title string, fps int) *RaylibFrontend {
	return &RaylibFrontend{
		Title: title,
		FPS:   int32(fps),
	}
}

func (r *RaylibFrontend) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *RaylibFrontend) Run(c *ui.Controller) error {
	width, height := c.Camera.Viewport()
	rl.InitWindow(int32(width), int32(height), r.Title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(r.FPS)
	r.UpdateDimensions()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		// Handle window resize
		if rl.IsWindowResized() {
			r.UpdateDimensions()
			c.Resize(int(r.screenWidth), int(r.screenHeight))
		}

		r.handleInput(c)
		c.Update()
		r.Draw(c)
	}
	return nil
}

func (r *RaylibFrontend) handleInput(c *ui.Controller) {
	mouse := rl.GetMousePosition()
	mx, my := float64(mouse.X), float64(mouse.Y)
	c.MoveMouse(mx, my)

	c.Zoom(float64(rl.GetMouseWheelMove()))

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		c.Click(mx, my)
		r.painting = true
	} else if r.painting && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		c.Paint(mx, my)
	} else if r.painting {
		r.painting = false
		c.Release()
	}

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		c.Pan(float64(delta.X), float64(delta.Y))
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		c.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		c.Reset()
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		c.Faster()
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		c.Slower()
	}
	if rl.IsKeyPressed(rl.KeyX) {
		c.StepOnce()
	}

	c.PanKeys(rl.IsKeyDown(rl.KeyW), rl.IsKeyDown(rl.KeyS), rl.IsKeyDown(rl.KeyA), rl.IsKeyDown(rl.KeyD))
}

func (r *RaylibFrontend) Draw(c *ui.Controller) {
	rl.BeginDrawing()
	rl.ClearBackground(ui.BackgroundColor)

	cam := c.Camera
	size := int32(math.Ceil(cam.Scale))

	// Draw ant track
	c.Game.EachCell(func(pos types.Point, stamp int) {
		x, y := cam.ModelToScreen(float64(pos.X), float64(pos.Y))
		if !cam.Visible(x, y, cam.Scale) {
			return
		}
		rl.DrawRectangle(int32(x), int32(y), size, size, ui.AgeColor(stamp))
	})

	// Draw ant
	ant := c.Game.GetAnt()
	ax, ay := cam.ModelToScreen(float64(ant.Position.X), float64(ant.Position.Y))
	quarter := float32(cam.Scale / 4)
	half := float32(cam.Scale / 2)
	rl.DrawRectangleV(
		rl.Vector2{X: float32(ax) + quarter, Y: float32(ay) + quarter},
		rl.Vector2{X: half, Y: half},
		ui.AntColor)

	// Draw heading indicator
	dir := ant.GetDirectionVector()
	center := rl.Vector2{X: float32(ax) + half, Y: float32(ay) + half}
	tip := rl.Vector2{X: center.X + float32(dir.X)*half, Y: center.Y + float32(dir.Y)*half}
	rl.DrawLineEx(center, tip, 2, ui.HeadingColor)

	// Draw hovered cell
	hx, hy := cam.ModelToScreen(float64(c.Hover.X), float64(c.Hover.Y))
	rl.DrawRectangle(int32(hx), int32(hy), size, size, ui.CursorColor)

	// Draw info
	rl.DrawText(c.InfoText(), borderPadding, borderPadding, fontSize, ui.TextColor)
	rl.DrawText(c.MouseText(), borderPadding, r.screenHeight-borderPadding-fontSize, fontSize, ui.TextColor)

	rl.EndDrawing()
}
