package ui

import (
	"fmt"
	"strings"

	"langtons-ant/game"
	"langtons-ant/game/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Frontend draws the game and feeds input back into a Controller.
type Frontend interface {
	Run(c *Controller) error
}

// Controller is the input surface shared by every frontend.
type Controller struct {
	Game   *game.Game
	Camera *Camera
	Speed  int
	Paused bool
	Hover  types.Point
	Tiles  *TileCache

	// last cell changed by Click or Paint in the current drag
	lastEdit types.Point
	edited   bool
}

// NewController wires a game to a fresh tile cache. opts are passed on to
// game.NewGame.
func NewController(width, height int, pixelWidth float64, speed int, paused bool, opts ...game.Option) *Controller {
	c := &Controller{
		Camera: NewCamera(width, height, pixelWidth),
		Paused: paused,
		Tiles:  NewTileCache(),
	}
	c.SetSpeed(speed)

	opts = append(opts,
		game.WithCellObserver(c.Tiles.SetCell),
		game.WithResetObserver(c.Tiles.Reset),
	)
	c.Game = game.NewGame(opts...)
	return c
}

func (c *Controller) SetSpeed(speed int) {
	if speed < types.MinSpeed {
		speed = types.MinSpeed
	}
	c.Speed = speed
}

func (c *Controller) TogglePause() {
	c.Paused = !c.Paused
}

func (c *Controller) StepOnce() {
	c.Game.StepN(1)
}

func (c *Controller) Reset() {
	c.Game.Reset()
}

func (c *Controller) Faster() {
	c.SetSpeed(c.Speed + 1)
}

func (c *Controller) Slower() {
	c.SetSpeed(c.Speed - 1)
}

func (c *Controller) Pan(dx, dy float64) {
	c.Camera.Pan(dx, dy)
}

// PanKeys pans by a fixed amount for each held direction key.
func (c *Controller) PanKeys(up, down, left, right bool) {
	var dx, dy float64
	if up {
		dy += types.KeyPanPixels
	}
	if down {
		dy -= types.KeyPanPixels
	}
	if left {
		dx += types.KeyPanPixels
	}
	if right {
		dx -= types.KeyPanPixels
	}
	if dx != 0 || dy != 0 {
		c.Camera.Pan(dx, dy)
	}
}

func (c *Controller) Zoom(delta float64) {
	if delta != 0 {
		c.Camera.Zoom(delta)
	}
}

// Click toggles the cell under a pixel and starts a drag.
func (c *Controller) Click(sx, sy float64) {
	x, y := c.Camera.ScreenToModel(sx, sy)
	c.Game.ToggleCell(x, y)
	c.lastEdit = types.Point{X: x, Y: y}
	c.edited = true
}

// Paint turns on the cell under a pixel while the button is held. It only
// acts once the cursor has left the last clicked or painted cell.
func (c *Controller) Paint(sx, sy float64) {
	x, y := c.Camera.ScreenToModel(sx, sy)
	pos := types.Point{X: x, Y: y}
	if c.edited && pos == c.lastEdit {
		return
	}
	c.Game.SetCell(x, y, true)
	c.lastEdit = pos
	c.edited = true
}

// Release ends a drag.
func (c *Controller) Release() {
	c.edited = false
}

func (c *Controller) MoveMouse(sx, sy float64) {
	x, y := c.Camera.ScreenToModel(sx, sy)
	c.Hover = types.Point{X: x, Y: y}
}

// Update advances the game by Speed steps unless paused.
func (c *Controller) Update() {
	if c.Paused {
		return
	}
	c.Game.StepN(c.Speed)
}

func (c *Controller) Resize(width, height int) {
	c.Camera.Resize(width, height)
}

// InfoText is the status line drawn at the top of the window.
func (c *Controller) InfoText() string {
	return fmt.Sprintf("Generation: %s | Speed: %d | Pixel Width: %.2f | Paused: %t | Active Cells: %d | Pages: %d",
		groupThousands(c.Game.Generation()), c.Speed, c.Camera.Scale, c.Paused, c.Game.OnCells(), c.Tiles.Len())
}

// MouseText is the status line drawn at the bottom of the window.
func (c *Controller) MouseText() string {
	return fmt.Sprintf("Mouse Pos: %d | %d", c.Hover.X, c.Hover.Y)
}

func Help() string {
	return strings.Join([]string{
		"==== Langton's Ant Help ====",
		" * Left click to toggle cells",
		" * Left click drag to turn on cells",
		" * Scroll to zoom",
		" * Right click drag or W/A/S/D to pan",
		" * Space to pause",
		" * Right/Left to change speed",
		" * X to step once",
		" * R to reset",
		" * Q or Esc to quit",
	}, "\n")
}

func groupThousands(n int) string {
	return printer.Sprintf("%d", n)
}
