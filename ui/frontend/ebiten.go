//go:build ebiten

package frontend

import (
	"image"
	"image/color"

	"langtons-ant/game/types"
	"langtons-ant/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// EbitenFrontend blits the pages of the tile cache instead of drawing every
// cell, so its cost grows with the visible area rather than the cell count.
type EbitenFrontend struct {
	Title  string
	FPS    int
	c      *ui.Controller
	pages  map[types.Point]*ebiten.Image
	epoch  int
	lastX  int
	lastY  int
	paint  bool
	width  int
	height int
}

// New returns the frontend selected at build time.
func New(title string, fps int) ui.Frontend {
	return NewEbitenFrontend(title, fps)
}

// Name identifies the frontend selected at build time.
const Name = "ebiten"

func NewEbitenFrontend(title string, fps int) *EbitenFrontend {
	return &EbitenFrontend{
		Title: title,
		FPS:   fps,
		pages: make(map[types.Point]*ebiten.Image),
	}
}

func (e *EbitenFrontend) Run(c *ui.Controller) error {
	e.c = c
	e.epoch = c.Tiles.Epoch()
	e.width, e.height = c.Camera.Viewport()

	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(e.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(e.FPS)

	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (e *EbitenFrontend) Update() error {
	c := e.c
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	cx, cy := ebiten.CursorPosition()
	mx, my := float64(cx), float64(cy)
	c.MoveMouse(mx, my)

	_, wheel := ebiten.Wheel()
	c.Zoom(wheel)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.Click(mx, my)
		e.paint = true
	} else if e.paint && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		c.Paint(mx, my)
	} else if e.paint {
		e.paint = false
		c.Release()
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		c.Pan(float64(cx-e.lastX), float64(cy-e.lastY))
	}
	e.lastX, e.lastY = cx, cy

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		c.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		c.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		c.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		c.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		c.StepOnce()
	}

	c.PanKeys(ebiten.IsKeyPressed(ebiten.KeyW), ebiten.IsKeyPressed(ebiten.KeyS),
		ebiten.IsKeyPressed(ebiten.KeyA), ebiten.IsKeyPressed(ebiten.KeyD))

	c.Update()
	return nil
}

// syncPages uploads dirty pages and drops everything after a reset.
func (e *EbitenFrontend) syncPages() {
	tiles := e.c.Tiles
	if tiles.Epoch() != e.epoch {
		for _, img := range e.pages {
			img.Deallocate()
		}
		e.pages = make(map[types.Point]*ebiten.Image)
		e.epoch = tiles.Epoch()
	}

	tiles.Each(func(page types.Point, rgba *image.RGBA, dirty bool) {
		img, ok := e.pages[page]
		if !ok {
			img = ebiten.NewImage(types.TileSize, types.TileSize)
			e.pages[page] = img
			dirty = true
		}
		if dirty {
			img.WritePixels(rgba.Pix)
		}
	})
}

func (e *EbitenFrontend) Draw(screen *ebiten.Image) {
	c := e.c
	cam := c.Camera
	screen.Fill(ui.BackgroundColor)

	e.syncPages()

	// Draw ant track
	pageSize := types.TileSize * cam.Scale
	for page, img := range e.pages {
		x, y := cam.ModelToScreen(float64(page.X*types.TileSize), float64(page.Y*types.TileSize))
		if !cam.Visible(x, y, pageSize) {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(cam.Scale, cam.Scale)
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(img, op)
	}

	// Draw ant
	ant := c.Game.GetAnt()
	ax, ay := cam.ModelToScreen(float64(ant.Position.X), float64(ant.Position.Y))
	quarter := float32(cam.Scale / 4)
	half := float32(cam.Scale / 2)
	vector.DrawFilledRect(screen, float32(ax)+quarter, float32(ay)+quarter, half, half, ui.AntColor, false)

	dir := ant.GetDirectionVector()
	centerX, centerY := float32(ax)+half, float32(ay)+half
	vector.StrokeLine(screen, centerX, centerY,
		centerX+float32(dir.X)*half, centerY+float32(dir.Y)*half, 2, ui.HeadingColor, false)

	// Draw hovered cell
	hx, hy := cam.ModelToScreen(float64(c.Hover.X), float64(c.Hover.Y))
	vector.DrawFilledRect(screen, float32(hx), float32(hy), float32(cam.Scale), float32(cam.Scale), color.NRGBA(ui.CursorColor), false)

	// Draw info
	face := basicfont.Face7x13
	text.Draw(screen, c.InfoText(), face, borderPadding, borderPadding+face.Ascent, ui.TextColor)
	text.Draw(screen, c.MouseText(), face, borderPadding, e.height-borderPadding, ui.TextColor)
}

func (e *EbitenFrontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.width || outsideHeight != e.height {
		e.width, e.height = outsideWidth, outsideHeight
		e.c.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
