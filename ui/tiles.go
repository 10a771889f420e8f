package ui

import (
	"image"

	"langtons-ant/game/types"
)

// TileCache rasterizes cells into fixed-size pages as they change, so a
// renderer only has to blit pages instead of visiting every cell each frame.
type TileCache struct {
	pages map[types.Point]*image.RGBA
	dirty map[types.Point]bool
	epoch int
}

func NewTileCache() *TileCache {
	return &TileCache{
		pages: make(map[types.Point]*image.RGBA),
		dirty: make(map[types.Point]bool),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// PageOf returns the page holding a cell and the cell's pixel within it.
func PageOf(pos types.Point) (page, pixel types.Point) {
	page = types.Point{X: floorDiv(pos.X, types.TileSize), Y: floorDiv(pos.Y, types.TileSize)}
	pixel = types.Point{X: floorMod(pos.X, types.TileSize), Y: floorMod(pos.Y, types.TileSize)}
	return page, pixel
}

// SetCell is a game.CellObserver.
func (tc *TileCache) SetCell(pos types.Point, stamp int) {
	page, pixel := PageOf(pos)

	img, ok := tc.pages[page]
	if !ok {
		img = image.NewRGBA(image.Rect(0, 0, types.TileSize, types.TileSize))
		for y := 0; y < types.TileSize; y++ {
			for x := 0; x < types.TileSize; x++ {
				img.SetRGBA(x, y, PageColor)
			}
		}
		tc.pages[page] = img
	}

	img.SetRGBA(pixel.X, pixel.Y, AgeColor(stamp))
	tc.dirty[page] = true
}

// Reset drops every page.
func (tc *TileCache) Reset() {
	tc.pages = make(map[types.Point]*image.RGBA)
	tc.dirty = make(map[types.Point]bool)
	tc.epoch++
}

// Epoch changes on every Reset, so holders of derived images know to drop them.
func (tc *TileCache) Epoch() int {
	return tc.epoch
}

func (tc *TileCache) Len() int {
	return len(tc.pages)
}

func (tc *TileCache) Page(page types.Point) (*image.RGBA, bool) {
	img, ok := tc.pages[page]
	return img, ok
}

// Each calls fn for every page with its dirty flag, then clears the flags.
func (tc *TileCache) Each(fn func(page types.Point, img *image.RGBA, dirty bool)) {
	for page, img := range tc.pages {
		fn(page, img, tc.dirty[page])
	}
	tc.dirty = make(map[types.Point]bool)
}
