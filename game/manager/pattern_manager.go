package manager

import (
	"langtons-ant/game/types"

	"golang.org/x/exp/rand"
)

// PatternManager seeds the grid with a reproducible random pattern.
type PatternManager struct {
	seed uint64
}

func NewPatternManager(seed uint64) *PatternManager {
	return &PatternManager{seed: seed}
}

// Scatter turns on each cell of the square [-radius, radius]^2 with
// probability density, stamped with stamp. The same seed always produces the
// same cells. Returns how many cells were turned on.
func (pm *PatternManager) Scatter(grid *GridManager, radius int, density float64, stamp int) int {
	if radius < 0 {
		return 0
	}
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}

	rng := rand.New(rand.NewSource(pm.seed))
	placed := 0

	// Row-major order keeps the random sequence bound to fixed coordinates
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if rng.Float64() >= density {
				continue
			}
			pos := types.Point{X: x, Y: y}
			if !grid.IsOn(pos) {
				placed++
			}
			grid.Set(pos, stamp)
		}
	}
	return placed
}

func (pm *PatternManager) Seed() uint64 {
	return pm.seed
}
