package game

import (
	"time"

	"langtons-ant/game/entity"
	"langtons-ant/game/manager"
	"langtons-ant/game/types"

	"github.com/google/uuid"
)

// Option configures a Game at construction time.
type Option func(*Game)

// WithCellObserver registers fn to be told about every cell mutation.
// A stamp of 0 means the cell was turned off.
func WithCellObserver(fn manager.CellObserver) Option {
	return func(g *Game) {
		g.cellObserver = fn
	}
}

// WithResetObserver registers fn to be called on Reset, once the old state
// is discarded and before the new grid is seeded.
func WithResetObserver(fn func()) Option {
	return func(g *Game) {
		g.resetObserver = fn
	}
}

// WithPattern seeds every fresh grid (including after Reset) with a random
// scatter of on cells.
func WithPattern(seed uint64, radius int, density float64) Option {
	return func(g *Game) {
		g.pattern = manager.NewPatternManager(seed)
		g.patternRadius = radius
		g.patternDensity = density
	}
}

type Game struct {
	UUID       string
	StartTime  time.Time
	Stats      *RunStats
	ant        *entity.Ant
	grid       *manager.GridManager
	generation int

	cellObserver   manager.CellObserver
	resetObserver  func()
	pattern        *manager.PatternManager
	patternRadius  int
	patternDensity float64
}

func NewGame(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	g.grid = manager.NewGridManager(g.cellObserver)
	g.init()
	return g
}

func (g *Game) init() {
	g.UUID = uuid.New().String()
	g.StartTime = time.Now()
	g.ant = entity.NewAnt(types.Point{X: 0, Y: 0})
	g.generation = types.FirstGeneration

	if g.pattern != nil {
		g.pattern.Scatter(g.grid, g.patternRadius, g.patternDensity, g.generation)
	}
	g.Stats = NewRunStats(g.UUID, g.StartTime)
	g.Stats.Observe(g.generation, g.grid.Len())
}

// Step advances the automaton by one generation.
func (g *Game) Step() {
	pos := g.ant.Position
	on := g.grid.IsOn(pos)

	// Turn
	g.ant.Turn(on)

	// Flip
	if on {
		g.grid.Clear(pos)
	} else {
		g.grid.Set(pos, g.generation)
	}

	// Move
	g.ant.Move()

	g.generation++
}

// StepN runs n steps and records them in the run stats.
func (g *Game) StepN(n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
	if n > 0 {
		g.Stats.Observe(g.generation, g.grid.Len())
	}
}

// GetCell returns the stamp of the cell and whether it is on.
func (g *Game) GetCell(x, y int) (int, bool) {
	return g.grid.Get(types.Point{X: x, Y: y})
}

// SetCell forces a cell on, stamped with the current generation, or off.
func (g *Game) SetCell(x, y int, on bool) {
	pos := types.Point{X: x, Y: y}
	if on {
		g.grid.Set(pos, g.generation)
	} else {
		g.grid.Clear(pos)
	}
	g.Stats.Observe(g.generation, g.grid.Len())
}

// ToggleCell flips a cell without moving the ant or advancing the generation.
func (g *Game) ToggleCell(x, y int) {
	_, on := g.GetCell(x, y)
	g.SetCell(x, y, !on)
}

// Reset discards the ant and the grid and starts a new run.
func (g *Game) Reset() {
	g.grid.Reset()
	if g.resetObserver != nil {
		g.resetObserver()
	}
	g.init()
}

func (g *Game) GetAnt() entity.Ant {
	return *g.ant
}

func (g *Game) GetDirectionVector() types.Point {
	return g.ant.GetDirectionVector()
}

func (g *Game) Generation() int {
	return g.generation
}

// OnCells is the number of cells currently on.
func (g *Game) OnCells() int {
	return g.grid.Len()
}

// EachCell calls fn for every on cell.
func (g *Game) EachCell(fn func(pos types.Point, stamp int)) {
	g.grid.Each(fn)
}

func (g *Game) Snapshot() map[types.Point]int {
	return g.grid.Snapshot()
}

// ElapsedTime returns the wall clock duration of the current run in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}
