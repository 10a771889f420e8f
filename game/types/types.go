package types

// Point is a cell coordinate on the unbounded grid
type Point struct {
	X, Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is the heading of the ant. The numeric order is the clockwise
// rotation order, so turning is plain modulo arithmetic.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left

	numDirections = 4
)

// TurnRight rotates a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) % numDirections
}

// TurnLeft rotates a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	// +numDirections keeps the result non-negative
	return (d - 1 + numDirections) % numDirections
}

// ToPoint converts a Direction to a unit movement vector. Y grows upwards.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: 1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: -1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Simulation constants
const (
	FirstGeneration = 1    // Generation counter value of a fresh run
	TileSize        = 15   // Cells per side of a rasterized page
	MinPixelWidth   = 0.1  // Lower bound of the camera scale
	MaxPixelWidth   = 1000 // Upper bound of the camera scale
	MinSpeed        = 1    // Lower bound of steps per frame
	KeyPanPixels    = 10.0 // Screen pixels panned per frame while a pan key is held
)
