package entity

import (
	"langtons-ant/game/types"
)

// Ant is the single agent walking the grid.
type Ant struct {
	Position  types.Point
	Direction types.Direction
}

func NewAnt(startPos types.Point) *Ant {
	return &Ant{
		Position:  startPos,
		Direction: types.Up, // Start facing up
	}
}

func (a *Ant) TurnRight() {
	a.Direction = a.Direction.TurnRight()
}

func (a *Ant) TurnLeft() {
	a.Direction = a.Direction.TurnLeft()
}

// Turn applies the automaton rule: clockwise on an on cell, counter-clockwise otherwise.
func (a *Ant) Turn(onCell bool) {
	if onCell {
		a.TurnRight()
	} else {
		a.TurnLeft()
	}
}

// Move advances the ant one cell along its heading.
func (a *Ant) Move() {
	a.Position = a.Position.Add(a.Direction.ToPoint())
}

func (a *Ant) GetDirectionVector() types.Point {
	return a.Direction.ToPoint()
}
