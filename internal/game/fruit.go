package game

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned by Relocate when no empty cell remains.
// The session treats it as a win: the snake has filled the board.
var ErrBoardFull = errors.New("game: board full")

// Fruit is a single position guaranteed to sit on an empty grid cell at
// assignment time.
type Fruit struct {
	pos Position
}

// Relocate picks a uniformly random empty cell, marks it as fruit, and
// stores the position. Empty cells are enumerated directly rather than
// sampled until a hit, so the operation terminates even as the board
// fills up. Returns ErrBoardFull when no empty cell remains.
func (f *Fruit) Relocate(g *Grid, rng *rand.Rand) error {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return ErrBoardFull
	}

	f.pos = empty[rng.Intn(len(empty))]
	g.set(f.pos, CellFruit)
	return nil
}

// Position returns the fruit's current position.
func (f *Fruit) Position() Position {
	return f.pos
}
