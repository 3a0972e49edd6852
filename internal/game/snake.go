package game

import "errors"

// ErrInvalidMove is returned by Lengthen and Move when the destination
// cell is out of bounds or occupied by the snake's own body. This is the
// sole way a caller detects a game-over collision.
var ErrInvalidMove = errors.New("game: invalid move")

// Snake is an ordered sequence of grid positions, head at index 0.
// Length is always at least 1. The snake never stores a grid reference;
// each operation receives a grid handle from the session.
type Snake struct {
	positions []Position
}

// NewSnake creates a length-1 snake centered on the grid and marks its
// head cell.
func NewSnake(g *Grid) *Snake {
	start := Position{Row: g.Height()/2 - 1, Col: g.Width()/2 - 1}
	s := &Snake{positions: []Position{start}}
	g.set(start, CellSnakeHead)
	return s
}

// Length returns the number of segments.
func (s *Snake) Length() int {
	return len(s.positions)
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.positions[0]
}

// Positions returns a copy of the segment positions, head first.
func (s *Snake) Positions() []Position {
	out := make([]Position, len(s.positions))
	copy(out, s.positions)
	return out
}

// CanAdvance reports whether the snake can step one cell in the given
// direction: the candidate head must be in bounds and hold either an
// empty cell or the fruit.
func (s *Snake) CanAdvance(g *Grid, d Direction) bool {
	switch g.At(s.Head().Offset(d)) {
	case CellEmpty, CellFruit:
		return true
	default:
		return false
	}
}

// Lengthen prepends a new head one cell in the given direction, growing
// the snake by one segment. The previous head cell is demoted to body.
// Returns ErrInvalidMove if the destination is out of bounds or
// self-occupied.
func (s *Snake) Lengthen(g *Grid, d Direction) error {
	if !s.CanAdvance(g, d) {
		return ErrInvalidMove
	}

	oldHead := s.Head()
	newHead := oldHead.Offset(d)

	s.positions = append([]Position{newHead}, s.positions...)
	g.set(newHead, CellSnakeHead)
	g.set(oldHead, CellSnakeBody)
	return nil
}

// Move advances the snake one cell in the given direction without
// growing: a Lengthen followed by removing the tail segment.
func (s *Snake) Move(g *Grid, d Direction) error {
	if err := s.Lengthen(g, d); err != nil {
		return err
	}
	s.popTail(g)
	return nil
}

// popTail removes the last segment and resets its grid cell to empty.
func (s *Snake) popTail(g *Grid) {
	last := len(s.positions) - 1
	g.set(s.positions[last], CellEmpty)
	s.positions = s.positions[:last]
}
