package game

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Status is the session state machine: running until a terminal
// condition fires, then terminated forever.
type Status int

const (
	StatusRunning Status = iota
	StatusTerminated
)

// Outcome records why a session terminated.
type Outcome int

const (
	OutcomeNone Outcome = iota // Session still running
	OutcomeLoss                // Wall or self collision
	OutcomeWin                 // Snake filled the board
	OutcomeQuit                // External quit signal
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLoss:
		return "loss"
	case OutcomeWin:
		return "win"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Session owns the grid, snake, and fruit for one game and applies the
// per-tick update: resolve direction, advance or grow the snake, detect
// terminal conditions. All updates are strictly sequential; the session
// is deterministic given its seed and the input sequence.
type Session struct {
	grid      *Grid
	snake     *Snake
	fruit     *Fruit
	rng       *rand.Rand
	direction Direction
	status    Status
	outcome   Outcome
	tick      uint64
}

// NewSession creates a running session: empty grid, length-1 snake at
// the center, fruit on a random empty cell, initial direction up.
func NewSession(width, height int, seed int64) *Session {
	s := &Session{
		grid:      NewGrid(width, height),
		fruit:     &Fruit{},
		rng:       rand.New(rand.NewSource(seed)),
		direction: DirUp,
	}
	s.snake = NewSnake(s.grid)

	// A board with no room for fruit is already won.
	if err := s.fruit.Relocate(s.grid, s.rng); err != nil {
		s.terminate(OutcomeWin)
	}
	return s
}

// Tick advances the game by one step. The input carries the last key
// observed since the previous tick; repeated and held keys are
// idempotent. A quit signal terminates the session unconditionally.
// Once terminated, the session ignores all further ticks.
func (s *Session) Tick(in core.Input) {
	if s.status == StatusTerminated {
		return
	}
	if in.Quit {
		s.terminate(OutcomeQuit)
		return
	}
	s.tick++

	s.resolveDirection(in.Key)

	ahead := s.snake.Head().Offset(s.direction)
	if s.grid.At(ahead) == CellFruit {
		if err := s.snake.Lengthen(s.grid, s.direction); err != nil {
			s.terminate(OutcomeLoss)
			return
		}
		if err := s.fruit.Relocate(s.grid, s.rng); err != nil {
			if errors.Is(err, ErrBoardFull) {
				s.terminate(OutcomeWin)
			}
			return
		}
		return
	}

	if err := s.snake.Move(s.grid, s.direction); err != nil {
		s.terminate(OutcomeLoss)
	}
}

// resolveDirection applies a requested direction unless it is the exact
// opposite of the current one, which would reverse the snake into
// itself. Non-directional keys leave the direction unchanged.
func (s *Session) resolveDirection(k core.Key) {
	requested, ok := directionForKey(k)
	if !ok {
		return
	}
	if requested == s.direction.Opposite() {
		return
	}
	s.direction = requested
}

// terminate transitions the session to its absorbing terminal state.
func (s *Session) terminate(o Outcome) {
	s.status = StatusTerminated
	s.outcome = o
}

// Status returns the current session status.
func (s *Session) Status() Status {
	return s.status
}

// Outcome returns why the session terminated, or OutcomeNone while
// still running.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Score returns the current score: the snake's length. After
// termination the score is frozen, since nothing mutates further.
func (s *Session) Score() int {
	return s.snake.Length()
}

// Direction returns the direction applied on the most recent tick.
func (s *Session) Direction() Direction {
	return s.direction
}

// CellAt returns the grid cell at the given position, with the usual
// out-of-bounds sentinel.
func (s *Session) CellAt(p Position) Cell {
	return s.grid.At(p)
}

// FieldWidth returns the grid width in cells.
func (s *Session) FieldWidth() int {
	return s.grid.Width()
}

// FieldHeight returns the grid height in cells.
func (s *Session) FieldHeight() int {
	return s.grid.Height()
}

// FruitPosition returns the fruit's current position.
func (s *Session) FruitPosition() Position {
	return s.fruit.Position()
}

// SnakePositions returns a copy of the snake's segment positions, head
// first.
func (s *Session) SnakePositions() []Position {
	return s.snake.Positions()
}
