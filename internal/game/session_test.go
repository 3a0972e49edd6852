package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/termsnake/internal/core"
)

// placeFruit pins the fruit to a known cell so scenarios are deterministic.
func placeFruit(s *Session, p Position) {
	s.grid.set(s.fruit.pos, CellEmpty)
	s.fruit.pos = p
	s.grid.set(p, CellFruit)
}

// assertInvariants checks the reachable-state invariants: grid cells marked
// head/body correspond exactly to the snake's segments, segments are
// pairwise distinct and adjacent along the sequence, and at most one cell
// holds the fruit, never on a snake segment.
func assertInvariants(t *testing.T, s *Session) {
	t.Helper()

	ps := s.SnakePositions()
	seen := make(map[Position]bool, len(ps))
	for i, p := range ps {
		if seen[p] {
			t.Fatalf("Segment %v repeated in snake %v", p, ps)
		}
		seen[p] = true

		want := CellSnakeBody
		if i == 0 {
			want = CellSnakeHead
		}
		if got := s.CellAt(p); got != want {
			t.Fatalf("Grid at segment %v = %v, expected %v", p, got, want)
		}

		if i > 0 {
			prev := ps[i-1]
			dr := abs(p.Row - prev.Row)
			dc := abs(p.Col - prev.Col)
			if dr+dc != 1 {
				t.Fatalf("Segments %v and %v are not grid-adjacent", prev, p)
			}
		}
	}

	headCount, bodyCount, fruitCount := 0, 0, 0
	for r := 0; r < s.FieldHeight(); r++ {
		for c := 0; c < s.FieldWidth(); c++ {
			p := Position{Row: r, Col: c}
			switch s.CellAt(p) {
			case CellSnakeHead:
				headCount++
			case CellSnakeBody:
				bodyCount++
			case CellFruit:
				fruitCount++
				if seen[p] {
					t.Fatalf("Fruit cell %v overlaps a snake segment", p)
				}
			}
		}
	}

	if headCount != 1 {
		t.Fatalf("Grid holds %d head cells, expected exactly 1", headCount)
	}
	if headCount+bodyCount != len(ps) {
		t.Fatalf("Grid marks %d snake cells, snake has %d segments", headCount+bodyCount, len(ps))
	}
	if fruitCount > 1 {
		t.Fatalf("Grid holds %d fruit cells, expected at most 1", fruitCount)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestNewSessionInitialState(t *testing.T) {
	s := NewSession(FieldWidth, FieldHeight, 1)

	if s.Status() != StatusRunning {
		t.Fatalf("Status = %v, expected running", s.Status())
	}
	if s.Outcome() != OutcomeNone {
		t.Errorf("Outcome = %v, expected none", s.Outcome())
	}
	if s.Direction() != DirUp {
		t.Errorf("Initial direction = %v, expected up", s.Direction())
	}
	if s.Score() != 1 {
		t.Errorf("Initial score = %d, expected 1", s.Score())
	}

	head := s.SnakePositions()[0]
	if head != (Position{Row: 4, Col: 4}) {
		t.Errorf("Initial head = %v, expected (4,4)", head)
	}

	assertInvariants(t, s)
}

func TestScenarioGrowth(t *testing.T) {
	// Snake at (4,4), direction up, fruit directly ahead at (3,4).
	// One tick grows the snake onto the fruit and relocates it.
	s := NewSession(FieldWidth, FieldHeight, 7)
	placeFruit(s, Position{Row: 3, Col: 4})

	s.Tick(core.Input{Key: core.KeyUp})

	ps := s.SnakePositions()
	if len(ps) != 2 {
		t.Fatalf("Snake length = %d after eating, expected 2", len(ps))
	}
	if ps[0] != (Position{3, 4}) || ps[1] != (Position{4, 4}) {
		t.Errorf("Snake = %v, expected [(3,4) (4,4)]", ps)
	}
	if s.Score() != 2 {
		t.Errorf("Score = %d after eating, expected 2", s.Score())
	}

	fruit := s.FruitPosition()
	if fruit == (Position{3, 4}) || fruit == (Position{4, 4}) {
		t.Errorf("Fruit did not relocate off the snake: %v", fruit)
	}
	assertInvariants(t, s)
}

func TestScenarioPlainMove(t *testing.T) {
	// No fruit ahead: the snake translates and vacates its old cell.
	s := NewSession(FieldWidth, FieldHeight, 7)
	placeFruit(s, Position{Row: 9, Col: 9})

	s.Tick(core.Input{Key: core.KeyUp})

	ps := s.SnakePositions()
	if len(ps) != 1 || ps[0] != (Position{3, 4}) {
		t.Fatalf("Snake = %v, expected [(3,4)]", ps)
	}
	if s.CellAt(Position{4, 4}) != CellEmpty {
		t.Errorf("Vacated cell (4,4) = %v, expected empty", s.CellAt(Position{4, 4}))
	}
	assertInvariants(t, s)
}

func TestScenarioWallCollision(t *testing.T) {
	// Drive the snake into the top wall: four up moves reach row 0,
	// the fifth terminates the session.
	s := NewSession(FieldWidth, FieldHeight, 7)
	placeFruit(s, Position{Row: 9, Col: 9})

	for i := 0; i < 4; i++ {
		s.Tick(core.Input{Key: core.KeyUp})
		if s.Status() != StatusRunning {
			t.Fatalf("Session terminated early at tick %d", i+1)
		}
	}

	head := s.SnakePositions()[0]
	if head.Row != 0 {
		t.Fatalf("Head = %v, expected top row", head)
	}

	s.Tick(core.Input{Key: core.KeyUp})

	if s.Status() != StatusTerminated {
		t.Fatal("Session should terminate on wall collision")
	}
	if s.Outcome() != OutcomeLoss {
		t.Errorf("Outcome = %v, expected loss", s.Outcome())
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, expected pre-collision length 1", s.Score())
	}
}

func TestScenarioSelfCollision(t *testing.T) {
	// Length-3 snake stepping onto its own second segment terminates.
	s := NewSession(FieldWidth, FieldHeight, 7)
	s.grid.Clear()
	s.snake.positions = []Position{{5, 5}, {5, 6}, {5, 7}}
	s.grid.set(Position{5, 5}, CellSnakeHead)
	s.grid.set(Position{5, 6}, CellSnakeBody)
	s.grid.set(Position{5, 7}, CellSnakeBody)
	s.fruit.pos = Position{0, 0}
	s.grid.set(Position{0, 0}, CellFruit)
	s.direction = DirRight

	s.Tick(core.Input{})

	if s.Status() != StatusTerminated {
		t.Fatal("Session should terminate on self collision")
	}
	if s.Outcome() != OutcomeLoss {
		t.Errorf("Outcome = %v, expected loss", s.Outcome())
	}
	if s.Score() != 3 {
		t.Errorf("Score = %d, expected pre-collision length 3", s.Score())
	}
}

func TestReversalRejected(t *testing.T) {
	s := NewSession(FieldWidth, FieldHeight, 7)
	placeFruit(s, Position{Row: 9, Col: 9})

	// Current direction up; requesting down is ignored.
	s.Tick(core.Input{Key: core.KeyDown})
	if s.Direction() != DirUp {
		t.Errorf("Direction = %v after reversal request, expected up", s.Direction())
	}

	// A perpendicular request is accepted...
	s.Tick(core.Input{Key: core.KeyRight})
	if s.Direction() != DirRight {
		t.Fatalf("Direction = %v, expected right", s.Direction())
	}

	// ...and its reversal is rejected in turn.
	s.Tick(core.Input{Key: core.KeyLeft})
	if s.Direction() != DirRight {
		t.Errorf("Direction = %v after reversal request, expected right", s.Direction())
	}
}

func TestSameDirectionIdempotent(t *testing.T) {
	s := NewSession(FieldWidth, FieldHeight, 7)
	placeFruit(s, Position{Row: 9, Col: 9})

	before := s.Snapshot()
	s.Tick(core.Input{Key: core.KeyUp})
	after := s.Snapshot()

	if after.Dir != before.Dir {
		t.Errorf("Direction changed by an input equal to the current direction")
	}
	if after.Tick != before.Tick+1 {
		t.Errorf("Tick advanced by %d, expected exactly 1", after.Tick-before.Tick)
	}
	if after.HeadRow != before.HeadRow-1 || after.HeadCol != before.HeadCol {
		t.Errorf("Head moved to (%d,%d), expected one step up", after.HeadRow, after.HeadCol)
	}
}

func TestNoneKeyKeepsDirection(t *testing.T) {
	s := NewSession(FieldWidth, FieldHeight, 7)
	placeFruit(s, Position{Row: 9, Col: 9})

	s.Tick(core.Input{Key: core.KeyNone})
	if s.Direction() != DirUp {
		t.Errorf("Direction = %v with no input, expected up", s.Direction())
	}
	if s.SnakePositions()[0] != (Position{3, 4}) {
		t.Error("Snake should keep moving in the current direction")
	}
}

func TestQuitTerminates(t *testing.T) {
	s := NewSession(FieldWidth, FieldHeight, 7)

	s.Tick(core.Input{Quit: true})

	if s.Status() != StatusTerminated {
		t.Fatal("Quit should terminate the session")
	}
	if s.Outcome() != OutcomeQuit {
		t.Errorf("Outcome = %v, expected quit", s.Outcome())
	}
}

func TestTerminatedIsAbsorbing(t *testing.T) {
	s := NewSession(FieldWidth, FieldHeight, 7)
	s.Tick(core.Input{Quit: true})

	before := s.Snapshot()
	s.Tick(core.Input{Key: core.KeyRight})
	after := s.Snapshot()

	if before != after {
		t.Errorf("Terminated session mutated by a tick: %+v vs %+v", before, after)
	}
}

func TestWinOnFullBoard(t *testing.T) {
	// 2x2 board, one free cell holding the fruit. Eating it leaves no
	// empty cell for relocation, which ends the session as a win.
	s := NewSession(2, 2, 1)
	s.grid.Clear()
	s.snake.positions = []Position{{1, 0}, {1, 1}, {0, 1}}
	s.grid.set(Position{1, 0}, CellSnakeHead)
	s.grid.set(Position{1, 1}, CellSnakeBody)
	s.grid.set(Position{0, 1}, CellSnakeBody)
	s.fruit.pos = Position{0, 0}
	s.grid.set(Position{0, 0}, CellFruit)
	s.direction = DirUp
	s.status = StatusRunning
	s.outcome = OutcomeNone

	s.Tick(core.Input{})

	if s.Status() != StatusTerminated {
		t.Fatal("Filling the board should terminate the session")
	}
	if s.Outcome() != OutcomeWin {
		t.Errorf("Outcome = %v, expected win", s.Outcome())
	}
	if s.Score() != 4 {
		t.Errorf("Score = %d, expected 4", s.Score())
	}
}

func TestDeterminism(t *testing.T) {
	// Two sessions with the same seed and inputs stay identical.
	s1 := NewSession(FieldWidth, FieldHeight, 12345)
	s2 := NewSession(FieldWidth, FieldHeight, 12345)

	keys := []core.Key{core.KeyRight, core.KeyDown, core.KeyLeft, core.KeyNone}
	for i := 0; i < 100; i++ {
		in := core.Input{Key: keys[i%len(keys)]}
		s1.Tick(in)
		s2.Tick(in)

		if s1.Snapshot() != s2.Snapshot() {
			t.Fatalf("Sessions diverged at tick %d: %+v vs %+v", i+1, s1.Snapshot(), s2.Snapshot())
		}
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	s := NewSession(FieldWidth, FieldHeight, 4242)
	rng := rand.New(rand.NewSource(4242))
	keys := []core.Key{core.KeyNone, core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight}

	for i := 0; i < 500 && s.Status() == StatusRunning; i++ {
		s.Tick(core.Input{Key: keys[rng.Intn(len(keys))]})
		assertInvariants(t, s)
	}
}
