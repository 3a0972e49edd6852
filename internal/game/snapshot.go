package game

// Snapshot captures the observable session state for determinism
// testing and debugging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadRow  int
	HeadCol  int
	Dir      Direction
	FruitRow int
	FruitCol int
	Status   Status
	Outcome  Outcome
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.snake.Head()
	fruit := s.fruit.Position()

	return Snapshot{
		Tick:     s.tick,
		Score:    s.Score(),
		SnakeLen: s.snake.Length(),
		HeadRow:  head.Row,
		HeadCol:  head.Col,
		Dir:      s.direction,
		FruitRow: fruit.Row,
		FruitCol: fruit.Col,
		Status:   s.status,
		Outcome:  s.outcome,
	}
}
