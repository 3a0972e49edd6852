// Package game implements the snake game state: the grid, the snake body,
// the fruit, and the per-tick update logic. It contains pure logic with no
// external dependencies (especially no Bubble Tea); the platform handles
// input mapping, timing, and display.
package game

// Default field dimensions. The grid size is a compile-time constant;
// sessions for other board sizes exist only for tests.
const (
	FieldWidth  = 10
	FieldHeight = 10
)

// Position is a pair of grid coordinates, row first.
type Position struct {
	Row, Col int
}

// Offset returns the position one step away in the given direction.
func (p Position) Offset(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Cell is the occupancy state of one grid position.
type Cell int

const (
	CellEmpty Cell = iota
	CellSnakeHead
	CellSnakeBody
	CellFruit

	// CellOutOfBounds is never stored in the grid; it is returned only
	// from bounds-checked lookups.
	CellOutOfBounds
)

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnakeHead:
		return "snake-head"
	case CellSnakeBody:
		return "snake-body"
	case CellFruit:
		return "fruit"
	case CellOutOfBounds:
		return "out-of-bounds"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size field of cell states. Dimensions are fixed at
// construction; every in-bounds position holds exactly one Cell value.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([][]Cell, height)
	for r := range g.cells {
		g.cells[r] = make([]Cell, width)
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether the position lies inside the field.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell at the given position, or CellOutOfBounds if the
// position lies outside the field. Callers must branch on the sentinel
// explicitly; bounds violations are never an error.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return CellOutOfBounds
	}
	return g.cells[p.Row][p.Col]
}

// set writes a cell without bounds checking. Callers inside the package
// must have validated the position.
func (g *Grid) set(p Position, c Cell) {
	g.cells[p.Row][p.Col] = c
}

// Clear resets all cells to empty.
func (g *Grid) Clear() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = CellEmpty
		}
	}
}

// EmptyCells returns all positions currently holding an empty cell,
// scanned in row-major order.
func (g *Grid) EmptyCells() []Position {
	var empty []Position
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] == CellEmpty {
				empty = append(empty, Position{Row: r, Col: c})
			}
		}
	}
	return empty
}
