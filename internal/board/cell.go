// Package board implements the checkers board, pieces and move generation.
package board

import "fmt"

// Size is the board edge length in cells.
const Size = 8

// Cell is a board coordinate. Row 0 is Black's back row at the top of the
// board, row 7 is Red's back row at the bottom.
type Cell struct {
	Row, Col int
}

// NoCell marks the absence of a cell.
var NoCell = Cell{Row: -1, Col: -1}

// OnBoard reports whether the cell lies inside the 8x8 grid.
func (c Cell) OnBoard() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// IsDark reports whether the cell is a playable dark square. Pieces only
// ever occupy dark squares.
func (c Cell) IsDark() bool {
	return (c.Row+c.Col)%2 == 1
}

// String returns the cell in algebraic form (e.g. "b6"): files a-h left to
// right, ranks 8-1 top to bottom.
func (c Cell) String() string {
	if !c.OnBoard() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+c.Col, '0'+(Size-c.Row))
}

// ParseCell parses algebraic notation (e.g. "b6") into a Cell.
func ParseCell(s string) (Cell, error) {
	if len(s) != 2 {
		return NoCell, fmt.Errorf("invalid cell: %q", s)
	}

	c := Cell{
		Row: Size - int(s[1]-'0'),
		Col: int(s[0] - 'a'),
	}
	if !c.OnBoard() {
		return NoCell, fmt.Errorf("invalid cell: %q", s)
	}

	return c, nil
}
