package board

import (
	"fmt"
	"strings"
)

// Board holds the 8x8 grid plus per-color piece and king counters. The
// counters are maintained incrementally by ApplyStep and Place and must
// always match a live recount of the grid.
type Board struct {
	grid [Size][Size]Piece

	redCount   int
	blackCount int
	redKings   int
	blackKings int
}

// NewBoard creates a board with pieces in their starting positions:
// Black men on the dark squares of rows 0-2, Red men on rows 5-7.
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < 3; row++ {
		for col := 0; col < Size; col++ {
			c := Cell{Row: row, Col: col}
			if c.IsDark() {
				b.mustPlace(Black, false, c)
			}
		}
	}
	for row := 5; row < Size; row++ {
		for col := 0; col < Size; col++ {
			c := Cell{Row: row, Col: col}
			if c.IsDark() {
				b.mustPlace(Red, false, c)
			}
		}
	}
	return b
}

// NewEmptyBoard creates a board with no pieces, for position setup.
func NewEmptyBoard() *Board {
	return &Board{}
}

// PieceAt returns the piece at the cell, or NoPiece for an empty or
// off-grid cell.
func (b *Board) PieceAt(c Cell) Piece {
	if !c.OnBoard() {
		return NoPiece
	}
	return b.grid[c.Row][c.Col]
}

// Place puts a new piece on the board during setup. Placing on a light
// square, an occupied cell or off the grid is a programmer error.
func (b *Board) Place(c Color, king bool, at Cell) error {
	if !at.OnBoard() || !at.IsDark() {
		return fmt.Errorf("cannot place piece on %v: not a dark square", at)
	}
	if b.grid[at.Row][at.Col] != NoPiece {
		return fmt.Errorf("cannot place piece on %v: occupied", at)
	}

	b.grid[at.Row][at.Col] = NewPiece(c, king)
	if c == Red {
		b.redCount++
		if king {
			b.redKings++
		}
	} else {
		b.blackCount++
		if king {
			b.blackKings++
		}
	}
	return nil
}

func (b *Board) mustPlace(c Color, king bool, at Cell) {
	if err := b.Place(c, king, at); err != nil {
		panic(err)
	}
}

// ApplyStep moves the piece at from to to. Legality is the caller's
// responsibility (the move must come from LegalMoves output). A two-row
// step is a jump: the piece at the midpoint is removed and its color's
// counters are decremented. A man landing on its promotion row becomes a
// king. Returns the captured cell, if any, and whether a promotion
// happened.
func (b *Board) ApplyStep(from, to Cell) (captured Cell, didCapture, promoted bool) {
	p := b.grid[from.Row][from.Col]
	b.grid[from.Row][from.Col] = NoPiece
	b.grid[to.Row][to.Col] = p

	if to.Row == p.Color().PromotionRow() && !p.IsKing() {
		b.grid[to.Row][to.Col] = p.Promote()
		if p.Color() == Red {
			b.redKings++
		} else {
			b.blackKings++
		}
		promoted = true
	}

	dr := to.Row - from.Row
	if dr == 2 || dr == -2 {
		mid := Cell{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}
		b.remove(mid)
		captured = mid
		didCapture = true
	}

	return captured, didCapture, promoted
}

// remove takes the piece at the cell off the board and updates counters.
func (b *Board) remove(at Cell) {
	p := b.grid[at.Row][at.Col]
	if p == NoPiece {
		return
	}
	b.grid[at.Row][at.Col] = NoPiece

	if p.Color() == Red {
		b.redCount--
		if p.IsKing() {
			b.redKings--
		}
	} else {
		b.blackCount--
		if p.IsKing() {
			b.blackKings--
		}
	}
}

// WinnerByAttrition reports the winner once a side has no pieces left.
// This is necessary but not sufficient for game over: a side with pieces
// but no legal moves also loses, which the game engine checks via
// LegalMoves.
func (b *Board) WinnerByAttrition() (Color, bool) {
	if b.redCount <= 0 {
		return Black, true
	}
	if b.blackCount <= 0 {
		return Red, true
	}
	return NoColor, false
}

// Count returns the number of live pieces of the color.
func (b *Board) Count(c Color) int {
	if c == Red {
		return b.redCount
	}
	return b.blackCount
}

// Kings returns the number of live kings of the color.
func (b *Board) Kings(c Color) int {
	if c == Red {
		return b.redKings
	}
	return b.blackKings
}

// String renders the board as text, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d ", Size-row)
		for col := 0; col < Size; col++ {
			sb.WriteString(b.grid[row][col].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
