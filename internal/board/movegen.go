package board

// MoveSet maps a destination cell to the cells captured by moving there.
// An empty capture list is a plain, non-capturing step.
type MoveSet map[Cell][]Cell

// LegalMoveSet maps each source cell that has at least one legal move to
// its MoveSet. When any piece of the side to move can jump, the set
// contains jump moves only (mandatory capture); sources without moves are
// omitted entirely.
type LegalMoveSet map[Cell]MoveSet

// HasCapture reports whether the set contains any jump move. By the
// mandatory-capture rule either every entry captures or none does.
func (s LegalMoveSet) HasCapture() bool {
	for _, dests := range s {
		for _, caps := range dests {
			if len(caps) > 0 {
				return true
			}
		}
	}
	return false
}

// directions returns the diagonal step deltas available to the piece:
// men move forward only, kings in all four diagonals.
func directions(p Piece) [][2]int {
	if p.IsKing() {
		return [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	}
	f := p.Color().Forward()
	return [][2]int{{f, -1}, {f, 1}}
}

// PieceMoves computes the moves available to the piece at the given cell.
// Jumps are found first; if any exist, or jumpOnly is set, simple steps
// are not considered. A single jump step captures exactly one piece, the
// one on the midpoint square; there are no flying kings.
func PieceMoves(b *Board, at Cell, jumpOnly bool) MoveSet {
	p := b.PieceAt(at)
	if p == NoPiece {
		return nil
	}

	dirs := directions(p)
	moves := MoveSet{}

	for _, d := range dirs {
		over := Cell{Row: at.Row + d[0], Col: at.Col + d[1]}
		land := Cell{Row: at.Row + 2*d[0], Col: at.Col + 2*d[1]}

		adj := b.PieceAt(over)
		if adj != NoPiece && adj.Color() != p.Color() &&
			land.OnBoard() && b.PieceAt(land) == NoPiece {
			moves[land] = []Cell{over}
		}
	}

	if len(moves) > 0 || jumpOnly {
		if len(moves) == 0 {
			return nil
		}
		return moves
	}

	for _, d := range dirs {
		to := Cell{Row: at.Row + d[0], Col: at.Col + d[1]}
		if to.OnBoard() && b.PieceAt(to) == NoPiece {
			moves[to] = nil
		}
	}

	if len(moves) == 0 {
		return nil
	}
	return moves
}

// LegalMoves computes the full legal move set for the color, enforcing the
// mandatory-capture rule across the whole side: if any piece can jump,
// only jump moves are legal, for any piece.
func LegalMoves(b *Board, color Color) LegalMoveSet {
	all := LegalMoveSet{}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			at := Cell{Row: row, Col: col}
			if b.PieceAt(at).Color() != color {
				continue
			}
			if jumps := PieceMoves(b, at, true); len(jumps) > 0 {
				all[at] = jumps
			}
		}
	}
	if len(all) > 0 {
		return all
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			at := Cell{Row: row, Col: col}
			if b.PieceAt(at).Color() != color {
				continue
			}
			if moves := PieceMoves(b, at, false); len(moves) > 0 {
				all[at] = moves
			}
		}
	}
	return all
}
