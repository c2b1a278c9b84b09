package board

import (
	"testing"
)

// recount walks the grid and tallies pieces, for checking the incremental
// counters against ground truth.
func recount(b *Board) (red, black, redKings, blackKings int) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b.PieceAt(Cell{Row: row, Col: col})
			switch {
			case p.Color() == Red:
				red++
				if p.IsKing() {
					redKings++
				}
			case p.Color() == Black:
				black++
				if p.IsKing() {
					blackKings++
				}
			}
		}
	}
	return
}

func TestInitialLayout(t *testing.T) {
	b := NewBoard()
	t.Log("Initial position:")
	t.Log("\n" + b.String())

	if b.Count(Red) != 12 || b.Count(Black) != 12 {
		t.Errorf("Expected 12 pieces per side, got red=%d black=%d", b.Count(Red), b.Count(Black))
	}
	if b.Kings(Red) != 0 || b.Kings(Black) != 0 {
		t.Error("Expected no kings in the initial position")
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			c := Cell{Row: row, Col: col}
			p := b.PieceAt(c)
			if p == NoPiece {
				continue
			}
			if !c.IsDark() {
				t.Errorf("Piece %v on light square %v", p, c)
			}
			switch {
			case row <= 2 && p != BlackMan:
				t.Errorf("Expected black man at %v, got %v", c, p)
			case row >= 3 && row <= 4:
				t.Errorf("Expected empty middle row cell %v, got %v", c, p)
			case row >= 5 && p != RedMan:
				t.Errorf("Expected red man at %v, got %v", c, p)
			}
		}
	}
}

func TestPlaceRejectsBadCells(t *testing.T) {
	b := NewEmptyBoard()

	if err := b.Place(Red, false, Cell{Row: 0, Col: 0}); err == nil {
		t.Error("Expected error placing on a light square")
	}
	if err := b.Place(Red, false, Cell{Row: -1, Col: 2}); err == nil {
		t.Error("Expected error placing off the grid")
	}

	if err := b.Place(Red, false, Cell{Row: 3, Col: 4}); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if err := b.Place(Black, false, Cell{Row: 3, Col: 4}); err == nil {
		t.Error("Expected error placing on an occupied cell")
	}
}

func TestApplyStepSimple(t *testing.T) {
	b := NewEmptyBoard()
	from := Cell{Row: 5, Col: 2}
	to := Cell{Row: 4, Col: 3}
	b.mustPlace(Red, false, from)

	captured, didCapture, promoted := b.ApplyStep(from, to)
	if didCapture {
		t.Errorf("Simple step reported a capture at %v", captured)
	}
	if promoted {
		t.Error("Simple step reported a promotion")
	}
	if b.PieceAt(from) != NoPiece {
		t.Errorf("Source %v still occupied after step", from)
	}
	if b.PieceAt(to) != RedMan {
		t.Errorf("Expected red man at %v, got %v", to, b.PieceAt(to))
	}
}

func TestApplyStepJump(t *testing.T) {
	b := NewEmptyBoard()
	b.mustPlace(Red, false, Cell{Row: 3, Col: 4})
	b.mustPlace(Black, false, Cell{Row: 2, Col: 3})

	captured, didCapture, promoted := b.ApplyStep(Cell{Row: 3, Col: 4}, Cell{Row: 1, Col: 2})
	t.Log("After jump:")
	t.Log("\n" + b.String())

	if !didCapture {
		t.Fatal("Expected the two-row step to capture")
	}
	if captured != (Cell{Row: 2, Col: 3}) {
		t.Errorf("Expected capture at (2,3), got %v", captured)
	}
	if promoted {
		t.Error("Jump to row 1 should not promote")
	}
	if b.PieceAt(Cell{Row: 2, Col: 3}) != NoPiece {
		t.Error("Captured piece still on the board")
	}
	if b.Count(Black) != 0 {
		t.Errorf("Expected 0 black pieces, got %d", b.Count(Black))
	}
}

func TestPromotion(t *testing.T) {
	b := NewEmptyBoard()
	b.mustPlace(Red, false, Cell{Row: 1, Col: 2})

	_, _, promoted := b.ApplyStep(Cell{Row: 1, Col: 2}, Cell{Row: 0, Col: 1})
	if !promoted {
		t.Fatal("Expected red man reaching row 0 to promote")
	}
	if b.PieceAt(Cell{Row: 0, Col: 1}) != RedKing {
		t.Errorf("Expected red king, got %v", b.PieceAt(Cell{Row: 0, Col: 1}))
	}
	if b.Kings(Red) != 1 {
		t.Errorf("Expected 1 red king counted, got %d", b.Kings(Red))
	}

	b2 := NewEmptyBoard()
	b2.mustPlace(Black, false, Cell{Row: 6, Col: 3})
	_, _, promoted = b2.ApplyStep(Cell{Row: 6, Col: 3}, Cell{Row: 7, Col: 2})
	if !promoted || b2.PieceAt(Cell{Row: 7, Col: 2}) != BlackKing {
		t.Error("Expected black man reaching row 7 to promote")
	}
}

func TestKingDoesNotRePromote(t *testing.T) {
	b := NewEmptyBoard()
	b.mustPlace(Red, true, Cell{Row: 1, Col: 2})

	_, _, promoted := b.ApplyStep(Cell{Row: 1, Col: 2}, Cell{Row: 0, Col: 1})
	if promoted {
		t.Error("King reaching the far row must not promote again")
	}
	if b.Kings(Red) != 1 {
		t.Errorf("King counter drifted: got %d", b.Kings(Red))
	}
}

func TestCountersMatchRecount(t *testing.T) {
	b := NewEmptyBoard()
	b.mustPlace(Red, false, Cell{Row: 5, Col: 2})
	b.mustPlace(Red, false, Cell{Row: 1, Col: 4})
	b.mustPlace(Black, false, Cell{Row: 4, Col: 3})
	b.mustPlace(Black, true, Cell{Row: 2, Col: 5})

	// Jump, then promote, then verify the incremental counters never
	// drifted from a live recount.
	b.ApplyStep(Cell{Row: 5, Col: 2}, Cell{Row: 3, Col: 4})
	b.ApplyStep(Cell{Row: 1, Col: 4}, Cell{Row: 0, Col: 3})

	red, black, redKings, blackKings := recount(b)
	if b.Count(Red) != red || b.Count(Black) != black {
		t.Errorf("Piece counters drifted: counted red=%d black=%d, recount red=%d black=%d",
			b.Count(Red), b.Count(Black), red, black)
	}
	if b.Kings(Red) != redKings || b.Kings(Black) != blackKings {
		t.Errorf("King counters drifted: counted red=%d black=%d, recount red=%d black=%d",
			b.Kings(Red), b.Kings(Black), redKings, blackKings)
	}
}

func TestWinnerByAttrition(t *testing.T) {
	b := NewEmptyBoard()
	b.mustPlace(Red, false, Cell{Row: 5, Col: 2})

	winner, over := b.WinnerByAttrition()
	if !over || winner != Red {
		t.Errorf("Expected Red to win by attrition, got winner=%v over=%v", winner, over)
	}

	b.mustPlace(Black, false, Cell{Row: 2, Col: 3})
	if _, over := b.WinnerByAttrition(); over {
		t.Error("Game reported over with both sides on the board")
	}
}

func TestCellNotation(t *testing.T) {
	cases := []struct {
		cell Cell
		want string
	}{
		{Cell{Row: 7, Col: 0}, "a1"},
		{Cell{Row: 0, Col: 7}, "h8"},
		{Cell{Row: 2, Col: 1}, "b6"},
	}
	for _, tc := range cases {
		if got := tc.cell.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.cell, got, tc.want)
		}
		parsed, err := ParseCell(tc.want)
		if err != nil {
			t.Errorf("ParseCell(%q) failed: %v", tc.want, err)
		} else if parsed != tc.cell {
			t.Errorf("ParseCell(%q) = %v, want %v", tc.want, parsed, tc.cell)
		}
	}

	for _, bad := range []string{"", "a", "a9", "i3", "22"} {
		if _, err := ParseCell(bad); err == nil {
			t.Errorf("ParseCell(%q) succeeded, want error", bad)
		}
	}
}
