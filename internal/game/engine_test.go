package game

import (
	"testing"

	"checkersplay/internal/board"
)

func TestInitialState(t *testing.T) {
	e := New()

	if e.CurrentTurn() != board.Red {
		t.Errorf("Red moves first, got %v", e.CurrentTurn())
	}
	if e.Phase() != AwaitingMove {
		t.Errorf("Expected AwaitingMove, got %v", e.Phase())
	}
	if _, ok := e.Winner(); ok {
		t.Error("Fresh game reported a winner")
	}
	if len(e.LegalMoves()) == 0 {
		t.Error("Fresh game has no legal moves")
	}
}

func TestSelectionProtocol(t *testing.T) {
	e := New()

	edge := board.Cell{Row: 5, Col: 0}
	empty := board.Cell{Row: 4, Col: 1}
	blocked := board.Cell{Row: 6, Col: 1}

	// Selecting an empty cell or an unmovable piece is a no-op.
	if e.HandleCell(empty) {
		t.Error("Selected an empty cell")
	}
	if e.HandleCell(blocked) {
		t.Error("Selected a blocked back-row piece")
	}
	if _, ok := e.Selected(); ok {
		t.Error("Selection set after rejected clicks")
	}

	// Select a movable piece.
	if !e.HandleCell(edge) {
		t.Fatal("Failed to select the edge man")
	}
	sel, ok := e.Selected()
	if !ok || sel != edge {
		t.Errorf("Selected() = %v %v, want %v", sel, ok, edge)
	}

	// Clicking the selected cell again does nothing.
	if e.HandleCell(edge) {
		t.Error("Re-clicking the selection should be a no-op")
	}

	// An invalid destination deselects and is not reinterpreted as a new
	// source pick, even when it names another movable piece.
	other := board.Cell{Row: 5, Col: 2}
	if e.HandleCell(other) {
		t.Error("Invalid destination click applied a move")
	}
	if _, ok := e.Selected(); ok {
		t.Error("Selection survived an invalid destination")
	}

	// The same cell is selectable on the next click.
	if !e.HandleCell(other) {
		t.Error("Could not select after deselection")
	}

	// Now complete a move through the click protocol.
	if !e.HandleCell(board.Cell{Row: 4, Col: 3}) {
		t.Fatal("Legal destination click did not move")
	}
	if e.CurrentTurn() != board.Black {
		t.Errorf("Turn should pass to Black, got %v", e.CurrentTurn())
	}
	mv, ok := e.LastMove()
	if !ok || mv.From != other || mv.To != (board.Cell{Row: 4, Col: 3}) {
		t.Errorf("LastMove() = %v %v", mv, ok)
	}
}

func TestTryMoveRejectsIllegal(t *testing.T) {
	e := New()

	// Moving an opponent piece, an empty cell, or off a legal destination
	// all leave the state untouched.
	if e.TryMove(board.Cell{Row: 2, Col: 1}, board.Cell{Row: 3, Col: 0}) {
		t.Error("Moved a black piece on Red's turn")
	}
	if e.TryMove(board.Cell{Row: 4, Col: 1}, board.Cell{Row: 3, Col: 0}) {
		t.Error("Moved from an empty cell")
	}
	if e.TryMove(board.Cell{Row: 5, Col: 0}, board.Cell{Row: 3, Col: 0}) {
		t.Error("Applied a two-row step without a jump")
	}
	if e.CurrentTurn() != board.Red {
		t.Error("Rejected moves changed the turn")
	}
}

func TestCaptureChainLocksPiece(t *testing.T) {
	b := board.NewEmptyBoard()
	place(t, b, board.Red, false, 5, 2)
	place(t, b, board.Black, false, 4, 3)
	place(t, b, board.Black, false, 2, 3)
	// A second red piece that must stay frozen during the chain.
	place(t, b, board.Red, false, 5, 6)

	e := NewFromBoard(b, board.Red)

	if !e.TryMove(board.Cell{Row: 5, Col: 2}, board.Cell{Row: 3, Col: 4}) {
		t.Fatal("First jump rejected")
	}

	if e.Phase() != ForcedContinuation {
		t.Fatalf("Expected ForcedContinuation, got %v", e.Phase())
	}
	if e.CurrentTurn() != board.Red {
		t.Error("Turn passed in the middle of a capture chain")
	}
	cont, ok := e.ContinuationCell()
	if !ok || cont != (board.Cell{Row: 3, Col: 4}) {
		t.Errorf("ContinuationCell() = %v %v", cont, ok)
	}

	// The chain auto-selects the jumping piece; nothing else is selectable.
	if sel, ok := e.Selected(); !ok || sel != cont {
		t.Errorf("Expected jumping piece selected, got %v %v", sel, ok)
	}
	if e.TrySelect(board.Cell{Row: 5, Col: 6}) {
		t.Error("Selected another piece mid-chain")
	}
	if e.TryMove(board.Cell{Row: 5, Col: 6}, board.Cell{Row: 4, Col: 7}) {
		t.Error("Moved another piece mid-chain")
	}

	// Finish the chain; the turn passes.
	if !e.TryMove(board.Cell{Row: 3, Col: 4}, board.Cell{Row: 1, Col: 2}) {
		t.Fatal("Second jump rejected")
	}
	if e.CurrentTurn() != board.Black {
		t.Errorf("Turn should pass after the chain, got %v", e.CurrentTurn())
	}

	bd := e.Board()
	if bd.Count(board.Black) != 0 {
		t.Errorf("Expected both black men captured, got %d left", bd.Count(board.Black))
	}
}

func TestPromotionMidChainContinues(t *testing.T) {
	b := board.NewEmptyBoard()
	place(t, b, board.Red, false, 2, 1)
	place(t, b, board.Black, false, 1, 2)
	place(t, b, board.Black, false, 1, 4)

	e := NewFromBoard(b, board.Red)

	// The jump lands on row 0 and promotes; the new king can immediately
	// jump again, so the chain continues with king directions.
	if !e.TryMove(board.Cell{Row: 2, Col: 1}, board.Cell{Row: 0, Col: 3}) {
		t.Fatal("Promoting jump rejected")
	}

	bd := e.Board()
	if bd.PieceAt(board.Cell{Row: 0, Col: 3}) != board.RedKing {
		t.Fatalf("Expected a red king on (0,3), got %v", bd.PieceAt(board.Cell{Row: 0, Col: 3}))
	}

	if e.Phase() != ForcedContinuation {
		t.Fatalf("Promotion must not end the capture chain, phase=%v", e.Phase())
	}
	if e.CurrentTurn() != board.Red {
		t.Error("Turn passed despite the pending jump")
	}

	legal := e.LegalMoves()
	dests, ok := legal[board.Cell{Row: 0, Col: 3}]
	if !ok || len(legal) != 1 {
		t.Fatalf("Chain should restrict moves to the new king, got %v", legal)
	}
	caps, ok := dests[board.Cell{Row: 2, Col: 5}]
	if !ok {
		t.Fatalf("King should continue to (2,5), got %v", dests)
	}
	if len(caps) != 1 || caps[0] != (board.Cell{Row: 1, Col: 4}) {
		t.Errorf("Expected capture of (1,4), got %v", caps)
	}

	if !e.TryMove(board.Cell{Row: 0, Col: 3}, board.Cell{Row: 2, Col: 5}) {
		t.Fatal("Continuation jump rejected")
	}
	if e.Phase() != GameOver {
		t.Errorf("Capturing the last black piece should end the game, phase=%v", e.Phase())
	}
	if winner, ok := e.Winner(); !ok || winner != board.Red {
		t.Errorf("Winner() = %v %v, want Red", winner, ok)
	}
}

func TestWinByNoMoves(t *testing.T) {
	b := board.NewEmptyBoard()
	// Black's single man is boxed in: both forward diagonals are occupied
	// and the jump landings are occupied too.
	place(t, b, board.Black, false, 5, 0)
	place(t, b, board.Red, false, 6, 1)
	place(t, b, board.Red, false, 7, 2)
	place(t, b, board.Red, false, 7, 0)

	e := NewFromBoard(b, board.Black)

	if e.Phase() != GameOver {
		t.Fatalf("Expected immediate game over, phase=%v", e.Phase())
	}
	winner, ok := e.Winner()
	if !ok || winner != board.Red {
		t.Errorf("Immobilized side loses: Winner() = %v %v", winner, ok)
	}
}

func TestGameOverRejectsInput(t *testing.T) {
	b := board.NewEmptyBoard()
	place(t, b, board.Red, false, 5, 2)

	e := NewFromBoard(b, board.Red)
	if e.Phase() != GameOver {
		t.Fatalf("Expected game over with no black pieces, phase=%v", e.Phase())
	}

	if e.HandleCell(board.Cell{Row: 5, Col: 2}) {
		t.Error("HandleCell accepted input after game over")
	}
	if e.TrySelect(board.Cell{Row: 5, Col: 2}) {
		t.Error("TrySelect accepted input after game over")
	}
	if e.TryMove(board.Cell{Row: 5, Col: 2}, board.Cell{Row: 4, Col: 3}) {
		t.Error("TryMove accepted input after game over")
	}
	if e.LegalMoves() != nil {
		t.Error("LegalMoves should be empty after game over")
	}
}

func TestMandatoryCaptureViaEngine(t *testing.T) {
	b := board.NewEmptyBoard()
	place(t, b, board.Red, false, 3, 4)
	place(t, b, board.Black, false, 2, 3)
	place(t, b, board.Red, false, 5, 0)

	e := NewFromBoard(b, board.Red)

	if !e.LegalMoves().HasCapture() {
		t.Fatal("Expected capture in the legal set")
	}
	// The quiet move is refused while a jump exists anywhere.
	if e.TryMove(board.Cell{Row: 5, Col: 0}, board.Cell{Row: 4, Col: 1}) {
		t.Error("Quiet move accepted while a capture was mandatory")
	}
	if !e.TryMove(board.Cell{Row: 3, Col: 4}, board.Cell{Row: 1, Col: 2}) {
		t.Error("Mandatory jump rejected")
	}
}

// place is a test helper that fails the test on an invalid setup square.
func place(t *testing.T, b *board.Board, c board.Color, king bool, row, col int) {
	t.Helper()
	if err := b.Place(c, king, board.Cell{Row: row, Col: col}); err != nil {
		t.Fatalf("Setup: %v", err)
	}
}
