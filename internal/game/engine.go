// Package game implements the turn state machine: it orchestrates move
// generation, selection, application, capture chains and win detection.
package game

import (
	"checkersplay/internal/board"
)

// Phase identifies the state of the turn machine.
type Phase uint8

const (
	// AwaitingMove: the side to move may pick any legal source.
	AwaitingMove Phase = iota
	// ForcedContinuation: a piece just captured and must keep jumping;
	// no other piece may move.
	ForcedContinuation
	// GameOver: terminal, no further moves are accepted.
	GameOver
)

// Engine owns the board and the current turn. All board mutation funnels
// through TryMove, which keeps the piece counters consistent.
type Engine struct {
	board  board.Board
	turn   board.Color
	phase  Phase
	winner board.Color

	// Jumping piece while phase == ForcedContinuation.
	contFrom board.Cell

	// Two-phase selection state for human input.
	selected    board.Cell
	hasSelected bool

	// Legal moves for the current phase. During a forced continuation this
	// is restricted to the jumping piece's jump candidates.
	legal board.LegalMoveSet

	lastMove board.Move
	hasLast  bool
}

// New starts a game from the initial layout with Red to move.
func New() *Engine {
	return NewFromBoard(board.NewBoard(), board.Red)
}

// NewFromBoard starts a game from an arbitrary position with the given
// side to move.
func NewFromBoard(b *board.Board, turn board.Color) *Engine {
	e := &Engine{
		board: *b,
		turn:  turn,
		phase: AwaitingMove,
	}
	e.refreshLegal()
	return e
}

// refreshLegal recomputes the legal move set for the side to move and
// resolves game-over conditions: a side with no pieces or no legal moves
// loses.
func (e *Engine) refreshLegal() {
	if winner, over := e.board.WinnerByAttrition(); over {
		e.phase = GameOver
		e.winner = winner
		e.legal = nil
		return
	}

	e.legal = board.LegalMoves(&e.board, e.turn)
	if len(e.legal) == 0 {
		e.phase = GameOver
		e.winner = e.turn.Other()
	}
}

// Board returns a copy of the current position. Mutation goes through
// TryMove only.
func (e *Engine) Board() board.Board {
	return e.board
}

// CurrentTurn returns the side to move.
func (e *Engine) CurrentTurn() board.Color {
	return e.turn
}

// Phase returns the current turn-machine phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Winner returns the winning color once the game is over.
func (e *Engine) Winner() (board.Color, bool) {
	if e.phase != GameOver {
		return board.NoColor, false
	}
	return e.winner, true
}

// ContinuationCell returns the piece locked into a capture chain while the
// engine is in ForcedContinuation.
func (e *Engine) ContinuationCell() (board.Cell, bool) {
	if e.phase != ForcedContinuation {
		return board.NoCell, false
	}
	return e.contFrom, true
}

// LegalMoves returns the legal move set for the side to move. The caller
// must not mutate it.
func (e *Engine) LegalMoves() board.LegalMoveSet {
	return e.legal
}

// Selected returns the currently selected source cell, if any.
func (e *Engine) Selected() (board.Cell, bool) {
	if !e.hasSelected {
		return board.NoCell, false
	}
	return e.selected, true
}

// LastMove returns the most recently applied step.
func (e *Engine) LastMove() (board.Move, bool) {
	return e.lastMove, e.hasLast
}

// HandleCell implements the two-phase selection protocol for raw cell
// input. The first accepted click selects a legal source; the second
// either moves to one of that source's legal destinations or clears the
// selection. An invalid second click deselects and is deliberately not
// reinterpreted as a new source pick.
func (e *Engine) HandleCell(c board.Cell) bool {
	if e.phase == GameOver {
		return false
	}

	if e.hasSelected {
		if c == e.selected {
			return false
		}
		if e.TryMove(e.selected, c) {
			return true
		}
		e.clearSelection()
		return false
	}

	return e.TrySelect(c)
}

// TrySelect selects the cell as the move source if it holds a piece of the
// side to move with at least one legal move. Anything else is a no-op.
// During a forced continuation only the jumping piece is selectable.
func (e *Engine) TrySelect(c board.Cell) bool {
	if e.phase == GameOver {
		return false
	}
	if _, ok := e.legal[c]; !ok {
		return false
	}
	e.selected = c
	e.hasSelected = true
	return true
}

// TryMove applies the step if it is in the legal move set; anything else
// is a no-op and leaves the state unchanged. After a capture that leaves
// the moved piece with another jump, the same color keeps the move and
// only that piece may continue; otherwise the turn passes.
func (e *Engine) TryMove(from, to board.Cell) bool {
	if e.phase == GameOver {
		return false
	}
	dests, ok := e.legal[from]
	if !ok {
		return false
	}
	if _, ok := dests[to]; !ok {
		return false
	}

	captured, didCapture, _ := e.board.ApplyStep(from, to)
	e.lastMove = board.Move{From: from, To: to}
	if didCapture {
		e.lastMove.Captures = []board.Cell{captured}
	}
	e.hasLast = true
	e.clearSelection()

	if didCapture {
		// A promotion on the landing square does not cancel the chain:
		// the piece continues with its new movement directions.
		if jumps := board.PieceMoves(&e.board, to, true); len(jumps) > 0 {
			e.phase = ForcedContinuation
			e.contFrom = to
			e.legal = board.LegalMoveSet{to: jumps}
			e.selected = to
			e.hasSelected = true
			return true
		}
	}

	e.turn = e.turn.Other()
	e.phase = AwaitingMove
	e.refreshLegal()
	return true
}

func (e *Engine) clearSelection() {
	e.selected = board.NoCell
	e.hasSelected = false
}
