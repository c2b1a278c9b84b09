// Package ai implements the tiered computer-opponent move selection.
//
// No tier performs lookahead: Hard differs from Medium only in how it
// breaks ties among capturing moves, a deliberate scope limitation to keep
// the opponent simple and fast.
package ai

import (
	"math/rand"
	"sort"
	"time"

	"checkersplay/internal/board"
)

// Difficulty selects the move-picking heuristic tier.
type Difficulty int

const (
	Easy   Difficulty = iota // uniform random
	Medium                   // prefers captures, then promotions
	Hard                     // maximizes immediate captures, then as Medium
)

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Selector picks one move from a legal move set. The random source is
// injectable so selection is reproducible under test.
type Selector struct {
	diff Difficulty
	rng  *rand.Rand
}

// NewSelector creates a selector for the difficulty tier. A nil rng falls
// back to a time-seeded source.
func NewSelector(d Difficulty, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{diff: d, rng: rng}
}

// SetDifficulty changes the selector's tier.
func (s *Selector) SetDifficulty(d Difficulty) {
	s.diff = d
}

// Difficulty returns the selector's tier.
func (s *Selector) Difficulty() Difficulty {
	return s.diff
}

// pair is one (source, destination) option from the legal move set.
type pair struct {
	from, to board.Cell
	captures int
}

// Choose picks one move from the set for the side to move. ok is false
// when the set is empty (the caller should already have detected game
// over in that case).
func (s *Selector) Choose(b *board.Board, moves board.LegalMoveSet) (from, to board.Cell, ok bool) {
	if len(moves) == 0 {
		return board.NoCell, board.NoCell, false
	}

	switch s.diff {
	case Medium:
		return s.chooseMedium(b, moves)
	case Hard:
		return s.chooseHard(b, moves)
	default:
		return s.chooseEasy(moves)
	}
}

// chooseEasy picks a uniform-random source, then a uniform-random
// destination of that source.
func (s *Selector) chooseEasy(moves board.LegalMoveSet) (board.Cell, board.Cell, bool) {
	sources := sortedSources(moves)
	from := sources[s.rng.Intn(len(sources))]
	dests := sortedDests(moves[from])
	return from, dests[s.rng.Intn(len(dests))], true
}

// chooseMedium prefers capturing pairs (when captures exist the set is
// already capture-only, so this is uniform over all of it), then
// promotion-row destinations for men, then anything.
func (s *Selector) chooseMedium(b *board.Board, moves board.LegalMoveSet) (board.Cell, board.Cell, bool) {
	all := flatten(moves)

	if caps := capturing(all); len(caps) > 0 {
		p := caps[s.rng.Intn(len(caps))]
		return p.from, p.to, true
	}
	if kings := promoting(b, all); len(kings) > 0 {
		p := kings[s.rng.Intn(len(kings))]
		return p.from, p.to, true
	}

	p := all[s.rng.Intn(len(all))]
	return p.from, p.to, true
}

// chooseHard picks the pair with the longest capture list, greedily over
// one ply, breaking ties by taking the first encountered in row-major
// order. Without captures it falls back to Medium's preferences.
func (s *Selector) chooseHard(b *board.Board, moves board.LegalMoveSet) (board.Cell, board.Cell, bool) {
	all := flatten(moves)

	if caps := capturing(all); len(caps) > 0 {
		best := caps[0]
		for _, p := range caps[1:] {
			if p.captures > best.captures {
				best = p
			}
		}
		return best.from, best.to, true
	}
	if kings := promoting(b, all); len(kings) > 0 {
		p := kings[s.rng.Intn(len(kings))]
		return p.from, p.to, true
	}

	p := all[s.rng.Intn(len(all))]
	return p.from, p.to, true
}

// flatten expands the set into (source, destination) pairs in row-major
// order, so index-based picks and tie-breaks are deterministic.
func flatten(moves board.LegalMoveSet) []pair {
	var all []pair
	for _, from := range sortedSources(moves) {
		dests := moves[from]
		for _, to := range sortedDests(dests) {
			all = append(all, pair{from: from, to: to, captures: len(dests[to])})
		}
	}
	return all
}

// capturing filters pairs down to those that capture.
func capturing(all []pair) []pair {
	var out []pair
	for _, p := range all {
		if p.captures > 0 {
			out = append(out, p)
		}
	}
	return out
}

// promoting filters pairs down to men landing on their promotion row.
func promoting(b *board.Board, all []pair) []pair {
	var out []pair
	for _, p := range all {
		piece := b.PieceAt(p.from)
		if piece == board.NoPiece || piece.IsKing() {
			continue
		}
		if p.to.Row == piece.Color().PromotionRow() {
			out = append(out, p)
		}
	}
	return out
}

func sortedSources(moves board.LegalMoveSet) []board.Cell {
	cells := make([]board.Cell, 0, len(moves))
	for c := range moves {
		cells = append(cells, c)
	}
	sortCells(cells)
	return cells
}

func sortedDests(dests board.MoveSet) []board.Cell {
	cells := make([]board.Cell, 0, len(dests))
	for c := range dests {
		cells = append(cells, c)
	}
	sortCells(cells)
	return cells
}

func sortCells(cells []board.Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}
