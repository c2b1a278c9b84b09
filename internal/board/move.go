package board

// Move records a single step: a one-square advance, or one jump capturing
// exactly one piece. A multi-jump chain is a sequence of Moves resolved by
// the game engine, not one atomic value.
type Move struct {
	From     Cell
	To       Cell
	Captures []Cell
}

// IsJump reports whether the move captures.
func (m Move) IsJump() bool {
	return len(m.Captures) > 0
}

// String returns the move in algebraic form: "b6-a5" for a step, "b6xd4"
// for a jump.
func (m Move) String() string {
	sep := "-"
	if m.IsJump() {
		sep = "x"
	}
	return m.From.String() + sep + m.To.String()
}
