package board

// Color represents the color of a piece or player.
type Color uint8

const (
	Red Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Forward returns the row delta of the color's forward direction.
// Red advances toward row 0, Black toward row 7.
func (c Color) Forward() int {
	if c == Red {
		return -1
	}
	return 1
}

// PromotionRow returns the far row where the color's men become kings.
func (c Color) PromotionRow() int {
	if c == Red {
		return 0
	}
	return Size - 1
}

// Piece encodes the occupant of a cell: a color plus king status.
type Piece uint8

const (
	NoPiece Piece = iota
	RedMan
	RedKing
	BlackMan
	BlackKing
)

// NewPiece creates a Piece from Color and king status.
func NewPiece(c Color, king bool) Piece {
	switch c {
	case Red:
		if king {
			return RedKing
		}
		return RedMan
	case Black:
		if king {
			return BlackKing
		}
		return BlackMan
	}
	return NoPiece
}

// Color returns the piece color, or NoColor for NoPiece.
func (p Piece) Color() Color {
	switch p {
	case RedMan, RedKing:
		return Red
	case BlackMan, BlackKing:
		return Black
	}
	return NoColor
}

// IsKing reports whether the piece is a king.
func (p Piece) IsKing() bool {
	return p == RedKing || p == BlackKing
}

// Promote returns the king of the piece's color. Kings and NoPiece are
// returned unchanged.
func (p Piece) Promote() Piece {
	switch p {
	case RedMan:
		return RedKing
	case BlackMan:
		return BlackKing
	}
	return p
}

// String returns a one-character code: "r"/"R" for a red man/king, "b"/"B"
// for a black man/king, "." for an empty cell.
func (p Piece) String() string {
	switch p {
	case RedMan:
		return "r"
	case RedKing:
		return "R"
	case BlackMan:
		return "b"
	case BlackKing:
		return "B"
	}
	return "."
}
