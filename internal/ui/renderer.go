package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"checkersplay/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{235, 228, 214, 255}, // Cream
		DarkSquare:     color.RGBA{74, 78, 84, 255},    // Slate
		SelectedSquare: color.RGBA{247, 247, 105, 150}, // Yellow highlight
		LegalMoveColor: color.RGBA{80, 130, 220, 220},  // Blue dots
		LastMoveColor:  color.RGBA{180, 190, 100, 80},  // Soft yellow-green
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255}, // Light gray
	}
}

// Renderer handles all board drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// DrawBoard draws the checkerboard squares. Row 0 is at the top, so Red's
// pieces start at the bottom of the screen.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := r.theme.LightSquare
			if (board.Cell{Row: row, Col: col}).IsDark() {
				c = r.theme.DarkSquare
			}
			x, y := r.CellToScreen(board.Cell{Row: row, Col: col})
			vector.DrawFilledRect(screen, float32(x), float32(y),
				float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws selection, legal move and last move highlights.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Cell, hasSelected bool, legal board.MoveSet, lastMove board.Move, hasLast bool) {
	if hasLast {
		r.highlightCell(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightCell(screen, lastMove.To, r.theme.LastMoveColor)
	}

	if !hasSelected {
		return
	}
	r.highlightCell(screen, selected, r.theme.SelectedSquare)

	for to := range legal {
		x, y := r.CellToScreen(to)
		cx := float32(x) + float32(r.squareSize)/2
		cy := float32(y) + float32(r.squareSize)/2
		radius := float32(r.squareSize) * 0.15
		vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, false)
	}
}

// highlightCell draws a colored overlay on a cell.
func (r *Renderer) highlightCell(screen *ebiten.Image, c board.Cell, col color.RGBA) {
	if !c.OnBoard() {
		return
	}
	x, y := r.CellToScreen(c)
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(r.squareSize), float32(r.squareSize), col, false)
}

// DrawPieces draws all pieces on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := board.Cell{Row: row, Col: col}
			p := b.PieceAt(c)
			if p == board.NoPiece {
				continue
			}
			x, y := r.CellToScreen(c)
			r.sprites.DrawPieceAt(screen, p, x, y)
		}
	}
}

// CellToScreen converts a board cell to screen coordinates.
func (r *Renderer) CellToScreen(c board.Cell) (int, int) {
	return c.Col * r.squareSize, c.Row * r.squareSize
}

// ScreenToCell converts screen coordinates to a board cell. Returns NoCell
// for coordinates outside the board.
func (r *Renderer) ScreenToCell(x, y int) board.Cell {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoCell
	}
	return board.Cell{Row: y / r.squareSize, Col: x / r.squareSize}
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
