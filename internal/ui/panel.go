package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"checkersplay/internal/ai"
	"checkersplay/internal/board"
	"checkersplay/internal/game"
	"checkersplay/internal/storage"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 26
	ButtonHeight   = 40
	TabHeight      = 34
	SectionLabelH  = 20
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}    // Dark background
	tabActiveBg     = color.RGBA{155, 65, 50, 255}   // Red for active tab
	tabInactiveBg   = color.RGBA{50, 54, 60, 255}    // Darker gray for inactive
	tabHoverBg      = color.RGBA{65, 70, 78, 255}    // Visible hover state
	buttonBg        = color.RGBA{50, 54, 60, 255}    // Button background
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}    // Button hover
	buttonPressedBg = color.RGBA{40, 44, 50, 255}    // Button pressed
	buttonBorder    = color.RGBA{70, 75, 82, 255}    // Subtle button border
	accentColor     = color.RGBA{200, 90, 70, 255}   // Red accent
	accentHover     = color.RGBA{220, 110, 90, 255}  // Lighter red on hover
	accentPressed   = color.RGBA{170, 70, 55, 255}   // Darker red on press
	textPrimary     = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary   = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted       = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor    = color.RGBA{60, 65, 72, 255}    // Divider line
	moveRowAlt      = color.RGBA{44, 48, 54, 255}    // Alternating row
	statusThinking  = color.RGBA{100, 180, 255, 255} // Blue for thinking
	statusJump      = color.RGBA{255, 160, 70, 255}  // Orange for forced jumps
	statusGameOver  = color.RGBA{255, 200, 80, 255}  // Yellow for game over
	bannerOverlay   = color.RGBA{0, 0, 0, 140}       // Board dim at game over
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	pressed    bool
}

// Panel represents the side panel with controls and move history.
type Panel struct {
	game *Game

	newGameBtn  *Button
	settingsBtn *Button
	modeTabs    []*Button // [0] = Two Player, [1] = vs Computer
	diffTabs    []*Button // [0] = Easy, [1] = Medium, [2] = Hard

	// Move history scroll
	scrollY    int
	maxScrollY int
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

// createButtons initializes all panel buttons.
func (p *Panel) createButtons() {
	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	newGameY := PanelPadding + 8
	p.newGameBtn = &Button{
		X: contentX, Y: newGameY,
		W: contentW, H: ButtonHeight,
		Label:   "New Game",
		OnClick: p.game.NewGameAction,
	}

	settingsY := newGameY + ButtonHeight + 8
	p.settingsBtn = &Button{
		X: contentX, Y: settingsY,
		W: contentW, H: ButtonHeight - 6,
		Label:   "Settings",
		OnClick: p.game.ShowSettings,
	}

	modeLabelY := settingsY + ButtonHeight - 6 + SectionSpacing - 8
	modeTabY := modeLabelY + SectionLabelH
	tabW := contentW / 2
	p.modeTabs = []*Button{
		{X: contentX, Y: modeTabY, W: tabW, H: TabHeight, Label: "Two Player",
			OnClick: func() { p.game.SetGameMode(storage.ModeTwoPlayer) }},
		{X: contentX + tabW, Y: modeTabY, W: tabW, H: TabHeight, Label: "vs Computer",
			OnClick: func() { p.game.SetGameMode(storage.ModeVsComputer) }},
	}

	diffLabelY := modeTabY + TabHeight + SectionSpacing
	diffTabY := diffLabelY + SectionLabelH
	diffTabW := contentW / 3
	p.diffTabs = []*Button{
		{X: contentX, Y: diffTabY, W: diffTabW, H: TabHeight - 2, Label: "Easy",
			OnClick: func() { p.game.SetDifficulty(ai.Easy) }},
		{X: contentX + diffTabW, Y: diffTabY, W: diffTabW, H: TabHeight - 2, Label: "Medium",
			OnClick: func() { p.game.SetDifficulty(ai.Medium) }},
		{X: contentX + diffTabW*2, Y: diffTabY, W: diffTabW, H: TabHeight - 2, Label: "Hard",
			OnClick: func() { p.game.SetDifficulty(ai.Hard) }},
	}
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	// Scroll wheel over the move history area
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		historyY := p.historyStartY()
		if mx >= BoardSize && my >= historyY && my < ScreenHeight-90 {
			p.scrollY -= int(wheelY * 30)
			if p.scrollY < 0 {
				p.scrollY = 0
			}
			if p.scrollY > p.maxScrollY {
				p.scrollY = p.maxScrollY
			}
		}
	}

	buttons := p.allButtons()
	for _, btn := range buttons {
		btn.hovered = p.isInside(mx, my, btn)
		btn.pressed = btn.hovered && input.IsLeftPressed()
	}

	if input.IsLeftJustPressed() {
		if p.newGameBtn.hovered {
			p.newGameBtn.OnClick()
			return true
		}
		if p.settingsBtn.hovered {
			p.settingsBtn.OnClick()
			return true
		}
		for _, btn := range p.modeTabs {
			if btn.hovered {
				btn.OnClick()
				return true
			}
		}
		if p.game.GameMode() == storage.ModeVsComputer {
			for _, btn := range p.diffTabs {
				if btn.hovered {
					btn.OnClick()
					return true
				}
			}
		}
	}

	return false
}

func (p *Panel) allButtons() []*Button {
	btns := []*Button{p.newGameBtn, p.settingsBtn}
	btns = append(btns, p.modeTabs...)
	btns = append(btns, p.diffTabs...)
	return btns
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.allButtons() {
		if btn.hovered {
			return true
		}
	}
	return false
}

func (p *Panel) isInside(mx, my int, btn *Button) bool {
	return mx >= btn.X && mx < btn.X+btn.W && my >= btn.Y && my < btn.Y+btn.H
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(BoardSize), 0, float32(PanelWidth), float32(ScreenHeight), panelBg, false)

	p.drawPrimaryButton(screen, p.newGameBtn)
	p.drawSecondaryButton(screen, p.settingsBtn)

	modeLabelY := p.modeTabs[0].Y - SectionLabelH
	p.drawSectionLabel(screen, "Game Mode", BoardSize+PanelPadding, modeLabelY)
	p.drawTabs(screen, p.modeTabs, p.activeModeTab())

	if p.game.GameMode() == storage.ModeVsComputer {
		diffLabelY := p.diffTabs[0].Y - SectionLabelH
		p.drawSectionLabel(screen, "Difficulty", BoardSize+PanelPadding, diffLabelY)
		p.drawTabs(screen, p.diffTabs, int(p.game.Difficulty()))
	}

	historyY := p.historyStartY()
	p.drawSectionLabel(screen, "Moves", BoardSize+PanelPadding, historyY)
	p.drawMoveHistory(screen, historyY+SectionLabelH+4)

	p.drawStatusBar(screen)
}

func (p *Panel) activeModeTab() int {
	if p.game.GameMode() == storage.ModeVsComputer {
		return 1
	}
	return 0
}

func (p *Panel) historyStartY() int {
	if p.game.GameMode() == storage.ModeVsComputer {
		return p.diffTabs[0].Y + p.diffTabs[0].H + SectionSpacing - 4
	}
	return p.modeTabs[0].Y + p.modeTabs[0].H + SectionSpacing - 4
}

func (p *Panel) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := accentColor
	if btn.pressed {
		bgColor = accentPressed
	} else if btn.hovered {
		bgColor = accentHover
	}

	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bgColor, false)

	borderC := accentPressed
	if btn.hovered {
		borderC = color.RGBA{240, 140, 120, 255}
	}
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, borderC, false)

	p.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textPrimary)
}

func (p *Panel) drawSecondaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := buttonBg
	if btn.pressed {
		bgColor = buttonPressedBg
	} else if btn.hovered {
		bgColor = buttonHoverBg
	}

	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bgColor, false)

	borderC := buttonBorder
	if btn.hovered {
		borderC = accentColor
	}
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, borderC, false)

	p.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textSecondary)
}

func (p *Panel) drawTabs(screen *ebiten.Image, tabs []*Button, active int) {
	for i, btn := range tabs {
		isActive := i == active

		bgColor := tabInactiveBg
		if isActive {
			bgColor = tabActiveBg
		} else if btn.pressed {
			bgColor = buttonPressedBg
		} else if btn.hovered {
			bgColor = tabHoverBg
		}
		vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bgColor, false)

		borderC := buttonBorder
		if isActive {
			borderC = tabActiveBg
		} else if btn.hovered {
			borderC = accentColor
		}
		vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, borderC, false)

		textColor := textSecondary
		if isActive {
			textColor = textPrimary
		}
		p.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textColor)
	}
}

func (p *Panel) drawSectionLabel(screen *ebiten.Image, label string, x, y int) {
	p.drawText(screen, label, x, y, textMuted)
}

func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int) {
	moves := p.game.MoveHistory()
	if len(moves) == 0 {
		p.drawText(screen, "No moves yet", BoardSize+PanelPadding, startY+5, textMuted)
		return
	}

	x := BoardSize + PanelPadding
	rowHeight := 22
	maxY := ScreenHeight - 90 // Leave room for status bar
	visibleHeight := maxY - startY

	// Moves are paired Red then Black per numbered row
	totalRows := (len(moves) + 1) / 2
	contentHeight := totalRows * rowHeight
	p.maxScrollY = contentHeight - visibleHeight
	if p.maxScrollY < 0 {
		p.maxScrollY = 0
	}
	if p.scrollY > p.maxScrollY {
		p.scrollY = p.maxScrollY
	}

	startRow := p.scrollY / rowHeight
	startMoveIdx := startRow * 2
	y := startY - (p.scrollY % rowHeight)

	for i := startMoveIdx; i < len(moves); i += 2 {
		if y < startY-rowHeight {
			y += rowHeight
			continue
		}
		if y > maxY {
			break
		}

		if y >= startY-rowHeight && (i/2)%2 == 1 {
			bgY := y - 2
			if bgY < startY {
				bgY = startY
			}
			vector.DrawFilledRect(screen, float32(BoardSize+PanelPadding-4), float32(bgY),
				float32(PanelWidth-PanelPadding*2+8), float32(rowHeight), moveRowAlt, false)
		}

		if y >= startY {
			moveNum := (i / 2) + 1
			p.drawText(screen, fmt.Sprintf("%d.", moveNum), x, y, textMuted)
			p.drawText(screen, moves[i], x+30, y, textPrimary)
			if i+1 < len(moves) {
				p.drawText(screen, moves[i+1], x+150, y, textPrimary)
			}
		}

		y += rowHeight
	}

	if p.maxScrollY > 0 {
		scrollPct := float32(p.scrollY) / float32(p.maxScrollY)
		indicatorH := float32(visibleHeight) * float32(visibleHeight) / float32(contentHeight)
		if indicatorH < 20 {
			indicatorH = 20
		}
		indicatorY := float32(startY) + scrollPct*(float32(visibleHeight)-indicatorH)
		indicatorX := float32(BoardSize + PanelWidth - 8)
		vector.DrawFilledRect(screen, indicatorX, indicatorY, 4, indicatorH, textMuted, false)
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - 90
	x := BoardSize + PanelPadding

	vector.DrawFilledRect(screen, float32(x), float32(statusY-10),
		float32(PanelWidth-PanelPadding*2), 1, dividerColor, false)

	username := p.game.Username()
	if len(username) > 16 {
		username = username[:16] + "..."
	}
	p.drawText(screen, username, x, statusY, textPrimary)

	// Piece counts
	b := p.game.Engine().Board()
	counts := fmt.Sprintf("Red %d  Black %d", b.Count(board.Red), b.Count(board.Black))
	p.drawText(screen, counts, x, statusY+22, textSecondary)

	eng := p.game.Engine()
	var statusText string
	var statusColor color.RGBA

	switch {
	case eng.Phase() == game.GameOver:
		statusColor = statusGameOver
		if winner, ok := eng.Winner(); ok {
			statusText = winner.String() + " wins!"
		} else {
			statusText = "Game over"
		}
	case p.game.IsAIThinking():
		statusText = "Computer thinking..."
		statusColor = statusThinking
	case eng.Phase() == game.ForcedContinuation:
		statusText = eng.CurrentTurn().String() + " must jump again"
		statusColor = statusJump
	case eng.LegalMoves().HasCapture():
		statusText = eng.CurrentTurn().String() + " must capture"
		statusColor = statusJump
	default:
		statusText = eng.CurrentTurn().String() + " to move"
		statusColor = textPrimary
	}

	p.drawText(screen, statusText, x, statusY+44, statusColor)
}

// Text drawing helpers
func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (p *Panel) drawTextCentered(screen *ebiten.Image, s string, centerX, centerY int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(centerX)-w/2, float64(centerY)-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
