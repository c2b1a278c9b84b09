package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"checkersplay/internal/storage"
)

// Welcome screen dimensions
const (
	WelcomeWidth  = 400
	WelcomeHeight = 360
	WelcomePadX   = 32
	WelcomePadY   = 24
)

// WelcomeScreen is shown on first launch.
type WelcomeScreen struct {
	visible bool

	// Position (centered on screen)
	x, y int

	nameInput *TextInput
	modeRadio *RadioGroup
	startBtn  *ModalButton

	onComplete func(name string, mode storage.GameMode)
}

// NewWelcomeScreen creates a new welcome screen.
func NewWelcomeScreen() *WelcomeScreen {
	ws := &WelcomeScreen{}
	ws.x = (ScreenWidth - WelcomeWidth) / 2
	ws.y = (ScreenHeight - WelcomeHeight) / 2
	ws.createWidgets()
	return ws
}

// createWidgets initializes all welcome screen widgets.
func (ws *WelcomeScreen) createWidgets() {
	contentX := ws.x + WelcomePadX
	contentW := WelcomeWidth - WelcomePadX*2

	inputY := ws.y + 130
	ws.nameInput = NewTextInput(contentX, inputY, contentW, 40, "Enter your name", 20)

	radioY := inputY + 76
	ws.modeRadio = NewRadioGroup(contentX, radioY, []RadioOption{
		{Label: "Two Player (hot seat)", Value: int(storage.ModeTwoPlayer)},
		{Label: "vs Computer", Value: int(storage.ModeVsComputer)},
	}, 1)

	btnW := 160
	btnH := 44
	btnX := ws.x + (WelcomeWidth-btnW)/2
	btnY := ws.y + WelcomeHeight - WelcomePadY - btnH
	ws.startBtn = NewModalButton(btnX, btnY, btnW, btnH, "Start Playing", true, nil)
}

// Show displays the welcome screen.
func (ws *WelcomeScreen) Show(onComplete func(name string, mode storage.GameMode)) {
	ws.visible = true
	ws.onComplete = onComplete
	ws.nameInput.Value = ""
	ws.modeRadio.Selected = 1
	ws.startBtn.OnClick = ws.handleStart
}

// Hide closes the welcome screen.
func (ws *WelcomeScreen) Hide() {
	ws.visible = false
	ws.nameInput.SetFocused(false)
}

// IsVisible returns true if the screen is visible.
func (ws *WelcomeScreen) IsVisible() bool {
	return ws.visible
}

// handleStart handles the start button click.
func (ws *WelcomeScreen) handleStart() {
	name := ws.nameInput.Value
	if name == "" {
		name = "Player"
	}
	mode := storage.GameMode(ws.modeRadio.Selected)

	if ws.onComplete != nil {
		ws.onComplete(name, mode)
	}
	ws.Hide()
}

// Update handles input for the welcome screen.
func (ws *WelcomeScreen) Update(input *InputHandler) bool {
	if !ws.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEnter) && !ws.nameInput.IsFocused() {
		ws.handleStart()
		return true
	}

	ws.nameInput.Update(input)
	ws.modeRadio.Update(input)
	ws.startBtn.Update(input)

	// Welcome screen consumes all input
	return true
}

// AnyButtonHovered returns true if any button in the screen is hovered.
func (ws *WelcomeScreen) AnyButtonHovered() bool {
	if !ws.visible {
		return false
	}
	return ws.startBtn.IsHovered() || ws.modeRadio.hovered >= 0
}

// Draw renders the welcome screen.
func (ws *WelcomeScreen) Draw(screen *ebiten.Image) {
	if !ws.visible {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(ScreenWidth), float32(ScreenHeight), modalOverlay, false)

	vector.DrawFilledRect(screen, float32(ws.x), float32(ws.y), float32(WelcomeWidth), float32(WelcomeHeight), modalBg, false)
	vector.StrokeRect(screen, float32(ws.x), float32(ws.y), float32(WelcomeWidth), float32(WelcomeHeight), 2, modalBorder, false)

	ws.drawIcon(screen)
	ws.drawTitle(screen)
	ws.drawSubtitle(screen)

	contentX := ws.x + WelcomePadX
	ws.drawSectionLabel(screen, "Your Name", contentX, ws.nameInput.Y-20)
	ws.drawSectionLabel(screen, "Game Mode", contentX, ws.modeRadio.Y-20)

	ws.nameInput.Draw(screen)
	ws.modeRadio.Draw(screen)
	ws.startBtn.Draw(screen)
}

// drawIcon draws a decorative stacked-checker icon.
func (ws *WelcomeScreen) drawIcon(screen *ebiten.Image) {
	centerX := float32(ws.x + WelcomeWidth/2)
	y := float32(ws.y + 34)

	vector.DrawFilledCircle(screen, centerX, y+6, 13, accentPressed, false)
	vector.DrawFilledCircle(screen, centerX, y, 13, accentColor, false)
	vector.DrawFilledCircle(screen, centerX, y, 8, accentHover, false)
}

// drawTitle draws the main title.
func (ws *WelcomeScreen) drawTitle(screen *ebiten.Image) {
	face := GetFaceWithSize(24)
	if face == nil {
		return
	}

	title := "CHECKERS"
	w, _ := MeasureText(title, face)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(ws.x)+WelcomeWidth/2-w/2, float64(ws.y+60))
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, title, face, op)
}

// drawSubtitle draws the subtitle.
func (ws *WelcomeScreen) drawSubtitle(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	subtitle := "Welcome! Set up your preferences."
	w, _ := MeasureText(subtitle, face)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(ws.x)+WelcomeWidth/2-w/2, float64(ws.y+92))
	op.ColorScale.ScaleWithColor(textSecondary)
	text.Draw(screen, subtitle, face, op)
}

// drawSectionLabel draws a section label.
func (ws *WelcomeScreen) drawSectionLabel(screen *ebiten.Image, label string, x, y int) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(textMuted)
	text.Draw(screen, label, face, op)
}
