package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"checkersplay/internal/storage"
)

// Settings modal dimensions
const (
	SettingsWidth  = 380
	SettingsHeight = 400
	SettingsPadX   = 24
	SettingsPadY   = 20
)

// Settings modal colors
var (
	modalOverlay = color.RGBA{0, 0, 0, 180}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalHeader  = color.RGBA{48, 52, 58, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// SettingsModal is the settings configuration screen.
type SettingsModal struct {
	visible bool

	// Position (centered on screen)
	x, y int

	usernameInput  *TextInput
	modeRadio      *RadioGroup
	difficultyBtns *ButtonGroup
	saveBtn        *ModalButton
	cancelBtn      *ModalButton

	onSave   func(prefs *storage.UserPreferences)
	onCancel func()
}

// NewSettingsModal creates a new settings modal.
func NewSettingsModal() *SettingsModal {
	sm := &SettingsModal{}
	sm.x = (ScreenWidth - SettingsWidth) / 2
	sm.y = (ScreenHeight - SettingsHeight) / 2
	sm.createWidgets()
	return sm
}

// createWidgets initializes all settings widgets.
func (sm *SettingsModal) createWidgets() {
	contentX := sm.x + SettingsPadX
	contentW := SettingsWidth - SettingsPadX*2

	inputY := sm.y + 80
	sm.usernameInput = NewTextInput(contentX, inputY, contentW, 36, "Enter your name", 20)

	radioY := inputY + 70
	sm.modeRadio = NewRadioGroup(contentX, radioY, []RadioOption{
		{Label: "Two Player (hot seat)", Value: int(storage.ModeTwoPlayer)},
		{Label: "vs Computer", Value: int(storage.ModeVsComputer)},
	}, 1)

	diffY := radioY + 90
	btnW := contentW / 3
	sm.difficultyBtns = NewButtonGroup(contentX, diffY, []string{"Easy", "Medium", "Hard"}, 1, btnW, 34)

	btnW = 100
	btnH := 38
	btnY := sm.y + SettingsHeight - SettingsPadY - btnH
	btnSpacing := 12

	sm.cancelBtn = NewModalButton(
		sm.x+SettingsWidth-SettingsPadX-btnW*2-btnSpacing,
		btnY, btnW, btnH, "Cancel", false, nil,
	)
	sm.saveBtn = NewModalButton(
		sm.x+SettingsWidth-SettingsPadX-btnW,
		btnY, btnW, btnH, "Save", true, nil,
	)
}

// Show displays the settings modal with the given preferences.
func (sm *SettingsModal) Show(prefs *storage.UserPreferences, onSave func(*storage.UserPreferences), onCancel func()) {
	sm.visible = true
	sm.onSave = onSave
	sm.onCancel = onCancel

	sm.usernameInput.Value = prefs.Username
	sm.modeRadio.Selected = int(prefs.GameMode)
	sm.difficultyBtns.Selected = int(prefs.Difficulty)

	sm.saveBtn.OnClick = sm.handleSave
	sm.cancelBtn.OnClick = sm.handleCancel
}

// Hide closes the settings modal.
func (sm *SettingsModal) Hide() {
	sm.visible = false
	sm.usernameInput.SetFocused(false)
}

// IsVisible returns true if the modal is visible.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

// handleSave saves settings and closes the modal.
func (sm *SettingsModal) handleSave() {
	prefs := &storage.UserPreferences{
		Username:   sm.usernameInput.Value,
		GameMode:   storage.GameMode(sm.modeRadio.Selected),
		Difficulty: storage.Difficulty(sm.difficultyBtns.Selected),
	}
	if prefs.Username == "" {
		prefs.Username = "Player"
	}

	if sm.onSave != nil {
		sm.onSave(prefs)
	}
	sm.Hide()
}

// handleCancel discards changes and closes the modal.
func (sm *SettingsModal) handleCancel() {
	if sm.onCancel != nil {
		sm.onCancel()
	}
	sm.Hide()
}

// Update handles input for the settings modal.
func (sm *SettingsModal) Update(input *InputHandler) bool {
	if !sm.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEscape) {
		sm.handleCancel()
		return true
	}
	if IsKeyJustPressed(ebiten.KeyEnter) && !sm.usernameInput.IsFocused() {
		sm.handleSave()
		return true
	}

	sm.usernameInput.Update(input)
	sm.modeRadio.Update(input)
	sm.difficultyBtns.Update(input)
	sm.saveBtn.Update(input)
	sm.cancelBtn.Update(input)

	// Modal consumes all input
	return true
}

// AnyButtonHovered returns true if any button in the modal is hovered.
func (sm *SettingsModal) AnyButtonHovered() bool {
	if !sm.visible {
		return false
	}
	return sm.saveBtn.IsHovered() || sm.cancelBtn.IsHovered() ||
		sm.modeRadio.hovered >= 0 || sm.difficultyBtns.hovered >= 0
}

// Draw renders the settings modal.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(ScreenWidth), float32(ScreenHeight), modalOverlay, false)

	vector.DrawFilledRect(screen, float32(sm.x), float32(sm.y), float32(SettingsWidth), float32(SettingsHeight), modalBg, false)
	vector.StrokeRect(screen, float32(sm.x), float32(sm.y), float32(SettingsWidth), float32(SettingsHeight), 2, modalBorder, false)

	// Header
	vector.DrawFilledRect(screen, float32(sm.x), float32(sm.y), float32(SettingsWidth), 44, modalHeader, false)
	sm.drawTitle(screen)

	contentX := sm.x + SettingsPadX
	sm.drawSectionLabel(screen, "Player Name", contentX, sm.y+60)
	sm.drawSectionLabel(screen, "Game Mode", contentX, sm.usernameInput.Y+sm.usernameInput.H+14)
	sm.drawSectionLabel(screen, "Difficulty", contentX, sm.modeRadio.Y+sm.modeRadio.ItemH*len(sm.modeRadio.Options)+10)

	sm.usernameInput.Draw(screen)
	sm.modeRadio.Draw(screen)
	sm.difficultyBtns.Draw(screen)
	sm.saveBtn.Draw(screen)
	sm.cancelBtn.Draw(screen)
}

// drawTitle draws the modal title.
func (sm *SettingsModal) drawTitle(screen *ebiten.Image) {
	face := GetBoldFace()
	if face == nil {
		return
	}

	title := "Settings"
	w, h := MeasureText(title, face)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(sm.x)+SettingsWidth/2-w/2, float64(sm.y)+22-h/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, title, face, op)
}

// drawSectionLabel draws a section label.
func (sm *SettingsModal) drawSectionLabel(screen *ebiten.Image, label string, x, y int) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(textMuted)
	text.Draw(screen, label, face, op)
}
