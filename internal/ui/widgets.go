package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget colors (shared with panel colors in panel.go)
var (
	widgetBg          = color.RGBA{48, 52, 58, 255}
	widgetBorder      = color.RGBA{68, 72, 78, 255}
	widgetFocusBorder = color.RGBA{200, 90, 70, 255}
	radioActive       = color.RGBA{200, 90, 70, 255}
	radioInactive     = color.RGBA{70, 75, 82, 255}
	inputTextColor    = color.RGBA{240, 240, 245, 255}
	inputPlaceholder  = color.RGBA{120, 125, 135, 255}
)

// TextInput is an editable text field widget.
type TextInput struct {
	X, Y, W, H  int
	Value       string
	Placeholder string
	MaxLength   int
	focused     bool
	hovered     bool
	cursorBlink int
}

// NewTextInput creates a new text input widget.
func NewTextInput(x, y, w, h int, placeholder string, maxLen int) *TextInput {
	return &TextInput{
		X: x, Y: y, W: w, H: h,
		Placeholder: placeholder,
		MaxLength:   maxLen,
	}
}

// Update handles text input updates.
func (ti *TextInput) Update(input *InputHandler) bool {
	ti.hovered = input.IsInBounds(ti.X, ti.Y, ti.W, ti.H)

	if input.IsLeftJustPressed() {
		ti.focused = ti.hovered
	}
	if !ti.focused {
		return false
	}

	ti.cursorBlink++
	if ti.cursorBlink > 60 {
		ti.cursorBlink = 0
	}

	for _, c := range ebiten.AppendInputChars(nil) {
		if ti.MaxLength == 0 || utf8.RuneCountInString(ti.Value) < ti.MaxLength {
			ti.Value += string(c)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ti.Value) > 0 {
		_, size := utf8.DecodeLastRuneInString(ti.Value)
		ti.Value = ti.Value[:len(ti.Value)-size]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.focused = false
	}

	return true
}

// Draw renders the text input.
func (ti *TextInput) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(ti.X), float32(ti.Y), float32(ti.W), float32(ti.H), widgetBg, false)

	borderColor := widgetBorder
	if ti.focused {
		borderColor = widgetFocusBorder
	} else if ti.hovered {
		borderColor = accentColor
	}
	vector.StrokeRect(screen, float32(ti.X), float32(ti.Y), float32(ti.W), float32(ti.H), 2, borderColor, false)

	face := GetRegularFace()
	if face == nil {
		return
	}

	textX := ti.X + 10
	textY := ti.Y + ti.H/2

	value, valueColor := ti.Value, inputTextColor
	if value == "" {
		value, valueColor = ti.Placeholder, inputPlaceholder
	}
	if value != "" {
		op := &text.DrawOptions{}
		_, h := MeasureText(value, face)
		op.GeoM.Translate(float64(textX), float64(textY)-h/2)
		op.ColorScale.ScaleWithColor(valueColor)
		text.Draw(screen, value, face, op)
	}

	// Blinking cursor after the typed text
	if ti.focused && ti.cursorBlink < 30 {
		w := 0.0
		if ti.Value != "" {
			w, _ = MeasureText(ti.Value, face)
		}
		cursorX := float32(textX) + float32(w) + 2
		vector.DrawFilledRect(screen, cursorX, float32(ti.Y+8), 2, float32(ti.H-16), inputTextColor, false)
	}
}

// IsFocused returns true if the input is focused.
func (ti *TextInput) IsFocused() bool {
	return ti.focused
}

// SetFocused sets the focus state.
func (ti *TextInput) SetFocused(focused bool) {
	ti.focused = focused
}

// RadioOption represents a single radio button option.
type RadioOption struct {
	Label string
	Value int
}

// RadioGroup is a group of mutually exclusive radio buttons.
type RadioGroup struct {
	X, Y     int
	Options  []RadioOption
	Selected int
	ItemH    int
	hovered  int
}

// NewRadioGroup creates a new radio group.
func NewRadioGroup(x, y int, options []RadioOption, selected int) *RadioGroup {
	return &RadioGroup{
		X:        x,
		Y:        y,
		Options:  options,
		Selected: selected,
		ItemH:    30,
		hovered:  -1,
	}
}

// Update handles radio group input.
func (rg *RadioGroup) Update(input *InputHandler) bool {
	rg.hovered = -1
	for i := range rg.Options {
		itemY := rg.Y + i*rg.ItemH
		if input.IsInBounds(rg.X, itemY, 220, rg.ItemH) {
			rg.hovered = i
			if input.IsLeftJustPressed() {
				rg.Selected = i
				return true
			}
		}
	}
	return false
}

// Draw renders the radio group.
func (rg *RadioGroup) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	for i, opt := range rg.Options {
		itemY := rg.Y + i*rg.ItemH
		isSelected := i == rg.Selected
		isHovered := i == rg.hovered

		cx := float32(rg.X + 10)
		cy := float32(itemY + rg.ItemH/2)

		circleColor := radioInactive
		if isSelected {
			circleColor = radioActive
		} else if isHovered {
			circleColor = accentColor
		}
		vector.DrawFilledCircle(screen, cx, cy, 8, circleColor, false)
		if isSelected {
			vector.DrawFilledCircle(screen, cx, cy, 4, inputTextColor, false)
		}

		op := &text.DrawOptions{}
		_, h := MeasureText(opt.Label, face)
		op.GeoM.Translate(float64(rg.X+30), float64(itemY+rg.ItemH/2)-h/2)
		textColor := textSecondary
		if isSelected {
			textColor = textPrimary
		}
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, opt.Label, face, op)
	}
}

// ButtonGroup is a horizontal group of toggle buttons.
type ButtonGroup struct {
	X, Y     int
	Options  []string
	Selected int
	ButtonW  int
	ButtonH  int
	hovered  int
}

// NewButtonGroup creates a new button group.
func NewButtonGroup(x, y int, options []string, selected, buttonW, buttonH int) *ButtonGroup {
	return &ButtonGroup{
		X:        x,
		Y:        y,
		Options:  options,
		Selected: selected,
		ButtonW:  buttonW,
		ButtonH:  buttonH,
		hovered:  -1,
	}
}

// Update handles button group input.
func (bg *ButtonGroup) Update(input *InputHandler) bool {
	bg.hovered = -1
	for i := range bg.Options {
		btnX := bg.X + i*bg.ButtonW
		if input.IsInBounds(btnX, bg.Y, bg.ButtonW, bg.ButtonH) {
			bg.hovered = i
			if input.IsLeftJustPressed() {
				bg.Selected = i
				return true
			}
		}
	}
	return false
}

// Draw renders the button group.
func (bg *ButtonGroup) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	for i, label := range bg.Options {
		btnX := bg.X + i*bg.ButtonW
		isSelected := i == bg.Selected
		isHovered := i == bg.hovered

		bgColor := tabInactiveBg
		if isSelected {
			bgColor = tabActiveBg
		} else if isHovered {
			bgColor = tabHoverBg
		}
		vector.DrawFilledRect(screen, float32(btnX), float32(bg.Y), float32(bg.ButtonW), float32(bg.ButtonH), bgColor, false)
		vector.StrokeRect(screen, float32(btnX), float32(bg.Y), float32(bg.ButtonW), float32(bg.ButtonH), 1, buttonBorder, false)

		w, h := MeasureText(label, face)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(btnX)+float64(bg.ButtonW)/2-w/2, float64(bg.Y)+float64(bg.ButtonH)/2-h/2)
		textColor := textSecondary
		if isSelected {
			textColor = textPrimary
		}
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, label, face, op)
	}
}

// ModalButton is a button for modal dialogs.
type ModalButton struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewModalButton creates a new modal button.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// IsHovered returns true if the button is hovered.
func (mb *ModalButton) IsHovered() bool {
	return mb.hovered
}

// Update handles modal button input.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mb.hovered = input.IsInBounds(mb.X, mb.Y, mb.W, mb.H)
	mb.pressed = mb.hovered && input.IsLeftPressed()

	if input.IsLeftJustPressed() && mb.hovered && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the modal button.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	bgColor, borderC := buttonBg, widgetBorder
	if mb.Primary {
		bgColor, borderC = accentColor, accentPressed
		if mb.pressed {
			bgColor = accentPressed
		} else if mb.hovered {
			bgColor = accentHover
		}
	} else {
		if mb.pressed {
			bgColor = buttonPressedBg
		} else if mb.hovered {
			bgColor, borderC = buttonHoverBg, accentColor
		}
	}

	vector.DrawFilledRect(screen, float32(mb.X), float32(mb.Y), float32(mb.W), float32(mb.H), bgColor, false)
	vector.StrokeRect(screen, float32(mb.X), float32(mb.Y), float32(mb.W), float32(mb.H), 1, borderC, false)

	w, h := MeasureText(mb.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(mb.X)+float64(mb.W)/2-w/2, float64(mb.Y)+float64(mb.H)/2-h/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, mb.Label, face, op)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, dividerColor, false)
}
