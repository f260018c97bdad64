package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"towerkrieg-local/engine"
)

// menuColors is the palette of the menu screens.
var menuColors = struct {
	ButtonBG   tcell.Color
	ButtonText tcell.Color
	Hint       tcell.Color
}{
	ButtonBG:   tcell.PaletteColor(60),
	ButtonText: tcell.PaletteColor(255),
	Hint:       tcell.PaletteColor(245),
}

// GameSetupUI provides a form for starting a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	positionPath string
}

// NewGameSetup creates a new game setup form. positionPath pre-fills the
// diagram field.
func NewGameSetup(positionPath string, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:      onStart,
		onCancel:     onCancel,
		onColors:     onColors,
		positionPath: positionPath,
	}

	form := tview.NewForm()

	form.AddInputField("Position file", positionPath, 32, nil, func(text string) {
		setup.positionPath = strings.TrimSpace(text)
	})

	form.AddButton("Start Game", func() {
		cfg := engine.DefaultConfig()
		cfg.PositionPath = setup.positionPath
		onStart(cfg)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(menuColors.ButtonBG)
	form.SetButtonTextColor(menuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Leave the position empty for the standard opening  |  Tab: navigate  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(menuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
