package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"towerkrieg-local/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	log       *zap.SugaredLogger
	onDone    func()

	selectedBoardColor  int
	selectedMarginColor int
	editingMargin       bool // true = editing margin color, false = editing board color
}

type paletteEntry struct {
	code int
	name string
}

// Board colors to choose from (warm wood-like tones)
var boardColors = []paletteEntry{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{228, "Light Gold"},
	{222, "Gold"},
	{214, "Orange Gold"},
	{180, "Tan"},
	{179, "Light Brown"},
	{172, "Brown"},
	{252, "Light Gray"},
	{248, "Medium Gray"},
	{188, "Light Beige"},
	{223, "Peach"},
}

// Margin colors (darker tones so the kill zone stands out)
var marginColors = []paletteEntry{
	{138, "Rosy Brown"},
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{88, "Dark Red"},
	{52, "Dark Maroon"},
	{22, "Dark Green"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{240, "Gray"},
}

// NewColorConfig creates a new color configuration screen. log may be nil.
func NewColorConfig(cfg *config.Config, log *zap.SugaredLogger, onDone func()) *ColorConfigUI {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	cc := &ColorConfigUI{
		cfg:                 cfg,
		log:                 log,
		onDone:              onDone,
		selectedBoardColor:  cfg.Theme.Colors.BoardColor,
		selectedMarginColor: cfg.Theme.Colors.MarginColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	// Preview on selection change
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		entries := cc.entries()
		if index < 0 || index >= len(entries) {
			return
		}
		if cc.editingMargin {
			cc.selectedMarginColor = entries[index].code
		} else {
			cc.selectedBoardColor = entries[index].code
		}
	})

	// Apply on confirm
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingMargin {
			cc.cfg.Theme.Colors.MarginColor = cc.selectedMarginColor
			cc.save()
			cc.editingMargin = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
		cc.save()
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) save() {
	if err := cc.cfg.Save(); err != nil {
		cc.log.Errorw("failed to save config", zap.Error(err))
	}
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingMargin {
		return marginColors
	}
	return boardColors
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedBoardColor
	cc.colorList.SetTitle(" Select Board Color (Tab: switch to margin) ")
	if cc.editingMargin {
		current = cc.selectedMarginColor
		cc.colorList.SetTitle(" Select Margin Color (Tab: switch to board) ")
	}

	for i, c := range cc.entries() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.entries() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 7

	startX := x + 2
	startY := y + 1
	if width < 20 || height < 10 {
		return x, y, width, height
	}

	boardStyle := tcell.StyleDefault.Background(tcell.PaletteColor(cc.selectedBoardColor))
	marginStyle := tcell.StyleDefault.Background(tcell.PaletteColor(cc.selectedMarginColor))
	blackFG := tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)
	whiteFG := tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)

	// A small ring for each side
	stones := map[[2]int]bool{
		{1, 1}: true, {1, 2}: true, {1, 3}: true,
		{2, 1}: true, {2, 3}: true,
		{3, 1}: true, {3, 2}: true, {3, 3}: true,
		{3, 5}: false, {4, 5}: false, {5, 5}: false, {5, 4}: false,
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			style := boardStyle
			if row == 0 || col == 0 || row == size-1 || col == size-1 {
				style = marginStyle
			}
			char := cc.cfg.Theme.Symbols.BoardSquare
			if black, ok := stones[[2]int{row, col}]; ok {
				if black {
					char, style = cc.cfg.Theme.Symbols.BlackStone, style.Foreground(blackFG)
				} else {
					char, style = cc.cfg.Theme.Symbols.WhiteStone, style.Foreground(whiteFG)
				}
			}
			screen.SetContent(startX+col*2, startY+row, char, nil, style)
			screen.SetContent(startX+col*2+1, startY+row, ' ', nil, style)
		}
	}

	info := fmt.Sprintf("Board: %d  Margin: %d", cc.selectedBoardColor, cc.selectedMarginColor)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and margin color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingMargin = !cc.editingMargin
	cc.populateColorList()
}
