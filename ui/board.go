// Package ui specifies custom controls for tview to play Towerkrieg in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"towerkrieg-local/config"
	"towerkrieg-local/engine"
	"towerkrieg-local/rules"
	"towerkrieg-local/types"
)

// Style slots for BoardUI.styles.
const (
	styleBoard = iota
	styleBoardAlt
	styleMargin
	styleBlack
	styleWhite
	styleCursor
	styleSelected
	styleDestination
	styleLastPlayed
)

// BoardUI draws the board and turns cursor selections into moves: the first
// Enter picks a formation centre, the second one picks its destination.
type BoardUI struct {
	Box          *tview.Box
	BoardState   *types.BoardState
	hint         *tview.TextView
	cfg          *config.Config
	app          *tview.Application
	eng          engine.GameEngine
	log          *zap.SugaredLogger
	styles       []tcell.Color
	infoPanel    *InfoPanel
	focusMode    bool
	finished     bool
	outcome      string
	message      string
	cursor       types.BoardPos
	hasCursor    bool
	origin       *types.BoardPos
	destinations []types.BoardPos
}

// NewBoard creates the board widget. log may be nil.
func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView, log *zap.SugaredLogger) *BoardUI {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	board := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		log:        log,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if board.BoardState == nil {
			return x, y, 1, 1
		}
		// 2 characters per cell for square appearance
		boardW, boardH := board.BoardState.Width()*2, board.BoardState.Height()
		for row := 0; row < board.BoardState.Height(); row++ {
			for col := 0; col < board.BoardState.Width(); col++ {
				p := types.BoardPos{Row: row, Col: col}
				style, r := board.cellAppearance(p)
				drawStoneCell(screen, style, r, col, row, x+4, y)
			}
		}
		drawCoordinates(screen, x, y, board)
		return x, y, boardW + 4, boardH + 2
	})
	return board
}

// cellAppearance picks the style and rune for one square.
func (g *BoardUI) cellAppearance(p types.BoardPos) (tcell.Style, rune) {
	stone := g.BoardState.Board.At(p)
	theme := g.cfg.Theme

	bg := styleBoard
	if (p.Row+p.Col)%2 == 1 {
		bg = styleBoardAlt
	}
	if isMargin(p) {
		bg = styleMargin
	}

	r := theme.Symbols.BoardSquare
	fg := g.styles[styleMargin]
	switch stone {
	case types.Black:
		r, fg = theme.Symbols.BlackStone, g.styles[styleBlack]
	case types.White:
		r, fg = theme.Symbols.WhiteStone, g.styles[styleWhite]
	}

	switch {
	case g.hasCursor && p == g.cursor && theme.DrawCursorBackground:
		bg = styleCursor
	case g.isDestination(p):
		bg = styleDestination
		if stone == types.Empty {
			r = theme.Symbols.Destination
		}
	case g.inFootprint(p):
		bg = styleSelected
	case theme.DrawLastPlayedBackground && g.BoardState.LastMove != nil && p == g.BoardState.LastMove.To:
		bg = styleLastPlayed
	}
	return tcell.StyleDefault.Background(g.styles[bg]).Foreground(fg), r
}

func isMargin(p types.BoardPos) bool {
	last := types.BoardSize - 1
	return p.Row == 0 || p.Col == 0 || p.Row == last || p.Col == last
}

func (g *BoardUI) isDestination(p types.BoardPos) bool {
	for _, d := range g.destinations {
		if d == p {
			return true
		}
	}
	return false
}

func (g *BoardUI) inFootprint(p types.BoardPos) bool {
	if g.origin == nil {
		return false
	}
	dr, dc := p.Row-g.origin.Row, p.Col-g.origin.Col
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if !g.hasCursor {
		return nil
	}
	p := g.cursor
	return &p
}

// Origin returns the selected formation centre, or nil.
func (g *BoardUI) Origin() *types.BoardPos {
	return g.origin
}

// Destinations returns the highlighted destinations of the selected formation.
func (g *BoardUI) Destinations() []types.BoardPos {
	return g.destinations
}

func (g *BoardUI) MoveSelection(dRow, dCol int) {
	if g.finished {
		g.ResetSelection()
		return
	}
	if !g.hasCursor {
		g.hasCursor = true
		g.cursor = types.BoardPos{Row: types.BoardSize / 2, Col: types.BoardSize / 2}
		if g.BoardState.LastMove != nil {
			g.cursor = g.BoardState.LastMove.To
		}
		return
	}
	next := g.cursor.Add(types.BoardPos{Row: dRow, Col: dCol})
	if !next.OnGrid() {
		return
	}
	g.cursor = next
}

// ResetSelection drops the formation selection, then the cursor.
func (g *BoardUI) ResetSelection() {
	if g.origin != nil {
		g.clearOrigin()
		g.refreshHint()
		return
	}
	g.hasCursor = false
}

func (g *BoardUI) clearOrigin() {
	g.origin = nil
	g.destinations = nil
}

// Select acts on the square under the cursor: it picks a formation centre,
// moves the picked formation there, or switches to another formation.
func (g *BoardUI) Select() {
	if g.finished || g.eng == nil || !g.hasCursor {
		return
	}
	p := g.cursor
	g.message = ""

	switch {
	case g.origin == nil:
		g.pickOrigin(p)
	case *g.origin == p:
		g.clearOrigin()
	case g.isDestination(p):
		from := *g.origin
		g.clearOrigin()
		if err := g.eng.PlayMove(from, p); err != nil {
			g.message = describeError(err)
			g.log.Debugw("move refused", "move", rules.FormatMove(from, p), zap.Error(err))
		}
	default:
		g.pickOrigin(p)
	}
	g.refreshHint()
}

func (g *BoardUI) pickOrigin(p types.BoardPos) {
	dests := g.eng.LegalDestinations(p)
	if len(dests) == 0 {
		g.clearOrigin()
		g.message = fmt.Sprintf("%s cannot move", rules.FormatCoord(p))
		return
	}
	origin := p
	g.origin = &origin
	g.destinations = dests
}

// describeError turns a rule error into a short status message.
func describeError(err error) string {
	switch {
	case errors.Is(err, rules.ErrRingBroken):
		return "That move would break your own ring"
	case errors.Is(err, rules.ErrGameOver):
		return "The game is over"
	}
	return "Illegal move"
}

// ConnectEngine connects the board to a game engine.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.outcome = ""
	g.message = ""
	g.clearOrigin()
	g.eng = e

	if err := e.Connect(); err != nil {
		return err
	}

	e.OnMove(func(move types.Move, boardState *types.BoardState) {
		g.BoardState = boardState
		g.refreshHint()
		g.redraw()
	})

	e.OnGameEnd(func(outcome string) {
		g.finished = true
		g.outcome = outcome
		g.BoardState = e.GetBoardState()
		g.clearOrigin()
		g.hasCursor = false
		g.refreshHint()
		g.redraw()
	})

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// redraw spawns a goroutine to avoid deadlock when called from the main thread.
func (g *BoardUI) redraw() {
	if g.app == nil {
		return
	}
	go func() {
		g.app.QueueUpdateDraw(func() {})
	}()
}

// Resign concedes the game for the player to move.
func (g *BoardUI) Resign() {
	if g.finished || g.eng == nil {
		return
	}
	if err := g.eng.Resign(); err != nil {
		g.log.Errorw("resign failed", zap.Error(err))
	}
}

// Close disconnects the engine.
func (g *BoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),         // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),      // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.MarginColor),        // styleMargin
		tcell.PaletteColor(c.Theme.Colors.BlackColor),         // styleBlack
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),         // styleWhite
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),      // styleCursor
		tcell.PaletteColor(c.Theme.Colors.SelectedColorBG),    // styleSelected
		tcell.PaletteColor(c.Theme.Colors.DestinationColorBG), // styleDestination
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG),  // styleLastPlayed
	}
	g.cfg = c
}

// SetGameID shows the game id on the info panel.
func (g *BoardUI) SetGameID(id string) {
	if g.infoPanel != nil {
		g.infoPanel.SetGameID(id)
	}
}

// StatusLine renders the last move and whose turn it is, e.g.
// "Black : c3->c4    White's turn".
func StatusLine(st *types.BoardState, outcome string) string {
	if st == nil {
		return ""
	}
	var last string
	if st.LastMove != nil {
		last = fmt.Sprintf("%s : %s->%s    ", st.LastMove.Player,
			rules.FormatCoord(st.LastMove.From), rules.FormatCoord(st.LastMove.To))
	}
	if st.Finished() {
		if outcome == "" {
			outcome = engine.Outcome(st.Status, false)
		}
		return last + outcome
	}
	return fmt.Sprintf("%s%s's turn", last, st.PlayerToMove)
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}
	if g.hint == nil {
		return
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	status := StatusLine(g.BoardState, g.outcome)
	var controls string
	switch {
	case g.finished:
		controls = "n new game   q menu"
	case g.origin != nil:
		controls = fmt.Sprintf("%s selected   ⏎ move   esc cancel", rules.FormatCoord(*g.origin))
	default:
		controls = "hjkl/↑↓←→ move   ⏎ select   r resign   n new   f focus   q quit"
	}
	if g.message != "" {
		status = fmt.Sprintf("%s   [red]%s[-]", status, g.message)
	}
	g.hint.SetText(fmt.Sprintf("  %s\n  %s", status, controls))
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.finished
}

// drawStoneCell draws a cell (2 characters wide)
func drawStoneCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	hCoord := int('a')
	w, h := ui.BoardState.Width(), ui.BoardState.Height()
	if ui.cfg.Theme.FullWidthLetters {
		hCoord = int('ａ')
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursor])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ui.hasCursor && ix == ui.cursor.Col {
			_style = highlight
		}
		s.SetContent(x+4+(ix*2), y+h+1, rune(hCoord+ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+h+1, ' ', nil, _style)
	}

	for row := 0; row < h; row++ {
		_style := style
		if ui.hasCursor && row == ui.cursor.Row {
			_style = highlight
		}
		// Row 0 is the top edge, numbered 20
		displayNum := h - row
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+1, y+row, tensRune, nil, _style)
		s.SetContent(x+2, y+row, rune('0'+(displayNum%10)), nil, _style)
	}
}
