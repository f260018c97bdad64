package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"towerkrieg-local/rules"
	"towerkrieg-local/types"
)

// InfoPanel displays game information alongside the board.
type InfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	gameID     string
}

// NewInfoPanel creates a new game info panel.
func NewInfoPanel() *InfoPanel {
	panel := &InfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *InfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *InfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetGameID sets the game id for display.
func (p *InfoPanel) SetGameID(id string) {
	p.gameID = id
	p.refresh()
}

func (p *InfoPanel) refresh() {
	p.box.SetText(panelText(p.boardState, p.gameID))
}

// panelText renders the panel contents for st.
func panelText(st *types.BoardState, gameID string) string {
	if st == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("[white::b]Game Info[-:-:-]\n")
	sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	if gameID != "" {
		fmt.Fprintf(&sb, "[white]Game:[-:-:-] %.8s\n", gameID)
	}
	fmt.Fprintf(&sb, "[white]Move:[-:-:-] %d\n", st.MoveNumber)
	if st.Finished() {
		fmt.Fprintf(&sb, "[white]Result:[-:-:-] %s\n", st.Status)
	} else {
		fmt.Fprintf(&sb, "[white]To move:[-:-:-] %s\n", st.PlayerToMove)
	}
	if st.LastMove != nil {
		fmt.Fprintf(&sb, "[white]Last:[-:-:-] %s %s\n", st.LastMove.Player,
			rules.FormatMove(st.LastMove.From, st.LastMove.To))
	}

	rings := rules.ScanRings(&st.Board)
	sb.WriteString("\n[white::b]Stones[-:-:-]\n")
	sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	for _, c := range []types.Cell{types.Black, types.White} {
		ring := "[red]no ring[-]"
		if rings.Has(c) {
			ring = "ring"
		}
		fmt.Fprintf(&sb, "%-6s %3d  %s\n", c, st.Board.Count(c), ring)
	}
	return sb.String()
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewInfoPanel()
	board.infoPanel = infoPanel
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}
	if board.eng != nil {
		infoPanel.SetGameID(board.eng.ID())
	}

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	boardWidth := types.BoardSize*2 + 4 // 2 chars per cell + coordinates
	boardHeight := types.BoardSize + 2  // + coordinates

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
