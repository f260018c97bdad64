// Package rules implements the Towerkrieg rule engine: formation moves on a
// 20x20 board, captures, rings and the win condition.
package rules

import (
	"fmt"

	"go.uber.org/zap"

	"towerkrieg-local/types"
)

// Playable centres and destinations lie in [minCoord, maxCoord]; rows and
// columns 0 and 19 form the margin.
const (
	minCoord = 1
	maxCoord = types.BoardSize - 2

	// centerlessRange caps the distance of a formation without a centre stone.
	centerlessRange = 3
)

// Game owns the authoritative board and turn state. It is not safe for
// concurrent use; see engine/local for a locked wrapper.
type Game struct {
	board      types.Board
	turn       types.Cell
	status     types.Status
	moveNumber int
	lastMove   *types.Move
	log        *zap.SugaredLogger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move diagnostics.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithPosition starts the game from b with turn to move instead of the
// standard opening.
func WithPosition(b types.Board, turn types.Cell) Option {
	return func(g *Game) {
		g.board = b
		if turn == types.Black || turn == types.White {
			g.turn = turn
		}
	}
}

// NewGame returns a game in the standard opening with Black to move.
func NewGame(opts ...Option) *Game {
	g := &Game{
		board:  StandardBoard(),
		turn:   types.Black,
		status: types.InProgress,
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Turn returns the player to move.
func (g *Game) Turn() types.Cell { return g.turn }

// Status returns the game status.
func (g *Game) Status() types.Status { return g.status }

// Board returns a copy of the board.
func (g *Game) Board() types.Board { return g.board }

// State returns a snapshot suitable for rendering.
func (g *Game) State() types.BoardState {
	st := types.BoardState{
		MoveNumber:   g.moveNumber,
		PlayerToMove: g.turn,
		Status:       g.status,
		Board:        g.board,
	}
	if g.lastMove != nil {
		mv := *g.lastMove
		st.LastMove = &mv
	}
	return st
}

// Resign concedes the game for the player to move.
func (g *Game) Resign() error {
	if g.status.Finished() {
		return ErrGameOver
	}
	g.status = types.VictoryFor(g.turn.Opponent())
	g.log.Infow("resigned", "player", g.turn, "status", g.status)
	return nil
}

// SubmitMove plays a move given in notation, e.g. SubmitMove("c3", "c4").
func (g *Game) SubmitMove(startRef, endRef string) error {
	if g.status.Finished() {
		return ErrGameOver
	}
	start, err := ParseCoord(startRef)
	if err != nil {
		return err
	}
	end, err := ParseCoord(endRef)
	if err != nil {
		return err
	}
	return g.SubmitMoveAt(start, end)
}

// SubmitMoveAt plays a move given in internal coordinates. On error the
// board, turn and status are unchanged.
func (g *Game) SubmitMoveAt(start, end types.BoardPos) error {
	res, err := g.check(start, end)
	if err != nil {
		g.log.Debugw("move rejected", "player", g.turn, "move", FormatMove(start, end), "error", err)
		return err
	}

	g.commit(start, end)
	if res.Outcome != Continue {
		g.status = res.Outcome.Status()
	}
	g.lastMove = &types.Move{Player: g.turn, From: start, To: end}
	g.moveNumber++
	g.log.Debugw("move played",
		"player", g.turn,
		"move", FormatMove(start, end),
		"captured", res.Captured,
		"status", g.status,
	)
	g.turn = g.turn.Opponent()
	return nil
}

// check runs every precondition and the ring-checked simulation.
func (g *Game) check(start, end types.BoardPos) (SimResult, error) {
	if g.status.Finished() {
		return SimResult{}, ErrGameOver
	}
	for _, p := range []types.BoardPos{start, end} {
		if !playable(p) {
			return SimResult{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, p.Row, p.Col)
		}
	}
	if _, err := DirectionBetween(start, end); err != nil {
		return SimResult{}, err
	}
	if g.board.At(start) == types.Empty && Distance(start, end) > centerlessRange {
		return SimResult{}, ErrTooFar
	}
	return Simulate(g.board, g.turn, start, end, true)
}

// commit replays a validated move on the authoritative board and wipes the
// margin.
func (g *Game) commit(start, end types.BoardPos) {
	dir, _ := DirectionBetween(start, end)
	for pos := start; pos != end; pos = pos.Add(dir) {
		f, _ := ExtractFormation(&g.board, pos, g.turn)
		NewStep(f, dir).Apply(&g.board, g.turn)
	}
	clearMargin(&g.board)
}

func clearMargin(b *types.Board) {
	last := types.BoardSize - 1
	for i := 0; i < types.BoardSize; i++ {
		b[0][i] = types.Empty
		b[last][i] = types.Empty
		b[i][0] = types.Empty
		b[i][last] = types.Empty
	}
}

func playable(p types.BoardPos) bool {
	return p.Row >= minCoord && p.Row <= maxCoord && p.Col >= minCoord && p.Col <= maxCoord
}
