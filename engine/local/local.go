// Package local provides an in-process hot-seat engine: both players share
// one terminal and the rule engine runs in the same process.
package local

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"towerkrieg-local/diagram"
	"towerkrieg-local/engine"
	"towerkrieg-local/rules"
	"towerkrieg-local/types"
)

// ErrNotConnected is returned when a move is played before Connect.
var ErrNotConnected = errors.New("engine not connected")

var _ engine.GameEngine = (*LocalEngine)(nil)

// LocalEngine implements the GameEngine interface on top of rules.Game.
type LocalEngine struct {
	config engine.GameConfig
	id     string
	game   *rules.Game
	log    *zap.SugaredLogger

	moveCallback func(move types.Move, boardState *types.BoardState)
	endCallback  func(outcome string)

	mu sync.Mutex
}

// NewLocalEngine creates a new engine with the given configuration. A nil
// logger disables logging.
func NewLocalEngine(cfg engine.GameConfig, log *zap.SugaredLogger) *LocalEngine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	id := uuid.NewString()
	return &LocalEngine{
		config: cfg,
		id:     id,
		log:    log.With("game", id),
	}
}

// Connect sets up the board, either the standard opening or the diagram
// named by the configuration.
func (e *LocalEngine) Connect() error {
	opts := []rules.Option{rules.WithLogger(e.log)}
	if e.config.PositionPath != "" {
		b, toMove, err := diagram.ReadFile(e.config.PositionPath)
		if err != nil {
			return fmt.Errorf("failed to load position: %w", err)
		}
		opts = append(opts, rules.WithPosition(b, toMove))
	}

	game := rules.NewGame(opts...)

	e.mu.Lock()
	e.game = game
	st := game.State()
	e.mu.Unlock()

	e.log.Infow("game started", "position", e.config.PositionPath, "to_move", st.PlayerToMove)
	e.log.Debugf("opening board:\n%s", diagram.Pretty(&st.Board))
	return nil
}

// ID returns the game id used to tag log lines.
func (e *LocalEngine) ID() string {
	return e.id
}

// GetBoardState returns a snapshot of the current board state.
func (e *LocalEngine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return nil
	}
	st := e.game.State()
	return &st
}

// PlayMove slides the formation centred on from to to.
func (e *LocalEngine) PlayMove(from, to types.BoardPos) error {
	e.mu.Lock()

	if e.game == nil {
		e.mu.Unlock()
		return ErrNotConnected
	}

	player := e.game.Turn()
	if err := e.game.SubmitMoveAt(from, to); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("illegal move %s: %w", rules.FormatMove(from, to), err)
	}

	st := e.game.State()
	e.mu.Unlock()

	e.log.Debugf("after %s %s:\n%s", player, rules.FormatMove(from, to), diagram.Pretty(&st.Board))

	// Notify callbacks (outside lock to prevent deadlock)
	if e.moveCallback != nil {
		e.moveCallback(types.Move{Player: player, From: from, To: to}, &st)
	}
	if st.Finished() {
		e.finish(st.Status, false)
	}
	return nil
}

// Resign concedes the game for the player to move.
func (e *LocalEngine) Resign() error {
	e.mu.Lock()
	if e.game == nil {
		e.mu.Unlock()
		return ErrNotConnected
	}
	if err := e.game.Resign(); err != nil {
		e.mu.Unlock()
		return err
	}
	status := e.game.Status()
	e.mu.Unlock()

	e.finish(status, true)
	return nil
}

// LegalDestinations lists the squares reachable from origin this turn.
func (e *LocalEngine) LegalDestinations(origin types.BoardPos) []types.BoardPos {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return nil
	}
	return e.game.LegalDestinations(origin)
}

// finish logs the outcome and notifies the end callback.
func (e *LocalEngine) finish(status types.Status, resigned bool) {
	outcome := engine.Outcome(status, resigned)
	e.log.Infow("game over", "status", status, "outcome", outcome)
	if e.endCallback != nil {
		e.endCallback(outcome)
	}
}

// OnMove registers a callback for when a move is played.
func (e *LocalEngine) OnMove(callback func(move types.Move, boardState *types.BoardState)) {
	e.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (e *LocalEngine) OnGameEnd(callback func(outcome string)) {
	e.endCallback = callback
}

// Close ends the session. Further moves fail with ErrNotConnected.
func (e *LocalEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game != nil {
		e.log.Infow("game closed", "status", e.game.Status())
	}
	e.game = nil
}
