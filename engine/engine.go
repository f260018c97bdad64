// Package engine defines the interface front ends use to drive a game.
package engine

import "towerkrieg-local/types"

// GameEngine defines the interface for playing Towerkrieg.
type GameEngine interface {
	// Connect initializes the game.
	Connect() error

	// ID identifies the running game in logs.
	ID() string

	// GetBoardState returns a snapshot of the current board state.
	GetBoardState() *types.BoardState

	// PlayMove slides the formation centred on from to to for the player to
	// move. Returns an error if the move is illegal.
	PlayMove(from, to types.BoardPos) error

	// Resign concedes the game for the player to move.
	Resign() error

	// LegalDestinations lists the squares the formation centred on origin
	// can reach this turn.
	LegalDestinations(origin types.BoardPos) []types.BoardPos

	// OnMove registers a callback for when a move is played.
	// boardState is passed directly to avoid lock contention.
	OnMove(func(move types.Move, boardState *types.BoardState))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Close releases the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	PositionPath string // Diagram file to start from; empty means the standard opening
}

// DefaultConfig returns the standard opening configuration.
func DefaultConfig() GameConfig {
	return GameConfig{}
}

// Outcome describes a finished game for status lines.
func Outcome(status types.Status, resigned bool) string {
	winner := status.Winner()
	if winner == types.Empty {
		return ""
	}
	if resigned {
		return winner.String() + " wins by resignation"
	}
	return winner.String() + " won!"
}
