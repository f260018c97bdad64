package rules

import "errors"

// Errors returned by the rule engine. A non-nil error from a move operation
// always means the game was left untouched.
var (
	ErrGameOver         = errors.New("game is over")
	ErrBadCoordinate    = errors.New("invalid coordinate")
	ErrOutOfBounds      = errors.New("coordinate outside the playable area")
	ErrNoDisplacement   = errors.New("start and destination are the same")
	ErrNotStraight      = errors.New("destination is not on a compass line from the start")
	ErrTooFar           = errors.New("formation without a centre stone moves at most 3 squares")
	ErrInvalidSelection = errors.New("invalid formation selection")
	ErrBadDirection     = errors.New("formation cannot move in that direction")
	ErrBlocked          = errors.New("path is blocked before the destination")
	ErrRingBroken       = errors.New("move breaks the mover's own ring")
)
