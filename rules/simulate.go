package rules

import (
	"fmt"

	"towerkrieg-local/types"
)

// DirectionBetween returns the unit step leading from start to end. The
// displacement must be non-zero and lie on one of the eight compass lines.
func DirectionBetween(start, end types.BoardPos) (types.BoardPos, error) {
	dr, dc := end.Row-start.Row, end.Col-start.Col
	if dr == 0 && dc == 0 {
		return types.BoardPos{}, ErrNoDisplacement
	}
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return types.BoardPos{}, fmt.Errorf("%w: %s", ErrNotStraight, FormatMove(start, end))
	}
	return types.BoardPos{Row: sign(dr), Col: sign(dc)}, nil
}

// Distance is the number of single steps between start and end.
func Distance(start, end types.BoardPos) int {
	return max(abs(end.Row-start.Row), abs(end.Col-start.Col))
}

// SimResult is the board after a successful simulated move.
type SimResult struct {
	Board types.Board
	// Captured counts stones removed from the board by the final step.
	Captured int
	// Outcome is the last victory verdict seen during the slide, or Continue.
	Outcome Verdict
}

// Simulate slides player's formation from start to end one square at a time
// on a copy of b. b itself is never modified. When checkRings is set the ring
// table is consulted after every step.
func Simulate(b types.Board, player types.Cell, start, end types.BoardPos, checkRings bool) (SimResult, error) {
	dir, err := DirectionBetween(start, end)
	if err != nil {
		return SimResult{}, err
	}

	res := SimResult{Board: b, Outcome: Continue}
	scratch := &res.Board
	pos := start
	for pos != end {
		f, err := ExtractFormation(scratch, pos, player)
		if err != nil {
			return SimResult{}, err
		}

		step := NewStep(f, dir)
		if !step.ValidateCardinal(pos) {
			return SimResult{}, fmt.Errorf("%w: %s towards %s", ErrBadDirection, FormatCoord(pos), FormatCoord(end))
		}

		next := pos.Add(dir)
		if step.ValidateCapture(scratch) && next != end {
			return SimResult{}, fmt.Errorf("%w: stone in the way at %s", ErrBlocked, FormatCoord(next))
		}

		before := stoneCount(scratch)
		step.Apply(scratch, player)
		res.Captured = before - stoneCount(scratch)
		pos = next

		if !checkRings {
			continue
		}
		switch v := ScanRings(scratch).Verdict(player); v {
		case Reject:
			return SimResult{}, ErrRingBroken
		case BlackWins, WhiteWins:
			res.Outcome = v
		}
	}
	return res, nil
}

func stoneCount(b *types.Board) int {
	return b.Count(types.Black) + b.Count(types.White)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
