package rules

import "towerkrieg-local/types"

// Ring centres are only looked for on rows and columns 2..17.
const (
	ringMin = 2
	ringMax = types.BoardSize - 3
)

// RingScan records which players own at least one ring.
type RingScan struct {
	Black bool
	White bool
}

// Has reports whether player owns a ring.
func (r RingScan) Has(player types.Cell) bool {
	if player == types.Black {
		return r.Black
	}
	return r.White
}

// ScanRings looks for empty squares whose eight neighbours all belong to the
// same player.
func ScanRings(b *types.Board) RingScan {
	var scan RingScan
	for row := ringMin; row <= ringMax; row++ {
		for col := ringMin; col <= ringMax; col++ {
			if b[row][col] != types.Empty {
				continue
			}
			switch ringOwner(b, row, col) {
			case types.Black:
				scan.Black = true
			case types.White:
				scan.White = true
			}
		}
	}
	return scan
}

// ringOwner returns the player surrounding (row, col), or Empty.
func ringOwner(b *types.Board, row, col int) types.Cell {
	owner := b[row-1][col-1]
	if owner == types.Empty {
		return types.Empty
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b[row+dr][col+dc] != owner {
				return types.Empty
			}
		}
	}
	return owner
}

// Verdict is the outcome of a ring scan for the player who just slid.
type Verdict int

const (
	Continue Verdict = iota
	Reject
	BlackWins
	WhiteWins
)

func (v Verdict) String() string {
	switch v {
	case Reject:
		return "reject"
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	}
	return "continue"
}

// Verdict applies the ring table for mover:
//
//	mover's ring  opponent's ring  verdict
//	yes           yes              continue
//	yes           no               mover wins
//	no            yes              reject
//	no            no               Black moving: White wins; White moving: reject
func (r RingScan) Verdict(mover types.Cell) Verdict {
	own, other := r.Has(mover), r.Has(mover.Opponent())
	switch {
	case own && other:
		return Continue
	case own:
		return winsFor(mover)
	case other:
		return Reject
	case mover == types.Black:
		return WhiteWins
	default:
		return Reject
	}
}

func winsFor(player types.Cell) Verdict {
	if player == types.Black {
		return BlackWins
	}
	return WhiteWins
}

// Status converts a victory verdict into a game status.
func (v Verdict) Status() types.Status {
	switch v {
	case BlackWins:
		return types.BlackVictory
	case WhiteWins:
		return types.WhiteVictory
	}
	return types.InProgress
}
