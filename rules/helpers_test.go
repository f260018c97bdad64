package rules

import (
	"testing"

	"towerkrieg-local/types"
)

func pos(t *testing.T, ref string) types.BoardPos {
	t.Helper()
	p, err := ParseCoord(ref)
	if err != nil {
		t.Fatalf("ParseCoord(%q): %v", ref, err)
	}
	return p
}

// ringAt surrounds center with eight stones of c.
func ringAt(b *types.Board, center types.BoardPos, c types.Cell) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			b[center.Row+dr][center.Col+dc] = c
		}
	}
}

func put(b *types.Board, c types.Cell, squares ...types.BoardPos) {
	for _, p := range squares {
		b[p.Row][p.Col] = c
	}
}

// ringedBoard returns an empty board holding one ring per side, away from the
// middle of the board.
func ringedBoard() types.Board {
	var b types.Board
	ringAt(&b, types.BoardPos{Row: 15, Col: 3}, types.Black)
	ringAt(&b, types.BoardPos{Row: 3, Col: 16}, types.White)
	return b
}

func marginEmpty(b *types.Board) bool {
	last := types.BoardSize - 1
	for i := 0; i < types.BoardSize; i++ {
		if b[0][i] != types.Empty || b[last][i] != types.Empty ||
			b[i][0] != types.Empty || b[i][last] != types.Empty {
			return false
		}
	}
	return true
}
