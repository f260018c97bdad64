package rules

import (
	"fmt"

	"towerkrieg-local/types"
)

// Formation is the 3x3 neighbourhood around a selected centre, split into the
// squares holding the mover's stones and the empty squares.
type Formation struct {
	Center   types.BoardPos
	Occupied []types.BoardPos
	Empty    []types.BoardPos
}

// Footprint returns all nine squares of the formation.
func (f Formation) Footprint() []types.BoardPos {
	out := make([]types.BoardPos, 0, len(f.Occupied)+len(f.Empty))
	out = append(out, f.Occupied...)
	return append(out, f.Empty...)
}

// HasCenterStone reports whether the centre square holds a stone.
func (f Formation) HasCenterStone() bool {
	return contains(f.Occupied, f.Center)
}

// ExtractFormation classifies the neighbourhood of center for player. It fails
// with ErrInvalidSelection if any square holds a stone of the other colour or
// lies off the grid, or if the neighbourhood holds no stone at all.
func ExtractFormation(b *types.Board, center types.BoardPos, player types.Cell) (Formation, error) {
	f := Formation{Center: center}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			sq := types.BoardPos{Row: center.Row + dr, Col: center.Col + dc}
			if !sq.OnGrid() {
				return Formation{}, fmt.Errorf("%w: %s is off the board", ErrInvalidSelection, FormatCoord(center))
			}
			switch b[sq.Row][sq.Col] {
			case types.Empty:
				f.Empty = append(f.Empty, sq)
			case player:
				f.Occupied = append(f.Occupied, sq)
			default:
				return Formation{}, fmt.Errorf("%w: %s holds a stone not owned by %s", ErrInvalidSelection, FormatCoord(sq), player)
			}
		}
	}
	if len(f.Occupied) == 0 {
		return Formation{}, fmt.Errorf("%w: no %s stones around %s", ErrInvalidSelection, player, FormatCoord(center))
	}
	return f, nil
}

func contains(set []types.BoardPos, p types.BoardPos) bool {
	for _, q := range set {
		if q == p {
			return true
		}
	}
	return false
}
