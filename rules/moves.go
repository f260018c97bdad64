package rules

import "towerkrieg-local/types"

// LegalDestinations lists every square the formation centred on origin can
// reach this turn. Rings are not checked, so a listed destination may still
// be refused by SubmitMoveAt if it breaks the mover's own ring.
func (g *Game) LegalDestinations(origin types.BoardPos) []types.BoardPos {
	if g.status.Finished() || !playable(origin) {
		return nil
	}
	if _, err := ExtractFormation(&g.board, origin, g.turn); err != nil {
		return nil
	}

	centerless := g.board.At(origin) == types.Empty
	var out []types.BoardPos
	for row := minCoord; row <= maxCoord; row++ {
		for col := minCoord; col <= maxCoord; col++ {
			dest := types.BoardPos{Row: row, Col: col}
			if dest == origin {
				continue
			}
			if centerless && Distance(origin, dest) > centerlessRange {
				continue
			}
			if _, err := Simulate(g.board, g.turn, origin, dest, false); err != nil {
				continue
			}
			out = append(out, dest)
		}
	}
	return out
}
