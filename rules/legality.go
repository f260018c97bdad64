package rules

import "towerkrieg-local/types"

// Step checks a single one-square slide of a formation.
type Step struct {
	Occupied  []types.BoardPos
	Footprint []types.BoardPos
	Direction types.BoardPos
}

// NewStep prepares the checks for sliding f one square along dir.
func NewStep(f Formation, dir types.BoardPos) Step {
	return Step{
		Occupied:  f.Occupied,
		Footprint: f.Footprint(),
		Direction: dir,
	}
}

// ValidateCardinal reports whether the formation's shape allows moving in
// the step direction: the square next to the centre must hold a stone.
func (s Step) ValidateCardinal(start types.BoardPos) bool {
	return contains(s.Occupied, start.Add(s.Direction))
}

// ValidateCapture reports whether the slide would land on a stone of either
// colour along the formation's leading edge.
func (s Step) ValidateCapture(b *types.Board) bool {
	for _, sq := range s.Footprint {
		next := sq.Add(s.Direction)
		if contains(s.Footprint, next) {
			continue
		}
		if b.At(next) != types.Empty {
			return true
		}
	}
	return false
}

// Apply slides the formation one square on b. Squares of the footprint that
// were empty are cleared at their new position, which removes any stone
// covered by the slide.
func (s Step) Apply(b *types.Board, player types.Cell) {
	for _, sq := range s.Occupied {
		b[sq.Row][sq.Col] = types.Empty
	}
	for _, sq := range s.Occupied {
		if n := sq.Add(s.Direction); n.OnGrid() {
			b[n.Row][n.Col] = player
		}
	}
	for _, sq := range s.Footprint {
		if contains(s.Occupied, sq) {
			continue
		}
		if n := sq.Add(s.Direction); n.OnGrid() {
			b[n.Row][n.Col] = types.Empty
		}
	}
}
