// Package types contains shared data structures for towerkrieg-local.
package types

import "encoding/json"

// BoardSize is the width and height of the grid, margin included.
const BoardSize = 20

// Cell is the content of a single square: 0=empty, 1=black, 2=white.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

// Opponent returns the other player. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// Board is indexed as Board[row][col]. Row 0 is the top edge.
type Board [BoardSize][BoardSize]Cell

// At returns the cell at p, or Empty if p is off the grid.
func (b *Board) At(p BoardPos) Cell {
	if !p.OnGrid() {
		return Empty
	}
	return b[p.Row][p.Col]
}

// Count returns the number of stones owned by c.
func (b *Board) Count(c Cell) int {
	n := 0
	for r := range b {
		for col := range b[r] {
			if b[r][col] == c {
				n++
			}
		}
	}
	return n
}

// Rows exports the board as nested slices for renderers and JSON.
func (b *Board) Rows() [][]int {
	out := make([][]int, BoardSize)
	for r := range b {
		out[r] = make([]int, BoardSize)
		for c := range b[r] {
			out[r][c] = int(b[r][c])
		}
	}
	return out
}

// BoardPos represents a position on the board.
type BoardPos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add translates p by the vector d.
func (p BoardPos) Add(d BoardPos) BoardPos {
	return BoardPos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// OnGrid reports whether p lies inside the 20x20 grid.
func (p BoardPos) OnGrid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// UnmarshalJSON allows BoardPos to be unmarshaled from a JSON array [row, col]
// as well as from an object.
func (p *BoardPos) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err == nil && len(v) == 2 {
		p.Row = int(v[0])
		p.Col = int(v[1])
		return nil
	}
	type plain BoardPos
	var o plain
	if err := json.Unmarshal(data, &o); err != nil {
		return err
	}
	*p = BoardPos(o)
	return nil
}

// Status is the game status exposed to front ends.
type Status string

const (
	InProgress   Status = "incomplete"
	BlackVictory Status = "black_victory"
	WhiteVictory Status = "white_victory"
)

// Finished reports whether s is a victory status.
func (s Status) Finished() bool {
	return s == BlackVictory || s == WhiteVictory
}

// Winner returns the winning player, or Empty while the game is running.
func (s Status) Winner() Cell {
	switch s {
	case BlackVictory:
		return Black
	case WhiteVictory:
		return White
	}
	return Empty
}

// VictoryFor returns the status that awards the game to c.
func VictoryFor(c Cell) Status {
	if c == Black {
		return BlackVictory
	}
	return WhiteVictory
}

// Move is a committed formation slide.
type Move struct {
	Player Cell     `json:"player"`
	From   BoardPos `json:"from"`
	To     BoardPos `json:"to"`
}

// BoardState is a read-only snapshot of a game.
type BoardState struct {
	MoveNumber   int    `json:"move_number"`
	PlayerToMove Cell   `json:"player_to_move"`
	Status       Status `json:"status"`
	Board        Board  `json:"board"`
	LastMove     *Move  `json:"last_move,omitempty"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Status.Finished()
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	return len(b.Board[0])
}
