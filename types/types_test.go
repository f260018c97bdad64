package types

import (
	"encoding/json"
	"testing"
)

func TestBoardAt(t *testing.T) {
	var b Board
	b[3][4] = White
	if b.At(BoardPos{Row: 3, Col: 4}) != White {
		t.Error("At returned the wrong cell")
	}
	for _, p := range []BoardPos{{Row: -1, Col: 0}, {Row: 0, Col: BoardSize}, {Row: BoardSize, Col: 2}} {
		if b.At(p) != Empty {
			t.Errorf("At(%v) off the grid should be Empty", p)
		}
	}
	if b.Count(White) != 1 || b.Count(Empty) != BoardSize*BoardSize-1 {
		t.Error("Count mismatch")
	}
}

func TestBoardPosUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want BoardPos
	}{
		{`[2, 11]`, BoardPos{Row: 2, Col: 11}},
		{`{"row": 17, "col": 3}`, BoardPos{Row: 17, Col: 3}},
	}
	for _, tt := range tests {
		var p BoardPos
		if err := json.Unmarshal([]byte(tt.in), &p); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.in, err)
		}
		if p != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, p, tt.want)
		}
	}

	var p BoardPos
	if err := json.Unmarshal([]byte(`"c3"`), &p); err == nil {
		t.Error("expected an error for a string")
	}
}

func TestStatus(t *testing.T) {
	if InProgress.Finished() || InProgress.Winner() != Empty {
		t.Error("incomplete game reported as finished")
	}
	if VictoryFor(Black) != BlackVictory || BlackVictory.Winner() != Black {
		t.Error("black victory mismatch")
	}
	if VictoryFor(White) != WhiteVictory || !WhiteVictory.Finished() {
		t.Error("white victory mismatch")
	}
	if Black.Opponent() != White || White.Opponent() != Black || Empty.Opponent() != Empty {
		t.Error("Opponent mismatch")
	}
}
