package rules

import (
	"errors"
	"sort"
	"testing"

	"towerkrieg-local/types"
)

func refs(ps []types.BoardPos) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, FormatCoord(p))
	}
	sort.Strings(out)
	return out
}

func TestLegalDestinationsOpening(t *testing.T) {
	g := NewGame()
	got := refs(g.LegalDestinations(pos(t, "c3")))
	want := []string{"b3", "c2", "c4", "c5", "c6", "d3"}
	if len(got) != len(want) {
		t.Fatalf("LegalDestinations(c3) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LegalDestinations(c3) = %v, want %v", got, want)
		}
	}
}

func TestLegalDestinationsAreSubmittable(t *testing.T) {
	for _, origin := range []string{"c3", "e3", "g3", "r3"} {
		dests := NewGame().LegalDestinations(pos(t, origin))
		if len(dests) == 0 {
			t.Errorf("%s: no destinations", origin)
		}
		for _, d := range dests {
			g := NewGame()
			if err := g.SubmitMoveAt(pos(t, origin), d); err != nil {
				t.Errorf("%s-%s listed but refused: %v", origin, FormatCoord(d), err)
			}
		}
	}
}

func TestLegalDestinationsExcludes(t *testing.T) {
	g := NewGame()
	tests := []struct {
		name   string
		origin types.BoardPos
	}{
		{"empty neighbourhood", pos(t, "j10")},
		{"opponent formation", pos(t, "c18")},
		{"margin origin", pos(t, "a3")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.LegalDestinations(tt.origin); len(got) != 0 {
				t.Errorf("got %v, want none", refs(got))
			}
		})
	}
}

func TestLegalDestinationsCenterless(t *testing.T) {
	g := NewGame()
	origin := pos(t, "l3")
	dests := g.LegalDestinations(origin)
	if len(dests) == 0 {
		t.Fatal("ring should be able to move")
	}
	for _, d := range dests {
		if Distance(origin, d) > centerlessRange {
			t.Errorf("%s is %d squares away", FormatCoord(d), Distance(origin, d))
		}
		if d.Row < minCoord || d.Row > maxCoord || d.Col < minCoord || d.Col > maxCoord {
			t.Errorf("%s lies in the margin", FormatCoord(d))
		}
	}
}

func TestLegalDestinationsSkipRingCheck(t *testing.T) {
	g := NewGame()
	found := false
	for _, d := range g.LegalDestinations(pos(t, "j3")) {
		if d == pos(t, "i3") {
			found = true
		}
	}
	if !found {
		t.Fatal("j3-i3 should be listed")
	}
	if err := g.SubmitMove("j3", "i3"); !errors.Is(err, ErrRingBroken) {
		t.Errorf("j3-i3: got %v, want ErrRingBroken", err)
	}
}

func TestLegalDestinationsGameOver(t *testing.T) {
	g := NewGame()
	if err := g.Resign(); err != nil {
		t.Fatal(err)
	}
	if got := g.LegalDestinations(pos(t, "c3")); got != nil {
		t.Errorf("got %v after the game ended", refs(got))
	}
}
