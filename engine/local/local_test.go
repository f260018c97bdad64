package local

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"towerkrieg-local/diagram"
	"towerkrieg-local/engine"
	"towerkrieg-local/rules"
	"towerkrieg-local/types"
)

func connect(t *testing.T, cfg engine.GameConfig) *LocalEngine {
	t.Helper()
	e := NewLocalEngine(cfg, nil)
	if err := e.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func mustMove(t *testing.T, mv string) (types.BoardPos, types.BoardPos) {
	t.Helper()
	from, to, err := rules.ParseMove(mv)
	if err != nil {
		t.Fatal(err)
	}
	return from, to
}

func TestPlayMoveCallback(t *testing.T) {
	e := connect(t, engine.DefaultConfig())

	var got types.Move
	var state *types.BoardState
	e.OnMove(func(move types.Move, bs *types.BoardState) {
		got = move
		state = bs
	})

	from, to := mustMove(t, "c3-c4")
	if err := e.PlayMove(from, to); err != nil {
		t.Fatalf("PlayMove: %v", err)
	}
	if got.Player != types.Black || got.From != from || got.To != to {
		t.Errorf("callback move = %+v", got)
	}
	if state == nil || state.PlayerToMove != types.White || state.MoveNumber != 1 {
		t.Fatalf("callback state = %+v", state)
	}

	// The snapshot handed to the callback must not alias the engine's board.
	state.Board[10][10] = types.Black
	if e.GetBoardState().Board[10][10] != types.Empty {
		t.Error("callback snapshot aliases the engine board")
	}
}

func TestPlayMoveIllegal(t *testing.T) {
	e := connect(t, engine.DefaultConfig())
	called := false
	e.OnMove(func(types.Move, *types.BoardState) { called = true })

	from, to := mustMove(t, "c3-c7")
	err := e.PlayMove(from, to)
	if !errors.Is(err, rules.ErrBlocked) {
		t.Fatalf("got %v, want ErrBlocked", err)
	}
	if called {
		t.Error("callback fired for a rejected move")
	}
	if e.GetBoardState().MoveNumber != 0 {
		t.Error("move number advanced")
	}
}

func TestResignEndsGame(t *testing.T) {
	e := connect(t, engine.DefaultConfig())
	var outcome string
	e.OnGameEnd(func(o string) { outcome = o })

	if err := e.Resign(); err != nil {
		t.Fatalf("Resign: %v", err)
	}
	if outcome != "White wins by resignation" {
		t.Errorf("outcome = %q", outcome)
	}
	if !e.GetBoardState().Finished() {
		t.Error("state should be finished")
	}
	if err := e.Resign(); !errors.Is(err, rules.ErrGameOver) {
		t.Errorf("second resign: got %v", err)
	}
	if got := e.LegalDestinations(types.BoardPos{Row: 17, Col: 2}); got != nil {
		t.Errorf("destinations after game end: %v", got)
	}
}

func TestConnectFromDiagram(t *testing.T) {
	var b types.Board
	ring := func(row, col int, c types.Cell) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr != 0 || dc != 0 {
					b[row+dr][col+dc] = c
				}
			}
		}
	}
	ring(15, 4, types.Black)
	ring(8, 8, types.White)
	b[10][8] = types.Black
	b[11][8] = types.Black

	path := filepath.Join(t.TempDir(), "endgame.txt")
	if err := os.WriteFile(path, []byte(diagram.Encode(&b, types.Black)), 0o644); err != nil {
		t.Fatal(err)
	}

	e := connect(t, engine.GameConfig{PositionPath: path})
	if e.GetBoardState().Board != b {
		t.Fatal("engine did not start from the diagram")
	}

	var outcome string
	e.OnGameEnd(func(o string) { outcome = o })
	if err := e.PlayMove(types.BoardPos{Row: 11, Col: 8}, types.BoardPos{Row: 10, Col: 8}); err != nil {
		t.Fatalf("PlayMove: %v", err)
	}
	if outcome != "Black won!" {
		t.Errorf("outcome = %q", outcome)
	}
	if st := e.GetBoardState(); st.Status != types.BlackVictory {
		t.Errorf("status = %s", st.Status)
	}
}

func TestConnectBadDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("not a board\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := NewLocalEngine(engine.GameConfig{PositionPath: path}, nil)
	if err := e.Connect(); !errors.Is(err, diagram.ErrInvalidDiagram) {
		t.Errorf("got %v, want ErrInvalidDiagram", err)
	}
}

func TestNotConnected(t *testing.T) {
	e := NewLocalEngine(engine.DefaultConfig(), nil)
	if err := e.PlayMove(types.BoardPos{Row: 17, Col: 2}, types.BoardPos{Row: 16, Col: 2}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("PlayMove: got %v", err)
	}
	if err := e.Resign(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Resign: got %v", err)
	}
	if e.GetBoardState() != nil {
		t.Error("state before Connect should be nil")
	}
}

func TestLogsTaggedWithGameID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := NewLocalEngine(engine.DefaultConfig(), zap.New(core).Sugar())
	if err := e.Connect(); err != nil {
		t.Fatal(err)
	}
	e.Close()

	entries := logs.FilterMessage("game started").All()
	if len(entries) != 1 {
		t.Fatalf("got %d 'game started' entries", len(entries))
	}
	if id := entries[0].ContextMap()["game"]; id != e.ID() {
		t.Errorf("game field = %v, want %s", id, e.ID())
	}
	if NewLocalEngine(engine.DefaultConfig(), nil).ID() == e.ID() {
		t.Error("game ids should be unique")
	}
}

func TestConcurrentReads(t *testing.T) {
	e := connect(t, engine.DefaultConfig())
	origin := types.BoardPos{Row: 17, Col: 2}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if st := e.GetBoardState(); st == nil {
					t.Error("nil state")
					return
				}
				e.LegalDestinations(origin)
			}
		}()
	}

	from, to := mustMove(t, "c3-c4")
	if err := e.PlayMove(from, to); err != nil {
		t.Errorf("PlayMove: %v", err)
	}
	wg.Wait()
}
