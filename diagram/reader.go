package diagram

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"towerkrieg-local/types"
)

var ErrInvalidDiagram = errors.New("invalid diagram")

// Decode parses a diagram. A missing side-to-move line means Black to move.
func Decode(text string) (types.Board, types.Cell, error) {
	var b types.Board
	toMove := types.Black
	row := 0

	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(strings.ToLower(line), toMovePrefix) {
			side, err := parseSide(strings.TrimSpace(line[len(toMovePrefix):]))
			if err != nil {
				return types.Board{}, types.Empty, fmt.Errorf("line %d: %w", n+1, err)
			}
			toMove = side
			continue
		}

		if row >= types.BoardSize {
			return types.Board{}, types.Empty, fmt.Errorf("%w: more than %d rows", ErrInvalidDiagram, types.BoardSize)
		}
		if len(line) != types.BoardSize {
			return types.Board{}, types.Empty, fmt.Errorf("%w: line %d has %d squares, want %d", ErrInvalidDiagram, n+1, len(line), types.BoardSize)
		}
		for c, ch := range line {
			cell, ok := runeCell(ch)
			if !ok {
				return types.Board{}, types.Empty, fmt.Errorf("%w: line %d: unknown square %q", ErrInvalidDiagram, n+1, ch)
			}
			b[row][c] = cell
		}
		row++
	}

	if row != types.BoardSize {
		return types.Board{}, types.Empty, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidDiagram, row, types.BoardSize)
	}
	return b, toMove, nil
}

// ReadFile loads a diagram from filePath.
func ReadFile(filePath string) (types.Board, types.Cell, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return types.Board{}, types.Empty, err
	}
	b, toMove, err := Decode(string(data))
	if err != nil {
		return types.Board{}, types.Empty, fmt.Errorf("%s: %w", filePath, err)
	}
	return b, toMove, nil
}

func parseSide(s string) (types.Cell, error) {
	switch strings.ToLower(s) {
	case "black", "b", "x":
		return types.Black, nil
	case "white", "w", "o":
		return types.White, nil
	}
	return types.Empty, fmt.Errorf("%w: unknown side %q", ErrInvalidDiagram, s)
}

func runeCell(ch rune) (types.Cell, bool) {
	switch ch {
	case emptyRune:
		return types.Empty, true
	case blackRune, 'X':
		return types.Black, true
	case whiteRune, 'O':
		return types.White, true
	}
	return types.Empty, false
}
