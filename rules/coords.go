package rules

import (
	"fmt"
	"strconv"
	"strings"

	"towerkrieg-local/types"
)

// Coordinate system:
// - Columns: a-t (left to right)
// - Rows: 1-20 (from bottom of board)
// - Example: c18, l3, t1
//
// Internal coordinate system:
// - Row: 0-19 (top to bottom)
// - Col: 0-19 (left to right)
// - Example: (2, 2) for c18, (19, 19) for t1

// ParseCoord converts a square like "c18" to internal coordinates.
func ParseCoord(ref string) (types.BoardPos, error) {
	ref = strings.TrimSpace(strings.ToLower(ref))
	if len(ref) < 2 {
		return types.BoardPos{}, fmt.Errorf("%w: %q", ErrBadCoordinate, ref)
	}

	col := int(ref[0]) - 'a'
	if col < 0 || col >= types.BoardSize {
		return types.BoardPos{}, fmt.Errorf("%w: column in %q", ErrBadCoordinate, ref)
	}

	num, err := strconv.Atoi(ref[1:])
	if err != nil || num < 1 || num > types.BoardSize {
		return types.BoardPos{}, fmt.Errorf("%w: row in %q", ErrBadCoordinate, ref)
	}

	// Row numbers count from the bottom, so invert
	return types.BoardPos{Row: types.BoardSize - num, Col: col}, nil
}

// FormatCoord converts internal coordinates to notation.
// (2, 2) -> c18, (17, 11) -> l3
func FormatCoord(p types.BoardPos) string {
	if !p.OnGrid() {
		return "?"
	}
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col), types.BoardSize-p.Row)
}

// ParseMove splits a move written as "c3-c4" or "c3 c4" into its two squares.
func ParseMove(mv string) (types.BoardPos, types.BoardPos, error) {
	fields := strings.FieldsFunc(mv, func(r rune) bool {
		return r == '-' || r == ' ' || r == '>' || r == ','
	})
	if len(fields) != 2 {
		return types.BoardPos{}, types.BoardPos{}, fmt.Errorf("%w: move %q needs two squares", ErrBadCoordinate, mv)
	}
	from, err := ParseCoord(fields[0])
	if err != nil {
		return types.BoardPos{}, types.BoardPos{}, err
	}
	to, err := ParseCoord(fields[1])
	if err != nil {
		return types.BoardPos{}, types.BoardPos{}, err
	}
	return from, to, nil
}

// FormatMove renders a move as "c3-c4".
func FormatMove(from, to types.BoardPos) string {
	return FormatCoord(from) + "-" + FormatCoord(to)
}
