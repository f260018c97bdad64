// Package diagram reads and writes plain-text board diagrams.
//
// A diagram has one line per board row, top row first, using '.' for an
// empty square, 'x' for Black and 'o' for White, followed by a line naming
// the side to move:
//
//	....................
//	..o.o.ooooooo.o.o...
//	...
//	to-move: black
//
// Blank lines and lines starting with '#' are ignored.
package diagram

import (
	"fmt"
	"strings"

	"towerkrieg-local/types"
)

const (
	emptyRune = '.'
	blackRune = 'x'
	whiteRune = 'o'

	toMovePrefix = "to-move:"
)

// Encode renders b with toMove as the side to move.
func Encode(b *types.Board, toMove types.Cell) string {
	var sb strings.Builder
	for r := range b {
		for c := range b[r] {
			sb.WriteRune(cellRune(b[r][c]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", toMovePrefix, strings.ToLower(toMove.String())))
	return sb.String()
}

// EncodeState renders a snapshot.
func EncodeState(st *types.BoardState) string {
	return Encode(&st.Board, st.PlayerToMove)
}

// Pretty renders b with row numbers and column letters for logs and
// terminals.
func Pretty(b *types.Board) string {
	var sb strings.Builder
	for r := range b {
		sb.WriteString(fmt.Sprintf("%2d ", types.BoardSize-r))
		for c := range b[r] {
			sb.WriteRune(cellRune(b[r][c]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for c := 0; c < types.BoardSize; c++ {
		sb.WriteRune('a' + rune(c))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func cellRune(c types.Cell) rune {
	switch c {
	case types.Black:
		return blackRune
	case types.White:
		return whiteRune
	}
	return emptyRune
}
