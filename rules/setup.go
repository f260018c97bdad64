package rules

import "towerkrieg-local/types"

// Opening columns per home row. White mirrors Black across the horizontal
// centre line: Black row r <-> White row 19-r.
var (
	edgeRowCols   = []int{2, 4, 6, 7, 8, 9, 10, 11, 12, 13, 15, 17}
	middleRowCols = []int{1, 2, 3, 5, 7, 8, 9, 10, 12, 14, 16, 17, 18}
	pawnRowCols   = []int{2, 5, 8, 11, 14, 17}
)

// StandardBoard returns the opening position. Each side starts with a single
// ring: Black's centred on l3, White's on l18.
func StandardBoard() types.Board {
	var b types.Board
	place := func(row int, cols []int) {
		for _, c := range cols {
			b[row][c] = types.Black
			b[types.BoardSize-1-row][c] = types.White
		}
	}
	place(18, edgeRowCols)
	place(17, middleRowCols)
	place(16, edgeRowCols)
	place(13, pawnRowCols)
	return b
}
