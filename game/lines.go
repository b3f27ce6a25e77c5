package game

// Window is WindowLength consecutive cells along one scan direction.
type Window [WindowLength]Piece

type direction struct {
	dRow, dCol int
}

// The four scan families: rows left to right, columns bottom to top, and the
// two diagonals.
var directions = [...]direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// Windows calls fn for every window of every scan family until fn returns
// false.
func (b Board) Windows(fn func(w Window) bool) {
	for _, d := range directions {
		// Valid start rows for this direction; a board smaller than a window
		// yields an empty range.
		rowLo, rowHi := 0, Rows-(WindowLength-1)*d.dRow
		if d.dRow < 0 {
			rowLo, rowHi = WindowLength-1, Rows
		}
		colHi := Columns - (WindowLength-1)*d.dCol
		for row := rowLo; row < rowHi; row++ {
			for col := 0; col < colHi; col++ {
				var w Window
				for i := 0; i < WindowLength; i++ {
					w[i] = b[row+i*d.dRow][col+i*d.dCol]
				}
				if !fn(w) {
					return
				}
			}
		}
	}
}

// HasConnectFour reports whether piece owns any full window.
func (b Board) HasConnectFour(piece Piece) bool {
	if piece == Empty {
		return false
	}
	found := false
	b.Windows(func(w Window) bool {
		if w.count(piece) == WindowLength {
			found = true
			return false
		}
		return true
	})
	return found
}

// Winner returns the piece with a four-in-a-row, or Empty if there is none.
func (b Board) Winner() Piece {
	switch {
	case b.HasConnectFour(PlayerPiece):
		return PlayerPiece
	case b.HasConnectFour(AIPiece):
		return AIPiece
	default:
		return Empty
	}
}

// IsTerminal reports whether the game on this board is decided or no move
// remains.
func (b Board) IsTerminal() bool {
	return b.HasConnectFour(PlayerPiece) || b.HasConnectFour(AIPiece) || b.IsFull()
}

func (w Window) count(piece Piece) int {
	n := 0
	for _, p := range w {
		if p == piece {
			n++
		}
	}
	return n
}
