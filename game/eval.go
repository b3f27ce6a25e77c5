package game

const (
	CenterWeight  = 3
	FourWeight    = 100
	ThreeWeight   = 5
	TwoWeight     = 2
	ThreatPenalty = -4
)

// Score estimates how favorable the board is for piece from center column
// occupancy and the content of every window. Used at non-terminal leaves.
func Score(b Board, piece Piece) int {
	score := 0

	for row := 0; row < Rows; row++ {
		if b[row][CenterColumn] == piece {
			score += CenterWeight
		}
	}

	b.Windows(func(w Window) bool {
		score += ScoreWindow(w, piece)
		return true
	})

	return score
}

// ScoreWindow is the contribution of a single window to Score.
func ScoreWindow(w Window, piece Piece) int {
	score := 0
	own := w.count(piece)
	empty := w.count(Empty)

	switch {
	case own == 4:
		score += FourWeight
	case own == 3 && empty == 1:
		score += ThreeWeight
	case own == 2 && empty == 2:
		score += TwoWeight
	}

	if w.count(piece.Other()) == 3 && empty == 1 {
		score += ThreatPenalty
	}

	return score
}
