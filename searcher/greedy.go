package searcher

import "connect4/game"

// Initial best score of the greedy pick.
const greedyFloor = -1000

// PickBestMove plays every legal column for piece and keeps the one whose
// resulting board scores highest. No lookahead.
func PickBestMove(board game.Board, piece game.Piece) (int, error) {
	cols := board.LegalColumns()
	if len(cols) == 0 {
		return NoColumn, ErrNoLegalMoves
	}

	bestScore := greedyFloor
	bestCol := cols[0]
	for _, col := range cols {
		next, _, err := board.Play(col, piece)
		if err != nil {
			return NoColumn, err
		}
		if score := game.Score(next, piece); score > bestScore {
			bestScore = score
			bestCol = col
		}
	}
	return bestCol, nil
}
