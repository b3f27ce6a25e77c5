package agent

import (
	"connect4/game"
	"connect4/searcher"
	"fmt"
)

// ChooseAIMove runs the plain minimax for the AI piece at depth and returns
// its column. Depth 0 has no lookahead and falls back to the greedy pick.
func ChooseAIMove(board game.Board, depth int) (int, error) {
	if depth < 0 {
		return searcher.NoColumn, fmt.Errorf("search depth %d must not be negative", depth)
	}
	if len(board.LegalColumns()) == 0 {
		return searcher.NoColumn, searcher.ErrNoLegalMoves
	}
	if board.Winner() != game.Empty {
		return searcher.NoColumn, game.ErrGameOver
	}
	if depth == 0 {
		return searcher.PickBestMove(board, game.AIPiece)
	}
	return searcher.Search(board, depth, true).Column, nil
}
