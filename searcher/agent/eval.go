package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"fmt"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the search's maximizing piece.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(state game.State) (int, metrics.SearchMetric, error) {
	if state.Turn != a.minimax.Piece() {
		return searcher.NoColumn, metrics.SearchMetric{}, fmt.Errorf("agent plays %s but %s is to move", a.minimax.Piece(), state.Turn)
	}
	return a.minimax.ChooseMove(state.Board)
}

type greedyAgent struct{}

// NewGreedyAgent returns an agent that plays the one-ply heuristic best move.
func NewGreedyAgent() Agent {
	return greedyAgent{}
}

func (greedyAgent) FindMove(state game.State) (int, metrics.SearchMetric, error) {
	col, err := searcher.PickBestMove(state.Board, state.Turn)
	return col, metrics.SearchMetric{}, err
}
