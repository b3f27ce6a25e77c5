package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

type Agent interface {
	// FindMove returns the column to play for the piece to move in state and
	// performance metrics (if collected) from the search
	FindMove(state game.State) (int, metrics.SearchMetric, error)
}
