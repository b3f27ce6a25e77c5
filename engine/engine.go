package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

// MaxMoves is the number of cells: no game can last longer.
const MaxMoves = game.Rows * game.Columns

type Engine interface {
	// Run plays a game till there's a winner or the board is full
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
