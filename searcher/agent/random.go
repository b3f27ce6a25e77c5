package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal column.
// Agents created with the same seed play the same sequence.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (int, metrics.SearchMetric, error) {
	cols := state.LegalMoves()
	if len(cols) == 0 {
		if state.Board.IsFull() {
			return searcher.NoColumn, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
		}
		return searcher.NoColumn, metrics.SearchMetric{}, game.ErrGameOver
	}
	return cols[a.rng.Intn(len(cols))], metrics.SearchMetric{}, nil
}
