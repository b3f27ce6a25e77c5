package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/searcher/agent"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	col int
	err error
}

func (a scriptedAgent) FindMove(state game.State) (int, metrics.SearchMetric, error) {
	return a.col, metrics.SearchMetric{}, a.err
}

func columns(history []Update) []int {
	cols := make([]int, len(history))
	for i, u := range history {
		cols[i] = u.Column
	}
	return cols
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("minimax beats greedy with the player starting", func(t *testing.T) {
		agents := [2]agent.Agent{
			agent.NewGreedyAgent(),
			agent.NewMinimaxAgent(searcher.NewMinimax(3, searcher.WithMetrics())),
		}
		e := NewLocalEngine(agents, game.PlayerPiece)

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.AIPiece, winner)
		require.Equal(t, "ai", gameMetric.Winner)
		require.Equal(t, "player", gameMetric.StartingPlayer)
		require.Equal(t, 14, gameMetric.TotalMoves)
		require.NotEmpty(t, gameMetric.ID)
		require.Equal(t, []int{3, 3, 2, 4, 2, 2, 3, 2, 1, 0, 3, 2, 3, 2}, columns(e.History))
		require.Len(t, moveMetrics, 14)
		for _, mm := range moveMetrics {
			if mm.Player == "ai" {
				require.Greater(t, mm.Nodes, 0, "Minimax moves should carry search metrics")
			} else {
				require.Zero(t, mm.Nodes)
			}
		}
	})

	t.Run("pruned parallel search plays the same game", func(t *testing.T) {
		agents := [2]agent.Agent{
			agent.NewGreedyAgent(),
			agent.NewMinimaxAgent(searcher.NewMinimax(3, searcher.WithPruning(), searcher.WithGoroutines(4))),
		}
		e := NewLocalEngine(agents, game.AIPiece)

		winner, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.AIPiece, winner)
		require.Equal(t, 9, gameMetric.TotalMoves)
		require.Equal(t, []int{3, 3, 3, 3, 1, 1, 2, 2, 0}, columns(e.History))
	})

	t.Run("random self play always terminates", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			agents := [2]agent.Agent{agent.NewRandomAgent(seed), agent.NewRandomAgent(seed + 100)}
			e := NewLocalEngine(agents, game.PlayerPiece)

			winner, gameMetric, moveMetrics, err := e.Run()

			require.NoError(t, err)
			require.True(t, e.State.IsOver())
			require.Equal(t, e.State.Winner(), winner)
			require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
			require.Len(t, e.History, gameMetric.TotalMoves)
			require.Equal(t, e.State.Hash(), e.History[len(e.History)-1].Hash)
		}
	})

	t.Run("illegal agent move", func(t *testing.T) {
		agents := [2]agent.Agent{scriptedAgent{col: 9}, agent.NewGreedyAgent()}
		e := NewLocalEngine(agents, game.PlayerPiece)

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, game.ErrInvalidMove)
	})

	t.Run("failing agent", func(t *testing.T) {
		failure := errors.New("boom")
		agents := [2]agent.Agent{agent.NewGreedyAgent(), scriptedAgent{err: failure}}
		e := NewLocalEngine(agents, game.AIPiece)

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, failure)
	})
}

func TestNewLocalEngine(t *testing.T) {
	require.Panics(t, func() {
		NewLocalEngine([2]agent.Agent{agent.NewGreedyAgent(), nil}, game.PlayerPiece)
	}, "Should panic without two agents")

	require.Panics(t, func() {
		NewLocalEngine([2]agent.Agent{agent.NewGreedyAgent(), agent.NewGreedyAgent()}, game.Empty)
	}, "Should panic without a starting piece")
}
