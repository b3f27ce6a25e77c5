package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher/agent"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State   game.State
	Agents  [2]agent.Agent // Index 0 plays game.PlayerPiece, index 1 game.AIPiece
	History []Update
	first   game.Piece
}

var _ Engine = (*LocalEngine)(nil)

type Update struct {
	Piece  game.Piece
	Column int
	State  game.State
	Hash   game.StateHash
}

func NewLocalEngine(agents [2]agent.Agent, first game.Piece) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	if first == game.Empty {
		panic("starting piece must not be empty")
	}

	return &LocalEngine{
		State:  game.NewState(first),
		Agents: agents,
		first:  first,
	}
}

func agentIndex(piece game.Piece) int {
	if piece == game.PlayerPiece {
		return 0
	}
	return 1
}

// Run executes the entire game loop until the game is decided.
func (e *LocalEngine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: e.first.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s is starting", gameMetric.ID, e.first)

	for !e.State.IsOver() && e.State.Moves < MaxMoves {
		piece := e.State.Turn

		col, searchMetric, err := e.Agents[agentIndex(piece)].FindMove(e.State)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("agent for %s failed to find a move: %w", piece, err)
		}
		next, err := e.State.Play(col)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("agent for %s played column %d: %w", piece, col, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         next.Moves,
			Player:       piece.String(),
			Column:       col,
			SearchMetric: searchMetric,
		})
		e.History = append(e.History, Update{
			Piece:  piece,
			Column: col,
			State:  next,
			Hash:   next.Hash(),
		})
		log.Debug().Msgf("game %s: %s played column %d\n%s", gameMetric.ID, piece, col, next.Board)

		e.State = next
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Moves

	if winner != game.Empty {
		log.Info().Msgf("game %s over after %d moves, winner: %s", gameMetric.ID, e.State.Moves, winner)
	} else {
		log.Info().Msgf("game %s over after %d moves: draw", gameMetric.ID, e.State.Moves)
	}

	return winner, gameMetric, moveMetrics, nil
}
