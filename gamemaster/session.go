package gamemaster

import (
	"connect4/game"
	"connect4/searcher/agent"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrNotYourTurn = errors.New("not your turn")

// Update is a single applied move.
type Update struct {
	Piece  game.Piece
	Column int
	Row    int
	State  game.State
}

// Session is a game between a human, who always plays game.PlayerPiece, and
// an agent playing game.AIPiece. It is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	id       string
	state    game.State
	ai       agent.Agent
	updateCh chan Update
}

func NewSession(ai agent.Agent, first game.Piece) *Session {
	if ai == nil {
		panic("session needs an agent")
	}
	if first == game.Empty {
		first = game.PlayerPiece
	}
	s := &Session{
		id:       uuid.NewString(),
		state:    game.NewState(first),
		ai:       ai,
		updateCh: make(chan Update, game.Rows*game.Columns), // Holds every move of a game
	}
	log.Info().Msgf("session %s: started, %s moves first", s.id, first)
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Winner() game.Piece {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Winner()
}

func (s *Session) IsOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsOver()
}

// Updates returns the feed of applied moves. It is closed after the move
// that ends the game.
func (s *Session) Updates() <-chan Update {
	return s.updateCh
}

// Play drops the human's piece into col.
func (s *Session) Play(col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(game.PlayerPiece, col)
}

// AIMove asks the agent for a column and plays it.
func (s *Session) AIMove() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsOver() {
		return -1, game.ErrGameOver
	}
	if s.state.Turn != game.AIPiece {
		return -1, ErrNotYourTurn
	}

	col, _, err := s.ai.FindMove(s.state)
	if err != nil {
		return -1, fmt.Errorf("session %s: agent failed to find a move: %w", s.id, err)
	}
	if err := s.apply(game.AIPiece, col); err != nil {
		return -1, err
	}
	return col, nil
}

func (s *Session) apply(piece game.Piece, col int) error {
	if s.state.IsOver() {
		return game.ErrGameOver
	}
	if s.state.Turn != piece {
		return ErrNotYourTurn
	}

	row, err := s.state.Board.NextOpenRow(col)
	if err != nil {
		return err
	}
	next, err := s.state.Play(col)
	if err != nil {
		return err
	}
	s.state = next
	s.updateCh <- Update{Piece: piece, Column: col, Row: row, State: next}

	if next.IsOver() {
		if winner := next.Winner(); winner != game.Empty {
			log.Info().Msgf("session %s: %s wins after %d moves", s.id, winner, next.Moves)
		} else {
			log.Info().Msgf("session %s: draw after %d moves", s.id, next.Moves)
		}
		close(s.updateCh)
	}
	return nil
}
