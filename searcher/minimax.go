package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-limited two-player search. The configured piece always
// maximizes and its opponent always minimizes. A Minimax must not run two
// searches at the same time when metrics are enabled.
type Minimax struct {
	depth      int
	piece      game.Piece
	goroutines int
	pruning    bool
	deadline   time.Duration
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

// WithPiece sets the maximizing piece.
func WithPiece(piece game.Piece) Option {
	return func(m *Minimax) {
		if piece != game.Empty {
			m.piece = piece
		}
	}
}

// WithPruning enables alpha-beta cutoffs. The chosen column and root score
// match the plain search at the same depth.
func WithPruning() Option {
	return func(m *Minimax) {
		m.pruning = true
	}
}

// WithGoroutines searches the root columns in parallel.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithDeadline bounds a search. Past the deadline every undecided position
// below the root is scored by the evaluator instead of being expanded. Root
// columns reached after the deadline therefore carry one-ply heuristic scores,
// compared as is with the scores of columns searched to full depth.
func WithDeadline(deadline time.Duration) Option {
	return func(m *Minimax) {
		if deadline > 0 {
			m.deadline = deadline
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 0 {
		panic("search depth must not be negative")
	}
	m := &Minimax{ // Default values
		depth:      depth,
		piece:      game.AIPiece,
		goroutines: 1,
		evaluate:   game.Score,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Piece() game.Piece {
	return m.piece
}

// Search runs the search from board with the maximizing piece to move.
func (m *Minimax) Search(board game.Board) (Result, metrics.SearchMetric) {
	return m.run(board, true)
}

// ChooseMove returns the column the maximizing piece should play.
func (m *Minimax) ChooseMove(board game.Board) (int, metrics.SearchMetric, error) {
	cols := board.LegalColumns()
	if len(cols) == 0 {
		return NoColumn, metrics.SearchMetric{}, ErrNoLegalMoves
	}
	if board.HasConnectFour(game.PlayerPiece) || board.HasConnectFour(game.AIPiece) {
		return NoColumn, metrics.SearchMetric{}, game.ErrGameOver
	}
	if m.depth == 0 {
		col, err := PickBestMove(board, m.piece)
		return col, metrics.SearchMetric{}, err
	}
	result, metric := m.Search(board)
	return result.Column, metric, nil
}

func (m *Minimax) run(board game.Board, maximizing bool) (Result, metrics.SearchMetric) {
	m.metrics.Start(m.goroutines, m.depth, m.pruning)

	s := &search{
		piece:     m.piece,
		pruning:   m.pruning,
		rootDepth: m.depth,
		evaluate:  m.evaluate,
		metrics:   m.metrics,
	}
	if m.deadline > 0 {
		s.deadline = time.Now().Add(m.deadline)
	}

	var result Result
	if m.goroutines > 1 {
		result = s.parallel(board, m.depth, maximizing, m.goroutines)
	} else {
		result = s.minimax(board, m.depth, negInf, posInf, maximizing)
	}

	metric := m.metrics.Complete()
	if s.timedOut.Load() {
		log.Warn().Msgf("search deadline of %s reached at depth %d, later columns scored by the evaluator", m.deadline, m.depth)
	}
	return result, metric
}

// Search is the plain minimax of the AI piece: no pruning, no parallelism,
// no deadline.
func Search(board game.Board, depth int, maximizing bool) Result {
	result, _ := NewMinimax(depth).run(board, maximizing)
	return result
}

type search struct {
	piece     game.Piece
	pruning   bool
	rootDepth int // The root always expands, even past the deadline
	deadline  time.Time
	evaluate  game.Evaluate
	metrics   metrics.Collector
	timedOut  atomic.Bool
}

func (s *search) expired() bool {
	if s.deadline.IsZero() {
		return false
	}
	if time.Now().After(s.deadline) {
		if !s.timedOut.Swap(true) {
			s.metrics.SetTimedOut()
		}
		return true
	}
	return false
}

// leaf scores board when it is terminal or no further expansion applies.
func (s *search) leaf(board game.Board, depth int) (Result, bool) {
	switch {
	case board.HasConnectFour(s.piece):
		s.metrics.AddTerminal()
		return Result{Column: NoColumn, Score: WinScore}, true
	case board.HasConnectFour(s.piece.Other()):
		s.metrics.AddTerminal()
		return Result{Column: NoColumn, Score: LossScore}, true
	case board.IsFull():
		s.metrics.AddTerminal()
		return Result{Column: NoColumn, Score: DrawScore}, true
	case depth == 0 || (depth < s.rootDepth && s.expired()):
		s.metrics.AddLeaf()
		return Result{Column: NoColumn, Score: s.evaluate(board, s.piece)}, true
	}
	return Result{}, false
}

// minimax returns the exact value of board when pruning is off. With pruning
// on, values outside (alpha, beta) are bounds only.
func (s *search) minimax(board game.Board, depth, alpha, beta int, maximizing bool) Result {
	s.metrics.AddNode()
	if result, ok := s.leaf(board, depth); ok {
		return result
	}

	cols := board.LegalColumns()
	mover := s.piece
	best := Result{Column: cols[0], Score: negInf}
	if !maximizing {
		mover = s.piece.Other()
		best.Score = posInf
	}

	for _, col := range cols {
		row, _ := board.NextOpenRow(col)
		child := board.Copy()
		child.Drop(row, col, mover)
		score := s.minimax(child, depth-1, alpha, beta, !maximizing).Score

		if maximizing {
			if score > best.Score {
				best = Result{Column: col, Score: score}
			}
			alpha = max(alpha, best.Score)
		} else {
			if score < best.Score {
				best = Result{Column: col, Score: score}
			}
			beta = min(beta, best.Score)
		}

		if s.pruning && alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}

// parallel searches every root column in its own task and reduces the scores
// in ascending column order, so the result equals the sequential search.
func (s *search) parallel(board game.Board, depth int, maximizing bool, goroutines int) Result {
	s.metrics.AddNode()
	if result, ok := s.leaf(board, depth); ok {
		return result
	}

	cols := board.LegalColumns()
	mover := s.piece
	if !maximizing {
		mover = s.piece.Other()
	}

	scores := make([]int, len(cols))
	task := make(chan int, len(cols))
	for i := range cols {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(goroutines, len(cols)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				child, _, _ := board.Play(cols[idx], mover)
				scores[idx] = s.minimax(child, depth-1, negInf, posInf, !maximizing).Score
			}
		}()
	}

	wg.Wait()

	best := Result{Column: cols[0], Score: negInf}
	if !maximizing {
		best.Score = posInf
	}
	for i, score := range scores {
		if (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Result{Column: cols[i], Score: score}
		}
	}
	return best
}
