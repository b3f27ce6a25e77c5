package searcher

import (
	"errors"
	"math"
)

// Terminal values dominate any heuristic magnitude.
const (
	WinScore  = 1_000_000_000
	LossScore = -WinScore
	DrawScore = 0
)

// NoColumn is the column of a result that carries no move: a terminal
// position or an exhausted depth.
const NoColumn = -1

const (
	negInf = math.MinInt
	posInf = math.MaxInt
)

var ErrNoLegalMoves = errors.New("no legal moves: board is full")

type Result struct {
	Column int
	Score  int
}
