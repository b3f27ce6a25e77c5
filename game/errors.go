package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrGameOver    = errors.New("game is over - no moves allowed")
)

type MoveReason int

const (
	OutOfRange MoveReason = iota
	ColumnFull
)

// InvalidMoveError reports a drop or open-row lookup on a column that is out
// of range or full.
type InvalidMoveError struct {
	Column int
	Reason MoveReason
}

func (e *InvalidMoveError) Error() string {
	if e.Reason == ColumnFull {
		return fmt.Sprintf("invalid move: column %d is full", e.Column)
	}
	return fmt.Sprintf("invalid move: column %d is out of range [0, %d]", e.Column, Columns-1)
}

func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}
