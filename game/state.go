package game

import (
	"encoding/binary"
	"hash/fnv"
)

// State is a board plus whose turn it is. Operations on State always return
// a new copy.
type State struct {
	Board Board
	Turn  Piece // The piece to move next
	Moves int   // Number of pieces dropped so far
}

// NewState returns an empty board with first to move.
func NewState(first Piece) State {
	return State{Board: NewBoard(), Turn: first}
}

// Play drops the piece to move into col and hands the turn to the opponent.
func (s State) Play(col int) (State, error) {
	if s.IsOver() {
		return s, ErrGameOver
	}
	board, _, err := s.Board.Play(col, s.Turn)
	if err != nil {
		return s, err
	}
	return State{
		Board: board,
		Turn:  s.Turn.Other(),
		Moves: s.Moves + 1,
	}, nil
}

func (s State) LegalMoves() []int {
	if s.Board.HasConnectFour(PlayerPiece) || s.Board.HasConnectFour(AIPiece) {
		return nil
	}
	return s.Board.LegalColumns()
}

func (s State) Winner() Piece {
	return s.Board.Winner()
}

func (s State) IsOver() bool {
	return s.Board.IsTerminal()
}

func (s State) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int8(s.Turn))
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			binary.Write(hasher, binary.LittleEndian, int8(s.Board[row][col]))
		}
	}

	return StateHash(hasher.Sum64())
}
