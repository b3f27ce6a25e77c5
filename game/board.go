package game

import (
	"fmt"
	"strings"
)

// Board is the 6x7 grid, indexed [row][column] with row 0 at the bottom.
// It is a value: assigning or passing a Board copies every cell.
type Board [Rows][Columns]Piece

func NewBoard() Board {
	return Board{}
}

func (b Board) IsValidColumn(col int) bool {
	if col < 0 || col >= Columns {
		return false
	}
	return b[Rows-1][col] == Empty
}

// NextOpenRow returns the lowest empty row of col.
func (b Board) NextOpenRow(col int) (int, error) {
	if col < 0 || col >= Columns {
		return -1, &InvalidMoveError{Column: col, Reason: OutOfRange}
	}
	for row := 0; row < Rows; row++ {
		if b[row][col] == Empty {
			return row, nil
		}
	}
	return -1, &InvalidMoveError{Column: col, Reason: ColumnFull}
}

// Drop sets a single cell. The caller guarantees (row, col) is the open row
// of a valid column.
func (b *Board) Drop(row, col int, piece Piece) {
	b[row][col] = piece
}

func (b Board) Copy() Board {
	return b
}

// LegalColumns lists the playable columns in ascending order. An empty
// result means the board is full.
func (b Board) LegalColumns() []int {
	cols := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.IsValidColumn(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Play drops piece into col on a copy of the board and returns the copy and
// the row the piece landed on. The receiver is left untouched.
func (b Board) Play(col int, piece Piece) (Board, int, error) {
	row, err := b.NextOpenRow(col)
	if err != nil {
		return b, -1, err
	}
	next := b.Copy()
	next.Drop(row, col, piece)
	return next, row, nil
}

func (b Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b[Rows-1][col] == Empty {
			return false
		}
	}
	return true
}

// Count returns how many cells hold piece.
func (b Board) Count(piece Piece) int {
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] == piece {
				n++
			}
		}
	}
	return n
}

var pieceRunes = map[Piece]byte{
	Empty:       '.',
	PlayerPiece: 'X',
	AIPiece:     'O',
}

// String renders the board top row first, one line per row.
func (b Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			sb.WriteByte(pieceRunes[b[row][col]])
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard builds a board from text rows written top row first, using '.'
// for empty cells, 'X' for the player and 'O' for the AI. Fewer than Rows
// lines fill the bottom of the board; missing rows above stay empty.
func ParseBoard(lines ...string) (Board, error) {
	var b Board
	if len(lines) > Rows {
		return b, fmt.Errorf("board has %d rows, want at most %d", len(lines), Rows)
	}
	for i, line := range lines {
		if len(line) != Columns {
			return b, fmt.Errorf("row %d has %d cells, want %d", i, len(line), Columns)
		}
		row := len(lines) - 1 - i
		for col := 0; col < Columns; col++ {
			switch line[col] {
			case '.':
			case 'X', 'x':
				b[row][col] = PlayerPiece
			case 'O', 'o':
				b[row][col] = AIPiece
			default:
				return b, fmt.Errorf("row %d column %d: unexpected cell %q", i, col, line[col])
			}
		}
	}
	return b, nil
}
