package game

const (
	Rows         = 6
	Columns      = 7
	WindowLength = 4
	CenterColumn = Columns / 2
)

// Piece is the content of a single cell. Empty marks an open cell, the other
// two values are the opposing identities.
type Piece int8

const (
	Empty Piece = iota
	PlayerPiece
	AIPiece
)

// Other returns the opposing piece. Empty has no opponent and maps to itself.
func (p Piece) Other() Piece {
	switch p {
	case PlayerPiece:
		return AIPiece
	case AIPiece:
		return PlayerPiece
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case PlayerPiece:
		return "player"
	case AIPiece:
		return "ai"
	default:
		return "empty"
	}
}

type StateHash uint64

// Evaluates the board to a score indicating how favorable the position is
// for the given piece (higher is better).
type Evaluate func(board Board, piece Piece) int
