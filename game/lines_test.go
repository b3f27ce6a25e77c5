package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Rows and columns alternate in pairs, so no line of four exists anywhere.
var drawLines = []string{
	"XOXOXOX",
	"XOXOXOX",
	"OXOXOXO",
	"OXOXOXO",
	"XOXOXOX",
	"XOXOXOX",
}

func TestHasConnectFour(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		b := mustParse(t, "XXXOOOO")

		require.True(t, b.HasConnectFour(AIPiece))
		require.False(t, b.HasConnectFour(PlayerPiece))
	})

	t.Run("vertical", func(t *testing.T) {
		b := mustParse(t,
			"......O",
			"X.....O",
			"X.....O",
			"X.....O",
		)

		require.True(t, b.HasConnectFour(AIPiece))
		require.False(t, b.HasConnectFour(PlayerPiece))
	})

	t.Run("positive diagonal", func(t *testing.T) {
		b := mustParse(t,
			"...X...",
			"..XO...",
			".XOO...",
			"XOOO...",
		)

		require.True(t, b.HasConnectFour(PlayerPiece))
		require.False(t, b.HasConnectFour(AIPiece))
	})

	t.Run("negative diagonal", func(t *testing.T) {
		b := mustParse(t,
			"X......",
			"OX.....",
			"OOX....",
			"OOOX...",
		)

		require.True(t, b.HasConnectFour(PlayerPiece))
		require.False(t, b.HasConnectFour(AIPiece))
	})

	t.Run("diagonal touching the top right corner", func(t *testing.T) {
		b := mustParse(t,
			"......O",
			".....OX",
			"....OXX",
			"...OXOX",
			"...XOXO",
			"...OXOX",
		)

		require.True(t, b.HasConnectFour(AIPiece))
	})

	t.Run("three in a row is not a win", func(t *testing.T) {
		b := mustParse(t, ".XXX.OO")

		require.False(t, b.HasConnectFour(PlayerPiece))
		require.False(t, b.HasConnectFour(AIPiece))
	})

	t.Run("empty never connects", func(t *testing.T) {
		require.False(t, NewBoard().HasConnectFour(Empty))
	})
}

func TestWinnerAndTerminal(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, Empty, b.Winner())
		require.False(t, b.IsTerminal())
	})

	t.Run("decided board", func(t *testing.T) {
		b := mustParse(t, "OOOOXXX")

		require.Equal(t, AIPiece, b.Winner())
		require.True(t, b.IsTerminal())
	})

	t.Run("full board without a winner is a draw", func(t *testing.T) {
		b := mustParse(t, drawLines...)

		require.True(t, b.IsFull())
		require.Equal(t, Empty, b.Winner())
		require.True(t, b.IsTerminal())
		require.Empty(t, b.LegalColumns())
	})
}

func TestWindows(t *testing.T) {
	count := 0
	NewBoard().Windows(func(w Window) bool {
		count++
		return true
	})
	// 24 horizontal, 21 vertical and 12 per diagonal direction
	require.Equal(t, 69, count)

	stopped := 0
	NewBoard().Windows(func(w Window) bool {
		stopped++
		return stopped < 5
	})
	require.Equal(t, 5, stopped, "Windows should stop as soon as fn returns false")
}
