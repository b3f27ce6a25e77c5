package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatePlay(t *testing.T) {
	t.Run("alternates turns", func(t *testing.T) {
		s := NewState(AIPiece)

		next, err := s.Play(3)

		require.NoError(t, err)
		require.Equal(t, AIPiece, next.Board[0][3])
		require.Equal(t, PlayerPiece, next.Turn)
		require.Equal(t, 1, next.Moves)
		require.Equal(t, 0, s.Moves, "Play should return a new state")
	})

	t.Run("rejects an invalid column", func(t *testing.T) {
		_, err := NewState(PlayerPiece).Play(7)

		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("rejects moves after a win", func(t *testing.T) {
		s := NewState(PlayerPiece)
		for _, col := range []int{0, 6, 0, 6, 0, 6, 0} {
			var err error
			s, err = s.Play(col)
			require.NoError(t, err)
		}

		require.True(t, s.IsOver())
		require.Equal(t, PlayerPiece, s.Winner())
		require.Empty(t, s.LegalMoves())

		_, err := s.Play(1)
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestStateHash(t *testing.T) {
	a, err := NewState(PlayerPiece).Play(2)
	require.NoError(t, err)
	b, err := NewState(PlayerPiece).Play(2)
	require.NoError(t, err)
	c, err := NewState(PlayerPiece).Play(3)
	require.NoError(t, err)

	require.Equal(t, a.Hash(), b.Hash(), "Equal states should hash equally")
	require.NotEqual(t, a.Hash(), c.Hash())
	require.NotEqual(t, NewState(PlayerPiece).Hash(), NewState(AIPiece).Hash(), "Turn should be part of the hash")
}
