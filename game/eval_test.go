package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreWindow(t *testing.T) {
	p, o, e := AIPiece, PlayerPiece, Empty

	cases := []struct {
		name   string
		window Window
		want   int
	}{
		{"four own", Window{p, p, p, p}, FourWeight},
		{"three own and an empty cell", Window{p, e, p, p}, ThreeWeight},
		{"two own and two empty cells", Window{e, p, e, p}, TwoWeight},
		{"three opponent and an empty cell", Window{o, o, e, o}, ThreatPenalty},
		{"three own blocked by the opponent", Window{p, p, p, o}, 0},
		{"mixed", Window{p, o, e, e}, 0},
		{"single own", Window{e, e, p, e}, 0},
		{"empty", Window{e, e, e, e}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ScoreWindow(tc.window, p))
		})
	}
}

func TestScoreWindowCompletingFour(t *testing.T) {
	for i := 0; i < WindowLength; i++ {
		w := Window{AIPiece, AIPiece, AIPiece, AIPiece}
		w[i] = Empty
		before := ScoreWindow(w, AIPiece)

		w[i] = AIPiece
		after := ScoreWindow(w, AIPiece)

		require.LessOrEqual(t, before, ThreeWeight)
		require.Equal(t, FourWeight, after, "Completing the fourth cell should score a full window")
	}
}

func TestScore(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		require.Equal(t, 0, Score(NewBoard(), AIPiece))
		require.Equal(t, 0, Score(NewBoard(), PlayerPiece))
	})

	t.Run("center column bias", func(t *testing.T) {
		b := mustParse(t, "...O...")

		require.Equal(t, CenterWeight, Score(b, AIPiece))
		require.Equal(t, 0, Score(b, PlayerPiece), "Opponent's center piece should not count")
	})

	t.Run("two own pieces share one open window", func(t *testing.T) {
		b := mustParse(t, "OO.....")

		require.Equal(t, TwoWeight, Score(b, AIPiece))
	})

	t.Run("opponent threat", func(t *testing.T) {
		b := mustParse(t, "XXX....")

		require.Equal(t, ThreatPenalty, Score(b, AIPiece))
		require.Equal(t, 7, Score(b, PlayerPiece))
	})

	t.Run("mixed position", func(t *testing.T) {
		b := mustParse(t,
			"..XX...",
			"..OOO.X",
		)

		require.Equal(t, 15, Score(b, AIPiece))
		require.Equal(t, 1, Score(b, PlayerPiece))
	})
}
