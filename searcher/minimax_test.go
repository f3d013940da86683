package searcher

import (
	"testing"

	"infection/experiments/metrics"
	"infection/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func board(t *testing.T, current game.Player, rows ...string) game.Board {
	t.Helper()
	b, err := game.ParseBoard(rows, current)
	require.NoError(t, err)
	return b
}

func move(t *testing.T, s string) game.Move {
	t.Helper()
	m, ok := game.ParseMove(s)
	require.True(t, ok)
	return m
}

func hasWinningMove(b game.Board) bool {
	for _, m := range b.ValidMoves() {
		next := b
		if outcome, err := next.Play(m); err == nil {
			if winner, ok := outcome.Winner(); ok && winner == b.Player() {
				return true
			}
		}
	}
	return false
}

func TestNewMinimax(t *testing.T) {
	t.Run("panics with a negative depth", func(t *testing.T) {
		require.Panics(t, func() {
			NewMinimax(-1, game.EvaluateMaterial)
		}, "Should panic when depth is negative")
	})

	t.Run("unseeded searchers draw different jitter", func(t *testing.T) {
		first := NewMinimax(1, game.EvaluateMaterial)
		second := NewMinimax(1, game.EvaluateMaterial)
		require.NotEqual(t, first.seeds.Uint64(), second.seeds.Uint64())
	})

	t.Run("defaults to the material evaluation", func(t *testing.T) {
		m := NewMinimax(1, nil, WithJitter(0))
		got, ok := m.Decide(game.DefaultBoard())
		require.True(t, ok)
		require.Equal(t, move(t, "a1 b2"), got)
	})
}

func TestDecide(t *testing.T) {
	t.Run("returns nothing without legal moves", func(t *testing.T) {
		b := board(t, game.PlayerTwo,
			"1.....",
			"......",
			"......",
			"......",
			"......",
			"......",
		)
		_, ok := NewMinimax(3, game.EvaluateMaterial).Decide(b)
		require.False(t, ok, "Player without stones has no move")
	})

	t.Run("returns the only legal move at any depth", func(t *testing.T) {
		b := board(t, game.PlayerOne,
			"122...",
			"222...",
			"22....",
			"......",
			"......",
			"......",
		)
		require.Len(t, b.ValidMoves(), 1)

		for depth := 1; depth <= 3; depth++ {
			got, ok := NewMinimax(depth, game.EvaluateMaterial).Decide(b)
			require.True(t, ok)
			require.Equal(t, move(t, "a1 c3"), got, "depth %d", depth)
		}
	})

	t.Run("picks the best material move at depth one", func(t *testing.T) {
		// Cloning towards the centre is worth most; a1 b2 and f6 e5 tie and
		// the first enumerated one wins without jitter.
		got, ok := NewMinimax(1, game.EvaluateMaterial, WithJitter(0)).Decide(game.DefaultBoard())
		require.True(t, ok)
		require.Equal(t, move(t, "a1 b2"), got)

		got, ok = NewMinimax(1, game.EvaluateMaterial).Decide(game.DefaultBoard())
		require.True(t, ok)
		require.Contains(t, []game.Move{move(t, "a1 b2"), move(t, "f6 e5")}, got,
			"Jitter only breaks ties")
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		b := board(t, game.PlayerOne,
			"1.2...",
			"......",
			"......",
			"......",
			"......",
			"......",
		)
		for depth := 1; depth <= 2; depth++ {
			got, ok := NewMinimax(depth, game.EvaluateMaterial).Decide(b)
			require.True(t, ok)

			next := b
			outcome, err := next.Play(got)
			require.NoError(t, err)
			require.Equal(t, game.PlayerOneWins, outcome, "depth %d chose %s", depth, got)
		}
	})

	t.Run("still moves when every move loses", func(t *testing.T) {
		b := board(t, game.PlayerOne,
			".12222",
			"122222",
			"222222",
			"222222",
			"222222",
			"222222",
		)
		require.Len(t, b.ValidMoves(), 2)

		got, ok := NewMinimax(1, game.EvaluateMaterial).Decide(b)
		require.True(t, ok, "Should never give up while moves exist")
		require.Equal(t, move(t, "b1 a1"), got, "First of equally lost moves")
	})

	t.Run("avoids a drawn ending", func(t *testing.T) {
		b := board(t, game.PlayerOne,
			"012222",
			"221111",
			"111111",
			"222222",
			"111122",
			"222222",
		)
		draw := move(t, "b1 a1")
		require.Contains(t, b.ValidMoves(), draw)

		got, ok := NewMinimax(1, game.EvaluateMaterial).Decide(b)
		require.True(t, ok)
		require.NotEqual(t, draw, got, "A draw scores as a loss")
	})

	t.Run("sees an opponent win two plies ahead", func(t *testing.T) {
		// Jumping to c3 captures d4 and scores best on material, but e5
		// then jumps to d3 and takes both stones. Every move except the
		// clone to b2 leaves P1 open to losing everything at once.
		b := board(t, game.PlayerOne,
			"1.....",
			"......",
			"......",
			"...2..",
			"....2.",
			"......",
		)
		trap := move(t, "a1 c3")

		got, ok := NewMinimax(1, game.EvaluateMaterial, WithJitter(0)).Decide(b)
		require.True(t, ok)
		require.Equal(t, trap, got)

		s := &search{
			Minimax: NewMinimax(2, game.EvaluateMaterial),
			root:    game.PlayerOne,
			rng:     rand.New(rand.NewSource(1)),
			metrics: metrics.NewDummyCollector(),
		}
		require.Equal(t, Loss, s.play(b, trap, 1))

		got, ok = NewMinimax(2, game.EvaluateMaterial).Decide(b)
		require.True(t, ok)
		require.Equal(t, move(t, "a1 b2"), got)
	})

	t.Run("forces a win on the next turn", func(t *testing.T) {
		// P2 can always escape to c1 or a3 right away, but whichever one P1
		// fills, P2 must jump to the other and P1 then clones into a1,
		// leaving P2 with no move.
		b := board(t, game.PlayerOne,
			"21.111",
			"111111",
			".11111",
			"111111",
			"111111",
			"11111.",
		)
		for _, m := range b.ValidMoves() {
			next := b
			outcome, err := next.Play(m)
			require.NoError(t, err)
			require.False(t, outcome.Over(), "No immediate win from %s", m)
		}

		m := NewMinimax(3, game.EvaluateMaterial)
		got, ok := m.Decide(b)
		require.True(t, ok)

		after := b
		_, err := after.Play(got)
		require.NoError(t, err)
		for _, reply := range after.ValidMoves() {
			next := after
			outcome, err := next.Play(reply)
			require.NoError(t, err)
			if outcome.Over() {
				require.Equal(t, game.PlayerOneWins, outcome)
				continue
			}
			require.True(t, hasWinningMove(next), "%s then %s leaves P1 without a win", got, reply)
		}
	})

	t.Run("does not modify the board", func(t *testing.T) {
		b := game.DefaultBoard()
		_, ok := NewMinimax(2, game.EvaluateSurround).Decide(b)
		require.True(t, ok)
		require.Equal(t, game.DefaultBoard(), b)
	})
}

func TestSeededSearch(t *testing.T) {
	b := game.DefaultBoard()
	_, err := b.Play(move(t, "a1 b2"))
	require.NoError(t, err)

	t.Run("same seed gives the same move", func(t *testing.T) {
		first, _ := NewMinimax(2, game.EvaluateMaterial, WithSeed(11)).Decide(b)
		second, _ := NewMinimax(2, game.EvaluateMaterial, WithSeed(11)).Decide(b)
		require.Equal(t, first, second)
	})

	t.Run("parallel search matches sequential search", func(t *testing.T) {
		sequential, _, seqMetric := NewMinimax(2, game.EvaluateSurround, WithSeed(5), WithMetrics()).FindMove(b)
		parallel, _, parMetric := NewMinimax(2, game.EvaluateSurround, WithSeed(5), WithMetrics(), WithGoroutines(4)).FindMove(b)

		require.Equal(t, sequential, parallel)
		require.Equal(t, seqMetric.Nodes, parMetric.Nodes)
		require.Equal(t, seqMetric.Leaves, parMetric.Leaves)
		require.Equal(t, 4, parMetric.Goroutines)
	})
}

func TestSearchMetrics(t *testing.T) {
	b := game.DefaultBoard()
	rootMoves := len(b.ValidMoves())

	t.Run("depth one scores every root move", func(t *testing.T) {
		_, _, metric := NewMinimax(1, game.EvaluateMaterial, WithMetrics(), WithName("basic")).FindMove(b)

		require.Equal(t, rootMoves, metric.Nodes)
		require.Equal(t, rootMoves, metric.Leaves)
		require.Zero(t, metric.Terminals)
		require.Equal(t, 1, metric.Depth)
		require.Equal(t, "basic", metric.Evaluator)
	})

	t.Run("depth two scores every reply", func(t *testing.T) {
		_, _, metric := NewMinimax(2, game.EvaluateMaterial, WithMetrics()).FindMove(b)

		require.Equal(t, rootMoves+metric.Leaves, metric.Nodes)
		require.Greater(t, metric.Leaves, rootMoves)
	})

	t.Run("no metrics unless asked", func(t *testing.T) {
		_, _, metric := NewMinimax(1, game.EvaluateMaterial).FindMove(b)
		require.Zero(t, metric.Nodes)
	})
}

func TestTerminalValue(t *testing.T) {
	require.Equal(t, Win, terminalValue(game.PlayerOneWins, game.PlayerOne))
	require.Equal(t, Loss, terminalValue(game.PlayerTwoWins, game.PlayerOne))
	require.Equal(t, Loss, terminalValue(game.Draw, game.PlayerOne))
	require.Equal(t, Loss, terminalValue(game.Draw, game.PlayerTwo))
}
