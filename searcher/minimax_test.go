package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"hsearch/game"
	"hsearch/tilegame"
)

func randomBoard(rng *rand.Rand) *tilegame.Board {
	var vertical [2][3]int
	var horizontal [3][2]int
	for i := range vertical {
		for j := range vertical[i] {
			vertical[i][j] = 1 + rng.Intn(9)
		}
	}
	for i := range horizontal {
		for j := range horizontal[i] {
			horizontal[i][j] = 1 + rng.Intn(9)
		}
	}
	return tilegame.New(vertical, horizontal)
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 5; trial++ {
		board := randomBoard(rng)
		for depth := 1; depth <= 4; depth++ {
			plain := MinimaxBestScore[tilegame.Cell, int](board, depth)
			pruned := AlphaBetaBestScore[tilegame.Cell, int](board, -game.MaxCost[int](), game.MaxCost[int](), depth)

			require.Equal(t, plain, pruned, "trial %d depth %d: pruning must not change the value", trial, depth)

			require.Equal(t,
				MinimaxBestAction[tilegame.Cell, int](board, depth),
				AlphaBetaBestAction[tilegame.Cell, int](board, depth),
				"trial %d depth %d: both drivers share the child ordering", trial, depth)
		}
	}
}

func TestMinimaxDepthOneIsGreedy(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	board := randomBoard(rng)

	// At depth one the negamax value of a move is the evaluation right
	// after playing it, from our side.
	var bestCell tilegame.Cell
	best := game.MinCost[int]()
	board.Expand(func(c tilegame.Cell) {
		board.Apply(c)
		if score := -board.Evaluate(); score > best {
			best = score
			bestCell = c
		}
		board.Rollback(c)
	})

	require.Equal(t, bestCell, MinimaxBestAction[tilegame.Cell, int](board, 1))
	require.Equal(t, best, MinimaxBestScore[tilegame.Cell, int](board, 1))
}

func TestMinimaxLeavesStateUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	board := randomBoard(rng)
	board.Apply(tilegame.Cell{Row: 1, Col: 1})
	turn := board.Turn()

	MinimaxBestAction[tilegame.Cell, int](board, 3)
	AlphaBetaBestAction[tilegame.Cell, int](board, 3)

	require.Equal(t, turn, board.Turn(), "apply and rollback must pair up exactly")
	require.NotZero(t, board.Visited(1, 1))
}

func TestMinimaxContractViolations(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	t.Run("zero depth panics", func(t *testing.T) {
		board := randomBoard(rng)
		require.Panics(t, func() { MinimaxBestAction[tilegame.Cell, int](board, 0) })
		require.Panics(t, func() { AlphaBetaBestAction[tilegame.Cell, int](board, 0) })
	})

	t.Run("finished state panics", func(t *testing.T) {
		board := randomBoard(rng)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				board.Apply(tilegame.Cell{Row: i, Col: j})
			}
		}
		require.True(t, board.IsFinished())
		require.Panics(t, func() { MinimaxBestAction[tilegame.Cell, int](board, 3) })
		require.Panics(t, func() { AlphaBetaBestAction[tilegame.Cell, int](board, 3) })
	})
}
