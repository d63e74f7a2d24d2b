package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"hsearch/searcher"
	"hsearch/tilegame"
)

var (
	duelDepth  int
	duelStdin  bool
	duelSeed   uint64
	duelRandom bool
)

var tileduelCmd = &cobra.Command{
	Use:   "tileduel",
	Short: "Self-play the 3x3 tile duel with alpha-beta on both sides",
	RunE:  runTileduel,
}

func init() {
	tileduelCmd.Flags().IntVar(&duelDepth, "depth", 9, "search depth per move")
	tileduelCmd.Flags().BoolVar(&duelStdin, "stdin", false, "read pair bonuses from stdin")
	tileduelCmd.Flags().BoolVar(&duelRandom, "second-random", false, "play the second player with random moves")
	tileduelCmd.Flags().Uint64Var(&duelSeed, "seed", 1, "bonus and random-player seed")
	rootCmd.AddCommand(tileduelCmd)
}

func runTileduel(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(duelSeed))

	var board *tilegame.Board
	if duelStdin {
		b, err := tilegame.Parse(os.Stdin)
		if err != nil {
			return err
		}
		board = b
	} else {
		var vertical [2][3]int
		var horizontal [3][2]int
		for i := range vertical {
			for j := range vertical[i] {
				vertical[i][j] = 1 + rng.Intn(99)
			}
		}
		for i := range horizontal {
			for j := range horizontal[i] {
				horizontal[i][j] = 1 + rng.Intn(99)
			}
		}
		board = tilegame.New(vertical, horizontal)
	}

	for !board.IsFinished() {
		var move tilegame.Cell
		if duelRandom && board.Turn()%2 == 0 {
			var open []tilegame.Cell
			board.Expand(func(c tilegame.Cell) { open = append(open, c) })
			move = open[rng.Intn(len(open))]
		} else {
			move = searcher.AlphaBetaBestAction[tilegame.Cell, int](board, duelDepth)
		}
		log.Info().Int("turn", board.Turn()).Int("row", move.Row).Int("col", move.Col).Msg("move")
		board.Apply(move)
	}

	first, second := board.Scores()
	log.Info().Int("first", first).Int("second", second).Msg("final score")
	return nil
}
