package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hsearch/experiments/metrics"
	"hsearch/game"
	"hsearch/searcher"
)

var (
	benchTarget int64
	benchCoins  []int64
	benchWidths []int
	benchOutDir string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark beam search on an exact coin-sum problem",
	Long: "Searches for a coin sequence summing exactly to the target. " +
		"Runs once per beam width and writes per-run metrics as CSV.",
	RunE: runBench,
}

func init() {
	benchCmd.Flags().Int64Var(&benchTarget, "target", 1_000_003, "sum to reach exactly")
	benchCmd.Flags().Int64SliceVar(&benchCoins, "coins", []int64{1, 5, 17, 256, 4096}, "coin values")
	benchCmd.Flags().IntSliceVar(&benchWidths, "widths", []int{1, 2, 4, 16, 64, 256}, "beam widths to try")
	benchCmd.Flags().StringVar(&benchOutDir, "out", "bench-results", "directory for metric CSVs")
	rootCmd.AddCommand(benchCmd)
}

// coinState seeks an exact target sum, adding one coin per turn. The
// evaluator carries the remaining distance to the target, so children
// are scored without applying their action.
type coinState struct {
	coins []int64
	total int64
}

// coinEval is the remaining distance to the target; smaller is better.
type coinEval int64

func (e coinEval) Evaluate() int64 {
	return int64(e)
}

func newCoinState(coins []int64, target int64) *coinState {
	return &coinState{coins: coins, total: -target}
}

func (s *coinState) MakeInitialNode() (coinEval, uint64) {
	return coinEval(-s.total), 0
}

func (s *coinState) Expand(eval coinEval, hash uint64, push game.Push[int64, coinEval, uint64]) {
	for _, c := range s.coins {
		remaining := int64(eval) - c
		if remaining < 0 {
			continue // overshoots the target
		}
		push(c, coinEval(remaining), hash+uint64(c), remaining == 0)
	}
}

func (s *coinState) Apply(a int64) {
	s.total += a
}

func (s *coinState) Rollback(a int64) {
	s.total -= a
}

func runBench(cmd *cobra.Command, args []string) error {
	writer, err := metrics.NewWriter(benchOutDir)
	if err != nil {
		return err
	}
	log.Info().Str("run", writer.RunID()).Str("dir", writer.Dir()).Msg("benchmark run")

	maxTurn := int(benchTarget) + 1
	records := make([]metrics.RunRecord, 0, len(benchWidths))
	for _, width := range benchWidths {
		collector := metrics.NewCollector()
		state := newCoinState(benchCoins, benchTarget)
		path := searcher.BeamSearch[int64, int64, coinEval, uint64](
			state, maxTurn, width, 0, searcher.WithCollector(collector))

		metric := collector.Complete()
		var sum int64
		for _, c := range path {
			sum += c
		}
		log.Info().
			Int("width", width).
			Int("path", len(path)).
			Int64("sum", sum).
			Str("outcome", metric.Outcome).
			Dur("took", metric.Duration).
			Msg("search done")
		if len(path) > 0 && sum != benchTarget {
			return fmt.Errorf("bench: path sums to %d, want %d", sum, benchTarget)
		}

		records = append(records, metrics.RunRecord{
			Run:          writer.RunID(),
			Label:        fmt.Sprintf("w%d", width),
			SearchMetric: metric,
		})
	}
	return writer.WriteSearchRecords(records)
}
