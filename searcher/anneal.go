package searcher

import (
	"math"
	"time"

	"hsearch/game"
	"hsearch/random"
)

// AnnealOption configures a simulated-annealing run.
type AnnealOption func(*annealConfig)

type annealConfig struct {
	clock Clock
	rng   *random.XorShift
}

// WithAnnealClock substitutes the elapsed-time source.
func WithAnnealClock(clock Clock) AnnealOption {
	return func(cfg *annealConfig) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

// WithAnnealRand substitutes the acceptance-threshold generator.
func WithAnnealRand(rng *random.XorShift) AnnealOption {
	return func(cfg *annealConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// SimulatedAnnealing calls state.Update(temp*ln(u), progress) until
// the budget elapses, in batches of step. The temperature interpolates
// linearly from startTemp to endTemp as progress runs from 0 to 1, and
// u is uniform in [0, 1]; the state applies temp*ln(u) as the
// acceptance threshold for its own cost delta. With the default
// generator the run is deterministic for a given clock.
func SimulatedAnnealing(state game.AnnealState, startTemp, endTemp float64, budget time.Duration, step int, options ...AnnealOption) {
	if step <= 0 {
		step = DefaultStep
	}
	cfg := annealConfig{clock: wallClock(), rng: random.New()}
	for _, option := range options {
		option(&cfg)
	}

	total := budget.Milliseconds()
	for {
		now := cfg.clock()
		if now >= total {
			break
		}
		progress := float64(now) / float64(total)
		temp := startTemp + (endTemp-startTemp)*progress
		for i := 0; i < step; i++ {
			state.Update(temp*math.Log(cfg.rng.Probability()), progress)
		}
	}
}
