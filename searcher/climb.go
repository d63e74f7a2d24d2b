package searcher

import (
	"time"

	"hsearch/game"
	"hsearch/timer"
)

// DefaultStep is how many state updates run between clock reads in the
// time-bounded drivers.
const DefaultStep = 256

// Clock returns elapsed milliseconds since the driver started. The
// drivers default to a monotonic wall clock; tests substitute a fake.
type Clock func() int64

func wallClock() Clock {
	t := timer.New()
	return t.Milliseconds
}

// HillClimbOption configures a hill-climbing run.
type HillClimbOption func(*hillClimbConfig)

type hillClimbConfig struct {
	clock Clock
}

// WithHillClimbClock substitutes the elapsed-time source.
func WithHillClimbClock(clock Clock) HillClimbOption {
	return func(cfg *hillClimbConfig) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

// HillClimbing calls state.Update until the budget elapses, in batches
// of step to amortize the clock read. A step of 0 or less selects
// DefaultStep.
func HillClimbing(state game.ClimbState, budget time.Duration, step int, options ...HillClimbOption) {
	if step <= 0 {
		step = DefaultStep
	}
	cfg := hillClimbConfig{clock: wallClock()}
	for _, option := range options {
		option(&cfg)
	}

	deadline := budget.Milliseconds()
	for cfg.clock() < deadline {
		for i := 0; i < step; i++ {
			state.Update()
		}
	}
}
