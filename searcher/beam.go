package searcher

import (
	"hsearch/experiments/metrics"
	"hsearch/game"

	"github.com/rs/zerolog/log"
)

// DefaultHashFactor sizes the dedup table when no capacity is given:
// hashCapacity = DefaultHashFactor * beamWidth.
const DefaultHashFactor = 48

// BeamOption configures a beam search run.
type BeamOption func(*beamConfig)

type beamConfig struct {
	collector metrics.Collector
}

// WithCollector records run metrics into c.
func WithCollector(c metrics.Collector) BeamOption {
	return func(cfg *beamConfig) {
		if c != nil {
			cfg.collector = c
		}
	}
}

// BeamSearch runs a width-bounded best-first search over state for at
// most maxTurn turns and returns the best action sequence found:
// the path to the first finished candidate, or to the cheapest leaf at
// the turn cap. It returns nil when the frontier dies or maxTurn is 0.
// A hashCapacity of 0 selects the default sizing; otherwise it must
// exceed the number of distinct states reachable in one turn.
//
// The state is handed back in its starting configuration.
func BeamSearch[A comparable, C game.Cost, E game.Evaluator[C], H game.Hash](
	state game.BeamState[A, C, E, H],
	maxTurn, beamWidth, hashCapacity int,
	options ...BeamOption,
) []A {
	if beamWidth <= 0 {
		panic("searcher: beam width must be positive")
	}
	if hashCapacity == 0 {
		hashCapacity = DefaultHashFactor * beamWidth
	}
	cfg := beamConfig{collector: metrics.NewDummyCollector()}
	for _, option := range options {
		option(&cfg)
	}

	tree := NewTourTree[A, C, E, H](state, beamWidth)
	selector := NewSelector[A, C, E, H](beamWidth, hashCapacity)
	cfg.collector.Start(beamWidth, maxTurn)

	for turn := 0; turn < maxTurn; turn++ {
		tree.DFS(selector)

		if selector.IsFinished() {
			finished := selector.FinishedCandidates()[0]
			path := append(tree.Restore(finished.Parent, turn+1), finished.Action)
			tree.rollbackRoad()
			log.Debug().Int("turn", turn).Int("path", len(path)).Msg("beam search reached a finished state")
			cfg.collector.SetOutcome(metrics.OutcomeFinished, len(path))
			return path
		}

		candidates := selector.Candidates()
		if len(candidates) == 0 {
			tree.rollbackRoad()
			log.Warn().Int("turn", turn).Msg("beam search frontier died")
			cfg.collector.SetOutcome(metrics.OutcomeExhausted, 0)
			return nil
		}
		cfg.collector.AddTurn(len(candidates))

		if turn+1 == maxTurn {
			best := selector.BestCandidate()
			path := append(tree.Restore(best.Parent, turn+1), best.Action)
			tree.rollbackRoad()
			log.Debug().Int("turn", turn).Int("path", len(path)).Msg("beam search hit the turn cap")
			cfg.collector.SetOutcome(metrics.OutcomeTurnCap, len(path))
			return path
		}

		tree.Update(candidates)
		selector.Clear()
	}
	cfg.collector.SetOutcome(metrics.OutcomeTurnCap, 0)
	return nil
}
