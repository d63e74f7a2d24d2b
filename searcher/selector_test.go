package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// intEval is a fixed-cost evaluator for selector and tour tests.
type intEval int

func (e intEval) Evaluate() int { return int(e) }

func liveCosts(s *Selector[int, int, intEval, uint64]) []int {
	costs := make([]int, 0, len(s.candidates))
	for _, c := range s.candidates {
		costs = append(costs, c.Eval.Evaluate())
	}
	return costs
}

func TestSelectorPush(t *testing.T) {
	t.Run("keeps everything below the width", func(t *testing.T) {
		s := NewSelector[int, int, intEval, uint64](4, 64)

		s.Push(1, intEval(5), 100, 0, false)
		s.Push(2, intEval(3), 101, 0, false)

		require.Len(t, s.Candidates(), 2)
		require.False(t, s.full)
	})

	t.Run("eviction replaces the worst once full", func(t *testing.T) {
		const width = 4
		s := NewSelector[int, int, intEval, uint64](width, 64)

		// Strictly increasing costs 0..width fill the beam and leave
		// the last push rejected.
		for i := 0; i <= width; i++ {
			s.Push(i, intEval(i), uint64(100+i), 0, false)
		}
		require.ElementsMatch(t, []int{0, 1, 2, 3}, liveCosts(s), "cost %d should have been rejected outright", width)
		require.True(t, s.full)
		require.Equal(t, 3, s.seg.AllProd().cost, "the tree should track the worst kept cost")

		// A cheaper candidate with a fresh hash evicts the worst kept.
		s.Push(99, intEval(-1), 200, 0, false)
		require.ElementsMatch(t, []int{-1, 0, 1, 2}, liveCosts(s))
		require.Equal(t, 2, s.seg.AllProd().cost)
	})

	t.Run("duplicate hash keeps only the cheaper candidate", func(t *testing.T) {
		s := NewSelector[int, int, intEval, uint64](4, 64)

		s.Push(1, intEval(7), 100, 0, false)
		s.Push(2, intEval(3), 100, 1, false)
		s.Push(3, intEval(5), 100, 2, false)

		require.Len(t, s.Candidates(), 1, "one hash should occupy one slot")
		c := s.Candidates()[0]
		require.Equal(t, 3, c.Eval.Evaluate())
		require.Equal(t, 2, c.Action, "the cheaper push should have replaced the first")
		require.Equal(t, 1, c.Parent)
	})

	t.Run("duplicate hash with equal cost keeps the first", func(t *testing.T) {
		s := NewSelector[int, int, intEval, uint64](4, 64)

		s.Push(1, intEval(3), 100, 0, false)
		s.Push(2, intEval(3), 100, 1, false)

		require.Equal(t, 1, s.Candidates()[0].Action)
	})

	t.Run("a stale slot binding is not mistaken for a duplicate", func(t *testing.T) {
		s := NewSelector[int, int, intEval, uint64](1, 8)

		s.Push(1, intEval(-1), 100, 0, false) // fills the beam
		s.Push(2, intEval(-2), 101, 0, false) // evicts hash 100, slot for 100 still points at index 0
		s.Push(3, intEval(-3), 100, 0, false) // same hash as the evicted candidate

		require.Len(t, s.Candidates(), 1)
		c := s.Candidates()[0]
		require.Equal(t, 3, c.Action, "the re-pushed hash should insert, not merge into the unrelated slot")
		require.Equal(t, -3, c.Eval.Evaluate())
	})

	t.Run("finished candidates bypass the beam entirely", func(t *testing.T) {
		s := NewSelector[int, int, intEval, uint64](1, 8)

		s.Push(1, intEval(0), 100, 0, false)
		s.Push(2, intEval(99), 101, 3, true)
		s.Push(3, intEval(98), 102, 4, true)

		require.True(t, s.IsFinished())
		require.Len(t, s.FinishedCandidates(), 2)
		require.Equal(t, 2, s.FinishedCandidates()[0].Action, "finished candidates should stay in push order")
		require.Len(t, s.Candidates(), 1, "finished pushes should not consume beam slots")
	})
}

func TestSelectorBestCandidate(t *testing.T) {
	t.Run("returns the cheapest live candidate", func(t *testing.T) {
		s := NewSelector[int, int, intEval, uint64](4, 64)
		s.Push(1, intEval(5), 100, 0, false)
		s.Push(2, intEval(-2), 101, 0, false)
		s.Push(3, intEval(3), 102, 0, false)

		require.Equal(t, 2, s.BestCandidate().Action)
	})

	t.Run("panics on an empty beam", func(t *testing.T) {
		s := NewSelector[int, int, intEval, uint64](4, 64)
		require.Panics(t, func() { s.BestCandidate() })
	})
}

func TestSelectorClear(t *testing.T) {
	s := NewSelector[int, int, intEval, uint64](2, 8)
	s.Push(1, intEval(1), 100, 0, false)
	s.Push(2, intEval(2), 101, 0, false)
	s.Push(3, intEval(9), 102, 0, true)
	require.True(t, s.full)

	s.Clear()

	require.Empty(t, s.Candidates())
	require.False(t, s.full)
	require.True(t, s.IsFinished(), "finished candidates survive a clear")

	// The same hashes are insertable again.
	s.Push(4, intEval(4), 100, 0, false)
	require.Len(t, s.Candidates(), 1)
}

func TestSelectorWidthOne(t *testing.T) {
	s := NewSelector[int, int, intEval, uint64](1, 8)

	s.Push(1, intEval(3), 100, 0, false)
	s.Push(2, intEval(5), 101, 0, false)
	s.Push(3, intEval(1), 102, 0, false)

	require.Len(t, s.Candidates(), 1, "width one degenerates to greedy")
	require.Equal(t, 3, s.Candidates()[0].Action)
}
