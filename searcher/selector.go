package searcher

import (
	"hsearch/container"
	"hsearch/game"
)

// Candidate is one proposed child of a frontier leaf.
type Candidate[A comparable, C game.Cost, E game.Evaluator[C], H game.Hash] struct {
	Parent int // leaf index in the tour tree
	Action A
	Eval   E
	Hash   H
}

// scored pairs a kept candidate's cost with its slot index.
type scored[C game.Cost] struct {
	cost  C
	index int
}

// worstMonoid reduces to the slot with the largest cost. Ties keep the
// left operand, so the worst index is deterministic in insertion order.
type worstMonoid[C game.Cost] struct{}

func (worstMonoid[C]) Op(a, b scored[C]) scored[C] {
	if a.cost < b.cost {
		return b
	}
	return a
}

func (worstMonoid[C]) Identity() scored[C] {
	return scored[C]{cost: game.MinCost[C](), index: -1}
}

// Selector keeps the best beamWidth non-finished candidates of one
// turn, de-duplicated by state hash, with O(log beamWidth) eviction:
// a segment tree locates the worst kept slot and an open-addressed
// hash map detects repeated hashes. Finished candidates are held aside
// and never evicted.
type Selector[A comparable, C game.Cost, E game.Evaluator[C], H game.Hash] struct {
	finished    []Candidate[A, C, E, H]
	candidates  []Candidate[A, C, E, H]
	costs       []scored[C]
	full        bool
	seg         *container.SegmentTree[scored[C], worstMonoid[C]]
	hashToIndex *container.HashMap[H, int]
	beamWidth   int
}

// NewSelector returns a selector for beamWidth survivors with a
// hashCapacity-slot dedup table. hashCapacity must stay strictly above
// the number of distinct hashes pushed in one turn.
func NewSelector[A comparable, C game.Cost, E game.Evaluator[C], H game.Hash](beamWidth, hashCapacity int) *Selector[A, C, E, H] {
	if beamWidth <= 0 {
		panic("searcher: beam width must be positive")
	}
	return &Selector[A, C, E, H]{
		candidates:  make([]Candidate[A, C, E, H], 0, beamWidth),
		costs:       make([]scored[C], 0, beamWidth),
		seg:         container.NewSegmentTree[scored[C], worstMonoid[C]](worstMonoid[C]{}, beamWidth),
		hashToIndex: container.NewHashMap[H, int](hashCapacity),
		beamWidth:   beamWidth,
	}
}

// Push offers one candidate. Finished candidates are recorded
// unconditionally; live ones survive only while they are among the
// beamWidth cheapest distinct hashes seen this turn.
func (s *Selector[A, C, E, H]) Push(action A, eval E, hash H, parent int, finished bool) {
	cost := eval.Evaluate()
	if finished {
		s.finished = append(s.finished, Candidate[A, C, E, H]{Parent: parent, Action: action, Eval: eval, Hash: hash})
		return
	}
	if s.full && cost >= s.seg.AllProd().cost {
		return
	}
	ok, slot := s.hashToIndex.GetIndex(hash)
	if ok {
		j := s.hashToIndex.Get(slot)
		// The slot may belong to a different hash that probed here;
		// only a true match may be reused.
		if s.candidates[j].Hash == hash {
			if cost < s.costs[j].cost {
				s.candidates[j] = Candidate[A, C, E, H]{Parent: parent, Action: action, Eval: eval, Hash: hash}
				s.costs[j].cost = cost
				if s.full {
					s.seg.Set(j, s.costs[j])
				}
			}
			return
		}
	}
	if s.full {
		j := s.seg.AllProd().index
		s.hashToIndex.Set(slot, hash, j)
		s.candidates[j] = Candidate[A, C, E, H]{Parent: parent, Action: action, Eval: eval, Hash: hash}
		s.costs[j].cost = cost
		s.seg.Set(j, s.costs[j])
	} else {
		s.hashToIndex.Set(slot, hash, len(s.candidates))
		s.costs = append(s.costs, scored[C]{cost: cost, index: len(s.candidates)})
		s.candidates = append(s.candidates, Candidate[A, C, E, H]{Parent: parent, Action: action, Eval: eval, Hash: hash})
		if len(s.candidates) == s.beamWidth {
			s.seg.Build(s.costs)
			s.full = true
		}
	}
}

// Candidates returns the live set. Callers must not mutate it.
func (s *Selector[A, C, E, H]) Candidates() []Candidate[A, C, E, H] {
	return s.candidates
}

// FinishedCandidates returns every finished candidate in push order.
func (s *Selector[A, C, E, H]) FinishedCandidates() []Candidate[A, C, E, H] {
	return s.finished
}

// BestCandidate returns the cheapest live candidate. It panics on an
// empty live set.
func (s *Selector[A, C, E, H]) BestCandidate() Candidate[A, C, E, H] {
	if len(s.candidates) == 0 {
		panic("searcher: best candidate of an empty beam")
	}
	best := 0
	for i := 1; i < len(s.costs); i++ {
		if s.costs[i].cost < s.costs[best].cost {
			best = i
		}
	}
	return s.candidates[best]
}

// IsFinished reports whether any finished candidate was pushed.
func (s *Selector[A, C, E, H]) IsFinished() bool {
	return len(s.finished) > 0
}

// Clear resets the live set for the next turn. Finished candidates are
// kept: finding one ends the run before the next clear.
func (s *Selector[A, C, E, H]) Clear() {
	s.candidates = s.candidates[:0]
	s.costs = s.costs[:0]
	s.hashToIndex.Clear()
	s.full = false
}
