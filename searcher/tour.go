package searcher

import "hsearch/game"

// Tour edge tags. Non-negative tags index a frontier leaf.
const (
	tagDescend = -1
	tagAscend  = -2
)

// edge is one step of the Euler tour: descend (apply), ascend
// (rollback), or visit a leaf (apply, expand, rollback).
type edge[A comparable] struct {
	tag    int
	action A
}

// vertex is the stored description of a frontier leaf.
type vertex[C game.Cost, E game.Evaluator[C], H game.Hash] struct {
	eval E
	hash H
}

// TourTree maintains the beam frontier as an Euler-tour edge sequence
// over a single mutable state. No per-leaf state copies exist: walking
// the tour applies and rolls back actions in place, visiting every
// leaf in DFS order. The road is the common action prefix of all
// leaves; it is applied to the state permanently, and the tour starts
// from root+road.
type TourTree[A comparable, C game.Cost, E game.Evaluator[C], H game.Hash] struct {
	state    game.BeamState[A, C, E, H]
	road     []A
	currTour []edge[A]
	nextTour []edge[A]
	leaves   []vertex[C, E, H]
	buckets  [][]int
}

// NewTourTree takes exclusive ownership of state.
func NewTourTree[A comparable, C game.Cost, E game.Evaluator[C], H game.Hash](state game.BeamState[A, C, E, H], beamWidth int) *TourTree[A, C, E, H] {
	return &TourTree[A, C, E, H]{
		state:   state,
		buckets: make([][]int, beamWidth),
	}
}

// DFS walks the tour, expanding every leaf into the selector. On an
// empty tour (turn zero) it expands the root. The state ends the walk
// back in its starting configuration.
func (t *TourTree[A, C, E, H]) DFS(selector *Selector[A, C, E, H]) {
	if len(t.currTour) == 0 {
		eval, hash := t.state.MakeInitialNode()
		t.state.Expand(eval, hash, func(a A, e E, h H, finished bool) {
			selector.Push(a, e, h, 0, finished)
		})
		return
	}
	for _, ed := range t.currTour {
		switch {
		case ed.tag >= 0:
			t.state.Apply(ed.action)
			leaf := t.leaves[ed.tag]
			parent := ed.tag
			t.state.Expand(leaf.eval, leaf.hash, func(a A, e E, h H, finished bool) {
				selector.Push(a, e, h, parent, finished)
			})
			t.state.Rollback(ed.action)
		case ed.tag == tagDescend:
			t.state.Apply(ed.action)
		default:
			t.state.Rollback(ed.action)
		}
	}
}

// Update rewrites the tour so the chosen candidates become the new
// frontier. Old leaves with no surviving child disappear, and subtrees
// emptied by that are pruned. While the tour opens with a single-child
// chain (a lone descend matching the final ascend) the chain is moved
// onto the road instead: the action is applied to the state for good,
// shrinking every later tour. That step relies on the tour being a
// true chain above the frontier, which holds by construction.
func (t *TourTree[A, C, E, H]) Update(candidates []Candidate[A, C, E, H]) {
	t.leaves = t.leaves[:0]

	if len(t.currTour) == 0 {
		for _, c := range candidates {
			t.currTour = append(t.currTour, edge[A]{tag: len(t.leaves), action: c.Action})
			t.leaves = append(t.leaves, vertex[C, E, H]{eval: c.Eval, hash: c.Hash})
		}
		return
	}

	for i, c := range candidates {
		t.buckets[c.Parent] = append(t.buckets[c.Parent], i)
	}

	pos := 0
	for t.currTour[pos].tag == tagDescend && t.currTour[pos].action == t.currTour[len(t.currTour)-1].action {
		a := t.currTour[pos].action
		pos++
		t.state.Apply(a)
		t.road = append(t.road, a)
		t.currTour = t.currTour[:len(t.currTour)-1]
	}

	for ; pos < len(t.currTour); pos++ {
		ed := t.currTour[pos]
		switch {
		case ed.tag >= 0:
			bucket := t.buckets[ed.tag]
			if len(bucket) == 0 {
				continue // dead leaf
			}
			t.nextTour = append(t.nextTour, edge[A]{tag: tagDescend, action: ed.action})
			for _, i := range bucket {
				t.nextTour = append(t.nextTour, edge[A]{tag: len(t.leaves), action: candidates[i].Action})
				t.leaves = append(t.leaves, vertex[C, E, H]{eval: candidates[i].Eval, hash: candidates[i].Hash})
			}
			t.buckets[ed.tag] = bucket[:0]
			t.nextTour = append(t.nextTour, edge[A]{tag: tagAscend, action: ed.action})
		case ed.tag == tagDescend:
			t.nextTour = append(t.nextTour, ed)
		case t.nextTour[len(t.nextTour)-1].tag == tagDescend:
			// The subtree under this descend lost all leaves; prune it.
			t.nextTour = t.nextTour[:len(t.nextTour)-1]
		default:
			t.nextTour = append(t.nextTour, edge[A]{tag: tagAscend, action: ed.action})
		}
	}
	t.currTour, t.nextTour = t.nextTour, t.currTour[:0]
}

// Restore reconstructs the action path from the root to leaf parent:
// the road followed by the tour prefix that reaches the leaf. turn is
// the expected path length and only sizes the result. An unknown leaf
// yields nil.
func (t *TourTree[A, C, E, H]) Restore(parent, turn int) []A {
	path := make([]A, 0, turn)
	path = append(path, t.road...)
	for _, ed := range t.currTour {
		switch {
		case ed.tag >= 0:
			if ed.tag == parent {
				return append(path, ed.action)
			}
		case ed.tag == tagDescend:
			path = append(path, ed.action)
		default:
			path = path[:len(path)-1]
		}
	}
	return nil
}

// Road returns the permanent common prefix of every live leaf.
func (t *TourTree[A, C, E, H]) Road() []A {
	return t.road
}

// rollbackRoad undoes the road so the state returns to the root
// configuration before the search hands it back.
func (t *TourTree[A, C, E, H]) rollbackRoad() {
	for i := len(t.road) - 1; i >= 0; i-- {
		t.state.Rollback(t.road[i])
	}
}
