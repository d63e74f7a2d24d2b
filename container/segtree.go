package container

import "fmt"

// Monoid is an associative operation with identity, the reduction a
// SegmentTree maintains over its leaves.
type Monoid[S any] interface {
	Op(a, b S) S
	Identity() S
}

// SegmentTree is an iterative segment tree over n leaves with
// point update and range reduction, both O(log n). Leaves past n hold
// the identity.
type SegmentTree[S any, M Monoid[S]] struct {
	n    int
	size int
	m    M
	seg  []S
}

// NewSegmentTree returns a tree of n identity leaves.
func NewSegmentTree[S any, M Monoid[S]](m M, n int) *SegmentTree[S, M] {
	size := 1
	for size < n {
		size <<= 1
	}
	seg := make([]S, 2*size)
	for i := range seg {
		seg[i] = m.Identity()
	}
	return &SegmentTree[S, M]{n: n, size: size, m: m, seg: seg}
}

// NewSegmentTreeFrom returns a tree built over v.
func NewSegmentTreeFrom[S any, M Monoid[S]](m M, v []S) *SegmentTree[S, M] {
	st := NewSegmentTree[S, M](m, len(v))
	st.Build(v)
	return st
}

// Build loads all n leaves at once and recomputes every internal node.
func (st *SegmentTree[S, M]) Build(v []S) {
	if len(v) != st.n {
		panic(fmt.Sprintf("segment tree: build with %d values, want %d", len(v), st.n))
	}
	for k := 0; k < st.n; k++ {
		st.seg[k+st.size] = v[k]
	}
	for k := st.size - 1; k > 0; k-- {
		st.seg[k] = st.m.Op(st.seg[2*k], st.seg[2*k+1])
	}
}

// Set assigns leaf k and updates its ancestors.
func (st *SegmentTree[S, M]) Set(k int, x S) {
	k += st.size
	st.seg[k] = x
	for k >>= 1; k > 0; k >>= 1 {
		st.seg[k] = st.m.Op(st.seg[2*k], st.seg[2*k+1])
	}
}

// Get returns leaf k.
func (st *SegmentTree[S, M]) Get(k int) S {
	return st.seg[k+st.size]
}

// Prod reduces the half-open range [l, r).
func (st *SegmentTree[S, M]) Prod(l, r int) S {
	if l >= r {
		return st.m.Identity()
	}
	left, right := st.m.Identity(), st.m.Identity()
	for l, r = l+st.size, r+st.size; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			left = st.m.Op(left, st.seg[l])
			l++
		}
		if r&1 == 1 {
			r--
			right = st.m.Op(st.seg[r], right)
		}
	}
	return st.m.Op(left, right)
}

// AllProd reduces the whole tree.
func (st *SegmentTree[S, M]) AllProd() S {
	return st.seg[1]
}

// FindFirst returns the first index i >= l such that check holds on
// the reduction of [l, i], or n if no such index exists. check must be
// monotone: once true on a prefix it stays true on longer ones.
func (st *SegmentTree[S, M]) FindFirst(l int, check func(S) bool) int {
	if l >= st.n {
		return st.n
	}
	l += st.size
	sum := st.m.Identity()
	for {
		for l&1 == 0 {
			l >>= 1
		}
		if check(st.m.Op(sum, st.seg[l])) {
			for l < st.size {
				l <<= 1
				if next := st.m.Op(sum, st.seg[l]); !check(next) {
					sum = next
					l++
				}
			}
			return l - st.size
		}
		sum = st.m.Op(sum, st.seg[l])
		l++
		if l&-l == l {
			return st.n
		}
	}
}

// FindLast returns the last index i < r such that check holds on the
// reduction of [i, r), or -1 if no such index exists.
func (st *SegmentTree[S, M]) FindLast(r int, check func(S) bool) int {
	if r <= 0 {
		return -1
	}
	r += st.size
	sum := st.m.Identity()
	for {
		r--
		for r > 1 && r&1 == 1 {
			r >>= 1
		}
		if check(st.m.Op(st.seg[r], sum)) {
			for r < st.size {
				r = 2*r + 1
				if next := st.m.Op(st.seg[r], sum); !check(next) {
					sum = next
					r--
				}
			}
			return r - st.size
		}
		sum = st.m.Op(st.seg[r], sum)
		if r&-r == r {
			return -1
		}
	}
}
