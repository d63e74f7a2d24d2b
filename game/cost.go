package game

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Cost is any signed numeric score type. Searches order candidates by
// cost; the negamax drivers additionally negate it on recursion, so
// unsigned types are excluded.
type Cost interface {
	constraints.Signed | constraints.Float
}

// Hash is an unsigned integer state fingerprint.
type Hash interface {
	constraints.Unsigned
}

// MinCost returns the minimum value of C: -Inf for floats, the most
// negative integer otherwise. It is the sentinel below every real cost.
func MinCost[C Cost]() C {
	if C(1)/C(2) != 0 {
		return C(math.Inf(-1))
	}
	bits := uint(unsafe.Sizeof(C(0)) * 8)
	return C(-(int64(1) << (bits - 1)))
}

// MaxCost returns the maximum value of C.
func MaxCost[C Cost]() C {
	if C(1)/C(2) != 0 {
		return C(math.Inf(1))
	}
	bits := uint(unsafe.Sizeof(C(0)) * 8)
	return C(int64(1)<<(bits-1) - 1)
}
