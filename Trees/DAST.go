package Trees

import "golang.org/x/exp/constraints"

// DAST is a depth-aware splay tree: a splay tree that only splays the node an
// insertion or lookup reached when the search path was longer than the
// threshold its Policy gives for the current size. Short paths are left
// alone, long paths are collapsed, so the depth of a node reached without a
// splay is bounded by the threshold at the time of the access.
// Removal always splays.
//
// Equal keys are routed right on insertion, so the in-order sequence of keys
// is non-decreasing. A DAST keeps no aggregates; see AugDAST for rank, select
// and range sums.
// The zero value is not usable, create one with New.
type DAST[K constraints.Integer] struct {
	base[K]
}

// New DAST using policy p. nil means DefaultPolicy.
func New[K constraints.Integer](p Policy) *DAST[K] {
	t := new(DAST[K])
	t.init(p, false)
	return t
}

// NewSplayTree returns a classical splay tree: a DAST whose every insertion
// and successful lookup splays.
func NewSplayTree[K constraints.Integer]() *DAST[K] {
	return New[K](AlwaysSplay)
}

// From builds a DAST by inserting the keys in the given order.
func From[K constraints.Integer](p Policy, keys ...K) *DAST[K] {
	t := New[K](p)
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}
