package Trees

import "golang.org/x/exp/constraints"

// AugDAST is a DAST whose nodes also carry the size and the key sum of their
// subtrees. Every rotation re-joins the demoted node, splaying re-joins the
// promoted one at the end, and insertions without a splay re-join the
// ancestors of the new node, so both aggregates hold at every node between
// operations.
// The zero value is not usable, create one with NewAug.
type AugDAST[K constraints.Integer] struct {
	base[K]
}

// NewAug AugDAST using policy p. nil means DefaultPolicy.
func NewAug[K constraints.Integer](p Policy) *AugDAST[K] {
	t := new(AugDAST[K])
	t.init(p, true)
	return t
}

// AugFrom builds an AugDAST by inserting the keys in the given order.
func AugFrom[K constraints.Integer](p Policy, keys ...K) *AugDAST[K] {
	t := NewAug[K](p)
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// OrderOfKey [OrderStatIndex.OrderOfKey]
// The descent is the one of LowerBound; the rank is accumulated on the way
// down, and the node LowerBound would return is splayed under the same rule.
// Returns Size() when every key is less than key.
// Time: O(D)
func (u *AugDAST[K]) OrderOfKey(key K) int {
	u.stats.Lookups++
	var ans *Node[K]
	d, rank := 0, 0
	for cur := u.root; cur != nil; {
		d++
		if cur.key < key {
			rank += sizeOf(cur.child[0]) + 1
			cur = cur.child[1]
		} else {
			ans = cur
			cur = cur.child[0]
		}
	}
	u.settle(ans, d)
	return rank
}

// NodeAtIndex [OrderStatIndex.NodeAtIndex]
// Ranks start from 0. Returns *IndexOutOfRangeError and leaves the tree
// untouched if i isn't in [0, Size()).
// Time: O(D)
func (u *AugDAST[K]) NodeAtIndex(i int) (*Node[K], error) {
	if i < 0 || i >= u.size {
		return nil, &IndexOutOfRangeError{i, u.size}
	}
	u.stats.Lookups++
	d := 0
	for cur := u.root; cur != nil; {
		d++
		if ls := sizeOf(cur.child[0]); i == ls {
			u.settle(cur, d)
			return cur, nil
		} else if i < ls {
			cur = cur.child[0]
		} else {
			i -= ls + 1
			cur = cur.child[1]
		}
	}
	return nil, &CorruptError{"subtree sizes disagree with size", i}
}

// RangeSum [OrderStatIndex.RangeSum]
// l and r are normally found by LowerBound or Floor. The result includes both
// l.Key() and r.Key(); if the keys are equal it is that key once. nil handles
// give 0. Handles that don't belong to this tree aren't detected and corrupt
// it.
// r is splayed to the root, then l to the root above it, which leaves r at
// most two levels below l on l's right; one more rotation makes r the right
// child of l so that r's left subtree holds exactly the keys strictly between
// the two.
// Time: amortized O(log n)
func (u *AugDAST[K]) RangeSum(l, r *Node[K]) int64 {
	if l == nil || r == nil {
		return 0
	}
	if l.key == r.key {
		return int64(l.key)
	}
	if r.key < l.key {
		l, r = r, l
	}
	u.splay(r)
	u.splay(l)
	if r.parent != l {
		u.rotateUp(r)
		r.join()
		l.join()
	}
	return sumOf(r.child[0]) + int64(l.key) + int64(r.key)
}

// SumBelow returns the sum of the keys less than key, or less than or equal
// to key when inclusive is set. The last node of the descent is splayed
// under the policy.
// Time: O(D)
func (u *AugDAST[K]) SumBelow(key K, inclusive bool) int64 {
	u.stats.Lookups++
	var last *Node[K]
	d, acc := 0, int64(0)
	for cur := u.root; cur != nil; {
		d++
		last = cur
		if cur.key < key || inclusive && cur.key == key {
			acc += sumOf(cur.child[0]) + int64(cur.key)
			cur = cur.child[1]
		} else {
			cur = cur.child[0]
		}
	}
	u.settle(last, d)
	return acc
}

// SumBetween returns the sum of the keys in [lo, hi], 0 if hi < lo.
// Unlike RangeSum it counts every copy of repeated keys.
// Time: O(D)
func (u *AugDAST[K]) SumBetween(lo, hi K) int64 {
	if hi < lo {
		return 0
	}
	return u.SumBelow(hi, true) - u.SumBelow(lo, false)
}
