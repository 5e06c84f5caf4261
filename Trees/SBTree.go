package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the SBTree
// The zero value is meaningless.
type sbNode[K constraints.Integer] struct {
	v    K
	l, r *sbNode[K]
	sz   int
}

// rotateLeft performs a left rotation on n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[K constraints.Integer](n **sbNode[K]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	rc.sz = r.sz
	r.sz = r.l.sz + r.r.sz + 1
	*n = rc
}

// rotateRight performs a right rotation on n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateRight[K constraints.Integer](n **sbNode[K]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	lc.sz = r.sz
	r.sz = r.l.sz + r.r.sz + 1
	*n = lc
}

// SBTree is a size balanced binary search tree over integer keys that allows
// repeated keys. It keeps balance through rotations by comparing the sizes of
// subtrees, which also makes it an order statistic tree: rank and select run
// in O(D) with D=O(log n).
// It never restructures on lookups, which makes it the balanced reference
// point DAST is measured against.
// nilPtr is a sentinel used instead of nil: its l and r point to itself and
// its sz is 0.
// Insert and Remove are recursive, with recursion depth bounded by the height.
type SBTree[K constraints.Integer] struct {
	root   *sbNode[K]
	nilPtr *sbNode[K]
}

// NewSB returns an empty SBTree.
// SBTree shouldn't be created directly using struct literal.
func NewSB[K constraints.Integer]() *SBTree[K] {
	z := new(sbNode[K])
	z.l, z.r = z, z
	return &SBTree[K]{z, z}
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *SBTree[K]) Size() int {
	return u.root.sz
}

// Clear drops every node.
// Time: O(1)
func (u *SBTree[K]) Clear() {
	u.root = u.nilPtr
}

// maintain the subtree rooting at cur recursively to satisfy the SBTree properties
// using rotateLeft and rotateRight.
// rightBigger indicates whether the right subtree may have become larger than the left,
// this is for removing redundant size comparisons.
// curPtr is passed by reference.
// Time: amortized O(1)
func (u *SBTree[K]) maintain(curPtr **sbNode[K], rightBigger bool) {
	cur := *curPtr
	if rc, lc := cur.r, cur.l; rightBigger {
		if rc.r.sz > lc.sz {
			rotateLeft(curPtr)
		} else if rc.l.sz > lc.sz {
			rotateRight(&cur.r)
			rotateLeft(curPtr)
		} else {
			return
		}
	} else {
		if lc.l.sz > rc.sz {
			rotateRight(curPtr)
		} else if lc.r.sz > rc.sz {
			rotateLeft(&cur.l)
			rotateRight(curPtr)
		} else {
			return
		}
	}
	top := *curPtr
	u.maintain(&top.l, false)
	u.maintain(&top.r, true)
	u.maintain(curPtr, false)
	u.maintain(curPtr, true)
}

// insert v into the subtree rooting at cur recursively. Equal keys go right.
func (u *SBTree[K]) insert(curPtr **sbNode[K], v K) {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &sbNode[K]{v, u.nilPtr, u.nilPtr, 1}
	} else {
		cur.sz++
		if v < cur.v {
			u.insert(&cur.l, v)
			u.maintain(curPtr, false)
		} else {
			u.insert(&cur.r, v)
			u.maintain(curPtr, true)
		}
	}
}

// Insert v. Recursive.
// Time: O(log n)
func (u *SBTree[K]) Insert(v K) {
	u.insert(&u.root, v)
}

// remove one copy of v from the subtree rooting at cur recursively. Returns
// false if v isn't there. Removal doesn't call
// maintain; the height recovers on later insertions.
func (u *SBTree[K]) remove(curPtr **sbNode[K], v K) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		return false
	}
	deleted := false
	if v < cur.v {
		deleted = u.remove(&cur.l, v)
	} else if v > cur.v {
		deleted = u.remove(&cur.r, v)
	} else {
		deleted = true
		if cur.l == u.nilPtr {
			*curPtr = cur.r
			return true
		} else if cur.r == u.nilPtr {
			*curPtr = cur.l
			return true
		}
		t := &cur.r
		for (*t).l != u.nilPtr {
			(*t).sz--
			t = &(*t).l
		}
		cur.v = (*t).v
		*t = (*t).r
	}
	if deleted {
		cur.sz--
	}
	return deleted
}

// Remove one copy of v. Recursive.
// Time: O(D)
func (u *SBTree[K]) Remove(v K) bool {
	return u.remove(&u.root, v)
}

// LowerBound returns the smallest key >= v.
// Time: O(D); Space: O(1)
func (u *SBTree[K]) LowerBound(v K) (K, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if cur.v < v {
			cur = cur.r
		} else {
			p = cur
			cur = cur.l
		}
	}
	return p.v, p != u.nilPtr
}

// OrderOfKey is the number of keys strictly less than v.
// Time: O(D); Space: O(1)
func (u *SBTree[K]) OrderOfKey(v K) int {
	ra := 0
	for cur := u.root; cur != u.nilPtr; {
		if cur.v < v {
			ra += cur.l.sz + 1
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return ra
}

// Select the key of rank k, starting from 0.
// Time: O(D); Space: O(1)
func (u *SBTree[K]) Select(k int) (K, error) {
	if k < 0 || k >= u.root.sz {
		return *new(K), &IndexOutOfRangeError{k, u.root.sz}
	}
	cur := u.root
	for {
		if k < cur.l.sz {
			cur = cur.l
		} else if k > cur.l.sz {
			k -= cur.l.sz + 1
			cur = cur.r
		} else {
			return cur.v, nil
		}
	}
}

// SumBetween returns the sum of the keys in [lo, hi] by walking them in
// order. SBTree keeps no sums, this is the linear reference.
// Time: O(D+m) for m keys in range.
func (u *SBTree[K]) SumBetween(lo, hi K) int64 {
	var s int64
	u.ascend(u.root, lo, hi, &s)
	return s
}

func (u *SBTree[K]) ascend(c *sbNode[K], lo, hi K, s *int64) {
	if c == u.nilPtr {
		return
	}
	if lo <= c.v {
		u.ascend(c.l, lo, hi, s)
	}
	if lo <= c.v && c.v <= hi {
		*s += int64(c.v)
	}
	if c.v <= hi {
		u.ascend(c.r, lo, hi, s)
	}
}

func (u *SBTree[K]) height(c *sbNode[K]) int {
	if c == u.nilPtr {
		return 0
	}
	return max(u.height(c.l), u.height(c.r)) + 1
}

// Height of the tree, 0 when empty. Recursive.
func (u *SBTree[K]) Height() int {
	return u.height(u.root)
}

// InOrder calls f on the keys in ascending order until f returns false.
// Morris traversal: temporarily threads the tree, so it must not be
// interrupted by modifications.
// Time: O(n); Space: O(1)
func (u *SBTree[K]) InOrder(f func(K) bool) {
	cur, stop := u.root, false
	for cur != u.nilPtr {
		if cur.l == u.nilPtr {
			if !stop && !f(cur.v) {
				stop = true
			}
			cur = cur.r
			continue
		}
		p := cur.l
		for p.r != u.nilPtr && p.r != cur {
			p = p.r
		}
		if p.r != cur {
			p.r = cur
			cur = cur.l
		} else {
			p.r = u.nilPtr
			if !stop && !f(cur.v) {
				stop = true
			}
			cur = cur.r
		}
	}
}
