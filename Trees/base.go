package Trees

import (
	"github.com/g-m-twostay/dast/Queues"
	"golang.org/x/exp/constraints"
)

// base holds what DAST and AugDAST share: the rotation primitive, splaying,
// the descents that only differ in what they hand back, and removal.
// When aug is false the aggregates of the nodes are left untouched.
type base[K constraints.Integer] struct {
	root   *Node[K]
	size   int
	policy Policy
	aug    bool
	stats  Stats
}

func (u *base[K]) init(p Policy, aug bool) {
	if p == nil {
		p = DefaultPolicy
	}
	u.policy, u.aug = p, aug
}

// setRoot makes x the root. x may be nil.
func (u *base[K]) setRoot(x *Node[K]) {
	if x != nil {
		x.parent = nil
	}
	u.root = x
}

// rotateUp promotes x above its parent p. x takes p's place, p becomes the
// child of x on the side x vacated and x's inner child moves to p.
// Only p is re-joined; x's children change again in the next step of a splay.
// Time: O(1); Space: O(1)
func (u *base[K]) rotateUp(x *Node[K]) {
	p := x.parent
	gp := p.parent
	i := x.parentIndex()
	if gp != nil {
		gp.setChild(p.parentIndex(), x)
	} else {
		u.setRoot(x)
	}
	p.setChild(i, x.child[1-i])
	x.setChild(1-i, p)
	if u.aug {
		p.join()
	}
	u.stats.Rotations++
}

// splay x to the top of the tree containing it. For a node of a detached
// subtree this is the root of that subtree.
// Time: amortized O(log n)
func (u *base[K]) splay(x *Node[K]) {
	for x.parent != nil {
		if p := x.parent; p.parent != nil {
			if x.parentIndex() == p.parentIndex() {
				u.rotateUp(p) //zig-zig
			} else {
				u.rotateUp(x) //zig-zag
			}
		}
		u.rotateUp(x)
	}
	if u.aug {
		x.join()
	}
	u.stats.Splays++
}

// Threshold is the path length tolerated at the current size.
func (u *base[K]) Threshold() int {
	return u.policy(u.size)
}

// settle splays x if a descent of length pathLen was too long. Returns whether
// it splayed.
func (u *base[K]) settle(x *Node[K], pathLen int) bool {
	u.stats.PathLength += uint64(pathLen)
	if x != nil && pathLen > u.policy(u.size) {
		u.splay(x)
		return true
	}
	return false
}

// Insert [Index.Insert]
// Time: amortized O(log n) under any Θ(log n) policy.
func (u *base[K]) Insert(key K) {
	u.size++
	u.stats.Inserts++
	x := newNode(key)
	if u.root == nil {
		u.setRoot(x)
		return
	}
	cur, prev, d := u.root, (*Node[K])(nil), 0
	for cur != nil {
		d++
		prev = cur
		cur = cur.child[b2i(cur.key <= key)]
	}
	prev.setChild(b2i(prev.key <= key), x)
	if !u.settle(x, d) && u.aug {
		for n := prev; n != nil; n = n.parent {
			n.join()
		}
	}
}

// LowerBound [Index.LowerBound]
// Time: O(D)
func (u *base[K]) LowerBound(key K) *Node[K] {
	u.stats.Lookups++
	var ans *Node[K]
	d := 0
	for cur := u.root; cur != nil; {
		d++
		if cur.key < key {
			cur = cur.child[1]
		} else {
			ans = cur
			cur = cur.child[0]
		}
	}
	u.settle(ans, d)
	return ans
}

// Floor [Index.Floor]
// Time: O(D)
func (u *base[K]) Floor(key K) *Node[K] {
	u.stats.Lookups++
	var ans *Node[K]
	d := 0
	for cur := u.root; cur != nil; {
		d++
		if key < cur.key {
			cur = cur.child[0]
		} else {
			ans = cur
			cur = cur.child[1]
		}
	}
	u.settle(ans, d)
	return ans
}

// Remove [Index.Remove]
// n is always splayed to the root first; its predecessor is then splayed to
// the top of the left subtree and adopts the right subtree.
// Time: amortized O(log n)
func (u *base[K]) Remove(n *Node[K]) {
	if n == nil {
		return
	}
	u.size--
	u.stats.Removals++
	u.splay(n)
	l, r := n.child[0], n.child[1]
	if l != nil {
		l.parent = nil
	}
	if r != nil {
		r.parent = nil
	}
	n.sever()
	if l == nil {
		u.setRoot(r)
		return
	}
	m := l
	for m.child[1] != nil {
		m = m.child[1]
	}
	u.splay(m)
	m.setChild(1, r)
	if u.aug {
		m.join()
	}
	u.setRoot(m)
}

// Clear [Index.Clear]
// The nodes are torn down iteratively through a queue so that no
// recursion depth is tied to the shape of the tree.
// Time: O(n)
func (u *base[K]) Clear() {
	if u.root != nil {
		q := Queues.MakeArrayQueue[*Node[K]](64)
		q.Push(u.root)
		for !q.Empty() {
			n, _ := q.Pop()
			for _, c := range n.child {
				if c != nil {
					q.Push(c)
				}
			}
			n.sever()
		}
	}
	u.root, u.size = nil, 0
}

// Size [Index.Size]
func (u *base[K]) Size() int {
	return u.size
}

// Root of the tree, nil when empty.
func (u *base[K]) Root() *Node[K] {
	return u.root
}

func (u *base[K]) Policy() Policy {
	return u.policy
}

// SetPolicy replaces the threshold policy. nil restores DefaultPolicy.
func (u *base[K]) SetPolicy(p Policy) {
	if p == nil {
		p = DefaultPolicy
	}
	u.policy = p
}

func (u *base[K]) Stats() Stats {
	return u.stats
}

func (u *base[K]) ResetStats() {
	u.stats = Stats{}
}

// Min returns the node with the smallest key without restructuring.
// Time: O(D)
func (u *base[K]) Min() *Node[K] {
	return u.extreme(0)
}

// Max returns the node with the largest key without restructuring.
// Time: O(D)
func (u *base[K]) Max() *Node[K] {
	return u.extreme(1)
}

func (u *base[K]) extreme(side int) *Node[K] {
	cur := u.root
	if cur != nil {
		for cur.child[side] != nil {
			cur = cur.child[side]
		}
	}
	return cur
}

// Depth of n, the number of edges between n and the root.
// Time: O(D)
func (u *base[K]) Depth(n *Node[K]) int {
	d := 0
	for ; n != nil && n.parent != nil; n = n.parent {
		d++
	}
	return d
}

// Height of the tree, 0 when empty. Iterative level-order walk.
// Time: O(n); Space: O(width)
func (u *base[K]) Height() int {
	if u.root == nil {
		return 0
	}
	h := 0
	q := Queues.MakeArrayQueue[*Node[K]](64)
	q.Push(u.root)
	for !q.Empty() {
		h++
		for lvl := q.Size(); lvl > 0; lvl-- {
			n, _ := q.Pop()
			for _, c := range n.child {
				if c != nil {
					q.Push(c)
				}
			}
		}
	}
	return h
}

// next returns the in-order successor of n, nil after the maximum.
func next[K constraints.Integer](n *Node[K]) *Node[K] {
	if n.child[1] != nil {
		n = n.child[1]
		for n.child[0] != nil {
			n = n.child[0]
		}
		return n
	}
	for n.parent != nil && n.parentIndex() == 1 {
		n = n.parent
	}
	return n.parent
}

// InOrder [Index.InOrder]
// Walks parent links, so it needs no stack and never restructures.
// Time: O(n) in total; Space: O(1)
func (u *base[K]) InOrder(f func(K) bool) {
	for n := u.extreme(0); n != nil; n = next(n) {
		if !f(n.key) {
			return
		}
	}
}

// Check [Index.Check]
// Time: O(n)
func (u *base[K]) Check() error {
	if u.root != nil && u.root.parent != nil {
		return &CorruptError{"root has a parent", u.root.key}
	}
	count := 0
	var prev *Node[K]
	for n := u.extreme(0); n != nil; n = next(n) {
		count++
		if count > u.size {
			return &CorruptError{"more nodes than size", n.key}
		}
		if prev != nil && n.key < prev.key {
			return &CorruptError{"in-order keys decrease", n.key}
		}
		for i, c := range n.child {
			if c != nil && (c.parent != n || c.parentIndex() != i) {
				return &CorruptError{"child does not point back to parent", c.key}
			}
		}
		if u.aug {
			if n.sz != sizeOf(n.child[0])+sizeOf(n.child[1])+1 {
				return &CorruptError{"stale subtree size", n.key}
			}
			if n.sum != sumOf(n.child[0])+sumOf(n.child[1])+int64(n.key) {
				return &CorruptError{"stale subtree sum", n.key}
			}
		}
		prev = n
	}
	if count != u.size {
		return &CorruptError{"fewer nodes than size", count}
	}
	if u.aug && sizeOf(u.root) != u.size {
		return &CorruptError{"root size differs from size", sizeOf(u.root)}
	}
	return nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
