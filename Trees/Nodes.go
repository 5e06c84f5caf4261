package Trees

import "golang.org/x/exp/constraints"

// Node is a vertex of a DAST or AugDAST. It is also the handle returned by the
// lookup receivers and consumed by Remove and RangeSum.
// A node owns its two children; parent is a back reference.
// sz and sum are only maintained by augmented trees.
type Node[K constraints.Integer] struct {
	parent *Node[K]
	child  [2]*Node[K]
	key    K
	sz     int
	sum    int64
}

func newNode[K constraints.Integer](key K) *Node[K] {
	return &Node[K]{key: key, sz: 1, sum: int64(key)}
}

// Key held by the node. It never changes.
func (u *Node[K]) Key() K {
	return u.key
}

func (u *Node[K]) Left() *Node[K] {
	return u.child[0]
}

func (u *Node[K]) Right() *Node[K] {
	return u.child[1]
}

func (u *Node[K]) Parent() *Node[K] {
	return u.parent
}

// Size of the subtree rooted at u. Only maintained by AugDAST.
func (u *Node[K]) Size() int {
	return u.sz
}

// Sum of the keys in the subtree rooted at u. Only maintained by AugDAST.
func (u *Node[K]) Sum() int64 {
	return u.sum
}

// setChild sets child i of u to c and points c back to u.
func (u *Node[K]) setChild(i int, c *Node[K]) {
	u.child[i] = c
	if c != nil {
		c.parent = u
	}
}

// parentIndex is -1 for a root, otherwise the slot of u in its parent.
func (u *Node[K]) parentIndex() int {
	if u.parent == nil {
		return -1
	}
	if u.parent.child[1] == u {
		return 1
	}
	return 0
}

// join recomputes the aggregates of u from its children.
// Time: O(1)
func (u *Node[K]) join() {
	u.sz = sizeOf(u.child[0]) + sizeOf(u.child[1]) + 1
	u.sum = sumOf(u.child[0]) + sumOf(u.child[1]) + int64(u.key)
}

// sever drops every link of a removed node.
func (u *Node[K]) sever() {
	u.parent, u.child[0], u.child[1] = nil, nil, nil
	u.sz, u.sum = 1, int64(u.key)
}

func sizeOf[K constraints.Integer](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.sz
}

func sumOf[K constraints.Integer](n *Node[K]) int64 {
	if n == nil {
		return 0
	}
	return n.sum
}
