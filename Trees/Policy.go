package Trees

import (
	"math"
	"math/bits"
)

// Policy returns the longest search path a tree of the given size tolerates
// before the accessed node is splayed. A path of length d triggers a splay iff
// d > Policy(size). Path length counts the nodes examined by the descent, so
// for an insertion it equals the depth of the new node.
// A Policy should be monotone in size; it is not required for correctness.
type Policy func(size int) int

// DefaultPolicy is LogPolicy(1.6, 4): Θ(log n), never below 4.
var DefaultPolicy = LogPolicy(1.6, 4)

// LogPolicy returns max(floor, ⌊factor·log2(size)⌋).
func LogPolicy(factor float64, floor int) Policy {
	return func(size int) int {
		if size < 2 {
			return floor
		}
		return max(floor, int(factor*math.Log2(float64(size))))
	}
}

// DoublingPolicy returns max(floor, 2·⌊log2(size)⌋). The threshold grows by 2
// each time the tree doubles in size.
func DoublingPolicy(floor int) Policy {
	return func(size int) int {
		if size < 1 {
			return floor
		}
		return max(floor, (bits.Len(uint(size))-1)<<1)
	}
}

// FixedPolicy ignores the size. Used for threshold sweeps.
func FixedPolicy(threshold int) Policy {
	return func(int) int {
		return threshold
	}
}

// AlwaysSplay turns a DAST into a classical splay tree.
func AlwaysSplay(int) int {
	return -1
}

// NeverSplay turns a DAST into an unbalanced BST for lookups and insertions.
// Removal still splays.
func NeverSplay(int) int {
	return math.MaxInt
}
