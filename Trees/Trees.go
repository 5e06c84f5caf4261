package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Index is an ordered multiset of integer keys that hands out node handles.
// Lookups may restructure the tree, so every receiver, including the read
// only looking ones, needs exclusive access. Implementations aren't safe for
// concurrent use; callers sharing a tree must lock around it.
// A nil *Node[K] stands for "absent" everywhere a handle is returned.
type Index[K constraints.Integer] interface {
	//Insert key. Equal keys are kept, each in its own node.
	Insert(key K)
	//LowerBound returns the node with the smallest key >= key, or nil.
	LowerBound(key K) *Node[K]
	//Floor returns the node with the largest key <= key, or nil.
	Floor(key K) *Node[K]
	//Remove the node n. n must be nil or a live node of this tree; nil is a no-op.
	Remove(n *Node[K])
	//Clear the tree. Handles obtained before are invalidated.
	Clear()
	//Size is the number of keys in the tree.
	Size() int
	//InOrder calls f on the keys in ascending order until f returns false.
	//The tree must not be modified during the iteration.
	InOrder(f func(K) bool)
	//Check returns a non nil error describing the first broken invariant.
	Check() error
}

// OrderStatIndex is an Index that answers rank, select and range sum queries.
type OrderStatIndex[K constraints.Integer] interface {
	Index[K]
	//OrderOfKey is the number of keys strictly less than key.
	OrderOfKey(key K) int
	//NodeAtIndex returns the node of rank i, 0<=i<Size().
	NodeAtIndex(i int) (*Node[K], error)
	//RangeSum of the keys in [l.Key(), r.Key()].
	RangeSum(l, r *Node[K]) int64
}

var (
	_ Index[int]          = (*DAST[int])(nil)
	_ OrderStatIndex[int] = (*AugDAST[int])(nil)
)

// IndexOutOfRangeError is returned when a rank outside [0, Size) is requested.
type IndexOutOfRangeError struct {
	Index, Size int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

// CorruptError describes a broken structural invariant found by Check.
type CorruptError struct {
	Invariant string
	Key       any
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("tree is corrupt: %s at key %v", e.Invariant, e.Key)
}

// Stats counts the work a tree has done since creation or the last ResetStats.
type Stats struct {
	Inserts, Lookups, Removals uint64
	//PathLength is the total number of nodes examined by insert and lookup descents.
	PathLength uint64
	//Splays counts splay-to-root events, including the ones removal forces.
	Splays uint64
	//Rotations counts single rotations.
	Rotations uint64
}

// AvgLookupDepth is PathLength divided by the number of descents.
func (s Stats) AvgLookupDepth() float64 {
	if n := s.Inserts + s.Lookups; n > 0 {
		return float64(s.PathLength) / float64(n)
	}
	return 0
}
