// Package workload generates the deterministic operation streams the
// benchmark harness feeds to the trees. Every stream starts by inserting the
// keys 0..size-1 and then issues queries; the same seed always yields the
// same stream.
package workload

import (
	"math/rand"

	"github.com/cornelk/hashmap"
)

// Kind of an operation.
type Kind uint8

const (
	Insert Kind = iota
	Find        // lower bound lookup of A
	Select      // key of rank A
	Sum         // sum of the keys in [A, B]
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Find:
		return "find"
	case Select:
		return "select"
	case Sum:
		return "sum"
	}
	return "unknown"
}

// Op is one step of a workload. B is only used by Sum.
type Op struct {
	Kind Kind
	A, B int
}

// Generator builds workloads from a seeded source. Not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// New Generator seeded with seed; the default runs use 0.
func New(seed int64) *Generator {
	return &Generator{rand.New(rand.NewSource(seed))}
}

func (g *Generator) shuffledInserts(size, extra int) []Op {
	ops := make([]Op, size, size+extra)
	for i, k := range g.rnd.Perm(size) {
		ops[i] = Op{Kind: Insert, A: k}
	}
	return ops
}

// Random inserts 0..size-1 in random order, then looks up accesses uniform keys.
func (g *Generator) Random(size, accesses int) []Op {
	ops := g.shuffledInserts(size, accesses)
	for range accesses {
		ops = append(ops, Op{Kind: Find, A: g.rnd.Intn(size)})
	}
	return ops
}

// Sequential inserts 0..size-1 in ascending order, the adversarial case for
// an unbalanced tree, then looks up accesses uniform keys.
func (g *Generator) Sequential(size, accesses int) []Op {
	ops := make([]Op, 0, size+accesses)
	for k := range size {
		ops = append(ops, Op{Kind: Insert, A: k})
	}
	for range accesses {
		ops = append(ops, Op{Kind: Find, A: g.rnd.Intn(size)})
	}
	return ops
}

// Gradual inserts in random order, then looks up every key in ascending order,
// cycles times.
func (g *Generator) Gradual(size, cycles int) []Op {
	ops := g.shuffledInserts(size, size*cycles)
	for range cycles {
		for k := range size {
			ops = append(ops, Op{Kind: Find, A: k})
		}
	}
	return ops
}

// Cache inserts in random order, picks subset distinct keys and looks up
// accesses keys drawn from that subset only.
func (g *Generator) Cache(size, subset, accesses int) []Op {
	subset = min(subset, size)
	ops := g.shuffledInserts(size, accesses)
	if subset <= 0 {
		return ops
	}
	seen := hashmap.New[int, struct{}]()
	picked := make([]int, 0, subset)
	for len(picked) < subset {
		if k := g.rnd.Intn(size); seen.Insert(k, struct{}{}) {
			picked = append(picked, k)
		}
	}
	for range accesses {
		ops = append(ops, Op{Kind: Find, A: picked[g.rnd.Intn(subset)]})
	}
	return ops
}

// Selects inserts in random order, then asks for queries uniform ranks.
func (g *Generator) Selects(size, queries int) []Op {
	ops := g.shuffledInserts(size, queries)
	for range queries {
		ops = append(ops, Op{Kind: Select, A: g.rnd.Intn(size)})
	}
	return ops
}

// Ranges inserts in random order, then asks for queries sums over uniform
// [lo, hi] ranges.
func (g *Generator) Ranges(size, queries int) []Op {
	ops := g.shuffledInserts(size, queries)
	for range queries {
		lo, hi := g.rnd.Intn(size), g.rnd.Intn(size)
		if hi < lo {
			lo, hi = hi, lo
		}
		ops = append(ops, Op{Kind: Sum, A: lo, B: hi})
	}
	return ops
}

// Count the operations of kind k.
func Count(ops []Op, k Kind) int {
	n := 0
	for _, o := range ops {
		if o.Kind == k {
			n++
		}
	}
	return n
}
