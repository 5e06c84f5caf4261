package bench

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/dast/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Target is an ordered integer index the harness can drive.
type Target interface {
	Name() string
	Insert(k int)
	// Find returns the smallest key >= k.
	Find(k int) (int, bool)
	Len() int
	Clear()
}

// Selector is a Target answering select-by-rank.
type Selector interface {
	Select(i int) (int, bool)
}

// Summer is a Target answering inclusive range sums.
type Summer interface {
	SumRange(lo, hi int) int64
}

// Statser is a Target that reports structural statistics.
type Statser interface {
	Stats() Trees.Stats
	ResetStats()
}

// Factory creates an empty Target.
type Factory func() Target

// Factories by the names accepted on the command line.
var Factories = map[string]Factory{
	"dast":          func() Target { return NewDAST("dast", nil) },
	"dast-doubling": func() Target { return NewDAST("dast-doubling", Trees.DoublingPolicy(4)) },
	"splay":         func() Target { return NewDAST("splay", Trees.AlwaysSplay) },
	"aug":           func() Target { return NewAug("aug", nil) },
	"sbtree":        func() Target { return NewSB() },
	"rbtree":        func() Target { return NewRB() },
	"btree":         func() Target { return NewBTree(32) },
	"llrb":          func() Target { return NewLLRB() },
}

// Names of all registered factories, sorted.
func Names() []string {
	ns := make([]string, 0, len(Factories))
	for n := range Factories {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Lookup the factories for names.
func Lookup(names []string) ([]Factory, error) {
	fs := make([]Factory, 0, len(names))
	for _, n := range names {
		f, ok := Factories[n]
		if !ok {
			return nil, fmt.Errorf("unknown target %q, known: %v", n, Names())
		}
		fs = append(fs, f)
	}
	return fs, nil
}

type dastTarget struct {
	name string
	*Trees.DAST[int]
}

// NewDAST wraps a plain DAST with policy p.
func NewDAST(name string, p Trees.Policy) Target {
	return &dastTarget{name, Trees.New[int](p)}
}

func (u *dastTarget) Name() string { return u.name }
func (u *dastTarget) Len() int     { return u.Size() }

func (u *dastTarget) Find(k int) (int, bool) {
	if n := u.LowerBound(k); n != nil {
		return n.Key(), true
	}
	return 0, false
}

type augTarget struct {
	name string
	*Trees.AugDAST[int]
}

// NewAug wraps an AugDAST with policy p.
func NewAug(name string, p Trees.Policy) Target {
	return &augTarget{name, Trees.NewAug[int](p)}
}

func (u *augTarget) Name() string { return u.name }
func (u *augTarget) Len() int     { return u.Size() }

func (u *augTarget) Find(k int) (int, bool) {
	if n := u.LowerBound(k); n != nil {
		return n.Key(), true
	}
	return 0, false
}

func (u *augTarget) Select(i int) (int, bool) {
	n, err := u.NodeAtIndex(i)
	if err != nil {
		return 0, false
	}
	return n.Key(), true
}

// SumRange locates both bounds and exposes the range between them.
func (u *augTarget) SumRange(lo, hi int) int64 {
	r := u.Floor(hi)
	l := u.LowerBound(lo)
	if l == nil || r == nil || r.Key() < l.Key() {
		return 0
	}
	return u.RangeSum(l, r)
}

type sbTarget struct {
	*Trees.SBTree[int]
}

// NewSB wraps the size balanced order statistic tree.
func NewSB() Target {
	return &sbTarget{Trees.NewSB[int]()}
}

func (u *sbTarget) Name() string { return "sbtree" }
func (u *sbTarget) Len() int     { return u.Size() }

func (u *sbTarget) Find(k int) (int, bool) {
	return u.LowerBound(k)
}

func (u *sbTarget) Select(i int) (int, bool) {
	k, err := u.SBTree.Select(i)
	return k, err == nil
}

func (u *sbTarget) SumRange(lo, hi int) int64 {
	return u.SumBetween(lo, hi)
}

type rbTarget struct {
	t *redblacktree.Tree
}

// NewRB wraps a gods red-black tree keyed by int. Repeated keys collapse.
func NewRB() Target {
	return &rbTarget{redblacktree.NewWithIntComparator()}
}

func (u *rbTarget) Name() string { return "rbtree" }
func (u *rbTarget) Insert(k int) { u.t.Put(k, struct{}{}) }
func (u *rbTarget) Len() int     { return u.t.Size() }
func (u *rbTarget) Clear()       { u.t.Clear() }

func (u *rbTarget) Find(k int) (int, bool) {
	n, ok := u.t.Ceiling(k)
	if !ok {
		return 0, false
	}
	return n.Key.(int), true
}

type bTarget struct {
	t *btree.BTreeG[int]
}

// NewBTree wraps a google/btree of the given degree. Repeated keys collapse.
func NewBTree(degree int) Target {
	return &bTarget{btree.NewOrderedG[int](degree)}
}

func (u *bTarget) Name() string { return "btree" }
func (u *bTarget) Insert(k int) { u.t.ReplaceOrInsert(k) }
func (u *bTarget) Len() int     { return u.t.Len() }
func (u *bTarget) Clear()       { u.t.Clear(false) }

func (u *bTarget) Find(k int) (r int, ok bool) {
	u.t.AscendGreaterOrEqual(k, func(i int) bool {
		r, ok = i, true
		return false
	})
	return
}

func (u *bTarget) SumRange(lo, hi int) (s int64) {
	u.t.AscendRange(lo, hi+1, func(i int) bool {
		s += int64(i)
		return true
	})
	return
}

type llrbTarget struct {
	t *llrb.LLRB
}

// NewLLRB wraps a left-leaning red-black tree.
func NewLLRB() Target {
	return &llrbTarget{llrb.New()}
}

func (u *llrbTarget) Name() string { return "llrb" }
func (u *llrbTarget) Insert(k int) { u.t.InsertNoReplace(llrb.Int(k)) }
func (u *llrbTarget) Len() int     { return u.t.Len() }
func (u *llrbTarget) Clear()       { u.t = llrb.New() }

func (u *llrbTarget) Find(k int) (r int, ok bool) {
	u.t.AscendGreaterOrEqual(llrb.Int(k), func(i llrb.Item) bool {
		r, ok = int(i.(llrb.Int)), true
		return false
	})
	return
}

func (u *llrbTarget) SumRange(lo, hi int) (s int64) {
	u.t.AscendRange(llrb.Int(lo), llrb.Int(hi+1), func(i llrb.Item) bool {
		s += int64(i.(llrb.Int))
		return true
	})
	return
}
