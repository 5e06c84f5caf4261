package Trees

import (
	"math/rand"
	"testing"
)

const (
	size = 1 << 15
)

var sideEff *Node[int]

func BenchmarkDAST_Insert(b *testing.B) {
	var t *DAST[int]
	for i := 0; i < b.N; i++ {
		t = New[int](nil)
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
	}
	b.Log(averageDepth(t.Root()))
}

func BenchmarkSplay_Insert(b *testing.B) {
	var t *DAST[int]
	for i := 0; i < b.N; i++ {
		t = NewSplayTree[int]()
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
	}
	b.Log(averageDepth(t.Root()))
}

func BenchmarkDAST_LowerBound(b *testing.B) {
	t := From[int](nil, rand.Perm(size)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = t.LowerBound(rg.Intn(size))
	}
	b.Log(t.Stats().Splays)
}

func BenchmarkSplay_LowerBound(b *testing.B) {
	t := From[int](AlwaysSplay, rand.Perm(size)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = t.LowerBound(rg.Intn(size))
	}
}

func BenchmarkAugDAST_NodeAtIndex(b *testing.B) {
	t := AugFrom[int](nil, rand.Perm(size)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff, _ = t.NodeAtIndex(rg.Intn(size))
	}
}

func BenchmarkSBTree_Select(b *testing.B) {
	t := NewSB[int]()
	for _, j := range rand.Perm(size) {
		t.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Select(rg.Intn(size))
	}
}

func BenchmarkAugDAST_RangeSum(b *testing.B) {
	t := AugFrom[int](nil, rand.Perm(size)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo, hi := rg.Intn(size), rg.Intn(size)
		if hi < lo {
			lo, hi = hi, lo
		}
		r := t.LowerBound(hi)
		t.RangeSum(t.LowerBound(lo), r)
	}
}

func BenchmarkDAST_All(b *testing.B) {
	var t *AugDAST[int]
	for i := 0; i < b.N; i++ {
		t = NewAug[int](nil)
		for _, j := range rand.Perm(size / 2) {
			t.Insert(j)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				t.Remove(t.LowerBound(j))
			}
		}
		for _, j := range rand.Perm(size / 2) {
			t.Insert(j + size)
		}
	}
	b.Log(averageDepth(t.Root()))
}
