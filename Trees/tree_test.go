package Trees

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 20000
	tAddValRange = 8000
)

// multiset is the reference the trees are checked against.
type multiset struct {
	counts *haxmap.Map[int, int]
	n      int
}

func newMultiset() *multiset {
	return &multiset{counts: haxmap.New[int, int]()}
}

func (m *multiset) add(k int) {
	c, _ := m.counts.Get(k)
	m.counts.Set(k, c+1)
	m.n++
}

func (m *multiset) del(k int) bool {
	c, ok := m.counts.Get(k)
	if !ok || c == 0 {
		return false
	}
	if c == 1 {
		m.counts.Del(k)
	} else {
		m.counts.Set(k, c-1)
	}
	m.n--
	return true
}

// sorted content, keys are in [0, tAddValRange).
func (m *multiset) sorted() []int {
	s := make([]int, 0, m.n)
	for k := range tAddValRange {
		if c, ok := m.counts.Get(k); ok {
			for range c {
				s = append(s, k)
			}
		}
	}
	return s
}

func keysOf(t Index[int]) []int {
	var s []int
	t.InOrder(func(k int) bool {
		s = append(s, k)
		return true
	})
	return s
}

// find the node holding k without restructuring.
func find(root *Node[int], k int) *Node[int] {
	for cur := root; cur != nil; {
		if k < cur.key {
			cur = cur.child[0]
		} else if k == cur.key {
			return cur
		} else {
			cur = cur.child[1]
		}
	}
	return nil
}

// averageDepth of the leaves, 1 based.
func averageDepth(root *Node[int]) float64 {
	var leaves, total int
	var walk func(*Node[int], int)
	walk = func(n *Node[int], d int) {
		if n.child[0] == nil && n.child[1] == nil {
			leaves++
			total += d
		}
		for _, c := range n.child {
			if c != nil {
				walk(c, d+1)
			}
		}
	}
	if root == nil {
		return 0
	}
	walk(root, 1)
	return float64(total) / float64(leaves)
}

var policies = map[string]Policy{
	"default":  DefaultPolicy,
	"doubling": DoublingPolicy(4),
	"always":   AlwaysSplay,
	"never":    NeverSplay,
	"fixed8":   FixedPolicy(8),
}

func trees() map[string]Index[int] {
	m := make(map[string]Index[int])
	for name, p := range policies {
		m["plain/"+name] = New[int](p)
		m["aug/"+name] = NewAug[int](p)
	}
	return m
}

func TestTree_RoundTrip(t *testing.T) {
	for name, tree := range trees() {
		t.Run(name, func(t *testing.T) {
			for _, k := range []int{5, 3, 8, 1, 4} {
				tree.Insert(k)
			}
			tree.Remove(tree.LowerBound(3))
			tree.Remove(tree.LowerBound(8))
			require.Equal(t, []int{1, 4, 5}, keysOf(tree))
			require.Equal(t, 3, tree.Size())
			require.NoError(t, tree.Check())
		})
	}
}

func TestTree_LowerBound(t *testing.T) {
	for name, tree := range trees() {
		t.Run(name, func(t *testing.T) {
			require.Nil(t, tree.LowerBound(1), "empty tree")
			for _, k := range []int{2, 4, 6, 8} {
				tree.Insert(k)
			}
			require.Equal(t, 6, tree.LowerBound(5).Key())
			require.Nil(t, tree.LowerBound(9))
			require.Equal(t, 2, tree.LowerBound(2).Key())
			require.Equal(t, 2, tree.LowerBound(-3).Key())
			require.Equal(t, 8, tree.LowerBound(8).Key())
			require.NoError(t, tree.Check())
		})
	}
}

func TestTree_Floor(t *testing.T) {
	for name, tree := range trees() {
		t.Run(name, func(t *testing.T) {
			require.Nil(t, tree.Floor(1), "empty tree")
			for _, k := range []int{2, 4, 6, 8} {
				tree.Insert(k)
			}
			require.Equal(t, 4, tree.Floor(5).Key())
			require.Nil(t, tree.Floor(1))
			require.Equal(t, 8, tree.Floor(100).Key())
			require.Equal(t, 6, tree.Floor(6).Key())
			require.NoError(t, tree.Check())
		})
	}
}

func TestTree_RemoveNil(t *testing.T) {
	tree := From[int](nil, 1, 2, 3)
	tree.Remove(nil)
	tree.Remove(tree.LowerBound(10))
	require.Equal(t, 3, tree.Size())
	require.Equal(t, []int{1, 2, 3}, keysOf(tree))
}

func TestTree_RemoveAll(t *testing.T) {
	tree := AugFrom[int](nil, rg.Perm(500)...)
	for _, k := range rg.Perm(500) {
		n := tree.LowerBound(k)
		require.NotNil(t, n)
		require.Equal(t, k, n.Key())
		tree.Remove(n)
		require.Nil(t, n.Parent())
		require.NoError(t, tree.Check())
	}
	require.Zero(t, tree.Size())
	require.Nil(t, tree.Root())
}

func TestTree_Duplicates(t *testing.T) {
	tree := AugFrom[int](nil, 3, 1, 3, 3, 2, 3)
	require.Equal(t, []int{1, 2, 3, 3, 3, 3}, keysOf(tree))
	require.Equal(t, 2, tree.OrderOfKey(3))
	require.Equal(t, int64(12), tree.SumBetween(3, 3))
	tree.Remove(tree.LowerBound(3))
	require.Equal(t, []int{1, 2, 3, 3, 3}, keysOf(tree))
	require.NoError(t, tree.Check())
}

func TestTree_Random(t *testing.T) {
	for name, tree := range trees() {
		t.Run(name, func(t *testing.T) {
			content := newMultiset()
			a := make([]int, tAddN)
			for i := range a {
				a[i] = rg.Intn(tAddValRange)
			}
			for _, b := range a {
				tree.Insert(b)
				content.add(b)
			}
			require.NoError(t, tree.Check())
			for i := range rg.Intn(len(a)) {
				n := tree.LowerBound(a[i])
				if n == nil || n.Key() != a[i] {
					if content.del(a[i]) {
						t.Errorf("failed to find key %v", a[i])
					}
					continue
				}
				tree.Remove(n)
				if !content.del(a[i]) {
					t.Errorf("found non existent key %v", a[i])
				}
			}
			if tree.Size() != content.n {
				t.Errorf("tree size is %d, want %d", tree.Size(), content.n)
			}
			require.NoError(t, tree.Check())
			s := keysOf(tree)
			require.True(t, slices.IsSorted(s))
			require.Equal(t, content.sorted(), s)
			t.Logf("depth: %f, size: %d.\n", averageDepth(tree.(interface{ Root() *Node[int] }).Root()), tree.Size())
		})
	}
}

func TestTree_InOrderStops(t *testing.T) {
	tree := From[int](nil, rg.Perm(100)...)
	var s []int
	tree.InOrder(func(k int) bool {
		s = append(s, k)
		return len(s) < 10
	})
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, s)
}

func TestTree_Clear(t *testing.T) {
	for name, tree := range trees() {
		t.Run(name, func(t *testing.T) {
			for _, k := range rg.Perm(1000) {
				tree.Insert(k)
			}
			old := tree.LowerBound(500)
			tree.Clear()
			require.Zero(t, tree.Size())
			require.Empty(t, keysOf(tree))
			require.Nil(t, old.Left())
			require.Nil(t, old.Right())
			tree.Clear()
			require.Zero(t, tree.Size())
			tree.Insert(7)
			require.Equal(t, 1, tree.Size())
			require.Equal(t, 7, tree.LowerBound(0).Key())
			require.NoError(t, tree.Check())
		})
	}
}

func TestTree_MinMax(t *testing.T) {
	tree := New[int](nil)
	require.Nil(t, tree.Min())
	require.Nil(t, tree.Max())
	for _, k := range rg.Perm(300) {
		tree.Insert(k)
	}
	require.Equal(t, 0, tree.Min().Key())
	require.Equal(t, 299, tree.Max().Key())
}

func TestTree_DepthBoundInsert(t *testing.T) {
	for name, p := range policies {
		t.Run(name, func(t *testing.T) {
			tree := New[int](p)
			for _, k := range rg.Perm(3000) {
				before := tree.Stats().Splays
				tree.Insert(k)
				n := find(tree.Root(), k)
				require.NotNil(t, n)
				if tree.Stats().Splays > before {
					require.Same(t, tree.Root(), n)
				} else {
					require.LessOrEqual(t, tree.Depth(n), max(tree.Threshold(), 0))
				}
			}
		})
	}
}

func TestTree_DepthBoundLookup(t *testing.T) {
	for name, p := range policies {
		t.Run(name, func(t *testing.T) {
			tree := AugFrom[int](p, rg.Perm(3000)...)
			for range 3000 {
				before := tree.Stats().Splays
				n := tree.LowerBound(rg.Intn(3000))
				if tree.Stats().Splays > before {
					require.Same(t, tree.Root(), n)
					require.Zero(t, tree.Depth(n))
				} else {
					require.Less(t, tree.Depth(n), max(tree.Threshold(), 1))
				}
				before = tree.Stats().Splays
				n, err := tree.NodeAtIndex(rg.Intn(3000))
				require.NoError(t, err)
				if tree.Stats().Splays > before {
					require.Same(t, tree.Root(), n)
				} else {
					require.Less(t, tree.Depth(n), max(tree.Threshold(), 1))
				}
			}
			require.NoError(t, tree.Check())
		})
	}
}

func TestTree_AlwaysSplayBringsToRoot(t *testing.T) {
	tree := NewSplayTree[int]()
	for _, k := range rg.Perm(200) {
		tree.Insert(k)
		require.Equal(t, k, tree.Root().Key())
	}
	for range 200 {
		k := rg.Intn(200)
		require.Same(t, tree.Root(), tree.LowerBound(k))
	}
}

func TestTree_SequentialInsert(t *testing.T) {
	const n = 1 << 14
	tree := New[int](nil)
	for i := range n {
		tree.Insert(i)
	}
	require.NoError(t, tree.Check())
	for i := range n {
		require.Equal(t, i, tree.LowerBound(i).Key())
	}
	st := tree.Stats()
	require.EqualValues(t, n, st.Inserts)
	require.EqualValues(t, n, st.Lookups)
	require.NotZero(t, st.Splays)
	t.Logf("height: %d, avg path: %f", tree.Height(), st.AvgLookupDepth())
}

func TestTree_Stats(t *testing.T) {
	tree := NewSplayTree[int]()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(k)
	}
	tree.LowerBound(1)
	tree.Remove(tree.LowerBound(2))
	st := tree.Stats()
	require.EqualValues(t, 3, st.Inserts)
	require.EqualValues(t, 2, st.Lookups)
	require.EqualValues(t, 1, st.Removals)
	require.NotZero(t, st.Rotations)
	tree.ResetStats()
	require.Equal(t, Stats{}, tree.Stats())
}

func TestTree_Height(t *testing.T) {
	tree := New[int](NeverSplay)
	require.Zero(t, tree.Height())
	for i := range 10 {
		tree.Insert(i)
	}
	require.Equal(t, 10, tree.Height())
	tree.SetPolicy(nil)
	tree.LowerBound(9)
	require.Equal(t, 9, tree.Root().Key())
}
