package Trees

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSBTree_Random(t *testing.T) {
	tree := NewSB[int]()
	content := newMultiset()
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		content.add(a[i])
	}
	for i := range rg.Intn(len(a)) {
		if b := tree.Remove(a[i]); b != content.del(a[i]) {
			t.Errorf("failed to delete key %v", a[i])
		}
	}
	if tree.Size() != content.n {
		t.Errorf("tree size is %d, want %d", tree.Size(), content.n)
	}
	var s []int
	tree.InOrder(func(k int) bool {
		s = append(s, k)
		return true
	})
	require.True(t, slices.IsSorted(s))
	require.Equal(t, content.sorted(), s)
	for i, k := range s {
		v, err := tree.Select(i)
		require.NoError(t, err)
		require.Equal(t, k, v)
		if i == 0 || s[i-1] != k {
			require.Equal(t, i, tree.OrderOfKey(k))
		}
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
}

func TestSBTree_Balanced(t *testing.T) {
	tree := NewSB[int]()
	for i := range 1 << 12 {
		tree.Insert(i)
	}
	// worst case height of a SBTree is below 1.44*log2(n+1.5)
	require.LessOrEqual(t, tree.Height(), 18)
	k, ok := tree.LowerBound(100)
	require.True(t, ok)
	require.Equal(t, 100, k)
	_, ok = tree.LowerBound(1 << 12)
	require.False(t, ok)
	require.Equal(t, int64(3+4+5), tree.SumBetween(3, 5))
	_, err := tree.Select(1 << 12)
	var ie *IndexOutOfRangeError
	require.ErrorAs(t, err, &ie)
	tree.Clear()
	require.Zero(t, tree.Size())
}

func TestSBTree_InOrderStops(t *testing.T) {
	tree := NewSB[int]()
	for _, k := range rg.Perm(50) {
		tree.Insert(k)
	}
	var s []int
	tree.InOrder(func(k int) bool {
		s = append(s, k)
		return len(s) < 5
	})
	require.Equal(t, []int{0, 1, 2, 3, 4}, s)
	s = s[:0]
	tree.InOrder(func(k int) bool {
		s = append(s, k)
		return true
	})
	require.Len(t, s, 50)
}
