package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcoll/lib/infra"
)

func TestTreeSet_DuplicateInsert(t *testing.T) {
	set, err := NewTreeSet[string](infra.OrderedCompare[string]())
	require.NoError(t, err)

	require.NoError(t, set.Insert("a"))
	require.NoError(t, set.Insert("b"))
	require.ErrorIs(t, set.Insert("a"), ErrDuplicateKey)
	require.Equal(t, int64(2), set.Len())
	require.NoError(t, Validate[string, struct{}](set, infra.OrderedCompare[string]()))
}

func TestTreeSet_Contains(t *testing.T) {
	set, err := NewTreeSet[int](infra.OrderedCompare[int]())
	require.NoError(t, err)
	for i := 0; i < 100; i += 2 {
		require.NoError(t, set.Insert(i))
	}
	for i := 0; i < 100; i++ {
		require.Equal(t, i%2 == 0, set.Contains(i))
	}
}

func TestTreeSet_MinMax(t *testing.T) {
	set, err := NewTreeSet[int](infra.OrderedCompare[int]())
	require.NoError(t, err)

	_, err = set.GetMin()
	require.ErrorIs(t, err, ErrEmptyTree)
	_, err = set.GetMax()
	require.ErrorIs(t, err, ErrEmptyTree)

	for _, key := range []int{17, 4, 42, 9} {
		require.NoError(t, set.Insert(key))
	}
	min, err := set.GetMin()
	require.NoError(t, err)
	require.Equal(t, 4, min)
	max, err := set.GetMax()
	require.NoError(t, err)
	require.Equal(t, 42, max)
}

func TestTreeSet_KeyReleaseOnEviction(t *testing.T) {
	released := make(map[int]int, 8)
	set, err := NewTreeSet[int](
		infra.OrderedCompare[int](),
		WithTreeSetKeyRelease[int](func(key int) { released[key]++ }),
	)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		require.NoError(t, set.Insert(i))
	}

	require.NoError(t, set.Remove(3))
	require.Equal(t, 1, released[3])

	_, err = set.RemoveMin()
	require.NoError(t, err)
	require.Equal(t, 1, released[0])

	set.Clear()
	for _, key := range []int{1, 2, 4, 5, 6, 7} {
		require.Equal(t, 1, released[key])
	}
	require.Equal(t, int64(0), set.Len())
}

func TestTreeSet_StringKeys(t *testing.T) {
	set, err := NewTreeSet[string](infra.OrderedCompare[string]())
	require.NoError(t, err)
	for _, key := range []string{"pear", "apple", "plum", "fig", "cherry"} {
		require.NoError(t, set.Insert(key))
	}

	expected := []string{"apple", "cherry", "fig", "pear", "plum"}
	set.Foreach(func(idx int64, color RBColor, key string) bool {
		require.Equal(t, expected[idx], key)
		return true
	})
	require.NoError(t, Validate[string, struct{}](set, infra.OrderedCompare[string]()))
}
