package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcoll/lib/infra"
)

func TestTreeMap_NewWithNilComparator(t *testing.T) {
	_, err := NewTreeMap[int, string](nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewTreeSet[int](nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTreeMap_GetOnEmpty(t *testing.T) {
	m, err := NewTreeMap[int, string](infra.OrderedCompare[int]())
	require.NoError(t, err)

	_, err = m.Get(1)
	require.ErrorIs(t, err, ErrKeyNotFound)
	_, _, err = m.GetMin()
	require.ErrorIs(t, err, ErrEmptyTree)
	_, _, err = m.GetMax()
	require.ErrorIs(t, err, ErrEmptyTree)
	require.ErrorIs(t, m.Remove(1), ErrKeyNotFound)
}

func TestTreeMap_PutUpsert(t *testing.T) {
	released := make([]string, 0, 2)
	m, err := NewTreeMap[int, string](
		infra.OrderedCompare[int](),
		WithTreeMapValueRelease[int, string](func(val string) {
			released = append(released, val)
		}),
	)
	require.NoError(t, err)

	require.NoError(t, m.Put(7, "v1"))
	require.Empty(t, released)
	require.Equal(t, int64(1), m.Len())

	node := m.Root()
	require.NoError(t, m.Put(7, "v2"))
	// The node survives, only the value slot mutated.
	require.Equal(t, node, m.Root())
	require.Equal(t, []string{"v1"}, released)
	require.Equal(t, int64(1), m.Len())

	val, err := m.Get(7)
	require.NoError(t, err)
	require.Equal(t, "v2", val)
}

func TestTreeMap_GetMinMax(t *testing.T) {
	m, err := NewTreeMap[uint64, string](infra.OrderedCompare[uint64]())
	require.NoError(t, err)
	for key, val := range map[uint64]string{5: "e", 3: "c", 8: "h", 1: "a", 9: "i"} {
		require.NoError(t, m.Put(key, val))
	}

	key, val, err := m.GetMin()
	require.NoError(t, err)
	require.Equal(t, uint64(1), key)
	require.Equal(t, "a", val)

	key, val, err = m.GetMax()
	require.NoError(t, err)
	require.Equal(t, uint64(9), key)
	require.Equal(t, "i", val)

	key, val, err = m.RemoveMin()
	require.NoError(t, err)
	require.Equal(t, uint64(1), key)
	require.Equal(t, "a", val)
	require.Equal(t, int64(4), m.Len())
}

func TestTreeMap_RemoveInnerKey(t *testing.T) {
	m, err := NewTreeMap[int, int](infra.OrderedCompare[int]())
	require.NoError(t, err)
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		require.NoError(t, m.Put(key, key*10))
	}

	// 5 has two children.
	require.NoError(t, m.Remove(5))
	_, err = m.Get(5)
	require.ErrorIs(t, err, ErrKeyNotFound)

	expectedKeys := []int{1, 3, 4, 7, 8, 9}
	m.Foreach(func(idx int64, color RBColor, key int, val int) bool {
		require.Equal(t, expectedKeys[idx], key)
		require.Equal(t, key*10, val)
		return true
	})
	require.Equal(t, int64(6), m.Len())
	require.NoError(t, Validate[int, int](m, infra.OrderedCompare[int]()))
}

func TestTreeMap_ClearInvokesReleases(t *testing.T) {
	releasedKeys, releasedVals := 0, 0
	m, err := NewTreeMap[int, string](
		infra.OrderedCompare[int](),
		WithTreeMapKeyRelease[int, string](func(key int) { releasedKeys++ }),
		WithTreeMapValueRelease[int, string](func(val string) { releasedVals++ }),
	)
	require.NoError(t, err)

	total := 100
	for i := 0; i < total; i++ {
		require.NoError(t, m.Put(i, "v"))
	}
	m.Clear()
	require.Equal(t, total, releasedKeys)
	require.Equal(t, total, releasedVals)
	require.Equal(t, int64(0), m.Len())
	require.Nil(t, m.Root())

	// Still usable after Clear.
	require.NoError(t, m.Put(1, "v"))
	require.Equal(t, int64(1), m.Len())
}

func TestTreeMap_ReleaseIdempotent(t *testing.T) {
	var zero treeMap[int, string]
	zero.Release()

	m, err := NewTreeMap[int, string](infra.OrderedCompare[int]())
	require.NoError(t, err)
	require.NoError(t, m.Put(1, "a"))
	m.Release()
	m.Release()
	require.Equal(t, int64(0), m.Len())
}

func TestTreeMap_ForeachEarlyStop(t *testing.T) {
	m, err := NewTreeMap[int, int](infra.OrderedCompare[int]())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, m.Put(i, i))
	}

	visited := 0
	m.Foreach(func(idx int64, color RBColor, key int, val int) bool {
		visited++
		return key < 4
	})
	require.Equal(t, 5, visited)
}
