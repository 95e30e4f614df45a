package kv

import (
	"strconv"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestChainMap_PutGetDelete(t *testing.T) {
	m := NewChainMap[string, int]()
	require.Equal(t, int64(0), m.Len())

	_, exists := m.Get("naught")
	require.False(t, exists)
	require.False(t, m.Delete("naught"))

	keys := lo.Shuffle(lo.Range(1000))
	for _, k := range keys {
		m.Put(strconv.Itoa(k), k)
	}
	require.Equal(t, int64(1000), m.Len())

	for _, k := range keys {
		v, exists := m.Get(strconv.Itoa(k))
		require.True(t, exists)
		require.Equal(t, k, v)
		require.True(t, m.Contains(strconv.Itoa(k)))
	}

	for _, k := range keys {
		require.True(t, m.Delete(strconv.Itoa(k)))
		require.False(t, m.Contains(strconv.Itoa(k)))
	}
	require.Equal(t, int64(0), m.Len())
}

func TestChainMap_PutOverwrite(t *testing.T) {
	released := make([]int, 0, 2)
	m := NewChainMap[string, int](
		WithChainMapValueRelease[string, int](func(val int) {
			released = append(released, val)
		}),
	)
	m.Put("abc", 1)
	m.Put("abc", 2)
	require.Equal(t, int64(1), m.Len())
	v, exists := m.Get("abc")
	require.True(t, exists)
	require.Equal(t, 2, v)
	require.Equal(t, []int{1}, released)

	require.True(t, m.Delete("abc"))
	require.Equal(t, []int{1, 2}, released)
}

func TestChainMap_GrowKeepsEntries(t *testing.T) {
	m := NewChainMap[int, int](WithChainMapCapacity[int, int](4))
	// Far beyond the initial buckets, forcing several grows.
	for i := 0; i < 10_000; i++ {
		m.Put(i, i*i)
	}
	require.Equal(t, int64(10_000), m.Len())
	for i := 0; i < 10_000; i++ {
		v, exists := m.Get(i)
		require.True(t, exists)
		require.Equal(t, i*i, v)
	}
}

func TestChainMap_Foreach(t *testing.T) {
	m := NewChainMap[int, string]()
	for i := 0; i < 100; i++ {
		m.Put(i, strconv.Itoa(i))
	}
	seen := map[int]string{}
	m.Foreach(func(i uint64, key int, val string) bool {
		seen[key] = val
		return true
	})
	require.Equal(t, 100, len(seen))
	for k, v := range seen {
		require.Equal(t, strconv.Itoa(k), v)
	}

	visited := 0
	m.Foreach(func(i uint64, key int, val string) bool {
		visited++
		return visited < 10
	})
	require.Equal(t, 10, visited)
}

func TestChainMap_PurgeReleases(t *testing.T) {
	releasedKeys, releasedVals := 0, 0
	m := NewChainMap[int, string](
		WithChainMapKeyRelease[int, string](func(key int) { releasedKeys++ }),
		WithChainMapValueRelease[int, string](func(val string) { releasedVals++ }),
	)
	for i := 0; i < 64; i++ {
		m.Put(i, strconv.Itoa(i))
	}
	m.Purge()
	require.Equal(t, int64(0), m.Len())
	require.Equal(t, 64, releasedKeys)
	require.Equal(t, 64, releasedVals)

	// Usable after purge.
	m.Put(7, "7")
	v, exists := m.Get(7)
	require.True(t, exists)
	require.Equal(t, "7", v)
}

type closableConn struct {
	closed bool
}

func (c *closableConn) Close() error {
	c.closed = true
	return nil
}

func TestChainMap_PurgeClosesValues(t *testing.T) {
	m := NewChainMap[int, *closableConn](
		WithChainMapClosableValues[int, *closableConn](),
	)
	conns := make([]*closableConn, 0, 8)
	for i := 0; i < 8; i++ {
		c := &closableConn{}
		conns = append(conns, c)
		m.Put(i, c)
	}
	m.Purge()
	for _, c := range conns {
		require.True(t, c.closed)
	}
}

func TestChainSet(t *testing.T) {
	s := NewChainSet[string]()
	require.True(t, s.Add("abc"))
	require.False(t, s.Add("abc"))
	require.True(t, s.Add("xyz"))
	require.Equal(t, int64(2), s.Len())
	require.True(t, s.Contains("abc"))
	require.False(t, s.Contains("naught"))

	require.True(t, s.Remove("abc"))
	require.False(t, s.Remove("abc"))
	require.Equal(t, int64(1), s.Len())

	seen := 0
	s.Foreach(func(i uint64, key string) bool {
		require.Equal(t, "xyz", key)
		seen++
		return true
	})
	require.Equal(t, 1, seen)

	s.Purge()
	require.Equal(t, int64(0), s.Len())
}

func TestChainSet_KeyRelease(t *testing.T) {
	released := make([]int, 0, 8)
	s := NewChainSet[int](
		WithChainSetKeyRelease[int](func(key int) {
			released = append(released, key)
		}),
		WithChainSetCapacity[int](16),
	)
	for i := 0; i < 4; i++ {
		require.True(t, s.Add(i))
	}
	require.True(t, s.Remove(2))
	require.Equal(t, []int{2}, released)
	s.Purge()
	require.Equal(t, 4, len(released))
}

func BenchmarkChainMap_Put(b *testing.B) {
	m := NewChainMap[int, int](WithChainMapCapacity[int, int](uint64(b.N)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(i, i)
	}
}

func BenchmarkChainMap_Get(b *testing.B) {
	m := NewChainMap[int, int](WithChainMapCapacity[int, int](uint64(b.N)))
	for i := 0; i < b.N; i++ {
		m.Put(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(i)
	}
}
