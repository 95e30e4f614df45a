package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasher(t *testing.T) {
	intKey := 100
	intHasher := newHasher[int]()
	require.Equal(t, intHasher.Hash(intKey), intHasher.Hash(intKey))

	strKey := "abc"
	strHasher := newHasher[string]()
	require.Equal(t, strHasher.Hash(strKey), strHasher.Hash(strKey))

	floatKey := 100.0
	floatHasher := newHasher[float64]()
	require.Equal(t, floatHasher.Hash(floatKey), floatHasher.Hash(floatKey))
}

func TestHasher_IndependentSeeds(t *testing.T) {
	h1 := newHasher[int]()
	h2 := newHasher[int]()
	require.NotEqual(t, h1.seed, h2.seed)
	key := 42
	require.Equal(t, h1.Hash(key), h1.Hash(key))
	require.Equal(t, h2.Hash(key), h2.Hash(key))
}

func TestSeedHasher(t *testing.T) {
	h1 := newHasher[string]()
	h2 := newSeedHasher[string](h1)
	require.NotEqual(t, h1.seed, h2.seed)
	require.Equal(t, h2.Hash("abc"), h2.Hash("abc"))
}
