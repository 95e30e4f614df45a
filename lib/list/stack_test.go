package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack_PushPopPeek(t *testing.T) {
	s := NewStack[int]()

	_, err := s.Pop()
	require.ErrorIs(t, err, ErrEmptyStack)
	_, err = s.Peek()
	require.ErrorIs(t, err, ErrEmptyStack)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, int64(3), s.Len())

	top, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, 3, top)
	require.Equal(t, int64(3), s.Len())

	for _, expected := range []int{3, 2, 1} {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
	require.Equal(t, int64(0), s.Len())
	_, err = s.Pop()
	require.ErrorIs(t, err, ErrEmptyStack)
}

func TestStack_ClearReleases(t *testing.T) {
	released := make([]string, 0, 2)
	s := NewStack[string](
		WithStackValueRelease[string](func(v string) { released = append(released, v) }),
	)
	s.Push("a")
	s.Push("b")
	s.Push("c")

	// The popped value belongs to the caller, no release fires.
	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, "c", v)
	require.Empty(t, released)

	s.Clear()
	require.Equal(t, int64(0), s.Len())
	require.ElementsMatch(t, []string{"a", "b"}, released)
}
