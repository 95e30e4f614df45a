package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayDeque_PushPopBothEnds(t *testing.T) {
	dq := NewArrayDeque[int]()

	_, err := dq.PopFront()
	require.ErrorIs(t, err, ErrEmptyDeque)
	_, err = dq.PopBack()
	require.ErrorIs(t, err, ErrEmptyDeque)

	dq.PushBack(2)
	dq.PushBack(3)
	dq.PushFront(1)
	require.Equal(t, int64(3), dq.Len())

	front, err := dq.PeekFront()
	require.NoError(t, err)
	require.Equal(t, 1, front)
	back, err := dq.PeekBack()
	require.NoError(t, err)
	require.Equal(t, 3, back)

	v, err := dq.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	v, err = dq.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	v, err = dq.PopFront()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.Equal(t, int64(0), dq.Len())
}

func TestArrayDeque_GrowKeepsOrder(t *testing.T) {
	dq := NewArrayDeque[int](WithArrayDequeCapacity[int](16))
	total := 1000

	// Rotate the head away from zero before growing.
	for i := 0; i < 8; i++ {
		dq.PushBack(i)
	}
	for i := 0; i < 4; i++ {
		_, err := dq.PopFront()
		require.NoError(t, err)
	}
	for i := 8; i < total; i++ {
		dq.PushBack(i)
	}
	require.Equal(t, int64(total-4), dq.Len())
	require.GreaterOrEqual(t, dq.Cap(), dq.Len())

	for i := 4; i < total; i++ {
		v, err := dq.PopFront()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.Equal(t, int64(0), dq.Len())
}

func TestArrayDeque_PushFrontOrder(t *testing.T) {
	dq := NewArrayDeque[int]()
	total := 100
	for i := 0; i < total; i++ {
		dq.PushFront(i)
	}
	for i := total - 1; i >= 0; i-- {
		v, err := dq.PopFront()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestArrayDeque_Clear(t *testing.T) {
	dq := NewArrayDeque[string]()
	dq.PushBack("a")
	dq.PushBack("b")
	dq.Clear()
	require.Equal(t, int64(0), dq.Len())

	dq.PushBack("c")
	v, err := dq.PopFront()
	require.NoError(t, err)
	require.Equal(t, "c", v)
}

func TestArrayQueue_FIFO(t *testing.T) {
	q := NewArrayQueue[string]()

	_, err := q.Poll()
	require.ErrorIs(t, err, ErrEmptyQueue)
	_, err = q.Peek()
	require.ErrorIs(t, err, ErrEmptyQueue)

	q.Offer("a")
	q.Offer("b")
	q.Offer("c")

	head, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, "a", head)

	for _, expected := range []string{"a", "b", "c"} {
		v, err := q.Poll()
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
	require.Equal(t, int64(0), q.Len())
}
