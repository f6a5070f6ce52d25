package queue

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repmop/datalib/element"
)

func pack(k int) *element.Element[int] {
	return element.Pack([]byte{byte(k)}, k)
}

func drain(q *Queue[int]) []int {
	var keys []int
	for {
		e, ok := q.PopHead()
		if !ok {
			return keys
		}
		keys = append(keys, e.Key())
	}
}

func TestFIFO(t *testing.T) {
	q := New[int]()
	for _, k := range []int{1, 2, 3} {
		require.True(t, q.PushTail(pack(k)))
	}
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{1, 2, 3}, drain(q))
	assert.Equal(t, 0, q.Len())
}

func TestLIFO(t *testing.T) {
	q := New[int]()
	for _, k := range []int{1, 2, 3} {
		require.True(t, q.PushHead(pack(k)))
	}
	assert.Equal(t, []int{3, 2, 1}, drain(q))
}

func TestPopEmpty(t *testing.T) {
	q := New[int]()
	e, ok := q.PopHead()
	assert.Nil(t, e)
	assert.False(t, ok)
}

func TestReverse(t *testing.T) {
	q := New[int]()
	for _, k := range []int{1, 2, 3, 4} {
		q.PushTail(pack(k))
	}
	q.Reverse()
	assert.Equal(t, []int{4, 3, 2, 1}, drain(q))

	// Reversing an empty queue is a no-op.
	q.Reverse()
	assert.Equal(t, 0, q.Len())
}

func TestReverseSingle(t *testing.T) {
	q := New[int]()
	q.PushTail(pack(9))
	q.Reverse()
	assert.Equal(t, []int{9}, drain(q))
}

func TestFind(t *testing.T) {
	q := New[int]()
	for _, k := range []int{5, 8, 13} {
		q.PushTail(pack(k))
	}

	e, ok := q.Find(8, cmp.Compare[int])
	require.True(t, ok)
	assert.Equal(t, 8, e.Key())

	_, ok = q.Find(99, cmp.Compare[int])
	assert.False(t, ok)
}

func TestMoveToTail(t *testing.T) {
	q := New[int]()
	for _, k := range []int{1, 2, 3} {
		q.PushTail(pack(k))
	}

	require.True(t, q.MoveToTail(1, cmp.Compare[int]))
	assert.Equal(t, []int{2, 3, 1}, drain(q))
}

func TestMoveToTailAlreadyLast(t *testing.T) {
	q := New[int]()
	for _, k := range []int{1, 2} {
		q.PushTail(pack(k))
	}
	require.True(t, q.MoveToTail(2, cmp.Compare[int]))
	assert.Equal(t, []int{1, 2}, drain(q))
}

func TestMoveToTailAbsent(t *testing.T) {
	q := New[int]()
	q.PushTail(pack(1))
	assert.False(t, q.MoveToTail(7, cmp.Compare[int]))
}

func TestString(t *testing.T) {
	q := New[int]()
	assert.Equal(t, "queue: -|", q.String())

	q.PushTail(pack(1))
	q.PushTail(pack(2))
	assert.Equal(t, "queue: |1| -> |2| -|", q.String())
}

func TestNilReceiver(t *testing.T) {
	var q *Queue[int]
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.PushTail(pack(1)))
	assert.False(t, q.PushHead(pack(1)))
	_, ok := q.PopHead()
	assert.False(t, ok)
	q.Reverse()
	assert.Equal(t, "queue: -|", q.String())
}

func TestPushNilElement(t *testing.T) {
	q := New[int]()
	assert.False(t, q.PushTail(nil))
	assert.False(t, q.PushHead(nil))
	assert.Equal(t, 0, q.Len())
}
