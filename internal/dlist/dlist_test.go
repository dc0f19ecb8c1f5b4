package dlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFIFOOrder(t *testing.T) {
	l := New[int]()
	require.True(t, l.Empty())

	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	require.Equal(t, 3, l.Len())

	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	l.PushBack(4)
	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = l.PopFront()
	assert.False(t, ok)
	assert.True(t, l.Empty())
}

func TestListEach(t *testing.T) {
	l := New[string]()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")

	var seen []string
	l.Each(func(v string) { seen = append(seen, v) })
	assert.Equal(t, []string{"a", "b", "c"}, seen)
	assert.Equal(t, 3, l.Len(), "Each must not drain the list")
}

func TestListEmptyPop(t *testing.T) {
	l := New[int]()
	_, ok := l.PopFront()
	assert.False(t, ok)
}
