package gmpcoro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingPushPopOrder(t *testing.T) {
	var r ring[int]
	require.True(t, r.push(1))
	require.True(t, r.push(2))
	require.True(t, r.push(3))
	assert.Equal(t, 3, r.size())

	v, ok := r.pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = r.pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, 1, r.size())
}

func TestRingFillToCapacity(t *testing.T) {
	var r ring[int]
	for i := 0; i < runQueueCapacity; i++ {
		require.True(t, r.push(i))
	}
	assert.False(t, r.push(999), "a full ring must reject further pushes")
	assert.Equal(t, runQueueCapacity, r.size())
}

func TestRingPopEmpty(t *testing.T) {
	var r ring[int]
	_, ok := r.pop()
	assert.False(t, ok)
}

func TestRingWrapsAroundAfterDrain(t *testing.T) {
	var r ring[int]
	for i := 0; i < runQueueCapacity; i++ {
		r.push(i)
	}
	for i := 0; i < runQueueCapacity/2; i++ {
		r.pop()
	}
	for i := 0; i < runQueueCapacity/2; i++ {
		require.True(t, r.push(1000+i))
	}
	assert.Equal(t, runQueueCapacity, r.size())

	var drained []int
	for {
		v, ok := r.pop()
		if !ok {
			break
		}
		drained = append(drained, v)
	}
	assert.Len(t, drained, runQueueCapacity)
}

func TestRingEachDoesNotDrain(t *testing.T) {
	var r ring[string]
	r.push("a")
	r.push("b")
	var seen []string
	r.each(func(v string) { seen = append(seen, v) })
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, 2, r.size())
}
