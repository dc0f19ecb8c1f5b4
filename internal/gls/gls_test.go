package gls

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDDiffersAcrossGoroutines(t *testing.T) {
	ids := make(chan uint64, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			ids <- ID()
		}()
	}
	wg.Wait()
	close(ids)

	a := <-ids
	b := <-ids
	assert.NotEqual(t, a, b)
}

func TestMapSetGetIsPerGoroutine(t *testing.T) {
	m := NewMap[string]()
	m.Set("main")

	v, ok := m.Get()
	require.True(t, ok)
	assert.Equal(t, "main", v)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, ok := m.Get()
		assert.False(t, ok, "a goroutine that never called Set must not see another goroutine's entry")
	}()
	<-done
}

func TestMapSetForAndDeleteID(t *testing.T) {
	m := NewMap[int]()
	m.SetFor(42, 7)

	m.mu.RLock()
	v, ok := m.m[42]
	m.mu.RUnlock()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	m.DeleteID(42)
	m.mu.RLock()
	_, ok = m.m[42]
	m.mu.RUnlock()
	assert.False(t, ok)
}
