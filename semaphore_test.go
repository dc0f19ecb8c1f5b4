package gmpcoro

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemaphoreBasicWaitPost(t *testing.T) {
	rt, err := New(WithWorkers(1))
	require.NoError(t, err)
	defer rt.Shutdown()

	sem := rt.NewSem(1)
	sem.Wait() // count 1 -> 0, does not block
	sem.Post() // count 0 -> 1
	sem.Wait() // count 1 -> 0 again, does not block
}

func TestSemaphoreMutualExclusion(t *testing.T) {
	rt, err := New(WithWorkers(4))
	require.NoError(t, err)
	defer rt.Shutdown()

	sem := rt.NewSem(1)
	var counter int64
	const tasks, iterations = 4, 50

	handles := make([]*Task, tasks)
	for i := 0; i < tasks; i++ {
		handles[i] = rt.Start("incrementer", func(any) {
			for j := 0; j < iterations; j++ {
				sem.Wait()
				counter++ // protected by sem; a data race here would show up as lost updates
				sem.Post()
				rt.Yield()
			}
		}, nil)
	}
	for _, h := range handles {
		require.NoError(t, rt.Wait(h))
	}

	assert.Equal(t, int64(tasks*iterations), counter)
}

func TestSemaphoreWaiterIsWokenInOrder(t *testing.T) {
	rt, err := New(WithWorkers(3))
	require.NoError(t, err)
	defer rt.Shutdown()

	sem := rt.NewSem(0)
	var order int64
	first := make(chan int64, 1)
	second := make(chan int64, 1)

	h1 := rt.Start("first", func(any) {
		sem.Wait()
		first <- atomic.AddInt64(&order, 1)
	}, nil)
	h2 := rt.Start("second", func(any) {
		sem.Wait()
		second <- atomic.AddInt64(&order, 1)
	}, nil)

	// wait until both tasks are parked in sem.Wait() before posting, and
	// record the order they were queued in
	var queued []*Task
	require.Eventually(t, func() bool {
		sem.mu.Lock()
		defer sem.mu.Unlock()
		if sem.waiters.Len() != 2 {
			return false
		}
		queued = queued[:0]
		sem.waiters.Each(func(w *Task) { queued = append(queued, w) })
		return true
	}, testEventuallyTimeout, testEventuallyTick)

	sem.Post()
	assert.NotEqual(t, StatusWaiting, queued[0].Status(), "the first Post must wake the first waiter")
	assert.Equal(t, StatusWaiting, queued[1].Status(), "the second waiter must stay parked until the second Post")
	sem.Post()

	require.NoError(t, rt.Wait(h1))
	require.NoError(t, rt.Wait(h2))
	assert.ElementsMatch(t, []int64{1, 2}, []int64{<-first, <-second})
}
