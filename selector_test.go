package gmpcoro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitAnyPanicsWithNoTasks(t *testing.T) {
	rt, err := New(WithWorkers(1))
	require.NoError(t, err)
	defer rt.Shutdown()

	assert.Panics(t, func() { rt.WaitAny() })
}

func TestWaitAnyReturnsFirstToFinish(t *testing.T) {
	rt, err := New(WithWorkers(3))
	require.NoError(t, err)
	defer rt.Shutdown()

	fast := rt.Start("fast", func(any) {}, nil)
	block := make(chan struct{})
	slow := rt.Start("slow", func(any) {
		<-block
	}, nil)

	done, err := rt.WaitAny(slow, fast)
	require.NoError(t, err)
	assert.Same(t, fast, done)

	close(block)
	require.NoError(t, rt.Wait(slow))
}

func TestWaitAnyFromWorkerTask(t *testing.T) {
	rt, err := New(WithWorkers(3))
	require.NoError(t, err)
	defer rt.Shutdown()

	a := rt.Start("a", func(any) {}, nil)
	b := rt.Start("b", func(any) {}, nil)

	result := make(chan *Task, 1)
	waiter := rt.Start("waiter", func(any) {
		done, err := rt.WaitAny(a, b)
		if err == nil {
			result <- done
		} else {
			result <- nil
		}
	}, nil)

	winner := <-result
	require.NotNil(t, winner)
	assert.Contains(t, []*Task{a, b}, winner)
	require.NoError(t, rt.Wait(waiter))

	// whichever of a/b WaitAny didn't claim is still unjoined
	for _, h := range []*Task{a, b} {
		if h != winner {
			require.NoError(t, rt.Wait(h))
		}
	}
}
