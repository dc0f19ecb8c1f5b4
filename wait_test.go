package gmpcoro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitNilPanics(t *testing.T) {
	rt, err := New(WithWorkers(1))
	require.NoError(t, err)
	defer rt.Shutdown()

	assert.Panics(t, func() { rt.Wait(nil) })
}

func TestWaitOnMainTaskPanics(t *testing.T) {
	rt, err := New(WithWorkers(1))
	require.NoError(t, err)
	defer rt.Shutdown()

	assert.Panics(t, func() { rt.Wait(rt.mainTask) })
}

func TestSecondWaitOnDeadTaskReturnsErrAlreadyWaited(t *testing.T) {
	rt, err := New(WithWorkers(2))
	require.NoError(t, err)
	defer rt.Shutdown()

	h := rt.Start("quick", func(any) {}, nil)
	require.NoError(t, rt.Wait(h))

	// the task is DEAD now; a second, independent Wait call is a new joiner
	// and must be rejected
	err = rt.Wait(h)
	assert.ErrorIs(t, err, ErrAlreadyWaited)
}

func TestDoubleWaitFromConcurrentTasksRejectsSecond(t *testing.T) {
	rt, err := New(WithWorkers(3))
	require.NoError(t, err)
	defer rt.Shutdown()

	block := make(chan struct{})
	target := rt.Start("target", func(any) {
		<-block
	}, nil)

	results := make(chan error, 2)
	rt.Start("joiner-a", func(any) {
		results <- rt.Wait(target)
	}, nil)
	rt.Start("joiner-b", func(any) {
		results <- rt.Wait(target)
	}, nil)

	close(block)

	r1, r2 := <-results, <-results
	successes, rejections := 0, 0
	for _, r := range []error{r1, r2} {
		switch {
		case r == nil:
			successes++
		case r == ErrAlreadyWaited:
			rejections++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, rejections)
}

func TestWaitBlocksUntilTaskCompletes(t *testing.T) {
	rt, err := New(WithWorkers(2))
	require.NoError(t, err)
	defer rt.Shutdown()

	gate := make(chan struct{})
	var ran bool
	h := rt.Start("gated", func(any) {
		<-gate
		ran = true
	}, nil)

	close(gate)
	require.NoError(t, rt.Wait(h))
	assert.True(t, ran)
}
