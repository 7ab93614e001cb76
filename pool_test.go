package mr

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkerPoolRunsAllSubmittedJobs(t *testing.T) {
	pool := NewWorkerPool(4)

	var ran int32
	for i := 0; i < 50; i++ {
		err := pool.Submit(func() { atomic.AddInt32(&ran, 1) }, i)
		require.NoError(t, err)
	}

	pool.Barrier()
	require.EqualValues(t, 50, atomic.LoadInt32(&ran))

	pool.Shutdown()
}

func TestWorkerPoolBarrierQuiescence(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Shutdown()

	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		require.NoError(t, pool.Submit(func() { wg.Done() }, i))
	}
	wg.Wait()
	pool.Barrier()

	pool.mu.Lock()
	defer pool.mu.Unlock()
	require.Equal(t, 0, pool.queue.size)
	require.Equal(t, pool.numWorkers, pool.idle)
}

func TestWorkerPoolSubmitAfterShutdownFails(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Barrier()
	pool.Shutdown()

	err := pool.Submit(func() {}, 0)
	require.ErrorIs(t, err, ErrPoolShutdown)
}

// TestWorkerPoolShutdownJoinsAllWorkers relies on goleak (main_test.go)
// to catch a leaked worker goroutine; Shutdown itself blocks on
// wg.Wait(), so the only way to observe a leak is across the whole
// test binary's exit, not within this one test.
func TestWorkerPoolShutdownJoinsAllWorkers(t *testing.T) {
	pool := NewWorkerPool(5)
	pool.Barrier()
	pool.Shutdown()

	require.ErrorIs(t, pool.Submit(func() {}, 0), ErrPoolShutdown)
}
