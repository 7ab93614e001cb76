package mr

import (
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dmrlib/mr/internal/jobid"
)

// WorkerPool is a fixed set of goroutines that serve jobs from a single
// shared, length-ordered queue: one mutex, one condition variable, and
// an idle counter the barrier spins on.
//
// Both map and reduce jobs run against the same pool; there is no
// dedicated reduce pool.
type WorkerPool struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue jobQueue

	active     bool
	idle       int
	numWorkers int

	wg sync.WaitGroup
}

// NewWorkerPool starts n worker goroutines and returns the running pool.
func NewWorkerPool(n int) *WorkerPool {
	p := &WorkerPool{
		active:     true,
		numWorkers: n,
	}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.workerLoop(i)
	}

	log.Debug().Int("workers", n).Msg("worker pool started")
	return p
}

// workerLoop is the body of one pool worker: lock, wait while the
// queue is empty and the pool is active, pop the head job, unlock,
// run it. A job obtained from a shutdown-triggered wake (queue still
// non-empty after active goes false) is still executed before the
// worker exits; each worker runs at most one such job, which is why
// WorkerPool.Shutdown does not drain a longer backlog.
func (p *WorkerPool) workerLoop(id int) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for p.queue.size == 0 && p.active {
			p.idle++
			p.cond.Wait()
			p.idle--
		}
		j := p.queue.pop()
		active := p.active
		p.mu.Unlock()

		if j != nil {
			log.Debug().Int("worker", id).Str("trace_id", j.traceID).Int("length", j.length).Msg("executing job")
			j.run()
		}

		if !active {
			return
		}
	}
}

// Submit enqueues fn with the given ordering length. It returns
// ErrPoolShutdown without enqueueing if the pool has already been
// asked to shut down.
func (p *WorkerPool) Submit(fn func(), length int) error {
	id, err := jobid.New()
	if err != nil {
		id = "?"
	}

	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return ErrPoolShutdown
	}

	j := &job{run: fn, length: length, traceID: id}
	p.queue.push(j)
	size := p.queue.size
	p.cond.Signal()
	p.mu.Unlock()

	log.Debug().Str("trace_id", id).Int("length", length).Int("queue_size", size).Msg("job submitted")
	return nil
}

// Barrier blocks until the job queue is empty and every worker is
// idle. It is a busy-wait by design; runtime.Gosched between polls
// keeps it from starving other goroutines on a small GOMAXPROCS
// without changing the externally observable all-quiet contract.
func (p *WorkerPool) Barrier() {
	for {
		p.mu.Lock()
		quiescent := p.queue.size == 0 && p.idle == p.numWorkers
		p.mu.Unlock()

		if quiescent {
			return
		}
		runtime.Gosched()
	}
}

// Shutdown marks the pool inactive, wakes every waiting worker, and
// blocks until all of them have exited. Callers must have already
// observed a Barrier so the queue is empty; Shutdown does not drain a
// backlog of unstarted jobs.
func (p *WorkerPool) Shutdown() {
	p.mu.Lock()
	p.active = false
	p.mu.Unlock()

	p.cond.Broadcast()
	p.wg.Wait()

	log.Debug().Msg("worker pool shut down")
}
