package mr

import "github.com/pkg/errors"

// Error taxonomy for the engine: submission-after-shutdown and
// concurrent-Run-in-progress are sentinel errors callers can check
// with errors.Is; per-file I/O failures during input size-ranking are
// wrapped with file context via github.com/pkg/errors and returned
// before any job is scheduled.

var (
	// ErrPoolShutdown is returned by WorkerPool.Submit when the pool
	// has already been told to shut down.
	ErrPoolShutdown = errors.New("mr: worker pool is shut down")

	// ErrAlreadyRunning is returned by Run when another Run call is
	// already in flight. At most one Run is active at a time; nested or
	// concurrent calls are refused rather than run side by side.
	ErrAlreadyRunning = errors.New("mr: a Run is already in progress")

	// ErrNoWorkers and ErrNoPartitions guard the two cardinalities
	// Run needs to make progress at all.
	ErrNoWorkers    = errors.New("mr: numWorkers must be at least 1")
	ErrNoPartitions = errors.New("mr: numPartitions must be at least 1")
)
