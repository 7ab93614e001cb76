package mr

import (
	"os"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// MapperFunc is the callback a map job invokes once per input name.
// It calls emit zero or more times and returns when that input is
// exhausted; it owns reading its own input.
type MapperFunc func(input string, emit Emitter)

// runGuard enforces "exactly one Run active at a time". Each Run
// builds its own partition store and worker pool, but Run still
// refuses to overlap itself: a concurrent or nested call gets
// ErrAlreadyRunning.
var runGuard sync.Mutex

// Run is the MR_Run coordinator: it builds a worker pool and a
// partition store, submits one map job per input (ranked by byte size,
// smallest first), waits for the map barrier, submits one reduce job
// per partition (ranked by pair count), waits for the reduce barrier,
// and tears everything down. It blocks until both phases complete or
// a setup error is returned before any job is scheduled.
func Run(inputs []string, mapper MapperFunc, reducer ReducerFunc, numWorkers, numPartitions int) error {
	if numWorkers < 1 {
		return ErrNoWorkers
	}
	if numPartitions < 1 {
		return ErrNoPartitions
	}

	if !runGuard.TryLock() {
		return ErrAlreadyRunning
	}
	defer runGuard.Unlock()

	ranked, err := rankBySize(inputs)
	if err != nil {
		return err
	}

	store := newPartitionStore(numPartitions)
	pool := NewWorkerPool(numWorkers)
	emit := &storeEmitter{store: store}

	mapStart := time.Now()
	for _, in := range ranked {
		input := in.name
		if err := pool.Submit(func() { mapper(input, emit) }, int(in.size)); err != nil {
			// The pool was only just created and nothing has called
			// Shutdown yet, so this can only happen if numWorkers
			// somehow left the pool inactive — surface it rather
			// than dropping the input silently.
			pool.Shutdown()
			return errors.Wrapf(err, "mr: submitting map job for %q", input)
		}
	}
	pool.Barrier()
	log.Debug().Dur("elapsed", time.Since(mapStart)).Int("files", len(ranked)).Msg("map phase complete")

	reduceStart := time.Now()
	for idx, part := range store.partitions {
		idx, part := idx, part
		part.mu.Lock()
		length := part.size
		part.mu.Unlock()

		if err := pool.Submit(reduceJob(idx, part, reducer), length); err != nil {
			pool.Shutdown()
			return errors.Wrapf(err, "mr: submitting reduce job for partition %d", idx)
		}
	}
	pool.Barrier()
	log.Debug().Dur("elapsed", time.Since(reduceStart)).Int("partitions", numPartitions).Msg("reduce phase complete")

	pool.Shutdown()
	return nil
}

type rankedInput struct {
	name string
	size int64
}

// rankBySize stats every input and sorts them ascending by byte size:
// small files reach the front of the job queue quickly so workers are
// not starved behind one large file. A stat failure is fatal and
// reported before any job is scheduled, rather than proceeding with a
// missing input.
func rankBySize(inputs []string) ([]rankedInput, error) {
	ranked := make([]rankedInput, len(inputs))
	for i, name := range inputs {
		fi, err := os.Stat(name)
		if err != nil {
			return nil, errors.Wrapf(err, "mr: stat %q", name)
		}
		ranked[i] = rankedInput{name: name, size: fi.Size()}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].size < ranked[j].size
	})
	return ranked, nil
}
