package mr

// Job queue for the worker pool: a singly-linked list kept sorted
// ascending by length so short jobs are served before long ones.

// job is one unit of work submitted to a WorkerPool. length is advisory
// scheduling metadata only (file byte-size for map jobs, partition pair
// count for reduce jobs) and never reflects actual CPU cost.
type job struct {
	run     func()
	length  int
	traceID string
	next    *job
}

// jobQueue is an ordered singly-linked list of pending jobs, sorted
// non-decreasing by length from head to tail. It is not safe for
// concurrent use on its own: callers (WorkerPool) must hold their own
// mutex around push/pop.
type jobQueue struct {
	head *job
	size int
}

// push inserts j into the sorted list. Ties at the head are placed
// ahead of the existing head (<=); in the body the walk advances only
// past strictly smaller lengths (strict <), so j is spliced in ahead
// of any jobs of equal length already queued there too. Among equal
// lengths, the most recently pushed job is therefore served first.
func (q *jobQueue) push(j *job) {
	switch {
	case q.head == nil:
		q.head = j
	case j.length <= q.head.length:
		j.next = q.head
		q.head = j
	default:
		prev := q.head
		curr := q.head.next
		for curr != nil && curr.length < j.length {
			prev = curr
			curr = curr.next
		}
		prev.next = j
		j.next = curr
	}
	q.size++
}

// pop removes and returns the head job, or nil if the queue is empty.
// It never blocks.
func (q *jobQueue) pop() *job {
	j := q.head
	if j != nil {
		q.head = j.next
		j.next = nil
		q.size--
	}
	return j
}
