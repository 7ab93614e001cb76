package mr

// Reduce-phase driver and the GetNext cursor API.

// Collector lets a reducer pull successive values for the key it was
// invoked with. GetNext returns ok == false once the current key's run
// is exhausted (cursor parked at the first differing key) or if called
// with a key that does not match the cursor's current key — the
// cursor is only ever advanced by a matching call. A reducer that
// queries the wrong key simply gets nothing back; the cursor is left
// untouched for the next correct call. This is documented behavior,
// not a bug.
type Collector interface {
	GetNext(key string) (value string, ok bool)
}

// partitionCollector scopes GetNext to a single partition for the
// duration of one reduce job.
type partitionCollector struct {
	part *partition
}

func (c *partitionCollector) GetNext(key string) (string, bool) {
	c.part.mu.Lock()
	defer c.part.mu.Unlock()

	cur := c.part.cursor
	if cur == nil || cur.key != key {
		return "", false
	}
	c.part.cursor = cur.next
	return cur.value, true
}

// ReducerFunc is the callback a reducer job invokes once per distinct
// key in its partition. It must drain that key's values via values
// before returning; reduce.go's driver advances to the next distinct
// key only because every matching GetNext call moved the cursor.
type ReducerFunc func(key string, partitionIdx int, values Collector)

// reduceJob builds the closure run by the worker pool for partition
// idx: reset the cursor to head, then repeatedly invoke reducer on the
// key at the cursor until the cursor runs out.
func reduceJob(idx int, part *partition, reducer ReducerFunc) func() {
	collector := &partitionCollector{part: part}

	return func() {
		part.resetCursor()

		for {
			part.mu.Lock()
			cur := part.cursor
			part.mu.Unlock()

			if cur == nil {
				return
			}
			reducer(cur.key, idx, collector)
		}
	}
}
