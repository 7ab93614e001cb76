package mr

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func partitionKeys(p *partition) []string {
	var out []string
	for n := p.head; n != nil; n = n.next {
		out = append(out, n.key)
	}
	return out
}

func TestPartitionEmitKeepsSortedOrder(t *testing.T) {
	p := &partition{}
	for _, k := range []string{"m", "a", "z", "b", "a"} {
		p.emit(k, "1")
	}

	keys := partitionKeys(p)
	require.Len(t, keys, 5)
	require.True(t, sort.StringsAreSorted(keys), "keys not sorted: %v", keys)
	require.Equal(t, 5, p.size)
}

func TestPartitionStoreRoutesByPartitioner(t *testing.T) {
	ps := newPartitionStore(10)
	keys := []string{"apple", "banana", "cherry", "date", "fig"}

	for _, k := range keys {
		ps.emit(k, "v")
	}

	for _, k := range keys {
		want := Partitioner(k, 10)
		found := false
		for _, n := range partitionKeys(ps.partitions[want]) {
			if n == k {
				found = true
				break
			}
		}
		require.Truef(t, found, "key %q not found in expected partition %d", k, want)
	}
}

func TestPartitionConservationUnderConcurrentEmit(t *testing.T) {
	ps := newPartitionStore(1)

	const perMapper = 10000
	var wg sync.WaitGroup
	wg.Add(2)
	for m := 0; m < 2; m++ {
		go func(mapper int) {
			defer wg.Done()
			for i := 0; i < perMapper; i++ {
				ps.emit(fmt.Sprintf("m%d-k%06d", mapper, i), "1")
			}
		}(m)
	}
	wg.Wait()

	p := ps.partitions[0]
	require.Equal(t, 2*perMapper, p.size)

	keys := partitionKeys(p)
	require.Len(t, keys, 2*perMapper)
	require.True(t, sort.StringsAreSorted(keys))
}

func TestPartitionWordCountOrdering(t *testing.T) {
	p := &partition{}
	for _, w := range []string{"a", "b", "a", "c", "b", "a"} {
		p.emit(w, "1")
	}

	require.Equal(t, []string{"a", "a", "a", "b", "b", "c"}, partitionKeys(p))
}
