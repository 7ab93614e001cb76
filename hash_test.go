package mr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDjb2IsBitExact(t *testing.T) {
	// h = 5381, then h*33+c over each byte.
	require.EqualValues(t, 5381*33+'a', djb2("a"))
}

func TestPartitionerPinnedRoutingValues(t *testing.T) {
	cases := map[string]int{
		"apple":  7,
		"banana": 0,
		"cherry": 6,
	}
	for key, want := range cases {
		require.Equal(t, want, Partitioner(key, 10), "key %q", key)
	}
}

func TestPartitionerSinglePartitionAlwaysZero(t *testing.T) {
	for _, k := range []string{"a", "b", "anything"} {
		require.Equal(t, 0, Partitioner(k, 1))
	}
}
