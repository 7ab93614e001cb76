package mr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONProtocolRoundTrip(t *testing.T) {
	p := JSONProtocol{}

	kv := p.Marshal("word", "", 3)
	require.Equal(t, `"word"`, kv.ReduceKey)
	require.Equal(t, "3", kv.Value)

	var key string
	var values []int
	p.UnmarshalKVs(kv.ReduceKey, []string{"1", "2", "3"}, &key, &values)

	require.Equal(t, "word", key)
	require.Equal(t, []int{1, 2, 3}, values)
}

func TestTSVProtocolRoundTrip(t *testing.T) {
	p := TSVProtocol{}

	kv := p.Marshal("k1", nil, 42)
	require.Equal(t, "k1", kv.ReduceKey)
	require.Equal(t, "42", kv.Value)

	var key string
	var values []int
	p.UnmarshalKVs("k1", []string{"42", "7"}, &key, &values)

	require.Equal(t, "k1", key)
	require.Equal(t, []int{42, 7}, values)
}
