// Package jobid mints short, collision-resistant trace identifiers for
// jobs submitted to the worker pool. The identifier is cosmetic: it
// only ever surfaces in log lines (pool.go), never in scheduling
// decisions, so random bytes run through a fast non-cryptographic hash
// are enough.
package jobid

import (
	"crypto/rand"
	"strconv"

	"github.com/spaolacci/murmur3"
)

// New returns a new trace id, a hex-encoded 64-bit murmur3 digest of
// 16 random bytes.
func New() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strconv.FormatUint(murmur3.Sum64(buf), 16), nil
}
