package mr

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enforces a no-leaks property across this package's test
// suite: no worker goroutine may outlive a test that called Shutdown
// (or, for Run, returned).
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
