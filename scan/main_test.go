package scan_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if a Parallel scan leaks a worker goroutine.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
