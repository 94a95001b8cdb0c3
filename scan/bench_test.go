package scan_test

import (
	"testing"

	"github.com/katalvlaran/sirsim/agent"
	"github.com/katalvlaran/sirsim/rng"
	"github.com/katalvlaran/sirsim/scan"
)

// benchPool builds a deterministic 5000-agent pool with 500 sources.
func benchPool(b *testing.B) *agent.Pool {
	b.Helper()
	r := rng.FromSeed(42)
	pool, err := agent.NewPool(5000, r)
	if err != nil {
		b.Fatal(err)
	}
	if err = pool.Seed(500, 0, r); err != nil {
		b.Fatal(err)
	}
	return pool
}

func benchScanner(b *testing.B, sc scan.Scanner) {
	pool := benchPool(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sc.Scan(pool, 0.025); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBruteForce measures the O(k·n) reference scan.
func BenchmarkBruteForce(b *testing.B) { benchScanner(b, scan.BruteForce{}) }

// BenchmarkGrid measures the grid-backed scan.
func BenchmarkGrid(b *testing.B) { benchScanner(b, scan.Grid{}) }

// BenchmarkParallelGrid measures the grid-backed scan over four workers.
func BenchmarkParallelGrid(b *testing.B) { benchScanner(b, scan.NewParallel(4, true)) }
