package sim_test

import (
	"testing"

	"github.com/katalvlaran/sirsim/sim"
)

// BenchmarkStep measures one day on the classic 1001-agent configuration.
func BenchmarkStep(b *testing.B) {
	p := sim.Params{Susceptible: 1000, Infectious: 50, Radius: 0.025, DaysToRecover: 1 << 30, MaxDays: 1 << 30}
	s, err := sim.New(p, sim.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = s.Step(); err != nil {
			b.Fatal(err)
		}
	}
}
