// File: sim/example_test.go
package sim_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sirsim/sim"
)

// ExampleSimulation_Run runs a tiny epidemic whose radius covers the whole
// square. The seed infects everybody on day 1, recovers on day 2, and the
// rest recover on day 3.
func ExampleSimulation_Run() {
	s, err := sim.New(sim.Params{
		Susceptible:   9,
		Infectious:    1,
		Radius:        1.5,
		DaysToRecover: 1,
		MaxDays:       10,
	}, sim.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, _ := s.Run(context.Background())
	for _, e := range res.Series {
		fmt.Printf("day %d: S=%d I=%d R=%d\n", e.Day, e.S, e.I, e.R)
	}
	fmt.Println("stop:", res.StopReason)

	// Output:
	// day 0: S=9 I=1 R=0
	// day 1: S=0 I=10 R=0
	// day 2: S=0 I=9 R=1
	// day 3: S=0 I=0 R=10
	// stop: extinct
}
