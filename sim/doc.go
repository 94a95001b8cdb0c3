// Package sim drives an agent-based SIR epidemic on the unit square.
//
// 🚀 What happens in one day?
//
//	A day is the fixed pipeline  Monitor → Move → Infect :
//
//	  1. Monitor: every Infectious agent counts one more day; once the count
//	     exceeds Params.DaysToRecover it becomes Recovered.
//	  2. Move:    every agent that is not Infectious jumps to a fresh uniform
//	     position (MoveAll also relocates Infectious agents).
//	  3. Infect:  the configured scan.Scanner marks Susceptible agents within
//	     Params.Radius of an Infectious agent; all marks are applied at once.
//
//	The order is encoded in a single table (see day.go) and Step is the only
//	way to advance the pool, so callers cannot reorder the stages.
//
// ✨ Aggregation:
//
//   - Count recomputes S/I/R from the pool each time and enforces
//     S+I+R == population.
//   - TimeSeries is append-only, one Entry per day starting at day 0.
//   - ShouldStop is true once no agent is Infectious.
//
// ⚙️ Usage:
//
//	s, err := sim.New(sim.Params{
//	  Susceptible: 1000, Infectious: 1,
//	  Radius: 0.025, DaysToRecover: 7, MaxDays: 100,
//	}, sim.WithSeed(42))
//	if err != nil { ... }            // errors.Is(err, sim.ErrConfiguration)
//	res, err := s.Run(ctx)
//	fmt.Println(res.StopReason, res.Final)
//
// Determinism:
//
//	One *rand.Rand is advanced in a fixed order: placement, infectious
//	sampling, recovered sampling, then each day's movement draws. Equal seeds
//	give equal runs; nothing is promised across PRNG implementations.
//
// Concurrency:
//
//	A Simulation is single-threaded and not safe for concurrent use. Only
//	scan.Parallel fans out, inside the Infect stage, and it joins before any
//	state is mutated.
package sim
