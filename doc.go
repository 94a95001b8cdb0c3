// Package sirsim is an agent-based SIR epidemic simulator: a fixed population
// of point agents wanders the unit square while an infection spreads by
// proximity and burns out.
//
// 🚀 What happens on a day?
//
//	Every day runs the same three stages, always in this order:
//		• Monitor: infectious agents count their days and recover once the
//		  count exceeds DaysToRecover
//		• Move: every non-infectious agent jumps to a fresh uniform position
//		• Infect: a susceptible agent within the radius of an infectious one
//		  becomes infectious, judged on states taken before the scan
//
//	Counts are recomputed from scratch after each day and appended to the
//	time series; the run stops when nobody is infectious or MaxDays passes.
//
// ✨ Guarantees
//
//   - Deterministic: one seeded generator, advanced in a fixed order
//   - Conservative: S+I+R always equals the population
//   - Monotone: S never grows, R never shrinks, Recovered is absorbing
//   - Interchangeable scans: brute force, grid and parallel give one answer
//
// Packages, leaves first:
//
//	rng/        — seed policy, sampling without replacement
//	agent/      — Agent, Pool, legal S→I→R transitions
//	gridindex/  — uniform grid over the unit square for neighbour queries
//	scan/       — infection scanners (BruteForce, Grid, Parallel)
//	sim/        — daily pipeline, aggregation, simulation loop, observers
//	config/     — YAML run configuration
//	render/     — scatter/trend PNG, GIF animation, CSV trend export
//	cmd/sirsim/ — command line
//
// Quick ASCII view of one infection radius r:
//
//	      ·   S
//	   S ( I )   ← S inside the circle is infected at the end of the day
//	      ·       S
//
//	go run ./cmd/sirsim run --render --trend
package sirsim
