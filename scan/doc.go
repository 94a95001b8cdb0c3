// Package scan finds, for one simulated day, the Susceptible agents that lie
// within the infection radius of at least one Infectious agent.
//
// What:
//
//   - Scanner is the single entry point used by the daily state machine:
//     Scan(pool, radius) returns the ascending, duplicate-free indices of the
//     agents to infect today.
//   - BruteForce compares every Infectious source against every agent: O(k·n).
//   - Grid buckets Susceptible agents into a gridindex.Index with cells at
//     least one radius wide and only checks the 3×3 block of each source.
//   - Parallel splits the sources across goroutines (errgroup) and joins
//     before returning.
//
// Predicate (identical for every Scanner):
//
//	target j is marked  ⇔  ∃ source s ≠ j:
//	    state[s] == Infectious  ∧  state[j] == Susceptible  ∧
//	    (xs−xj)² + (ys−yj)² ≤ radius²
//
// States and positions are copied from the pool once at the start of a scan,
// so marking never promotes a target into a source within the same day, and
// the result does not depend on source order or worker scheduling.
//
// Errors:
//
//   - ErrBadRadius:      radius negative, NaN or infinite (an agent.ErrConfiguration).
//   - ErrUnknownScanner: ByName got an unknown kind (an agent.ErrConfiguration).
//   - agent.ErrInvariant: an index produced by the scan fell outside the pool.
package scan
