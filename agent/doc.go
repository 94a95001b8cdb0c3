// Package agent owns the population of a simulation run: a fixed-size,
// index-stable pool of point agents on the unit square, each carrying an
// epidemiological state.
//
// What:
//
//   - State enumerates the compartments Susceptible, Infectious, Recovered.
//     Recovered is absorbing; Susceptible is never re-entered.
//   - Pool is created once (NewPool), seeded once (Seed), then mutated in
//     place by the daily state machine through Tick, Recover, Relocate and
//     Infect. Each mutator rejects transitions the state diagram forbids.
//   - Snapshot, Positions and States hand out copies, so collaborators and
//     the infection scan never alias live agents.
//
// Errors:
//
//   - ErrConfiguration: root of all caller-supplied parameter errors
//     (ErrBadPopulation, ErrBadSeedCounts, ErrAlreadySeeded, ErrBadAgent).
//   - ErrInvariant: root of implementation defects (ErrIndexOutOfRange,
//     ErrIllegalTransition). These are never recoverable.
//
// Both roots are matched with errors.Is; specific sentinels are joined to
// their root with %w, so either may be tested.
package agent
