package agent

import (
	"math/rand"

	"github.com/katalvlaran/sirsim/rng"
)

// Pool is the ordered, fixed-size population of a run. Agents are identified
// by their index for the lifetime of the pool.
//
// Pool is not safe for concurrent mutation; readers that run alongside a
// mutator must work on the copies returned by Positions, States or Snapshot.
type Pool struct {
	agents []Agent
	seeded bool
}

// NewPool allocates n Susceptible agents, each placed uniformly at random in
// the unit square. Positions are drawn in index order, x before y, from r.
// A nil r uses the rng.DefaultSeed stream.
//
// Returns ErrBadPopulation (an ErrConfiguration) if n <= 0.
// Complexity: O(n).
func NewPool(n int, r *rand.Rand) (*Pool, error) {
	if n <= 0 {
		return nil, configErrorf(ErrBadPopulation, "n=%d", n)
	}
	r = rng.OrDefault(r)

	agents := make([]Agent, n)
	for i := range agents {
		x, y := rng.Point(r)
		agents[i] = Agent{Pos: Point{X: x, Y: y}, State: Susceptible}
	}

	return &Pool{agents: agents}, nil
}

// FromAgents builds an already-seeded pool from explicit agents. It deep-copies
// the input. Every agent must have a valid state, a position in the unit
// square, and DaysInfectious == 0 unless Infectious (then >= 0).
//
// Returns ErrBadPopulation for an empty slice and ErrBadAgent for a malformed
// entry, both wrapped in ErrConfiguration.
func FromAgents(agents []Agent) (*Pool, error) {
	if len(agents) == 0 {
		return nil, configErrorf(ErrBadPopulation, "n=0")
	}
	for i, a := range agents {
		switch {
		case !a.State.Valid():
			return nil, configErrorf(ErrBadAgent, "agent %d: %v", i, a.State)
		case !a.Pos.InUnitSquare():
			return nil, configErrorf(ErrBadAgent, "agent %d: position %+v outside unit square", i, a.Pos)
		case a.DaysInfectious < 0:
			return nil, configErrorf(ErrBadAgent, "agent %d: negative days infectious", i)
		case a.State != Infectious && a.DaysInfectious != 0:
			return nil, configErrorf(ErrBadAgent, "agent %d: %v with days infectious %d", i, a.State, a.DaysInfectious)
		}
	}
	cp := make([]Agent, len(agents))
	copy(cp, agents)

	return &Pool{agents: cp, seeded: true}, nil
}

// Seed assigns the initial compartments once. It first chooses infectious
// agents uniformly at random without replacement and makes them Infectious,
// then chooses recovered agents from the remaining non-Infectious agents and
// makes them Recovered.
//
// Validation happens before any mutation: negative counts or
// infectious+recovered > Len() return ErrBadSeedCounts, a second call returns
// ErrAlreadySeeded, and the pool is left unchanged in both cases.
// Complexity: O(n).
func (p *Pool) Seed(infectious, recovered int, r *rand.Rand) error {
	n := len(p.agents)
	if p.seeded {
		return configErrorf(ErrAlreadySeeded, "seed requested twice")
	}
	if infectious < 0 || recovered < 0 || infectious+recovered > n {
		return configErrorf(ErrBadSeedCounts, "infectious=%d recovered=%d population=%d", infectious, recovered, n)
	}
	r = rng.OrDefault(r)

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	picked, err := rng.Sample(all, infectious, r)
	if err != nil {
		return invariantErrorf(err, "sampling infectious")
	}
	for _, i := range picked {
		p.agents[i].State = Infectious
		p.agents[i].DaysInfectious = 0
	}

	rest := make([]int, 0, n-infectious)
	for i := range p.agents {
		if p.agents[i].State != Infectious {
			rest = append(rest, i)
		}
	}
	picked, err = rng.Sample(rest, recovered, r)
	if err != nil {
		return invariantErrorf(err, "sampling recovered")
	}
	for _, i := range picked {
		p.agents[i].State = Recovered
	}
	p.seeded = true

	return nil
}

// Seeded reports whether initial compartments have been assigned.
func (p *Pool) Seeded() bool {
	return p.seeded
}

// Len returns the population size.
func (p *Pool) Len() int {
	return len(p.agents)
}

// At returns a copy of agent i.
func (p *Pool) At(i int) (Agent, error) {
	if err := p.check(i); err != nil {
		return Agent{}, err
	}

	return p.agents[i], nil
}

// Positions returns a copy of every agent position in index order.
// Complexity: O(n).
func (p *Pool) Positions() []Point {
	out := make([]Point, len(p.agents))
	for i := range p.agents {
		out[i] = p.agents[i].Pos
	}

	return out
}

// States returns a copy of every agent state in index order.
// Complexity: O(n).
func (p *Pool) States() []State {
	out := make([]State, len(p.agents))
	for i := range p.agents {
		out[i] = p.agents[i].State
	}

	return out
}

// Snapshot returns the ordered (position, state) view handed to visualization.
// Complexity: O(n).
func (p *Pool) Snapshot() []Snapshot {
	out := make([]Snapshot, len(p.agents))
	for i := range p.agents {
		out[i] = Snapshot{Pos: p.agents[i].Pos, State: p.agents[i].State}
	}

	return out
}

// Indices returns, in ascending order, the indices of agents in state s.
// Complexity: O(n).
func (p *Pool) Indices(s State) []int {
	var out []int
	for i := range p.agents {
		if p.agents[i].State == s {
			out = append(out, i)
		}
	}

	return out
}

// Tick increments DaysInfectious of Infectious agent i and returns the new value.
func (p *Pool) Tick(i int) (int, error) {
	if err := p.check(i); err != nil {
		return 0, err
	}
	a := &p.agents[i]
	if a.State != Infectious {
		return 0, invariantErrorf(ErrIllegalTransition, "tick on %v agent %d", a.State, i)
	}
	a.DaysInfectious++

	return a.DaysInfectious, nil
}

// Recover moves Infectious agent i to Recovered.
func (p *Pool) Recover(i int) error {
	if err := p.check(i); err != nil {
		return err
	}
	a := &p.agents[i]
	if a.State != Infectious {
		return invariantErrorf(ErrIllegalTransition, "recover %v agent %d", a.State, i)
	}
	a.State = Recovered
	a.DaysInfectious = 0

	return nil
}

// Infect moves Susceptible agent i to Infectious with a fresh day counter.
func (p *Pool) Infect(i int) error {
	if err := p.check(i); err != nil {
		return err
	}
	a := &p.agents[i]
	if a.State != Susceptible {
		return invariantErrorf(ErrIllegalTransition, "infect %v agent %d", a.State, i)
	}
	a.State = Infectious
	a.DaysInfectious = 0

	return nil
}

// Relocate sets the position of agent i. pos must lie in the unit square.
func (p *Pool) Relocate(i int, pos Point) error {
	if err := p.check(i); err != nil {
		return err
	}
	if !pos.InUnitSquare() {
		return invariantErrorf(ErrIllegalTransition, "relocate agent %d to %+v", i, pos)
	}
	p.agents[i].Pos = pos

	return nil
}

func (p *Pool) check(i int) error {
	if i < 0 || i >= len(p.agents) {
		return invariantErrorf(ErrIndexOutOfRange, "index %d, population %d", i, len(p.agents))
	}

	return nil
}
