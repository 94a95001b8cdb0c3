package agent

import "fmt"

// State is the epidemiological compartment of an agent.
type State uint8

const (
	// Susceptible agents can be infected.
	Susceptible State = iota
	// Infectious agents transmit within the infection radius and do not move.
	Infectious
	// Recovered agents are immune. No transition leaves Recovered.
	Recovered
)

// NumStates is the number of compartments.
const NumStates = 3

// String returns the compartment name.
func (s State) String() string {
	switch s {
	case Susceptible:
		return "susceptible"
	case Infectious:
		return "infectious"
	case Recovered:
		return "recovered"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the three compartments.
func (s State) Valid() bool {
	return s <= Recovered
}

// Point is a position in the unit square; both coordinates lie in [0,1).
type Point struct {
	X, Y float64
}

// DistSq returns the squared Euclidean distance between p and q.
// Complexity: O(1).
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// InUnitSquare reports whether p lies in [0,1)×[0,1).
func (p Point) InUnitSquare() bool {
	return p.X >= 0 && p.X < 1 && p.Y >= 0 && p.Y < 1
}

// Agent is one individual.
// DaysInfectious is meaningful only while State == Infectious and is zero on
// every state entry.
type Agent struct {
	Pos            Point
	State          State
	DaysInfectious int
}

// Snapshot is the read-only view of an agent handed to collaborators.
type Snapshot struct {
	Pos   Point
	State State
}
