package sim

import "github.com/katalvlaran/sirsim/agent"

// Frame is the read-only view handed to collaborators. Agents is a fresh copy;
// Counts are recomputed for the frame.
type Frame struct {
	Day    int
	Stage  Stage
	Agents []agent.Snapshot
	Counts Counts
}

// Observer receives frames after seeding and after each stage of each day.
// An error is logged by the simulation and otherwise ignored: observers can
// never alter or roll back simulation state.
type Observer interface {
	Observe(f Frame) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(f Frame) error

// Observe implements Observer.
func (fn ObserverFunc) Observe(f Frame) error {
	return fn(f)
}
