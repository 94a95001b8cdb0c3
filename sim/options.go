package sim

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/sirsim/rng"
	"github.com/katalvlaran/sirsim/scan"
)

// Option customizes a Simulation before it is seeded.
// Option constructors panic on meaningless inputs; New itself never panics.
type Option func(*settings)

type settings struct {
	rng       *rand.Rand
	scanner   scan.Scanner
	observers []Observer
	logger    *zap.Logger
}

func defaultSettings() settings {
	return settings{
		scanner: scan.Grid{},
		logger:  zap.NewNop(),
	}
}

// WithSeed seeds the shared generator (seed==0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.rng = rng.FromSeed(seed)
	}
}

// WithRand supplies the shared generator explicitly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sim: WithRand(nil)")
	}
	return func(s *settings) {
		s.rng = r
	}
}

// WithScanner replaces the default scan.Grid. Panics on nil.
func WithScanner(sc scan.Scanner) Option {
	if sc == nil {
		panic("sim: WithScanner(nil)")
	}
	return func(s *settings) {
		s.scanner = sc
	}
}

// WithObserver attaches a read-only collaborator notified after seeding and
// after every stage. May be given several times. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("sim: WithObserver(nil)")
	}
	return func(s *settings) {
		s.observers = append(s.observers, o)
	}
}

// WithLogger sets the structured logger. Panics on nil; use zap.NewNop to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sim: WithLogger(nil)")
	}
	return func(s *settings) {
		s.logger = l
	}
}
