package scan

import (
	"fmt"

	"github.com/katalvlaran/sirsim/agent"
)

// Kind names a Scanner implementation in configuration.
type Kind string

const (
	KindBrute    Kind = "brute"
	KindGrid     Kind = "grid"
	KindParallel Kind = "parallel"
)

// Kinds lists the supported scanner kinds.
func Kinds() []Kind {
	return []Kind{KindBrute, KindGrid, KindParallel}
}

// ByName builds the Scanner for kind. workers only affects KindParallel,
// which always uses grid-backed search; workers <= 0 means GOMAXPROCS.
// An empty kind selects KindGrid.
func ByName(kind Kind, workers int) (Scanner, error) {
	switch kind {
	case KindBrute:
		return BruteForce{}, nil
	case KindGrid, "":
		return Grid{}, nil
	case KindParallel:
		return Parallel{Workers: workers, UseGrid: true}, nil
	default:
		return nil, fmt.Errorf("%w: %w: %q", agent.ErrConfiguration, ErrUnknownScanner, kind)
	}
}
