package scan

import "github.com/katalvlaran/sirsim/agent"

// BruteForce is the reference Scanner: every source against every agent.
type BruteForce struct{}

var _ Scanner = BruteForce{}

// Scan implements Scanner.
// Complexity: O(k·n) time, O(n) memory; k = Infectious count.
func (BruteForce) Scan(pool *agent.Pool, radius float64) ([]int, error) {
	sn, err := takeSnapshot(pool, radius)
	if err != nil {
		return nil, err
	}
	n := len(sn.states)
	marked := make([]bool, n)
	for _, s := range sn.sources {
		for j := 0; j < n; j++ {
			if !marked[j] && sn.hit(s, j) {
				marked[j] = true
			}
		}
	}

	return collect(marked, n)
}
