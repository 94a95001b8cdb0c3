package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sirsim/agent"
	"github.com/katalvlaran/sirsim/sim"
)

// TestCount_FromScratch tallies a hand-built pool.
func TestCount_FromScratch(t *testing.T) {
	pool, err := agent.FromAgents([]agent.Agent{
		{State: agent.Susceptible},
		{State: agent.Infectious, DaysInfectious: 3},
		{State: agent.Infectious},
		{State: agent.Recovered},
	})
	require.NoError(t, err)

	c, err := sim.Count(pool)
	require.NoError(t, err)
	assert.Equal(t, sim.Counts{S: 1, I: 2, R: 1}, c)
	assert.Equal(t, 4, c.Total())
	assert.Equal(t, 2, c.Of(agent.Infectious))
	assert.Zero(t, c.Of(agent.State(9)))
	assert.False(t, sim.ShouldStop(c))
	assert.True(t, sim.ShouldStop(sim.Counts{S: 3, R: 1}))
}

// TestTimeSeries_AppendOnly accepts consecutive days only.
func TestTimeSeries_AppendOnly(t *testing.T) {
	var ts sim.TimeSeries
	_, ok := ts.Last()
	assert.False(t, ok)

	err := ts.Record(1, sim.Counts{})
	assert.ErrorIs(t, err, sim.ErrSeriesOrder, "first record must be day 0")

	require.NoError(t, ts.Record(0, sim.Counts{S: 9, I: 1}))
	require.NoError(t, ts.Record(1, sim.Counts{S: 7, I: 3}))
	require.NoError(t, ts.Record(2, sim.Counts{S: 7, I: 2, R: 1}))

	for _, day := range []int{0, 2, 4} {
		err = ts.Record(day, sim.Counts{})
		assert.ErrorIs(t, err, sim.ErrSeriesOrder, "day %d", day)
		assert.ErrorIs(t, err, sim.ErrInvariantViolation, "day %d", day)
	}
	assert.Equal(t, 3, ts.Len())

	last, ok := ts.Last()
	require.True(t, ok)
	assert.Equal(t, 2, last.Day)
	assert.Equal(t, []int{9, 7, 7}, ts.Column(agent.Susceptible))
	assert.Equal(t, []int{1, 3, 2}, ts.Column(agent.Infectious))
	assert.Equal(t, []int{0, 0, 1}, ts.Column(agent.Recovered))

	entries := ts.Entries()
	entries[0].S = 1000
	assert.Equal(t, []int{9, 7, 7}, ts.Column(agent.Susceptible), "Entries must return a copy")
}

// TestStrings covers the enum names used in logs and configuration.
func TestStrings(t *testing.T) {
	assert.Equal(t, "non-infectious", sim.MoveNonInfectious.String())
	assert.Equal(t, "all", sim.MoveAll.String())
	assert.Equal(t, "movement(5)", sim.Movement(5).String())
	assert.Equal(t, "extinct", sim.StopExtinct.String())
	assert.Equal(t, "max-days", sim.StopMaxDays.String())
	assert.Equal(t, "cancelled", sim.StopCancelled.String())
	assert.Equal(t, "failed", sim.StopFailed.String())
	assert.Equal(t, "stage(9)", sim.Stage(9).String())
}
