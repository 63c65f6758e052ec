package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcsim/mlcsim/sim"
)

func TestPageStateTable_StartsEmpty(t *testing.T) {
	table, err := NewPageStateTable(3, 2)
	require.NoError(t, err)

	states, err := table.GetMemoryState(sim.Range{Start: 0, End: 3})
	require.NoError(t, err)
	assert.Len(t, states, 6)
	for addr, st := range states {
		assert.Equal(t, sim.EmptyState(), st, addr.String())
	}
}

func TestPageStateTable_SetPageRange(t *testing.T) {
	// GIVEN a 2x4 table
	table, err := NewPageStateTable(2, 4)
	require.NoError(t, err)

	// WHEN pages [1,3) of block 1 are set
	require.NoError(t, table.SetMemoryState(1, sim.Range{Start: 1, End: 3}, sim.SetState(sim.Triple)))

	// THEN only those pages change
	states, err := table.GetMemoryState(sim.Range{Start: 1, End: 2})
	require.NoError(t, err)
	assert.Len(t, states, 4)
	assert.Equal(t, sim.EmptyState(), states[sim.NewAddress(1, 0)])
	assert.Equal(t, sim.SetState(sim.Triple), states[sim.NewAddress(1, 1)])
	assert.Equal(t, sim.SetState(sim.Triple), states[sim.NewAddress(1, 2)])
	assert.Equal(t, sim.EmptyState(), states[sim.NewAddress(1, 3)])

	block0, err := table.GetMemoryState(sim.Range{Start: 0, End: 1})
	require.NoError(t, err)
	for _, st := range block0 {
		assert.Equal(t, sim.EmptyState(), st)
	}
}

func TestPageStateTable_EmptyRanges(t *testing.T) {
	table, err := NewPageStateTable(2, 2)
	require.NoError(t, err)

	states, err := table.GetMemoryState(sim.Range{Start: 1, End: 1})
	require.NoError(t, err)
	assert.Empty(t, states)

	assert.NoError(t, table.SetMemoryState(0, sim.Range{Start: 2, End: 2}, sim.ResetPendingState()))
}

func TestPageStateTable_OutOfRange(t *testing.T) {
	table, err := NewPageStateTable(2, 2)
	require.NoError(t, err)

	_, err = table.GetMemoryState(sim.Range{Start: 0, End: 3})
	assert.ErrorIs(t, err, sim.ErrOutOfRange)

	assert.ErrorIs(t, table.SetMemoryState(2, sim.Range{Start: 0, End: 1}, sim.EmptyState()), sim.ErrOutOfRange)
	assert.ErrorIs(t, table.SetMemoryState(0, sim.Range{Start: 1, End: 3}, sim.EmptyState()), sim.ErrOutOfRange)
}

func TestNewPageStateTable_RejectsZeroDimensions(t *testing.T) {
	_, err := NewPageStateTable(0, 4)
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
}
