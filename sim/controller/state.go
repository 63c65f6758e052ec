package controller

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/mlcsim/mlcsim/sim"
)

// PageStateTable tracks the logical occupancy of every page of a device.
// All pages start Empty. It implements sim.MemoryState.
type PageStateTable struct {
	pagesPerBlock int
	states        [][]sim.CellState
}

var _ sim.MemoryState = (*PageStateTable)(nil)

// NewPageStateTable returns a table of blocks x pagesPerBlock Empty pages.
func NewPageStateTable(blocks, pagesPerBlock int) (*PageStateTable, error) {
	if blocks <= 0 || pagesPerBlock <= 0 {
		return nil, errors.Wrapf(sim.ErrInvalidConfig, "state table needs positive dimensions, got %d x %d", blocks, pagesPerBlock)
	}
	states := make([][]sim.CellState, blocks)
	for i := range states {
		states[i] = make([]sim.CellState, pagesPerBlock)
	}
	return &PageStateTable{pagesPerBlock: pagesPerBlock, states: states}, nil
}

// GetMemoryState returns the state of every page in the half-open block range.
func (t *PageStateTable) GetMemoryState(blocks sim.Range) (map[sim.Address]sim.CellState, error) {
	if !blocks.Within(len(t.states)) {
		return nil, errors.Wrapf(sim.ErrOutOfRange, "block range [%d,%d) not in [0,%d)", blocks.Start, blocks.End, len(t.states))
	}
	out := make(map[sim.Address]sim.CellState, blocks.Len()*t.pagesPerBlock)
	for _, b := range lo.RangeFrom(blocks.Start, blocks.Len()) {
		for p, st := range t.states[b] {
			out[sim.NewAddress(b, p)] = st
		}
	}
	return out, nil
}

// SetMemoryState assigns state to every page in the half-open page range of block.
func (t *PageStateTable) SetMemoryState(block int, pages sim.Range, state sim.CellState) error {
	if block < 0 || block >= len(t.states) {
		return errors.Wrapf(sim.ErrOutOfRange, "block index %d not in [0,%d)", block, len(t.states))
	}
	if !pages.Within(t.pagesPerBlock) {
		return errors.Wrapf(sim.ErrOutOfRange, "page range [%d,%d) not in [0,%d)", pages.Start, pages.End, t.pagesPerBlock)
	}
	for _, p := range lo.RangeFrom(pages.Start, pages.Len()) {
		t.states[block][p] = state
	}
	return nil
}
