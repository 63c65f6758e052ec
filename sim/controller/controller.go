// Package controller composes the encoder, the device and the collaborator
// contracts of the sim package into a bit-level page controller.
//
// The controller addresses physical pages directly: it performs no logical
// address translation, wear leveling or garbage collection.
package controller

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mlcsim/mlcsim/sim"
	"github.com/mlcsim/mlcsim/sim/encoding"
	"github.com/mlcsim/mlcsim/sim/flash"
)

const (
	// SeriesWrite is the metric series fed by WriteBits.
	SeriesWrite = "write"
	// SeriesRead is the metric series fed by ReadBits.
	SeriesRead = "read"
)

// Controller implements sim.MemoryController. Every completed operation advances
// a simulated clock by its OperationTime and records one metric observation.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type Controller struct {
	encoder sim.ByteEncoder
	memory  sim.Memory
	state   sim.MemoryState
	metrics sim.MetricStorage

	clock int64
	// densest cell type written into each block since its last erase; prices the erase
	blockDensity map[int]sim.CellType
}

var _ sim.MemoryController = (*Controller)(nil)

// New builds a Controller from its collaborators.
func New(encoder sim.ByteEncoder, memory sim.Memory, state sim.MemoryState, metrics sim.MetricStorage) *Controller {
	return &Controller{
		encoder:      encoder,
		memory:       memory,
		state:        state,
		metrics:      metrics,
		blockDensity: make(map[int]sim.CellType),
	}
}

// NewFromConfig builds a device, encoder and state table described by cfg, seeded
// from cfg.Seed, and wires them to metrics.
func NewFromConfig(cfg sim.DeviceConfig, metrics sim.MetricStorage) (*Controller, error) {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	memory, err := flash.NewDeviceMemoryFromConfig(cfg, rng)
	if err != nil {
		return nil, err
	}
	encoder, err := encoding.NewSectionEncoder(cfg.CellsPerPage)
	if err != nil {
		return nil, err
	}
	state, err := NewPageStateTable(cfg.Blocks, cfg.PagesPerBlock)
	if err != nil {
		return nil, err
	}
	return New(encoder, memory, state, metrics), nil
}

// Clock returns the simulated time in ticks.
func (c *Controller) Clock() int64 {
	return c.clock
}

func (c *Controller) pageState(addr sim.Address) (sim.CellState, error) {
	states, err := c.state.GetMemoryState(sim.Range{Start: addr.Block, End: addr.Block + 1})
	if err != nil {
		return sim.CellState{}, err
	}
	st, ok := states[addr]
	if !ok {
		return sim.CellState{}, errors.Wrapf(sim.ErrOutOfRange, "page %s", addr)
	}
	return st, nil
}

func pageRange(addr sim.Address) sim.Range {
	return sim.Range{Start: addr.Page, End: addr.Page + 1}
}

// WriteBits encodes bits at density ct and programs them into the Empty page at addr.
func (c *Controller) WriteBits(bits []bool, addr sim.Address, ct sim.CellType) error {
	st, err := c.pageState(addr)
	if err != nil {
		return err
	}
	if st.Kind != sim.StateEmpty {
		return errors.Wrapf(sim.ErrIllegalReprogram, "page %s is %s", addr, st)
	}
	levels, err := c.encoder.Encode(bits, ct)
	if err != nil {
		return err
	}
	if err := c.memory.Program(addr, levels); err != nil {
		return err
	}
	if err := c.state.SetMemoryState(addr.Block, pageRange(addr), sim.SetState(ct)); err != nil {
		return err
	}
	if prev, ok := c.blockDensity[addr.Block]; !ok || ct > prev {
		c.blockDensity[addr.Block] = ct
	}

	c.clock += sim.OperationTime(ct, sim.Write)
	c.metrics.PutMetric(SeriesWrite, uint32(len(bits)), c.clock, sim.MetricWrite)
	logrus.WithFields(logrus.Fields{
		"address":   addr.String(),
		"cell_type": ct.String(),
		"bits":      len(bits),
		"clock":     c.clock,
	}).Debug("wrote page")
	return nil
}

// ReadBits reads the page at addr and decodes it at density ct. A page written
// at another density is rejected; an Empty page decodes as erased levels.
func (c *Controller) ReadBits(addr sim.Address, ct sim.CellType) ([]bool, error) {
	st, err := c.pageState(addr)
	if err != nil {
		return nil, err
	}
	if st.Kind == sim.StateSet && st.CellType != ct {
		return nil, errors.Wrapf(sim.ErrCellTypeMismatch, "page %s written as %s, read as %s", addr, st.CellType, ct)
	}
	levels, err := c.memory.Read(addr)
	if err != nil {
		return nil, err
	}
	bits, err := c.encoder.Decode(levels, ct)
	if err != nil {
		return nil, err
	}

	c.clock += sim.OperationTime(ct, sim.Read)
	c.metrics.PutMetric(SeriesRead, uint32(len(bits)), c.clock, sim.MetricRead)
	logrus.WithFields(logrus.Fields{
		"address":   addr.String(),
		"cell_type": ct.String(),
		"bits":      len(bits),
		"clock":     c.clock,
	}).Debug("read page")
	return bits, nil
}

// Invalidate marks a written page as stale, pending the erase of its block.
// Invalidating an Empty page does nothing.
func (c *Controller) Invalidate(addr sim.Address) error {
	st, err := c.pageState(addr)
	if err != nil {
		return err
	}
	if st.Kind == sim.StateEmpty {
		return nil
	}
	return c.state.SetMemoryState(addr.Block, pageRange(addr), sim.ResetPendingState())
}

// EraseBlock erases every page of block and marks them Empty. The erase is charged
// at the densest cell type written into the block since its last erase.
func (c *Controller) EraseBlock(block int) error {
	states, err := c.state.GetMemoryState(sim.Range{Start: block, End: block + 1})
	if err != nil {
		return err
	}
	if err := c.memory.Reset(block); err != nil {
		return err
	}
	if err := c.state.SetMemoryState(block, sim.Range{Start: 0, End: len(states)}, sim.EmptyState()); err != nil {
		return err
	}

	density := c.blockDensity[block]
	delete(c.blockDensity, block)
	c.clock += sim.OperationTime(density, sim.Delete)
	logrus.WithFields(logrus.Fields{
		"block":     block,
		"cell_type": density.String(),
		"clock":     c.clock,
	}).Debug("erased block")
	return nil
}
