package flash

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mlcsim/mlcsim/sim"
)

// DeviceMemory is a fixed array of blocks sharing one wear model. It implements sim.Memory.
//
// DeviceMemory is not safe for concurrent use: Program and Reset need exclusive
// access to the whole device, and Read must not overlap them.
type DeviceMemory struct {
	fluctuator    sim.Fluctuator
	blocks        []*Block
	pagesPerBlock int
	cellsPerPage  int
	wearLimit     uint32 // erase count that triggers a wear warning; 0 disables it
}

var _ sim.Memory = (*DeviceMemory)(nil)

// NewDeviceMemory returns an erased device of the given geometry.
func NewDeviceMemory(fluctuator sim.Fluctuator, blocks, pagesPerBlock, cellsPerPage int) (*DeviceMemory, error) {
	if fluctuator == nil {
		return nil, errors.Wrap(sim.ErrInvalidConfig, "fluctuator is required")
	}
	if err := sim.ValidateGeometry(cellsPerPage, pagesPerBlock, blocks); err != nil {
		return nil, err
	}
	m := &DeviceMemory{
		fluctuator:    fluctuator,
		blocks:        make([]*Block, blocks),
		pagesPerBlock: pagesPerBlock,
		cellsPerPage:  cellsPerPage,
	}
	for i := range m.blocks {
		m.blocks[i] = NewBlock(pagesPerBlock, cellsPerPage)
	}
	if wf, ok := fluctuator.(*WearFluctuator); ok {
		m.wearLimit = uint32(wf.RatedEndurance())
	}
	return m, nil
}

// NewDeviceMemoryFromConfig validates cfg and builds a device with the wear model it names.
func NewDeviceMemoryFromConfig(cfg sim.DeviceConfig, rng *sim.PartitionedRNG) (*DeviceMemory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fluctuator, err := NewFluctuator(cfg.Fluctuation, rng)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("creating device: %d blocks x %d pages x %d cells, fluctuation=%s",
		cfg.Blocks, cfg.PagesPerBlock, cfg.CellsPerPage, cfg.Fluctuation.Model)
	return NewDeviceMemory(fluctuator, cfg.Blocks, cfg.PagesPerBlock, cfg.CellsPerPage)
}

// Blocks returns the number of erase blocks.
func (m *DeviceMemory) Blocks() int {
	return len(m.blocks)
}

// PagesPerBlock returns the number of pages in every block.
func (m *DeviceMemory) PagesPerBlock() int {
	return m.pagesPerBlock
}

// CellsPerPage returns the number of cells in every page.
func (m *DeviceMemory) CellsPerPage() int {
	return m.cellsPerPage
}

func (m *DeviceMemory) block(blockID int) (*Block, error) {
	if err := checkIndex("block", blockID, len(m.blocks)); err != nil {
		return nil, err
	}
	return m.blocks[blockID], nil
}

// Read returns the raw levels of the page at addr.
func (m *DeviceMemory) Read(addr sim.Address) ([]uint8, error) {
	b, err := m.block(addr.Block)
	if err != nil {
		return nil, err
	}
	levels, err := b.Read(addr.Page)
	if err != nil {
		return nil, errors.WithMessagef(err, "read %s", addr)
	}
	return levels, nil
}

// Program writes data into the page at addr through the device's fluctuator.
func (m *DeviceMemory) Program(addr sim.Address, data []uint8) error {
	b, err := m.block(addr.Block)
	if err != nil {
		return err
	}
	if err := b.Program(addr.Page, data, m.fluctuator); err != nil {
		return errors.WithMessagef(err, "program %s", addr)
	}
	logrus.Debugf("programmed page %s (%d cells)", addr, len(data))
	return nil
}

// Reset erases the whole block.
func (m *DeviceMemory) Reset(blockID int) error {
	b, err := m.block(blockID)
	if err != nil {
		return err
	}
	b.Reset()
	wear := b.MaxWriteCount()
	logrus.Debugf("erased block %d, wear=%d", blockID, wear)
	if m.wearLimit > 0 && wear == m.wearLimit {
		logrus.Warnf("block %d reached rated endurance (%d erase cycles)", blockID, wear)
	}
	return nil
}

// WriteCount returns the erase count of the page at addr.
func (m *DeviceMemory) WriteCount(addr sim.Address) (uint32, error) {
	b, err := m.block(addr.Block)
	if err != nil {
		return 0, err
	}
	return b.WriteCount(addr.Page)
}
