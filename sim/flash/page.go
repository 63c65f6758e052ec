package flash

import (
	"github.com/pkg/errors"

	"github.com/mlcsim/mlcsim/sim"
)

// Page is the smallest programmable unit: a fixed array of analog levels plus the
// number of erase cycles it has gone through.
type Page struct {
	cells      []uint8
	writeCount uint32
}

// NewPage returns an erased page of the given number of cells.
func NewPage(cells int) *Page {
	return &Page{cells: make([]uint8, cells)}
}

// Size returns the number of cells in the page.
func (p *Page) Size() int {
	return len(p.cells)
}

// WriteCount returns the number of times the page has been erased.
func (p *Page) WriteCount() uint32 {
	return p.writeCount
}

// Program stores data into the page, passing every level through f.
// Every cell must be erased; otherwise nothing is written and ErrIllegalReprogram is returned.
func (p *Page) Program(data []uint8, f sim.Fluctuator) error {
	if len(data) != len(p.cells) {
		return errors.Wrapf(sim.ErrSizeMismatch, "page has %d cells, got %d levels", len(p.cells), len(data))
	}
	for i, level := range p.cells {
		if level != 0 {
			return errors.Wrapf(sim.ErrIllegalReprogram, "cell %d holds level %d", i, level)
		}
	}
	for i, level := range data {
		p.cells[i] = f.Fluctuate(p.writeCount, level)
	}
	return nil
}

// Read returns a copy of the stored (already fluctuated) levels.
func (p *Page) Read() []uint8 {
	out := make([]uint8, len(p.cells))
	copy(out, p.cells)
	return out
}

// Reset erases every cell and counts one more erase cycle.
func (p *Page) Reset() {
	clear(p.cells)
	p.writeCount++
}
