package flash

import (
	"github.com/mlcsim/mlcsim/sim"
)

// Block is a fixed array of pages. Pages are programmed and read one at a time
// but can only be erased together.
type Block struct {
	pages []*Page
}

// NewBlock returns a block of erased pages.
func NewBlock(pagesPerBlock, cellsPerPage int) *Block {
	pages := make([]*Page, pagesPerBlock)
	for i := range pages {
		pages[i] = NewPage(cellsPerPage)
	}
	return &Block{pages: pages}
}

// Pages returns the number of pages in the block.
func (b *Block) Pages() int {
	return len(b.pages)
}

func (b *Block) page(pageID int) (*Page, error) {
	if err := checkIndex("page", pageID, len(b.pages)); err != nil {
		return nil, err
	}
	return b.pages[pageID], nil
}

// Read returns the raw levels of one page.
func (b *Block) Read(pageID int) ([]uint8, error) {
	p, err := b.page(pageID)
	if err != nil {
		return nil, err
	}
	return p.Read(), nil
}

// Program writes data into one page through f.
func (b *Block) Program(pageID int, data []uint8, f sim.Fluctuator) error {
	p, err := b.page(pageID)
	if err != nil {
		return err
	}
	return p.Program(data, f)
}

// Reset erases every page of the block.
func (b *Block) Reset() {
	for _, p := range b.pages {
		p.Reset()
	}
}

// WriteCount returns the erase count of one page.
func (b *Block) WriteCount(pageID int) (uint32, error) {
	p, err := b.page(pageID)
	if err != nil {
		return 0, err
	}
	return p.WriteCount(), nil
}

// MaxWriteCount returns the highest erase count among the block's pages.
func (b *Block) MaxWriteCount() uint32 {
	var highest uint32
	for _, p := range b.pages {
		highest = max(highest, p.WriteCount())
	}
	return highest
}
