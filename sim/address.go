package sim

import "fmt"

// Address identifies one page on a device: (block index, page index within the block).
type Address struct {
	Block int
	Page  int
}

// NewAddress builds an Address.
func NewAddress(block, page int) Address {
	return Address{Block: block, Page: page}
}

func (a Address) String() string {
	return fmt.Sprintf("(%d,%d)", a.Block, a.Page)
}

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in r, or 0 for an empty or inverted range.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Within reports whether r lies inside [0, limit).
func (r Range) Within(limit int) bool {
	return r.Start >= 0 && r.End <= limit && r.Start <= r.End
}
