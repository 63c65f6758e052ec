// Package encoding maps logical bits onto analog cell levels.
//
// A cell of density m splits the level range [0,255] into 2^m equal sections.
// Each group of m bits (most significant first) selects a section and is stored
// at the section's midpoint, so any level that drifts while staying inside the
// section still decodes to the same bits.
package encoding

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/mlcsim/mlcsim/sim"
)

// SectionEncoder implements sim.ByteEncoder for pages of a fixed number of cells.
// It holds no state besides the page size and is safe for concurrent use.
type SectionEncoder struct {
	cellsPerPage int
}

var _ sim.ByteEncoder = SectionEncoder{}

// NewSectionEncoder returns an encoder for pages of cellsPerPage cells.
func NewSectionEncoder(cellsPerPage int) (SectionEncoder, error) {
	if cellsPerPage <= 0 {
		return SectionEncoder{}, errors.Wrapf(sim.ErrInvalidConfig, "cells_per_page must be positive, got %d", cellsPerPage)
	}
	return SectionEncoder{cellsPerPage: cellsPerPage}, nil
}

// CellsPerPage returns the number of levels produced by Encode.
func (e SectionEncoder) CellsPerPage() int {
	return e.cellsPerPage
}

// BitsPerPage returns the number of bits a page holds at density ct.
func (e SectionEncoder) BitsPerPage(ct sim.CellType) int {
	return e.cellsPerPage * ct.Multiplier()
}

// Encode converts exactly BitsPerPage(ct) bits into one level per cell.
func (e SectionEncoder) Encode(bits []bool, ct sim.CellType) ([]uint8, error) {
	if !ct.IsValid() {
		return nil, errors.Wrapf(sim.ErrInvalidConfig, "cell type %d", int(ct))
	}
	if want := e.BitsPerPage(ct); len(bits) != want {
		return nil, errors.Wrapf(sim.ErrSizeMismatch, "%s page of %d cells needs %d bits, got %d",
			ct, e.cellsPerPage, want, len(bits))
	}
	width := SectionWidth(ct)
	return lo.Map(lo.Chunk(bits, ct.Multiplier()), func(chunk []bool, _ int) uint8 {
		return uint8(sectionIndex(chunk)*width + (width-1)/2)
	}), nil
}

// Decode converts one level per cell back into bits. Levels anywhere inside a
// section decode to that section's bits.
func (e SectionEncoder) Decode(levels []uint8, ct sim.CellType) ([]bool, error) {
	if !ct.IsValid() {
		return nil, errors.Wrapf(sim.ErrInvalidConfig, "cell type %d", int(ct))
	}
	if len(levels) != e.cellsPerPage {
		return nil, errors.Wrapf(sim.ErrSizeMismatch, "page has %d cells, got %d levels", e.cellsPerPage, len(levels))
	}
	return lo.FlatMap(levels, func(level uint8, _ int) []bool {
		return sectionBits(SectionOf(level, ct), ct.Multiplier())
	}), nil
}

// SectionWidth returns the number of levels covered by each section at density ct.
func SectionWidth(ct sim.CellType) int {
	return math.MaxUint8/ct.Sections() + 1
}

// SectionOf returns the index of the section containing level. The last section
// absorbs any levels left over by the width rounding.
func SectionOf(level uint8, ct sim.CellType) int {
	return min(int(level)/SectionWidth(ct), ct.Sections()-1)
}

// SectionBounds returns the lowest and highest level that decode to section s.
func SectionBounds(s int, ct sim.CellType) (uint8, uint8) {
	width := SectionWidth(ct)
	low := s * width
	high := low + width - 1
	if s == ct.Sections()-1 {
		high = math.MaxUint8
	}
	return uint8(low), uint8(min(high, math.MaxUint8))
}

// sectionIndex reads bits as an unsigned integer, most significant bit first.
func sectionIndex(bits []bool) int {
	s := 0
	for _, b := range bits {
		s <<= 1
		if b {
			s |= 1
		}
	}
	return s
}

// sectionBits expands s into exactly n bits, most significant bit first.
func sectionBits(s, n int) []bool {
	bits := make([]bool, n)
	for i := n - 1; i >= 0; i-- {
		bits[i] = s&1 == 1
		s >>= 1
	}
	return bits
}
