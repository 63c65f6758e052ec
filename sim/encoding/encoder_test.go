package encoding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcsim/mlcsim/sim"
)

func newEncoder(t *testing.T, cells int) SectionEncoder {
	t.Helper()
	e, err := NewSectionEncoder(cells)
	require.NoError(t, err)
	return e
}

func TestEncode_KnownLevels(t *testing.T) {
	e := newEncoder(t, 1)
	tests := []struct {
		name string
		bits []bool
		ct   sim.CellType
		want uint8
	}{
		{"single zero", []bool{false}, sim.Single, 63},
		{"single one", []bool{true}, sim.Single, 191},
		{"double 10", []bool{true, false}, sim.Double, 159},
		{"double 00", []bool{false, false}, sim.Double, 31},
		{"triple 111", []bool{true, true, true}, sim.Triple, 239},
		{"quadro 0001", []bool{false, false, false, true}, sim.Quadro, 23},
		{"penta 11111", []bool{true, true, true, true, true}, sim.Penta, 251},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Encode(tt.bits, tt.ct)
			require.NoError(t, err)
			assert.Equal(t, []uint8{tt.want}, got)
		})
	}
}

func TestDecode_KnownBits(t *testing.T) {
	e := newEncoder(t, 1)

	got, err := e.Decode([]uint8{0}, sim.Single)
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, got)

	got, err = e.Decode([]uint8{254}, sim.Penta)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true, true}, got)
}

func TestDecode_TopLevelsLandInLastSection(t *testing.T) {
	// Levels 254 and 255 must not run past the final section at any density.
	e := newEncoder(t, 2)
	for _, ct := range sim.AllCellTypes {
		got, err := e.Decode([]uint8{254, 255}, ct)
		require.NoError(t, err, ct.String())
		for i, b := range got {
			assert.True(t, b, "%s bit %d", ct, i)
		}
		low, high := SectionBounds(ct.Sections()-1, ct)
		assert.Equal(t, uint8(255), high, ct.String())
		assert.Equal(t, ct.Sections()-1, SectionOf(low, ct), ct.String())
	}
}

func TestSections_CoverLevelRangeContiguously(t *testing.T) {
	for _, ct := range sim.AllCellTypes {
		next := 0
		for s := 0; s < ct.Sections(); s++ {
			low, high := SectionBounds(s, ct)
			assert.Equal(t, next, int(low), "%s section %d", ct, s)
			assert.GreaterOrEqual(t, high, low)
			next = int(high) + 1
		}
		assert.Equal(t, 256, next, ct.String())
	}
}

func TestRoundTrip_RandomBits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for cells := 1; cells <= 8; cells++ {
		e := newEncoder(t, cells)
		for _, ct := range sim.AllCellTypes {
			for trial := 0; trial < 20; trial++ {
				bits := make([]bool, e.BitsPerPage(ct))
				for i := range bits {
					bits[i] = rng.Intn(2) == 1
				}
				levels, err := e.Encode(bits, ct)
				require.NoError(t, err)
				require.Len(t, levels, cells)

				got, err := e.Decode(levels, ct)
				require.NoError(t, err)
				require.Equal(t, bits, got, "cells=%d ct=%s", cells, ct)
			}
		}
	}
}

func TestDecode_ToleratesDriftWithinSection(t *testing.T) {
	// Every level inside a section decodes to the bits its midpoint encodes.
	e := newEncoder(t, 1)
	for _, ct := range sim.AllCellTypes {
		for s := 0; s < ct.Sections(); s++ {
			want := sectionBits(s, ct.Multiplier())
			low, high := SectionBounds(s, ct)
			for level := int(low); level <= int(high); level++ {
				got, err := e.Decode([]uint8{uint8(level)}, ct)
				require.NoError(t, err)
				require.Equal(t, want, got, "%s level %d", ct, level)
			}
		}
	}
}

func TestEncode_SizeMismatch(t *testing.T) {
	e := newEncoder(t, 4)
	_, err := e.Encode([]bool{true, false, true}, sim.Single)
	assert.ErrorIs(t, err, sim.ErrSizeMismatch)

	_, err = e.Encode(make([]bool, 4), sim.Double)
	assert.ErrorIs(t, err, sim.ErrSizeMismatch)
}

func TestDecode_SizeMismatch(t *testing.T) {
	e := newEncoder(t, 4)
	_, err := e.Decode([]uint8{1, 2, 3}, sim.Triple)
	assert.ErrorIs(t, err, sim.ErrSizeMismatch)
}

func TestEncoder_InvalidCellType(t *testing.T) {
	e := newEncoder(t, 1)
	_, err := e.Encode([]bool{true}, sim.CellType(9))
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
	_, err = e.Decode([]uint8{1}, sim.CellType(-1))
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
}

func TestNewSectionEncoder_RejectsEmptyPage(t *testing.T) {
	_, err := NewSectionEncoder(0)
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
}
