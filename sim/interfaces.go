package sim

// Fluctuator injects wear-dependent analog noise into a level at program time.
type Fluctuator interface {
	// Fluctuate returns the level actually stored when intended is programmed into a
	// cell whose page has been erased writeCount times. The result is always a valid level.
	Fluctuate(writeCount uint32, intended uint8) uint8
}

// Memory is the physical device: address-keyed page read/program and block erase.
// Program and Reset require exclusive access to the device; Read may run concurrently
// with other reads only.
type Memory interface {
	Read(addr Address) ([]uint8, error)
	Program(addr Address, data []uint8) error
	Reset(block int) error
}

// ByteEncoder translates logical bits to per-cell analog levels and back.
type ByteEncoder interface {
	Encode(bits []bool, ct CellType) ([]uint8, error)
	Decode(levels []uint8, ct CellType) ([]bool, error)
}

// MetricType tags one timed observation.
type MetricType int

const (
	MetricWrite MetricType = iota
	MetricRead
)

func (m MetricType) String() string {
	if m == MetricRead {
		return "read"
	}
	return "write"
}

// MetricStorage collects timed observations grouped into named series.
type MetricStorage interface {
	ListMetric() []string
	PutMetric(series string, bitAmount uint32, timestamp int64, metricType MetricType)
}

// MemoryState tracks logical page occupancy independently of the analog content.
type MemoryState interface {
	GetMemoryState(blocks Range) (map[Address]CellState, error)
	SetMemoryState(block int, pages Range, state CellState) error
}

// MemoryController is the bit-level facade over a device: it encodes, programs,
// reads and decodes whole pages at a chosen density.
type MemoryController interface {
	WriteBits(bits []bool, addr Address, ct CellType) error
	ReadBits(addr Address, ct CellType) ([]bool, error)
}
