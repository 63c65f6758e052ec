// Package sim models the physical storage layer of a multi-level-cell flash device.
//
// # Reading Guide
//
// Start with these files:
//   - cell.go: CellType densities (1-5 bits per cell)
//   - timing.go: the fixed per-density latency table for Read/Write/Delete
//   - interfaces.go: the Fluctuator, Memory, ByteEncoder and collaborator contracts
//
// # Architecture
//
// The sim package defines value types, errors and interfaces; implementations live in
// sub-packages:
//   - sim/flash/: Page, Block, DeviceMemory and the wear fluctuators
//   - sim/encoding/: SectionEncoder, the bits <-> analog level codec
//   - sim/metric/: in-memory MetricStorage and summaries
//   - sim/controller/: page occupancy table and the bit-level MemoryController
//
// A caller encodes bits into levels, programs them through Memory at an Address
// (the Fluctuator perturbs each level on the way in), reads the raw levels back
// and decodes them. Erase happens per block, program and read per page.
//
// # Errors
//
// Size, range and reprogram violations are returned as wrapped sentinels
// (ErrSizeMismatch, ErrOutOfRange, ErrIllegalReprogram); test them with errors.Is.
// Level saturation during fluctuation is clamped and never reported.
package sim
