package sim

import "github.com/pkg/errors"

var (
	// ErrSizeMismatch is returned when a bit sequence or level array has the wrong length for a page.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrIllegalReprogram is returned when a program targets a cell that is not erased.
	ErrIllegalReprogram = errors.New("cannot program non-empty cell")

	// ErrOutOfRange is returned when a block or page index exceeds the device geometry.
	ErrOutOfRange = errors.New("address out of range")

	// ErrInvalidConfig is returned for malformed device dimensions or configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCellTypeMismatch is returned when a page is read back at a density other than the one it was written with.
	ErrCellTypeMismatch = errors.New("cell type mismatch")
)
