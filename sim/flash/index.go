package flash

import (
	"github.com/pkg/errors"

	"github.com/mlcsim/mlcsim/sim"
)

// checkIndex is the single bounds check for block and page indices.
func checkIndex(kind string, idx, limit int) error {
	if idx < 0 || idx >= limit {
		return errors.Wrapf(sim.ErrOutOfRange, "%s index %d not in [0,%d)", kind, idx, limit)
	}
	return nil
}
