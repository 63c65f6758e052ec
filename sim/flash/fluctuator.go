package flash

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mlcsim/mlcsim/sim"
)

// DirectionSource decides which way a level drifts. *rand.Rand satisfies it.
type DirectionSource interface {
	Float64() float64
}

// WearFluctuator shifts every programmed level by scale/(ratedEndurance-writeCount)
// steps, up or down with equal probability. The magnitude diverges as a page
// approaches its rated endurance. Results saturate at 0 and 255.
type WearFluctuator struct {
	scale          float64
	ratedEndurance float64
	direction      DirectionSource
}

// NewWearFluctuator returns a WearFluctuator with the default scale and endurance.
func NewWearFluctuator(direction DirectionSource) *WearFluctuator {
	return NewWearFluctuatorWithParams(sim.DefaultFluctuationScale, sim.DefaultRatedEndurance, direction)
}

// NewWearFluctuatorWithParams returns a WearFluctuator with explicit noise parameters.
func NewWearFluctuatorWithParams(scale, ratedEndurance float64, direction DirectionSource) *WearFluctuator {
	return &WearFluctuator{
		scale:          scale,
		ratedEndurance: ratedEndurance,
		direction:      direction,
	}
}

// RatedEndurance returns the erase count at which the noise diverges.
func (f *WearFluctuator) RatedEndurance() float64 {
	return f.ratedEndurance
}

// Magnitude returns the whole number of level steps a page at writeCount drifts.
// A page at or past its rated endurance drifts by the full level range.
func (f *WearFluctuator) Magnitude(writeCount uint32) uint8 {
	remaining := f.ratedEndurance - float64(writeCount)
	if remaining <= 0 {
		return math.MaxUint8
	}
	m := f.scale / remaining
	if m >= math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(m)
}

// Fluctuate implements sim.Fluctuator.
func (f *WearFluctuator) Fluctuate(writeCount uint32, intended uint8) uint8 {
	magnitude := int(f.Magnitude(writeCount))
	up := f.direction.Float64() < 0.5

	level := int(intended)
	if up {
		level += magnitude
	} else {
		level -= magnitude
	}
	stored := uint8(min(max(level, 0), math.MaxUint8))

	logrus.WithFields(logrus.Fields{
		"write_count": writeCount,
		"magnitude":   magnitude,
		"intended":    intended,
		"stored":      stored,
	}).Trace("fluctuated level")
	return stored
}

// IdentityFluctuator stores every level exactly as intended.
type IdentityFluctuator struct{}

// Fluctuate implements sim.Fluctuator.
func (IdentityFluctuator) Fluctuate(_ uint32, intended uint8) uint8 {
	return intended
}

// NewFluctuator builds the wear model named in cfg. The wear model draws its
// directions from the fluctuator subsystem of rng.
func NewFluctuator(cfg sim.FluctuationConfig, rng *sim.PartitionedRNG) (sim.Fluctuator, error) {
	switch cfg.Model {
	case sim.FluctuationModelNone:
		return IdentityFluctuator{}, nil
	case sim.FluctuationModelWear, "":
		scale, endurance := cfg.Scale, cfg.RatedEndurance
		if scale == 0 {
			scale = sim.DefaultFluctuationScale
		}
		if endurance == 0 {
			endurance = sim.DefaultRatedEndurance
		}
		return NewWearFluctuatorWithParams(scale, endurance, rng.ForSubsystem(sim.SubsystemFluctuator)), nil
	}
	return nil, errors.Wrapf(sim.ErrInvalidConfig, "unknown fluctuation model %q", cfg.Model)
}
