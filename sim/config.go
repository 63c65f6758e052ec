package sim

import (
	"bytes"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// FluctuationModelWear selects the endurance-driven noise model.
	FluctuationModelWear = "wear"
	// FluctuationModelNone stores every level exactly as intended.
	FluctuationModelNone = "none"

	// DefaultFluctuationScale is the numerator of the wear noise magnitude.
	DefaultFluctuationScale = 1000.0
	// DefaultRatedEndurance is the erase count at which wear noise diverges.
	DefaultRatedEndurance = 1100.0
)

var validFluctuationModels = map[string]bool{
	FluctuationModelWear: true,
	FluctuationModelNone: true,
}

// FluctuationConfig selects and parameterizes the device wear model.
type FluctuationConfig struct {
	Model          string  `yaml:"model"`           // "wear" (default) or "none"
	Scale          float64 `yaml:"scale"`           // noise magnitude numerator (default 1000)
	RatedEndurance float64 `yaml:"rated_endurance"` // erase count where noise diverges (default 1100)
}

// DeviceConfig groups the fixed geometry of a device and its wear model.
type DeviceConfig struct {
	CellsPerPage  int               `yaml:"cells_per_page"`  // cells per page (must be > 0)
	PagesPerBlock int               `yaml:"pages_per_block"` // pages per erase block (must be > 0)
	Blocks        int               `yaml:"blocks"`          // erase blocks on the device (must be > 0)
	Seed          int64             `yaml:"seed"`            // master seed for PartitionedRNG
	Fluctuation   FluctuationConfig `yaml:"fluctuation"`
}

// NewDeviceConfig returns a DeviceConfig with the given geometry and the default wear model.
func NewDeviceConfig(cellsPerPage, pagesPerBlock, blocks int) DeviceConfig {
	cfg := DeviceConfig{
		CellsPerPage:  cellsPerPage,
		PagesPerBlock: pagesPerBlock,
		Blocks:        blocks,
	}
	cfg.applyDefaults()
	return cfg
}

// LoadDeviceConfig reads a YAML device description, fills defaults and validates it.
// Unknown fields are rejected so typos surface as errors.
func LoadDeviceConfig(path string) (*DeviceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading device config %s", path)
	}
	var cfg DeviceConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing device config %s", path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.Debugf("loaded device config %s: %d blocks x %d pages x %d cells, fluctuation=%s",
		path, cfg.Blocks, cfg.PagesPerBlock, cfg.CellsPerPage, cfg.Fluctuation.Model)
	return &cfg, nil
}

func (c *DeviceConfig) applyDefaults() {
	if c.Fluctuation.Model == "" {
		c.Fluctuation.Model = FluctuationModelWear
	}
	if c.Fluctuation.Scale == 0 {
		c.Fluctuation.Scale = DefaultFluctuationScale
	}
	if c.Fluctuation.RatedEndurance == 0 {
		c.Fluctuation.RatedEndurance = DefaultRatedEndurance
	}
}

// Validate checks geometry and wear model parameters.
func (c *DeviceConfig) Validate() error {
	if err := ValidateGeometry(c.CellsPerPage, c.PagesPerBlock, c.Blocks); err != nil {
		return err
	}
	if !validFluctuationModels[c.Fluctuation.Model] {
		return errors.Wrapf(ErrInvalidConfig, "unknown fluctuation model %q; valid: wear, none", c.Fluctuation.Model)
	}
	if err := validateFinitePositive("fluctuation.scale", c.Fluctuation.Scale); err != nil {
		return err
	}
	return validateFinitePositive("fluctuation.rated_endurance", c.Fluctuation.RatedEndurance)
}

// ValidateGeometry checks that every device dimension is positive.
func ValidateGeometry(cellsPerPage, pagesPerBlock, blocks int) error {
	if cellsPerPage <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "cells_per_page must be positive, got %d", cellsPerPage)
	}
	if pagesPerBlock <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "pages_per_block must be positive, got %d", pagesPerBlock)
	}
	if blocks <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "blocks must be positive, got %d", blocks)
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return errors.Wrapf(ErrInvalidConfig, "%s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "%s must be positive, got %f", name, val)
	}
	return nil
}
