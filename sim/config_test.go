package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeviceConfig_FillsWearDefaults(t *testing.T) {
	got := NewDeviceConfig(16, 8, 4)
	want := DeviceConfig{
		CellsPerPage:  16,
		PagesPerBlock: 8,
		Blocks:        4,
		Fluctuation: FluctuationConfig{
			Model:          FluctuationModelWear,
			Scale:          DefaultFluctuationScale,
			RatedEndurance: DefaultRatedEndurance,
		},
	}
	assert.Equal(t, want, got)
	assert.NoError(t, got.Validate())
}

func TestLoadDeviceConfig_ParsesTestdata(t *testing.T) {
	cfg, err := LoadDeviceConfig("testdata/device.yaml")
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.CellsPerPage)
	assert.Equal(t, 8, cfg.PagesPerBlock)
	assert.Equal(t, 4, cfg.Blocks)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, FluctuationModelWear, cfg.Fluctuation.Model)
}

func TestLoadDeviceConfig_UnknownField_Fails(t *testing.T) {
	// Typos must not be silently ignored.
	_, err := LoadDeviceConfig("testdata/device_typo.yaml")
	assert.Error(t, err)
}

func TestLoadDeviceConfig_MissingFile_Fails(t *testing.T) {
	_, err := LoadDeviceConfig("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestDeviceConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DeviceConfig)
	}{
		{"zero cells", func(c *DeviceConfig) { c.CellsPerPage = 0 }},
		{"negative pages", func(c *DeviceConfig) { c.PagesPerBlock = -1 }},
		{"zero blocks", func(c *DeviceConfig) { c.Blocks = 0 }},
		{"unknown model", func(c *DeviceConfig) { c.Fluctuation.Model = "gaussian" }},
		{"NaN scale", func(c *DeviceConfig) { c.Fluctuation.Scale = math.NaN() }},
		{"negative endurance", func(c *DeviceConfig) { c.Fluctuation.RatedEndurance = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDeviceConfig(4, 4, 4)
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
