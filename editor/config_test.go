package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pixeled/editor"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*editor.Config)
		wantErr bool
	}{
		{"reference configuration", func(c *editor.Config) {}, false},
		{"uneven cell size leaves a remainder strip", func(c *editor.Config) { c.Width = 810 }, false},
		{"zero width", func(c *editor.Config) { c.Width = 0 }, true},
		{"negative height", func(c *editor.Config) { c.Height = -600 }, true},
		{"zero cell size", func(c *editor.Config) { c.CellSize = 0 }, true},
		{"cell size exceeds height", func(c *editor.Config) { c.CellSize = 700 }, true},
		{"cell size exceeds width", func(c *editor.Config) { c.Width = 10 }, true},
		{"zero swatch width", func(c *editor.Config) { c.SwatchWidth = 0 }, true},
		{"zero strip height", func(c *editor.Config) { c.StripHeight = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := editor.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigGridSize(t *testing.T) {
	cfg := editor.DefaultConfig()
	assert.Equal(t, 40, cfg.Cols())
	assert.Equal(t, 30, cfg.Rows())

	cfg.Width, cfg.CellSize = 810, 20
	assert.Equal(t, 40, cfg.Cols(), "remainder pixels do not add a column")
}
