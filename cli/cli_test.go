package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixeled/editor"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig("pixeled", nil)
	require.NoError(t, err)
	assert.Equal(t, editor.DefaultConfig(), cfg)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig("pixeled", []string{"-width", "400", "-height", "300", "-cell", "10"})
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
	assert.Equal(t, 10, cfg.CellSize)
	assert.Equal(t, 40, cfg.Cols())
	assert.Equal(t, 30, cfg.Rows())
}

func TestParseConfigRejectsBadGeometry(t *testing.T) {
	_, err := parseConfig("pixeled", []string{"-cell", "0"})
	assert.Error(t, err)

	_, err = parseConfig("pixeled", []string{"-cell", "700"})
	assert.Error(t, err)
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	_, err := parseConfig("pixeled", []string{"-nope"})
	assert.Error(t, err)
}
