package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	resolved, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), resolved)
}

func TestLoadAppliesPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"guiThrottleMillis": 50}`), 0o644))

	resolved, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, resolved.GUIThrottleMillis)
	assert.Equal(t, DefaultMarketDataDepth, resolved.MarketDataDepth)
	assert.Equal(t, DefaultOutputDir, resolved.OutputDir)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	assert.Error(t, err)
}
