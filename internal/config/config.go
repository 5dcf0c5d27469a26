// Package config loads the optional JSON override file for the GUI
// throttle parameters, the market-data depth, and output directory:
// read the file, unmarshal into a FileConfig, then resolve defaults
// field by field for anything left unset.
package config

import (
	"encoding/json"
	"os"

	"treasurydesk/internal/errors"
)

const (
	// DefaultMarketDataDepth is N in the depth-N book the market-data
	// connector buffers per ticker before flushing.
	DefaultMarketDataDepth = 5
	// DefaultGUIThrottleMillis is the minimum gap between GUI emissions.
	DefaultGUIThrottleMillis = 300
	// DefaultGUIMaxUpdates caps the total number of GUI emissions.
	DefaultGUIMaxUpdates = 100_000
	// DefaultOutputDir is where the historical and GUI sinks write.
	DefaultOutputDir = "outputs"
)

// FileConfig mirrors the optional JSON override layout. Every field is a
// pointer so an absent key in the file is distinguishable from an
// explicit zero value.
type FileConfig struct {
	MarketDataDepth   *int    `json:"marketDataDepth"`
	GUIThrottleMillis *int    `json:"guiThrottleMillis"`
	GUIMaxUpdates     *int    `json:"guiMaxUpdates"`
	OutputDir         *string `json:"outputDir"`
}

// Resolved is the configuration ready for use, defaults already applied.
type Resolved struct {
	MarketDataDepth   int
	GUIThrottleMillis int
	GUIMaxUpdates     int
	OutputDir         string
}

// Default returns the resolved configuration with no overrides applied.
func Default() Resolved {
	return Resolved{
		MarketDataDepth:   DefaultMarketDataDepth,
		GUIThrottleMillis: DefaultGUIThrottleMillis,
		GUIMaxUpdates:     DefaultGUIMaxUpdates,
		OutputDir:         DefaultOutputDir,
	}
}

// Load reads a JSON override file at path and applies it on top of the
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (Resolved, error) {
	resolved := Default()
	if path == "" {
		return resolved, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Resolved{}, errors.Wrap(errors.ErrIOError, "config: read "+path)
	}

	var file FileConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return Resolved{}, errors.Wrap(errors.ErrParse, "config: parse "+path)
	}

	if file.MarketDataDepth != nil {
		resolved.MarketDataDepth = *file.MarketDataDepth
	}
	if file.GUIThrottleMillis != nil {
		resolved.GUIThrottleMillis = *file.GUIThrottleMillis
	}
	if file.GUIMaxUpdates != nil {
		resolved.GUIMaxUpdates = *file.GUIMaxUpdates
	}
	if file.OutputDir != nil {
		resolved.OutputDir = *file.OutputDir
	}
	return resolved, nil
}
