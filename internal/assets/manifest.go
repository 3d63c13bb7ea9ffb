// Package assets loads the read-only scoring assets: the trained model, the
// feature whitelist and the market delinquency index. Assets are named
// explicitly in a manifest; nothing is discovered by scanning directories.
package assets

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest names every asset the pipeline needs. Loaded once at startup and
// immutable afterwards.
type Manifest struct {
	Model struct {
		// Path to the trained LightGBM model file.
		Path string `yaml:"path"`
	} `yaml:"model"`

	Whitelist struct {
		// Path to the relevant-features CSV (single "features" column).
		Path string `yaml:"path"`
	} `yaml:"whitelist"`

	MarketIndex struct {
		// Path to the consumer-credit-index PDF used when no personal
		// report is supplied.
		Path string `yaml:"path"`
		// AverageUtilisation is the market-wide utilization ratio applied
		// on the market-index path. Zero means "use the built-in default".
		AverageUtilisation float64 `yaml:"average_utilisation"`
	} `yaml:"market_index"`
}

// Load reads and validates the manifest at path. Unknown fields fail
// immediately so typos never silently drop an asset.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset manifest %s: %w", path, err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse asset manifest %s: %w", path, err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("asset manifest %s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Model.Path == "" {
		return fmt.Errorf("model.path is required")
	}
	if m.Whitelist.Path == "" {
		return fmt.Errorf("whitelist.path is required")
	}
	if m.MarketIndex.Path == "" {
		return fmt.Errorf("market_index.path is required")
	}
	if m.MarketIndex.AverageUtilisation < 0 {
		return fmt.Errorf("market_index.average_utilisation must not be negative")
	}
	return nil
}
