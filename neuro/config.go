package neuro

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config stores the construction parameters for a random Network.
type Config struct {
	// Topology lists the layer widths from input to output. The first entry
	// is the input width; every following entry is the neuron count of one
	// layer.
	Topology []uint `ini:"topology" delim:" "`
	// Seed seeds the random source used to draw biases and weights.
	Seed uint64 `ini:"seed"`
}

// LoadConfig loads construction parameters from the [Network] section of an
// INI file. Validation happens here, at the recoverable-error level, so that
// callers going through LoadConfig never trip the construction-time
// assertions in NewRandomNetwork.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}
	if err := cfg.Section("Network").MapTo(config); err != nil {
		return nil, fmt.Errorf("failed to map [Network] section: %w", err)
	}

	if len(config.Topology) < 2 {
		return nil, fmt.Errorf("config error: topology must have at least 2 entries, got %d", len(config.Topology))
	}
	for i, width := range config.Topology {
		if width == 0 {
			return nil, fmt.Errorf("config error: topology entry %d must be positive", i)
		}
	}

	return config, nil
}

// LayerTopologies converts the configured widths into the descriptors
// consumed by NewRandomNetwork.
func (c *Config) LayerTopologies() []LayerTopology {
	topology := make([]LayerTopology, len(c.Topology))
	for i, width := range c.Topology {
		topology[i] = LayerTopology{Neurons: width}
	}
	return topology
}
