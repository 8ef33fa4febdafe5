package cli

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yyocio-drip/hpack/internal/shared/constants"
)

// Config is hpackctl's on-disk configuration, loaded from a YAML file named
// by --config (default hpackctl.yaml in the working directory).
type Config struct {
	// HeaderTableSize is the dynamic table size new encoders start with.
	HeaderTableSize uint32 `yaml:"header_table_size"`

	// Lowercase controls whether hpackctl folds header names to lowercase
	// before encoding, mirroring RFC 7540 §8.1.2. Disabling it is only
	// useful for demonstrating non-conformant input.
	Lowercase bool `yaml:"lowercase"`
}

// DefaultConfig returns the configuration hpackctl runs with if no file is
// found.
func DefaultConfig() Config {
	return Config{
		HeaderTableSize: constants.DefaultHeaderTableSize,
		Lowercase:       true,
	}
}

// LoadConfig reads and parses path, falling back to DefaultConfig if path
// doesn't exist. Any other read or parse error is returned to the caller.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.HeaderTableSize > constants.MaxHeaderTableSize {
		cfg.HeaderTableSize = constants.MaxHeaderTableSize
	}
	return cfg, nil
}
