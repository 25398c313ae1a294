package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/twentyfour/internal/domain"
)

// Config is the server configuration. Every field has a usable default so
// a config file is optional; flags override whatever the file sets.
type Config struct {
	Addr       string `yaml:"addr"`
	DataDir    string `yaml:"data_dir"`
	DigitWidth int    `yaml:"digit_width"` // 1 => numbers 1..9, 2 => 1..24
	LogLevel   string `yaml:"log_level"`   // debug|info|warn|error
	Searcher   string `yaml:"searcher"`    // sequential|parallel
}

func Default() Config {
	return Config{
		Addr:       ":8080",
		DataDir:    "./data",
		DigitWidth: int(domain.WidthSingle),
		LogLevel:   "info",
		Searcher:   "sequential",
	}
}

// Load reads a YAML config file over the defaults. An empty path or a
// missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DigitWidth != int(domain.WidthSingle) && c.DigitWidth != int(domain.WidthDouble) {
		return fmt.Errorf("digit_width must be 1 or 2, got %d", c.DigitWidth)
	}
	switch c.Searcher {
	case "sequential", "parallel":
	default:
		return fmt.Errorf("searcher must be sequential or parallel, got %q", c.Searcher)
	}
	return nil
}

// Width returns the configured digit width as a domain value.
func (c Config) Width() domain.DigitWidth { return domain.DigitWidth(c.DigitWidth) }
