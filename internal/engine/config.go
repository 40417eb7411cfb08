package engine

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/astrolab/astro-trading/internal/strategy"
	"github.com/astrolab/astro-trading/internal/version"
	"github.com/astrolab/astro-trading/pkg/errors"
	"github.com/astrolab/astro-trading/pkg/marketdata/provider"
)

// Config is the engine's top level run configuration, loaded from YAML.
type Config struct {
	// Version gates the config against the engine version. Major and minor
	// must match the engine; patch can differ.
	Version string `yaml:"version" validate:"required"`

	Symbol string    `yaml:"symbol" validate:"required"`
	Start  time.Time `yaml:"start"  validate:"required"`
	End    time.Time `yaml:"end"    validate:"required"`

	Provider provider.ProviderType `yaml:"provider" validate:"required,oneof=polygon binance"`
	APIKey   string                `yaml:"apiKey,omitempty"`

	// StorePath is the DuckDB database used by the download command.
	// Empty means no persistence.
	StorePath string `yaml:"storePath,omitempty"`

	// Quantity is the order size used when signals are turned into orders.
	Quantity string `yaml:"quantity,omitempty"`

	Strategy strategy.Config `yaml:"strategy" validate:"required"`
}

// ParseConfig parses and validates a YAML run configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse run config", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses the run configuration at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read run config %s", path)
	}

	return ParseConfig(data)
}

// Validate checks the run configuration, including the version gate, the date
// range and the embedded strategy configuration.
func (c *Config) Validate() error {
	// Strategy goes first so its errors keep their own codes; the struct
	// validator below would fold them into ErrCodeInvalidConfiguration.
	if err := c.Strategy.Validate(); err != nil {
		return err
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid run config", err)
	}

	if err := version.CheckConfigCompatibility(version.Version, c.Version); err != nil {
		return err
	}

	if !c.End.After(c.Start) {
		return errors.Newf(errors.ErrCodeInvalidDateRange, "end date %s must be after start date %s",
			c.End.Format(time.DateOnly), c.Start.Format(time.DateOnly))
	}

	return nil
}
