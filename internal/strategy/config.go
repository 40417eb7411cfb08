package strategy

import (
	"github.com/go-playground/validator/v10"

	"github.com/astrolab/astro-trading/pkg/errors"
)

// Strategy names accepted by the registry.
const (
	StrategySmaCrossover = "sma_crossover"
	StrategyRsiThreshold = "rsi_threshold"
	StrategyCombined     = "combined"
)

// Config selects a strategy and its indicator parameters.
type Config struct {
	Name string `json:"name" jsonschema:"title=Strategy,description=Strategy to evaluate,required,enum=sma_crossover,enum=rsi_threshold,enum=combined" validate:"required,oneof=sma_crossover rsi_threshold combined" yaml:"name"`

	// SMA crossover windows.
	FastWindow int `json:"fastWindow" jsonschema:"title=Fast Window,description=Fast SMA window in bars,default=50"  validate:"min=1" yaml:"fastWindow"`
	SlowWindow int `json:"slowWindow" jsonschema:"title=Slow Window,description=Slow SMA window in bars,default=200" validate:"min=1" yaml:"slowWindow"`

	// RSI parameters.
	RSIPeriod int     `json:"rsiPeriod" jsonschema:"title=RSI Period,description=RSI period in bars,default=14"           validate:"min=1"               yaml:"rsiPeriod"`
	RSILower  float64 `json:"rsiLower"  jsonschema:"title=RSI Lower,description=Oversold threshold,default=30"            validate:"min=0,max=100"       yaml:"rsiLower"`
	RSIUpper  float64 `json:"rsiUpper"  jsonschema:"title=RSI Upper,description=Overbought threshold,default=70"          validate:"min=0,max=100,gtfield=RSILower" yaml:"rsiUpper"`

	// Combine lists the sub-strategies summed by the combined strategy.
	// Empty means both leaf strategies.
	Combine []string `json:"combine,omitempty" jsonschema:"title=Combine,description=Sub-strategies for the combined strategy" validate:"dive,oneof=sma_crossover rsi_threshold" yaml:"combine,omitempty"`
}

// DefaultConfig returns a Config for the named strategy with the standard
// parameter defaults (SMA 50/200, RSI 14 with 30/70 thresholds).
func DefaultConfig(name string) Config {
	return Config{
		Name:       name,
		FastWindow: 50,
		SlowWindow: 200,
		RSIPeriod:  14,
		RSILower:   30,
		RSIUpper:   70,
		Combine:    nil,
	}
}

// UnmarshalYAML implements custom unmarshaling for Config. Decoding starts
// from the parameter defaults, so a config file may name a strategy and only
// spell out the parameters it tunes.
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type rawConfig Config

	raw := rawConfig(DefaultConfig(""))
	if err := unmarshal(&raw); err != nil {
		return err
	}

	*c = Config(raw)

	return nil
}

// Validate checks the configuration fields. Unknown strategy and sub-strategy
// names surface as ErrCodeUnsupportedStrategy so they are caught at
// configuration time, never mid-computation.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		if !isKnownStrategyName(c.Name) {
			return errors.Wrapf(errors.ErrCodeUnsupportedStrategy, err, "unsupported strategy %q", c.Name)
		}

		for _, sub := range c.Combine {
			if !isKnownStrategyName(sub) || sub == StrategyCombined {
				return errors.Wrapf(errors.ErrCodeUnsupportedStrategy, err, "unsupported sub-strategy %q", sub)
			}
		}

		return errors.Wrap(errors.ErrCodeStrategyConfigError, "invalid strategy configuration", err)
	}

	return nil
}

func isKnownStrategyName(name string) bool {
	switch name {
	case StrategySmaCrossover, StrategyRsiThreshold, StrategyCombined:
		return true
	default:
		return false
	}
}
