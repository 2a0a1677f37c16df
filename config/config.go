// Package config loads generator settings from YAML and builds body segments from them
package config

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/evo-body/body"
	"github.com/lixenwraith/evo-body/parameter"
)

type Config struct {
	Shape    string  `yaml:"shape"`
	Size     float64 `yaml:"size"`
	Fill     float64 `yaml:"fill"`
	Strategy string  `yaml:"strategy"`
	// Seed 0 draws a seed from the clock
	Seed uint64 `yaml:"seed"`

	Appendage Appendage `yaml:"appendage"`
}

// Appendage sizes are either fixed or sampled as fractions of the body size
// A fixed value takes precedence over its factor range
type Appendage struct {
	Diameter       *float64   `yaml:"diameter,omitempty"`
	Length         *float64   `yaml:"length,omitempty"`
	DiameterFactor body.Range `yaml:"diameter_factor"`
	LengthFactor   body.Range `yaml:"length_factor"`
}

// Default mirrors the prototype enemy: unit cube, thin appendages, quarter fill
func Default() Config {
	return Config{
		Shape:    parameter.ShapeDefault,
		Size:     parameter.BodySizeDefault,
		Fill:     parameter.FillFactorDefault,
		Strategy: parameter.StrategyDefault,
		Appendage: Appendage{
			DiameterFactor: body.Range{
				Min: parameter.AppendageDiameterFactorMin,
				Max: parameter.AppendageDiameterFactorMax,
			},
			LengthFactor: body.Range{
				Min: parameter.AppendageLengthFactorMin,
				Max: parameter.AppendageLengthFactorMax,
			},
		},
	}
}

// Load reads path and overlays it on Default
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return Parse(raw)
}

// Parse overlays YAML data on Default and validates the result
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if _, err := body.ParseShape(c.Shape); err != nil {
		errs = append(errs, err)
	}
	if _, err := body.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if math.IsNaN(c.Fill) || c.Fill < 0 || c.Fill > 1 {
		errs = append(errs, fmt.Errorf("%w: %v", body.ErrInvalidFill, c.Fill))
	}
	if math.IsNaN(c.Size) || c.Size <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v", body.ErrInvalidSize, c.Size))
	}
	if c.Appendage.Diameter != nil {
		if *c.Appendage.Diameter <= 0 {
			errs = append(errs, fmt.Errorf("%w: %v", body.ErrInvalidDiameter, *c.Appendage.Diameter))
		}
	} else if err := c.Appendage.DiameterFactor.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("diameter_factor: %w", err))
	}
	if c.Appendage.Length != nil {
		if *c.Appendage.Length < 0 {
			errs = append(errs, fmt.Errorf("%w: %v", body.ErrInvalidLength, *c.Appendage.Length))
		}
	} else if err := c.Appendage.LengthFactor.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("length_factor: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// NewRand returns the generator seeded from Seed
func (c Config) NewRand() *rand.Rand {
	return body.NewRand(c.Seed)
}

// Dimensions resolves fixed appendage sizes or samples them from the factor ranges
func (c Config) Dimensions(rng *rand.Rand) (body.Dimensions, error) {
	if rng == nil {
		rng = c.NewRand()
	}
	if c.Appendage.Diameter == nil && c.Appendage.Length == nil {
		return body.RandomDimensions(c.Size, c.Appendage.DiameterFactor, c.Appendage.LengthFactor, rng)
	}

	dim := body.Dimensions{Size: c.Size}
	if c.Appendage.Diameter != nil {
		dim.AppendageDiameter = *c.Appendage.Diameter
	} else {
		dim.AppendageDiameter = c.Size * c.Appendage.DiameterFactor.Sample(rng)
	}
	if c.Appendage.Length != nil {
		dim.AppendageLength = *c.Appendage.Length
	} else {
		dim.AppendageLength = c.Size * c.Appendage.LengthFactor.Sample(rng)
	}
	return dim, dim.Validate()
}

// Build constructs the configured segment
func (c Config) Build(rng *rand.Rand) (body.Segment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	shape, _ := body.ParseShape(c.Shape)
	strategy, _ := body.ParseStrategy(c.Strategy)

	dim, err := c.Dimensions(rng)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return body.New(shape, dim, strategy)
}
