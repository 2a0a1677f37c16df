package body

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Shape selects a segment implementation
type Shape int

const (
	ShapeCube Shape = iota
	ShapeSphere
)

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

func ParseShape(s string) (Shape, error) {
	switch s {
	case "cube":
		return ShapeCube, nil
	case "sphere":
		return ShapeSphere, nil
	}
	return ShapeCube, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(b []byte) error {
	parsed, err := ParseShape(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Strategy selects how free slots are drawn
type Strategy int

const (
	// StrategyShuffle takes a prefix of a seeded permutation of all slots, always exact
	StrategyShuffle Strategy = iota
	// StrategyRetry draws random slots, rejecting occupied ones, until the target
	// count is met or totalSlots² draws are spent
	StrategyRetry
)

func (s Strategy) String() string {
	switch s {
	case StrategyShuffle:
		return "shuffle"
	case StrategyRetry:
		return "retry"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

func (s Strategy) valid() bool {
	return s == StrategyShuffle || s == StrategyRetry
}

func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "shuffle":
		return StrategyShuffle, nil
	case "retry":
		return StrategyRetry, nil
	}
	return StrategyShuffle, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(b []byte) error {
	parsed, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Range is an inclusive [Min, Max] interval of non-negative factors
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func (r Range) Validate() error {
	if !finite(r.Min) || !finite(r.Max) || r.Min < 0 || r.Min > r.Max {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Sample draws uniformly from the range
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Dimensions are fixed at segment construction
type Dimensions struct {
	// Size is the cube edge length or sphere diameter
	Size              float64 `json:"size"`
	AppendageDiameter float64 `json:"appendage_diameter"`
	AppendageLength   float64 `json:"appendage_length"`
}

func (d Dimensions) Validate() error {
	if !finite(d.Size) || d.Size <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSize, d.Size)
	}
	if !finite(d.AppendageDiameter) || d.AppendageDiameter <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDiameter, d.AppendageDiameter)
	}
	if !finite(d.AppendageLength) || d.AppendageLength < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidLength, d.AppendageLength)
	}
	return nil
}

// RandomDimensions draws appendage diameter and length as random fractions of size
func RandomDimensions(size float64, diameterFactor, lengthFactor Range, rng *rand.Rand) (Dimensions, error) {
	if !finite(size) || size <= 0 {
		return Dimensions{}, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if err := diameterFactor.Validate(); err != nil {
		return Dimensions{}, fmt.Errorf("diameter factor: %w", err)
	}
	if err := lengthFactor.Validate(); err != nil {
		return Dimensions{}, fmt.Errorf("length factor: %w", err)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	d := Dimensions{
		Size:              size,
		AppendageDiameter: size * diameterFactor.Sample(rng),
		AppendageLength:   size * lengthFactor.Sample(rng),
	}
	return d, d.Validate()
}

// Segment is a body primitive that produces appendage placements
type Segment interface {
	Shape() Shape
	Dimensions() Dimensions
	Strategy() Strategy
	// SlotCount is the number of distinct mount slots on the surface
	SlotCount() int
	// Appendages places floor(SlotCount*fill) appendages on distinct slots
	// A nil rng is replaced with a time-seeded one
	Appendages(fill float64, rng *rand.Rand) ([]Appendage, error)
}

// New builds a segment of the given shape
func New(shape Shape, dim Dimensions, strategy Strategy) (Segment, error) {
	switch shape {
	case ShapeCube:
		return NewCube(dim, strategy)
	case ShapeSphere:
		return NewSphere(dim, strategy)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
}

// TargetCount is the number of placements requested for a slot total and fill factor
func TargetCount(totalSlots int, fill float64) int {
	if totalSlots <= 0 || fill <= 0 {
		return 0
	}
	return int(math.Floor(float64(totalSlots) * fill))
}

func validateFill(fill float64) error {
	if math.IsNaN(fill) || fill < 0 || fill > 1 {
		return fmt.Errorf("%w: %v not in [0, 1]", ErrInvalidFill, fill)
	}
	return nil
}

func validateStrategy(s Strategy) error {
	if !s.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
