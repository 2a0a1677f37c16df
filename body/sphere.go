package body

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/evo-body/parameter"
	"github.com/lixenwraith/evo-body/vmath"
)

// goldenAngle is the azimuth step between consecutive Fibonacci lattice points
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Sphere is a spherical segment centered at the origin, Size is its diameter
// Slots lie on a Fibonacci lattice, one per (2D)² of surface area
type Sphere struct {
	dim      Dimensions
	strategy Strategy
	slots    int
}

func NewSphere(dim Dimensions, strategy Strategy) (*Sphere, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}
	if err := validateStrategy(strategy); err != nil {
		return nil, err
	}

	radius := dim.Size * 0.5
	pitch := dim.AppendageDiameter * parameter.AppendageSpacingFactor
	area := 4 * math.Pi * radius * radius
	slots := math.Floor(area / (pitch * pitch))
	if slots > parameter.MaxSlotCount {
		return nil, fmt.Errorf("%w: %.4g slots for size %v and diameter %v, max %d",
			ErrTooManySlots, slots, dim.Size, dim.AppendageDiameter, parameter.MaxSlotCount)
	}
	return &Sphere{
		dim:      dim,
		strategy: strategy,
		slots:    int(slots),
	}, nil
}

func (s *Sphere) Shape() Shape           { return ShapeSphere }
func (s *Sphere) Dimensions() Dimensions { return s.dim }
func (s *Sphere) Strategy() Strategy     { return s.strategy }
func (s *Sphere) SlotCount() int         { return s.slots }

func (s *Sphere) Appendages(fill float64, rng *rand.Rand) ([]Appendage, error) {
	if err := validateFill(fill); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	refs := selectSlots(1, s.slots, TargetCount(s.slots, fill), s.strategy, rng)
	apps := make([]Appendage, 0, len(refs))
	for _, ref := range refs {
		apps = append(apps, s.slot(ref.index))
	}
	return apps, nil
}

// Slot returns the placement for lattice point index
func (s *Sphere) Slot(index int) (Appendage, error) {
	if index < 0 || index >= s.slots {
		return Appendage{}, fmt.Errorf("slot %d: out of range [0, %d)", index, s.slots)
	}
	return s.slot(index), nil
}

func (s *Sphere) slot(index int) Appendage {
	n := float64(s.slots)
	y := 1 - 2*(float64(index)+0.5)/n
	r := math.Sqrt(1 - y*y)
	theta := float64(index) * goldenAngle

	normal := vmath.Vec3F{X: math.Cos(theta) * r, Y: y, Z: math.Sin(theta) * r}
	position := vmath.V3FScale(normal, s.dim.Size*0.5)
	rotation := vmath.QuatBetween(vmath.AxisPosY, normal)
	return newAppendage(FaceNone, 0, index, index, position, normal, rotation, s.dim)
}
