package body

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/evo-body/parameter"
	"github.com/lixenwraith/evo-body/vmath"
)

// Cube is an axis-aligned cubic segment centered at the origin
// Each face carries a rowsPerFace x rowsPerFace grid of mount slots spaced two diameters apart
type Cube struct {
	dim         Dimensions
	strategy    Strategy
	rowsPerFace int
}

func NewCube(dim Dimensions, strategy Strategy) (*Cube, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}
	if err := validateStrategy(strategy); err != nil {
		return nil, err
	}

	pitch := dim.AppendageDiameter * parameter.AppendageSpacingFactor
	rows := math.Floor(dim.Size / pitch)
	if slots := rows * rows * float64(FaceCount); slots > parameter.MaxSlotCount {
		return nil, fmt.Errorf("%w: %.4g slots for size %v and diameter %v, max %d",
			ErrTooManySlots, slots, dim.Size, dim.AppendageDiameter, parameter.MaxSlotCount)
	}
	return &Cube{
		dim:         dim,
		strategy:    strategy,
		rowsPerFace: int(rows),
	}, nil
}

func (c *Cube) Shape() Shape           { return ShapeCube }
func (c *Cube) Dimensions() Dimensions { return c.dim }
func (c *Cube) Strategy() Strategy     { return c.strategy }

// RowsPerFace is the slot count along one edge of a face
func (c *Cube) RowsPerFace() int { return c.rowsPerFace }

func (c *Cube) SlotsPerFace() int { return c.rowsPerFace * c.rowsPerFace }

func (c *Cube) SlotCount() int { return c.SlotsPerFace() * int(FaceCount) }

func (c *Cube) Appendages(fill float64, rng *rand.Rand) ([]Appendage, error) {
	if err := validateFill(fill); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	refs := selectSlots(int(FaceCount), c.SlotsPerFace(), TargetCount(c.SlotCount(), fill), c.strategy, rng)
	apps := make([]Appendage, 0, len(refs))
	for _, ref := range refs {
		apps = append(apps, c.slot(Face(ref.group), ref.index))
	}
	return apps, nil
}

// Slot returns the placement for a slot index on a face
func (c *Cube) Slot(face Face, index int) (Appendage, error) {
	if !face.Valid() {
		return Appendage{}, fmt.Errorf("slot on %v: not a cube face", face)
	}
	if index < 0 || index >= c.SlotsPerFace() {
		return Appendage{}, fmt.Errorf("slot %d on %v: out of range [0, %d)", index, face, c.SlotsPerFace())
	}
	return c.slot(face, index), nil
}

func (c *Cube) slot(face Face, index int) Appendage {
	row := index / c.rowsPerFace
	col := index % c.rowsPerFace
	return newAppendage(face, row, col, index, c.slotPosition(face, row, col), face.Normal(), face.Rotation(), c.dim)
}

// slotPosition returns the surface mount point; the grid starts one diameter in from the face edge
func (c *Cube) slotPosition(face Face, row, col int) vmath.Vec3F {
	half := c.dim.Size * 0.5
	pitch := c.dim.AppendageDiameter * parameter.AppendageSpacingFactor
	u := -half + c.dim.AppendageDiameter + float64(row)*pitch
	v := -half + c.dim.AppendageDiameter + float64(col)*pitch

	switch face {
	case FaceTop:
		return vmath.Vec3F{X: u, Y: half, Z: v}
	case FaceBottom:
		return vmath.Vec3F{X: u, Y: -half, Z: v}
	case FaceNorth:
		return vmath.Vec3F{X: u, Y: v, Z: half}
	case FaceSouth:
		return vmath.Vec3F{X: u, Y: v, Z: -half}
	case FaceEast:
		return vmath.Vec3F{X: half, Y: u, Z: v}
	case FaceWest:
		return vmath.Vec3F{X: -half, Y: u, Z: v}
	}
	return vmath.Vec3F{}
}
