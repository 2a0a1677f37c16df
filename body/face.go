package body

import (
	"fmt"

	"github.com/lixenwraith/evo-body/vmath"
)

// Face identifies one side of a cubic segment
type Face int

const (
	// FaceNone marks placements on faceless surfaces (sphere)
	FaceNone Face = iota - 1
	FaceTop
	FaceBottom
	FaceNorth
	FaceEast
	FaceSouth
	FaceWest
	FaceCount
)

var faceNames = [FaceCount]string{
	FaceTop:    "top",
	FaceBottom: "bottom",
	FaceNorth:  "north",
	FaceEast:   "east",
	FaceSouth:  "south",
	FaceWest:   "west",
}

var faceNormals = [FaceCount]vmath.Vec3F{
	FaceTop:    vmath.AxisPosY,
	FaceBottom: vmath.AxisNegY,
	FaceNorth:  vmath.AxisPosZ,
	FaceEast:   vmath.AxisPosX,
	FaceSouth:  vmath.AxisNegZ,
	FaceWest:   vmath.AxisNegX,
}

// faceRotations point an appendage's long axis (+Y) along each face normal
var faceRotations [FaceCount]vmath.Quat

func init() {
	for f := FaceTop; f < FaceCount; f++ {
		faceRotations[f] = vmath.QuatBetween(vmath.AxisPosY, faceNormals[f])
	}
}

// Valid reports whether f is one of the six cube faces
func (f Face) Valid() bool {
	return f >= FaceTop && f < FaceCount
}

func (f Face) String() string {
	switch {
	case f.Valid():
		return faceNames[f]
	case f == FaceNone:
		return "none"
	default:
		return fmt.Sprintf("face(%d)", int(f))
	}
}

// Normal returns the outward unit normal, zero for FaceNone
func (f Face) Normal() vmath.Vec3F {
	if !f.Valid() {
		return vmath.Vec3F{}
	}
	return faceNormals[f]
}

// Rotation returns the rotation taking +Y onto the face normal
func (f Face) Rotation() vmath.Quat {
	if !f.Valid() {
		return vmath.QuatIdentity()
	}
	return faceRotations[f]
}

// ParseFace resolves a face name as produced by String
func ParseFace(s string) (Face, error) {
	if s == "none" {
		return FaceNone, nil
	}
	for f := FaceTop; f < FaceCount; f++ {
		if faceNames[f] == s {
			return f, nil
		}
	}
	return FaceNone, fmt.Errorf("unknown face %q", s)
}

func (f Face) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Face) UnmarshalText(b []byte) error {
	parsed, err := ParseFace(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
