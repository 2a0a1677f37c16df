package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3F is a float64 3D vector in body-local space
// +Y is up, appendages grow along their local +Y axis
type Vec3F struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Axis unit vectors
var (
	AxisPosX = Vec3F{1, 0, 0}
	AxisNegX = Vec3F{-1, 0, 0}
	AxisPosY = Vec3F{0, 1, 0}
	AxisNegY = Vec3F{0, -1, 0}
	AxisPosZ = Vec3F{0, 0, 1}
	AxisNegZ = Vec3F{0, 0, -1}
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FNear reports whether every component of a and b differs by at most eps
func V3FNear(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// V3FToR3 converts to a gonum spatial vector
func V3FToR3(v Vec3F) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// V3FFromR3 converts from a gonum spatial vector
func V3FFromR3(v r3.Vec) Vec3F {
	return Vec3F{X: v.X, Y: v.Y, Z: v.Z}
}
