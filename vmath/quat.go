package vmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// parallelEps is the dot-product slack under which two unit vectors are treated as (anti)parallel
const parallelEps = 1e-9

// Quat is a unit rotation quaternion, W is the scalar part
type Quat struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// QuatIdentity returns the no-op rotation
func QuatIdentity() Quat {
	return Quat{W: 1}
}

func (q Quat) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func quatFromNumber(n quat.Number) Quat {
	return Quat{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// QuatAxisAngle returns a rotation of angle radians around axis (right-handed)
// A zero axis yields the identity
func QuatAxisAngle(axis Vec3F, angle float64) Quat {
	if V3FMagSq(axis) == 0 {
		return QuatIdentity()
	}
	return quatFromNumber(quat.Number(r3.NewRotation(angle, V3FToR3(axis))))
}

// QuatBetween returns the shortest-arc rotation taking direction from onto direction to
// Antiparallel inputs rotate half a turn around an axis perpendicular to from
func QuatBetween(from, to Vec3F) Quat {
	f := V3FNormalize(from)
	t := V3FNormalize(to)
	if V3FMagSq(f) == 0 || V3FMagSq(t) == 0 {
		return QuatIdentity()
	}

	d := V3FDot(f, t)
	switch {
	case d >= 1-parallelEps:
		return QuatIdentity()
	case d <= -1+parallelEps:
		axis := V3FCross(f, AxisPosX)
		if V3FMagSq(axis) < parallelEps {
			axis = V3FCross(f, AxisPosZ)
		}
		return QuatAxisAngle(axis, math.Pi)
	}

	return QuatAxisAngle(V3FCross(f, t), math.Acos(d))
}

// Rotate applies q to v
func (q Quat) Rotate(v Vec3F) Vec3F {
	return V3FFromR3(r3.Rotation(q.number()).Rotate(V3FToR3(v)))
}
