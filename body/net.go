package body

import (
	"math"

	"github.com/lixenwraith/evo-body/vmath"
)

// netOrigin lays the six faces out as a cross, in face-sized cells:
//
//	   T
//	W  N  E  S
//	   B
var netOrigin = [FaceCount]struct{ x, y int }{
	FaceTop:    {1, 0},
	FaceWest:   {0, 1},
	FaceNorth:  {1, 1},
	FaceEast:   {2, 1},
	FaceSouth:  {3, 1},
	FaceBottom: {1, 2},
}

// NetSize returns the unfolded net dimensions in slot cells
func NetSize(rowsPerFace int) (w, h int) {
	return 4 * rowsPerFace, 3 * rowsPerFace
}

// NetCell maps a face slot to its cell on the unfolded net
func NetCell(face Face, row, col, rowsPerFace int) (x, y int, ok bool) {
	if !face.Valid() || row < 0 || col < 0 || row >= rowsPerFace || col >= rowsPerFace {
		return 0, 0, false
	}
	o := netOrigin[face]
	return o.x*rowsPerFace + col, o.y*rowsPerFace + row, true
}

// Equirect maps a unit direction to longitude/latitude texture coordinates
// u in [0, 1) wraps around Y, v runs from 0 at +Y to 1 at -Y
func Equirect(normal vmath.Vec3F) (u, v float64) {
	n := vmath.V3FNormalize(normal)
	u = (math.Atan2(n.Z, n.X) + math.Pi) / (2 * math.Pi)
	if u >= 1 {
		u = 0
	}
	y := math.Max(-1, math.Min(1, n.Y))
	v = math.Acos(y) / math.Pi
	return u, v
}
