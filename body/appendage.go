package body

import "github.com/lixenwraith/evo-body/vmath"

// Appendage is one mount point produced by a segment
// Position sits on the segment surface, Center is offset outward by half the
// appendage length so a cylinder of that length placed there rests on the surface
type Appendage struct {
	Face  Face `json:"face"`
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Index int  `json:"index"`

	Position vmath.Vec3F `json:"position"`
	Center   vmath.Vec3F `json:"center"`
	Normal   vmath.Vec3F `json:"normal"`
	Rotation vmath.Quat  `json:"rotation"`

	Diameter float64 `json:"diameter"`
	Length   float64 `json:"length"`
}

// SlotKey identifies an appendage's slot on its segment
type SlotKey struct {
	Face  Face
	Index int
}

func (a Appendage) Key() SlotKey {
	return SlotKey{Face: a.Face, Index: a.Index}
}

func newAppendage(face Face, row, col, index int, position, normal vmath.Vec3F, rotation vmath.Quat, dim Dimensions) Appendage {
	return Appendage{
		Face:     face,
		Row:      row,
		Col:      col,
		Index:    index,
		Position: position,
		Center:   vmath.V3FAdd(position, vmath.V3FScale(normal, dim.AppendageLength*0.5)),
		Normal:   normal,
		Rotation: rotation,
		Diameter: dim.AppendageDiameter,
		Length:   dim.AppendageLength,
	}
}
