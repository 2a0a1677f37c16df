package body

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/evo-body/vmath"
)

func TestNetCell_Unique(t *testing.T) {
	const rows = 3
	w, h := NetSize(rows)
	seen := make(map[[2]int]Face)

	for f := FaceTop; f < FaceCount; f++ {
		for r := 0; r < rows; r++ {
			for c := 0; c < rows; c++ {
				x, y, ok := NetCell(f, r, c, rows)
				assert.True(t, ok)
				assert.True(t, x >= 0 && x < w && y >= 0 && y < h, "%v (%d,%d) -> (%d,%d)", f, r, c, x, y)
				prev, dup := seen[[2]int{x, y}]
				assert.False(t, dup, "%v collides with %v at (%d,%d)", f, prev, x, y)
				seen[[2]int{x, y}] = f
			}
		}
	}

	_, _, ok := NetCell(FaceNone, 0, 0, rows)
	assert.False(t, ok)
	_, _, ok = NetCell(FaceTop, rows, 0, rows)
	assert.False(t, ok)
}

func TestEquirect(t *testing.T) {
	_, v := Equirect(vmath.AxisPosY)
	assert.InDelta(t, 0, v, 1e-12)
	_, v = Equirect(vmath.AxisNegY)
	assert.InDelta(t, 1, v, 1e-12)

	u, v := Equirect(vmath.AxisNegX)
	assert.InDelta(t, 0, u, 1e-12)
	assert.InDelta(t, 0.5, v, 1e-12)

	u, _ = Equirect(vmath.AxisPosX)
	assert.InDelta(t, 0.5, u, 1e-12)
}
