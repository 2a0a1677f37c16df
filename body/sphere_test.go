package body

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/evo-body/vmath"
)

func TestSphere_SlotCount(t *testing.T) {
	s, err := NewSphere(Dimensions{Size: 10, AppendageDiameter: 0.5, AppendageLength: 1}, StrategyShuffle)
	require.NoError(t, err)

	// 4π·5² / 1² = 314.15...
	assert.Equal(t, 314, s.SlotCount())
}

func TestSphere_PlacementsOnSurface(t *testing.T) {
	const size, length = 4.0, 1.0
	for _, strategy := range strategies {
		s, err := NewSphere(Dimensions{Size: size, AppendageDiameter: 0.4, AppendageLength: length}, strategy)
		require.NoError(t, err)

		apps, err := s.Appendages(1, NewRand(21))
		require.NoError(t, err)
		require.Len(t, apps, s.SlotCount())

		seen := make(map[int]bool, len(apps))
		for _, a := range apps {
			assert.Equal(t, FaceNone, a.Face)
			assert.False(t, seen[a.Index], "duplicate index %d", a.Index)
			seen[a.Index] = true

			assert.InDelta(t, size/2, vmath.V3FMag(a.Position), geomEps)
			assert.InDelta(t, 1, vmath.V3FMag(a.Normal), geomEps)
			assert.InDelta(t, size/2+length/2, vmath.V3FMag(a.Center), geomEps)

			axis := a.Rotation.Rotate(vmath.AxisPosY)
			assert.True(t, vmath.V3FNear(axis, a.Normal, 1e-7), "+Y rotates to %+v, want %+v", axis, a.Normal)
		}
	}
}

func TestSphere_LatticeSpansPoles(t *testing.T) {
	s, err := NewSphere(Dimensions{Size: 2, AppendageDiameter: 0.1, AppendageLength: 0}, StrategyShuffle)
	require.NoError(t, err)

	first, err := s.Slot(0)
	require.NoError(t, err)
	last, err := s.Slot(s.SlotCount() - 1)
	require.NoError(t, err)

	assert.Greater(t, first.Normal.Y, 0.99)
	assert.Less(t, last.Normal.Y, -0.99)

	_, err = s.Slot(s.SlotCount())
	assert.Error(t, err)
}

func TestSphere_EmptyAndInvalid(t *testing.T) {
	s, err := NewSphere(Dimensions{Size: 1, AppendageDiameter: 1, AppendageLength: 0}, StrategyRetry)
	require.NoError(t, err)
	assert.Zero(t, s.SlotCount())

	apps, err := s.Appendages(1, NewRand(1))
	require.NoError(t, err)
	assert.Empty(t, apps)

	_, err = s.Appendages(math.Inf(1), NewRand(1))
	assert.ErrorIs(t, err, ErrInvalidFill)

	_, err = NewSphere(Dimensions{Size: -2, AppendageDiameter: 0.1}, StrategyShuffle)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestSphere_TooManySlots(t *testing.T) {
	_, err := NewSphere(Dimensions{Size: 1, AppendageDiameter: 1e-8}, StrategyShuffle)
	assert.ErrorIs(t, err, ErrTooManySlots)

	_, err = New(ShapeSphere, Dimensions{Size: 1, AppendageDiameter: 5e-11}, StrategyRetry)
	assert.ErrorIs(t, err, ErrTooManySlots)
}
