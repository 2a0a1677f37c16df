package body

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomDimensions_WithinFactorRange(t *testing.T) {
	const bodySize = 10.0
	diameter := Range{Min: 0.05, Max: 0.2}
	length := Range{Min: 0.5, Max: 2.0}
	rng := NewRand(77)

	for i := 0; i < 100; i++ {
		d, err := RandomDimensions(bodySize, diameter, length, rng)
		require.NoError(t, err)

		assert.Equal(t, bodySize, d.Size)
		assert.GreaterOrEqual(t, d.AppendageDiameter, bodySize*diameter.Min)
		assert.LessOrEqual(t, d.AppendageDiameter, bodySize*diameter.Max)
		assert.GreaterOrEqual(t, d.AppendageLength, bodySize*length.Min)
		assert.LessOrEqual(t, d.AppendageLength, bodySize*length.Max)
	}
}

func TestRandomDimensions_Invalid(t *testing.T) {
	ok := Range{Min: 0.1, Max: 0.2}

	_, err := RandomDimensions(0, ok, ok, NewRand(1))
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = RandomDimensions(1, Range{Min: 0.3, Max: 0.2}, ok, NewRand(1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = RandomDimensions(1, ok, Range{Min: -1, Max: 0}, NewRand(1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Zero diameter factor produces an invalid segment
	_, err = RandomDimensions(1, Range{}, ok, NewRand(1))
	assert.ErrorIs(t, err, ErrInvalidDiameter)
}

func TestParseNames(t *testing.T) {
	for _, s := range []Shape{ShapeCube, ShapeSphere} {
		got, err := ParseShape(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseShape("torus")
	assert.ErrorIs(t, err, ErrUnknownShape)

	for _, s := range strategies {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err = ParseStrategy("greedy")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	for f := FaceNone; f < FaceCount; f++ {
		got, err := ParseFace(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err = ParseFace("up")
	assert.Error(t, err)
}

func TestNew_Dispatch(t *testing.T) {
	dim := Dimensions{Size: 2, AppendageDiameter: 0.25, AppendageLength: 1}

	seg, err := New(ShapeCube, dim, StrategyRetry)
	require.NoError(t, err)
	assert.IsType(t, &Cube{}, seg)
	assert.Equal(t, StrategyRetry, seg.Strategy())
	assert.Equal(t, dim, seg.Dimensions())

	seg, err = New(ShapeSphere, dim, StrategyShuffle)
	require.NoError(t, err)
	assert.IsType(t, &Sphere{}, seg)

	_, err = New(Shape(5), dim, StrategyShuffle)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestTargetCount(t *testing.T) {
	tests := []struct {
		total int
		fill  float64
		want  int
	}{
		{54, 1, 54},
		{54, 0.5, 27},
		{54, 0.25, 13},
		{54, 0, 0},
		{0, 1, 0},
		{7, 0.99, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TargetCount(tt.total, tt.fill), "total=%d fill=%v", tt.total, tt.fill)
	}
}
