package netplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/evo-body/body"
)

func TestRender_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	dim := body.Dimensions{Size: 6, AppendageDiameter: 0.5, AppendageLength: 1}

	for _, shape := range []body.Shape{body.ShapeCube, body.ShapeSphere} {
		seg, err := body.New(shape, dim, body.StrategyShuffle)
		require.NoError(t, err)
		apps, err := seg.Appendages(0.4, body.NewRand(2))
		require.NoError(t, err)

		path := filepath.Join(dir, shape.String()+".png")
		require.NoError(t, Render(seg, apps, path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestPlot_EmptyCube(t *testing.T) {
	seg, err := body.NewCube(body.Dimensions{Size: 1, AppendageDiameter: 1}, body.StrategyShuffle)
	require.NoError(t, err)

	p, err := Plot(seg, nil)
	require.NoError(t, err)
	assert.Contains(t, p.Title.Text, "0/0 slots")
}
