// Package netplot renders appendage placements to an image: cubes as an unfolded
// net of faces, spheres as an equirectangular longitude/latitude map
package netplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/lixenwraith/evo-body/body"
	"github.com/lixenwraith/evo-body/parameter"
)

var faceColors = [body.FaceCount]color.RGBA{
	body.FaceTop:    {R: 230, G: 80, B: 60, A: 255},
	body.FaceBottom: {R: 60, G: 120, B: 220, A: 255},
	body.FaceNorth:  {R: 70, G: 180, B: 90, A: 255},
	body.FaceEast:   {R: 220, G: 170, B: 40, A: 255},
	body.FaceSouth:  {R: 150, G: 80, B: 200, A: 255},
	body.FaceWest:   {R: 40, G: 180, B: 190, A: 255},
}

var outlineColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}

// Plot builds the figure for seg and its placements
func Plot(seg body.Segment, apps []body.Appendage) (*plot.Plot, error) {
	p := plot.New()
	dim := seg.Dimensions()
	p.Title.Text = fmt.Sprintf("%v S=%.3g D=%.3g L=%.3g: %d/%d slots",
		seg.Shape(), dim.Size, dim.AppendageDiameter, dim.AppendageLength, len(apps), seg.SlotCount())

	switch s := seg.(type) {
	case *body.Cube:
		if err := plotCube(p, s, apps); err != nil {
			return nil, err
		}
	case *body.Sphere:
		if err := plotSphere(p, apps); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("netplot: unsupported segment %T", seg)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// Render saves the figure to path, format chosen by extension
func Render(seg body.Segment, apps []body.Appendage, path string) error {
	p, err := Plot(seg, apps)
	if err != nil {
		return err
	}
	if err := p.Save(parameter.PlotWidthInches*vg.Inch, parameter.PlotHeightInches*vg.Inch, path); err != nil {
		return fmt.Errorf("netplot: save: %w", err)
	}
	return nil
}

func plotCube(p *plot.Plot, c *body.Cube, apps []body.Appendage) error {
	rows := c.RowsPerFace()
	p.X.Label.Text = "net column"
	p.Y.Label.Text = "net row"
	if rows == 0 {
		return nil
	}
	w, h := body.NetSize(rows)
	p.X.Min, p.X.Max = 0, float64(w)
	p.Y.Min, p.Y.Max = -float64(h), 0

	var perFace [body.FaceCount]plotter.XYs
	for _, a := range apps {
		x, y, ok := body.NetCell(a.Face, a.Row, a.Col, rows)
		if !ok {
			continue
		}
		perFace[a.Face] = append(perFace[a.Face], plotter.XY{X: float64(x) + 0.5, Y: -float64(y) - 0.5})
	}

	for f := body.FaceTop; f < body.FaceCount; f++ {
		outline, err := faceOutline(f, rows)
		if err != nil {
			return err
		}
		p.Add(outline)

		if len(perFace[f]) == 0 {
			continue
		}
		sc, err := scatter(perFace[f], faceColors[f])
		if err != nil {
			return err
		}
		p.Add(sc)
		p.Legend.Add(f.String(), sc)
	}
	return nil
}

// faceOutline traces the square a face occupies on the net
func faceOutline(f body.Face, rows int) (*plotter.Line, error) {
	x0, y0, _ := body.NetCell(f, 0, 0, rows)
	x1, y1 := float64(x0+rows), -float64(y0+rows)
	pts := plotter.XYs{
		{X: float64(x0), Y: -float64(y0)},
		{X: x1, Y: -float64(y0)},
		{X: x1, Y: y1},
		{X: float64(x0), Y: y1},
		{X: float64(x0), Y: -float64(y0)},
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("netplot: outline: %w", err)
	}
	line.Color = outlineColor
	line.Width = vg.Points(1)
	return line, nil
}

func plotSphere(p *plot.Plot, apps []body.Appendage) error {
	p.X.Label.Text = "longitude"
	p.Y.Label.Text = "latitude"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = -1, 0
	if len(apps) == 0 {
		return nil
	}

	pts := make(plotter.XYs, 0, len(apps))
	for _, a := range apps {
		u, v := body.Equirect(a.Normal)
		pts = append(pts, plotter.XY{X: u, Y: -v})
	}
	sc, err := scatter(pts, faceColors[body.FaceTop])
	if err != nil {
		return err
	}
	p.Add(sc)
	p.Legend.Add("surface", sc)
	return nil
}

func scatter(pts plotter.XYs, c color.Color) (*plotter.Scatter, error) {
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("netplot: scatter: %w", err)
	}
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(parameter.PlotGlyphRadiusPoints)
	return sc, nil
}
