package report

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/user/matrixbench_go/internal/analysis"
	"github.com/user/matrixbench_go/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Palette and marker cycle for method series, assigned by position in
// Dataset method order and cycled when there are more methods than entries.
var (
	plotColors = []color.Color{
		color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 255}, // Green
		color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 255}, // Red
		color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255}, // Blue
		color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 255}, // Yellow
	}
	plotShapes = []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.BoxGlyph{},
		draw.PyramidGlyph{},
		draw.CrossGlyph{},
	}
)

const (
	chartWidth  = 16 * vg.Inch
	chartHeight = 7 * vg.Inch
)

type panelConfig struct {
	title  string
	yLabel string
	logY   bool
	value  func(parser.TrialRecord) float64
}

// newSeriesPanel builds one panel with a line-plus-marker series per method,
// in Dataset method order.
func newSeriesPanel(ds *analysis.Dataset, cfg panelConfig) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "Matrix Size"
	p.Y.Label.Text = cfg.yLabel
	if cfg.logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	linesPlotted := false
	for i, method := range ds.Methods {
		series := ds.Series[method]
		pts := make(plotter.XYs, 0, len(series))
		for _, rec := range series {
			y := cfg.value(rec)
			if cfg.logY && y <= 0 {
				continue // A log axis cannot place zero or negative values
			}
			pts = append(pts, plotter.XY{X: float64(rec.Size), Y: y})
		}
		if len(pts) == 0 {
			continue
		}

		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create series for %s: %v", method, err)
		}
		line.Color = plotColors[i%len(plotColors)]
		line.Width = vg.Points(2)
		scatter.Color = plotColors[i%len(plotColors)]
		scatter.Shape = plotShapes[i%len(plotShapes)]
		scatter.Radius = vg.Points(3)

		p.Add(line, scatter)
		p.Legend.Add(method, line, scatter)
		linesPlotted = true
	}

	if !linesPlotted {
		// Pin the axes so an empty dataset still renders blank panels.
		p.X.Min, p.X.Max = 0, 1
		if cfg.logY {
			p.Y.Min, p.Y.Max = 1, 10
		} else {
			p.Y.Min, p.Y.Max = 0, 1
		}
	}
	return p, nil
}

// CreateComparisonChart renders the two-panel comparison figure as PNG
// bytes: compute time versus matrix size on a logarithmic time axis, and
// achieved throughput versus size on a linear axis.
func CreateComparisonChart(ds *analysis.Dataset) ([]byte, error) {
	timePanel, err := newSeriesPanel(ds, panelConfig{
		title:  "Compute Time vs Size",
		yLabel: "Compute Time (ms)",
		logY:   true,
		value:  func(rec parser.TrialRecord) float64 { return rec.ComputeTimeMs },
	})
	if err != nil {
		return nil, err
	}
	throughputPanel, err := newSeriesPanel(ds, panelConfig{
		title:  "Performance vs Size",
		yLabel: "Performance (GFlops)",
		value:  func(rec parser.TrialRecord) float64 { return rec.GFlops },
	})
	if err != nil {
		return nil, err
	}

	img := vgimg.NewWith(
		vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Points(15),
		PadTop:    vg.Points(10),
		PadBottom: vg.Points(10),
		PadLeft:   vg.Points(10),
		PadRight:  vg.Points(10),
	}
	panels := [][]*plot.Plot{{timePanel, throughputPanel}}
	canvases := plot.Align(panels, tiles, dc)
	timePanel.Draw(canvases[0][0])
	throughputPanel.Draw(canvases[0][1])

	buf := new(bytes.Buffer)
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write chart to buffer: %v", err)
	}
	return buf.Bytes(), nil
}
