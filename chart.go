package interpolation

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartResolution is the number of steps the PNG renderer samples per curve.
const ChartResolution = 150

type ChartOptions struct {
	Title      string
	Width      int
	Height     int
	Resolution int
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Title:      "Interpolation",
		Width:      1024,
		Height:     640,
		Resolution: ChartResolution,
	}
}

var chartColors = map[Method]drawing.Color{
	MethodLagrange:       drawing.ColorFromHex("2196f3"),
	MethodNewtonForward:  drawing.ColorFromHex("4caf50"),
	MethodNewtonBackward: drawing.ColorFromHex("ff9800"),
	MethodNewtonDivided:  drawing.ColorFromHex("9c27b0"),
}

// RenderPNG draws the data points and one line per method curve. It needs at
// least two points with distinct x values, otherwise ErrNothingToPlot.
func RenderPNG(w io.Writer, points []Point, methods []Method, opts ChartOptions) error {
	if len(points) < 2 {
		return ErrNothingToPlot
	}
	if lo, hi, _ := Domain(points, 0); lo == hi {
		return ErrNothingToPlot
	}
	def := DefaultChartOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Resolution <= 0 {
		opts.Resolution = def.Resolution
	}
	curveOpts := DefaultCurveOptions()
	curveOpts.Resolution = opts.Resolution

	var series []chart.Series
	for _, m := range methods {
		for _, seg := range CurveSegments(points, m, curveOpts) {
			if len(seg) < 2 {
				continue
			}
			xs, ys := split(seg)
			series = append(series, chart.ContinuousSeries{
				Name:    m.Name(),
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chartColors[m],
					StrokeWidth: 2,
				},
			})
		}
	}

	xs, ys := split(sorted(points))
	series = append(series, chart.ContinuousSeries{
		Name:    "Data points",
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
			DotColor:    drawing.ColorBlack,
		},
	})

	ch := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  chart.XAxis{Name: "x"},
		YAxis:  chart.YAxis{Name: "y"},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

func split(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
