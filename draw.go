package interpolation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

var ErrNothingToPlot = errors.New("interpolation: nothing to plot")

// rgb triples for PostScript, one per method.
var psColors = map[Method]string{
	MethodLagrange:       "0.13 0.59 0.95",
	MethodNewtonForward:  "0.30 0.69 0.31",
	MethodNewtonBackward: "1.00 0.60 0.00",
	MethodNewtonDivided:  "0.61 0.15 0.69",
}

type plotBox struct {
	xmin, xmax, ymin, ymax float64
}

func (b *plotBox) add(p Point) {
	b.xmin, b.xmax = math.Min(b.xmin, p.X), math.Max(b.xmax, p.X)
	b.ymin, b.ymax = math.Min(b.ymin, p.Y), math.Max(b.ymax, p.Y)
}

// widen keeps a one-point or flat box from collapsing to zero size.
func (b *plotBox) widen() {
	if b.xmax == b.xmin {
		b.xmin, b.xmax = b.xmin-1, b.xmax+1
	}
	if b.ymax == b.ymin {
		b.ymin, b.ymax = b.ymin-1, b.ymax+1
	}
}

// https://github.com/rsmith-nl/ps-lib/blob/main/grid.inc

// DrawPS writes a one page PostScript plot: a grid, one polyline per method
// curve (broken where samples were dropped), the data points as dots and the
// x/y ranges as labels.
func DrawPS(w io.Writer, points []Point, methods []Method, resolution int) error {
	if len(points) == 0 {
		return ErrNothingToPlot
	}
	opts := DefaultCurveOptions()
	opts.Resolution = resolution

	curves := make(map[Method][][]Point, len(methods))
	box := plotBox{points[0].X, points[0].X, points[0].Y, points[0].Y}
	for _, p := range points {
		box.add(p)
	}
	for _, m := range methods {
		segs := CurveSegments(points, m, opts)
		for _, seg := range segs {
			for _, p := range seg {
				box.add(p)
			}
		}
		curves[m] = segs
	}
	box.widen()

	ps := bufio.NewWriter(w)
	fmt.Fprintf(ps, `%%!PS
%% Interpolation plot
/grid_major_color {1 .6 .6} def
/grid_color {.7 1 1} def
/dot_color {.1 .1 .1} def
/radius 2 def
/grid_major_lw 1.5 def
/grid_lw .5 def
/curve_lw 1.2 def
/major 10 def

%% Usage: dx dy w h gridwh
/gridwh {
  4 dict begin
    /h exch def /w exch def /dy exch def /dx exch def
    gsave
        grid_lw setlinewidth grid_color setrgbcolor
        newpath
        dx dx w { 0 moveto 0 h rlineto } for
        dy dy h { 0 exch moveto w 0 rlineto } for
        stroke
        newpath
        grid_major_lw setlinewidth grid_major_color setrgbcolor
        0 dx major mul w { 0 moveto 0 h rlineto } for
        0 dy major mul h { 0 exch moveto w 0 rlineto } for
        stroke
    grestore
  end
} bind def
`)

	fmt.Fprintf(ps, "/Xmin %v def\n/Xmax %v def\n/Ymin %v def\n/Ymax %v def\n",
		box.xmin, box.xmax, box.ymin, box.ymax)
	fmt.Fprintf(ps, `/Xsize Xmax Xmin sub def
/Ysize Ymax Ymin sub def
/w currentpagedevice /PageSize get 0 get def
/h currentpagedevice /PageSize get 1 get def

w 10 div h 10 div w h gridwh

/Translate { %% x y Translate
	Ymin sub h mul Ysize div
	exch
	Xmin sub w mul Xsize div
	exch
} bind def

%% Usage: XArr YArr polyline
/polyline {
	2 dict begin
	/ys exch def /xs exch def
	newpath
	xs 0 get ys 0 get Translate moveto
	1 1 xs length 1 sub {
		dup xs exch get exch ys exch get Translate lineto
	} for
	stroke
	end
} bind def

%% Usage: XArr YArr dots
/dots {
	2 dict begin
	/ys exch def /xs exch def
	0 1 xs length 1 sub {
		dup xs exch get exch ys exch get Translate
		newpath radius 0 360 arc fill
	} for
	end
} bind def
`)

	for _, m := range methods {
		fmt.Fprintf(ps, "\n%% %s\ngsave curve_lw setlinewidth %s setrgbcolor\n", m, psColors[m])
		for _, seg := range curves[m] {
			if len(seg) < 2 {
				continue
			}
			writePSArrays(ps, seg)
			fmt.Fprintf(ps, "polyline\n")
		}
		fmt.Fprintf(ps, "grestore\n")
	}

	fmt.Fprintf(ps, "\n%% data points\ngsave dot_color setrgbcolor\n")
	writePSArrays(ps, points)
	fmt.Fprintf(ps, "dots\ngrestore\n")

	fmt.Fprintf(ps, `
/Helvetica findfont 10 scalefont setfont
0 0 0 setrgbcolor
10 10 moveto (x: %v - %v) show
10 24 moveto (y: %v - %v) show
`, box.xmin, box.xmax, box.ymin, box.ymax)
	for i, m := range methods {
		fmt.Fprintf(ps, "%s setrgbcolor 10 h %d sub moveto (%s) show\n", psColors[m], 16+14*i, psEscape(m.Name()))
	}

	fmt.Fprintf(ps, `
showpage
`)
	return ps.Flush()
}

func writePSArrays(w io.Writer, points []Point) {
	fmt.Fprintf(w, "[")
	for _, p := range points {
		fmt.Fprintf(w, " %v", p.X)
	}
	fmt.Fprintf(w, " ] [")
	for _, p := range points {
		fmt.Fprintf(w, " %v", p.Y)
	}
	fmt.Fprintf(w, " ] ")
}

func psEscape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '(' || r == ')' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

// DrawPSFile writes DrawPS output to path.
func DrawPSFile(path string, points []Point, methods []Method, resolution int) error {
	ps, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := DrawPS(ps, points, methods, resolution); err != nil {
		ps.Close()
		return err
	}
	return ps.Close()
}
