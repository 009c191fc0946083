// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/lab/plot"
)

const (
	// AxLineType is be used for specifying the type name.
	AxLineType = "AxLine"

	// AxHLineType is be used for specifying the type name.
	AxHLineType = "AxHLine"

	// AxVLineType is be used for specifying the type name.
	AxVLineType = "AxVLine"
)

func init() {
	plot.RegisterPlotter(AxLineType, "draws infinite reference lines through points (0, intercept), (1, intercept+slope), using Y data for intercepts and Slope data for slopes.", []plot.Roles{}, []plot.Roles{plot.Y, plot.Slope}, func(data plot.Data) plot.Plotter {
		return NewAxLine(data)
	})
	plot.RegisterPlotter(AxHLineType, "draws horizontal reference lines through points (0, y), (1, y), using Y data values.", []plot.Roles{plot.Y}, []plot.Roles{}, func(data plot.Data) plot.Plotter {
		return NewAxHLine(data)
	})
	plot.RegisterPlotter(AxVLineType, "draws vertical reference lines through points (x, 0), (x, 1), using X data values.", []plot.Roles{plot.X}, []plot.Roles{}, func(data plot.Data) plot.Plotter {
		return NewAxVLine(data)
	})
}

// axLiner provides the two points in data coordinates that each reference
// line passes through. It is implemented by the closed set of variants:
// [AxLine], [AxHLine], and [AxVLine].
type axLiner interface {
	// numLines returns the number of reference lines.
	numLines() int

	// linePoints returns the two points that the ith line passes through,
	// in data coordinates, prior to any orientation swap.
	linePoints(i int) (x1, y1, x2, y2 float64)
}

// AxLineBase implements the orientation handling and rendering shared by
// the reference line plotters [AxLine], [AxHLine], and [AxVLine].
// The infinite line through each pair of defining points is clipped to
// the current axis ranges and drawn across the full plot area.
// Point markers are drawn at in-range defining points when turned on
// in the Point style (off by default).
type AxLineBase struct {
	// Orient is the independent axis of the plot. The default [math32.X]
	// draws lines as parametrized. When set to [math32.Y], the X and Y
	// coordinates of both defining points are swapped before drawing.
	Orient math32.Dims

	// PX, PY are the actual pixel plotting coordinates for the midpoint of
	// each drawn line segment. NaN for lines outside the axis ranges.
	PX, PY []float32

	// Style is the style for plotting.
	Style plot.Style

	liner   axLiner
	stylers plot.Stylers
}

func (ab *AxLineBase) Defaults() {
	ab.Style.Defaults()
	ab.Style.Point.On = plot.Off
}

func (ab *AxLineBase) ApplyStyle(ps *plot.PlotStyle) {
	ps.SetElementStyle(&ab.Style)
	ab.stylers.Run(&ab.Style)
	// marker colors follow the line color unless styled
	if ab.Style.Point.Color == colors.Scheme.OnSurface {
		ab.Style.Point.Color = ab.Style.Line.Color
	}
	if ab.Style.Point.Fill == colors.Scheme.OnSurface {
		ab.Style.Point.Fill = ab.Style.Line.Color
	}
}

func (ab *AxLineBase) Stylers() *plot.Stylers { return &ab.stylers }

// swapped returns the ith defining points, with coordinates swapped
// if Orient is the Y axis.
func (ab *AxLineBase) swapped(i int) (x1, y1, x2, y2 float64) {
	x1, y1, x2, y2 = ab.liner.linePoints(i)
	if ab.Orient == math32.Y {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	return
}

// Plot implements the plot.Plotter interface.
func (ab *AxLineBase) Plot(plt *plot.Plot) {
	pc := plt.Paint
	nl := ab.liner.numLines()
	ab.PX = make([]float32, nl)
	ab.PY = make([]float32, nl)
	lineOn := ab.Style.Line.SetStroke(plt)
	for i := range nl {
		ab.PX[i] = float32(math.NaN())
		ab.PY[i] = float32(math.NaN())
		x1, y1, x2, y2 := ab.swapped(i)
		cx1, cy1, cx2, cy2, ok := clipLine(x1, y1, x2, y2, &plt.X.Range, &plt.Y.Range)
		if !ok {
			continue
		}
		sx, sy := plt.PX(cx1), plt.PY(cy1)
		ex, ey := plt.PX(cx2), plt.PY(cy2)
		ab.PX[i] = 0.5 * (sx + ex)
		ab.PY[i] = 0.5 * (sy + ey)
		if lineOn {
			pc.MoveTo(sx, sy)
			pc.LineTo(ex, ey)
			pc.Stroke()
		}
	}
	if ab.Style.Point.SetStroke(plt) {
		for i := range nl {
			x1, y1, x2, y2 := ab.swapped(i)
			if plt.X.Range.InRange(x1) && plt.Y.Range.InRange(y1) {
				ab.Style.Point.DrawShape(pc, math32.Vec2(plt.PX(x1), plt.PY(y1)))
			}
			if plt.X.Range.InRange(x2) && plt.Y.Range.InRange(y2) {
				ab.Style.Point.DrawShape(pc, math32.Vec2(plt.PX(x2), plt.PY(y2)))
			}
		}
		pc.FillStyle.Color = nil
	}
}

// UpdateRange updates the given ranges. Reference lines span whatever
// ranges the data plotters establish, rather than contributing to them.
func (ab *AxLineBase) UpdateRange(plt *plot.Plot, xr, yr, zr *minmax.F64) {
}

// Thumbnail returns the thumbnail, implementing the plot.Thumbnailer interface.
func (ab *AxLineBase) Thumbnail(plt *plot.Plot) {
	pc := plt.Paint
	ptb := pc.Bounds
	midY := 0.5 * float32(ptb.Min.Y+ptb.Max.Y)
	if ab.Style.Line.SetStroke(plt) {
		pc.MoveTo(float32(ptb.Min.X), midY)
		pc.LineTo(float32(ptb.Max.X), midY)
		pc.Stroke()
	}
}

// clipLine clips the infinite line through (x1, y1), (x2, y2) to the
// rectangle of the given X and Y axis ranges, in data coordinates, using
// the parametric Liang-Barsky boundary tests. Clipping must precede
// projection to pixels because projection clamps out-of-range values.
// ok is false if the line misses the rectangle or the points coincide.
func clipLine(x1, y1, x2, y2 float64, xr, yr *minmax.F64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	dx := x2 - x1
	dy := y2 - y1
	if dx == 0 && dy == 0 {
		return
	}
	t0 := math.Inf(-1)
	t1 := math.Inf(1)
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x1 - xr.Min, xr.Max - x1, y1 - yr.Min, yr.Max - y1}
	for i, pv := range p {
		if pv == 0 {
			if q[i] < 0 { // parallel to and outside this boundary
				return
			}
			continue
		}
		t := q[i] / pv
		if pv < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
	}
	if t0 > t1 {
		return
	}
	cx1 = x1 + t0*dx
	cy1 = y1 + t0*dy
	cx2 = x1 + t1*dx
	cy2 = y1 + t1*dy
	ok = true
	return
}

//////// AxLine

// AxLine draws infinite reference lines defined by intercept and slope,
// each passing through (0, intercept) and (1, intercept+slope) in data
// coordinates. The Y data role provides intercepts (default 0) and the
// Slope role provides slopes (default 1). A length 1 value broadcasts
// against the other role, so N values in either role yield N lines.
type AxLine struct {
	AxLineBase

	// Intercept and Slope parametrize each line.
	Intercept, Slope plot.Values
}

// NewAxLine returns a new AxLine plotter for given intercept (Y role)
// and slope (Slope role) data, either of which may be omitted.
// Unlike other plotters, the two roles may have different lengths:
// the shorter one broadcasts its last value.
// Styler functions are obtained from the Y data if present.
func NewAxLine(data plot.Data) *AxLine {
	ln := &AxLine{}
	ln.Intercept = plot.CopyRole(data, plot.Y)
	ln.Slope = plot.CopyRole(data, plot.Slope)
	if len(ln.Intercept) == 0 {
		ln.Intercept = plot.Values{0}
	}
	if len(ln.Slope) == 0 {
		ln.Slope = plot.Values{1}
	}
	ln.stylers = plot.GetStylersFromData(data, plot.Y)
	ln.liner = ln
	ln.Defaults()
	return ln
}

// Styler adds a style function to set style parameters.
func (ln *AxLine) Styler(f func(s *plot.Style)) *AxLine {
	ln.stylers.Add(f)
	return ln
}

func (ln *AxLine) Data() (data plot.Data, pixX, pixY []float32) {
	pixX = ln.PX
	pixY = ln.PY
	data = plot.Data{}
	data[plot.Y] = ln.Intercept
	data[plot.Slope] = ln.Slope
	return
}

func (ln *AxLine) numLines() int {
	return max(len(ln.Intercept), len(ln.Slope))
}

func (ln *AxLine) linePoints(i int) (x1, y1, x2, y2 float64) {
	b := ln.Intercept[min(i, len(ln.Intercept)-1)]
	m := ln.Slope[min(i, len(ln.Slope)-1)]
	return 0, b, 1, b + m
}

//////// AxHLine

// AxHLine draws horizontal reference lines at given Y data values,
// each passing through (0, y) and (1, y) in data coordinates.
// An orientation swap turns them into vertical lines.
type AxHLine struct {
	AxLineBase

	// Y are the defining values of each line.
	Y plot.Values
}

// NewAxHLine returns a new AxHLine plotter for given Y role data.
// Styler functions are obtained from the Y data if present.
func NewAxHLine(data plot.Data) *AxHLine {
	if data.CheckLengths() != nil {
		return nil
	}
	hl := &AxHLine{}
	hl.Y = plot.MustCopyRole(data, plot.Y)
	if hl.Y == nil {
		return nil
	}
	hl.stylers = plot.GetStylersFromData(data, plot.Y)
	hl.liner = hl
	hl.Defaults()
	return hl
}

// Styler adds a style function to set style parameters.
func (hl *AxHLine) Styler(f func(s *plot.Style)) *AxHLine {
	hl.stylers.Add(f)
	return hl
}

func (hl *AxHLine) Data() (data plot.Data, pixX, pixY []float32) {
	pixX = hl.PX
	pixY = hl.PY
	data = plot.Data{}
	data[plot.Y] = hl.Y
	return
}

func (hl *AxHLine) numLines() int { return len(hl.Y) }

func (hl *AxHLine) linePoints(i int) (x1, y1, x2, y2 float64) {
	y := hl.Y[i]
	return 0, y, 1, y
}

//////// AxVLine

// AxVLine draws vertical reference lines at given X data values,
// each passing through (x, 0) and (x, 1) in data coordinates.
// An orientation swap turns them into horizontal lines.
type AxVLine struct {
	AxLineBase

	// X are the defining values of each line.
	X plot.Values
}

// NewAxVLine returns a new AxVLine plotter for given X role data.
// Styler functions are obtained from the X data if present.
func NewAxVLine(data plot.Data) *AxVLine {
	if data.CheckLengths() != nil {
		return nil
	}
	vl := &AxVLine{}
	vl.X = plot.MustCopyRole(data, plot.X)
	if vl.X == nil {
		return nil
	}
	vl.stylers = plot.GetStylersFromData(data, plot.X)
	vl.liner = vl
	vl.Defaults()
	return vl
}

// Styler adds a style function to set style parameters.
func (vl *AxVLine) Styler(f func(s *plot.Style)) *AxVLine {
	vl.stylers.Add(f)
	return vl
}

func (vl *AxVLine) Data() (data plot.Data, pixX, pixY []float32) {
	pixX = vl.PX
	pixY = vl.PY
	data = plot.Data{}
	data[plot.X] = vl.X
	return
}

func (vl *AxVLine) numLines() int { return len(vl.X) }

func (vl *AxVLine) linePoints(i int) (x1, y1, x2, y2 float64) {
	x := vl.X[i]
	return x, 0, x, 1
}
