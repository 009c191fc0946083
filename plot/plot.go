// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"
)

// Plot is the basic type representing a plot.
// It renders into its own [image.RGBA] Pixels image,
// and can also save a corresponding SVG version.
type Plot struct {
	// Title of the plot
	Title Text

	// Style has the styling properties for the plot.
	Style PlotStyle

	// StdTextStyle is the standard text style with default options.
	StdTextStyle styles.Text

	// X, Y, and Z are the horizontal, vertical, and depth axes
	// of the plot respectively.
	X, Y, Z Axis

	// Legend is the plot's legend.
	Legend Legend

	// Plotters are drawn by calling their Plot method after the axes are drawn.
	Plotters []Plotter

	// Size is the target size of the image to render to.
	Size image.Point

	// DPI is the dots per inch for rendering the image.
	// Larger numbers result in larger scaling of the plot contents
	// which is strongly recommended for print (e.g., use 300 for print)
	DPI float32 `default:"96,160,300"`

	// PanZoom provides post-styling pan and zoom range manipulation.
	PanZoom PanZoom

	// HighlightPlotter is the Plotter to highlight. Used for mouse hovering,
	// for example. It is the responsibility of the Plotter Plot function
	// to implement highlighting.
	HighlightPlotter Plotter

	// HighlightIndex is the index of the data point to highlight,
	// for HighlightPlotter.
	HighlightIndex int

	// Pixels is the image that we render into.
	Pixels *image.RGBA `copier:"-" json:"-" xml:"-" edit:"-"`

	// Paint is the painter for rendering into Pixels.
	Paint *paint.Context

	// PlotBox is the bounding box of the plotting area in the Pixels image,
	// within which the data is plotted, excluding title, axes, and legend.
	PlotBox math32.Box2
}

// New returns a new plot with some reasonable default settings.
func New() *Plot {
	pt := &Plot{}
	pt.Defaults()
	return pt
}

// Defaults sets defaults.
func (pt *Plot) Defaults() {
	pt.Style.Defaults()
	pt.Title.Defaults()
	pt.Title.Style.Size.Dp(24)
	pt.X.Defaults(math32.X)
	pt.Y.Defaults(math32.Y)
	pt.Z.Defaults(math32.Z)
	pt.Legend.Defaults()
	pt.DPI = 96
	pt.PanZoom.Defaults()
	pt.Size = image.Point{X: 1280, Y: 1024}
	pt.StdTextStyle.Defaults()
	pt.StdTextStyle.WhiteSpace = styles.WhiteSpaceNowrap
}

// Add adds Plotters to the plot.
// When drawing the plot, plotters are drawn in the
// order in which they were added to the plot.
func (pt *Plot) Add(ps ...Plotter) {
	pt.Plotters = append(pt.Plotters, ps...)
}

// SetPixels sets the backing pixels image to given image.RGBA,
// which will be rendered into directly.
func (pt *Plot) SetPixels(img *image.RGBA) {
	pt.Pixels = img
	sz := pt.Pixels.Bounds().Size()
	pc := &paint.Context{State: &paint.State{}, Paint: &styles.Paint{}}
	pc.Init(sz.X, sz.Y, pt.Pixels) // render directly into pixels
	pc.Bounds = pt.Pixels.Rect
	pc.Defaults()
	pc.UnitContext.DPI = pt.DPI
	pc.SetUnitContextExt(sz)
	pt.Paint = pc
	pt.Size = sz
}

// Resize sets the size of the output image to given size.
// Does nothing if already the same size.
func (pt *Plot) Resize(sz image.Point) {
	if pt.Pixels != nil {
		ib := pt.Pixels.Bounds().Size()
		if ib == sz {
			pt.Size = sz
			pt.Paint.UnitContext.DPI = pt.DPI
			return // already good
		}
	}
	pt.SetPixels(image.NewRGBA(image.Rectangle{Max: sz}))
}

// PX returns the pixel X coordinate for given raw data X value,
// using the X axis range and scaling.
func (pt *Plot) PX(v float64) float32 {
	return pt.PlotBox.ProjectX(float32(pt.X.Norm(v)))
}

// PY returns the pixel Y coordinate for given raw data Y value,
// using the Y axis range and scaling.
func (pt *Plot) PY(v float64) float32 {
	return pt.PlotBox.ProjectY(float32(1 - pt.Y.Norm(v)))
}

// NominalX configures the plot to have a nominal X
// axis: an X axis with names instead of numbers.
// The X location and label for each name are given
// by the x locations 1..n, matching the default
// bar plot positions.
func (pt *Plot) NominalX(names ...string) {
	pt.X.nominal = true
	pt.X.Style.TickLine.Width.Pt(0)
	pt.X.Style.TickLength.Pt(0)
	pt.X.Style.Line.Width.Pt(0)
	ticks := make([]Tick, len(names))
	for i, name := range names {
		ticks[i] = Tick{Value: float64(i + 1), Label: name}
	}
	pt.X.Ticker = ConstantTicks(ticks)
}

// NominalY is like [Plot.NominalX], but for the Y axis.
func (pt *Plot) NominalY(names ...string) {
	pt.Y.nominal = true
	pt.Y.Style.TickLine.Width.Pt(0)
	pt.Y.Style.TickLength.Pt(0)
	pt.Y.Style.Line.Width.Pt(0)
	ticks := make([]Tick, len(names))
	for i, name := range names {
		ticks[i] = Tick{Value: float64(i + 1), Label: name}
	}
	pt.Y.Ticker = ConstantTicks(ticks)
}

// applyStyle applies all the style parameters, from the plotter
// stylers to the plot-level styles and then to the plot elements.
func (pt *Plot) applyStyle() {
	// first update the global plot style settings
	var st Style
	st.Defaults()
	st.Plot = pt.Style
	for _, pl := range pt.Plotters {
		stl := pl.Stylers()
		if stl != nil {
			stl.Run(&st)
		}
	}
	pt.Style = st.Plot
	// then apply to elements
	for _, pl := range pt.Plotters {
		pl.ApplyStyle(&pt.Style)
	}
	// now style plot:
	pt.Title.Style = pt.Style.TitleStyle
	if pt.Style.Title != "" {
		pt.Title.Text = pt.Style.Title
	}
	pt.Legend.Style = pt.Style.Legend
	pt.X.applyStyle(&pt.Style.Axis)
	pt.Y.applyStyle(&pt.Style.Axis)
	pt.Z.applyStyle(&pt.Style.Axis)
	pt.X.TickText.Style.Rotation = pt.Style.XAxisRotation
	pt.Y.Label.Style.Rotation = -90
	pt.Y.TickText.Style.Align = styles.End
	if pt.Style.XAxisLabel != "" {
		pt.X.Label.Text = pt.Style.XAxisLabel
	}
	if pt.Style.YAxisLabel != "" {
		pt.Y.Label.Text = pt.Style.YAxisLabel
	}
	pt.UpdateRange()
}

// UpdateRange updates the axis range values based on the data
// from the plotters, the style range settings, and the PanZoom factors.
func (pt *Plot) UpdateRange() {
	pt.X.Range.SetInfinity()
	pt.Y.Range.SetInfinity()
	pt.Z.Range.SetInfinity()
	for _, pl := range pt.Plotters {
		pl.UpdateRange(pt, &pt.X.Range, &pt.Y.Range, &pt.Z.Range)
	}
	pt.X.SanitizeRange()
	pt.Y.SanitizeRange()
	pt.Z.SanitizeRange()
	pt.PanZoom.apply(&pt.X.Range, &pt.Y.Range)
}

// ClosestDataToPixel returns the Plotter data point closest to given pixel
// point, in the Pixels image, among all plotters with pixel data.
func (pt *Plot) ClosestDataToPixel(px, py int) (plt Plotter, plotterIndex, pointIndex int, dist float32, pixel math32.Vector2, data Data, legend string) {
	dist = float32(math.MaxFloat32)
	tp := math32.Vec2(float32(px), float32(py))
	for pi, pl := range pt.Plotters {
		dts, pxX, pxY := pl.Data()
		if dts == nil {
			continue
		}
		for i, ptx := range pxX {
			pty := pxY[i]
			pxy := math32.Vec2(ptx, pty)
			d := pxy.DistanceTo(tp)
			if d < dist {
				dist = d
				pixel = pxy
				plt = pl
				plotterIndex = pi
				pointIndex = i
				data = dts
				legend = pt.Legend.LegendForPlotter(pl)
			}
		}
	}
	return
}

// PanZoom provides post-styling pan and zoom range manipulation,
// which preserves the ability to regenerate the plot from data
// while viewing a different range.
type PanZoom struct {

	// XOffset adds offset to X range (pan).
	XOffset float64

	// XScale multiplies X range (zoom): > 1 = zoom in; < 1 = zoom out.
	XScale float64

	// YOffset adds offset to Y range (pan).
	YOffset float64

	// YScale multiplies Y range (zoom): > 1 = zoom in; < 1 = zoom out.
	YScale float64
}

func (pz *PanZoom) Defaults() {
	pz.XScale = 1
	pz.YScale = 1
}

// apply applies the pan and zoom factors to the given X and Y ranges,
// scaling about the center of each range.
func (pz *PanZoom) apply(xr, yr *minmax.F64) {
	if pz.XScale <= 0 {
		pz.XScale = 1
	}
	if pz.YScale <= 0 {
		pz.YScale = 1
	}
	ctr := xr.Midpoint()
	rng := 0.5 * xr.Range() / pz.XScale
	xr.Min = ctr - rng + pz.XOffset
	xr.Max = ctr + rng + pz.XOffset
	ctr = yr.Midpoint()
	rng = 0.5 * yr.Range() / pz.YScale
	yr.Min = ctr - rng + pz.YOffset
	yr.Max = ctr + rng + pz.YOffset
}
