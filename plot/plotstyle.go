// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/styles/units"
)

// PlotStyle has overall plot level styling properties.
// Some properties provide defaults for individual elements,
// which can then be overwritten by element-level properties.
type PlotStyle struct { //types:add -setters

	// Title is the overall title of the plot.
	Title string

	// TitleStyle is the text styling parameters for the title.
	TitleStyle TextStyle

	// Background is the background of the plot.
	// The default is [colors.Scheme.Surface].
	Background image.Image

	// Scale multiplies the plot DPI value, to change the overall scale
	// of the rendered plot. Larger numbers produce larger scaling.
	// Typically use larger numbers when generating plots for inclusion in
	// documents or other cases where the overall plot size will be small.
	Scale float32 `default:"1,2"`

	// Legend has the styling properties for the Legend.
	Legend LegendStyle `display:"add-fields"`

	// Axis has the styling properties for the Axes.
	Axis AxisStyle `display:"add-fields"`

	// XAxis specifies the column to use for the common X axis,
	// in a table-based plot. If empty or not found,
	// the row number is used.
	XAxis string

	// XAxisRotation is the rotation of the X Axis labels, in degrees.
	XAxisRotation float32

	// XAxisLabel is the optional label to use for the XAxis instead of the default.
	XAxisLabel string

	// YAxisLabel is the optional label to use for the YAxis instead of the default.
	YAxisLabel string

	// LinesOn determines whether lines are plotted by default,
	// for elements that plot lines (e.g., plots.XY).
	LinesOn DefaultOffOn

	// LineWidth sets the default line width for data plotting lines.
	LineWidth units.Value

	// PointsOn determines whether points are plotted by default,
	// for elements that plot points (e.g., plots.XY).
	PointsOn DefaultOffOn

	// PointSize sets the default point size.
	PointSize units.Value

	// LabelSize sets the default label text size.
	LabelSize units.Value

	// BarWidth for Bar plot sets the default width of the bars,
	// which should be less than the Stride (1 typically) to prevent
	// bar overlap. Defaults to .8.
	BarWidth float64
}

func (ps *PlotStyle) Defaults() {
	ps.TitleStyle.Defaults()
	ps.TitleStyle.Size.Dp(24)
	ps.Background = colors.Scheme.Surface
	ps.Scale = 1
	ps.Legend.Defaults()
	ps.Axis.Defaults()
	ps.LineWidth.Pt(1)
	ps.PointSize.Pt(4)
	ps.LabelSize.Dp(16)
	ps.BarWidth = .8
}

// SetElementStyle sets the properties for given element's style
// based on the global default settings in this PlotStyle.
func (ps *PlotStyle) SetElementStyle(es *Style) {
	if ps.LinesOn != Default {
		es.Line.On = ps.LinesOn
	}
	if ps.PointsOn != Default {
		es.Point.On = ps.PointsOn
	}
	es.Line.Width = ps.LineWidth
	es.Point.Size = ps.PointSize
	es.Width.Width = ps.BarWidth
	es.Text.Size = ps.LabelSize
}
