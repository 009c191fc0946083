// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/lab/table"
)

// NewTablePlot returns a new [Plot] based on given [table.Table] set of
// columns, with plot configuration from [Stylers] functions stored in the
// metadata of each column, and of the table itself for overall [PlotStyle]
// properties. Only columns marked as On are plotted. There must be a column
// with Role = X, which is used as the X axis for all plotters (first one
// found is used). A String column as X sets nominal category labels.
// Columns in the same Group provide additional Roles (e.g., Low, High,
// Label) to the plotter for the On column in that group.
func NewTablePlot(dt *table.Table) (*Plot, error) {
	nc := dt.NumColumns()
	if nc == 0 {
		return nil, errors.New("plot.NewTablePlot: no columns in table")
	}
	csty := make([]*Style, nc)
	gps := make(map[string][]int, nc)
	xi := -1
	for ci := range nc {
		cl := dt.ColumnByIndex(ci)
		st := &Style{}
		st.Defaults()
		stl := GetStylersFrom(cl)
		if stl != nil {
			stl.Run(st)
		}
		csty[ci] = st
		gps[st.Group] = append(gps[st.Group], ci)
		if xi < 0 && st.Role == X {
			xi = ci
		}
	}
	if xi < 0 {
		return nil, errors.New("plot.NewTablePlot: X axis (Style.Role = X) column not found")
	}
	var xd Valuer
	xd = dt.ColumnByIndex(xi)
	plt := New()
	tst := GetStylersFrom(dt)
	if tst != nil {
		st := &Style{}
		st.Defaults()
		tst.Run(st)
		plt.Style = st.Plot
	}
	if sc, ok := xd.(*table.String); ok {
		plt.NominalX(sc.Values...)
		xv := make(Values, len(sc.Values))
		for i := range xv {
			xv[i] = float64(i + 1)
		}
		xd = xv
	}
	var errs []error
	nyc := 0
	yci := -1
	for ci := range nc {
		cl := dt.ColumnByIndex(ci)
		st := csty[ci]
		if st.On != On || st.Role == X {
			continue
		}
		ptyp := "XY"
		if st.Plotter != "" {
			ptyp = string(st.Plotter)
		}
		pty, err := PlotterByType(ptyp)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		data := Data{X: xd, st.Role: cl}
		if st.Group != "" { // other columns in group provide additional roles
			for _, gi := range gps[st.Group] {
				gst := csty[gi]
				if gi == ci || gst.On == On || gst.Role == X || gst.Role == st.Role {
					continue
				}
				data[gst.Role] = dt.ColumnByIndex(gi)
			}
		}
		pl := pty.New(data)
		if pl == nil {
			errs = append(errs, fmt.Errorf("plot.NewTablePlot: error in creating plotter type: %q", ptyp))
			continue
		}
		if st.Line.Color == colors.Scheme.OnSurface { // spaced colors unless styled
			clr := colors.Uniform(colors.Spaced(nyc))
			isBar := ptyp == "Bar"
			pl.Stylers().Add(func(s *Style) {
				s.Line.Color = clr
				s.Point.Color = clr
				s.Point.Fill = clr
				if isBar {
					s.Line.Fill = clr
				}
			})
		}
		plt.Add(pl)
		nyc++
		yci = ci
		lbl := dt.ColumnName(ci)
		if st.Label != "" {
			lbl = st.Label
		}
		if tn, ok := pl.(Thumbnailer); ok {
			plt.Legend.Add(lbl, tn)
		}
	}
	if plt.Style.XAxisLabel == "" {
		lbl := dt.ColumnName(xi)
		if csty[xi].Label != "" {
			lbl = csty[xi].Label
		}
		plt.Style.XAxisLabel = lbl
	}
	if nyc == 1 {
		plt.Legend.Entries = nil // Y axis label suffices for a single y
		if plt.Style.YAxisLabel == "" {
			lbl := dt.ColumnName(yci)
			if csty[yci].Label != "" {
				lbl = csty[yci].Label
			}
			plt.Style.YAxisLabel = lbl
		}
	}
	return plt, errors.Join(errs...)
}
