// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot_test

import (
	"image"
	"math"
	"os"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/paint"
	"cogentcore.org/lab/plot"
	_ "cogentcore.org/lab/plot/plots"
	"cogentcore.org/lab/table"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	paint.FontLibrary.InitFontPaths(paint.FontPaths...)
	os.Exit(m.Run())
}

func TestTablePlot(t *testing.T) {
	dt := table.New()
	xc := dt.AddFloat64Column("Time")
	sc := dt.AddFloat64Column("Sine")
	cc := dt.AddFloat64Column("Cosine")
	dt.SetNumRows(21)
	for i := range xc.Values {
		x := float64(i)
		xc.Values[i] = x * 5
		sc.Values[i] = float64(50) + 40*math.Sin((x/8)*math.Pi)
		cc.Values[i] = float64(50) + 40*math.Cos((x/8)*math.Pi)
	}
	plot.SetStylerTo(dt, func(s *plot.Style) {
		s.Plot.Title = "Test Table Plot"
	})
	plot.SetStylerTo(xc, func(s *plot.Style) {
		s.Role = plot.X
	})
	plot.SetStylerTo(sc, func(s *plot.Style) {
		s.On = plot.On
		s.Role = plot.Y
		s.Range.SetMin(0).SetMax(100)
	})
	plot.SetStylerTo(cc, func(s *plot.Style) {
		s.On = plot.On
		s.Role = plot.Y
	})

	plt, err := plot.NewTablePlot(dt)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(plt.Plotters))

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "tableplot.png")
}

func TestTablePlotBar(t *testing.T) {
	dt := table.New()
	nc := dt.AddStringColumn("Name")
	vc := dt.AddFloat64Column("Value")
	hc := dt.AddFloat64Column("Err")
	dt.SetNumRows(4)
	for i, nm := range []string{"full", "partial", "pending", "off"} {
		nc.Values[i] = nm
		vc.Values[i] = float64(10 * (i + 1))
		hc.Values[i] = float64(i + 1)
	}
	plot.SetStylerTo(nc, func(s *plot.Style) {
		s.Role = plot.X
	})
	plot.SetStylerTo(vc, func(s *plot.Style) {
		s.On = plot.On
		s.Role = plot.Y
		s.Plotter = "Bar"
		s.Group = "Value"
	})
	plot.SetStylerTo(hc, func(s *plot.Style) {
		s.Role = plot.High
		s.Group = "Value"
	})

	plt, err := plot.NewTablePlot(dt)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(plt.Plotters))

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "tableplot-bar.png")
}
