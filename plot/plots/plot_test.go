// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"image"
	"math"
	"os"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/paint"
	"cogentcore.org/lab/plot"
)

func ExampleLine() {
	xd, yd := make(plot.Values, 21), make(plot.Values, 21)
	for i := range xd {
		xd[i] = float64(i * 5)
		yd[i] = 50 + 40*math.Sin((float64(i)/8)*math.Pi)
	}
	plt := plot.New()
	plt.Add(NewLine(plot.Data{plot.X: xd, plot.Y: yd}).Styler(func(s *plot.Style) {
		s.Line.Color = colors.Uniform(colors.Red)
		s.Line.Width.Pt(2)
	}))
	plt.Draw()
	imagex.Save(plt.Pixels, "testdata/ex_line_plot.png")
	// Output:
}

func TestMain(m *testing.M) {
	paint.FontLibrary.InitFontPaths(paint.FontPaths...)
	os.Exit(m.Run())
}

// sinCosWrapData makes two overlapping sin / cos series in one sequence.
func sinCosWrapData() plot.Data {
	xd, yd := make(plot.Values, 42), make(plot.Values, 42)
	for i := range xd {
		x := float64(i % 21)
		xd[i] = x * 5
		if i < 21 {
			yd[i] = float64(50) + 40*math.Sin((x/8)*math.Pi)
		} else {
			yd[i] = float64(50) + 40*math.Cos((x/8)*math.Pi)
		}
	}
	return plot.Data{plot.X: xd, plot.Y: yd}
}

func sinDataXY() plot.Data {
	xd, yd := make(plot.Values, 21), make(plot.Values, 21)
	for i := range xd {
		xd[i] = float64(i * 5)
		yd[i] = float64(50) + 40*math.Sin((float64(i)/8)*math.Pi)
	}
	return plot.Data{plot.X: xd, plot.Y: yd}
}

func sinData() plot.Values {
	sin := make(plot.Values, 21)
	for i := range sin {
		x := float64(i % 21)
		sin[i] = float64(50) + 40*math.Sin((x/8)*math.Pi)
	}
	return sin
}

func cosData() plot.Values {
	cos := make(plot.Values, 21)
	for i := range cos {
		x := float64(i % 21)
		cos[i] = float64(5) + 4*math.Cos((x/8)*math.Pi)
	}
	return cos
}

func TestLine(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Line"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	l1 := NewLine(sinCosWrapData())
	if l1 == nil {
		t.Error("bad data")
	}
	l1.Styler(func(s *plot.Style) {
		s.Range.SetMin(0).SetMax(100)
	})
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)
	plt.Legend.Add("Cos", l1)

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "line.png")

	l1.Style.Line.Fill = colors.Uniform(colors.Yellow)
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "line-fill.png")

	l1.Style.Line.Step = plot.PreStep
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "line-prestep.png")

	l1.Style.Line.Step = plot.MidStep
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "line-midstep.png")

	l1.Style.Line.Step = plot.PostStep
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "line-poststep.png")

	l1.Style.Line.Step = plot.NoStep
	l1.Style.Line.Fill = nil
	l1.Style.Line.NegativeX = true
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "line-negx.png")
}

func TestScatter(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Scatter"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	l1 := NewScatter(sinDataXY())
	if l1 == nil {
		t.Error("bad data")
	}
	l1.Styler(func(s *plot.Style) {
		s.Range.SetMin(0).SetMax(100)
	})
	plt.Add(l1)

	plt.Resize(image.Point{640, 480})

	shs := plot.ShapesValues()
	for _, sh := range shs {
		l1.Style.Point.Shape = sh
		plt.Draw()
		imagex.Assert(t, plt.Pixels, "scatter-"+sh.String()+".png")
	}
}

func TestLabels(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Labels"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	xd, yd := make(plot.Values, 12), make(plot.Values, 12)
	labels := make(plot.Labels, 12)
	for i := range xd {
		x := float64(i % 21)
		xd[i] = x * 5
		yd[i] = float64(50) + 40*math.Sin((x/8)*math.Pi)
		labels[i] = fmt.Sprintf("%7.4g", yd[i])
	}

	l1 := NewXY(plot.Data{plot.X: xd, plot.Y: yd})
	if l1 == nil {
		t.Error("bad data")
	}
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	l2 := NewLabels(plot.Data{plot.X: xd, plot.Y: yd, plot.Label: labels})
	if l2 == nil {
		t.Error("bad data")
	}
	l2.Styler(func(s *plot.Style) {
		s.Text.Offset.X.Dp(6)
		s.Text.Offset.Y.Dp(-6)
	})
	plt.Add(l2)

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "labels.png")
}

func TestBar(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Bar Chart"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	data := sinData()
	cos := make(plot.Values, 21)
	for i := range cos {
		x := float64(i % 21)
		cos[i] = float64(50) + 40*math.Cos((x/8)*math.Pi)
	}

	l1 := NewBar(plot.Data{plot.Y: data})
	if l1 == nil {
		t.Error("bad data")
	}
	l1.Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Red)
		s.Range.SetMin(0).SetMax(100)
	})
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "bar.png")

	l2 := NewBar(plot.Data{plot.Y: cos})
	if l2 == nil {
		t.Error("bad data")
	}
	l2.Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Blue)
		s.Width.Stride = 2
		s.Width.Offset = 2
	})
	plt.Legend.Add("Cosine", l2)

	l1.Style.Width.Stride = 2
	plt.Add(l2)
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "bar-cos.png")
}

func TestBarErr(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Bar Chart Errors"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	l1 := NewBar(plot.Data{plot.Y: sinData(), plot.High: cosData()})
	if l1 == nil {
		t.Error("bad data")
	}
	l1.Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Red)
		s.Range.SetMin(0).SetMax(100)
	})
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "bar-err.png")

	l1.Horizontal = true
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "bar-err-horiz.png")
}

func TestBarStack(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Bar Chart Stacked"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	l1 := NewBar(plot.Data{plot.Y: sinData()})
	if l1 == nil {
		t.Error("bad data")
	}
	l1.Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Red)
		s.Range.SetMin(0).SetMax(100)
	})
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	l2 := NewBar(plot.Data{plot.Y: cosData()})
	if l2 == nil {
		t.Error("bad data")
	}
	l2.Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Blue)
	})
	l2.StackedOn = l1
	plt.Add(l2)
	plt.Legend.Add("Cos", l2)

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "bar-stacked.png")
}

func TestErrBar(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Line Errors"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	data := sinDataXY()
	high := cosData()
	low := make(plot.Values, 21)
	for i := range low {
		low[i] = -high[i]
	}
	data[plot.High] = high
	data[plot.Low] = low

	l1 := NewLine(data)
	if l1 == nil {
		t.Error("bad data")
	}
	l1.Styler(func(s *plot.Style) {
		s.Range.SetMin(0).SetMax(100)
	})
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	l2 := NewYErrorBars(data)
	if l2 == nil {
		t.Error("bad data")
	}
	plt.Add(l2)

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "errbar.png")
}

func TestClosestData(t *testing.T) {
	plt := plot.New()
	l1 := NewLine(sinDataXY())
	if l1 == nil {
		t.Error("bad data")
	}
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)
	plt.Resize(image.Point{640, 480})
	plt.Draw()

	_, pi, idx, dist, _, _, lg := plt.ClosestDataToPixel(int(l1.PX[5]), int(l1.PY[5]))
	if pi != 0 || idx != 5 {
		t.Errorf("expected plotter 0, point 5, got %d, %d", pi, idx)
	}
	if dist > 2 {
		t.Errorf("distance %g too far from data point", dist)
	}
	if lg != "Sine" {
		t.Errorf("legend should be Sine, got %q", lg)
	}

	plt.HighlightPlotter = l1
	plt.HighlightIndex = idx
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "line-highlight.png")
}
