// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image"
	"math"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/lab/plot"
	"github.com/stretchr/testify/assert"
)

// points gathers the defining points of the ith line for testing.
func points(ab *AxLineBase, i int) [4]float64 {
	x1, y1, x2, y2 := ab.swapped(i)
	return [4]float64{x1, y1, x2, y2}
}

func TestAxLinePoints(t *testing.T) {
	ln := NewAxLine(plot.Data{plot.Y: plot.Values{2}, plot.Slope: plot.Values{3}})
	if ln == nil {
		t.Error("bad data")
	}
	assert.Equal(t, 1, ln.numLines())
	assert.Equal(t, [4]float64{0, 2, 1, 5}, points(&ln.AxLineBase, 0))

	// intercept defaults to 0 and slope to 1
	ln = NewAxLine(plot.Data{})
	assert.Equal(t, 1, ln.numLines())
	assert.Equal(t, [4]float64{0, 0, 1, 1}, points(&ln.AxLineBase, 0))

	// a single slope broadcasts against multiple intercepts
	ln = NewAxLine(plot.Data{plot.Y: plot.Values{1, 2, 3}, plot.Slope: plot.Values{2}})
	assert.Equal(t, 3, ln.numLines())
	for i, b := range []float64{1, 2, 3} {
		assert.Equal(t, [4]float64{0, b, 1, b + 2}, points(&ln.AxLineBase, i))
	}

	// and a single intercept against multiple slopes
	ln = NewAxLine(plot.Data{plot.Y: plot.Values{10}, plot.Slope: plot.Values{-1, 0, 1}})
	assert.Equal(t, 3, ln.numLines())
	for i, m := range []float64{-1, 0, 1} {
		assert.Equal(t, [4]float64{0, 10, 1, 10 + m}, points(&ln.AxLineBase, i))
	}
}

func TestAxHLinePoints(t *testing.T) {
	hl := NewAxHLine(plot.Data{plot.Y: plot.Values{10, 90}})
	if hl == nil {
		t.Error("bad data")
	}
	assert.Equal(t, 2, hl.numLines())
	assert.Equal(t, [4]float64{0, 10, 1, 10}, points(&hl.AxLineBase, 0))
	assert.Equal(t, [4]float64{0, 90, 1, 90}, points(&hl.AxLineBase, 1))
}

func TestAxVLinePoints(t *testing.T) {
	vl := NewAxVLine(plot.Data{plot.X: plot.Values{25}})
	if vl == nil {
		t.Error("bad data")
	}
	assert.Equal(t, 1, vl.numLines())
	assert.Equal(t, [4]float64{25, 0, 25, 1}, points(&vl.AxLineBase, 0))
}

func TestAxLineOrient(t *testing.T) {
	ln := NewAxLine(plot.Data{plot.Y: plot.Values{2}, plot.Slope: plot.Values{3}})
	ln.Orient = math32.Y
	assert.Equal(t, [4]float64{2, 0, 5, 1}, points(&ln.AxLineBase, 0))

	hl := NewAxHLine(plot.Data{plot.Y: plot.Values{5}})
	hl.Orient = math32.Y
	assert.Equal(t, [4]float64{5, 0, 5, 1}, points(&hl.AxLineBase, 0))

	vl := NewAxVLine(plot.Data{plot.X: plot.Values{5}})
	vl.Orient = math32.Y
	assert.Equal(t, [4]float64{0, 5, 1, 5}, points(&vl.AxLineBase, 0))
}

func TestClipLine(t *testing.T) {
	xr := minmax.F64{Min: 0, Max: 10}
	yr := minmax.F64{Min: 0, Max: 10}

	clip := func(x1, y1, x2, y2 float64) ([4]float64, bool) {
		cx1, cy1, cx2, cy2, ok := clipLine(x1, y1, x2, y2, &xr, &yr)
		return [4]float64{cx1, cy1, cx2, cy2}, ok
	}

	// horizontal line inside spans the full x range
	cp, ok := clip(0, 5, 1, 5)
	assert.True(t, ok)
	assert.Equal(t, [4]float64{0, 5, 10, 5}, cp)

	// horizontal line above the y range is not drawn
	_, ok = clip(0, 20, 1, 20)
	assert.False(t, ok)

	// vertical line inside spans the full y range
	cp, ok = clip(3, 0, 3, 1)
	assert.True(t, ok)
	assert.Equal(t, [4]float64{3, 0, 3, 10}, cp)

	// vertical line outside the x range is not drawn
	_, ok = clip(15, 0, 15, 1)
	assert.False(t, ok)

	// diagonal through the origin spans corner to corner
	cp, ok = clip(0, 0, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, [4]float64{0, 0, 10, 10}, cp)

	// steep line entering from below is clipped on both axes
	cp, ok = clip(0, -10, 1, -8)
	assert.True(t, ok)
	assert.Equal(t, [4]float64{5, 0, 10, 10}, cp)

	// coincident points do not define a line
	_, ok = clip(4, 4, 4, 4)
	assert.False(t, ok)
}

func TestAxLineRange(t *testing.T) {
	plt := plot.New()
	l1 := NewLine(sinDataXY())
	plt.Add(l1)

	l2 := NewAxHLine(plot.Data{plot.Y: plot.Values{1000}})
	plt.Add(l2)

	plt.UpdateRange()
	assert.Equal(t, 100.0, plt.X.Range.Max)
	assert.Less(t, plt.Y.Range.Max, 100.0) // reference line does not expand the range
}

func TestAxLine(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test AxLine"
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
	plt.Legend.Add("Sine", l1)

	l2 := NewAxLine(plot.Data{plot.Y: plot.Values{10}, plot.Slope: plot.Values{0.8}})
	if l2 == nil {
		t.Error("bad data")
	}
	l2.Styler(func(s *plot.Style) {
		s.Line.Color = colors.Uniform(colors.Red)
	})
	plt.Add(l2)
	plt.Legend.Add("Trend", l2)

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "axline.png")

	l2.Orient = math32.Y
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "axline-orient.png")
}

func TestAxHLine(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test AxHLine"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	l1 := NewLine(sinDataXY())
	if l1 == nil {
		t.Error("bad data")
	}
	l1.Styler(func(s *plot.Style) {
		s.Range.SetMin(0).SetMax(100)
	})
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	l2 := NewAxHLine(plot.Data{plot.Y: plot.Values{10, 90}})
	if l2 == nil {
		t.Error("bad data")
	}
	l2.Styler(func(s *plot.Style) {
		s.Line.Color = colors.Uniform(colors.Blue)
	})
	plt.Add(l2)

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "axhline.png")

	l2.Style.Point.On = plot.On
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "axhline-markers.png")

	l2.Style.Point.On = plot.Off
	l2.Orient = math32.Y
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "axhline-orient.png")
}

func TestAxVLine(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test AxVLine"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	l1 := NewLine(sinDataXY())
	if l1 == nil {
		t.Error("bad data")
	}
	l1.Styler(func(s *plot.Style) {
		s.Range.SetMin(0).SetMax(100)
	})
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	l2 := NewAxVLine(plot.Data{plot.X: plot.Values{25, 75}})
	if l2 == nil {
		t.Error("bad data")
	}
	l2.Styler(func(s *plot.Style) {
		s.Line.Color = colors.Uniform(colors.Green)
	})
	plt.Add(l2)

	plt.Resize(image.Point{640, 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "axvline.png")

	l3 := NewAxVLine(plot.Data{plot.X: plot.Values{150}})
	plt.Add(l3)
	plt.Draw()
	if !math.IsNaN(float64(l3.PX[0])) {
		t.Error("line outside the axis ranges should not be drawn")
	}
}
