// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bufio"
	"bytes"
	"image"
	"io"
	"os"

	"cogentcore.org/core/math32"
)

// SVGString returns an SVG representation of the plot as a string.
func (pt *Plot) SVGString() string {
	b := &bytes.Buffer{}
	pt.Paint.SVGOut = b
	pt.svgDraw()
	pt.Paint.SVGOut = nil
	return b.String()
}

// svgDraw draws to the SVGOut writer that must already be set in Paint.
func (pt *Plot) svgDraw() {
	pt.drawConfig()
	io.WriteString(pt.Paint.SVGOut, pt.Paint.SVGStart())
	pt.Draw()
	io.WriteString(pt.Paint.SVGOut, pt.Paint.SVGEnd())
}

// SVGToFile saves the SVG to given file.
func (pt *Plot) SVGToFile(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	pt.Paint.SVGOut = bw
	pt.svgDraw()
	pt.Paint.SVGOut = nil
	return bw.Flush()
}

// drawConfig configures everything for drawing, applying styles,
// and updating the axis ranges from the plotter data.
func (pt *Plot) drawConfig() {
	pt.applyStyle()
	pt.Resize(pt.Size) // ensure
	pt.Paint.UnitContext.DPI = pt.DPI * pt.Style.Scale
	pt.Legend.Style.Text.openFont(pt)
	pt.Paint.ToDots()
}

// Draw draws the plot to image.
// Plotters are drawn in the order in which they were
// added to the plot.
func (pt *Plot) Draw() {
	pt.drawConfig()
	pc := pt.Paint
	ptw := float32(pt.Size.X)
	pth := float32(pt.Size.Y)

	ptb := image.Rectangle{Max: pt.Size}
	pc.PushBounds(ptb)

	if pt.Style.Background != nil {
		pc.BlitBox(math32.Vector2{}, math32.Vector2FromPoint(pt.Size), pt.Style.Background)
	}

	if pt.Title.Text != "" {
		pt.Title.Config(pt)
		pos := pt.Title.PosX(ptw)
		pad := pt.Title.Style.Padding.Dots
		pos.Y = pad
		pt.Title.Draw(pt, pos)
		th := pt.Title.PaintText.BBox.Size().Y + 2*pad
		pth -= th
		ptb.Min.Y += int(math32.Ceil(th))
	}

	pt.X.SanitizeRange()
	pt.Y.SanitizeRange()

	ywidth := pt.Y.size(pt)
	xheight := pt.X.size(pt)

	tb := ptb
	tb.Min.X += ywidth
	pc.PushBounds(tb)
	pt.X.draw(pt)
	pc.PopBounds()

	tb = ptb
	tb.Max.Y -= xheight
	pc.PushBounds(tb)
	pt.Y.draw(pt)
	pc.PopBounds()

	tb = ptb
	tb.Min.X += ywidth
	tb.Max.Y -= xheight
	pc.PushBounds(tb)
	pt.PlotBox.SetFromRect(tb)

	for _, plt := range pt.Plotters {
		plt.Plot(pt)
	}
	pc.PopBounds()

	pt.Legend.draw(pt)
	pc.PopBounds()
}

//////// Axis

// size returns the Height of an X axis, or Width of a Y axis,
// generating the ticks for the current range in the process.
func (ax *Axis) size(pt *Plot) int {
	ax.ticks = ax.Ticker.Ticks(ax.Range.Min, ax.Range.Max, ax.Style.NTicks)
	if ax.Axis == math32.X {
		return ax.sizeX(pt)
	}
	return ax.sizeY(pt)
}

func (ax *Axis) sizeX(pt *Plot) int {
	h := float32(0)
	if ax.Label.Text != "" { // X axis label is not rotated
		ax.Label.Config(pt)
		h += ax.Label.PaintText.BBox.Size().Y
		h += ax.Label.Style.Padding.Dots
	}

	if len(ax.ticks) > 0 {
		if ax.drawTicks() {
			h += ax.Style.TickLength.Dots
		}
		ax.TickText.Text = ax.longestTickLabel()
		if ax.TickText.Text != "" {
			ax.TickText.Config(pt)
			h += ax.TickText.PaintText.BBox.Size().Y
			h += ax.TickText.Style.Padding.Dots
		}
	}
	h += ax.Style.Line.Width.Dots / 2
	h += ax.Style.Padding.Dots

	return int(math32.Ceil(h))
}

func (ax *Axis) sizeY(pt *Plot) int {
	w := float32(0)
	if ax.Label.Text != "" { // Y axis label is rotated, so it occupies its height
		ax.Label.Config(pt)
		w += ax.Label.PaintText.BBox.Size().Y
		w += ax.Label.Style.Padding.Dots
	}

	if len(ax.ticks) > 0 {
		if ax.drawTicks() {
			w += ax.Style.TickLength.Dots
		}
		ax.TickText.Text = ax.longestTickLabel()
		if ax.TickText.Text != "" {
			ax.TickText.Config(pt)
			w += ax.TickText.PaintText.BBox.Size().X
			w += ax.TickText.Style.Padding.Dots
		}
	}
	w += ax.Style.Line.Width.Dots / 2
	w += ax.Style.Padding.Dots

	return int(math32.Ceil(w))
}

func (ax *Axis) longestTickLabel() string {
	lst := ""
	for _, tk := range ax.ticks {
		if len(tk.Label) > len(lst) {
			lst = tk.Label
		}
	}
	return lst
}

func (ax *Axis) draw(pt *Plot) {
	if ax.Axis == math32.X {
		ax.drawX(pt)
	} else {
		ax.drawY(pt)
	}
}

// drawX draws the horizontal axis along the bottom of the current bounds.
func (ax *Axis) drawX(pt *Plot) {
	uc := &pt.Paint.UnitContext
	ab := pt.Paint.Bounds
	axw := float32(ab.Size().X)
	if ax.Label.Text != "" {
		ax.Label.Config(pt)
		pos := ax.Label.PosX(axw)
		pos.X += float32(ab.Min.X)
		th := ax.Label.PaintText.BBox.Size().Y
		pos.Y = float32(ab.Max.Y) - th
		ax.Label.Draw(pt, pos)
		ab.Max.Y -= int(math32.Ceil(th + ax.Label.Style.Padding.Dots))
	}

	tickHt := float32(0)
	for _, t := range ax.ticks {
		x := axw * float32(ax.Norm(t.Value))
		if x < 0 || x > axw || t.IsMinor() {
			continue
		}
		ax.TickText.Text = t.Label
		ax.TickText.Config(pt)
		pos := ax.TickText.PosX(0)
		pos.X += x + float32(ab.Min.X)
		tickHt = ax.TickText.PaintText.BBox.Size().Y + ax.TickText.Style.Padding.Dots
		pos.Y = float32(ab.Max.Y) - tickHt
		ax.TickText.Draw(pt, pos)
	}

	if len(ax.ticks) > 0 {
		ab.Max.Y -= int(math32.Ceil(tickHt))
	}

	if len(ax.ticks) > 0 && ax.drawTicks() {
		ax.Style.TickLength.ToDots(uc)
		ln := ax.Style.TickLength.Dots
		for _, t := range ax.ticks {
			x := axw * float32(ax.Norm(t.Value))
			if x < 0 || x > axw {
				continue
			}
			x += float32(ab.Min.X)
			ax.Style.TickLine.Draw(pt, math32.Vec2(x, float32(ab.Max.Y)), math32.Vec2(x, float32(ab.Max.Y)-ln))
		}
		ab.Max.Y -= int(0.5 * ln)
	}

	ax.Style.Line.Draw(pt, math32.Vec2(float32(ab.Min.X), float32(ab.Max.Y)), math32.Vec2(float32(ab.Min.X)+axw, float32(ab.Max.Y)))
}

// drawY draws the Y axis along the left side of the current bounds.
func (ax *Axis) drawY(pt *Plot) {
	uc := &pt.Paint.UnitContext
	ab := pt.Paint.Bounds
	axh := float32(ab.Size().Y)
	if ax.Label.Text != "" {
		ax.Label.Config(pt)
		tsz := ax.Label.PaintText.BBox.Size()
		pos := math32.Vec2(float32(ab.Min.X), float32(ab.Min.Y)+0.5*(axh+tsz.X))
		ax.Label.Draw(pt, pos)
		ab.Min.X += int(math32.Ceil(tsz.Y + ax.Label.Style.Padding.Dots))
	}

	tickWd := float32(0)
	if len(ax.ticks) > 0 {
		ax.TickText.Text = ax.longestTickLabel()
		if ax.TickText.Text != "" {
			ax.TickText.Config(pt)
			tickWd = ax.TickText.PaintText.BBox.Size().X + ax.TickText.Style.Padding.Dots
		}
	}
	for _, t := range ax.ticks {
		y := axh * float32(1-ax.Norm(t.Value))
		if y < 0 || y > axh || t.IsMinor() {
			continue
		}
		ax.TickText.Text = t.Label
		ax.TickText.Config(pt)
		pos := ax.TickText.PosX(tickWd)
		tht := ax.TickText.PaintText.BBox.Size().Y
		pos.X += float32(ab.Min.X)
		pos.Y = float32(ab.Min.Y) + y - 0.5*tht
		ax.TickText.Draw(pt, pos)
	}

	if len(ax.ticks) > 0 {
		ab.Min.X += int(math32.Ceil(tickWd))
	}

	if len(ax.ticks) > 0 && ax.drawTicks() {
		ax.Style.TickLength.ToDots(uc)
		ln := ax.Style.TickLength.Dots
		for _, t := range ax.ticks {
			y := axh * float32(1-ax.Norm(t.Value))
			if y < 0 || y > axh {
				continue
			}
			y += float32(ab.Min.Y)
			ax.Style.TickLine.Draw(pt, math32.Vec2(float32(ab.Min.X), y), math32.Vec2(float32(ab.Min.X)+ln, y))
		}
		ab.Min.X += int(0.5 * ln)
	}

	ax.Style.Line.Draw(pt, math32.Vec2(float32(ab.Min.X), float32(ab.Min.Y)), math32.Vec2(float32(ab.Min.X), float32(ab.Min.Y)+axh))
}

//////// Legend

// draw draws the legend to the upper right or other configured
// position within the current plot bounds.
func (lg *Legend) draw(pt *Plot) {
	if len(lg.Entries) == 0 {
		return
	}
	pc := pt.Paint
	uc := &pc.UnitContext
	ptb := pc.Bounds

	lg.Style.ThumbnailWidth.ToDots(uc)
	lg.Style.Position.XOffs.ToDots(uc)
	lg.Style.Position.YOffs.ToDots(uc)

	var ltxt Text
	ltxt.Defaults()
	ltxt.Style = lg.Style.Text
	var sz math32.Vector2
	maxTht := 0
	for _, e := range lg.Entries {
		ltxt.Text = e.Text
		ltxt.Config(pt)
		sz.X = max(sz.X, ltxt.PaintText.BBox.Size().X)
		tht := int(math32.Ceil(ltxt.PaintText.BBox.Size().Y + ltxt.Style.Padding.Dots))
		maxTht = max(maxTht, tht)
	}
	sz.X += 2 * lg.Style.ThumbnailWidth.Dots
	sz.Y = float32(len(lg.Entries) * maxTht)

	pos := ptb.Min
	if lg.Style.Position.Left {
		pos.X += int(lg.Style.Position.XOffs.Dots)
	} else {
		pos.X = ptb.Max.X - int(sz.X) - int(lg.Style.Position.XOffs.Dots)
	}
	if lg.Style.Position.Top {
		pos.Y += int(lg.Style.Position.YOffs.Dots)
	} else {
		pos.Y = ptb.Max.Y - int(sz.Y) - int(lg.Style.Position.YOffs.Dots)
	}

	if lg.Style.Fill != nil {
		pc.FillBox(math32.Vector2FromPoint(pos), sz, lg.Style.Fill)
	}
	cp := pos
	thsz := image.Point{X: int(lg.Style.ThumbnailWidth.Dots), Y: maxTht - 2*int(ltxt.Style.Padding.Dots)}
	for _, e := range lg.Entries {
		tb := image.Rectangle{Min: cp, Max: cp.Add(thsz)}
		pc.PushBounds(tb)
		for _, t := range e.Thumbs {
			t.Thumbnail(pt)
		}
		pc.PopBounds()
		ltxt.Text = e.Text
		ltxt.Config(pt)
		ep := math32.Vector2FromPoint(cp)
		ep.X += lg.Style.ThumbnailWidth.Dots + ltxt.Style.Padding.Dots
		ltxt.Draw(pt, ep)
		cp.Y += maxTht
	}
}
