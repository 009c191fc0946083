// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
)

// DefaultFontFamily specifies a default font for plotting.
// if not set, the standard Cogent Core default font is used.
var DefaultFontFamily = ""

// TextStyle specifies styling parameters for Text elements.
type TextStyle struct { //types:add -setters
	styles.FontRender

	// how to align text along the relevant dimension for the text element.
	Align styles.Aligns

	// Padding is used in a case-dependent manner to add
	// space around text elements.
	Padding units.Value

	// rotation of the text, in degrees.
	Rotation float32

	// Offset is added directly to the final label location.
	Offset units.XY
}

func (ts *TextStyle) Defaults() {
	ts.FontRender.Defaults()
	ts.Color = colors.Scheme.OnSurface
	ts.Align = styles.Center
	if DefaultFontFamily != "" {
		ts.FontRender.Family = DefaultFontFamily
	}
}

// ToDots updates the sizing dots values based on given unit context.
func (ts *TextStyle) ToDots(uc *units.Context) {
	ts.FontRender.ToDots(uc)
	ts.Padding.ToDots(uc)
}

// openFont loads the font face from the font library if not already open.
func (ts *TextStyle) openFont(pt *Plot) {
	if ts.Font.Face == nil {
		paint.OpenFont(&ts.FontRender, &pt.Paint.UnitContext) // sets Face
	}
}

// Text specifies a single text element in a plot.
type Text struct {

	// text string, which can use HTML formatting.
	Text string

	// styling for this text element.
	Style TextStyle

	// PaintText is the [paint.Text] for the text.
	PaintText paint.Text
}

func (tx *Text) Defaults() {
	tx.Style.Defaults()
}

// Config is called during the layout of the plot, prior to drawing.
func (tx *Text) Config(pt *Plot) {
	uc := &pt.Paint.UnitContext
	fs := &tx.Style.FontRender
	tx.Style.ToDots(uc)
	txln := float32(len(tx.Text))
	fht := float32(16)
	hsz := float32(12) * txln
	if fs.Face != nil {
		fht = fs.Face.Metrics.Height
		hsz = 0.75 * fht * txln
	}
	txs := &pt.StdTextStyle
	txs.OrientationHoriz = tx.Style.Rotation
	txs.Align = tx.Style.Align

	tx.PaintText.SetHTML(tx.Text, fs, txs, uc, nil)
	tx.PaintText.Layout(txs, fs, uc, math32.Vector2{X: hsz, Y: fht})
}

// Draw renders the text at given upper left position.
// Text must have been configured already.
func (tx *Text) Draw(pt *Plot, pos math32.Vector2) {
	tx.PaintText.Render(pt.Paint, pos)
}

// PosX returns the starting position for a horizontally-aligned text element,
// based on given width. Text must have been configured already.
func (tx *Text) PosX(width float32) math32.Vector2 {
	pos := math32.Vector2{}
	sz := tx.PaintText.BBox.Size()
	switch tx.Style.Align {
	case styles.Center:
		pos.X = 0.5 * (width - sz.X)
	case styles.End:
		pos.X = width - sz.X
	}
	return pos
}

// PosY returns the starting position for a vertically-aligned text element,
// based on given height. Text must have been configured already.
func (tx *Text) PosY(height float32) math32.Vector2 {
	pos := math32.Vector2{}
	sz := tx.PaintText.BBox.Size()
	switch tx.Style.Align {
	case styles.Center:
		pos.Y = 0.5 * (height - sz.Y)
	case styles.End:
		pos.Y = height - sz.Y
	}
	return pos
}
