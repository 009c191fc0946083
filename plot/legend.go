// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"

	"cogentcore.org/core/styles/units"
)

// LegendStyle has the styling properties for the Legend.
type LegendStyle struct { //types:add -setters

	// Column is for table-based plotting, specifying the column
	// with the legend values.
	Column string

	// Text is the style given to the legend entry texts.
	Text TextStyle `display:"add-fields"`

	// position of the legend
	Position LegendPosition `display:"inline"`

	// ThumbnailWidth is the width of legend thumbnails.
	ThumbnailWidth units.Value `display:"inline"`

	// Fill specifies the background fill color for the legend box,
	// default is transparent.
	Fill image.Image
}

func (ls *LegendStyle) Defaults() {
	ls.Text.Defaults()
	ls.Text.Padding.Dp(2)
	ls.Text.Size.Dp(16)
	ls.Position.Defaults()
	ls.ThumbnailWidth.Pt(20)
}

// LegendPosition specifies where to put the legend.
type LegendPosition struct { //types:add -setters
	// Top and Left specify the location of the legend.
	Top, Left bool

	// XOffs and YOffs are added to the legend position.
	XOffs, YOffs units.Value
}

func (lg *LegendPosition) Defaults() {
	lg.Top = true
	lg.Left = false
}

// A Legend gives a description of the meaning of different
// data elements of the plot. Each legend entry has a name
// and a thumbnail, where the thumbnail shows a small
// sample of the display style of the corresponding data.
type Legend struct {

	// Style has the legend styling parameters.
	Style LegendStyle

	// Entries are all of the LegendEntries described by this legend.
	Entries []LegendEntry
}

func (lg *Legend) Defaults() {
	lg.Style.Defaults()
}

// Add adds an entry to the legend with the given name.
// The entry's thumbnail is drawn as the composite of all of the
// thumbnails.
func (lg *Legend) Add(name string, thumbs ...Thumbnailer) {
	lg.Entries = append(lg.Entries, LegendEntry{Text: name, Thumbs: thumbs})
}

// LegendForPlotter returns the legend Text for given plotter,
// if it exists as a Thumbnailer in the legend entries.
// Otherwise returns empty string.
func (lg *Legend) LegendForPlotter(plt Plotter) string {
	for _, e := range lg.Entries {
		for _, tn := range e.Thumbs {
			if tp, isp := tn.(Plotter); isp && tp == plt {
				return e.Text
			}
		}
	}
	return ""
}

// A Thumbnailer wraps the Thumbnail method, which draws the small
// image in a legend representing the style of data.
type Thumbnailer interface {
	// Thumbnail draws an thumbnail representing the data's style
	// into the current plot drawing bounds.
	Thumbnail(pt *Plot)
}

// A LegendEntry represents a single line of a legend, it
// has a name and an icon.
type LegendEntry struct {

	// text is the text associated with this entry.
	Text string

	// thumbs is a slice of all of the thumbnails styles
	Thumbs []Thumbnailer
}
