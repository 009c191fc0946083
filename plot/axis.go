// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"strconv"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
)

// AxisScales are the scaling options for how values are distributed
// along an axis: Linear, Log, etc.
type AxisScales int32 //enums:enum

const (
	// LinearScale is a linear axis scale.
	LinearScale AxisScales = iota

	// LogScale is a Logarithmic axis scale.
	LogScale

	// InvertedScale is an inverted linear axis scale.
	InvertedScale

	// InvertedLogScale is an inverted log axis scale.
	InvertedLogScale
)

// AxisStyle has style properties for the axis.
type AxisStyle struct { //types:add -setters

	// On determines whether the axis is rendered.
	On DefaultOffOn

	// Text has the text style parameters for the text label.
	Text TextStyle

	// Line has styling properties for the axis line.
	Line LineStyle

	// Padding between the axis line and the data. Having
	// non-zero padding ensures that the data is never drawn
	// on the axis, thus making it easier to see.
	Padding units.Value

	// NTicks is the desired number of ticks (actual likely will be different).
	NTicks int

	// Scale specifies how values are scaled along the axis:
	// Linear, Log, Inverted
	Scale AxisScales

	// TickText has the text style for rendering tick labels,
	// and is shared for actual rendering.
	TickText TextStyle

	// TickLine has line style for drawing tick lines.
	TickLine LineStyle

	// TickLength is the length of tick lines.
	TickLength units.Value
}

func (ax *AxisStyle) Defaults() {
	ax.Line.Defaults()
	ax.Text.Defaults()
	ax.Text.Size.Dp(20)
	ax.Padding.Pt(5)
	ax.NTicks = 5
	ax.TickText.Defaults()
	ax.TickText.Size.Dp(16)
	ax.TickText.Padding.Dp(2)
	ax.TickLine.Defaults()
	ax.TickLength.Pt(8)
}

// Axis represents either a horizontal or vertical
// axis of a plot.
type Axis struct {
	// Range has the Min, Max range of values for the axis (in raw data units).
	Range minmax.F64

	// specifies which axis this is: X, Y or Z.
	Axis math32.Dims

	// Label for the axis.
	Label Text

	// Style has the style parameters for the Axis.
	Style AxisStyle

	// TickText is used for rendering the tick text labels.
	TickText Text

	// Ticker generates the tick marks. Any tick marks
	// returned by the Marks method that are not in range of the
	// axis are not drawn.
	Ticker Ticker

	// ticks are the generated tick marks, set during drawing.
	ticks []Tick

	// nominal is set by [Plot.NominalX] and [Plot.NominalY],
	// keeping axis and tick lines off through styling updates.
	nominal bool
}

// Defaults sets default values for the axis, for given dimension.
func (ax *Axis) Defaults(dim math32.Dims) {
	ax.Style.Defaults()
	ax.Axis = dim
	if dim == math32.Y {
		ax.Label.Style.Rotation = -90
		ax.Style.TickText.Align = styles.End
	}
	ax.Ticker = DefaultTicks{}
}

// applyStyle applies the given plot-level axis style
// to this axis and its label and tick text elements.
func (ax *Axis) applyStyle(as *AxisStyle) {
	ax.Style = *as
	ax.Label.Style = as.Text
	ax.TickText.Style = as.TickText
	if ax.nominal {
		ax.Style.TickLine.Width.Pt(0)
		ax.Style.TickLength.Pt(0)
		ax.Style.Line.Width.Pt(0)
	}
}

// SanitizeRange ensures that the range of the axis makes sense.
func (ax *Axis) SanitizeRange() {
	if math.IsInf(ax.Range.Min, 0) {
		ax.Range.Min = 0
	}
	if math.IsInf(ax.Range.Max, 0) {
		ax.Range.Max = 0
	}
	if ax.Range.Min > ax.Range.Max {
		ax.Range.Min, ax.Range.Max = ax.Range.Max, ax.Range.Min
	}
	if ax.Range.Min == ax.Range.Max {
		ax.Range.Max++
	}
	if ax.Style.Scale == LogScale || ax.Style.Scale == InvertedLogScale {
		if ax.Range.Min <= 0 {
			ax.Range.Min = 0.1
		}
		if ax.Range.Max <= ax.Range.Min {
			ax.Range.Max = ax.Range.Min + 1
		}
	}
}

// Norm returns the normalized position along the axis of given
// raw data value, as a proportion in the range 0..1,
// applying the axis scaling function.
func (ax *Axis) Norm(v float64) float64 {
	switch ax.Style.Scale {
	case LinearScale:
		return ax.Range.NormValue(v)
	case LogScale:
		return logNorm(v, ax.Range)
	case InvertedScale:
		return 1 - ax.Range.NormValue(v)
	case InvertedLogScale:
		return 1 - logNorm(v, ax.Range)
	}
	return 0
}

// logNorm returns the normalized log-scale position of v in given range,
// clipped to the 0..1 bounds.
func logNorm(v float64, rng minmax.F64) float64 {
	if v <= rng.Min {
		return 0
	}
	if v >= rng.Max {
		return 1
	}
	return (math.Log(v) - math.Log(rng.Min)) / (math.Log(rng.Max) - math.Log(rng.Min))
}

// drawTicks returns true if the tick marks should be drawn.
func (ax *Axis) drawTicks() bool {
	return ax.Style.TickLine.Width.Value > 0 && ax.Style.TickLength.Value > 0
}

//////// Ticker

// A Tick is a single tick mark on an axis.
type Tick struct {
	// Value is the data value marked by this Tick.
	Value float64

	// Label is the text to display at the tick mark.
	// If Label is an empty string then this Tick is a minor tick mark.
	Label string
}

// IsMinor returns true if this is a minor tick mark.
func (tk *Tick) IsMinor() bool {
	return tk.Label == ""
}

// Ticker creates Ticks in a specified range.
type Ticker interface {
	// Ticks returns Ticks in a specified range, with desired number of ticks,
	// which can be ignored depending on the ticker type.
	Ticks(min, max float64, nticks int) []Tick
}

// DefaultTicks is suitable for the Ticker field of an Axis,
// it returns a reasonable default set of tick marks.
type DefaultTicks struct{}

var _ Ticker = DefaultTicks{}

// Ticks returns Ticks in the specified range.
func (DefaultTicks) Ticks(min, max float64, nticks int) []Tick {
	if max <= min {
		panic("illegal range")
	}
	labels, step, q, mag := talbotLinHanrahan(float32(min), float32(max), nticks, withinData, nil, nil, nil)
	majorDelta := step * math32.Pow(10, float32(mag))
	if q == 0 {
		// Simple fall back was chosen, so
		// majorDelta is the label distance.
		majorDelta = labels[1] - labels[0]
	}

	// Choose a reasonable, but ad
	// hoc formatting for labels.
	fc := byte('f')
	var off int
	if mag < -1 || 6 < mag {
		off = 1
		fc = 'g'
	}
	if math32.Trunc(q) != q {
		off += 2
	}
	prec := min(max(off, -mag), maxFloatPrec)
	ticks := make([]Tick, 0, len(labels)*4)
	for _, v := range labels {
		ticks = append(ticks, Tick{Value: float64(v), Label: strconv.FormatFloat(float64(v), fc, prec, 32)})
	}

	var minorDelta float32
	// See talbotLinHanrahan for the values used here.
	switch step {
	case 1, 2.5:
		minorDelta = majorDelta / 5
	case 2, 3, 4, 5:
		minorDelta = majorDelta / step
	default:
		if majorDelta/2 < dlamchP {
			return ticks
		}
		minorDelta = majorDelta / 2
	}

	// Find the first minor tick not greater
	// than the lowest data value.
	var i float32
	for labels[0]+(i-1)*minorDelta > float32(min) {
		i--
	}
	// Add ticks at minorDelta intervals when
	// they are not within minorDelta/2 of a
	// labelled tick.
	for {
		val := labels[0] + i*minorDelta
		if float64(val) > max {
			break
		}
		found := false
		for _, t := range ticks {
			if math32.Abs(float32(t.Value)-val) < minorDelta/2 {
				found = true
			}
		}
		if !found {
			ticks = append(ticks, Tick{Value: float64(val)})
		}
		i++
	}
	return ticks
}

// maxFloatPrec is the maximum float precision for tick labels.
const maxFloatPrec = 15

// LogTicks is suitable for the Ticker field of an Axis,
// it returns tick marks suitable for a log-scale axis.
type LogTicks struct {
	// Prec specifies the precision of tick rendering
	// according to the documentation for strconv.FormatFloat.
	Prec int
}

var _ Ticker = LogTicks{}

// Ticks returns Ticks in a specified range.
func (t LogTicks) Ticks(min, max float64, nticks int) []Tick {
	if min <= 0 || max <= min {
		panic("invalid range for log scale")
	}
	val := math.Pow10(int(math.Log10(min)))
	lastVal := math.Pow10(int(math.Ceil(math.Log10(max))))
	var ticks []Tick
	for val < lastVal {
		for i := 1; i < 10; i++ {
			if i == 1 {
				ticks = append(ticks, Tick{Value: val, Label: formatFloatTick(val, t.Prec)})
			}
			ticks = append(ticks, Tick{Value: val * float64(i)})
		}
		val *= 10
	}
	ticks = append(ticks, Tick{Value: val, Label: formatFloatTick(val, t.Prec)})
	return ticks
}

// ConstantTicks is suitable for the Ticker field of an Axis.
// This function returns the given set of ticks.
type ConstantTicks []Tick

var _ Ticker = ConstantTicks{}

// Ticks returns Ticks in a specified range.
func (ts ConstantTicks) Ticks(float64, float64, int) []Tick {
	return ts
}

// formatFloatTick returns a g-formated string representation of v
// to the specified precision.
func formatFloatTick(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}
