// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agg

import (
	"math"
	"slices"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/stats/stats"
	"cogentcore.org/lab/table"
)

// ErrorBarMethods are the built-in methods for computing the error
// interval around a point estimate.
type ErrorBarMethods int32 //enums:enum

const (
	// NoBars computes no error interval: the interval bounds
	// collapse to the point estimate.
	NoBars ErrorBarMethods = iota

	// SE is the standard error of the mean of the data,
	// scaled by Level.
	SE

	// SD is the standard deviation of the data, scaled by Level.
	SD

	// PI is the percentile interval of the data,
	// covering Level percent.
	PI

	// CI is the bootstrap confidence interval of the estimate,
	// covering Level percent.
	CI
)

// ErrorBars specifies how the error interval around a point estimate
// is computed: a standard [ErrorBarMethods] method with a size
// parameter, or a custom function, which takes precedence when
// non-nil.
type ErrorBars struct {
	// Method is the standard interval method.
	Method ErrorBarMethods

	// Level is the size parameter of the method: the scale factor
	// on the standard error or deviation for SE and SD, and the
	// coverage percentage for PI and CI. When zero or negative, it
	// defaults to 1 for SE and SD, and 95 for PI and CI.
	Level float64

	// Func, if non-nil, computes the interval bounds directly from
	// the data values, instead of Method.
	Func func(vals []float64) (low, high float64)
}

// level returns the interval size parameter,
// applying the per-method default when unset.
func (eb *ErrorBars) level() float64 {
	if eb.Level > 0 {
		return eb.Level
	}
	switch eb.Method {
	case PI, CI:
		return 95
	}
	return 1
}

// percentileInterval returns the interval of the given percentage
// width, centered in the distribution of the values.
func percentileInterval(vals []float64, width float64) (low, high float64) {
	edge := (100 - width) / 2
	return stats.Quantile(vals, edge/100), stats.Quantile(vals, (100-edge)/100)
}

// Est is a [Stat] that reduces the dependent-axis column of grouped
// data to a point estimate with an error interval around it. The
// resulting table adds interval bound columns named after the
// dependent column: ymin and ymax for a y estimate, xmin and xmax
// for x. Bounds that cannot be computed, because the group has at
// most one defined value or error bars are off, are set to the
// point estimate.
type Est struct {
	// Stat is the standard statistic used for the point estimate.
	Stat stats.Stats

	// Func, if non-nil, is a custom vector-to-scalar function used
	// for the point estimate instead of Stat.
	Func stats.StatsFunc

	// Error specifies how the interval around the estimate
	// is computed.
	Error ErrorBars

	// NBoot is the number of bootstrap resamples drawn for the
	// CI method. It defaults to 1000 when zero or negative.
	NBoot int

	// Seed, when nonzero, seeds the bootstrap sampler, making CI
	// intervals deterministic across calls.
	Seed int64

	// GroupByOrient means the independent-axis coordinate column is
	// added as a grouping key, producing one estimate per
	// independent-axis value.
	GroupByOrient bool
}

// NewEst returns an [Est] with the default mean estimate and 95%
// bootstrap confidence interval, grouping by the orientation axis.
func NewEst() *Est {
	return &Est{Stat: stats.Mean, Error: ErrorBars{Method: CI, Level: 95}, NBoot: 1000, GroupByOrient: true}
}

// estimate computes the point estimate of the values.
func (es *Est) estimate(vals []float64) float64 {
	if es.Func != nil {
		return es.Func(vals)
	}
	return stats.Standard(es.Stat, vals)
}

// bootstrap returns point estimates over NBoot resamples of the
// values, drawn with replacement.
func (es *Est) bootstrap(vals []float64, rnd randx.Rand) []float64 {
	nboot := es.NBoot
	if nboot <= 0 {
		nboot = 1000
	}
	n := len(vals)
	boots := make([]float64, nboot)
	sample := make([]float64, n)
	for bi := range boots {
		for i := range sample {
			sample[i] = vals[rnd.Intn(n)]
		}
		boots[bi] = es.estimate(sample)
	}
	return boots
}

// interval computes the error bounds around the given point estimate
// of the values, returning NaN bounds when no interval applies.
func (es *Est) interval(vals []float64, est float64, rnd randx.Rand) (low, high float64) {
	eb := &es.Error
	switch {
	case eb.Func == nil && eb.Method == NoBars:
		return math.NaN(), math.NaN()
	case len(vals) <= 1:
		return math.NaN(), math.NaN()
	case eb.Func != nil:
		return eb.Func(vals)
	}
	switch eb.Method {
	case SE:
		half := eb.level() * stats.SemFunc(vals)
		return est - half, est + half
	case SD:
		half := eb.level() * stats.StdFunc(vals)
		return est - half, est + half
	case PI:
		return percentileInterval(vals, eb.level())
	case CI:
		return percentileInterval(es.bootstrap(vals, rnd), eb.level())
	}
	return math.NaN(), math.NaN()
}

func (es *Est) Aggregate(dt *table.Table, gb *GroupBy, orient math32.Dims, scales Scales) (*table.Table, error) {
	if es.GroupByOrient {
		gb = gb.withOrient(orient)
	}
	v := valueColumn(orient)
	var rnd randx.Rand
	if es.Seed != 0 {
		rnd = randx.NewSysRand(es.Seed)
	} else {
		rnd = randx.NewGlobalRand()
	}
	res, err := gb.Apply(dt, func(sub *table.Table) (*table.Table, error) {
		vals, err := stats.ColumnValues(sub, v)
		if err != nil {
			return nil, err
		}
		vals = slices.DeleteFunc(vals, math.IsNaN)
		est := es.estimate(vals)
		lo, hi := es.interval(vals, est, rnd)
		rt := table.New()
		vc := rt.AddFloat64Column(v)
		lc := rt.AddFloat64Column(v + "min")
		hc := rt.AddFloat64Column(v + "max")
		rt.SetNumRows(1)
		vc.Values[0] = est
		lc.Values[0] = lo
		hc.Values[0] = hi
		return rt, nil
	})
	if err != nil {
		return nil, err
	}
	res = dropNaN(res, v)
	vc := res.Column(v)
	lc := res.Column(v + "min")
	hc := res.Column(v + "max")
	for ri := range res.Columns.Rows {
		if math.IsNaN(lc.FloatRow(ri)) {
			lc.SetFloatRow(vc.FloatRow(ri), ri)
		}
		if math.IsNaN(hc.FloatRow(ri)) {
			hc.SetFloatRow(vc.FloatRow(ri), ri)
		}
	}
	return res, nil
}
