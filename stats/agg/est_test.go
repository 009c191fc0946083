// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agg

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/lab/stats/stats"
	"github.com/stretchr/testify/assert"
)

func TestEstSD(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 0, 0}, []float64{2, 4, 6, 8})
	es := NewEst()
	es.Error = ErrorBars{Method: SD}
	res, err := es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.NumRows())
	assert.Equal(t, []int{0, 1, 2, 3}, res.ColumnIndexList("x", "y", "ymin", "ymax"))

	std := math.Sqrt(20.0 / 3.0)
	assert.Equal(t, 5.0, res.Float("y", 0))
	assert.InDelta(t, 5-std, res.Float("ymin", 0), 1e-8)
	assert.InDelta(t, 5+std, res.Float("ymax", 0), 1e-8)

	es.Error.Level = 2
	res, err = es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.InDelta(t, 5-2*std, res.Float("ymin", 0), 1e-8)
	assert.InDelta(t, 5+2*std, res.Float("ymax", 0), 1e-8)
}

func TestEstSE(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 0, 0}, []float64{2, 4, 6, 8})
	es := NewEst()
	es.Error = ErrorBars{Method: SE}
	res, err := es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)

	sem := math.Sqrt(20.0/3.0) / 2
	assert.InDelta(t, 5-sem, res.Float("ymin", 0), 1e-8)
	assert.InDelta(t, 5+sem, res.Float("ymax", 0), 1e-8)
}

func TestEstPI(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 0, 0}, []float64{2, 4, 6, 8})
	es := NewEst()
	es.Error = ErrorBars{Method: PI, Level: 50}
	res, err := es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.InDelta(t, 3.5, res.Float("ymin", 0), 1e-8)
	assert.InDelta(t, 6.5, res.Float("ymax", 0), 1e-8)

	es.Error.Level = 0 // defaults to 95
	res, err = es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.InDelta(t, 2.15, res.Float("ymin", 0), 1e-8)
	assert.InDelta(t, 7.85, res.Float("ymax", 0), 1e-8)
}

func TestEstSingleton(t *testing.T) {
	dt := NewXYTable([]float64{0, 1, 1}, []float64{5, 1, 3})
	es := NewEst()
	es.Error = ErrorBars{Method: SD}
	res, err := es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.NumRows())

	// single-value group: bounds collapse to the point estimate
	assert.Equal(t, 5.0, res.Float("y", 0))
	assert.Equal(t, 5.0, res.Float("ymin", 0))
	assert.Equal(t, 5.0, res.Float("ymax", 0))

	assert.Equal(t, 2.0, res.Float("y", 1))
	assert.InDelta(t, 2-math.Sqrt2, res.Float("ymin", 1), 1e-8)
	assert.InDelta(t, 2+math.Sqrt2, res.Float("ymax", 1), 1e-8)
}

func TestEstNoBars(t *testing.T) {
	dt := NewXYTable([]float64{0, 0}, []float64{2, 4})
	es := NewEst()
	es.Error = ErrorBars{Method: NoBars}
	res, err := es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, res.Float("y", 0))
	assert.Equal(t, 3.0, res.Float("ymin", 0))
	assert.Equal(t, 3.0, res.Float("ymax", 0))
}

func TestEstFunc(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 0, 0}, []float64{2, 4, 6, 8})
	es := NewEst()
	es.Error = ErrorBars{Func: func(vals []float64) (low, high float64) {
		return stats.MinFunc(vals), stats.MaxFunc(vals)
	}}
	res, err := es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, res.Float("ymin", 0))
	assert.Equal(t, 8.0, res.Float("ymax", 0))
}

func TestEstCustomEstimator(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 0, 0}, []float64{2, 4, 6, 8})
	es := NewEst()
	es.Func = stats.MaxFunc
	es.Error = ErrorBars{Method: NoBars}
	res, err := es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 8.0, res.Float("y", 0))
}

func TestEstSeed(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 0, 0, 1, 1, 1, 1}, []float64{2, 4, 6, 8, 1, 3, 5, 7})
	es := NewEst()
	es.NBoot = 50
	es.Seed = 42
	res1, err := es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	res2, err := es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)

	assert.Equal(t, 2, res1.NumRows())
	for i := range res1.NumRows() {
		lo, hi := res1.Float("ymin", i), res1.Float("ymax", i)
		assert.LessOrEqual(t, lo, hi)
		assert.Equal(t, lo, res2.Float("ymin", i))
		assert.Equal(t, hi, res2.Float("ymax", i))
	}
	assert.Equal(t, 5.0, res1.Float("y", 0))
	assert.GreaterOrEqual(t, res1.Float("ymin", 0), 2.0) // bootstrap means stay in data range
	assert.LessOrEqual(t, res1.Float("ymax", 0), 8.0)
	assert.Equal(t, 4.0, res1.Float("y", 1))
}

func TestEstNaN(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 1}, []float64{math.NaN(), math.NaN(), 7})
	es := NewEst()
	es.Error = ErrorBars{Method: SD}
	res, err := es.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.NumRows()) // all-missing group is dropped
	assert.Equal(t, 1.0, res.Float("x", 0))
	assert.Equal(t, 7.0, res.Float("y", 0))
	assert.Equal(t, 7.0, res.Float("ymin", 0))
	assert.Equal(t, 7.0, res.Float("ymax", 0))
}

func TestRolling(t *testing.T) {
	dt := NewXYTable([]float64{0, 1}, []float64{1, 2})
	rl := NewRolling(3)
	res, err := rl.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.Error(t, err)
	assert.Nil(t, res)
}
