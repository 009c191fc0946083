// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agg

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/lab/stats/stats"
	"cogentcore.org/lab/table"
	"github.com/stretchr/testify/assert"
)

// NewXYTable returns a table with x and y columns holding
// the given values.
func NewXYTable(x, y []float64) *table.Table {
	dt := table.New().SetNumRows(len(x))
	xc := dt.AddFloat64Column("x")
	yc := dt.AddFloat64Column("y")
	copy(xc.Values, x)
	copy(yc.Values, y)
	return dt
}

func TestAggMean(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 1, 1, 2, 2}, []float64{1, 3, 2, 4, 3, 5})
	ag := NewAgg()
	res, err := ag.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, res.NumRows())
	assert.Equal(t, []int{0, 1}, res.ColumnIndexList("x", "y"))
	for i, y := range []float64{2, 3, 4} {
		assert.Equal(t, float64(i), res.Float("x", i))
		assert.Equal(t, y, res.Float("y", i))
	}
}

func TestAggGroups(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 0, 0, 1, 1, 1, 1}, []float64{1, 3, 5, 7, 2, 4, 6, 8})
	gc := dt.AddStringColumn("group")
	copy(gc.Values, []string{"a", "a", "b", "b", "a", "a", "b", "b"})

	ag := NewAgg()
	res, err := ag.Aggregate(dt, NewGroupBy("group"), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 4, res.NumRows())
	assert.Equal(t, []int{0, 1, 2}, res.ColumnIndexList("x", "group", "y"))
	groups := []string{"a", "b", "a", "b"}
	for i, y := range []float64{2, 6, 3, 7} {
		assert.Equal(t, groups[i], res.StringValue("group", i))
		assert.Equal(t, y, res.Float("y", i))
	}
}

func TestAggStatFunc(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 1, 1}, []float64{1, 3, 2, 8})
	ag := NewAgg()
	ag.Stat = stats.Max
	res, err := ag.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, res.Float("y", 0))
	assert.Equal(t, 8.0, res.Float("y", 1))

	ag.Func = func(vals []float64) float64 { // takes precedence over Stat
		return stats.MaxFunc(vals) - stats.MinFunc(vals)
	}
	res, err = ag.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, res.Float("y", 0))
	assert.Equal(t, 6.0, res.Float("y", 1))
}

func TestAggOrientY(t *testing.T) {
	dt := NewXYTable([]float64{1, 3, 2, 4}, []float64{0, 0, 1, 1})
	ag := NewAgg()
	res, err := ag.Aggregate(dt, NewGroupBy(), math32.Y, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.ColumnIndexList("y", "x"))
	assert.Equal(t, 2.0, res.Float("x", 0))
	assert.Equal(t, 3.0, res.Float("x", 1))
}

func TestAggNaN(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 1}, []float64{1, math.NaN(), math.NaN()})
	ag := NewAgg()
	res, err := ag.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.NumRows()) // all-missing group is dropped
	assert.Equal(t, 0.0, res.Float("x", 0))
	assert.Equal(t, 1.0, res.Float("y", 0))
}

func TestAggMissingColumn(t *testing.T) {
	dt := NewXYTable([]float64{0, 1}, []float64{1, 2})
	gb := NewGroupBy()
	_, err := gb.Agg(dt, ColumnStat{Column: "z", Stat: stats.Mean})
	assert.Error(t, err)
}

func TestAggCustom(t *testing.T) {
	dt := table.New().SetNumRows(3)
	ic := dt.AddFloat64Column("intercept")
	sc := dt.AddFloat64Column("slope")
	copy(ic.Values, []float64{1, 2, 3})
	copy(sc.Values, []float64{4, 5, 6})

	ag := NewAggCustom()
	ag.Columns = []ColumnStat{{Column: "intercept", Stat: stats.Min}, {Column: "slope", Stat: stats.Mean}}
	ag.GroupByOrient = false
	res, err := ag.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.NumRows())
	assert.Equal(t, 1.0, res.Float("intercept", 0))
	assert.Equal(t, 5.0, res.Float("slope", 0))
}

func TestAggCustomDefault(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 1}, []float64{1, 3, 5})

	ag := NewAggCustom() // both coordinates, x popped as the grouping key
	res, err := ag.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.NumRows())
	assert.Equal(t, 2.0, res.Float("y", 0))
	assert.Equal(t, 5.0, res.Float("y", 1))

	ag.GroupByOrient = false
	res, err = ag.Aggregate(dt, NewGroupBy(), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.NumRows())
	assert.InDelta(t, 1.0/3.0, res.Float("x", 0), 1e-8)
	assert.Equal(t, 3.0, res.Float("y", 0))
}

func TestAgg2D(t *testing.T) {
	dt := NewXYTable([]float64{0, 2, 4}, []float64{1, 3, 5})
	gc := dt.AddStringColumn("group")
	copy(gc.Values, []string{"a", "a", "b"})

	ag := NewAgg2D()
	res, err := ag.Aggregate(dt, NewGroupBy("group"), math32.X, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.NumRows())
	assert.Equal(t, []int{0, 1, 2}, res.ColumnIndexList("group", "x", "y"))
	assert.Equal(t, 1.0, res.Float("x", 0))
	assert.Equal(t, 2.0, res.Float("y", 0))
	assert.Equal(t, 4.0, res.Float("x", 1))
	assert.Equal(t, 5.0, res.Float("y", 1))
}

func TestGroupByApply(t *testing.T) {
	dt := NewXYTable([]float64{0, 0, 1}, []float64{1, 3, 5})
	gb := NewGroupBy("x")
	res, err := gb.Apply(dt, func(sub *table.Table) (*table.Table, error) {
		rt := table.New()
		nc := rt.AddFloat64Column("n")
		rt.SetNumRows(1)
		nc.Values[0] = float64(sub.NumRows())
		return rt, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.NumRows())
	assert.Equal(t, []int{0, 1}, res.ColumnIndexList("x", "n"))
	assert.Equal(t, 2.0, res.Float("n", 0))
	assert.Equal(t, 1.0, res.Float("n", 1))
}
