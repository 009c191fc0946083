// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"cogentcore.org/lab/table"
	"github.com/stretchr/testify/assert"
)

func TestFuncs64(t *testing.T) {
	vals := []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}

	results := []float64{11, 5.5, 5.5, 5.5, 0, 0, 1, 0, 1, 0.5, 0.11, math.Sqrt(0.11), math.Sqrt(0.11) / math.Sqrt(11), 3.85, math.Sqrt(3.85), 0.1, math.Sqrt(0.1), math.Sqrt(0.1) / math.Sqrt(11), 0.5, 0.25, 0.75}

	tol := 1.0e-8

	assert.Equal(t, results[Count], CountFunc(vals))
	assert.Equal(t, results[Sum], SumFunc(vals))
	assert.Equal(t, results[SumAbs], SumAbsFunc(vals))
	assert.Equal(t, results[Prod], ProdFunc(vals))
	assert.Equal(t, results[Min], MinFunc(vals))
	assert.Equal(t, results[Max], MaxFunc(vals))
	assert.Equal(t, results[MinAbs], MinAbsFunc(vals))
	assert.Equal(t, results[MaxAbs], MaxAbsFunc(vals))
	assert.Equal(t, results[Mean], MeanFunc(vals))
	assert.InDelta(t, results[Var], VarFunc(vals), tol)
	assert.InDelta(t, results[Std], StdFunc(vals), tol)
	assert.InDelta(t, results[Sem], SemFunc(vals), tol)
	assert.InDelta(t, results[SumSq], SumSqFunc(vals), tol)
	assert.InDelta(t, results[L2Norm], L2NormFunc(vals), tol)
	assert.InDelta(t, results[VarPop], VarPopFunc(vals), tol)
	assert.InDelta(t, results[StdPop], StdPopFunc(vals), tol)
	assert.InDelta(t, results[SemPop], SemPopFunc(vals), tol)
	assert.InDelta(t, results[Median], MedianFunc(vals), tol)
	assert.InDelta(t, results[Q1], Q1Func(vals), tol)
	assert.InDelta(t, results[Q3], Q3Func(vals), tol)

	for stat := Count; stat < StatsN; stat++ {
		assert.InDelta(t, results[stat], Standard(stat, vals), tol)
	}
}

func TestFuncsMissing(t *testing.T) {
	nan := math.NaN()
	vals := []float64{1, nan, 3}
	assert.Equal(t, 2.0, CountFunc(vals))
	assert.Equal(t, 4.0, SumFunc(vals))
	assert.Equal(t, 2.0, MeanFunc(vals))
	assert.Equal(t, 1.0, MinFunc(vals))
	assert.Equal(t, 3.0, MaxFunc(vals))
	assert.Equal(t, 2.0, VarFunc(vals))
	assert.Equal(t, 2.0, MedianFunc(vals))

	empty := []float64{nan, nan}
	assert.Equal(t, 0.0, CountFunc(empty))
	assert.Equal(t, 0.0, SumFunc(empty))
	assert.True(t, math.IsNaN(MeanFunc(empty)))
	assert.True(t, math.IsNaN(MinFunc(empty)))
	assert.True(t, math.IsNaN(MaxFunc(empty)))
	assert.True(t, math.IsNaN(MedianFunc(empty)))
	assert.True(t, math.IsNaN(VarPopFunc(empty)))

	// sample variance requires at least 2 values
	assert.True(t, math.IsNaN(VarFunc([]float64{1})))
	assert.True(t, math.IsNaN(SemFunc([]float64{1})))
	assert.Equal(t, 0.0, VarPopFunc([]float64{1}))
}

func TestQuantile(t *testing.T) {
	vals := []float64{3, 1, 2}
	assert.Equal(t, 1.0, Quantile(vals, 0))
	assert.Equal(t, 2.0, Quantile(vals, .5))
	assert.Equal(t, 3.0, Quantile(vals, 1))
	assert.InDelta(t, 1.5, Quantile(vals, .25), 1.0e-8)
	assert.Equal(t, []float64{3, 1, 2}, vals) // input not modified

	assert.Equal(t, 2.5, MedianFunc([]float64{1, 2, 3, 4}))
}

func TestCall(t *testing.T) {
	v, err := Call("Mean", []float64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = Call("Bogus", []float64{1})
	assert.Error(t, err)
}

func TestStatColumn(t *testing.T) {
	dt := table.New()
	dt.AddStringColumn("Name")
	dt.AddFloat64Column("Value")
	dt.SetNumRows(4)
	for i := range dt.NumRows() {
		dt.Column("Value").SetFloatRow(float64(i+1), i)
	}

	mean, err := StatColumn(dt, "Value", Mean)
	assert.NoError(t, err)
	assert.Equal(t, 2.5, mean)

	_, err = StatColumn(dt, "Missing", Mean)
	assert.Error(t, err)

	// stats go through the indexed view
	dt.Filter(func(dt *table.Table, row int) bool {
		return dt.Column("Value").FloatRow(row) >= 2
	})
	mean, err = StatColumn(dt, "Value", Mean)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, mean)
}

func TestDescribe(t *testing.T) {
	dt := table.New()
	dt.AddStringColumn("Name")
	dt.AddFloat64Column("Value")
	dt.SetNumRows(5)
	for i := range dt.NumRows() {
		dt.Column("Value").SetFloatRow(float64(i+1), i)
	}

	st := Describe(dt)
	assert.Equal(t, 2, st.NumColumns()) // Stat + Value
	assert.Equal(t, len(DescriptiveStats), st.NumRows())
	assert.Equal(t, "Count", st.StringValue("Stat", 0))
	assert.Equal(t, 5.0, st.Float("Value", 0))
	assert.Equal(t, "Mean", st.StringValue("Stat", 1))
	assert.Equal(t, 3.0, st.Float("Value", 1))
	assert.Equal(t, "Min", st.StringValue("Stat", 4))
	assert.Equal(t, 1.0, st.Float("Value", 4))
	assert.Equal(t, "Median", st.StringValue("Stat", 7))
	assert.Equal(t, 3.0, st.Float("Value", 7))
}
