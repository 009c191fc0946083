// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides standard statistic functions operating on
// a vector of float64 values, skipping NaN values as missing data,
// and helpers for computing statistics on table columns.
package stats

//go:generate core generate

import (
	"fmt"
	"math"

	"cogentcore.org/lab/table"
)

// Funcs is a registry of named stats functions,
// which can then be called by standard enum or
// string name for custom functions.
var Funcs map[string]StatsFunc

func init() {
	Funcs = make(map[string]StatsFunc)
	Funcs[Count.String()] = CountFunc
	Funcs[Sum.String()] = SumFunc
	Funcs[SumAbs.String()] = SumAbsFunc
	Funcs[L1Norm.String()] = SumAbsFunc
	Funcs[Prod.String()] = ProdFunc
	Funcs[Min.String()] = MinFunc
	Funcs[Max.String()] = MaxFunc
	Funcs[MinAbs.String()] = MinAbsFunc
	Funcs[MaxAbs.String()] = MaxAbsFunc
	Funcs[Mean.String()] = MeanFunc
	Funcs[Var.String()] = VarFunc
	Funcs[Std.String()] = StdFunc
	Funcs[Sem.String()] = SemFunc
	Funcs[SumSq.String()] = SumSqFunc
	Funcs[L2Norm.String()] = L2NormFunc
	Funcs[VarPop.String()] = VarPopFunc
	Funcs[StdPop.String()] = StdPopFunc
	Funcs[SemPop.String()] = SemPopFunc
	Funcs[Median.String()] = MedianFunc
	Funcs[Q1.String()] = Q1Func
	Funcs[Q3.String()] = Q3Func
}

// Standard calls a standard Stats enum function on given values.
func Standard(stat Stats, vals []float64) float64 {
	return Funcs[stat.String()](vals)
}

// Call calls a registered stats function on given values.
// Returns an error if name not found.
func Call(name string, vals []float64) (float64, error) {
	f, ok := Funcs[name]
	if !ok {
		return math.NaN(), fmt.Errorf("stats.Call: function %q not registered", name)
	}
	return f(vals), nil
}

// StatColumn returns the statistic according to given Stats type,
// applied to all non-NaN elements in given column of the table,
// through its current indexed view.
// Returns an error if the column name is not found.
func StatColumn(dt *table.Table, column string, stat Stats) (float64, error) {
	vals, err := ColumnValues(dt, column)
	if err != nil {
		return math.NaN(), err
	}
	return Standard(stat, vals), nil
}

// ColumnValues returns the float64 values of the given table column,
// through the table's current indexed view.
// Returns an error if the column name is not found.
func ColumnValues(dt *table.Table, column string) ([]float64, error) {
	cl, err := dt.ColumnTry(column)
	if err != nil {
		return nil, err
	}
	n := dt.NumRows()
	vals := make([]float64, n)
	for i := range n {
		vals[i] = cl.FloatRow(dt.RowIndex(i))
	}
	return vals, nil
}

// Stats is a list of different standard aggregation functions, which can be used
// to choose an aggregation function
type Stats int32 //enums:enum

const (
	// count of number of elements.
	Count Stats = iota

	// sum of elements.
	Sum

	// sum of absolute-value-of elements (= L1Norm).
	SumAbs

	// L1 Norm: sum of absolute values (= SumAbs).
	L1Norm

	// product of elements.
	Prod

	// minimum value.
	Min

	// maximum value.
	Max

	// minimum of absolute values.
	MinAbs

	// maximum of absolute values.
	MaxAbs

	// mean value = sum / count.
	Mean

	// sample variance (squared deviations from mean, divided by n-1).
	Var

	// sample standard deviation (sqrt of Var).
	Std

	// sample standard error of the mean (Std divided by sqrt(n)).
	Sem

	// sum of squared values.
	SumSq

	// L2 Norm: square-root of sum-of-squares.
	L2Norm

	// population variance (squared diffs from mean, divided by n).
	VarPop

	// population standard deviation (sqrt of VarPop).
	StdPop

	// population standard error of the mean (StdPop divided by sqrt(n)).
	SemPop

	// middle value in sorted ordering.
	Median

	// Q1 first quartile = 25%ile value = .25 quantile value.
	Q1

	// Q3 third quartile = 75%ile value = .75 quantile value.
	Q3
)
