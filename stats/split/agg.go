// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/lab/stats/stats"
	"cogentcore.org/lab/table"
)

// AggColumn performs aggregation using given standard statistic across
// all splits, and returns the [SplitAgg] container of the results,
// which are also stored in the Splits.
// Returns an error if the column name is not found.
func AggColumn(spl *Splits, column string, stat stats.Stats) (*SplitAgg, error) {
	return AggColumnFunc(spl, column, stat.String(), func(vals []float64) float64 {
		return stats.Standard(stat, vals)
	})
}

// AggColumnFunc performs aggregation using given named custom function
// across all splits, and returns the [SplitAgg] container of the
// results, which are also stored in the Splits.
// Returns an error if the column name is not found.
func AggColumnFunc(spl *Splits, column, name string, fun stats.StatsFunc) (*SplitAgg, error) {
	dt := spl.Table()
	if dt == nil {
		return nil, fmt.Errorf("split.AggColumnFunc: no splits to aggregate over")
	}
	if _, err := dt.ColumnIndex(column); err != nil {
		return nil, err
	}
	ag := &SplitAgg{Name: name, Column: column}
	for _, sp := range spl.Splits {
		vals, err := stats.ColumnValues(sp, column)
		if err != nil {
			return nil, err
		}
		ag.Aggs = append(ag.Aggs, fun(vals))
	}
	spl.Aggs = append(spl.Aggs, ag)
	return ag, nil
}

// AggAllNumericColumns performs aggregation using given standard
// statistic across all splits, for all numeric columns in the table.
func AggAllNumericColumns(spl *Splits, stat stats.Stats) {
	dt := spl.Table()
	if dt == nil {
		return
	}
	for i, cl := range dt.Columns.Values {
		if cl.IsString() {
			continue
		}
		_, err := AggColumn(spl, dt.ColumnName(i), stat)
		errors.Log(err)
	}
}

// Desc performs aggregation using all of the standard descriptive
// statistics ([stats.DescriptiveStats]) across all splits,
// for the given column.
// Returns an error if the column name is not found.
func Desc(spl *Splits, column string) error {
	dt := spl.Table()
	if dt == nil {
		return fmt.Errorf("split.Desc: no splits to aggregate over")
	}
	if _, err := dt.ColumnIndex(column); err != nil {
		return err
	}
	for _, st := range stats.DescriptiveStats {
		AggColumn(spl, column, st)
	}
	return nil
}
