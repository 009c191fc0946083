// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package agg provides aggregating statistics that reduce grouped data
// rows to summary values prior to plotting: named or custom statistics
// per column, optionally with an error interval around a point
// estimate. Tables entering these statistics use the normalized
// coordinate column names x and y, as the plot binding produces.
package agg

//go:generate core generate

import (
	"math"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/lab/stats/split"
	"cogentcore.org/lab/stats/stats"
	"cogentcore.org/lab/table"
)

// Scales holds the active axis ranges by axis dimension.
// They are part of the [Stat] contract for statistics that resolve
// data-dependent parameters against the current scales; the built-in
// statistics here accept but do not use them.
type Scales map[math32.Dims]*minmax.F64

// Stat is the interface for an aggregating statistic: it reduces the
// rows of the given table, using the given grouping, to one row per
// group, returning the reduced table. orient is the independent axis
// dimension: reduction is organized around the column paired with it
// (y when orient is [math32.X], x when orient is [math32.Y]).
type Stat interface {
	Aggregate(dt *table.Table, gb *GroupBy, orient math32.Dims, scales Scales) (*table.Table, error)
}

var (
	_ Stat = (*Agg)(nil)
	_ Stat = (*AggCustom)(nil)
	_ Stat = (*Agg2D)(nil)
	_ Stat = (*Est)(nil)
	_ Stat = (*Rolling)(nil)
)

// axisColumn returns the normalized coordinate column name
// for the given axis dimension.
func axisColumn(d math32.Dims) string {
	if d == math32.Y {
		return "y"
	}
	return "x"
}

// valueColumn returns the dependent (value) coordinate column name
// for the given orientation: the one paired with the independent axis.
func valueColumn(orient math32.Dims) string {
	if orient == math32.Y {
		return "x"
	}
	return "y"
}

// ColumnStat names a column to aggregate, and the statistic to
// reduce it with: a standard [stats.Stats], or a custom function
// which takes precedence when non-nil.
type ColumnStat struct {
	// Column is the name of the column to aggregate.
	Column string

	// Stat is the standard statistic to apply.
	Stat stats.Stats

	// Func, if non-nil, is a custom vector-to-scalar function
	// applied instead of Stat.
	Func stats.StatsFunc
}

// reduce applies the configured statistic to the values.
func (cs *ColumnStat) reduce(vals []float64) float64 {
	if cs.Func != nil {
		return cs.Func(vals)
	}
	return stats.Standard(cs.Stat, vals)
}

// GroupBy is the grouping helper passed to a [Stat]: the ordered
// grouping column names, with aggregation and apply-per-group
// operations over the resulting splits.
type GroupBy struct {
	// Columns are the ordered grouping column names.
	// Names not present in a given table are ignored for it.
	Columns []string
}

// NewGroupBy returns a GroupBy on the given grouping columns.
func NewGroupBy(columns ...string) *GroupBy {
	return &GroupBy{Columns: slices.Clone(columns)}
}

// existing returns the grouping columns present in the given table,
// preserving order.
func (gb *GroupBy) existing(dt *table.Table) []string {
	var cols []string
	for _, nm := range gb.Columns {
		if dt.Columns.IndexByKey(nm) >= 0 {
			cols = append(cols, nm)
		}
	}
	return cols
}

// withOrient returns a GroupBy with the orientation axis column
// prepended to the grouping columns, so each independent-axis value
// forms its own group.
func (gb *GroupBy) withOrient(orient math32.Dims) *GroupBy {
	return NewGroupBy(append([]string{axisColumn(orient)}, gb.Columns...)...)
}

// Agg reduces the table, through its current indexed view, to one row
// per group, applying each given column statistic. The resulting
// table has the grouping columns first, then one column per
// [ColumnStat] under its original name, in first-appearance group
// order. If none of the grouping columns are present, the whole table
// reduces to a single row.
func (gb *GroupBy) Agg(dt *table.Table, columns ...ColumnStat) (*table.Table, error) {
	spl := split.GroupBy(dt, gb.existing(dt)...)
	for _, cs := range columns {
		_, err := split.AggColumnFunc(spl, cs.Column, cs.Stat.String(), cs.reduce)
		if err != nil {
			return nil, err
		}
	}
	return spl.AggsToTable(table.ColumnNameOnly), nil
}

// Apply calls the given function on a materialized table for each
// group, and concatenates the results, prepending the grouping column
// values to each group's result rows. A nil result table skips the
// group. See [GroupBy.Agg] for grouping details.
func (gb *GroupBy) Apply(dt *table.Table, fun func(sub *table.Table) (*table.Table, error)) (*table.Table, error) {
	spl := split.GroupBy(dt, gb.existing(dt)...)
	var res *table.Table
	for si, sp := range spl.Splits {
		rt, err := fun(sp.New())
		if err != nil {
			return nil, err
		}
		if rt == nil {
			continue
		}
		for li := len(spl.Levels) - 1; li >= 0; li-- {
			lv := spl.Levels[li]
			if rt.Columns.IndexByKey(lv) >= 0 {
				continue
			}
			cl := table.NewString(rt.Columns.Rows)
			for ri := range cl.Values {
				cl.Values[ri] = spl.Values[si][li]
			}
			rt.InsertColumn(0, lv, cl)
		}
		if res == nil {
			res = rt
		} else {
			res.AppendRows(rt)
		}
	}
	if res == nil {
		res = table.New()
	}
	return res, nil
}

// dropNaN removes rows where any of the given columns is NaN,
// returning the table materialized in the remaining row order.
// Groups with an undefined reduction are not plottable, so they are
// silently dropped rather than reported.
func dropNaN(dt *table.Table, columns ...string) *table.Table {
	cls := make([]table.Column, 0, len(columns))
	for _, nm := range columns {
		if cl := dt.Column(nm); cl != nil {
			cls = append(cls, cl)
		}
	}
	if len(cls) == 0 {
		return dt
	}
	dt.Filter(func(dt *table.Table, row int) bool {
		for _, cl := range cls {
			if math.IsNaN(cl.FloatRow(row)) {
				return false
			}
		}
		return true
	})
	return dt.New()
}

// Agg is a [Stat] that reduces the dependent-axis column of grouped
// data to a single value per group, using a named standard statistic
// or a custom function.
type Agg struct {
	// Stat is the standard statistic used to reduce the data.
	Stat stats.Stats

	// Func, if non-nil, is a custom vector-to-scalar function
	// used instead of Stat.
	Func stats.StatsFunc

	// GroupByOrient means the independent-axis coordinate column is
	// added as a grouping key, producing one reduced row per
	// independent-axis value.
	GroupByOrient bool
}

// NewAgg returns an [Agg] with the default mean statistic,
// grouping by the orientation axis.
func NewAgg() *Agg {
	return &Agg{Stat: stats.Mean, GroupByOrient: true}
}

func (ag *Agg) Aggregate(dt *table.Table, gb *GroupBy, orient math32.Dims, scales Scales) (*table.Table, error) {
	if ag.GroupByOrient {
		gb = gb.withOrient(orient)
	}
	v := valueColumn(orient)
	res, err := gb.Agg(dt, ColumnStat{Column: v, Stat: ag.Stat, Func: ag.Func})
	if err != nil {
		return nil, err
	}
	return dropNaN(res, v), nil
}

// AggCustom is a [Stat] that reduces a caller-specified set of
// columns, each with its own statistic.
type AggCustom struct {
	// Columns are the columns to aggregate, each with its own
	// statistic. When empty, the single Stat / Func is applied to
	// both of the x and y coordinate columns.
	Columns []ColumnStat

	// Stat is the standard statistic applied to both coordinate
	// columns when Columns is empty.
	Stat stats.Stats

	// Func, if non-nil, is a custom function used instead of Stat.
	Func stats.StatsFunc

	// GroupByOrient means the independent-axis coordinate column is
	// added as a grouping key; it is then excluded from the
	// aggregation targets, to avoid being both a key and a target.
	GroupByOrient bool
}

// NewAggCustom returns an [AggCustom] with the default mean statistic,
// grouping by the orientation axis.
func NewAggCustom() *AggCustom {
	return &AggCustom{Stat: stats.Mean, GroupByOrient: true}
}

func (ag *AggCustom) Aggregate(dt *table.Table, gb *GroupBy, orient math32.Dims, scales Scales) (*table.Table, error) {
	cols := slices.Clone(ag.Columns)
	if len(cols) == 0 {
		cols = []ColumnStat{
			{Column: "x", Stat: ag.Stat, Func: ag.Func},
			{Column: "y", Stat: ag.Stat, Func: ag.Func},
		}
	}
	if ag.GroupByOrient {
		gb = gb.withOrient(orient)
		oc := axisColumn(orient)
		cols = slices.DeleteFunc(cols, func(cs ColumnStat) bool {
			return cs.Column == oc
		})
	}
	res, err := gb.Agg(dt, cols...)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for i, cs := range cols {
		names[i] = cs.Column
	}
	return dropNaN(res, names...), nil
}

// Agg2D is a [Stat] that reduces both coordinate columns of grouped
// data with the same statistic, for marks parametrized by both x and
// y. The orientation axis is never part of the grouping here, since
// both axes are reduction targets.
type Agg2D struct {
	// Stat is the standard statistic used to reduce the data.
	Stat stats.Stats

	// Func, if non-nil, is a custom function used instead of Stat.
	Func stats.StatsFunc
}

// NewAgg2D returns an [Agg2D] with the default mean statistic.
func NewAgg2D() *Agg2D {
	return &Agg2D{Stat: stats.Mean}
}

func (ag *Agg2D) Aggregate(dt *table.Table, gb *GroupBy, orient math32.Dims, scales Scales) (*table.Table, error) {
	res, err := gb.Agg(dt,
		ColumnStat{Column: "x", Stat: ag.Stat, Func: ag.Func},
		ColumnStat{Column: "y", Stat: ag.Stat, Func: ag.Func})
	if err != nil {
		return nil, err
	}
	return dropNaN(res, "x", "y"), nil
}
