// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package split provides grouping of table rows by the unique values
// of one or more columns, with statistics aggregated per group, as the
// basis for pivot-table style summaries of data.
package split

import (
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/lab/table"
)

// SplitAgg contains the results of a statistic aggregated
// across the splits.
type SplitAgg struct {
	// Name of the statistic that was applied, e.g., Mean.
	Name string

	// Column is the name of the column that was aggregated.
	Column string

	// Aggs are the aggregation results, one per split.
	Aggs []float64
}

// Splits is a set of indexed views into a common source table,
// one per group, formed by [GroupBy] on the unique combinations
// of values of the grouping columns.
type Splits struct {
	// Levels are the column names used to generate the splits.
	Levels []string

	// Values are the level column values for each split,
	// outer by split, inner by level.
	Values [][]string

	// Splits are the indexed views onto the source table,
	// one per split.
	Splits []*table.Table

	// Aggs are the aggregation results added by the Agg functions,
	// in the order added.
	Aggs []*SplitAgg
}

// Len returns the number of splits.
func (spl *Splits) Len() int { return len(spl.Splits) }

// Table returns the source table for these splits (as one of the
// split views; they all share the same underlying columns).
// Returns nil if there are no splits.
func (spl *Splits) Table() *table.Table {
	if len(spl.Splits) == 0 {
		return nil
	}
	return spl.Splits[0]
}

// GroupBy returns a new Splits with one split per unique combination
// of values of the given columns in the table, through its current
// indexed view, in order of first appearance.
// If no columns are given, a single split with all rows is returned.
// A table with no rows produces a single empty split, so that
// aggregation results are still well-defined.
// Column names that are not found are logged and skipped.
func GroupBy(dt *table.Table, columns ...string) *Splits {
	spl := &Splits{}
	cls := make([]table.Column, 0, len(columns))
	for _, nm := range columns {
		cl, err := dt.ColumnTry(nm)
		if errors.Log(err) != nil {
			continue
		}
		spl.Levels = append(spl.Levels, nm)
		cls = append(cls, cl)
	}
	if len(cls) == 0 {
		vw := table.NewView(dt)
		vw.Indexes = slices.Clone(dt.Indexes)
		spl.Splits = append(spl.Splits, vw)
		spl.Values = append(spl.Values, []string{})
		return spl
	}
	nr := dt.NumRows()
	if nr == 0 {
		vw := table.NewView(dt)
		vw.Indexes = make([]int, 0)
		spl.Splits = append(spl.Splits, vw)
		spl.Values = append(spl.Values, make([]string, len(cls)))
		return spl
	}
	smap := make(map[string]int)
	var key strings.Builder
	for i := range nr {
		srw := dt.RowIndex(i)
		key.Reset()
		for li, cl := range cls {
			if li > 0 {
				key.WriteRune('|')
			}
			key.WriteString(cl.StringRow(srw))
		}
		ks := key.String()
		si, ok := smap[ks]
		if !ok {
			si = len(spl.Splits)
			smap[ks] = si
			vw := table.NewView(dt)
			vw.Indexes = make([]int, 0)
			spl.Splits = append(spl.Splits, vw)
			vals := make([]string, len(cls))
			for li, cl := range cls {
				vals[li] = cl.StringRow(srw)
			}
			spl.Values = append(spl.Values, vals)
		}
		sp := spl.Splits[si]
		sp.Indexes = append(sp.Indexes, srw)
	}
	return spl
}

// AggsToTable returns a table of the aggregation results.
// The table has one string column per grouping level, and one float64
// column per aggregation, with one row per split.
// If colNameOnly ([table.ColumnNameOnly]), the aggregation columns
// have just the original column name, which is only usable when each
// column has a single statistic; otherwise ([table.AddAggName]) the
// statistic name is appended, e.g., Value:Mean.
func (spl *Splits) AggsToTable(colNameOnly bool) *table.Table {
	st := table.New()
	for _, lv := range spl.Levels {
		st.AddStringColumn(lv)
	}
	for _, ag := range spl.Aggs {
		nm := ag.Column
		if !colNameOnly {
			nm += ":" + ag.Name
		}
		st.AddFloat64Column(nm)
	}
	st.SetNumRows(spl.Len())
	for si := range spl.Splits {
		for li, lv := range spl.Levels {
			st.Column(lv).SetStringRow(spl.Values[si][li], si)
		}
		for _, ag := range spl.Aggs {
			nm := ag.Column
			if !colNameOnly {
				nm += ":" + ag.Name
			}
			st.Column(nm).SetFloatRow(ag.Aggs[si], si)
		}
	}
	return st
}
