// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/lab/table"
)

// DescriptiveStats are the standard descriptive stats used in the
// [Describe] function.
var DescriptiveStats = []Stats{Count, Mean, Std, Sem, Min, Max, Q1, Median, Q3}

// Describe returns a table of standard descriptive statistics for
// given columns in the table (all numeric columns if none specified),
// through its current indexed view.
// This is an easy way to provide a comprehensive description of data.
// The resulting table has a Stat string column naming each statistic,
// and one float64 column per source column.
// The [DescriptiveStats] list is: [Count], [Mean], [Std], [Sem],
// [Min], [Max], [Q1], [Median], [Q3]
func Describe(dt *table.Table, columns ...string) *table.Table {
	if len(columns) == 0 {
		for i, cl := range dt.Columns.Values {
			if !cl.IsString() {
				columns = append(columns, dt.ColumnName(i))
			}
		}
	}
	st := table.New()
	st.AddStringColumn("Stat")
	for _, nm := range columns {
		st.AddFloat64Column(nm)
	}
	st.SetNumRows(len(DescriptiveStats))
	for si, stat := range DescriptiveStats {
		st.Column("Stat").SetStringRow(stat.String(), si)
	}
	for _, nm := range columns {
		vals, err := ColumnValues(dt, nm)
		if errors.Log(err) != nil {
			continue
		}
		for si, stat := range DescriptiveStats {
			st.Column(nm).SetFloatRow(Standard(stat, vals), si)
		}
	}
	return st
}
