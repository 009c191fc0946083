// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a data table with columns of float64 or string
// values, aligned by a common outermost row dimension, with optional
// indexed views for sorting, filtering and grouping without modifying
// the underlying data.
package table

//go:generate core generate

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/metadata"
)

// Table is a table of data, with columns of float64 or string values
// aligned by a common outermost row dimension.
// Use [Table.Column] (by name) to obtain the column data, and the
// [Table.Float], [Table.StringValue] etc accessors to read and write
// values through the indexed view.
type Table struct { //types:add
	// Columns has the list of column data for this table.
	// Different tables can provide different indexed views onto
	// the same Columns.
	Columns *Columns

	// Indexes are the indexes into column rows, with nil = sequential.
	// Only set if order is different from default sequential order.
	Indexes []int

	// Meta is misc metadata for the table. Use lower-case key names
	// following the struct tag convention:
	//	- name string = name of table
	//	- doc string = documentation, description
	//	- precision int = n for precision to write out floats in csv.
	Meta metadata.Data
}

const (
	// ColumnNameOnly means that a statistics table has only the original
	// column name, with no statistic name appended, passed to
	// aggregation functions that build such tables.
	ColumnNameOnly = true

	// AddAggName means that a statistics table appends the statistic
	// name to the original column name.
	AddAggName = false
)

// New returns a new Table with its own (empty) set of Columns.
// Can pass an optional name which sets metadata.
func New(name ...string) *Table {
	dt := &Table{}
	dt.Columns = NewColumns()
	if len(name) > 0 {
		dt.Meta.Set("name", name[0])
	}
	return dt
}

// NewView returns a new Table with its own view into the same
// underlying set of Column data as the source table.
// Indexes are nil in the new Table, resulting in the default
// full sequential view.
func NewView(src *Table) *Table {
	dt := &Table{Columns: src.Columns}
	dt.Meta.Copy(src.Meta)
	return dt
}

// Metadata returns the table metadata.
func (dt *Table) Metadata() *metadata.Data { return &dt.Meta }

// IsValidRow returns error if the row is invalid, if error checking is needed.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.NumRows() {
		return fmt.Errorf("table.Table IsValidRow: row %d is out of valid range [0..%d]", row, dt.NumRows())
	}
	return nil
}

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// Column returns the column data with given name, or nil if not found.
// See [Table.ColumnTry] for a version that returns an error.
func (dt *Table) Column(name string) Column {
	return dt.Columns.At(name)
}

// ColumnTry is a version of [Table.Column] that also returns an error
// if the column name is not found, for cases when error is needed.
func (dt *Table) ColumnTry(name string) (Column, error) {
	cl, ok := dt.Columns.AtTry(name)
	if !ok {
		return nil, fmt.Errorf("table.Table: column named %q not found", name)
	}
	return cl, nil
}

// ColumnByIndex returns the column data at the given index.
func (dt *Table) ColumnByIndex(idx int) Column {
	return dt.Columns.Values[idx]
}

// ColumnName returns the name of given column.
func (dt *Table) ColumnName(i int) string {
	return dt.Columns.Keys[i]
}

// ColumnIndex returns the index of the column with the given name,
// along with an error if not found.
func (dt *Table) ColumnIndex(name string) (int, error) {
	idx := dt.Columns.IndexByKey(name)
	if idx < 0 {
		return -1, fmt.Errorf("table.Table: column named %q not found", name)
	}
	return idx, nil
}

// ColumnIndexList returns a list of indexes to columns of given names,
// logging an error and skipping any name that is not found.
func (dt *Table) ColumnIndexList(names ...string) []int {
	list := make([]int, 0, len(names))
	for _, nm := range names {
		ci, err := dt.ColumnIndex(nm)
		if errors.Log(err) != nil {
			continue
		}
		list = append(list, ci)
	}
	return list
}

// AddColumn adds the given column to the table, returning an error
// and not adding if the name is not unique.
// Automatically adjusts the length to fit the current number of rows.
func (dt *Table) AddColumn(name string, col Column) error {
	return dt.Columns.AddColumn(name, col)
}

// InsertColumn inserts the given column into the table at given index,
// returning an error and not adding if the name is not unique.
// Automatically adjusts the length to fit the current number of rows.
func (dt *Table) InsertColumn(idx int, name string, col Column) error {
	return dt.Columns.InsertColumn(idx, name, col)
}

// AddFloat64Column adds a new float64 column with given name.
func (dt *Table) AddFloat64Column(name string) *Float64 {
	cl := NewFloat64(dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// AddStringColumn adds a new string column with given name.
func (dt *Table) AddStringColumn(name string) *String {
	cl := NewString(dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// DeleteColumnName deletes column of given name.
// Returns false if not found.
func (dt *Table) DeleteColumnName(name string) bool {
	return dt.Columns.DeleteByKey(name)
}

// DeleteColumnByIndex deletes columns within the index range [i:j].
func (dt *Table) DeleteColumnByIndex(i, j int) {
	dt.Columns.DeleteByIndex(i, j)
}

// DeleteAll deletes all columns, does full reset.
func (dt *Table) DeleteAll() {
	dt.Indexes = nil
	dt.Columns.Reset()
	dt.Columns.Rows = 0
}

// AddRows adds n rows to end of underlying Table, and to the indexes in this view.
func (dt *Table) AddRows(n int) *Table { //types:add
	return dt.SetNumRows(dt.Columns.Rows + n)
}

// SetNumRows sets the number of rows in the table, across all columns.
func (dt *Table) SetNumRows(rows int) *Table { //types:add
	strow := dt.Columns.Rows
	dt.Columns.SetNumRows(rows)
	if dt.Indexes == nil {
		return dt
	}
	if rows > strow {
		for i := range rows - strow {
			dt.Indexes = append(dt.Indexes, strow+i)
		}
	} else {
		dt.ValidIndexes()
	}
	return dt
}

// Clone returns a complete copy of this table, including cloning
// the underlying Columns data, and the current [Table.Indexes].
// See also [Table.New] to flatten the current indexes.
func (dt *Table) Clone() *Table {
	cp := &Table{}
	cp.Columns = dt.Columns.Clone()
	cp.Meta.Copy(dt.Meta)
	if dt.Indexes != nil {
		cp.Indexes = slices.Clone(dt.Indexes)
	}
	return cp
}

// AppendRows appends shared columns in both tables with input table rows.
func (dt *Table) AppendRows(dt2 *Table) {
	strow := dt.Columns.Rows
	n := dt2.Columns.Rows
	dt.Columns.AppendRows(dt2.Columns)
	if dt.Indexes == nil {
		return
	}
	for i := range n {
		dt.Indexes = append(dt.Indexes, strow+i)
	}
}

//////// Value access through the indexed view

// Float returns the float64 value of given column name and view row,
// returning NaN if the column is not found.
func (dt *Table) Float(column string, row int) float64 {
	cl := dt.Column(column)
	if cl == nil {
		return math.NaN()
	}
	return cl.FloatRow(dt.RowIndex(row))
}

// SetFloat sets the float64 value of given column name and view row,
// logging an error if the column is not found.
func (dt *Table) SetFloat(column string, row int, val float64) {
	cl, err := dt.ColumnTry(column)
	if errors.Log(err) != nil {
		return
	}
	cl.SetFloatRow(val, dt.RowIndex(row))
}

// StringValue returns the string value of given column name and view row,
// returning "" if the column is not found.
func (dt *Table) StringValue(column string, row int) string {
	cl := dt.Column(column)
	if cl == nil {
		return ""
	}
	return cl.StringRow(dt.RowIndex(row))
}

// SetString sets the string value of given column name and view row,
// logging an error if the column is not found.
func (dt *Table) SetString(column string, row int, val string) {
	cl, err := dt.ColumnTry(column)
	if errors.Log(err) != nil {
		return
	}
	cl.SetStringRow(val, dt.RowIndex(row))
}
