// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/base/metadata"
)

// Column is the interface for a column of data in a [Table]:
// a named, row-aligned list of float64 or string values.
// Row indexes at this level are always raw storage rows;
// use the [Table] value accessors to go through its indexed view.
type Column interface {
	// Metadata returns the metadata for this column, which can
	// hold plot stylers and other optional per-column properties.
	Metadata() *metadata.Data

	// Len returns the number of rows of data in the column.
	Len() int

	// IsString returns true if this column holds string values,
	// which are not aggregated numerically.
	IsString() bool

	// FloatRow returns the value at given row as a float64.
	// String columns parse their value, returning NaN if not parsable.
	FloatRow(row int) float64

	// StringRow returns the value at given row as a string.
	StringRow(row int) string

	// Float1D returns the value at given index in the flat 1D view
	// of the column, which is the same as [Column.FloatRow].
	Float1D(i int) float64

	// String1D returns the value at given index in the flat 1D view
	// of the column, which is the same as [Column.StringRow].
	String1D(i int) string

	// SetFloatRow sets the value at given row from a float64.
	SetFloatRow(val float64, row int)

	// SetStringRow sets the value at given row from a string.
	SetStringRow(val string, row int)

	// SetNumRows sets the number of rows, preserving existing values.
	SetNumRows(rows int)

	// Clone returns a complete copy of this column's data.
	Clone() Column

	// AppendFrom appends all rows from the given column to this one.
	AppendFrom(cp Column)
}

// Float64 is a [Column] of float64 values.
type Float64 struct {
	Values []float64

	// Meta is misc metadata for the column, including plot stylers.
	Meta metadata.Data
}

// NewFloat64 returns a new [Float64] column with given number of rows.
func NewFloat64(rows int) *Float64 {
	return &Float64{Values: make([]float64, rows)}
}

func (cl *Float64) Metadata() *metadata.Data { return &cl.Meta }

func (cl *Float64) Len() int       { return len(cl.Values) }
func (cl *Float64) IsString() bool { return false }

func (cl *Float64) FloatRow(row int) float64 { return cl.Values[row] }

func (cl *Float64) Float1D(i int) float64 { return cl.Values[i] }

func (cl *Float64) String1D(i int) string { return cl.StringRow(i) }

func (cl *Float64) StringRow(row int) string {
	return strconv.FormatFloat(cl.Values[row], 'g', -1, 64)
}

func (cl *Float64) SetFloatRow(val float64, row int) { cl.Values[row] = val }

func (cl *Float64) SetStringRow(val string, row int) {
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		cl.Values[row] = f
	} else {
		cl.Values[row] = math.NaN()
	}
}

func (cl *Float64) SetNumRows(rows int) {
	n := len(cl.Values)
	if rows == n {
		return
	}
	if rows < n {
		cl.Values = cl.Values[:rows]
		return
	}
	cl.Values = append(cl.Values, make([]float64, rows-n)...)
}

func (cl *Float64) Clone() Column {
	cp := &Float64{Values: slices.Clone(cl.Values)}
	cp.Meta.Copy(cl.Meta)
	return cp
}

func (cl *Float64) AppendFrom(cp Column) {
	if fc, ok := cp.(*Float64); ok {
		cl.Values = append(cl.Values, fc.Values...)
		return
	}
	for i := range cp.Len() {
		cl.Values = append(cl.Values, cp.FloatRow(i))
	}
}

// String is a [Column] of string values.
type String struct {
	Values []string

	// Meta is misc metadata for the column, including plot stylers.
	Meta metadata.Data
}

// NewString returns a new [String] column with given number of rows.
func NewString(rows int) *String {
	return &String{Values: make([]string, rows)}
}

func (cl *String) Metadata() *metadata.Data { return &cl.Meta }

func (cl *String) Len() int       { return len(cl.Values) }
func (cl *String) IsString() bool { return true }

func (cl *String) FloatRow(row int) float64 {
	if f, err := strconv.ParseFloat(cl.Values[row], 64); err == nil {
		return f
	}
	return math.NaN()
}

func (cl *String) StringRow(row int) string { return cl.Values[row] }

func (cl *String) Float1D(i int) float64 { return cl.FloatRow(i) }

func (cl *String) String1D(i int) string { return cl.Values[i] }

func (cl *String) SetFloatRow(val float64, row int) {
	cl.Values[row] = strconv.FormatFloat(val, 'g', -1, 64)
}

func (cl *String) SetStringRow(val string, row int) { cl.Values[row] = val }

func (cl *String) SetNumRows(rows int) {
	n := len(cl.Values)
	if rows == n {
		return
	}
	if rows < n {
		cl.Values = cl.Values[:rows]
		return
	}
	cl.Values = append(cl.Values, make([]string, rows-n)...)
}

func (cl *String) Clone() Column {
	cp := &String{Values: slices.Clone(cl.Values)}
	cp.Meta.Copy(cl.Meta)
	return cp
}

func (cl *String) AppendFrom(cp Column) {
	if sc, ok := cp.(*String); ok {
		cl.Values = append(cl.Values, sc.Values...)
		return
	}
	for i := range cp.Len() {
		cl.Values = append(cl.Values, cp.StringRow(i))
	}
}

// Columns is the underlying column list and number of rows for a [Table].
// Different tables can provide different indexed views onto the same Columns.
type Columns struct {
	keylist.List[string, Column]

	// Rows is the number of rows, which is enforced to be the length
	// of all columns.
	Rows int
}

// NewColumns returns a new Columns.
func NewColumns() *Columns {
	return &Columns{}
}

// SetNumRows sets the number of rows across all columns.
func (cl *Columns) SetNumRows(rows int) *Columns {
	cl.Rows = rows // can be 0
	for _, c := range cl.Values {
		c.SetNumRows(rows)
	}
	return cl
}

// AddColumn adds the given column under the given name,
// returning an error and not adding if the name is not unique.
// Automatically adjusts the length to fit the current number of rows.
func (cl *Columns) AddColumn(name string, col Column) error {
	err := cl.Add(name, col)
	if err != nil {
		return err
	}
	col.SetNumRows(cl.Rows)
	return nil
}

// InsertColumn inserts the given column under the given name at given index,
// returning an error and not adding if the name is not unique.
// Automatically adjusts the length to fit the current number of rows.
func (cl *Columns) InsertColumn(idx int, name string, col Column) error {
	if cl.IndexByKey(name) >= 0 {
		return fmt.Errorf("table.Columns: column named %q already exists", name)
	}
	cl.Insert(idx, name, col)
	col.SetNumRows(cl.Rows)
	return nil
}

// Clone returns a complete copy of these columns.
func (cl *Columns) Clone() *Columns {
	cp := NewColumns().SetNumRows(cl.Rows)
	for i, nm := range cl.Keys {
		cp.AddColumn(nm, cl.Values[i].Clone())
	}
	return cp
}

// AppendRows appends shared columns in both sets of columns with input rows.
func (cl *Columns) AppendRows(cl2 *Columns) {
	for i, nm := range cl.Keys {
		c2, ok := cl2.AtTry(nm)
		if !ok {
			continue
		}
		cl.Values[i].AppendFrom(c2)
	}
	cl.Rows += cl2.Rows
}
