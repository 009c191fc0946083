// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func NewTestTable() *Table {
	dt := New()
	dt.AddStringColumn("Str")
	dt.AddFloat64Column("Flt64")
	dt.AddFloat64Column("Int")
	dt.SetNumRows(3)
	for i := range dt.NumRows() {
		dt.Column("Str").SetStringRow(strconv.Itoa(i), i)
		dt.Column("Flt64").SetFloatRow(float64(i), i)
		dt.Column("Int").SetFloatRow(float64(i), i)
	}
	return dt
}

func TestAdd(t *testing.T) {
	dt := NewTestTable()
	assert.Equal(t, 3, dt.NumColumns())
	assert.Equal(t, 3, dt.NumRows())
	for i := range dt.NumRows() {
		assert.Equal(t, strconv.Itoa(i), dt.StringValue("Str", i))
		assert.Equal(t, float64(i), dt.Float("Flt64", i))
		assert.Equal(t, float64(i), dt.Float("Int", i))
	}
	err := dt.AddColumn("Str", NewString(0))
	assert.Error(t, err)
	assert.Equal(t, 3, dt.NumColumns())
}

func TestColumnAccess(t *testing.T) {
	dt := NewTestTable()
	assert.Nil(t, dt.Column("Missing"))
	assert.True(t, math.IsNaN(dt.Float("Missing", 0)))
	assert.Equal(t, "", dt.StringValue("Missing", 0))

	_, err := dt.ColumnTry("Missing")
	assert.Error(t, err)

	ci, err := dt.ColumnIndex("Flt64")
	assert.NoError(t, err)
	assert.Equal(t, 1, ci)
	assert.Equal(t, "Flt64", dt.ColumnName(1))

	list := dt.ColumnIndexList("Int", "Str")
	assert.Equal(t, []int{2, 0}, list)
}

func TestInsertDelete(t *testing.T) {
	dt := NewTestTable()
	err := dt.InsertColumn(1, "New", NewFloat64(0))
	assert.NoError(t, err)
	assert.Equal(t, 4, dt.NumColumns())
	assert.Equal(t, "New", dt.ColumnName(1))
	assert.Equal(t, 3, dt.Column("New").Len())

	err = dt.InsertColumn(0, "New", NewFloat64(0))
	assert.Error(t, err)

	assert.True(t, dt.DeleteColumnName("New"))
	assert.False(t, dt.DeleteColumnName("New"))
	assert.Equal(t, 3, dt.NumColumns())

	dt.DeleteAll()
	assert.Equal(t, 0, dt.NumColumns())
	assert.Equal(t, 0, dt.NumRows())
}

func TestAppendRows(t *testing.T) {
	st := NewTestTable()
	dt := NewTestTable()
	dt.AppendRows(st)
	assert.Equal(t, 6, dt.NumRows())
	for i := range st.NumRows() {
		assert.Equal(t, strconv.Itoa(i), dt.StringValue("Str", 3+i))
		assert.Equal(t, float64(i), dt.Float("Flt64", 3+i))
	}
}

func TestSetNumRows(t *testing.T) {
	dt := NewTestTable()
	dt.IndexesNeeded()
	dt.SetNumRows(5)
	assert.Equal(t, 5, dt.NumRows())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, dt.Indexes)
	dt.SetNumRows(2)
	assert.Equal(t, 2, dt.NumRows())
	assert.Equal(t, []int{0, 1}, dt.Indexes)
}

func TestSortFilter(t *testing.T) {
	dt := NewTestTable()
	assert.NoError(t, dt.SortColumn("Flt64", Ascending))
	assert.Equal(t, []int{0, 1, 2}, dt.Indexes)
	assert.NoError(t, dt.SortColumn("Flt64", Descending))
	assert.Equal(t, []int{2, 1, 0}, dt.Indexes)
	assert.Equal(t, float64(2), dt.Float("Flt64", 0))

	dt.Sequential()
	dt.Filter(func(dt *Table, row int) bool {
		return dt.Column("Flt64").FloatRow(row) > 1
	})
	assert.Equal(t, 1, dt.NumRows())
	assert.Equal(t, float64(2), dt.Float("Flt64", 0))

	nt := dt.New()
	assert.Nil(t, nt.Indexes)
	assert.Equal(t, 1, nt.NumRows())
	assert.Equal(t, float64(2), nt.Float("Flt64", 0))
	assert.Equal(t, 3, dt.Columns.Rows) // underlying data unchanged

	dt.Sequential()
	assert.Equal(t, 3, dt.NumRows())
}

func TestSortColumns(t *testing.T) {
	dt := New()
	dt.AddStringColumn("Group")
	dt.AddFloat64Column("Value")
	dt.SetNumRows(4)
	groups := []string{"b", "a", "b", "a"}
	vals := []float64{1, 4, 3, 2}
	for i := range dt.NumRows() {
		dt.Column("Group").SetStringRow(groups[i], i)
		dt.Column("Value").SetFloatRow(vals[i], i)
	}
	assert.NoError(t, dt.SortColumns(Ascending, true, "Group", "Value"))
	assert.Equal(t, []int{3, 1, 0, 2}, dt.Indexes)
	assert.Error(t, dt.SortColumns(Ascending, true, "Missing"))
}

func TestCloneView(t *testing.T) {
	dt := NewTestTable()
	cp := dt.Clone()
	cp.Column("Flt64").SetFloatRow(42, 0)
	assert.Equal(t, float64(0), dt.Float("Flt64", 0))
	assert.Equal(t, float64(42), cp.Float("Flt64", 0))

	vw := NewView(dt)
	vw.Filter(func(dt *Table, row int) bool {
		return dt.Column("Flt64").FloatRow(row) >= 1
	})
	assert.Equal(t, 2, vw.NumRows())
	assert.Equal(t, 3, dt.NumRows()) // source view unchanged
	vw.Column("Flt64").SetFloatRow(42, 1)
	assert.Equal(t, float64(42), dt.Float("Flt64", 1)) // data shared
}

func TestDeleteRows(t *testing.T) {
	dt := NewTestTable()
	dt.DeleteRows(1, 1)
	assert.Equal(t, 2, dt.NumRows())
	assert.Equal(t, []int{0, 2}, dt.Indexes)
	assert.Equal(t, 3, dt.Columns.Rows)
}
