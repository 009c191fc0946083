// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/metadata"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space).
type Delims int32 //enums:enum

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	Space

	// Detect is used during reading a file: reads the first line and
	// detects tabs or commas.
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

const (
	// Headers is passed to CSV methods for the headers arg, to use headers
	// that capture the column type (string columns marked with a $ prefix).
	Headers = true

	// NoHeaders is passed to CSV methods for the headers arg, to not use headers.
	NoHeaders = false
)

// SaveCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers = true then generate column headers that capture the
// column type, enabling full reloading of the same table format
// (recommended). Otherwise, only the data is written.
func (dt *Table) SaveCSV(filename string, delim Delims, headers bool) error { //types:add
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim, headers)
	bw.Flush()
	return err
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official
// CSV standard. If the table does not currently have any columns,
// the first row of the file is assumed to be headers, and columns are
// constructed therefrom: names with a $ prefix become string columns,
// and all others are float64. If the table DOES have existing columns,
// then those are used robustly for whatever information fits from each
// row of the file.
func (dt *Table) OpenCSV(filename string, delim Delims) error { //types:add
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// OpenFS is the version of [Table.OpenCSV] that uses an [fs.FS] filesystem.
func (dt *Table) OpenFS(fsys fs.FS, filename string, delim Delims) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// ReadCSV reads a table from a comma-separated-values (CSV) stream
// (where comma = any delimiter, specified in the delim arg).
// See [Table.OpenCSV] for how headers and existing columns are handled.
// Any existing indexed view is reset to sequential.
func (dt *Table) ReadCSV(r io.Reader, delim Delims) error {
	dl := delim.Rune()
	if delim == Detect {
		br := bufio.NewReader(r)
		first, err := br.ReadString('\n')
		if err != nil && first == "" {
			return errors.Log(err)
		}
		dl = '\t'
		if strings.Count(first, ",") > strings.Count(first, "\t") {
			dl = ','
		}
		r = io.MultiReader(strings.NewReader(first), br)
	}
	cr := csv.NewReader(r)
	cr.Comma = dl
	rec, err := cr.ReadAll()
	if err != nil {
		return errors.Log(err)
	}
	if len(rec) == 0 {
		return nil
	}
	rows := len(rec)
	strow := 0
	if dt.NumColumns() == 0 {
		dt.configFromHeaders(rec[0])
		strow = 1
		rows--
	} else if dt.isHeaderRow(rec[0]) {
		strow = 1
		rows--
	}
	dt.Indexes = nil
	dt.SetNumRows(rows)
	for ri := range rows {
		dt.readRow(rec[strow+ri], ri)
	}
	return nil
}

// configFromHeaders configures table columns from the given header fields:
// names with a $ prefix become string columns, all others float64.
func (dt *Table) configFromHeaders(hdrs []string) {
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		if nm, ok := strings.CutPrefix(hd, "$"); ok {
			dt.AddStringColumn(nm)
		} else {
			dt.AddFloat64Column(hd)
		}
	}
}

// isHeaderRow returns true if the given record matches the existing
// column names of the table, and is therefore a header rather than data.
func (dt *Table) isHeaderRow(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	nm := strings.TrimPrefix(strings.TrimSpace(rec[0]), "$")
	return dt.Columns.IndexByKey(nm) == 0
}

// readRow reads values from the given record into the given raw row index,
// for however many fields fit in the existing columns. Empty or non-numeric
// fields in float columns are stored as NaN (missing).
func (dt *Table) readRow(rec []string, row int) {
	nc := min(len(rec), dt.NumColumns())
	for ci := range nc {
		cl := dt.ColumnByIndex(ci)
		fd := strings.TrimSpace(rec[ci])
		if !cl.IsString() && fd == "" {
			cl.SetFloatRow(math.NaN(), row)
			continue
		}
		cl.SetStringRow(fd, row)
	}
}

// WriteCSV writes a table to a comma-separated-values (CSV) stream
// (where comma = any delimiter, specified in the delim arg), through
// the current indexed view. If headers = true then generate column
// headers that capture the column type (string columns marked with
// a $ prefix).
func (dt *Table) WriteCSV(w io.Writer, delim Delims, headers bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if headers {
		hdrs := make([]string, dt.NumColumns())
		for ci := range hdrs {
			nm := dt.ColumnName(ci)
			if dt.ColumnByIndex(ci).IsString() {
				nm = "$" + nm
			}
			hdrs[ci] = nm
		}
		if err := cw.Write(hdrs); err != nil {
			return errors.Log(err)
		}
	}
	prec := 0
	if p, err := metadata.Get[int](dt.Meta, "precision"); err == nil {
		prec = p
	}
	rec := make([]string, dt.NumColumns())
	nrow := dt.NumRows()
	for ri := range nrow {
		row := dt.RowIndex(ri)
		for ci := range rec {
			cl := dt.ColumnByIndex(ci)
			if !cl.IsString() && prec > 0 {
				rec[ci] = strconv.FormatFloat(cl.FloatRow(row), 'g', prec, 64)
			} else {
				rec[ci] = cl.StringRow(row)
			}
		}
		if err := cw.Write(rec); err != nil {
			return errors.Log(err)
		}
	}
	cw.Flush()
	return nil
}

// String satisfies the fmt.Stringer interface, writing the table in
// tab-delimited format with headers.
func (dt *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table: %d rows x %d columns\n", dt.NumRows(), dt.NumColumns())
	dt.WriteCSV(&b, Tab, Headers)
	return b.String()
}
