// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides a columnar data frame whose rows are addressed
// by position, for use as the items of a [table.Model]. A [Frame]
// declares its fields, so that [table.GenerateColumns] makes one column
// per frame column, and it can be read from and written to CSV files.
package frame

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/gabrielcnr/enaml-extensions/table"
)

// Column is one named column of values of a frame.
type Column struct {

	// Name is the name of the column, unique in its frame.
	Name string

	// Kind is the kind of the values: [reflect.Int], [reflect.Float64]
	// or [reflect.String].
	Kind reflect.Kind

	// Values has one value per row.
	Values []any
}

// IsNumeric returns whether the column holds numbers.
func (c *Column) IsNumeric() bool {
	return c.Kind == reflect.Int || c.Kind == reflect.Float64
}

// Frame is a table of named columns aligned by a common row index.
// Frames are not safe for concurrent use: a background producer must
// hand off a [Frame.Clone] to the user interface goroutine.
type Frame struct {

	// Columns are the columns of the frame, in order.
	Columns []*Column

	// KeyColumn is the name of a column whose values identify the rows,
	// such as an id. If it is empty, rows are identified by their index.
	KeyColumn string

	rows int
}

// New returns a new empty frame.
func New() *Frame {
	return &Frame{}
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return f.rows }

// NumColumns returns the number of columns.
func (f *Frame) NumColumns() int { return len(f.Columns) }

// SetNumRows sets the number of rows, adding zero values
// or truncating every column as needed.
func (f *Frame) SetNumRows(rows int) *Frame {
	for _, c := range f.Columns {
		c.Values = resize(c.Values, rows, c.Kind)
	}
	f.rows = rows
	return f
}

func resize(vals []any, rows int, kind reflect.Kind) []any {
	if len(vals) >= rows {
		return vals[:rows]
	}
	zero := zeroValue(kind)
	for len(vals) < rows {
		vals = append(vals, zero)
	}
	return vals
}

func zeroValue(kind reflect.Kind) any {
	switch kind {
	case reflect.Int:
		return 0
	case reflect.Float64:
		return 0.0
	case reflect.String:
		return ""
	}
	return nil
}

// AddColumn adds a new column with the given name and kind, with zero
// values for the existing rows. It returns an error if a column with
// the name already exists.
func (f *Frame) AddColumn(name string, kind reflect.Kind) (*Column, error) {
	if f.ColumnIndex(name) >= 0 {
		return nil, fmt.Errorf("frame.AddColumn: column %q already exists", name)
	}
	c := &Column{Name: name, Kind: kind}
	c.Values = resize(nil, f.rows, kind)
	f.Columns = append(f.Columns, c)
	return c, nil
}

// ColumnIndex returns the index of the column with the given name, or -1.
func (f *Frame) ColumnIndex(name string) int {
	return slices.IndexFunc(f.Columns, func(c *Column) bool { return c.Name == name })
}

// Column returns the column with the given name, or nil.
func (f *Frame) Column(name string) *Column {
	if i := f.ColumnIndex(name); i >= 0 {
		return f.Columns[i]
	}
	return nil
}

// ColumnNames returns the names of the columns, in order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
	}
	return names
}

// AppendRow adds a row with the given values, one per column.
func (f *Frame) AppendRow(vals ...any) error {
	if len(vals) != len(f.Columns) {
		return fmt.Errorf("frame.AppendRow: got %d values for %d columns", len(vals), len(f.Columns))
	}
	for i, c := range f.Columns {
		c.Values = append(c.Values, vals[i])
	}
	f.rows++
	return nil
}

// Value returns the value at the given row and column index.
func (f *Frame) Value(row, col int) any {
	return f.Columns[col].Values[row]
}

// SetValue sets the value at the given row and column index.
func (f *Frame) SetValue(row, col int, v any) {
	f.Columns[col].Values[row] = v
}

// Clone returns a copy of the frame that shares no values with it.
func (f *Frame) Clone() *Frame {
	cf := &Frame{KeyColumn: f.KeyColumn, rows: f.rows}
	cf.Columns = make([]*Column, len(f.Columns))
	for i, c := range f.Columns {
		cf.Columns[i] = &Column{Name: c.Name, Kind: c.Kind, Values: slices.Clone(c.Values)}
	}
	return cf
}

// Len returns the number of rows, implementing [table.Items].
func (f *Frame) Len() int { return f.rows }

// At returns the [Row] at the given index, implementing [table.Items].
func (f *Frame) At(i int) any { return Row{Frame: f, Index: i} }

// Fields returns the columns as fields, implementing [table.FieldSource].
func (f *Frame) Fields() []table.FieldInfo {
	fields := make([]table.FieldInfo, len(f.Columns))
	for i, c := range f.Columns {
		fields[i] = table.FieldInfo{Name: c.Name, Numeric: c.IsNumeric()}
	}
	return fields
}

// Row is a row of a frame, addressed by name as a [table.Record] and
// by column index as a [table.Positional].
type Row struct {
	Frame *Frame
	Index int
}

// ValueByKeyTry returns the value of the column with the given name.
func (r Row) ValueByKeyTry(name string) (any, bool) {
	i := r.Frame.ColumnIndex(name)
	if i < 0 || r.Index >= r.Frame.rows {
		return nil, false
	}
	return r.Frame.Columns[i].Values[r.Index], true
}

// Len returns the number of columns.
func (r Row) Len() int { return len(r.Frame.Columns) }

// ValueByIndex returns the value of the column at the given index.
func (r Row) ValueByIndex(idx int) any {
	return r.Frame.Columns[idx].Values[r.Index]
}

// RowKey returns the value of the [Frame.KeyColumn] of the row, or else
// its index, implementing [table.Keyer]. Rows of successive snapshots of
// a source thus keep their identity.
func (r Row) RowKey() any {
	if r.Frame.KeyColumn != "" {
		if v, ok := r.ValueByKeyTry(r.Frame.KeyColumn); ok {
			return v
		}
	}
	return r.Index
}

// Values returns the values of the row, in column order.
func (r Row) Values() []any {
	vals := make([]any, len(r.Frame.Columns))
	for i, c := range r.Frame.Columns {
		vals[i] = c.Values[r.Index]
	}
	return vals
}

func (r Row) String() string {
	return fmt.Sprintf("Row %d %v", r.Index, r.Values())
}
