// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// CellContext is passed to the tooltip, style and image functions of
// a [Column]. It is constructed for a single cell query, and computes
// the raw and displayed values at most once, only when asked for them.
// The first error encountered is kept and returned by [CellContext.Err].
type CellContext struct {
	// Row is the row of the cell in the view, or -1 when the context
	// was made for an item outside of a model.
	Row int

	// Col is the column index of the cell in the view.
	Col int

	// Column is the column of the cell.
	Column *Column

	item any

	raw     any
	rawDone bool

	value     string
	valueDone bool

	err error
}

// NewCellContext returns a context for the given column and item,
// outside of any model.
func NewCellContext(col *Column, item any) *CellContext {
	return &CellContext{Row: -1, Column: col, item: item}
}

// Item returns the row item of the cell.
func (c *CellContext) Item() any {
	return c.item
}

// RawValue returns the value extracted from the item by the column,
// or nil if the lookup failed.
func (c *CellContext) RawValue() any {
	if !c.rawDone {
		c.rawDone = true
		if c.Column != nil {
			c.raw, c.err = c.Column.Value(c.item)
		}
	}
	return c.raw
}

// Value returns the displayed text of the cell.
func (c *CellContext) Value() string {
	if !c.valueDone {
		c.valueDone = true
		raw := c.RawValue()
		if c.err == nil && c.Column != nil {
			c.value, c.err = c.Column.FormatValue(raw)
		}
	}
	return c.value
}

// Err returns the first error encountered while computing
// the values of the context.
func (c *CellContext) Err() error {
	return c.err
}
