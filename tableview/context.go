// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableview

import (
	"slices"
	"weak"

	"github.com/gabrielcnr/enaml-extensions/base/errors"
	"github.com/gabrielcnr/enaml-extensions/base/slicesx"
)

// SelectionContext is a snapshot of the selection of a view, with the
// change from the previous selection. The selected items and values
// are derived on demand from the view, which the context does not keep
// alive: once the view is destroyed or collected they are empty.
type SelectionContext struct {

	// Selected are all of the selected cells, ordered by row and column.
	Selected []Cell

	// Added are the cells selected by the change.
	Added []Cell

	// Removed are the cells unselected by the change.
	Removed []Cell

	// Current is the focused cell, or [NoCell].
	Current Cell

	view weak.Pointer[View]
}

// CellValue is the raw value of a selected cell.
type CellValue struct {
	Cell  Cell
	Value any
}

func (v *View) newSelectionContext(added, removed []Cell) *SelectionContext {
	sortCells(added)
	sortCells(removed)
	return &SelectionContext{
		Selected: v.SelectedCells(),
		Added:    added,
		Removed:  removed,
		Current:  v.current,
		view:     weak.Make(v),
	}
}

// SelectionContext returns a snapshot of the current selection, with no change.
func (v *View) SelectionContext() *SelectionContext {
	return v.newSelectionContext(nil, nil)
}

func sortCells(cells []Cell) {
	slices.SortFunc(cells, compareCells)
}

// liveView returns the view of the context if it is still alive.
func (sc *SelectionContext) liveView() *View {
	v := sc.view.Value()
	if v == nil || v.destroyed {
		return nil
	}
	return v
}

// SelectedItems returns the distinct items of the selected rows, in row order.
func (sc *SelectionContext) SelectedItems() []any {
	v := sc.liveView()
	if v == nil {
		return nil
	}
	rows := make([]int, len(sc.Selected))
	for i, c := range sc.Selected {
		rows[i] = c.Row
	}
	var items []any
	for _, r := range slicesx.Unique(rows) {
		if it := v.Model.Item(r); it != nil {
			items = append(items, it)
		}
	}
	return items
}

// SelectedValues returns the raw values of the selected cells in order.
// The check column has nil values. Cells whose value cannot be looked
// up are logged and skipped.
func (sc *SelectionContext) SelectedValues() []CellValue {
	v := sc.liveView()
	if v == nil {
		return nil
	}
	var vals []CellValue
	for _, c := range sc.Selected {
		val, err := v.Model.Value(c.Row, c.Col)
		if errors.Log(err) != nil {
			continue
		}
		vals = append(vals, CellValue{Cell: c, Value: val})
	}
	return vals
}

// Values returns the raw values of [SelectionContext.SelectedValues].
func (sc *SelectionContext) Values() []any {
	cvs := sc.SelectedValues()
	vals := make([]any, len(cvs))
	for i, cv := range cvs {
		vals[i] = cv.Value
	}
	return vals
}
