// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gabrielcnr/enaml-extensions/base/reflectx"
	"github.com/gabrielcnr/enaml-extensions/base/slicesx"
)

// Model is the state of a table: the original items, the active
// filters and remembered sort that derive the view of the items,
// the columns, and the checked items. It answers the per-cell queries
// of a view, addressing rows and columns of the view, where column 0
// is the check column when the model is checkable.
//
// A Model is not safe for concurrent use: all mutation and queries
// must happen on the goroutine that runs the user interface. Use
// [Model.Ingest] to apply updates computed by background watchers.
type Model struct {
	items   Items
	columns []*Column
	filters Filters

	// indexes are the indexes into items of the rows of the view;
	// nil means all items in their original order.
	indexes []int

	checkable bool

	// checked are the [RowKey] identities of the checked items.
	checked mapset.Set[any]

	sorted      bool
	sortColumn  *Column
	sortChecked bool
	sortDesc    bool

	listeners Listeners
}

// NewModel returns a new model with the given columns and items.
func NewModel(columns []*Column, items Items) *Model {
	if items == nil {
		items = Slice(nil)
	}
	return &Model{
		items:   items,
		columns: columns,
		checked: mapset.NewThreadUnsafeSet[any](),
	}
}

// OnEvent adds a listener for the given type of event.
func (m *Model) OnEvent(typ Events, fun func(ev *Event)) {
	m.listeners.Add(typ, fun)
}

func (m *Model) send(ev *Event) {
	ev.Model = m
	m.listeners.Call(ev)
}

// reset applies the given change and rederives the view, bracketed by
// [ResetBegin] and [ResetEnd] events.
func (m *Model) reset(change func()) error {
	m.send(&Event{Type: ResetBegin})
	if change != nil {
		change()
	}
	err := m.applyView()
	m.send(&Event{Type: ResetEnd})
	return err
}

// applyView rederives the view from the items, the filters and the sort.
// If the filters fail the view is empty.
func (m *Model) applyView() error {
	m.indexes = nil
	if m.filters.Len() > 0 {
		idxs, err := m.filters.Indexes(m.items)
		if err != nil {
			m.indexes = []int{}
			return err
		}
		m.indexes = idxs
	}
	if m.sorted {
		return m.sortView()
	}
	return nil
}

// indexesNeeded makes the view indexes explicit, for sorting.
func (m *Model) indexesNeeded() {
	if m.indexes != nil {
		return
	}
	m.indexes = make([]int, m.items.Len())
	for i := range m.indexes {
		m.indexes[i] = i
	}
}

// sortView stably sorts the view by the remembered sort column.
// Values that cannot be looked up sort as nil, and the first such
// error is returned.
func (m *Model) sortView() error {
	m.indexesNeeded()
	vals := make(map[int]any, len(m.indexes))
	var firstErr error
	for _, i := range m.indexes {
		it := m.items.At(i)
		if m.sortChecked {
			vals[i] = m.IsChecked(it)
			continue
		}
		v, err := m.sortColumn.Value(it)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		vals[i] = v
	}
	slices.SortStableFunc(m.indexes, func(a, b int) int {
		c := reflectx.Compare(vals[a], vals[b])
		if m.sortDesc {
			return -c
		}
		return c
	})
	return firstErr
}

// Items returns the original items.
func (m *Model) Items() Items {
	return m.items
}

// SetItems replaces the items and rederives the view, reapplying the
// active filters and sort. Checked items are kept by identity.
func (m *Model) SetItems(items Items) error {
	if items == nil {
		items = Slice(nil)
	}
	return m.reset(func() { m.items = items })
}

// Columns returns the columns, not including the check column.
func (m *Model) Columns() []*Column {
	return m.columns
}

// SetColumns replaces the columns. Filters and the sort on columns
// that are no longer present are dropped.
func (m *Model) SetColumns(columns []*Column) error {
	return m.reset(func() {
		m.columns = columns
		for _, f := range m.filters.All() {
			if !slices.Contains(columns, f.Column) {
				m.filters.Remove(f.Column)
			}
		}
		if m.sorted && !m.sortChecked && !slices.Contains(columns, m.sortColumn) {
			m.sorted = false
			m.sortColumn = nil
		}
	})
}

// MoveColumn moves the column at the given view column index to the
// given view column index. The check column cannot be moved.
func (m *Model) MoveColumn(from, to int) error {
	off := m.columnOffset()
	nc := len(m.columns)
	if from-off < 0 || from-off >= nc || to-off < 0 || to-off >= nc {
		return fmt.Errorf("%w: move column %d to %d", ErrIndex, from, to)
	}
	return m.reset(func() {
		m.columns = slicesx.Move(slices.Clone(m.columns), from-off, to-off)
	})
}

// Refresh rederives the view from the current items, for items
// that have been changed in place.
func (m *Model) Refresh() error {
	return m.reset(nil)
}

// SetFilter sets the filter expression of the given column, replacing
// any existing filter of the column. An empty expression removes it.
func (m *Model) SetFilter(col *Column, expr string) error {
	if col == nil {
		return &ColumnNotFoundError{}
	}
	if !slices.Contains(m.columns, col) {
		return &ColumnNotFoundError{Title: col.Title}
	}
	return m.reset(func() { m.filters.Add(col, expr) })
}

// ClearFilters removes all filters.
func (m *Model) ClearFilters() error {
	return m.reset(func() { m.filters.Clear() })
}

// Filter returns the active filter of the given column, or nil.
func (m *Model) Filter(col *Column) *Filter {
	return m.filters.Get(col)
}

// Filters returns the active filters.
func (m *Model) Filters() []*Filter {
	return m.filters.All()
}

// HasFilters returns whether any filter is active.
func (m *Model) HasFilters() bool {
	return m.filters.Len() > 0
}

// Sort stably sorts the view by the raw values of the given view column,
// in ascending or descending order. NaN values sort as negative infinity
// and nil values lowest. Sorting by the check column sorts unchecked
// items first. The sort is remembered and reapplied whenever the view
// is rederived.
func (m *Model) Sort(col int, descending bool) error {
	c, err := m.columnAt(col)
	if err != nil {
		return err
	}
	return m.reset(func() {
		m.sorted = true
		m.sortColumn = c
		m.sortChecked = c == nil
		m.sortDesc = descending
	})
}

// ClearSort forgets the sort, restoring the original item order.
func (m *Model) ClearSort() error {
	return m.reset(func() {
		m.sorted = false
		m.sortColumn = nil
		m.sortChecked = false
	})
}

// SortKey returns the view column and direction of the remembered sort.
func (m *Model) SortKey() (col int, descending bool, ok bool) {
	if !m.sorted {
		return -1, false, false
	}
	if m.sortChecked {
		return 0, m.sortDesc, true
	}
	return m.ColumnIndex(m.sortColumn), m.sortDesc, true
}

// RowCount returns the number of rows in the view.
func (m *Model) RowCount() int {
	if m.indexes == nil {
		return m.items.Len()
	}
	return len(m.indexes)
}

// ColumnCount returns the number of columns in the view,
// including the check column when checkable.
func (m *Model) ColumnCount() int {
	return len(m.columns) + m.columnOffset()
}

func (m *Model) columnOffset() int {
	if m.checkable {
		return 1
	}
	return 0
}

// IsCheckColumn returns whether the given view column is the check column.
func (m *Model) IsCheckColumn(col int) bool {
	return m.checkable && col == 0
}

// Column returns the column at the given view column index,
// or nil for the check column or an index out of range.
func (m *Model) Column(col int) *Column {
	c, _ := m.columnAt(col)
	return c
}

// columnAt returns the column at the given view column index,
// with a nil column for the check column.
func (m *Model) columnAt(col int) (*Column, error) {
	if m.IsCheckColumn(col) {
		return nil, nil
	}
	ci := col - m.columnOffset()
	if ci < 0 || ci >= len(m.columns) {
		return nil, fmt.Errorf("%w: column %d of %d", ErrIndex, col, m.ColumnCount())
	}
	return m.columns[ci], nil
}

// ColumnIndex returns the view column index of the given column, or -1.
func (m *Model) ColumnIndex(c *Column) int {
	ci := slices.Index(m.columns, c)
	if ci < 0 {
		return -1
	}
	return ci + m.columnOffset()
}

// RowIndex returns the index into the items of the given view row.
func (m *Model) RowIndex(row int) int {
	if m.indexes == nil {
		return row
	}
	return m.indexes[row]
}

// Item returns the item of the given view row, or nil if out of range.
func (m *Model) Item(row int) any {
	if row < 0 || row >= m.RowCount() {
		return nil
	}
	return m.items.At(m.RowIndex(row))
}

// ViewItems returns the items of the view in order.
func (m *Model) ViewItems() []any {
	n := m.RowCount()
	its := make([]any, n)
	for r := range n {
		its[r] = m.items.At(m.RowIndex(r))
	}
	return its
}

// cell returns the column and item of the given view cell.
func (m *Model) cell(row, col int) (*Column, any, error) {
	if row < 0 || row >= m.RowCount() {
		return nil, nil, fmt.Errorf("%w: row %d of %d", ErrIndex, row, m.RowCount())
	}
	c, err := m.columnAt(col)
	if err != nil {
		return nil, nil, err
	}
	return c, m.items.At(m.RowIndex(row)), nil
}

// CellContext returns the context of the given view cell,
// as passed to column functions.
func (m *Model) CellContext(row, col int) (*CellContext, error) {
	c, item, err := m.cell(row, col)
	if err != nil {
		return nil, err
	}
	return &CellContext{Row: row, Col: col, Column: c, item: item}, nil
}

// Value returns the raw value of the given view cell.
// The check column has no value.
func (m *Model) Value(row, col int) (any, error) {
	c, item, err := m.cell(row, col)
	if err != nil || c == nil {
		return nil, err
	}
	return c.Value(item)
}

// DisplayValue returns the displayed text of the given view cell.
func (m *Model) DisplayValue(row, col int) (string, error) {
	c, item, err := m.cell(row, col)
	if err != nil || c == nil {
		return "", err
	}
	return c.DisplayValue(item)
}

// Align returns the alignment of the given view cell.
func (m *Model) Align(row, col int) (Aligns, error) {
	c, item, err := m.cell(row, col)
	if err != nil {
		return AlignLeft, err
	}
	if c == nil {
		return AlignCenter, nil
	}
	return c.AlignFor(item)
}

// Tooltip returns the tooltip of the given view cell.
func (m *Model) Tooltip(row, col int) (string, error) {
	ctx, err := m.CellContext(row, col)
	if err != nil || ctx.Column == nil {
		return "", err
	}
	tip := ctx.Column.TooltipFor(ctx)
	return tip, ctx.Err()
}

// Style returns the style overrides of the given view cell, or nil.
func (m *Model) Style(row, col int) (*CellStyle, error) {
	ctx, err := m.CellContext(row, col)
	if err != nil || ctx.Column == nil {
		return nil, err
	}
	st := ctx.Column.StyleFor(ctx)
	return st, ctx.Err()
}

// Image returns the image path of the given view cell, or "".
func (m *Model) Image(row, col int) (string, error) {
	ctx, err := m.CellContext(row, col)
	if err != nil || ctx.Column == nil {
		return "", err
	}
	img := ctx.Column.ImageFor(ctx)
	return img, ctx.Err()
}

// HeaderTitle returns the header label of the given view column.
func (m *Model) HeaderTitle(col int) string {
	c, err := m.columnAt(col)
	if err != nil || c == nil {
		return ""
	}
	return c.Title
}

// HeaderAlign returns the header alignment of the given view column:
// the alignment of its first row, or else its explicit alignment.
func (m *Model) HeaderAlign(col int) Aligns {
	c, err := m.columnAt(col)
	switch {
	case err != nil:
		return AlignLeft
	case c == nil:
		return AlignCenter
	case m.RowCount() > 0:
		if al, err := c.AlignFor(m.Item(0)); err == nil {
			return al
		}
	}
	if c.Align != AlignAuto {
		return c.Align
	}
	return AlignLeft
}

// HeaderStyle returns the header style of the given view column:
// columns with an active filter have a red bold header.
func (m *Model) HeaderStyle(col int) *CellStyle {
	c, err := m.columnAt(col)
	if err != nil || c == nil || !m.filters.Has(c) {
		return nil
	}
	st := filteredHeaderStyle
	return &st
}
