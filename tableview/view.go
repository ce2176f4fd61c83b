// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tableview implements the interaction protocol of a table view
// over a [table.Model], independent of any rendering backend: cell and
// row selection with change notification, double clicks, context menus,
// copying the selection to the clipboard, the transient multi-cell
// selection override, and column sizing.
package tableview

import (
	"fmt"
	"slices"

	"github.com/gabrielcnr/enaml-extensions/base/slicesx"
	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/gabrielcnr/enaml-extensions/table/summary"
)

// Cell is the address of a cell in the view of a model.
type Cell struct {
	Row int
	Col int
}

// NoCell is the address of no cell.
var NoCell = Cell{Row: -1, Col: -1}

// IsValid returns whether the cell addresses a cell.
func (c Cell) IsValid() bool {
	return c.Row >= 0 && c.Col >= 0
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// compareCells orders cells by row and then by column.
func compareCells(a, b Cell) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// View is the state of a table view: the model it shows, the selection,
// the context menu actions and the sizing policy. Like the model, a View
// must only be used on the user interface goroutine.
type View struct {

	// Model is the model shown by the view.
	Model *table.Model

	// SelectionMode is the configured selection mode.
	SelectionMode SelectionModes

	// Clipboard receives copied text. It defaults to the system clipboard.
	Clipboard Clipboard

	// Sizer measures the columns sized by content.
	Sizer Sizer

	// SizeBackend, if set, applies column sizes after every reset of the model.
	SizeBackend SizeBackend

	// selected is the set of selected cells.
	selected map[Cell]struct{}

	// current is the focused cell.
	current Cell

	// anchor is the start of continuous selections.
	anchor Cell

	// override is whether the multi-cell selection override is active.
	override bool

	actions []Action

	onSelection   []func(sc *SelectionContext)
	onDoubleClick []func(dc *DoubleClickContext)

	// remap holds the selection by item identity during a model reset.
	remap []remapCell

	destroyed bool
}

// NewView returns a new view of the given model with the
// [SelectSingleCell] selection mode.
func NewView(m *table.Model) *View {
	v := &View{
		Model:     m,
		Clipboard: SystemClipboard{},
		Sizer:     DefaultSizer(),
		selected:  map[Cell]struct{}{},
		current:   NoCell,
		anchor:    NoCell,
	}
	m.OnEvent(table.ResetBegin, func(ev *table.Event) { v.saveSelection() })
	m.OnEvent(table.ResetEnd, func(ev *table.Event) {
		v.restoreSelection()
		if v.SizeBackend != nil {
			v.AdjustColumnSizes(v.SizeBackend)
		}
	})
	return v
}

// Destroy marks the view as destroyed: selection contexts taken from
// it no longer derive items or values.
func (v *View) Destroy() {
	v.destroyed = true
	v.selected = map[Cell]struct{}{}
}

// OnSelection adds a function called after every selection change.
func (v *View) OnSelection(fun func(sc *SelectionContext)) {
	v.onSelection = append(v.onSelection, fun)
}

// OnDoubleClick adds a function called on double clicks.
func (v *View) OnDoubleClick(fun func(dc *DoubleClickContext)) {
	v.onDoubleClick = append(v.onDoubleClick, fun)
}

// SelectedCells returns the selected cells, ordered by row and then column.
func (v *View) SelectedCells() []Cell {
	cells := make([]Cell, 0, len(v.selected))
	for c := range v.selected {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCells)
	return cells
}

// IsSelected returns whether the given cell is selected.
func (v *View) IsSelected(c Cell) bool {
	_, ok := v.selected[c]
	return ok
}

// Current returns the focused cell, or [NoCell].
func (v *View) Current() Cell {
	return v.current
}

// SelectedRows returns the distinct rows with selected cells, in order.
func (v *View) SelectedRows() []int {
	cells := v.SelectedCells()
	rows := make([]int, len(cells))
	for i, c := range cells {
		rows[i] = c.Row
	}
	return slicesx.Unique(rows)
}

// Summary returns the summary of the raw values of the selected cells.
func (v *View) Summary() *summary.Summary {
	return summary.Compute(v.SelectionContext().Values())
}

// DoubleClickContext describes a double click on a cell.
type DoubleClickContext struct {
	Cell Cell

	// Column is the column of the cell; nil for the check column.
	Column *table.Column

	Item     any
	RawValue any

	// Value is the displayed text of the cell.
	Value string
}

// DoubleClick notifies the double click listeners of a double click
// on the given cell, returning the context that they received.
func (v *View) DoubleClick(c Cell) (*DoubleClickContext, error) {
	dc, err := v.CellInfo(c)
	if err != nil {
		return nil, err
	}
	for _, fun := range v.onDoubleClick {
		fun(dc)
	}
	return dc, nil
}

// CellInfo returns the context of the given cell that a double click
// on it would notify, without notifying the listeners.
func (v *View) CellInfo(c Cell) (*DoubleClickContext, error) {
	if err := v.checkCell(c); err != nil {
		return nil, err
	}
	raw, err := v.Model.Value(c.Row, c.Col)
	if err != nil {
		return nil, err
	}
	val, err := v.Model.DisplayValue(c.Row, c.Col)
	if err != nil {
		return nil, err
	}
	dc := &DoubleClickContext{
		Cell:     c,
		Column:   v.Model.Column(c.Col),
		Item:     v.Model.Item(c.Row),
		RawValue: raw,
		Value:    val,
	}
	return dc, nil
}

func (v *View) checkCell(c Cell) error {
	if c.Row < 0 || c.Row >= v.Model.RowCount() || c.Col < 0 || c.Col >= v.Model.ColumnCount() {
		return fmt.Errorf("%w: cell %s", table.ErrIndex, c)
	}
	return nil
}
