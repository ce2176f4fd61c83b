// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableview

import (
	"strings"

	"github.com/gabrielcnr/enaml-extensions/table"
)

// SelectionModes are the configurable selection modes of a view.
type SelectionModes int32

const (
	// SelectSingleCell selects at most one cell.
	SelectSingleCell SelectionModes = iota

	// SelectMultiCells selects any set of cells.
	SelectMultiCells

	// SelectSingleRow selects all of the cells of at most one row.
	SelectSingleRow

	// SelectMultiRows selects all of the cells of any set of rows.
	SelectMultiRows

	// NoSelection disables selection.
	NoSelection
)

func (sm SelectionModes) String() string {
	switch sm {
	case SelectMultiCells:
		return "multi_cells"
	case SelectSingleRow:
		return "single_row"
	case SelectMultiRows:
		return "multi_rows"
	case NoSelection:
		return "none"
	}
	return "single_cell"
}

// ParseSelectionMode returns the selection mode with the given name,
// as returned by [SelectionModes.String], ignoring case and dashes.
func ParseSelectionMode(s string) (SelectionModes, bool) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for sm := SelectSingleCell; sm <= NoSelection; sm++ {
		if sm.String() == s {
			return sm, true
		}
	}
	return SelectSingleCell, false
}

// IsRows returns whether the mode selects whole rows.
func (sm SelectionModes) IsRows() bool {
	return sm == SelectSingleRow || sm == SelectMultiRows
}

// IsMulti returns whether the mode allows more than one cell or row.
func (sm SelectionModes) IsMulti() bool {
	return sm == SelectMultiCells || sm == SelectMultiRows
}

// SelectModes are the ways a selection action changes the selection,
// usually determined by the modifier keys held during a click.
type SelectModes int32

const (
	// SelectOne selects a single cell or row, and is the default when no
	// modifier key is pressed.
	SelectOne SelectModes = iota

	// ExtendContinuous, activated by Shift key, extends the selection to
	// select a continuous region from the anchor of the selection.
	ExtendContinuous

	// ExtendOne, activated by Control or Meta / Command, toggles the
	// selection of the one cell or row just clicked on, creating a
	// potentially discontinuous set of selected cells.
	ExtendOne

	// Unselect unselects the cell or row.
	Unselect
)

// SelectModeFor returns the select mode for a click with the given modifiers.
func SelectModeFor(mods Modifiers) SelectModes {
	switch {
	case mods.Has(Shift):
		return ExtendContinuous
	case mods.Has(Control) || mods.Has(Meta):
		return ExtendOne
	}
	return SelectOne
}

// Mode returns the selection mode in effect: [SelectMultiCells] while the
// override is active, and the configured mode otherwise.
func (v *View) Mode() SelectionModes {
	if v.override {
		return SelectMultiCells
	}
	return v.SelectionMode
}

// SetSelectionMode sets the configured selection mode, clearing the selection.
func (v *View) SetSelectionMode(mode SelectionModes) {
	v.SelectionMode = mode
	v.ClearSelection()
}

// cellsFor returns the cells selected by selecting the given cell.
func (v *View) cellsFor(c Cell) []Cell {
	if !v.Mode().IsRows() {
		return []Cell{c}
	}
	nc := v.Model.ColumnCount()
	cells := make([]Cell, nc)
	for col := range nc {
		cells[col] = Cell{Row: c.Row, Col: col}
	}
	return cells
}

// rangeCells returns the cells of the rectangle spanned by the two
// given cells, or of the rows spanned in row modes.
func (v *View) rangeCells(a, b Cell) []Cell {
	r0, r1 := min(a.Row, b.Row), max(a.Row, b.Row)
	c0, c1 := min(a.Col, b.Col), max(a.Col, b.Col)
	if v.Mode().IsRows() {
		c0, c1 = 0, v.Model.ColumnCount()-1
	}
	var cells []Cell
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

// Select changes the selection for the given cell according to the given
// select mode and the selection mode in effect. Single modes treat both
// extending modes as [SelectOne]. Selection listeners are notified of any change.
func (v *View) Select(c Cell, mode SelectModes) error {
	sm := v.Mode()
	if sm == NoSelection {
		return nil
	}
	if err := v.checkCell(c); err != nil {
		return err
	}
	if !sm.IsMulti() && mode != Unselect {
		mode = SelectOne
	}
	sel := v.selectionCopy()
	switch mode {
	case SelectOne:
		clear(sel)
		addCells(sel, v.cellsFor(c))
		v.anchor = c
	case ExtendContinuous:
		if !v.anchor.IsValid() || v.checkCell(v.anchor) != nil {
			v.anchor = c
		}
		clear(sel)
		addCells(sel, v.rangeCells(v.anchor, c))
	case ExtendOne:
		if _, ok := sel[c]; ok {
			removeCells(sel, v.cellsFor(c))
		} else {
			addCells(sel, v.cellsFor(c))
			v.anchor = c
		}
	case Unselect:
		removeCells(sel, v.cellsFor(c))
	}
	v.setSelection(sel, c)
	return nil
}

// SelectRange selects the continuous region between the two given cells,
// replacing the selection. Single modes select only the to cell.
func (v *View) SelectRange(from, to Cell) error {
	if err := v.checkCell(from); err != nil {
		return err
	}
	v.anchor = from
	return v.Select(to, ExtendContinuous)
}

// SelectAll selects all cells in the multi selection modes.
func (v *View) SelectAll() {
	nr, nc := v.Model.RowCount(), v.Model.ColumnCount()
	if !v.Mode().IsMulti() || nr == 0 || nc == 0 {
		return
	}
	v.anchor = Cell{}
	sel := make(map[Cell]struct{}, nr*nc)
	addCells(sel, v.rangeCells(Cell{}, Cell{Row: nr - 1, Col: nc - 1}))
	cur := v.current
	if !cur.IsValid() {
		cur = Cell{}
	}
	v.setSelection(sel, cur)
}

// ClearSelection unselects all cells.
func (v *View) ClearSelection() {
	v.anchor = NoCell
	v.setSelection(map[Cell]struct{}{}, NoCell)
}

func (v *View) selectionCopy() map[Cell]struct{} {
	sel := make(map[Cell]struct{}, len(v.selected))
	for c := range v.selected {
		sel[c] = struct{}{}
	}
	return sel
}

func addCells(sel map[Cell]struct{}, cells []Cell) {
	for _, c := range cells {
		sel[c] = struct{}{}
	}
}

func removeCells(sel map[Cell]struct{}, cells []Cell) {
	for _, c := range cells {
		delete(sel, c)
	}
}

// setSelection applies the given selection and current cell, and then
// notifies the selection listeners if anything changed.
func (v *View) setSelection(sel map[Cell]struct{}, current Cell) {
	var added, removed []Cell
	for c := range sel {
		if _, ok := v.selected[c]; !ok {
			added = append(added, c)
		}
	}
	for c := range v.selected {
		if _, ok := sel[c]; !ok {
			removed = append(removed, c)
		}
	}
	changed := len(added) > 0 || len(removed) > 0 || current != v.current
	v.selected = sel
	v.current = current
	if !changed {
		return
	}
	sc := v.newSelectionContext(added, removed)
	for _, fun := range v.onSelection {
		fun(sc)
	}
}

// remapCell is a selected cell identified by its item and column,
// for restoring the selection after a model reset.
type remapCell struct {
	key     any
	column  *table.Column
	check   bool
	current bool
}

func (v *View) saveSelection() {
	v.remap = v.remap[:0]
	save := func(c Cell, current bool) {
		item := v.Model.Item(c.Row)
		if item == nil {
			return
		}
		v.remap = append(v.remap, remapCell{
			key:     table.RowKey(item),
			column:  v.Model.Column(c.Col),
			check:   v.Model.IsCheckColumn(c.Col),
			current: current,
		})
	}
	for _, c := range v.SelectedCells() {
		save(c, false)
	}
	if v.current.IsValid() {
		save(v.current, true)
	}
}

// restoreSelection maps the saved selection to the rows of the items
// in the new view. Cells whose item or column is gone are dropped.
func (v *View) restoreSelection() {
	if len(v.remap) == 0 && len(v.selected) == 0 && !v.current.IsValid() {
		return
	}
	rows := make(map[any]int, v.Model.RowCount())
	for i, it := range v.Model.ViewItems() {
		key := table.RowKey(it)
		if _, ok := rows[key]; !ok {
			rows[key] = i
		}
	}
	sel := map[Cell]struct{}{}
	current := NoCell
	for _, rc := range v.remap {
		row, ok := rows[rc.key]
		if !ok {
			continue
		}
		col := -1
		switch {
		case rc.check:
			if v.Model.Checkable() {
				col = 0
			}
		default:
			col = v.Model.ColumnIndex(rc.column)
		}
		if col < 0 {
			continue
		}
		c := Cell{Row: row, Col: col}
		if rc.current {
			current = c
		} else {
			sel[c] = struct{}{}
		}
	}
	v.remap = v.remap[:0]
	v.anchor = current
	v.setSelection(sel, current)
}
