// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"log/slog"
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
)

// CheckStates are the check states of cells.
type CheckStates int32

const (
	// NoCheck is the state of cells outside of the check column.
	NoCheck CheckStates = iota
	Unchecked
	Checked
)

func (cs CheckStates) String() string {
	switch cs {
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	}
	return "none"
}

// Keyer is implemented by row items that define their own identity
// for checked items and selection, such as a database id.
type Keyer interface {
	RowKey() any
}

// pointerKey is the identity of reference items that are not comparable.
type pointerKey struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

// RowKey returns the identity of the given item: its [Keyer.RowKey],
// the item itself if it is comparable (so pointers are identified by
// address and values by equality), or the address of maps, slices and
// functions. Other items are identified by their Go syntax representation.
func RowKey(item any) any {
	if k, ok := item.(Keyer); ok {
		return k.RowKey()
	}
	rv := reflect.ValueOf(item)
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Func:
		return pointerKey{typ: rv.Type(), ptr: rv.Pointer()}
	case reflect.Slice:
		return pointerKey{typ: rv.Type(), ptr: rv.Pointer(), n: rv.Len()}
	}
	if rv.Comparable() {
		return item
	}
	return fmt.Sprintf("%T %#v", item, item)
}

// Checkable returns whether the model has a check column.
func (m *Model) Checkable() bool {
	return m.checkable
}

// SetCheckable sets whether the model has a check column at view column 0.
func (m *Model) SetCheckable(checkable bool) error {
	if checkable == m.checkable {
		return nil
	}
	return m.reset(func() { m.checkable = checkable })
}

// IsChecked returns whether the given item is checked.
func (m *Model) IsChecked(item any) bool {
	return m.checked.Contains(RowKey(item))
}

// IsRowChecked returns whether the item of the given view row is checked.
func (m *Model) IsRowChecked(row int) bool {
	if row < 0 || row >= m.RowCount() {
		return false
	}
	return m.IsChecked(m.Item(row))
}

// CheckState returns the check state of the given view cell:
// [NoCheck] outside of the check column.
func (m *Model) CheckState(row, col int) CheckStates {
	if !m.IsCheckColumn(col) || row < 0 || row >= m.RowCount() {
		return NoCheck
	}
	if m.IsRowChecked(row) {
		return Checked
	}
	return Unchecked
}

// CheckedCount returns the number of checked items.
func (m *Model) CheckedCount() int {
	return m.checked.Cardinality()
}

// CheckedItems returns the checked items in the order of the items.
// Checked items that are no longer among the items are not included.
func (m *Model) CheckedItems() []any {
	var its []any
	if m.checked.Cardinality() == 0 {
		return its
	}
	for i := range m.items.Len() {
		it := m.items.At(i)
		if m.IsChecked(it) {
			its = append(its, it)
		}
	}
	return its
}

// Check checks the given items.
func (m *Model) Check(items ...any) {
	var changed []any
	for _, it := range items {
		if m.checked.Add(RowKey(it)) {
			changed = append(changed, it)
		}
	}
	m.checkedChanged(changed)
}

// Uncheck unchecks the given items. Items that are not checked are ignored.
func (m *Model) Uncheck(items ...any) {
	var changed []any
	for _, it := range items {
		key := RowKey(it)
		if m.checked.Contains(key) {
			m.checked.Remove(key)
			changed = append(changed, it)
		}
	}
	m.checkedChanged(changed)
}

// Toggle toggles the check state of the given item,
// returning whether it is now checked.
func (m *Model) Toggle(item any) bool {
	if m.IsChecked(item) {
		m.Uncheck(item)
		return false
	}
	m.Check(item)
	return true
}

// SetCheckState sets the check state of the item of the given view row.
func (m *Model) SetCheckState(row int, state CheckStates) error {
	if row < 0 || row >= m.RowCount() {
		return fmt.Errorf("%w: row %d of %d", ErrIndex, row, m.RowCount())
	}
	if state == Checked {
		m.Check(m.Item(row))
	} else {
		m.Uncheck(m.Item(row))
	}
	return nil
}

// SetCheckedItems replaces the checked items with the given items, which
// should be a mapset.Set[any]. Any other collection, such as a slice or
// [Items], is converted to a set with a warning; nil unchecks everything.
func (m *Model) SetCheckedItems(items any) {
	var list []any
	switch x := items.(type) {
	case nil:
	case mapset.Set[any]:
		list = x.ToSlice()
	default:
		its, ok := ItemsOf(items)
		if !ok {
			its = Slice{items}
		}
		slog.Warn("table: checked items are not a set; converting", "type", fmt.Sprintf("%T", items))
		list = ItemSlice(its)
	}
	old := m.checked
	m.checked = mapset.NewThreadUnsafeSet[any]()
	for _, it := range list {
		m.checked.Add(RowKey(it))
	}
	if old.Equal(m.checked) {
		return
	}
	var changed []any
	diff := old.SymmetricDifference(m.checked)
	for i := range m.items.Len() {
		it := m.items.At(i)
		if diff.Contains(RowKey(it)) {
			changed = append(changed, it)
		}
	}
	m.checkedChanged(changed)
}

func (m *Model) checkedChanged(items []any) {
	if len(items) == 0 {
		return
	}
	m.send(&Event{Type: CheckedChanged, Items: items})
}
