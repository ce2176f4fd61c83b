// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func newPeopleModel() (*Model, SliceOf[*person]) {
	items := people()
	cols := []*Column{
		NewColumn(Field("Name")),
		NewColumn(Field("Age")),
		NewColumn(Field("Score")),
	}
	return NewModel(cols, items), items
}

// recorder records the events of a model, checking that
// the model is consistent whenever an event arrives.
type recorder struct {
	types []Events
	last  *Event
}

func record(t *testing.T, m *Model) *recorder {
	rc := &recorder{}
	for _, typ := range []Events{ResetBegin, ResetEnd, DataChanged, CheckedChanged} {
		m.OnEvent(typ, func(ev *Event) {
			rc.types = append(rc.types, ev.Type)
			rc.last = ev
			assert.Same(t, m, ev.Model)
			if ev.Type == ResetEnd {
				for r := range m.RowCount() {
					_, err := m.DisplayValue(r, m.ColumnCount()-1)
					assert.NoError(t, err)
				}
			}
		})
	}
	return rc
}

func names(t *testing.T, m *Model) []string {
	t.Helper()
	var ns []string
	col := m.ColumnIndex(m.Columns()[0])
	for r := range m.RowCount() {
		s, err := m.DisplayValue(r, col)
		require.NoError(t, err)
		ns = append(ns, s)
	}
	return ns
}

func TestModelCounts(t *testing.T) {
	m, items := newPeopleModel()
	assert.Equal(t, 4, m.RowCount())
	assert.Equal(t, 3, m.ColumnCount())
	assert.Same(t, items[2], m.Item(2))
	assert.Nil(t, m.Item(4))

	require.NoError(t, m.SetCheckable(true))
	assert.Equal(t, 4, m.ColumnCount())
	assert.True(t, m.IsCheckColumn(0))
	assert.Nil(t, m.Column(0))
	assert.Same(t, m.Columns()[0], m.Column(1))
	assert.Equal(t, 2, m.ColumnIndex(m.Columns()[1]))
	assert.Equal(t, -1, m.ColumnIndex(NewColumn(Field("Name"))))
	assert.Equal(t, "", m.HeaderTitle(0))
	assert.Equal(t, "Name", m.HeaderTitle(1))

	_, err := m.Value(0, 9)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = m.Value(9, 1)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestModelCellQueries(t *testing.T) {
	m, _ := newPeopleModel()
	require.NoError(t, m.SetCheckable(true))

	v, err := m.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 45, v)
	v, err = m.Value(1, 0)
	require.NoError(t, err)
	assert.Nil(t, v)

	s, err := m.DisplayValue(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "George", s)

	al, err := m.Align(0, 2)
	require.NoError(t, err)
	assert.Equal(t, AlignRight, al)
	al, err = m.Align(0, 1)
	require.NoError(t, err)
	assert.Equal(t, AlignLeft, al)
	al, err = m.Align(0, 0)
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, al)
	assert.Equal(t, AlignRight, m.HeaderAlign(2))
	assert.Equal(t, AlignLeft, m.HeaderAlign(1))

	tip, err := m.Tooltip(0, 1)
	require.NoError(t, err)
	assert.Equal(t, `"George"`, tip)

	m.Columns()[2].SetStyleFunc(NegativeRed)
	st, err := m.Style(2, 3)
	require.NoError(t, err)
	assert.Equal(t, colornames.Red, st.Color)
	st, err = m.Style(2, 1)
	require.NoError(t, err)
	assert.Nil(t, st)

	m.Columns()[0].SetImageFunc(func(ctx *CellContext) string { return ctx.Value() + ".png" })
	img, err := m.Image(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ringo.png", img)

	ctx, err := m.CellContext(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 41, ctx.RawValue())
	assert.Equal(t, "41", ctx.Value())
}

func TestModelFilterAndSort(t *testing.T) {
	m, items := newPeopleModel()
	rc := record(t, m)
	age := m.Columns()[1]

	require.NoError(t, m.SetFilter(age, ">35"))
	assert.Equal(t, []Events{ResetBegin, ResetEnd}, rc.types)
	assert.Equal(t, []string{"Ringo", "John", "Paul"}, names(t, m))
	assert.True(t, m.HasFilters())
	assert.Equal(t, ">35", m.Filter(age).Expr)

	st := m.HeaderStyle(1)
	require.NotNil(t, st)
	assert.Equal(t, colornames.Red, st.Color)
	assert.True(t, ParseFont(st.Font).Bold)
	assert.Nil(t, m.HeaderStyle(0))

	require.NoError(t, m.Sort(1, false))
	assert.Equal(t, []string{"John", "Paul", "Ringo"}, names(t, m))
	col, desc, ok := m.SortKey()
	assert.True(t, ok)
	assert.Equal(t, 1, col)
	assert.False(t, desc)

	// the sort is reapplied when the filter changes
	require.NoError(t, m.ClearFilters())
	assert.Equal(t, []string{"George", "John", "Paul", "Ringo"}, names(t, m))
	assert.Nil(t, m.HeaderStyle(1))

	require.NoError(t, m.Sort(1, true))
	assert.Equal(t, []string{"Ringo", "Paul", "John", "George"}, names(t, m))

	// sorting then filtering keeps the relative order
	require.NoError(t, m.SetFilter(m.Columns()[0], "o"))
	assert.Equal(t, []string{"Ringo", "John", "George"}, names(t, m))

	require.NoError(t, m.ClearSort())
	assert.Equal(t, []string{"George", "Ringo", "John"}, names(t, m))
	_, _, ok = m.SortKey()
	assert.False(t, ok)

	// the sort is reapplied to new items
	require.NoError(t, m.ClearFilters())
	require.NoError(t, m.Sort(1, false))
	more := append(SliceOf[*person]{{Name: "Brian", Age: 35}}, items...)
	require.NoError(t, m.SetItems(more))
	assert.Equal(t, []string{"George", "Brian", "John", "Paul", "Ringo"}, names(t, m))

	err := m.SetFilter(NewColumn(Field("Name")), "x")
	var nf *ColumnNotFoundError
	assert.ErrorAs(t, err, &nf)
	err = m.SetFilter(nil, "x")
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, 5, m.RowCount())
}

func TestModelSortNaN(t *testing.T) {
	m, _ := newPeopleModel()
	for range 3 {
		require.NoError(t, m.Sort(2, false))
		assert.Equal(t, []string{"Ringo", "John", "George", "Paul"}, names(t, m))
	}
	require.NoError(t, m.Sort(2, true))
	assert.Equal(t, []string{"Paul", "George", "John", "Ringo"}, names(t, m))
}

func TestModelSortStable(t *testing.T) {
	items := Slice{
		[]any{"a", 2}, []any{"b", 1}, []any{"c", 2}, []any{"d", 1},
	}
	cols, err := GenerateColumns(items, GenerateOptions{})
	require.NoError(t, err)
	m := NewModel(cols, items)
	require.NoError(t, m.Sort(1, false))
	assert.Equal(t, []string{"b", "d", "a", "c"}, names(t, m))
	require.NoError(t, m.Sort(1, false))
	assert.Equal(t, []string{"b", "d", "a", "c"}, names(t, m))
}

func TestModelSetColumns(t *testing.T) {
	m, _ := newPeopleModel()
	name, age, score := m.Columns()[0], m.Columns()[1], m.Columns()[2]
	require.NoError(t, m.SetFilter(age, ">35"))
	require.NoError(t, m.Sort(2, false))

	require.NoError(t, m.SetColumns([]*Column{name, score}))
	assert.False(t, m.HasFilters())
	assert.Equal(t, 4, m.RowCount())
	col, _, ok := m.SortKey()
	assert.True(t, ok)
	assert.Equal(t, 1, col)

	require.NoError(t, m.SetColumns([]*Column{name}))
	_, _, ok = m.SortKey()
	assert.False(t, ok)

	require.NoError(t, m.SetColumns([]*Column{name, age, score}))
	require.NoError(t, m.MoveColumn(0, 2))
	assert.Equal(t, []*Column{age, score, name}, m.Columns())
	assert.ErrorIs(t, m.MoveColumn(0, 3), ErrIndex)
}

func TestModelIngest(t *testing.T) {
	m, items := newPeopleModel()
	require.NoError(t, m.SetCheckable(true))
	rc := record(t, m)

	items[1].Age = 46
	require.NoError(t, m.Ingest(Update{Rows: []int{1}, Cols: []int{1}}))
	assert.Equal(t, []Events{DataChanged}, rc.types)
	assert.Equal(t, []int{1}, rc.last.Rows)
	assert.Equal(t, []int{2}, rc.last.Cols)
	v, err := m.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 46, v)

	rc.types = nil
	grown := append(people(), &person{Name: "Brian", Age: 35})
	require.NoError(t, m.Ingest(Update{Items: grown, Rows: []int{4}, Cols: []int{0, 1}}))
	assert.Equal(t, []Events{ResetBegin, ResetEnd}, rc.types)
	assert.Equal(t, 5, m.RowCount())

	rc.types = nil
	require.NoError(t, m.SetFilter(m.Columns()[0], "o"))
	rc.types = nil
	require.NoError(t, m.Ingest(Update{Rows: []int{0}, Cols: []int{0}}))
	assert.Equal(t, []Events{ResetBegin, ResetEnd}, rc.types)
}
