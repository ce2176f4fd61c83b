// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

type person struct {
	Name  string
	Age   int
	Score float64
}

func (p person) Initials() string { return p.Name[:1] }

func TestNewColumnTitle(t *testing.T) {
	assert.Equal(t, "Name", NewColumn(Field("Name")).Title)
	assert.Equal(t, "Unit Price", NewColumn(Field("UnitPrice")).Title)
	assert.Equal(t, "Unit Price", NewColumn(Index("unit_price")).Title)
	assert.Equal(t, "2", NewColumn(Index(2)).Title)
	assert.Equal(t, "", NewColumn(Getter(func(item any) (any, error) { return item, nil })).Title)
	assert.Equal(t, "Total", NewColumn(Field("X")).SetTitle("Total").Title)
}

func TestColumnValue(t *testing.T) {
	p := &person{Name: "George", Age: 30}

	v, err := NewColumn(Field("Name")).Value(p)
	require.NoError(t, err)
	assert.Equal(t, "George", v)

	v, err = NewColumn(Field("Initials")).Value(p)
	require.NoError(t, err)
	assert.Equal(t, "G", v)

	v, err = NewColumn(Index("name")).Value(map[string]any{"name": "Ringo"})
	require.NoError(t, err)
	assert.Equal(t, "Ringo", v)

	v, err = NewColumn(Index(1)).Value([]any{"a", 2})
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = NewColumn(Getter(func(item any) (any, error) {
		return item.(*person).Age * 2, nil
	})).Value(p)
	require.NoError(t, err)
	assert.Equal(t, 60, v)

	getErr := errors.New("boom")
	_, err = NewColumn(Getter(func(item any) (any, error) { return nil, getErr })).Value(p)
	assert.ErrorIs(t, err, getErr)
}

func TestColumnLookupErrors(t *testing.T) {
	var le *LookupError
	_, err := NewColumn(Field("Missing")).Value(&person{})
	assert.ErrorAs(t, err, &le)
	assert.Equal(t, FieldKey, le.Key.Kind())

	_, err = NewColumn(Index("missing")).Value(map[string]any{"name": "x"})
	assert.ErrorAs(t, err, &le)

	_, err = NewColumn(Index(5)).Value([]int{1, 2})
	assert.ErrorAs(t, err, &le)

	_, err = NewColumn(Index("name")).Value(42)
	assert.ErrorAs(t, err, &le)

	_, err = (&Column{}).Value(&person{})
	assert.ErrorIs(t, err, ErrNoKey)
}

func TestColumnDisplayValue(t *testing.T) {
	col := NewColumn(Index(0))

	s, err := col.DisplayValue([]any{nil})
	require.NoError(t, err)
	assert.Equal(t, "", s)

	var np *int
	s, err = col.DisplayValue([]any{np})
	require.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = col.DisplayValue([]any{12})
	require.NoError(t, err)
	assert.Equal(t, "12", s)

	col.SetFormat("%.2f")
	s, err = col.DisplayValue([]any{3.14159})
	require.NoError(t, err)
	assert.Equal(t, "3.14", s)

	var fe *FormatError
	_, err = col.DisplayValue([]any{"foo"})
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, "%.2f", fe.Format)

	col.SetFormat("%d").SetThousands(true)
	s, err = col.DisplayValue([]any{1234567})
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", s)

	col.SetFormatFunc(func(v any) string { return "<" + v.(string) + ">" })
	s, err = col.DisplayValue([]any{"x"})
	require.NoError(t, err)
	assert.Equal(t, "<x>", s)
}

func TestColumnAlign(t *testing.T) {
	col := NewColumn(Index(0))
	for _, test := range []struct {
		v    any
		want Aligns
	}{
		{1, AlignRight},
		{2.5, AlignRight},
		{"a", AlignLeft},
		{true, AlignLeft},
		{time.Now(), AlignCenter},
		{nil, AlignLeft},
	} {
		al, err := col.AlignFor([]any{test.v})
		require.NoError(t, err)
		assert.Equal(t, test.want, al, "%v", test.v)
	}

	col.SetAlign(AlignCenter)
	al, err := col.AlignFor([]any{1})
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, al)
}

func TestColumnTooltipStyleImage(t *testing.T) {
	col := NewColumn(Field("Age"))
	p := &person{Name: "George", Age: -3}

	assert.Equal(t, "-3", col.TooltipFor(NewCellContext(col, p)))
	name := NewColumn(Field("Name"))
	assert.Equal(t, `"George"`, name.TooltipFor(NewCellContext(name, p)))

	col.SetTooltip("age in years")
	assert.Equal(t, "age in years", col.TooltipFor(NewCellContext(col, p)))
	col.SetTooltipFunc(func(ctx *CellContext) string { return "value " + ctx.Value() })
	assert.Equal(t, "value -3", col.TooltipFor(NewCellContext(col, p)))

	assert.Nil(t, col.StyleFor(NewCellContext(col, p)))
	col.SetStyleFunc(NegativeRed)
	st := col.StyleFor(NewCellContext(col, p))
	require.NotNil(t, st)
	assert.Equal(t, colornames.Red, st.Color)
	assert.Equal(t, &CellStyle{}, col.StyleFor(NewCellContext(col, &person{Age: 1})))

	assert.Equal(t, "", col.ImageFor(NewCellContext(col, p)))
	col.SetImageFunc(func(ctx *CellContext) string { return "icons/" + ctx.Item().(*person).Name + ".png" })
	assert.Equal(t, "icons/George.png", col.ImageFor(NewCellContext(col, p)))

	missing := NewColumn(Field("Missing"))
	ctx := NewCellContext(missing, p)
	assert.Equal(t, "", missing.TooltipFor(ctx))
	assert.Error(t, ctx.Err())
}

func TestParseFont(t *testing.T) {
	f := ParseFont("bold italic 12pt Courier New")
	assert.Equal(t, Font{Family: "Courier New", Bold: true, Italic: true, SizePt: 12}, f)

	f = ParseFont("underline 14px")
	assert.Equal(t, Font{Underline: true, SizePx: 14}, f)

	assert.Equal(t, Font{Family: "Arial"}, ParseFont("Arial"))
}

func TestParseAlignSize(t *testing.T) {
	al, ok := ParseAlign("Right")
	assert.True(t, ok)
	assert.Equal(t, AlignRight, al)
	_, ok = ParseAlign("diagonal")
	assert.False(t, ok)

	sz, ok := ParseSize("just")
	assert.True(t, ok)
	assert.Equal(t, SizeContent, sz)
	assert.Equal(t, "fixed", SizeFixed.String())
}

func TestFindColumn(t *testing.T) {
	cols := []*Column{NewColumn(Field("Name")), NewColumn(Field("Age"))}

	c, err := FindColumn(cols, "Age")
	require.NoError(t, err)
	assert.Same(t, cols[1], c)

	c, err = FindColumn(cols, "name")
	require.NoError(t, err)
	assert.Same(t, cols[0], c)

	var nf *ColumnNotFoundError
	_, err = FindColumn(cols, "Nme")
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Name", nf.Suggestion)
	assert.Contains(t, err.Error(), "did you mean")

	_, err = FindColumn(cols, "Zzzz")
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "", nf.Suggestion)
}
