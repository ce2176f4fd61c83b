// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records the sizes applied to it.
type fakeBackend struct {
	fitted []int
	widths map[int]int
}

func (fb *fakeBackend) ResizeToContents(col int) { fb.fitted = append(fb.fitted, col) }

func (fb *fakeBackend) ResizeColumn(col, width int) {
	if fb.widths == nil {
		fb.widths = map[int]int{}
	}
	fb.widths[col] = width
}

func TestAdjustColumnSizes(t *testing.T) {
	items := table.SliceOf[*person]{
		{Name: strings.Repeat("x", 25), Age: 1},
		{Name: "short", Age: 2},
	}
	name := table.NewColumn(table.Field("Name")).SetSize(table.SizeContent)
	age := table.NewColumn(table.Field("Age")).SetWidth(60)
	auto := table.NewColumn(table.Field("Age"))
	m := table.NewModel([]*table.Column{name, age, auto}, items)
	require.NoError(t, m.SetCheckable(true))
	v := NewView(m)

	fb := &fakeBackend{}
	v.AdjustColumnSizes(fb)
	assert.Equal(t, []int{0, 3}, fb.fitted)
	assert.Equal(t, map[int]int{1: 35, 2: 60}, fb.widths)

	// the minimum width applies to short contents
	items[0].Name = "x"
	fb = &fakeBackend{}
	v.AdjustColumnSizes(fb)
	assert.Equal(t, 30, fb.widths[1])
}

func TestSizerSampleRows(t *testing.T) {
	items := make(table.SliceOf[*person], 50)
	for i := range items {
		items[i] = &person{Name: fmt.Sprint(i)}
	}
	name := table.NewColumn(table.Field("Name")).SetSize(table.SizeContent)
	m := table.NewModel([]*table.Column{name}, items)
	v := NewView(m)

	measured := 0
	v.Sizer = Sizer{SampleRows: 10, MinWidth: 0, Padding: 0, Measure: func(s string) int {
		measured++
		return len(s) * 7
	}}
	assert.Equal(t, 7, v.Sizer.ContentWidth(m, 0))
	assert.Equal(t, 10, measured)

	fb := &fakeBackend{}
	v.SizeBackend = fb
	require.NoError(t, m.Sort(0, true))
	assert.Equal(t, 14, fb.widths[0])
}
