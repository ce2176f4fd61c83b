// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"strings"
	"testing"

	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/gabrielcnr/enaml-extensions/tableview"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	Age  int
}

func newTerminal(t *testing.T, profile termenv.Profile) *Terminal {
	items := table.SliceOf[*person]{{"A", 1}, {"Bob", -22}}
	name := table.NewColumn(table.Field("Name")).SetSize(table.SizeContent)
	age := table.NewColumn(table.Field("Age")).SetStyleFunc(table.NegativeRed)
	v := tableview.NewView(table.NewModel([]*table.Column{name, age}, items))
	v.Sizer = tableview.Sizer{SampleRows: 100, MinWidth: 4, Padding: 1}
	return New(v, profile)
}

func render(t *testing.T, term *Terminal, first, n int) string {
	var b strings.Builder
	require.NoError(t, term.Render(&b, first, n))
	return b.String()
}

func TestRender(t *testing.T) {
	term := newTerminal(t, termenv.Ascii)
	assert.Equal(t, 5, term.Width(0))
	assert.Equal(t, 3, term.Width(1))
	assert.Equal(t, 0, term.Width(2))

	want := "Name  │ Age\n" +
		"──────┼────\n" +
		"A     │   1\n" +
		"Bob   │ -22\n"
	assert.Equal(t, want, render(t, term, 0, 0))
	assert.Equal(t, "Name  │ Age\n──────┼────\nBob   │ -22\n", render(t, term, 1, 5))

	require.NoError(t, term.View.Select(tableview.Cell{Row: 1, Col: 1}, tableview.SelectOne))
	out := render(t, term, 0, 0)
	assert.True(t, strings.HasSuffix(out, "Count: 1   Average: -22   Sum: -22   CountNumbers: 1   Min: -22   Max: -22\n"), out)
}

func TestRenderReset(t *testing.T) {
	term := newTerminal(t, termenv.Ascii)
	m := term.View.Model
	require.NoError(t, m.Sort(1, true))
	out := render(t, term, 0, 0)
	assert.Contains(t, out, "Age ▼")
	assert.Less(t, strings.Index(out, "A "), strings.Index(out, "Bob"))

	require.NoError(t, m.SetCheckable(true))
	m.Check(m.Item(0))
	assert.Equal(t, 3, term.Width(0))
	out = render(t, term, 0, 0)
	assert.Contains(t, out, "[x] │ A")
	assert.Contains(t, out, "[ ] │ Bob")
}

func TestRenderStyles(t *testing.T) {
	term := newTerminal(t, termenv.ANSI)
	lines := strings.Split(render(t, term, 0, 0), "\n")
	assert.NotContains(t, lines[2], "\x1b[")
	assert.Contains(t, lines[3], "\x1b[")
}

func TestInspect(t *testing.T) {
	term := newTerminal(t, termenv.Ascii)
	s, err := term.Inspect(tableview.Cell{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Contains(t, s, "column: Age\n")
	assert.Contains(t, s, "value: -22\n")
	assert.Contains(t, s, "tooltip: -22\n")
	assert.Contains(t, s, "style: color=")

	_, err = term.Inspect(tableview.Cell{Row: 5, Col: 0})
	assert.ErrorIs(t, err, table.ErrIndex)
}
