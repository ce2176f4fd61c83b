// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render renders table views as text for terminals, with
// the cell styles, alignment, selection and check states of the
// view, sized by the column sizing policies of the view.
package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/gabrielcnr/enaml-extensions/base/errors"
	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/gabrielcnr/enaml-extensions/tableview"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Separator separates the columns.
const Separator = " │ "

// Terminal renders a [tableview.View] as text, and implements
// [tableview.SizeBackend] with widths in terminal cells.
type Terminal struct {

	// View is the rendered view.
	View *tableview.View

	// Profile is the color profile of the terminal; [termenv.Ascii]
	// renders plain text.
	Profile termenv.Profile

	// MaxWidth is the maximum width of automatically sized columns.
	MaxWidth int

	widths []int
}

// New returns a new terminal renderer of the given view that is set as
// its size backend, with column widths adjusted to the current data.
func New(v *tableview.View, profile termenv.Profile) *Terminal {
	t := &Terminal{View: v, Profile: profile, MaxWidth: 40}
	v.SizeBackend = t
	v.AdjustColumnSizes(t)
	return t
}

func (t *Terminal) grow(col int) {
	for len(t.widths) <= col {
		t.widths = append(t.widths, 0)
	}
}

// ResizeToContents fits the column to the width of its header and
// displayed values, up to [Terminal.MaxWidth].
func (t *Terminal) ResizeToContents(col int) {
	m := t.View.Model
	w := runewidth.StringWidth(t.title(col))
	for row := range m.RowCount() {
		w = max(w, runewidth.StringWidth(t.text(row, col)))
	}
	t.ResizeColumn(col, min(w, t.MaxWidth))
}

// ResizeColumn sets the width of the column.
func (t *Terminal) ResizeColumn(col, width int) {
	t.grow(col)
	t.widths[col] = width
}

// Width returns the width of the column.
func (t *Terminal) Width(col int) int {
	if col < 0 || col >= len(t.widths) {
		return 0
	}
	return t.widths[col]
}

// title returns the header of the column, with the sort direction.
func (t *Terminal) title(col int) string {
	m := t.View.Model
	if m.IsCheckColumn(col) {
		return "✓"
	}
	title := m.HeaderTitle(col)
	if sc, desc, ok := m.SortKey(); ok && sc == col {
		if desc {
			return title + " ▼"
		}
		return title + " ▲"
	}
	return title
}

// text returns the displayed text of the cell.
func (t *Terminal) text(row, col int) string {
	m := t.View.Model
	switch m.CheckState(row, col) {
	case table.Checked:
		return "[x]"
	case table.Unchecked:
		return "[ ]"
	}
	s, err := m.DisplayValue(row, col)
	if err != nil {
		return "#ERR"
	}
	return strings.ReplaceAll(s, "\n", " ")
}

// Render writes the header and the rows from the given first row,
// at most n of them, or all of them if n <= 0, followed by the
// summary of the selection if it is not empty.
func (t *Terminal) Render(w io.Writer, first, n int) error {
	m := t.View.Model
	ncol := m.ColumnCount()
	t.grow(ncol - 1)
	var b strings.Builder

	cells := make([]string, ncol)
	rules := make([]string, ncol)
	for col := range ncol {
		cells[col] = t.styled(t.fit(t.title(col), col, m.HeaderAlign(col)), m.HeaderStyle(col), false)
		rules[col] = strings.Repeat("─", t.widths[col])
	}
	b.WriteString(strings.Join(cells, Separator) + "\n")
	b.WriteString(strings.Join(rules, "─┼─") + "\n")

	last := m.RowCount()
	if n > 0 {
		last = min(last, first+n)
	}
	for row := max(first, 0); row < last; row++ {
		for col := range ncol {
			align, err := m.Align(row, col)
			errors.Log(err)
			style, err := m.Style(row, col)
			errors.Log(err)
			sel := t.View.IsSelected(tableview.Cell{Row: row, Col: col})
			cells[col] = t.styled(t.fit(t.text(row, col), col, align), style, sel)
		}
		b.WriteString(strings.Join(cells, Separator) + "\n")
	}
	if len(t.View.SelectedCells()) > 0 {
		b.WriteString(t.View.Summary().String() + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// fit truncates or pads the text to the width of the column.
func (t *Terminal) fit(s string, col int, align table.Aligns) string {
	w := t.widths[col]
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "…")
	}
	switch align {
	case table.AlignRight:
		return runewidth.FillLeft(s, w)
	case table.AlignCenter:
		pad := w - runewidth.StringWidth(s)
		return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
	}
	return runewidth.FillRight(s, w)
}

// styled applies the cell style to the text, reversing the colors of
// selected cells.
func (t *Terminal) styled(s string, cs *table.CellStyle, selected bool) string {
	st := t.Profile.String(s)
	if cs != nil {
		if cs.Color != nil {
			st = st.Foreground(t.color(cs.Color))
		}
		if cs.Background != nil {
			st = st.Background(t.color(cs.Background))
		}
		f := table.ParseFont(cs.Font)
		if f.Bold {
			st = st.Bold()
		}
		if f.Italic {
			st = st.Italic()
		}
		if f.Underline {
			st = st.Underline()
		}
	}
	if selected {
		st = st.Reverse()
	}
	return st.String()
}

func (t *Terminal) color(c color.Color) termenv.Color {
	return t.Profile.FromColor(c)
}

// Inspect returns a description of the cell with its value, tooltip,
// image and style, for terminals that cannot show tooltips or images.
func (t *Terminal) Inspect(c tableview.Cell) (string, error) {
	m := t.View.Model
	dc, err := t.View.CellInfo(c)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "cell %v\n", c)
	if m.IsCheckColumn(c.Col) {
		fmt.Fprintf(&b, "check: %v\n", m.CheckState(c.Row, c.Col))
		return b.String(), nil
	}
	fmt.Fprintf(&b, "column: %s\nvalue: %s\nraw: %#v\n", m.HeaderTitle(c.Col), dc.Value, dc.RawValue)
	if tip, err := m.Tooltip(c.Row, c.Col); err == nil && tip != "" {
		fmt.Fprintf(&b, "tooltip: %s\n", tip)
	}
	if img, err := m.Image(c.Row, c.Col); err == nil && img != "" {
		fmt.Fprintf(&b, "image: %s\n", img)
	}
	if st, err := m.Style(c.Row, c.Col); err == nil && st != nil {
		fmt.Fprintf(&b, "style: color=%v background=%v font=%q\n", st.Color, st.Background, st.Font)
	}
	return b.String(), nil
}
