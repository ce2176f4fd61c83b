// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableview

import (
	"github.com/gabrielcnr/enaml-extensions/base/errors"
	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/mattn/go-runewidth"
)

// SizeBackend applies column widths in a rendering backend.
type SizeBackend interface {

	// ResizeToContents fits the given view column to its contents.
	ResizeToContents(col int)

	// ResizeColumn sets the width of the given view column.
	ResizeColumn(col, width int)
}

// Sizer measures the widths of columns sized by content.
type Sizer struct {

	// SampleRows is the number of leading rows whose displayed text is
	// measured. Headers are not measured.
	SampleRows int `default:"1000"`

	// MinWidth is the minimum measured width.
	MinWidth int `default:"20"`

	// Padding is added to the measured width.
	Padding int `default:"10"`

	// Measure returns the width of a displayed text; nil means
	// the terminal cell width of the text.
	Measure func(s string) int
}

// DefaultSizer returns a sizer with the default sample bound, minimum
// and padding, measuring terminal cell widths.
func DefaultSizer() Sizer {
	return Sizer{SampleRows: 1000, MinWidth: 20, Padding: 10}
}

// ContentWidth returns the width of the given view column of the model,
// measured over the displayed text of the sampled rows.
func (sz *Sizer) ContentWidth(m *table.Model, col int) int {
	measure := sz.Measure
	if measure == nil {
		measure = runewidth.StringWidth
	}
	w := sz.MinWidth
	n := min(m.RowCount(), sz.SampleRows)
	for r := range n {
		s, err := m.DisplayValue(r, col)
		if errors.Log(err) != nil {
			break
		}
		w = max(w, measure(s))
	}
	return w + sz.Padding
}

// AdjustColumnSizes applies the sizing policy of each column to the
// given backend: automatic columns are fitted by the backend, content
// columns measured by [View.Sizer], and fixed columns get their width.
func (v *View) AdjustColumnSizes(backend SizeBackend) {
	for col := range v.Model.ColumnCount() {
		c := v.Model.Column(col)
		if c == nil {
			backend.ResizeToContents(col)
			continue
		}
		switch c.Size {
		case table.SizeAuto:
			backend.ResizeToContents(col)
		case table.SizeContent:
			backend.ResizeColumn(col, v.Sizer.ContentWidth(v.Model, col))
		case table.SizeFixed:
			backend.ResizeColumn(col, c.Width)
		}
	}
}
