// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableview

import (
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard receives text copied from a view.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard is the [Clipboard] of the operating system.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// CopyText returns the displayed values of the selected cells as tab
// separated values: one line per row with selected cells in ascending
// row order, and the values of each row in ascending column order.
// Only values containing a tab, a quote or a line break are quoted.
// The check column is not copied.
func (v *View) CopyText() (string, error) {
	var b strings.Builder
	row := -1
	for _, c := range v.SelectedCells() {
		if v.Model.IsCheckColumn(c.Col) {
			continue
		}
		if c.Row != row {
			if row >= 0 {
				b.WriteByte('\n')
			}
			row = c.Row
		} else {
			b.WriteByte('\t')
		}
		s, err := v.Model.DisplayValue(c.Row, c.Col)
		if err != nil {
			return "", err
		}
		writeField(&b, s)
	}
	if row >= 0 {
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// writeField writes the given value, quoted with doubled quotes
// when it contains a tab, a quote or a line break.
func writeField(b *strings.Builder, s string) {
	if !strings.ContainsAny(s, "\t\"\r\n") {
		b.WriteString(s)
		return
	}
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(s, `"`, `""`))
	b.WriteByte('"')
}

// Copy writes the [View.CopyText] of a non-empty selection to the clipboard.
func (v *View) Copy() error {
	if len(v.selected) == 0 {
		return nil
	}
	text, err := v.CopyText()
	if err != nil {
		return err
	}
	return v.Clipboard.WriteText(text)
}
