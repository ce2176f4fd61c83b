// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"
	"reflect"
	"slices"
)

// Changes are the differences between two snapshots of a frame.
type Changes struct {

	// Reshaped is whether the number of rows or the column names
	// differ, in which case Rows and Columns are nil.
	Reshaped bool

	// Rows are the indexes of the rows with changed values, in order.
	Rows []int

	// Columns are the names of the columns with changed values, in
	// column order.
	Columns []string
}

// IsEmpty returns whether there are no changes.
func (ch *Changes) IsEmpty() bool {
	return !ch.Reshaped && len(ch.Rows) == 0
}

// Diff returns the changes from the old to the new frame. A nil old
// frame is reshaped.
func Diff(old, cur *Frame) *Changes {
	if old == nil || cur == nil || old.rows != cur.rows || !slices.Equal(old.ColumnNames(), cur.ColumnNames()) {
		return &Changes{Reshaped: true}
	}
	ch := &Changes{}
	rows := make([]bool, cur.rows)
	for ci, c := range cur.Columns {
		oc := old.Columns[ci]
		changed := false
		for ri, v := range c.Values {
			if !sameValue(oc.Values[ri], v) {
				rows[ri] = true
				changed = true
			}
		}
		if changed {
			ch.Columns = append(ch.Columns, c.Name)
		}
	}
	for ri, changed := range rows {
		if changed {
			ch.Rows = append(ch.Rows, ri)
		}
	}
	return ch
}

// sameValue returns whether frame values a and b are equal,
// with NaN equal to NaN.
func sameValue(a, b any) bool {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		return af == bf || (math.IsNaN(af) && math.IsNaN(bf))
	}
	return reflect.DeepEqual(a, b)
}
