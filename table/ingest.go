// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// Update is a change of the items computed by a background watcher
// against its previous snapshot.
type Update struct {

	// Items is the new snapshot of the items. Nil means that the current
	// items were changed in place.
	Items Items

	// Rows are the indexes of the changed items.
	Rows []int

	// Cols are the indexes of the changed columns in [Model.Columns].
	Cols []int
}

// Ingest applies the given update. It must be called on the user
// interface goroutine. When the number of items is unchanged and no
// filter or sort is active, the rows of the view are unchanged, and a
// [DataChanged] event is sent for the changed cells. Otherwise the view
// is rederived with a reset.
func (m *Model) Ingest(u Update) error {
	items := u.Items
	if items == nil {
		items = m.items
	}
	if items.Len() != m.items.Len() || m.filters.Len() > 0 || m.sorted {
		return m.SetItems(items)
	}
	m.items = items
	if len(u.Rows) == 0 || len(u.Cols) == 0 {
		return nil
	}
	off := m.columnOffset()
	cols := make([]int, 0, len(u.Cols))
	for _, c := range u.Cols {
		if c >= 0 && c < len(m.columns) {
			cols = append(cols, c+off)
		}
	}
	rows := make([]int, 0, len(u.Rows))
	for _, r := range u.Rows {
		if r >= 0 && r < items.Len() {
			rows = append(rows, r)
		}
	}
	m.send(&Event{Type: DataChanged, Rows: rows, Cols: cols})
	return nil
}
