// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	old := beatles(t)
	cur := old.Clone()
	assert.True(t, Diff(old, cur).IsEmpty())

	cur.SetValue(1, 1, 46)
	cur.SetValue(2, 3, "y")
	assert.Equal(t, 45, old.Value(1, 1))

	want := &Changes{Rows: []int{1, 2}, Columns: []string{"age", "note"}}
	if diff := cmp.Diff(want, Diff(old, cur)); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}

	require.NoError(t, cur.AppendRow("Paul", 41, 3.0, ""))
	assert.Equal(t, &Changes{Reshaped: true}, Diff(old, cur))
	assert.True(t, Diff(nil, cur).Reshaped)

	cur = old.Clone()
	cur.Columns[3].Name = "comment"
	assert.True(t, Diff(old, cur).Reshaped)
}
