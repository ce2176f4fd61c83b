// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/gabrielcnr/enaml-extensions/frame"
	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher(t *testing.T) {
	defer leaktest.CheckTimeout(t, 10*time.Second)()

	path := filepath.Join(t.TempDir(), "band.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,age\nGeorge,30\nRingo,45\n"), 0o666))

	cols := []*table.Column{table.NewColumn(table.Index("name")), table.NewColumn(table.Index("age"))}
	m := table.NewModel(cols, table.Slice(nil))
	mq := NewMainQueue()
	ctx, cancel := context.WithCancel(context.Background())
	loopc := make(chan error)
	go func() { loopc <- mq.MainLoop(ctx) }()

	fw := NewFileWatcher(path, frame.Comma, m, mq)
	fw.Lag = 10 * time.Millisecond
	assert.Equal(t, path, fw.Path())
	errc := make(chan error)
	go func() { errc <- fw.Run(ctx) }()

	rows := func() int {
		n := -1
		if mq.RunOnMain(func() { n = m.RowCount() }) != nil {
			return -1
		}
		return n
	}
	assert.Eventually(t, func() bool { return rows() == 2 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("name,age\nGeorge,30\nRingo,45\nJohn,40\n"), 0o666))
	assert.Eventually(t, func() bool { return rows() == 3 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.ErrorIs(t, <-loopc, context.Canceled)
}
