// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gabrielcnr/enaml-extensions/frame"
	"github.com/gabrielcnr/enaml-extensions/table"
)

// FileWatcher reloads a CSV file into a [table.Model] whenever the file
// is written, using a [Poller] over a [CSVSource] that is polled on
// file system notifications instead of at an interval.
type FileWatcher struct {
	*Poller

	// Lag is the minimum time between two reloads; notifications
	// within the lag of the last reload are coalesced into one.
	Lag time.Duration
}

// NewFileWatcher returns a new file watcher of the given CSV file.
func NewFileWatcher(path string, delim frame.Delims, m *table.Model, main Dispatcher) *FileWatcher {
	src := &CSVSource{Path: filepath.Clean(path), Delim: delim}
	return &FileWatcher{Poller: NewPoller(src, m, main, 0), Lag: 100 * time.Millisecond}
}

// Path returns the watched path.
func (fw *FileWatcher) Path() string {
	return fw.Source.(*CSVSource).Path
}

// Run loads the file, then reloads it on every change until the
// context is done, and returns the context error. The directory of
// the file is watched, so that files replaced by a rename are followed.
func (fw *FileWatcher) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	path := fw.Path()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	if err := fw.Poll(ctx); err != nil {
		slog.Error("watch: load failed", "path", path, "err", err)
	}

	// pending reload after the lag
	var pending <-chan time.Time
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if pending != nil {
				continue
			}
			wait := fw.Lag - time.Since(last)
			pending = time.After(max(wait, 0))
		case <-pending:
			pending = nil
			last = time.Now()
			if err := fw.Poll(ctx); err != nil {
				slog.Warn("watch: reload failed", "path", path, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch: file watcher error", "path", path, "err", err)
		}
	}
}
