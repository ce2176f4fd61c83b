// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watch

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/gabrielcnr/enaml-extensions/base/errors"
	"github.com/gabrielcnr/enaml-extensions/frame"
	"github.com/gabrielcnr/enaml-extensions/table"
)

// Source is a tabular data source. Each call to Snapshot must return a
// new frame that the source does not modify afterwards, as it is handed
// off to the user interface goroutine.
type Source interface {
	Snapshot(ctx context.Context) (*frame.Frame, error)
}

// SourceFunc is a function implementing [Source].
type SourceFunc func(ctx context.Context) (*frame.Frame, error)

func (sf SourceFunc) Snapshot(ctx context.Context) (*frame.Frame, error) {
	return sf(ctx)
}

// CSVSource is a [Source] that reads a CSV file.
type CSVSource struct {
	Path  string
	Delim frame.Delims

	// KeyColumn is set as the [frame.Frame.KeyColumn] of the snapshots.
	KeyColumn string
}

func (cs *CSVSource) Snapshot(ctx context.Context) (*frame.Frame, error) {
	f, err := frame.OpenCSV(cs.Path, cs.Delim)
	if err != nil {
		return nil, err
	}
	f.KeyColumn = cs.KeyColumn
	return f, nil
}

// Poller takes snapshots of a [Source] at an interval, on its own
// goroutine, and hands the changes since the previous snapshot off to
// the [Dispatcher], which ingests them into the [table.Model].
type Poller struct {

	// Source is the polled source.
	Source Source

	// Model ingests the changes. It is only accessed on the main goroutine.
	Model *table.Model

	// Main runs the ingestion on the user interface goroutine.
	Main Dispatcher

	// Interval is the time between snapshots.
	Interval time.Duration

	last *frame.Frame
}

// NewPoller returns a new poller of the given source for the given model.
func NewPoller(src Source, m *table.Model, main Dispatcher, interval time.Duration) *Poller {
	return &Poller{Source: src, Model: m, Main: main, Interval: interval}
}

// Run polls the source until the context is done, and returns the
// context error. Snapshot errors are logged, and polling continues.
func (p *Poller) Run(ctx context.Context) error {
	tick := time.NewTicker(p.Interval)
	defer tick.Stop()
	for {
		if err := p.Poll(ctx); err != nil && ctx.Err() == nil {
			slog.Error("watch: snapshot failed", "err", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}
}

// Poll takes one snapshot of the source and, if it differs from the
// previous one, hands the changes off to the main goroutine.
func (p *Poller) Poll(ctx context.Context) error {
	snap, err := p.Source.Snapshot(ctx)
	if err != nil {
		return err
	}
	ch := frame.Diff(p.last, snap)
	p.last = snap
	if ch.IsEmpty() {
		return nil
	}
	m := p.Model
	p.Main.GoRunOnMain(func() {
		errors.Log(m.Ingest(ModelUpdate(m, snap, ch)))
	})
	return nil
}

// ModelUpdate returns the update of the model for the given changes of
// a snapshot. The changed columns are the columns of the model that
// index a changed frame column by name, and the columns that extract
// their values otherwise, as they may depend on any frame column.
// It must be called on the main goroutine.
func ModelUpdate(m *table.Model, snap *frame.Frame, ch *frame.Changes) table.Update {
	if ch.Reshaped {
		return table.Update{Items: snap}
	}
	var cols []int
	for i, c := range m.Columns() {
		k := c.Key()
		name, ok := k.Value().(string)
		if k.Kind() != table.IndexKey || !ok || slices.Contains(ch.Columns, name) {
			cols = append(cols, i)
		}
	}
	return table.Update{Items: snap, Rows: ch.Rows, Cols: cols}
}
