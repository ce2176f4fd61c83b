// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gabrielcnr/enaml-extensions/base/errors"
	"github.com/gabrielcnr/enaml-extensions/frame"
	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/gabrielcnr/enaml-extensions/watch"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type watchParams struct {
	poll bool
	rows int
}

var configuredWatchParams watchParams

var watchCommand = &cobra.Command{
	Use:   "watch <file.csv>",
	Short: "Show a CSV file as a table that follows changes of the file",
	Long: `Show a CSV file as a table that is redrawn whenever the file changes,
until interrupted. Changes are detected by file system notifications, or by
polling at the configured watch interval with --poll.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := watchFile(cmd, args[0], &configuredWatchParams); err != nil {
			return fail(cmd, err)
		}
		return nil
	},
}

func init() {
	f := watchCommand.Flags()
	f.BoolVar(&configuredWatchParams.poll, "poll", false, "poll the file at the watch interval instead of using notifications")
	f.IntVarP(&configuredWatchParams.rows, "rows", "n", 0, "number of rows to show; 0 for all")
}

func watchFile(cmd *cobra.Command, path string, p *watchParams) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	prof, err := profile()
	if err != nil {
		return err
	}
	interval, lag, err := cfg.Intervals()
	if err != nil {
		return err
	}
	delim, err := cfg.Delims()
	if err != nil {
		return err
	}
	f, err := frame.OpenCSV(path, delim)
	if err != nil {
		return err
	}
	f.KeyColumn = cfg.KeyColumn
	s, err := newSession(cfg, path, f, prof)
	if err != nil {
		return err
	}

	out := termenv.NewOutput(cmd.OutOrStdout(), termenv.WithProfile(prof))
	redraw := func(ev *table.Event) {
		if prof != termenv.Ascii {
			out.ClearScreen()
		}
		errors.Log(s.term.Render(out, 0, p.rows))
	}
	s.model.OnEvent(table.ResetEnd, redraw)
	s.model.OnEvent(table.DataChanged, redraw)
	redraw(nil)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	mq := watch.NewMainQueue()
	src := &watch.CSVSource{Path: path, Delim: delim, KeyColumn: cfg.KeyColumn}
	var run func(ctx context.Context) error
	if p.poll {
		run = watch.NewPoller(src, s.model, mq, interval).Run
	} else {
		fw := watch.NewFileWatcher(path, delim, s.model, mq)
		fw.Source.(*watch.CSVSource).KeyColumn = cfg.KeyColumn
		fw.Lag = lag
		run = fw.Run
	}
	errc := make(chan error, 1)
	go func() { errc <- run(ctx) }()
	slog.Info("watching", "path", path, "poll", p.poll)

	mq.MainLoop(ctx)
	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
