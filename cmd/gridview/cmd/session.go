// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gabrielcnr/enaml-extensions/config"
	"github.com/gabrielcnr/enaml-extensions/frame"
	"github.com/gabrielcnr/enaml-extensions/render"
	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/gabrielcnr/enaml-extensions/tableview"
	"github.com/muesli/termenv"
)

// session is a table view of a CSV file.
type session struct {
	cfg   *config.Config
	path  string
	model *table.Model
	view  *tableview.View
	term  *render.Terminal
}

// newSession returns a session of the given frame with columns
// generated as configured.
func newSession(cfg *config.Config, path string, f *frame.Frame, prof termenv.Profile) (*session, error) {
	opts, err := cfg.GenerateOptions()
	if err != nil {
		return nil, err
	}
	cols, err := table.GenerateColumns(f, opts)
	if err != nil {
		return nil, err
	}
	m := table.NewModel(cols, f)
	v := tableview.NewView(m)
	if err := cfg.Apply(v); err != nil {
		return nil, err
	}
	return &session{cfg: cfg, path: path, model: m, view: v, term: render.New(v, prof)}, nil
}

// openSession reads the given CSV file into a new session.
func openSession(cfg *config.Config, path string, prof termenv.Profile) (*session, error) {
	delim, err := cfg.Delims()
	if err != nil {
		return nil, err
	}
	f, err := frame.OpenCSV(path, delim)
	if err != nil {
		return nil, err
	}
	f.KeyColumn = cfg.KeyColumn
	return newSession(cfg, path, f, prof)
}

// column returns the view column index of the given column title or
// view column number.
func (s *session) column(ref string) (int, error) {
	if col, err := strconv.Atoi(ref); err == nil {
		if col < 0 || col >= s.model.ColumnCount() {
			return -1, fmt.Errorf("%w: column %d of %d", table.ErrIndex, col, s.model.ColumnCount())
		}
		return col, nil
	}
	c, err := table.FindColumn(s.model.Columns(), ref)
	if err != nil {
		return -1, err
	}
	return s.model.ColumnIndex(c), nil
}

// setFilter sets the filter of the column given as "column=expression".
func (s *session) setFilter(spec string) error {
	ref, expr, ok := strings.Cut(spec, "=")
	if !ok {
		return fmt.Errorf("filter %q is not column=expression", spec)
	}
	col, err := s.column(strings.TrimSpace(ref))
	if err != nil {
		return err
	}
	c := s.model.Column(col)
	if c == nil {
		return fmt.Errorf("the check column cannot be filtered")
	}
	return s.model.SetFilter(c, expr)
}

// sort sorts by the given column reference, with a "-" prefix
// for descending order.
func (s *session) sort(ref string) error {
	desc := strings.HasPrefix(ref, "-")
	col, err := s.column(strings.TrimPrefix(ref, "-"))
	if err != nil {
		return err
	}
	return s.model.Sort(col, desc)
}

// cell parses a cell from row and column arguments.
func (s *session) cell(row, col string) (tableview.Cell, error) {
	r, err := strconv.Atoi(row)
	if err != nil {
		return tableview.NoCell, fmt.Errorf("invalid row %q", row)
	}
	c, err := s.column(col)
	if err != nil {
		return tableview.NoCell, err
	}
	return tableview.Cell{Row: r, Col: c}, nil
}
