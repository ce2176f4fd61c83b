// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of a table view: which
// columns to generate from the data and how to present them, whether
// rows are checkable, the selection mode, column sizing and watching.
// Configurations are read from TOML or YAML files.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gabrielcnr/enaml-extensions/base/errors"
	"github.com/gabrielcnr/enaml-extensions/base/reflectx"
	"github.com/gabrielcnr/enaml-extensions/frame"
	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/gabrielcnr/enaml-extensions/tableview"
)

// Config is the configuration of a table view.
type Config struct {

	// Includes are other configuration files to read before this one,
	// relative to its directory. Settings of this file override those
	// of its includes.
	Includes []string `toml:"includes,omitempty" yaml:"includes,omitempty"`

	// Delim is the delimiter of CSV data: tab, comma, space or detect.
	Delim string `toml:"delim" yaml:"delim" default:"detect"`

	// KeyColumn is the name of the column identifying the rows of CSV data.
	KeyColumn string `toml:"key-column,omitempty" yaml:"key-column,omitempty"`

	// Checkable is whether the table has a check column.
	Checkable bool `toml:"checkable" yaml:"checkable"`

	// SelectionMode is the selection mode: single_cell, multi_cells,
	// single_row, multi_rows or none.
	SelectionMode string `toml:"selection-mode" yaml:"selection-mode" default:"multi_cells"`

	// Include is an ordered allow-list of field names or positions.
	Include []string `toml:"include,omitempty" yaml:"include,omitempty"`

	// Exclude is a block-list of field names or positions.
	Exclude []string `toml:"exclude,omitempty" yaml:"exclude,omitempty"`

	// Columns are presentation overrides of generated columns.
	Columns []Column `toml:"columns,omitempty" yaml:"columns,omitempty"`

	// Sizing configures the sizing of content sized columns.
	Sizing Sizing `toml:"sizing" yaml:"sizing"`

	// Watch configures the reloading of watched sources.
	Watch Watch `toml:"watch" yaml:"watch"`
}

// Column overrides the presentation of the generated column with the
// given key. Empty fields keep the inferred defaults.
type Column struct {

	// Key is the field name or position of the column.
	Key string `toml:"key" yaml:"key"`

	Title   string `toml:"title,omitempty" yaml:"title,omitempty"`
	Align   string `toml:"align,omitempty" yaml:"align,omitempty"`
	Tooltip string `toml:"tooltip,omitempty" yaml:"tooltip,omitempty"`

	// Format is a fmt template with one verb, such as "%.2f".
	Format    string `toml:"format,omitempty" yaml:"format,omitempty"`
	Thousands bool   `toml:"thousands,omitempty" yaml:"thousands,omitempty"`

	// Size is the sizing policy: auto, content or fixed.
	Size  string `toml:"size,omitempty" yaml:"size,omitempty"`
	Width int    `toml:"width,omitempty" yaml:"width,omitempty"`

	// Color and Background are hex colors or color names.
	Color      string `toml:"color,omitempty" yaml:"color,omitempty"`
	Background string `toml:"background,omitempty" yaml:"background,omitempty"`
	Font       string `toml:"font,omitempty" yaml:"font,omitempty"`

	// NegativeRed shows negative numbers in red.
	NegativeRed bool `toml:"negative-red,omitempty" yaml:"negative-red,omitempty"`
}

// Sizing configures [tableview.Sizer].
type Sizing struct {
	SampleRows int `toml:"sample-rows" yaml:"sample-rows" default:"1000"`
	MinWidth   int `toml:"min-width" yaml:"min-width" default:"20"`
	Padding    int `toml:"padding" yaml:"padding" default:"10"`
}

// Watch configures watching of data sources.
type Watch struct {

	// Interval is the polling interval, as a duration such as "1s".
	Interval string `toml:"interval" yaml:"interval" default:"1s"`

	// Lag is the minimum time between reloads of a watched file.
	Lag string `toml:"lag" yaml:"lag" default:"100ms"`
}

// New returns a new configuration with default values.
func New() *Config {
	c := &Config{}
	SetFromDefaults(c)
	return c
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// keyOf returns the column key of the given field name or position.
func keyOf(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return s
}

func keysOf(ss []string) []any {
	if len(ss) == 0 {
		return nil
	}
	keys := make([]any, len(ss))
	for i, s := range ss {
		keys[i] = keyOf(s)
	}
	return keys
}

// Delims returns the CSV delimiter.
func (c *Config) Delims() (frame.Delims, error) {
	return frame.ParseDelims(c.Delim)
}

// Mode returns the selection mode.
func (c *Config) Mode() (tableview.SelectionModes, error) {
	mode, ok := tableview.ParseSelectionMode(c.SelectionMode)
	if !ok {
		return mode, fmt.Errorf("config: unknown selection mode %q", c.SelectionMode)
	}
	return mode, nil
}

// Sizer returns the sizer of content sized columns.
func (c *Config) Sizer() tableview.Sizer {
	return tableview.Sizer{SampleRows: c.Sizing.SampleRows, MinWidth: c.Sizing.MinWidth, Padding: c.Sizing.Padding}
}

// Intervals returns the parsed watch interval and lag.
func (c *Config) Intervals() (interval, lag time.Duration, err error) {
	interval, err = time.ParseDuration(c.Watch.Interval)
	if err != nil {
		return 0, 0, fmt.Errorf("config: watch interval: %w", err)
	}
	lag, err = time.ParseDuration(c.Watch.Lag)
	if err != nil {
		return 0, 0, fmt.Errorf("config: watch lag: %w", err)
	}
	return interval, lag, nil
}

// GenerateOptions returns the options for generating the columns.
func (c *Config) GenerateOptions() (table.GenerateOptions, error) {
	opts := table.GenerateOptions{Include: keysOf(c.Include), Exclude: keysOf(c.Exclude)}
	if len(c.Columns) == 0 {
		return opts, nil
	}
	opts.Hints = make(map[any]table.Hint, len(c.Columns))
	for _, cc := range c.Columns {
		h, err := cc.Hint()
		if err != nil {
			return opts, err
		}
		opts.Hints[keyOf(cc.Key)] = h
	}
	return opts, nil
}

// Hint returns the column hint.
func (cc *Column) Hint() (table.Hint, error) {
	h := table.Hint{Title: cc.Title, Tooltip: cc.Tooltip, Format: cc.Format, Thousands: cc.Thousands, Width: cc.Width}
	if cc.Key == "" {
		return h, fmt.Errorf("config: column without key")
	}
	if cc.Align != "" {
		a, ok := table.ParseAlign(cc.Align)
		if !ok {
			return h, fmt.Errorf("config: column %q: unknown align %q", cc.Key, cc.Align)
		}
		h.Align = a
	}
	switch {
	case cc.Size != "":
		s, ok := table.ParseSize(cc.Size)
		if !ok {
			return h, fmt.Errorf("config: column %q: unknown size %q", cc.Key, cc.Size)
		}
		h.Size = s
	case cc.Width > 0:
		h.Size = table.SizeFixed
	}
	style, err := cc.style()
	if err != nil {
		return h, fmt.Errorf("config: column %q: %w", cc.Key, err)
	}
	switch {
	case style != nil && cc.NegativeRed:
		h.StyleFunc = func(ctx *table.CellContext) *table.CellStyle {
			if neg := table.NegativeRed(ctx); neg != nil {
				st := *style
				st.Color = neg.Color
				return &st
			}
			return style
		}
	case style != nil:
		h.StyleFunc = func(ctx *table.CellContext) *table.CellStyle { return style }
	case cc.NegativeRed:
		h.StyleFunc = table.NegativeRed
	}
	return h, nil
}

// style returns the static cell style of the column, or nil for none.
func (cc *Column) style() (*table.CellStyle, error) {
	if cc.Color == "" && cc.Background == "" && cc.Font == "" {
		return nil, nil
	}
	st := &table.CellStyle{Font: cc.Font}
	if cc.Color != "" {
		clr, err := ParseColor(cc.Color)
		if err != nil {
			return nil, err
		}
		st.Color = clr
	}
	if cc.Background != "" {
		clr, err := ParseColor(cc.Background)
		if err != nil {
			return nil, err
		}
		st.Background = clr
	}
	return st, nil
}

// Apply applies the check column, selection mode and sizing of the
// configuration to the given view.
func (c *Config) Apply(v *tableview.View) error {
	mode, err := c.Mode()
	if err != nil {
		return err
	}
	if err := v.Model.SetCheckable(c.Checkable); err != nil {
		return err
	}
	v.SetSelectionMode(mode)
	v.Sizer = c.Sizer()
	return nil
}
