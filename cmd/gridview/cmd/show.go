// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"
)

type showParams struct {
	filters []string
	sort    string
	first   int
	rows    int
}

var configuredShowParams showParams

var showCommand = &cobra.Command{
	Use:   "show <file.csv>",
	Short: "Print a CSV file as a table",
	Long: `Print a CSV file as a table, with optional filters and sorting.

Filters are given as column=expression, where the expression is a
case-insensitive substring, or a comparison such as ">= 40" or "== 'x'".
Sorting is by column title or number, with a "-" prefix for descending order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := show(cmd, args[0], &configuredShowParams); err != nil {
			return fail(cmd, err)
		}
		return nil
	},
}

func init() {
	f := showCommand.Flags()
	f.StringArrayVarP(&configuredShowParams.filters, "filter", "f", nil, "filter `column=expression`; repeatable")
	f.StringVarP(&configuredShowParams.sort, "sort", "s", "", "sort by `column`, with a - prefix for descending order")
	f.IntVar(&configuredShowParams.first, "first", 0, "first row to show")
	f.IntVarP(&configuredShowParams.rows, "rows", "n", 0, "number of rows to show; 0 for all")
}

func show(cmd *cobra.Command, path string, p *showParams) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	prof, err := profile()
	if err != nil {
		return err
	}
	s, err := openSession(cfg, path, prof)
	if err != nil {
		return err
	}
	for _, spec := range p.filters {
		if err := s.setFilter(spec); err != nil {
			return err
		}
	}
	if p.sort != "" {
		if err := s.sort(p.sort); err != nil {
			return err
		}
	}
	return s.term.Render(cmd.OutOrStdout(), p.first, p.rows)
}
