// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of gridview.
package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/gabrielcnr/enaml-extensions/config"
	"github.com/gabrielcnr/enaml-extensions/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// rootParams are the flags shared by all commands.
type rootParams struct {
	veryVerbose bool
	verbose     bool
	quiet       bool
	config      string
	color       string
}

var params rootParams

// RootCommand is the base CLI command that all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:           path.Base(os.Args[0]),
	Short:         "Tabular views of CSV files",
	Long:          "Show, explore and watch CSV files as tables with filters, sorting, selections and summaries.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logx.UserLevel = logx.LevelFromFlags(params.veryVerbose, params.verbose, params.quiet)
		logx.SetDefaultLogger(cmd.ErrOrStderr())
	},
}

func init() {
	pf := RootCommand.PersistentFlags()
	pf.BoolVar(&params.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&params.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&params.quiet, "quiet", "q", false, "only show errors")
	pf.StringVarP(&params.config, "config", "c", "", "TOML or YAML table configuration `file`")
	pf.StringVar(&params.color, "color", "auto", "colors of the output: auto, always or never")

	RootCommand.AddCommand(showCommand, shellCommand, watchCommand, configCommand)
}

// loadConfig returns the configuration of the --config flag,
// or the default configuration.
func loadConfig() (*config.Config, error) {
	if params.config == "" {
		return config.New(), nil
	}
	return config.Open(params.config)
}

// profile returns the color profile of the --color flag.
func profile() (termenv.Profile, error) {
	switch params.color {
	case "auto":
		return logx.ColorProfile, nil
	case "always":
		return termenv.ANSI256, nil
	case "never":
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown --color %q; use auto, always or never", params.color)
}

// fail prints the error in the error color and returns it.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), logx.ErrorText(err.Error()))
	return err
}
