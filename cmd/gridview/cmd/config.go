// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/gabrielcnr/enaml-extensions/config"
	"github.com/gabrielcnr/enaml-extensions/logx"
	"github.com/spf13/cobra"
)

var configCommand = &cobra.Command{
	Use:   "config",
	Short: "Manage table configuration files",
}

var configInitCommand = &cobra.Command{
	Use:   "init <file.toml|file.yaml>",
	Short: "Write a configuration file with the default settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.New().Save(args[0]); err != nil {
			return fail(cmd, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), logx.SuccessText("wrote "+args[0]))
		return nil
	},
}

var configCheckCommand = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a configuration file and print its effective settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Open(args[0])
		if err == nil {
			_, err = cfg.GenerateOptions()
		}
		if err == nil {
			_, err = cfg.Mode()
		}
		if err == nil {
			_, _, err = cfg.Intervals()
		}
		if err != nil {
			return fail(cmd, err)
		}
		format, _ := config.FormatOf(args[0])
		return cfg.Write(cmd.OutOrStdout(), format)
	},
}

func init() {
	configCommand.AddCommand(configInitCommand, configCheckCommand)
}
