// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gridview shows CSV files as interactive tables in the terminal.
package main

import (
	"os"

	"github.com/gabrielcnr/enaml-extensions/cmd/gridview/cmd"
)

func main() {
	if err := cmd.RootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
