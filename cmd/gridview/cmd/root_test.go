// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given arguments,
// returning its output.
func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	RootCommand.SetOut(&out)
	RootCommand.SetErr(&out)
	RootCommand.SetArgs(args)
	err := RootCommand.Execute()
	return out.String(), err
}

func TestShowCommand(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "band.csv")
	require.NoError(t, os.WriteFile(fn, []byte(bandCSV), 0o644))

	out, err := execute(t, "show", fn, "--color", "never", "-f", "age=>40", "--sort=-age")
	require.NoError(t, err)
	assert.NotContains(t, out, "George")
	ringo := strings.Index(out, "Ringo")
	paul := strings.Index(out, "Paul")
	assert.True(t, ringo >= 0 && paul > ringo, out)

	_, err = execute(t, "show", filepath.Join(t.TempDir(), "missing.csv"), "--color", "never")
	assert.Error(t, err)
	_, err = execute(t, "show", fn, "--color", "sometimes")
	assert.ErrorContains(t, err, "unknown --color")
	params.color = "auto"
}

func TestConfigCommand(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "c.yaml")
	out, err := execute(t, "config", "init", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	out, err = execute(t, "config", "check", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "selection-mode: multi_cells")
	assert.Contains(t, out, "delim: detect")

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("selection-mode = \"lasso\"\n"), 0o644))
	_, err = execute(t, "config", "check", bad)
	assert.ErrorContains(t, err, "lasso")
}
