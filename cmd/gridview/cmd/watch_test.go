// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a buffer that can be written by the main loop
// while the test reads it.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (sb *syncBuffer) Write(p []byte) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.b.Write(p)
}

func (sb *syncBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.b.String()
}

func TestWatchCommandPoll(t *testing.T) {
	defer leaktest.CheckTimeout(t, 10*time.Second)()
	defer func() {
		params = rootParams{color: "auto"}
		configuredWatchParams = watchParams{}
	}()

	dir := t.TempDir()
	fn := filepath.Join(dir, "band.csv")
	require.NoError(t, os.WriteFile(fn, []byte(bandCSV), 0o644))
	cfn := filepath.Join(dir, "watch.yaml")
	require.NoError(t, os.WriteFile(cfn, []byte("watch:\n  interval: 10ms\n"), 0o644))

	out := &syncBuffer{}
	RootCommand.SetOut(out)
	RootCommand.SetErr(out)
	RootCommand.SetArgs([]string{"watch", fn, "--poll", "--color", "never", "--config", cfn})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchCommand.SetContext(ctx)
	errc := make(chan error, 1)
	go func() { errc <- RootCommand.ExecuteContext(ctx) }()

	contains := func(s string) func() bool {
		return func() bool { return strings.Contains(out.String(), s) }
	}
	require.Eventually(t, contains("George"), 5*time.Second, 10*time.Millisecond)

	fp, err := os.OpenFile(fn, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = fp.WriteString("Brian,35,2\n")
	require.NoError(t, err)
	require.NoError(t, fp.Close())
	assert.Eventually(t, contains("Brian"), 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-errc)
}

func TestWatchFileCancelled(t *testing.T) {
	defer func() { params.color = "auto" }()
	params.color = "never"

	fn := filepath.Join(t.TempDir(), "band.csv")
	require.NoError(t, os.WriteFile(fn, []byte(bandCSV), 0o644))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd.SetContext(ctx)

	require.NoError(t, watchFile(cmd, fn, &watchParams{rows: 1}))
	assert.Contains(t, out.String(), "George")
	assert.NotContains(t, out.String(), "Ringo")

	assert.Error(t, watchFile(cmd, filepath.Join(t.TempDir(), "missing.csv"), &watchParams{}))
}
