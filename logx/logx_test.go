// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, UserLevel, LevelFromFlags(false, false, false))
}

func TestSetDefaultLogger(t *testing.T) {
	old := slog.Default()
	oldLevel := UserLevel
	defer func() {
		slog.SetDefault(old)
		UserLevel = oldLevel
	}()

	var buf bytes.Buffer
	UserLevel = slog.LevelWarn
	SetDefaultLogger(&buf)
	slog.Info("hidden")
	slog.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	UserLevel = slog.LevelDebug
	slog.Debug("now shown")
	assert.Contains(t, buf.String(), "now shown")
}

func TestApplyColor(t *testing.T) {
	old := ColorProfile
	defer func() { ColorProfile = old }()

	ColorProfile = termenv.Ascii
	assert.Equal(t, "plain", ErrorText("plain"))

	ColorProfile = termenv.TrueColor
	s := ErrorText("red")
	assert.Contains(t, s, "red")
	assert.Contains(t, s, "\x1b[")
}
