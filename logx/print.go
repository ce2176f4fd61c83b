// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/muesli/termenv"
)

var (
	// ColorProfile is the termenv color profile used for colored output.
	// It is detected from standard output on startup.
	ColorProfile = termenv.ColorProfile()

	// ErrorColor is the color used for error messages.
	ErrorColor = color.RGBA{255, 85, 85, 255}

	// WarnColor is the color used for warning messages.
	WarnColor = color.RGBA{241, 196, 15, 255}

	// SuccessColor is the color used for success messages.
	SuccessColor = color.RGBA{80, 250, 123, 255}

	// CmdColor is the color used for commands and titles.
	CmdColor = color.RGBA{139, 233, 253, 255}
)

// ApplyColor returns the given string styled with the given foreground
// color under [ColorProfile]. In the Ascii profile the string is unchanged.
func ApplyColor(clr color.Color, str string) string {
	return ColorProfile.String(str).Foreground(ColorProfile.FromColor(clr)).String()
}

// ErrorText returns the given string in [ErrorColor].
func ErrorText(str string) string { return ApplyColor(ErrorColor, str) }

// WarnText returns the given string in [WarnColor].
func WarnText(str string) string { return ApplyColor(WarnColor, str) }

// SuccessText returns the given string in [SuccessColor].
func SuccessText(str string) string { return ApplyColor(SuccessColor, str) }

// CmdText returns the given string in [CmdColor].
func CmdText(str string) string { return ApplyColor(CmdColor, str) }

// PrintlnLevel prints the given values, like [fmt.Println], if the given
// level is at or above [UserLevel], colored by level.
func PrintlnLevel(level slog.Level, a ...any) (n int, err error) {
	if level < UserLevel {
		return 0, nil
	}
	str := fmt.Sprint(a...)
	switch {
	case level >= slog.LevelError:
		str = ErrorText(str)
	case level >= slog.LevelWarn:
		str = WarnText(str)
	}
	return fmt.Println(str)
}
