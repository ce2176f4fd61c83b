// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/gabrielcnr/enaml-extensions/base/reflectx"
	"golang.org/x/image/colornames"
)

// Aligns are the horizontal alignments of cell contents.
type Aligns int32

const (
	// AlignAuto infers the alignment from the value of each cell:
	// numbers are right aligned, times centered and everything
	// else left aligned.
	AlignAuto Aligns = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Aligns) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "auto"
}

// ParseAlign returns the alignment with the given name, as
// returned by [Aligns.String], ignoring case.
func ParseAlign(s string) (Aligns, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return AlignAuto, true
	case "left":
		return AlignLeft, true
	case "center", "centre":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	}
	return AlignAuto, false
}

// InferAlign returns the alignment for a cell holding the given value.
func InferAlign(v any) Aligns {
	if reflectx.IsNumber(v) {
		return AlignRight
	}
	if _, ok := v.(time.Time); ok {
		return AlignCenter
	}
	return AlignLeft
}

// Sizes are the column sizing policies applied on a full refresh.
type Sizes int32

const (
	// SizeAuto leaves the fitting of the column to its contents
	// to the rendering backend.
	SizeAuto Sizes = iota

	// SizeContent measures the displayed text of a bounded sample
	// of rows, ignoring the header.
	SizeContent

	// SizeFixed uses the width of the column.
	SizeFixed
)

func (s Sizes) String() string {
	switch s {
	case SizeContent:
		return "content"
	case SizeFixed:
		return "fixed"
	}
	return "auto"
}

// ParseSize returns the sizing policy with the given name.
func ParseSize(s string) (Sizes, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return SizeAuto, true
	case "content", "just":
		return SizeContent, true
	case "fixed":
		return SizeFixed, true
	}
	return SizeAuto, false
}

// CellStyle overrides the presentation of a cell. Nil colors and
// an empty font leave the default of the view in place.
type CellStyle struct {
	Color      color.Color
	Background color.Color

	// Font is a font specification parsed by [ParseFont],
	// such as "bold 12pt Courier".
	Font string
}

// Font is a parsed font specification.
type Font struct {
	Family    string
	Bold      bool
	Italic    bool
	Underline bool

	// SizePx and SizePt are the font size in pixels or points;
	// zero means unset.
	SizePx int
	SizePt int
}

// ParseFont parses a font specification of white space separated
// tokens: "bold", "italic", "underline", sizes like "12px" or "10pt",
// and the family name as the remaining tokens.
func ParseFont(spec string) Font {
	var f Font
	var family []string
	for _, tok := range strings.Fields(spec) {
		lt := strings.ToLower(tok)
		switch {
		case lt == "bold":
			f.Bold = true
		case lt == "italic":
			f.Italic = true
		case lt == "underline":
			f.Underline = true
		case strings.HasSuffix(lt, "px") && isDigits(lt[:len(lt)-2]):
			f.SizePx, _ = strconv.Atoi(lt[:len(lt)-2])
		case strings.HasSuffix(lt, "pt") && isDigits(lt[:len(lt)-2]):
			f.SizePt, _ = strconv.Atoi(lt[:len(lt)-2])
		default:
			family = append(family, tok)
		}
	}
	f.Family = strings.Join(family, " ")
	return f
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NegativeRed is a style function that shows negative numbers in red.
func NegativeRed(ctx *CellContext) *CellStyle {
	if f, ok := reflectx.AsFloat(ctx.RawValue()); ok && f < 0 {
		return &CellStyle{Color: colornames.Red}
	}
	return nil
}

// filteredHeaderStyle is the header style of columns with an active filter.
var filteredHeaderStyle = CellStyle{Color: colornames.Red, Font: "bold"}
