// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a headless data and presentation engine for
// tabular grids: columns that extract, format, align and style values
// from arbitrary row items, per-column filters with a small comparison
// expression language, and a [Model] that maintains the filtered and
// sorted view of a mutable item collection along with checked items,
// answering the per-cell queries of a rendering backend.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gabrielcnr/enaml-extensions/base/reflectx"
	"github.com/gabrielcnr/enaml-extensions/base/strcase"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Column describes how to extract, format, align and style the value
// of one logical field of row items. Columns are made with [NewColumn],
// which binds the value extraction strategy once, and configured with
// the Set methods before being given to a [Model].
type Column struct {

	// Title is the header label. [NewColumn] derives it from the key.
	Title string

	// Align is the alignment of the cells; [AlignAuto] infers it
	// from the value of each cell.
	Align Aligns

	// Tooltip is a literal tooltip for all cells of the column.
	Tooltip string

	// TooltipFunc returns the tooltip of a cell, taking
	// precedence over Tooltip.
	TooltipFunc func(ctx *CellContext) string

	// StyleFunc returns style overrides for a cell, or nil for none.
	StyleFunc func(ctx *CellContext) *CellStyle

	// Format is a [fmt] template with one verb applied to the value,
	// such as "%.2f".
	Format string

	// FormatFunc formats the value, taking precedence over Format.
	FormatFunc func(v any) string

	// Thousands groups the digits of numbers formatted with Format
	// with thousands separators.
	Thousands bool

	// Size is the sizing policy of the column.
	Size Sizes

	// Width is the width of the column for [SizeFixed].
	Width int

	// ImageFunc returns the path of an image to show in a cell,
	// or "" for none.
	ImageFunc func(ctx *CellContext) string

	key Key
	get func(item any) (any, error)
}

// thousands formats numbers with English digit grouping.
var thousands = message.NewPrinter(language.English)

// NewColumn returns a new column that extracts values using the given key.
// The title is derived from the name of a field or string index key,
// or the position of an integer index key.
func NewColumn(key Key) *Column {
	c := &Column{key: key, get: key.bind()}
	switch key.kind {
	case FieldKey:
		c.Title = strcase.ToTitle(key.name)
	case IndexKey:
		switch k := key.index.(type) {
		case string:
			c.Title = strcase.ToTitle(k)
		case int:
			c.Title = strconv.Itoa(k)
		default:
			c.Title = reflectx.ToString(k)
		}
	}
	return c
}

// Key returns the key of the column.
func (c *Column) Key() Key {
	return c.key
}

// SetTitle sets the [Column.Title]:
// Title is the header label.
func (c *Column) SetTitle(v string) *Column { c.Title = v; return c }

// SetAlign sets the [Column.Align].
func (c *Column) SetAlign(v Aligns) *Column { c.Align = v; return c }

// SetTooltip sets the [Column.Tooltip].
func (c *Column) SetTooltip(v string) *Column { c.Tooltip = v; return c }

// SetTooltipFunc sets the [Column.TooltipFunc].
func (c *Column) SetTooltipFunc(v func(ctx *CellContext) string) *Column {
	c.TooltipFunc = v
	return c
}

// SetStyleFunc sets the [Column.StyleFunc].
func (c *Column) SetStyleFunc(v func(ctx *CellContext) *CellStyle) *Column {
	c.StyleFunc = v
	return c
}

// SetFormat sets the [Column.Format].
func (c *Column) SetFormat(v string) *Column { c.Format = v; return c }

// SetFormatFunc sets the [Column.FormatFunc].
func (c *Column) SetFormatFunc(v func(v any) string) *Column { c.FormatFunc = v; return c }

// SetThousands sets the [Column.Thousands].
func (c *Column) SetThousands(v bool) *Column { c.Thousands = v; return c }

// SetSize sets the [Column.Size].
func (c *Column) SetSize(v Sizes) *Column { c.Size = v; return c }

// SetWidth sets the [Column.Width] and the size policy to [SizeFixed].
func (c *Column) SetWidth(v int) *Column {
	c.Width = v
	c.Size = SizeFixed
	return c
}

// SetImageFunc sets the [Column.ImageFunc].
func (c *Column) SetImageFunc(v func(ctx *CellContext) string) *Column {
	c.ImageFunc = v
	return c
}

// Value returns the raw value of the column for the given item.
// It returns a [*LookupError] if the key is absent from the item,
// and [ErrNoKey] for a column that was not made with [NewColumn].
func (c *Column) Value(item any) (any, error) {
	if c.get == nil {
		return nil, ErrNoKey
	}
	return c.get(item)
}

// DisplayValue returns the displayed text of the column for the given item.
func (c *Column) DisplayValue(item any) (string, error) {
	v, err := c.Value(item)
	if err != nil {
		return "", err
	}
	return c.FormatValue(v)
}

// FormatValue returns the displayed text for the given raw value.
// Nil values, including nil pointers, display as the empty string.
// It returns a [*FormatError] if the Format template is not valid
// for the value.
func (c *Column) FormatValue(v any) (string, error) {
	if reflectx.AnyIsNil(v) {
		return "", nil
	}
	if c.FormatFunc != nil {
		return c.FormatFunc(v), nil
	}
	if c.Format == "" {
		return reflectx.ToString(v), nil
	}
	var s string
	if c.Thousands {
		s = thousands.Sprintf(c.Format, v)
	} else {
		s = fmt.Sprintf(c.Format, v)
	}
	if strings.Contains(s, "%!") && !strings.Contains(c.Format, "%%!") {
		return "", &FormatError{Format: c.Format, Value: v, Output: s}
	}
	return s, nil
}

// AlignFor returns the alignment of the cell for the given item:
// the explicit alignment if set, otherwise inferred from its value.
func (c *Column) AlignFor(item any) (Aligns, error) {
	if c.Align != AlignAuto {
		return c.Align, nil
	}
	v, err := c.Value(item)
	if err != nil {
		return AlignLeft, err
	}
	return InferAlign(v), nil
}

// TooltipFor returns the tooltip for the given cell: the result of
// TooltipFunc, the literal Tooltip, or else the Go syntax
// representation of the raw value.
func (c *Column) TooltipFor(ctx *CellContext) string {
	if c.TooltipFunc != nil {
		return c.TooltipFunc(ctx)
	}
	if c.Tooltip != "" {
		return c.Tooltip
	}
	v := ctx.RawValue()
	if ctx.Err() != nil {
		return ""
	}
	return fmt.Sprintf("%#v", v)
}

// StyleFor returns the style overrides for the given cell, or nil
// if the column has no StyleFunc.
func (c *Column) StyleFor(ctx *CellContext) *CellStyle {
	if c.StyleFunc == nil {
		return nil
	}
	if st := c.StyleFunc(ctx); st != nil {
		return st
	}
	return &CellStyle{}
}

// ImageFor returns the image path for the given cell, or "".
func (c *Column) ImageFor(ctx *CellContext) string {
	if c.ImageFunc == nil {
		return ""
	}
	return c.ImageFunc(ctx)
}

func (c *Column) String() string {
	return fmt.Sprintf("Column(%q, %s)", c.Title, c.key)
}
