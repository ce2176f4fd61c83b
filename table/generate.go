// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/gabrielcnr/enaml-extensions/base/reflectx"
	"github.com/jinzhu/copier"
)

// FieldInfo describes a field declared by a [FieldSource].
type FieldInfo struct {
	Name string

	// Numeric is whether the values of the field are numbers.
	Numeric bool
}

// FieldSource is implemented by external tabular sources, such as
// data frames, that declare the fields of their rows. Their rows are
// expected to be [Record] items.
type FieldSource interface {
	Fields() []FieldInfo
}

// Hint overrides the presentation of a generated column. Its fields
// have the meaning of the [Column] fields with the same names; zero
// fields keep the inferred defaults.
type Hint struct {
	Title       string
	Align       Aligns
	Tooltip     string
	TooltipFunc func(ctx *CellContext) string
	StyleFunc   func(ctx *CellContext) *CellStyle
	Format      string
	FormatFunc  func(v any) string
	Thousands   bool
	Size        Sizes
	Width       int
	ImageFunc   func(ctx *CellContext) string
}

// GenerateOptions are the options for [GenerateColumns].
type GenerateOptions struct {

	// Include is an ordered allow-list of field names or positions.
	// The columns are generated in this order.
	Include []any

	// Exclude is a block-list of field names or positions.
	Exclude []any

	// Hints are presentation overrides keyed by field name or position.
	Hints map[any]Hint
}

// genField is a candidate column during generation.
type genField struct {
	pos int
	col *Column
}

// keyMatches is whether the given key is the key of the field.
func (f *genField) keyMatches(key any) bool {
	kv := f.col.key.Value()
	if key == nil || kv == nil {
		return false
	}
	kt := reflect.TypeOf(key)
	return kt == reflect.TypeOf(kv) && kt.Comparable() && kv == key
}

// matches is whether the given key is the key or the position of the field.
func (f *genField) matches(key any) bool {
	if f.keyMatches(key) {
		return true
	}
	idx, ok := key.(int)
	return ok && idx == f.pos
}

// GenerateColumns returns one column for each field of the given items,
// as determined by the collection when it is a [FieldSource], and otherwise
// by the shape of its first item: the exported fields of a struct (skipping
// fields tagged `table:"-"`, titled by a `label` tag), the ordered keys of a
// [Record] that lists its keys such as *ordmap.Map[string, any], the keys of
// a map in sorted order, or the positions of a slice or array.
// Fields with a numeric value in the first item are right aligned.
// It returns [ErrIncludeExclude] if both Include and Exclude are given,
// and no columns for empty items.
func GenerateColumns(items Items, opts GenerateOptions) ([]*Column, error) {
	if len(opts.Include) > 0 && len(opts.Exclude) > 0 {
		return nil, ErrIncludeExclude
	}
	if items == nil || items.Len() == 0 {
		return nil, nil
	}
	first := items.At(0)
	var fields []*genField
	if fs, ok := items.(FieldSource); ok {
		fields = sourceFields(fs)
	} else {
		var err error
		fields, err = itemFields(first)
		if err != nil {
			return nil, err
		}
		for _, f := range fields {
			if v, err := f.col.Value(first); err == nil && reflectx.IsNumber(v) {
				f.col.Align = AlignRight
			}
		}
	}

	find := func(key any) *genField {
		for _, f := range fields {
			if f.keyMatches(key) {
				return f
			}
		}
		for _, f := range fields {
			if f.matches(key) {
				return f
			}
		}
		return nil
	}
	switch {
	case len(opts.Include) > 0:
		var incl []*genField
		for _, key := range opts.Include {
			f := find(key)
			if f == nil {
				return nil, fmt.Errorf("%w: %v", ErrUnknownKey, key)
			}
			incl = append(incl, f)
		}
		fields = incl
	case len(opts.Exclude) > 0:
		fields = slices.DeleteFunc(fields, func(f *genField) bool {
			return slices.ContainsFunc(opts.Exclude, f.matches)
		})
	}
	for key, hint := range opts.Hints {
		f := find(key)
		if f == nil {
			if len(opts.Include) == 0 && len(opts.Exclude) == 0 {
				return nil, fmt.Errorf("%w: hint for %v", ErrUnknownKey, key)
			}
			continue
		}
		if err := copier.CopyWithOption(f.col, &hint, copier.Option{IgnoreEmpty: true}); err != nil {
			return nil, err
		}
	}
	cols := make([]*Column, len(fields))
	for i, f := range fields {
		cols[i] = f.col
	}
	return cols, nil
}

func sourceFields(fs FieldSource) []*genField {
	infos := fs.Fields()
	fields := make([]*genField, len(infos))
	for i, fi := range infos {
		col := NewColumn(Index(fi.Name)).SetTitle(fi.Name)
		if fi.Numeric {
			col.Align = AlignRight
			col.StyleFunc = NegativeRed
		}
		fields[i] = &genField{pos: i, col: col}
	}
	return fields
}

// keyLister is a [Record] that lists its keys in order.
type keyLister interface {
	Record
	Keys() []string
}

func itemFields(item any) ([]*genField, error) {
	var fields []*genField
	add := func(col *Column) {
		fields = append(fields, &genField{pos: len(fields), col: col})
	}
	if kl, ok := item.(keyLister); ok {
		for _, k := range kl.Keys() {
			add(NewColumn(Index(k)))
		}
		return fields, nil
	}
	uv := reflectx.UnderlyingOf(item)
	switch uv.Kind() {
	case reflect.Struct:
		for _, sf := range reflect.VisibleFields(uv.Type()) {
			if !sf.IsExported() || sf.Anonymous || sf.Tag.Get("table") == "-" {
				continue
			}
			col := NewColumn(Field(sf.Name))
			if lbl, ok := sf.Tag.Lookup("label"); ok {
				col.Title = lbl
			}
			add(col)
		}
	case reflect.Map:
		keys := uv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(reflectx.ToString(a.Interface()), reflectx.ToString(b.Interface()))
		})
		for _, k := range keys {
			add(NewColumn(Index(k.Interface())))
		}
	case reflect.Slice, reflect.Array:
		for i := range uv.Len() {
			add(NewColumn(Index(i)))
		}
	default:
		return nil, fmt.Errorf("table: cannot generate columns for items of type %T", item)
	}
	return fields, nil
}
