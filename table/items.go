// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"reflect"

	"github.com/gabrielcnr/enaml-extensions/base/reflectx"
)

// Items is an indexed collection of row items. Items are referenced,
// not copied, by a [Model].
type Items interface {
	Len() int
	At(i int) any
}

// Slice is a slice of arbitrary row items.
type Slice []any

func (s Slice) Len() int      { return len(s) }
func (s Slice) At(i int) any { return s[i] }

// SliceOf is a slice of row items of one type.
type SliceOf[T any] []T

func (s SliceOf[T]) Len() int      { return len(s) }
func (s SliceOf[T]) At(i int) any { return s[i] }

// ItemsOf returns the given value as [Items]: [Items] are returned as is,
// slices and arrays of any element type are adapted, and nil is empty.
// It returns false for anything else.
func ItemsOf(v any) (Items, bool) {
	switch x := v.(type) {
	case nil:
		return Slice(nil), true
	case Items:
		return x, true
	case []any:
		return Slice(x), true
	}
	uv := reflectx.UnderlyingOf(v)
	switch uv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectItems{uv}, true
	}
	return nil, false
}

type reflectItems struct {
	v reflect.Value
}

func (r reflectItems) Len() int      { return r.v.Len() }
func (r reflectItems) At(i int) any { return r.v.Index(i).Interface() }

// ItemSlice returns all of the given items as a slice.
func ItemSlice(items Items) []any {
	if items == nil {
		return nil
	}
	n := items.Len()
	s := make([]any, n)
	for i := range n {
		s[i] = items.At(i)
	}
	return s
}
