// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"github.com/gabrielcnr/enaml-extensions/base/reflectx"
)

// KeyKinds are the value extraction strategies of a [Key].
type KeyKinds int32

const (
	// NoKey is the zero value, which extracts nothing.
	NoKey KeyKinds = iota

	// FieldKey looks up a struct field or zero-argument method by name.
	FieldKey

	// IndexKey looks up a map key, record field, or sequence position.
	IndexKey

	// GetterKey calls a function on the item.
	GetterKey
)

// Key specifies how a [Column] extracts its value from a row item.
// It is one of [Field], [Index] or [Getter], and is resolved once,
// by [NewColumn], into the function that the column calls for every item.
type Key struct {
	kind   KeyKinds
	name   string
	index  any
	getter func(item any) (any, error)
}

// Field returns a [Key] that looks up the exported struct field or
// zero-argument method with the given name, through pointers.
func Field(name string) Key {
	return Key{kind: FieldKey, name: name}
}

// Index returns a [Key] that looks up the given key in map items and
// [Record] items, or the given integer position in slices, arrays
// and [Positional] items.
func Index(key any) Key {
	return Key{kind: IndexKey, index: key}
}

// Getter returns a [Key] that calls the given function on each item.
// Errors returned by the function are passed through.
func Getter(fn func(item any) (any, error)) Key {
	return Key{kind: GetterKey, getter: fn}
}

// Kind returns the extraction strategy of the key.
func (k Key) Kind() KeyKinds {
	return k.kind
}

// Name returns the field name of a [FieldKey], or the index of an
// [IndexKey] as a string.
func (k Key) Name() string {
	switch k.kind {
	case FieldKey:
		return k.name
	case IndexKey:
		return reflectx.ToString(k.index)
	}
	return ""
}

// Value returns the identity of the key for matching include lists
// and hints: the field name or the index. Getter keys have none.
func (k Key) Value() any {
	switch k.kind {
	case FieldKey:
		return k.name
	case IndexKey:
		return k.index
	}
	return nil
}

func (k Key) String() string {
	switch k.kind {
	case FieldKey:
		return "field " + k.name
	case IndexKey:
		return fmt.Sprintf("index %#v", k.index)
	case GetterKey:
		return "getter"
	}
	return "no key"
}

// Record is implemented by row items that look up their field
// values by name, such as *ordmap.Map[string, any] and frame rows.
type Record interface {
	ValueByKeyTry(key string) (any, bool)
}

// Positional is implemented by row items that are addressed by
// position, such as *ordmap.Map[string, any] and frame rows.
type Positional interface {
	Len() int
	ValueByIndex(idx int) any
}

// bind returns the extraction function for the key.
func (k Key) bind() func(item any) (any, error) {
	switch k.kind {
	case FieldKey:
		return func(item any) (any, error) {
			if v, ok := reflectx.FieldValue(item, k.name); ok {
				return v, nil
			}
			return nil, &LookupError{Key: k, Item: item}
		}
	case IndexKey:
		return func(item any) (any, error) {
			if v, ok := indexValue(item, k.index); ok {
				return v, nil
			}
			return nil, &LookupError{Key: k, Item: item}
		}
	case GetterKey:
		return k.getter
	}
	return func(item any) (any, error) {
		return nil, ErrNoKey
	}
}

func indexValue(item, key any) (any, bool) {
	switch it := item.(type) {
	case Record:
		if name, ok := key.(string); ok {
			return it.ValueByKeyTry(name)
		}
		if p, ok := item.(Positional); ok {
			if idx, ok := key.(int); ok && idx >= 0 && idx < p.Len() {
				return p.ValueByIndex(idx), true
			}
		}
		return nil, false
	case Positional:
		if idx, ok := key.(int); ok && idx >= 0 && idx < it.Len() {
			return it.ValueByIndex(idx), true
		}
		return nil, false
	}
	return reflectx.IndexValue(item, key)
}
