// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
)

// FieldValue returns the value of the exported struct field with the given
// name on the given value, looking through pointers and interfaces. If there
// is no such field, a method with that name taking no arguments and returning
// at least one value is called instead, and its first result returned.
// It returns false if neither can be found.
func FieldValue(v any, name string) (any, bool) {
	rv := reflect.ValueOf(v)
	uv := Underlying(rv)
	if !uv.IsValid() {
		return nil, false
	}
	if uv.Kind() == reflect.Struct {
		if sf, ok := uv.Type().FieldByName(name); ok && sf.IsExported() {
			fv, err := uv.FieldByIndexErr(sf.Index)
			if err != nil {
				return nil, false
			}
			return fv.Interface(), true
		}
	}
	mv := rv.MethodByName(name)
	if !mv.IsValid() {
		mv = uv.MethodByName(name)
	}
	if !mv.IsValid() || mv.Type().NumIn() != 0 || mv.Type().NumOut() == 0 {
		return nil, false
	}
	return mv.Call(nil)[0].Interface(), true
}

// IndexValue returns the element of the given map, slice, or array value
// for the given key, looking through pointers and interfaces. Map keys are
// converted to the key type of the map when convertible, and sequence
// positions must be integers within range.
// It returns false if the element does not exist.
func IndexValue(v any, key any) (any, bool) {
	uv := UnderlyingOf(v)
	if !uv.IsValid() {
		return nil, false
	}
	switch uv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		kt := uv.Type().Key()
		if !kv.IsValid() {
			return nil, false
		}
		if kv.Type() != kt {
			if !kv.Type().ConvertibleTo(kt) || (kv.Kind() == reflect.String) != (kt.Kind() == reflect.String) {
				return nil, false
			}
			kv = kv.Convert(kt)
		}
		ev := uv.MapIndex(kv)
		if !ev.IsValid() {
			return nil, false
		}
		return ev.Interface(), true
	case reflect.Slice, reflect.Array:
		idx, ok := intOf(key)
		if !ok || idx < 0 || idx >= uv.Len() {
			return nil, false
		}
		return uv.Index(idx).Interface(), true
	}
	return nil, false
}

// intOf returns the given value as an int if it has an integer kind.
func intOf(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch {
	case !rv.IsValid():
		return 0, false
	case rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Int64:
		return int(rv.Int()), true
	case rv.Kind() >= reflect.Uint && rv.Kind() <= reflect.Uintptr:
		return int(rv.Uint()), true
	}
	return 0, false
}
