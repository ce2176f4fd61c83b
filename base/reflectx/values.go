// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Floater is implemented by types that have a natural float64 value,
// such as fixed point decimal types. Values implementing it are
// treated as numbers.
type Floater interface {
	Float() float64
}

// KindIsNumber returns whether the given kind is an integer,
// unsigned integer or floating point kind. Bool and complex kinds
// are not numbers for the purposes of alignment, sorting and
// aggregation.
func KindIsNumber(vk reflect.Kind) bool {
	return (vk >= reflect.Int && vk <= reflect.Uintptr) || vk == reflect.Float32 || vk == reflect.Float64
}

// KindIsInt returns whether the given kind is a signed or unsigned integer kind.
func KindIsInt(vk reflect.Kind) bool {
	return vk >= reflect.Int && vk <= reflect.Uintptr
}

// IsNumber returns whether the given value is a number (see [KindIsNumber]),
// looking through pointers and interfaces.
func IsNumber(v any) bool {
	_, ok := AsFloat(v)
	return ok
}

// AsFloat returns the float64 value of the given value if it is a number
// or implements [Floater], looking through pointers. Unlike a robust
// conversion, strings and bools are never converted: ok is false for them.
func AsFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case int:
		return float64(x), true
	case Floater:
		return x.Float(), true
	}
	uv := UnderlyingOf(v)
	if !uv.IsValid() {
		return 0, false
	}
	if uv.CanInterface() {
		if fl, ok := uv.Interface().(Floater); ok {
			return fl.Float(), true
		}
	}
	vk := uv.Kind()
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return float64(uv.Int()), true
	case vk >= reflect.Uint && vk <= reflect.Uintptr:
		return float64(uv.Uint()), true
	case vk == reflect.Float32 || vk == reflect.Float64:
		return uv.Float(), true
	}
	return 0, false
}

// AsTime returns the given value as a [time.Time] if it is one,
// looking through pointers.
func AsTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	}
	return time.Time{}, false
}

// ToString robustly converts anything to a string. Because [fmt.Stringer]
// is so ubiquitous, and we fall back to fmt %v in the worst case, this
// works in all cases, so there is no bool return value. Nil values
// (including nil pointers) convert to the empty string.
func ToString(v any) string {
	if AnyIsNil(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	case []byte:
		return string(x)
	}
	uv := UnderlyingOf(v)
	if !uv.IsValid() {
		return ""
	}
	vk := uv.Kind()
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return strconv.FormatInt(uv.Int(), 10)
	case vk >= reflect.Uint && vk <= reflect.Uintptr:
		return strconv.FormatUint(uv.Uint(), 10)
	case vk == reflect.Bool:
		return strconv.FormatBool(uv.Bool())
	case vk == reflect.Float32:
		return strconv.FormatFloat(uv.Float(), 'g', -1, 32)
	case vk == reflect.Float64:
		return strconv.FormatFloat(uv.Float(), 'g', -1, 64)
	case vk == reflect.String:
		return uv.String()
	}
	if uv.CanInterface() {
		if st, ok := uv.Interface().(fmt.Stringer); ok {
			return st.String()
		}
		return fmt.Sprintf("%v", uv.Interface())
	}
	return fmt.Sprintf("%v", v)
}
