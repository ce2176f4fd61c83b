// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"cmp"
	"math"
	"reflect"
	"strings"
)

// kinds of values in the order they sort relative to each other
// when values of different kinds are compared.
const (
	rankNil = iota
	rankBool
	rankNumber
	rankTime
	rankString
	rankOther
)

func rankOf(v any) int {
	if AnyIsNil(v) {
		return rankNil
	}
	if _, ok := AsFloat(v); ok {
		return rankNumber
	}
	if _, ok := AsTime(v); ok {
		return rankTime
	}
	uv := UnderlyingOf(v)
	switch uv.Kind() {
	case reflect.Bool:
		return rankBool
	case reflect.String:
		return rankString
	}
	return rankOther
}

// Compare returns a total ordering of the two given values, suitable
// for sorting heterogeneous data: -1 if a < b, 0 if a == b and +1 if a > b.
// Numbers compare numerically, with NaN treated as negative infinity so
// that NaN values cluster deterministically at the low end. Strings compare
// lexically, times chronologically and bools as false < true. Values of
// different kinds are ordered nil, bool, number, time, string, other;
// other values compare by their [ToString] representation.
func Compare(a, b any) int {
	ra, rb := rankOf(a), rankOf(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNil:
		return 0
	case rankNumber:
		if c, ok := compareInts(a, b); ok {
			return c
		}
		fa, _ := AsFloat(a)
		fb, _ := AsFloat(b)
		return cmp.Compare(nanToInf(fa), nanToInf(fb))
	case rankTime:
		ta, _ := AsTime(a)
		tb, _ := AsTime(b)
		return ta.Compare(tb)
	case rankBool:
		ba, bb := UnderlyingOf(a).Bool(), UnderlyingOf(b).Bool()
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		}
		return 1
	case rankString:
		return strings.Compare(UnderlyingOf(a).String(), UnderlyingOf(b).String())
	}
	return strings.Compare(ToString(a), ToString(b))
}

// Ordered compares the two given values like [Compare], but reports
// false when they are not meaningfully comparable: values of different
// kinds, NaN numbers, or nil values. It is used for user comparison
// expressions, where an incomparable value never matches an ordering.
func Ordered(a, b any) (int, bool) {
	ra, rb := rankOf(a), rankOf(b)
	if ra != rb || ra == rankNil {
		return 0, false
	}
	if ra == rankNumber {
		if c, ok := compareInts(a, b); ok {
			return c, true
		}
		fa, _ := AsFloat(a)
		fb, _ := AsFloat(b)
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return 0, false
		}
		return cmp.Compare(fa, fb), true
	}
	return Compare(a, b), true
}

// compareInts compares a and b exactly when both are integers of the same
// signedness, avoiding float64 rounding of large values.
func compareInts(a, b any) (int, bool) {
	ua, ub := UnderlyingOf(a), UnderlyingOf(b)
	ka, kb := ua.Kind(), ub.Kind()
	switch {
	case ka >= reflect.Int && ka <= reflect.Int64 && kb >= reflect.Int && kb <= reflect.Int64:
		return cmp.Compare(ua.Int(), ub.Int()), true
	case ka >= reflect.Uint && ka <= reflect.Uintptr && kb >= reflect.Uint && kb <= reflect.Uintptr:
		return cmp.Compare(ua.Uint(), ub.Uint()), true
	}
	return 0, false
}

func nanToInf(f float64) float64 {
	if math.IsNaN(f) {
		return math.Inf(-1)
	}
	return f
}
