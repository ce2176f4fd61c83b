// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import "slices"

// Move moves the element in the given slice at the given
// old position to the given new position and returns the
// resulting slice.
func Move[E any](s []E, from, to int) []E {
	temp := s[from]
	s = slices.Delete(s, from, from+1)
	s = slices.Insert(s, to, temp)
	return s
}

// Unique returns the elements of s with duplicates removed,
// keeping the first occurrence of each in the original order.
func Unique[E comparable](s []E) []E {
	if len(s) == 0 {
		return s
	}
	seen := make(map[E]struct{}, len(s))
	res := make([]E, 0, len(s))
	for _, e := range s {
		if _, has := seen[e]; has {
			continue
		}
		seen[e] = struct{}{}
		res = append(res, e)
	}
	return res
}
