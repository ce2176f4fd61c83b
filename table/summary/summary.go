// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package summary computes aggregate statistics over
// the raw values of the selected cells of a table.
package summary

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gabrielcnr/enaml-extensions/base/reflectx"
)

// Separator separates the fields of [Summary.String].
const Separator = "   "

// Summary is the aggregate of a list of values. Only numbers contribute
// to Sum, CountNumbers, Min and Max; all values are counted in Count.
// Bools are not numbers.
type Summary struct {
	Values []any

	Sum          float64
	CountNumbers int
	Min          float64
	Max          float64
}

// Compute returns the summary of the given values.
func Compute(values []any) *Summary {
	s := &Summary{Values: values, Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		f, ok := reflectx.AsFloat(v)
		if !ok {
			continue
		}
		s.Sum += f
		s.CountNumbers++
		s.Min = min(s.Min, f)
		s.Max = max(s.Max, f)
	}
	if s.CountNumbers == 0 {
		s.Min, s.Max = 0, 0
	}
	return s
}

// Count returns the number of values, numeric or not.
func (s *Summary) Count() int {
	return len(s.Values)
}

// Avg returns the mean of the numbers, and false if there are none.
func (s *Summary) Avg() (float64, bool) {
	if s.CountNumbers == 0 {
		return 0, false
	}
	return s.Sum / float64(s.CountNumbers), true
}

// Diff returns the absolute difference of the values when there are
// exactly two values and both are numbers, and false otherwise.
func (s *Summary) Diff() (float64, bool) {
	if len(s.Values) != 2 || s.CountNumbers != 2 {
		return 0, false
	}
	a, _ := reflectx.AsFloat(s.Values[0])
	b, _ := reflectx.AsFloat(s.Values[1])
	return math.Abs(a - b), true
}

// String returns the summary as text, such as
// "Count: 2   Average: 3.5   Sum: 7   CountNumbers: 2   Min: -4   Max: 11   Diff: 15".
func (s *Summary) String() string {
	fields := []string{fmt.Sprintf("Count: %d", s.Count())}
	if avg, ok := s.Avg(); ok {
		fields = append(fields,
			"Average: "+formatFloat(avg),
			"Sum: "+formatFloat(s.Sum),
			fmt.Sprintf("CountNumbers: %d", s.CountNumbers),
			"Min: "+formatFloat(s.Min),
			"Max: "+formatFloat(s.Max))
	}
	if diff, ok := s.Diff(); ok {
		fields = append(fields, "Diff: "+formatFloat(diff))
	}
	return strings.Join(fields, Separator)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
