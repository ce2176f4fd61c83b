// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/gabrielcnr/enaml-extensions/base/ordmap"
	"github.com/gabrielcnr/enaml-extensions/base/reflectx"
)

// operators are the comparison operators of filter expressions,
// two character operators first so that the longest one matches.
var operators = []string{">=", "<=", "==", "!=", ">", "<"}

// timeLayouts are the layouts accepted for time operands.
var timeLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// Filter is a predicate over row items for one column, made from a
// user entered expression. An expression starting with a comparison
// operator (>, <, >=, <=, ==, !=) compares the value of the column with
// the literal operand that follows: a quoted string, true or false, a
// number, nil, or a date and time. Any other expression matches values
// containing it as a substring, ignoring case.
type Filter struct {

	// Column is the column whose values are tested.
	Column *Column

	// Expr is the trimmed expression.
	Expr string

	op         string
	operand    any
	operandErr error
	needle     string
}

// NewFilter returns a new filter for the given column and expression.
func NewFilter(col *Column, expr string) *Filter {
	f := &Filter{Column: col, Expr: strings.TrimSpace(expr)}
	for _, op := range operators {
		if strings.HasPrefix(f.Expr, op) {
			f.op = op
			f.operand, f.operandErr = ParseOperand(f.Expr[len(op):])
			return f
		}
	}
	f.needle = strings.ToLower(f.Expr)
	return f
}

// Operator returns the comparison operator of the filter,
// or "" for a substring filter.
func (f *Filter) Operator() string {
	return f.op
}

// Match returns whether the given item passes the filter. A malformed
// operand or a value that cannot be ordered against the operand does
// not match, except for != which matches values of another kind.
// Errors looking up the value of the column are returned.
func (f *Filter) Match(item any) (bool, error) {
	v, err := f.Column.Value(item)
	if err != nil {
		return false, err
	}
	if f.op == "" {
		return strings.Contains(strings.ToLower(reflectx.ToString(v)), f.needle), nil
	}
	if f.operandErr != nil {
		return false, nil
	}
	return compareOp(f.op, v, f.operand), nil
}

func (f *Filter) String() string {
	return fmt.Sprintf("%s: %s", f.Column.Title, f.Expr)
}

func compareOp(op string, v, operand any) bool {
	if op == "==" || op == "!=" {
		eq := false
		if reflectx.AnyIsNil(v) || operand == nil {
			eq = reflectx.AnyIsNil(v) && operand == nil
		} else if c, ok := reflectx.Ordered(v, operand); ok {
			eq = c == 0
		}
		return eq == (op == "==")
	}
	c, ok := reflectx.Ordered(v, operand)
	if !ok {
		return false
	}
	switch op {
	case ">":
		return c > 0
	case ">=":
		return c >= 0
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	}
	return false
}

// ParseOperand parses the literal operand of a comparison expression:
// a single or double quoted string, true or false, nil (or None), an
// integer or floating point number, or a date and time in RFC 3339,
// "2006-01-02 15:04:05" or "2006-01-02" form.
func ParseOperand(s string) (any, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return nil, fmt.Errorf("table: missing operand")
	case "true", "True":
		return true, nil
	case "false", "False":
		return false, nil
	case "nil", "None", "null":
		return nil, nil
	}
	if n := len(s); n >= 2 && (s[0] == '"' || s[0] == '\'') && s[n-1] == s[0] {
		if s[0] == '"' {
			return strconv.Unquote(s)
		}
		return s[1 : n-1], nil
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i, nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		return fl, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("table: malformed operand %q", s)
}

// Filters is the set of active filters of a table, with at most one
// filter per column. An item passes when it passes all of the filters.
type Filters struct {
	filters ordmap.Map[*Column, *Filter]
}

// Add sets the filter for the given column to the given expression,
// replacing any existing one, and returns it. An expression that is
// empty after trimming removes the filter of the column instead,
// returning nil.
func (fs *Filters) Add(col *Column, expr string) *Filter {
	f := NewFilter(col, expr)
	if f.Expr == "" {
		fs.Remove(col)
		return nil
	}
	fs.filters.Add(col, f)
	return f
}

// Get returns the filter for the given column, or nil.
func (fs *Filters) Get(col *Column) *Filter {
	return fs.filters.ValueByKey(col)
}

// Has returns whether the given column has a filter.
func (fs *Filters) Has(col *Column) bool {
	_, ok := fs.filters.ValueByKeyTry(col)
	return ok
}

// Remove removes the filter for the given column,
// returning whether there was one.
func (fs *Filters) Remove(col *Column) bool {
	return fs.filters.DeleteKey(col)
}

// Len returns the number of active filters.
func (fs *Filters) Len() int {
	return fs.filters.Len()
}

// Clear removes all filters.
func (fs *Filters) Clear() {
	fs.filters = ordmap.Map[*Column, *Filter]{}
}

// All returns the active filters in the order they were first added.
func (fs *Filters) All() []*Filter {
	return fs.filters.Values()
}

// Match returns whether the given item passes all of the filters,
// stopping at the first one that it does not pass.
func (fs *Filters) Match(item any) (bool, error) {
	for _, kv := range fs.filters.Order {
		ok, err := kv.Value.Match(item)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// Seq returns a sequence of the given items that pass all of the
// filters, in order. It can be iterated any number of times. If the
// filters fail on an item, the error is yielded with a nil item and
// iteration stops.
func (fs *Filters) Seq(items Items) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		if items == nil {
			return
		}
		for i := range items.Len() {
			it := items.At(i)
			ok, err := fs.Match(it)
			if err != nil {
				yield(nil, err)
				return
			}
			if ok && !yield(it, nil) {
				return
			}
		}
	}
}

// Indexes returns the indexes of the given items that pass all of the filters.
func (fs *Filters) Indexes(items Items) ([]int, error) {
	if items == nil {
		return []int{}, nil
	}
	n := items.Len()
	idxs := make([]int, 0, n)
	for i := range n {
		ok, err := fs.Match(items.At(i))
		if err != nil {
			return nil, err
		}
		if ok {
			idxs = append(idxs, i)
		}
	}
	return idxs, nil
}
