// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"github.com/gabrielcnr/enaml-extensions/base/errors"
)

var (
	// ErrNoKey is returned when a value is requested from a [Column]
	// that was not constructed with [NewColumn], and so has no way
	// to extract values from items.
	ErrNoKey = errors.New("table: column has no key")

	// ErrIncludeExclude is returned by [GenerateColumns] when both
	// an include and an exclude list are given.
	ErrIncludeExclude = errors.New("table: include and exclude are mutually exclusive")

	// ErrUnknownKey is returned by [GenerateColumns] when an include
	// entry or hint does not name any field of the items.
	ErrUnknownKey = errors.New("table: unknown field key")

	// ErrIndex is returned for row or column indexes out of range.
	ErrIndex = errors.New("table: index out of range")
)

// LookupError is returned when the key of a column is absent
// from an item: a missing field, a missing map key, an index
// out of range, or an item of the wrong shape.
type LookupError struct {
	Key  Key
	Item any
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("table: %s not found in item of type %T", e.Key, e.Item)
}

// FormatError is returned when a column format is not valid
// for the type of a value.
type FormatError struct {
	Format string
	Value  any
	Output string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("table: format %q is not valid for value %v of type %T: %s", e.Format, e.Value, e.Value, e.Output)
}

// ColumnNotFoundError is returned by [FindColumn] when no column
// has the given title. Suggestion is the closest title, if any.
type ColumnNotFoundError struct {
	Title      string
	Suggestion string
}

func (e *ColumnNotFoundError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("table: no column titled %q", e.Title)
	}
	return fmt.Sprintf("table: no column titled %q; did you mean %q?", e.Title, e.Suggestion)
}
