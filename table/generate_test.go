// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"github.com/gabrielcnr/enaml-extensions/base/ordmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beatles() SliceOf[*ordmap.Map[string, any]] {
	return SliceOf[*ordmap.Map[string, any]]{
		ordmap.Make([]ordmap.KeyValue[string, any]{{Key: "name", Value: "George"}, {Key: "age", Value: 30}}),
		ordmap.Make([]ordmap.KeyValue[string, any]{{Key: "name", Value: "Ringo"}, {Key: "age", Value: 45}}),
	}
}

func titles(cols []*Column) []string {
	ts := make([]string, len(cols))
	for i, c := range cols {
		ts[i] = c.Title
	}
	return ts
}

func TestGenerateColumnsRecords(t *testing.T) {
	items := beatles()
	cols, err := GenerateColumns(items, GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, titles(cols))
	assert.Equal(t, AlignAuto, cols[0].Align)
	assert.Equal(t, AlignRight, cols[1].Align)

	al, err := cols[0].AlignFor(items[0])
	require.NoError(t, err)
	assert.Equal(t, AlignLeft, al)

	for _, it := range items {
		for _, c := range cols {
			v, err := c.Value(it)
			require.NoError(t, err)
			assert.Equal(t, it.ValueByKey(c.Key().Name()), v)
		}
	}

	pos := NewColumn(Index(1))
	v, err := pos.Value(items[1])
	require.NoError(t, err)
	assert.Equal(t, 45, v)
}

type track struct {
	Title  string
	Plays  int    `label:"Play Count"`
	Secret string `table:"-"`
	hidden int
}

func TestGenerateColumnsShapes(t *testing.T) {
	cols, err := GenerateColumns(SliceOf[*track]{{Title: "Help", Plays: 3}}, GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Title", "Play Count"}, titles(cols))
	assert.Equal(t, AlignRight, cols[1].Align)

	cols, err = GenerateColumns(Slice{map[string]any{"b": 1, "a": "x"}}, GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(cols))

	cols, err = GenerateColumns(Slice{[]any{"x", 1.5}}, GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, titles(cols))
	assert.Equal(t, AlignAuto, cols[0].Align)
	assert.Equal(t, AlignRight, cols[1].Align)

	cols, err = GenerateColumns(Slice{}, GenerateOptions{})
	assert.NoError(t, err)
	assert.Empty(t, cols)

	_, err = GenerateColumns(Slice{42}, GenerateOptions{})
	assert.Error(t, err)
}

func TestGenerateColumnsIncludeExclude(t *testing.T) {
	items := beatles()

	cols, err := GenerateColumns(items, GenerateOptions{Include: []any{"age", "name"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Age", "Name"}, titles(cols))

	cols, err = GenerateColumns(items, GenerateOptions{Include: []any{1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Age"}, titles(cols))

	cols, err = GenerateColumns(items, GenerateOptions{Exclude: []any{"name"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Age"}, titles(cols))

	cols, err = GenerateColumns(items, GenerateOptions{Include: []any{"name"}, Exclude: []any{"age"}})
	assert.ErrorIs(t, err, ErrIncludeExclude)
	assert.Nil(t, cols)

	_, err = GenerateColumns(items, GenerateOptions{Include: []any{"height"}})
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestGenerateColumnsHints(t *testing.T) {
	cols, err := GenerateColumns(beatles(), GenerateOptions{Hints: map[any]Hint{
		"name": {Title: "Who", Align: AlignCenter},
		"age":  {Format: "%03d"},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Who", "Age"}, titles(cols))
	assert.Equal(t, AlignCenter, cols[0].Align)
	assert.Equal(t, AlignRight, cols[1].Align)
	s, err := cols[1].DisplayValue(beatles()[0])
	require.NoError(t, err)
	assert.Equal(t, "030", s)

	_, err = GenerateColumns(beatles(), GenerateOptions{Hints: map[any]Hint{"height": {Title: "H"}}})
	assert.ErrorIs(t, err, ErrUnknownKey)
}

// recordSource is a minimal [FieldSource] over records.
type recordSource struct {
	SliceOf[*ordmap.Map[string, any]]
}

func (rs recordSource) Fields() []FieldInfo {
	return []FieldInfo{{Name: "name"}, {Name: "age", Numeric: true}}
}

func TestGenerateColumnsFieldSource(t *testing.T) {
	cols, err := GenerateColumns(recordSource{beatles()}, GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age"}, titles(cols))
	assert.Nil(t, cols[0].StyleFunc)
	assert.Equal(t, AlignRight, cols[1].Align)
	assert.NotNil(t, cols[1].StyleFunc)
}
