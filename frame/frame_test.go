// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const beatlesCSV = `name,age,score,note
George,30,1.5,
Ringo,45,,drums
John,40,-2,x
`

func beatles(t *testing.T) *Frame {
	f, err := ReadCSV(strings.NewReader(beatlesCSV), Comma)
	require.NoError(t, err)
	return f
}

func TestReadCSV(t *testing.T) {
	f := beatles(t)
	assert.Equal(t, 3, f.NumRows())
	assert.Equal(t, []string{"name", "age", "score", "note"}, f.ColumnNames())

	kinds := []reflect.Kind{}
	for _, c := range f.Columns {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []reflect.Kind{reflect.String, reflect.Int, reflect.Float64, reflect.String}, kinds)

	want := [][]any{
		{"George", 30, 1.5, ""},
		{"Ringo", 45, math.NaN(), "drums"},
		{"John", 40, -2.0, "x"},
	}
	got := [][]any{}
	for i := range f.Len() {
		got = append(got, f.At(i).(Row).Values())
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
}

func TestReadCSVDetect(t *testing.T) {
	f, err := ReadCSV(strings.NewReader("a\tb\n1\tx\n2\ty\n"), Detect)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, f.ColumnNames())
	assert.Equal(t, 2, f.Value(1, 0))

	fsys := fstest.MapFS{"beatles.csv": {Data: []byte(beatlesCSV)}}
	f, err = OpenFS(fsys, "beatles.csv", Detect)
	require.NoError(t, err)
	assert.Equal(t, "Ringo", f.Value(1, 0))

	f, err = ReadCSV(strings.NewReader(""), Comma)
	require.NoError(t, err)
	assert.Equal(t, 0, f.NumColumns())
}

func TestInferDataType(t *testing.T) {
	assert.Equal(t, reflect.Int, InferDataType("42"))
	assert.Equal(t, reflect.Float64, InferDataType("4.2"))
	assert.Equal(t, reflect.Float64, InferDataType("1e3"))
	assert.Equal(t, reflect.String, InferDataType("4.2.1"))

	d, err := ParseDelims("\\t")
	require.NoError(t, err)
	assert.Equal(t, Tab, d)
	_, err = ParseDelims("pipe")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, beatles(t).WriteCSV(&b, Comma))
	assert.Equal(t, "name,age,score,note\nGeorge,30,1.5,\nRingo,45,NaN,drums\nJohn,40,-2,x\n", b.String())
}

func TestRow(t *testing.T) {
	f := beatles(t)
	r := f.At(1).(Row)
	v, ok := r.ValueByKeyTry("age")
	assert.True(t, ok)
	assert.Equal(t, 45, v)
	_, ok = r.ValueByKeyTry("instrument")
	assert.False(t, ok)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, "drums", r.ValueByIndex(3))
	assert.Equal(t, 1, r.RowKey())

	f.KeyColumn = "name"
	assert.Equal(t, "Ringo", r.RowKey())
}

func TestFrameEdit(t *testing.T) {
	f := New()
	_, err := f.AddColumn("id", reflect.Int)
	require.NoError(t, err)
	require.NoError(t, f.AppendRow(1))
	_, err = f.AddColumn("id", reflect.String)
	assert.Error(t, err)
	_, err = f.AddColumn("label", reflect.String)
	require.NoError(t, err)
	assert.Equal(t, "", f.Value(0, 1))
	assert.Error(t, f.AppendRow(2))

	f.SetNumRows(3)
	assert.Equal(t, []any{1, 0, 0}, f.Column("id").Values)
	f.SetNumRows(1)
	assert.Equal(t, 1, f.Len())
	assert.Nil(t, f.Column("missing"))
}

func TestFrameModel(t *testing.T) {
	f := beatles(t)
	cols, err := table.GenerateColumns(f, table.GenerateOptions{})
	require.NoError(t, err)
	require.Len(t, cols, 4)
	assert.Equal(t, "age", cols[1].Title)
	assert.Equal(t, table.AlignRight, cols[1].Align)
	assert.NotNil(t, cols[2].StyleFunc)
	assert.Equal(t, table.AlignAuto, cols[3].Align)

	m := table.NewModel(cols, f)
	v, err := m.Value(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 40, v)

	require.NoError(t, m.SetFilter(cols[1], ">40"))
	assert.Equal(t, 1, m.RowCount())
	s, err := m.DisplayValue(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Ringo", s)
}
