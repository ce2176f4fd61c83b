// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/gabrielcnr/enaml-extensions/base/errors"
	"github.com/gabrielcnr/enaml-extensions/base/fsx"
	"github.com/gabrielcnr/enaml-extensions/base/reflectx"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	Space

	// Detect is used during reading a file: reads the first line and detects tabs or commas.
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

func (dl Delims) String() string {
	switch dl {
	case Tab:
		return "tab"
	case Comma:
		return "comma"
	case Space:
		return "space"
	}
	return "detect"
}

// ParseDelims returns the delimiter with the given name, or the
// delimiter for a single delimiter character.
func ParseDelims(s string) (Delims, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`, "\t":
		return Tab, nil
	case "comma", ",":
		return Comma, nil
	case "space", " ":
		return Space, nil
	case "detect", "":
		return Detect, nil
	}
	return Detect, fmt.Errorf("frame: unknown delimiter %q", s)
}

// detect returns the delimiter of the first line read from br.
func detect(br *bufio.Reader) Delims {
	buf, _ := br.Peek(4096)
	if i := bytes.IndexByte(buf, '\n'); i >= 0 {
		buf = buf[:i]
	}
	switch {
	case bytes.IndexByte(buf, '\t') >= 0:
		return Tab
	case bytes.IndexByte(buf, ',') >= 0:
		return Comma
	}
	return Space
}

// OpenCSV reads a frame from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// The first row of the file has the column names, and the column
// kinds are inferred from the values.
func OpenCSV(filename string, delim Delims) (*Frame, error) {
	fsys, fname, err := fsx.DirFS(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	return OpenFS(fsys, fname, delim)
}

// OpenFS is the version of [OpenCSV] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, delim Delims) (*Frame, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(fp, delim)
}

// ReadCSV reads a frame from CSV data, as in [OpenCSV].
func ReadCSV(r io.Reader, delim Delims) (*Frame, error) {
	br := bufio.NewReader(r)
	if delim == Detect {
		delim = detect(br)
	}
	cr := csv.NewReader(br)
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	f := New()
	if len(rec) == 0 {
		return f, nil
	}
	hdrs := rec[0]
	rec = rec[1:]
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		if _, err := f.AddColumn(hd, columnKind(rec, ci)); err != nil {
			return nil, err
		}
	}
	f.SetNumRows(len(rec))
	for ri, rw := range rec {
		f.readRow(rw, ri)
	}
	return f, nil
}

// readRow reads a record of CSV data into the given row.
func (f *Frame) readRow(rec []string, row int) {
	for ci, c := range f.Columns {
		if ci >= len(rec) {
			c.Values[row] = nil
			continue
		}
		str := strings.TrimSpace(rec[ci])
		switch c.Kind {
		case reflect.Int:
			if iv, err := strconv.Atoi(str); err == nil {
				c.Values[row] = iv
			} else {
				c.Values[row] = nil
			}
		case reflect.Float64:
			if fv, err := strconv.ParseFloat(str, 64); err == nil {
				c.Values[row] = fv
			} else {
				c.Values[row] = math.NaN()
			}
		default:
			c.Values[row] = str
		}
	}
}

// columnKind returns the kind of the values in the given column
// of the records: the most general kind inferred from its non-empty values.
func columnKind(rec [][]string, ci int) reflect.Kind {
	typ := reflect.Invalid
	for _, rw := range rec {
		if ci >= len(rw) {
			continue
		}
		rv := strings.TrimSpace(rw[ci])
		if rv == "" || rv == "NaN" || rv == "-NaN" || rv == "Inf" || rv == "-Inf" {
			if typ == reflect.Int {
				typ = reflect.Float64
			}
			continue
		}
		ctyp := InferDataType(rv)
		switch {
		case ctyp == reflect.String: // definitive
			return ctyp
		case typ == reflect.Invalid:
			typ = ctyp
		case typ == reflect.Int && ctyp == reflect.Float64: // upgrade
			typ = ctyp
		}
	}
	if typ == reflect.Invalid {
		return reflect.String
	}
	return typ
}

// InferDataType returns the inferred data type for the given string.
// It only deals with float64, int, and string types.
func InferDataType(str string) reflect.Kind {
	if strings.Contains(str, ".") {
		_, err := strconv.ParseFloat(str, 64)
		if err == nil {
			return reflect.Float64
		}
	}
	_, err := strconv.ParseInt(str, 10, 64)
	if err == nil {
		return reflect.Int
	}
	// try float again just in case..
	_, err = strconv.ParseFloat(str, 64)
	if err == nil {
		return reflect.Float64
	}
	return reflect.String
}

// SaveCSV writes the frame to a CSV file, as in [Frame.WriteCSV].
func (f *Frame) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := f.WriteCSV(bw, delim); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCSV writes the frame as CSV data with a header row of the
// column names. Float values are written with the shortest
// representation, and nil values are written as empty strings.
func (f *Frame) WriteCSV(w io.Writer, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if err := cw.Write(f.ColumnNames()); err != nil {
		return err
	}
	rec := make([]string, len(f.Columns))
	for ri := range f.rows {
		for ci, c := range f.Columns {
			rec[ci] = reflectx.ToString(c.Values[ri])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
