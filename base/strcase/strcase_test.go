// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"name", []string{"name"}},
		{"unit_price", []string{"unit", "price"}},
		{"UnitPrice", []string{"Unit", "Price"}},
		{"JSONData", []string{"JSON", "Data"}},
		{"value x n", []string{"value", "x", "n"}},
		{"  total-amount.usd ", []string{"total", "amount", "usd"}},
		{"Field2Name", []string{"Field2", "Name"}},
		{"", nil},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Words(test.in), test.in)
	}
}

func TestToTitle(t *testing.T) {
	assert.Equal(t, "Name", ToTitle("name"))
	assert.Equal(t, "Age", ToTitle("age"))
	assert.Equal(t, "Unit Price", ToTitle("unit_price"))
	assert.Equal(t, "Unit Price", ToTitle("UnitPrice"))
	assert.Equal(t, "HTTP Status", ToTitle("HTTPStatus"))
	assert.Equal(t, "Value X N", ToTitle("value x n"))
}

func TestToSentence(t *testing.T) {
	assert.Equal(t, "Unit price", ToSentence("UnitPrice"))
	assert.Equal(t, "HTTP status code", ToSentence("HTTPStatusCode"))
	assert.Equal(t, "Name", ToSentence("name"))
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "unit_price", ToSnake("UnitPrice"))
	assert.Equal(t, "json_data", ToSnake("JSONData"))
}
