// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// minSuggestSimilarity is the minimum title similarity for a suggestion.
const minSuggestSimilarity = 0.5

// FindColumn returns the column with the given title, matching
// exactly first and then ignoring case. If there is none, it returns
// a [*ColumnNotFoundError] suggesting the most similar title.
func FindColumn(columns []*Column, title string) (*Column, error) {
	for _, c := range columns {
		if c.Title == title {
			return c, nil
		}
	}
	for _, c := range columns {
		if strings.EqualFold(c.Title, title) {
			return c, nil
		}
	}
	err := &ColumnNotFoundError{Title: title}
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best := 0.0
	for _, c := range columns {
		sim := strutil.Similarity(title, c.Title, lev)
		if sim >= minSuggestSimilarity && sim > best {
			best = sim
			err.Suggestion = c.Title
		}
	}
	return nil, err
}
