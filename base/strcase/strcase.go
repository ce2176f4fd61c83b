// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strcase provides functions for manipulating the case of identifiers,
// field names and keys (snake_case, CamelCase, kebab-case) to produce
// human readable labels such as Title Case column headers. Its principle
// difference from simpler approaches is that it preserves acronyms in the
// input text, so that "HTTPStatus" becomes "HTTP Status".
package strcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titler = cases.Title(language.Und, cases.NoLower)
	lower  = cases.Lower(language.Und)
)

// Words splits the given identifier into words. Underscores, dashes,
// dots and white space separate words, as do transitions from lower to
// upper case letters. A run of upper case letters is kept together as
// an acronym, except for its last letter when that starts a new
// capitalized word, as in "JSONData" -> ["JSON", "Data"].
func Words(s string) []string {
	runes := []rune(strings.TrimSpace(s))
	var words []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}
	for i, r := range runes {
		if isDelimiter(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush(i)
			start = i
		case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}

func isDelimiter(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// ToTitle returns words in Title Case (capitalized words with spaces),
// preserving acronyms: "unit_price" -> "Unit Price", "HTTPStatus" -> "HTTP Status".
func ToTitle(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = titler.String(w)
	}
	return strings.Join(words, " ")
}

// ToSentence returns words in Sentence case (lower case words with spaces,
// with the first word capitalized). Acronyms are preserved.
func ToSentence(s string) string {
	words := Words(s)
	for i, w := range words {
		switch {
		case isAcronym(w):
		case i == 0:
			words[i] = titler.String(lower.String(w))
		default:
			words[i] = lower.String(w)
		}
	}
	return strings.Join(words, " ")
}

// ToSnake returns words in snake_case (lower case words with underscores).
func ToSnake(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = lower.String(w)
	}
	return strings.Join(words, "_")
}

func isAcronym(w string) bool {
	n := 0
	for _, r := range w {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			n++
		}
	}
	return n > 1
}
