// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChord(t *testing.T) {
	ch, err := ParseChord("ctrl+C")
	require.NoError(t, err)
	assert.Equal(t, Chord{Rune: 'c', Mods: Control}, ch)
	assert.True(t, ch.isCopy())

	ch, err = ParseChord("Control+Alt")
	require.NoError(t, err)
	assert.Equal(t, Chord{Mods: Control | Alt}, ch)
	assert.Equal(t, "Control+Alt", ch.String())

	ch, err = ParseChord("meta+c")
	require.NoError(t, err)
	assert.True(t, ch.isCopy())

	for _, s := range []string{"ctrl+cc", "a+b", "ctrl+"} {
		_, err := ParseChord(s)
		assert.Error(t, err, s)
	}
}
