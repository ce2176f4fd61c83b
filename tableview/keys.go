// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableview

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Modifiers are the modifier keys held during a key or mouse event,
// as bit flags.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// Has returns whether all of the given modifiers are held.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods == mods
}

func (m Modifiers) String() string {
	var names []string
	for _, f := range []struct {
		mod  Modifiers
		name string
	}{{Control, "Control"}, {Alt, "Alt"}, {Shift, "Shift"}, {Meta, "Meta"}} {
		if m.Has(f.mod) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "+")
}

// Chord is a key press with the modifiers held.
type Chord struct {
	Rune rune
	Mods Modifiers
}

func (ch Chord) String() string {
	s := string(unicode.ToUpper(ch.Rune))
	if ch.Rune == 0 {
		s = ""
	}
	if ch.Mods == 0 {
		return s
	}
	if s == "" {
		return ch.Mods.String()
	}
	return ch.Mods.String() + "+" + s
}

// ParseChord parses a chord of modifier names and at most one key
// joined by "+", such as "Control+C", "ctrl+alt" or "meta+c".
func ParseChord(s string) (Chord, error) {
	var ch Chord
	for _, part := range strings.Split(s, "+") {
		p := strings.ToLower(strings.TrimSpace(part))
		switch p {
		case "shift":
			ch.Mods |= Shift
		case "control", "ctrl":
			ch.Mods |= Control
		case "alt", "option":
			ch.Mods |= Alt
		case "meta", "cmd", "command":
			ch.Mods |= Meta
		default:
			r, n := utf8.DecodeRuneInString(p)
			if n == 0 || n != len(p) || ch.Rune != 0 {
				return Chord{}, fmt.Errorf("tableview: invalid key chord %q", s)
			}
			ch.Rune = r
		}
	}
	return ch, nil
}

// isCopy returns whether the chord is the copy shortcut.
func (ch Chord) isCopy() bool {
	return unicode.ToLower(ch.Rune) == 'c' && !ch.Mods.Has(Alt) &&
		(ch.Mods.Has(Control) || ch.Mods.Has(Meta))
}

// Overridden returns whether the multi-cell selection override is active.
func (v *View) Overridden() bool {
	return v.override
}

// KeyDown handles a key press, returning whether it was handled.
// The copy shortcut copies the selection. Holding Control and Alt
// enters the multi-cell selection override, clearing the selection,
// unless it is already active.
func (v *View) KeyDown(ch Chord) (bool, error) {
	switch {
	case ch.isCopy():
		return true, v.Copy()
	case ch.Mods.Has(Control | Alt):
		if !v.override {
			v.override = true
			v.ClearSelection()
		}
		return true, nil
	case ch.Mods.Has(Control) && unicode.ToLower(ch.Rune) == 'a':
		v.SelectAll()
		return true, nil
	}
	return false, nil
}

// KeyUp handles a key release, given the modifiers still held. Releasing
// Control or Alt restores the configured selection mode.
func (v *View) KeyUp(mods Modifiers) {
	if v.override && !mods.Has(Control|Alt) {
		v.override = false
	}
}
