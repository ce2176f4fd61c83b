// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// Events are the types of events sent by a [Model] to its listeners.
type Events int32

const (
	// ResetBegin is sent before an operation that invalidates all
	// row and column addresses. Listeners must not query the model
	// for counts or cells until the matching [ResetEnd].
	ResetBegin Events = iota

	// ResetEnd is sent once the model is consistent again after
	// a [ResetBegin].
	ResetEnd

	// DataChanged is sent when the values of some cells changed
	// without a change in the rows. Event.Rows and Event.Cols
	// hold the affected view addresses.
	DataChanged

	// CheckedChanged is sent after the checked items changed.
	// Event.Items holds the items whose check state changed.
	CheckedChanged
)

func (ev Events) String() string {
	switch ev {
	case ResetBegin:
		return "ResetBegin"
	case ResetEnd:
		return "ResetEnd"
	case DataChanged:
		return "DataChanged"
	case CheckedChanged:
		return "CheckedChanged"
	}
	return "Events(?)"
}

// Event is an event sent by a [Model].
type Event struct {
	Type  Events
	Model *Model

	// Rows and Cols are the view rows and columns of the changed
	// cells of a [DataChanged] event: every combination of them changed.
	Rows []int
	Cols []int

	// Items are the items whose check state changed for [CheckedChanged].
	Items []any

	handled bool
}

// SetHandled marks the event as handled, so that
// no further listeners are called for it.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// IsHandled returns whether the event has been handled.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

// Listeners registers lists of event listener functions
// to receive different event types.
type Listeners map[Events][]func(ev *Event)

// Init ensures that map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Events][]func(*Event))
}

// Add adds a function for given type.
func (ls *Listeners) Add(typ Events, fun func(*Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all functions for given event, in the order they were
// added, and stops when the event is marked as handled.
// Views register on construction, so they see events before hosts.
func (ls *Listeners) Call(ev *Event) {
	for _, fun := range (*ls)[ev.Type] {
		fun(ev)
		if ev.IsHandled() {
			break
		}
	}
}
