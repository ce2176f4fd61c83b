// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableview

// MenuContext is passed to the context menu actions of a view.
type MenuContext struct {
	View *View

	// Cell is the cell the menu was requested on, or [NoCell]
	// for the empty area of the view.
	Cell Cell

	// Selection is the selection when the menu was requested.
	Selection *SelectionContext
}

// Action is a context menu action.
type Action interface {

	// Enabled returns whether the action is shown for the given context.
	Enabled(ctx *MenuContext) bool

	// Caption returns the text of the menu entry.
	Caption(ctx *MenuContext) string

	// Execute runs the action.
	Execute(ctx *MenuContext) error
}

// ActionFunc is an [Action] made from a caption and functions.
type ActionFunc struct {
	Text string

	// EnabledFunc returns whether the action is enabled;
	// nil means always.
	EnabledFunc func(ctx *MenuContext) bool

	Func func(ctx *MenuContext) error
}

func (a *ActionFunc) Enabled(ctx *MenuContext) bool {
	return a.EnabledFunc == nil || a.EnabledFunc(ctx)
}

func (a *ActionFunc) Caption(ctx *MenuContext) string { return a.Text }

func (a *ActionFunc) Execute(ctx *MenuContext) error {
	if a.Func == nil {
		return nil
	}
	return a.Func(ctx)
}

// ResetFiltersAction clears the filters of the model.
// It is enabled when any filter is active.
type ResetFiltersAction struct{}

func (ResetFiltersAction) Enabled(ctx *MenuContext) bool {
	return ctx.View.Model.HasFilters()
}

func (ResetFiltersAction) Caption(ctx *MenuContext) string { return "Reset Filters" }

func (ResetFiltersAction) Execute(ctx *MenuContext) error {
	return ctx.View.Model.ClearFilters()
}

// builtinActions are appended to the actions of every view.
var builtinActions = []Action{ResetFiltersAction{}}

// MenuEntry is an enabled action of a context menu, with its caption.
type MenuEntry struct {
	Caption string
	Action  Action
	Context *MenuContext
}

// Run executes the action of the entry.
func (me MenuEntry) Run() error {
	return me.Action.Execute(me.Context)
}

// SetActions sets the context menu actions of the view.
func (v *View) SetActions(actions ...Action) {
	v.actions = actions
}

// AddAction adds a context menu action to the view.
func (v *View) AddAction(action Action) {
	v.actions = append(v.actions, action)
}

// ContextMenu returns the entries of the context menu requested on
// the given cell: the enabled actions in the order they were added,
// followed by the enabled built-in actions.
func (v *View) ContextMenu(c Cell) []MenuEntry {
	if v.checkCell(c) != nil {
		c = NoCell
	}
	ctx := &MenuContext{View: v, Cell: c, Selection: v.SelectionContext()}
	var entries []MenuEntry
	for _, acts := range [][]Action{v.actions, builtinActions} {
		for _, a := range acts {
			if !a.Enabled(ctx) {
				continue
			}
			entries = append(entries, MenuEntry{Caption: a.Caption(ctx), Action: a, Context: ctx})
		}
	}
	return entries
}
