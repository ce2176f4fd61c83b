// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gabrielcnr/enaml-extensions/base/errors"
	"github.com/gabrielcnr/enaml-extensions/logx"
	"github.com/gabrielcnr/enaml-extensions/table"
	"github.com/gabrielcnr/enaml-extensions/tableview"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

var shellCommand = &cobra.Command{
	Use:   "shell <file.csv>",
	Short: "Explore a CSV file in an interactive shell",
	Long:  "Explore a CSV file as a table in an interactive shell. Type help for the commands.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fail(cmd, err)
		}
		prof, err := profile()
		if err != nil {
			return fail(cmd, err)
		}
		s, err := openSession(cfg, args[0], prof)
		if err != nil {
			return fail(cmd, err)
		}
		return NewShell(s, cmd.OutOrStdout()).Run(cmd.InOrStdin())
	},
}

// Shell runs commands on a table session.
type Shell struct {
	s   *session
	out io.Writer
}

// shellCmd is a shell command.
type shellCmd struct {
	name string
	args string
	help string

	// minArgs is the minimum number of arguments.
	minArgs int
	run     func(sh *Shell, args []string) error
}

// errQuit is returned by the quit command.
var errQuit = errors.New("quit")

var shellCmds []*shellCmd

func init() {
	shellCmds = []*shellCmd{
		{"help", "", "show this help", 0, (*Shell).help},
		{"show", "[first] [n]", "show n rows from the first row", 0, (*Shell).show},
		{"columns", "", "list the columns with their filters", 0, (*Shell).columns},
		{"filter", "<column> [expression]", "filter a column; no expression removes the filter", 1, (*Shell).filter},
		{"reset", "", "remove all filters", 0, (*Shell).reset},
		{"sort", "<column> [desc]", "sort by a column", 1, (*Shell).sort},
		{"unsort", "", "restore the original order", 0, (*Shell).unsort},
		{"move", "<from> <to>", "move a column", 2, (*Shell).move},
		{"mode", "[mode]", "show or set the selection mode", 0, (*Shell).mode},
		{"select", "<row> <column> [one|extend|toggle|unselect]", "select a cell", 2, (*Shell).selectCell},
		{"all", "", "select all cells", 0, (*Shell).all},
		{"clear", "", "clear the selection", 0, (*Shell).clear},
		{"summary", "", "summarize the selected values", 0, (*Shell).summary},
		{"check", "<row>...", "check rows", 1, (*Shell).check},
		{"uncheck", "<row>...", "uncheck rows", 1, (*Shell).uncheck},
		{"checked", "", "list the checked rows", 0, (*Shell).checked},
		{"copy", "[-]", "copy the selection to the clipboard, or print it with -", 0, (*Shell).copy},
		{"key", "<chord>", "press a key chord, such as ctrl+c or ctrl+alt", 1, (*Shell).key},
		{"keyup", "[modifiers]", "release keys, keeping the given modifiers", 0, (*Shell).keyUp},
		{"open", "<row> <column>", "double click a cell", 2, (*Shell).open},
		{"info", "<row> <column>", "show the value, tooltip, image and style of a cell", 2, (*Shell).info},
		{"menu", "[row column]", "list the context menu of a cell", 0, (*Shell).menu},
		{"run", "<entry> [row column]", "run a context menu entry", 1, (*Shell).runEntry},
		{"quit", "", "quit the shell", 0, func(sh *Shell, args []string) error { return errQuit }},
	}
}

// NewShell returns a new shell of the given session writing to out.
func NewShell(s *session, out io.Writer) *Shell {
	sh := &Shell{s: s, out: out}
	s.view.OnDoubleClick(func(dc *tableview.DoubleClickContext) {
		fmt.Fprintf(sh.out, "double click %v: %s\n", dc.Cell, dc.Value)
	})
	s.view.SetActions(
		&tableview.ActionFunc{
			Text:        "Copy",
			EnabledFunc: func(ctx *tableview.MenuContext) bool { return len(ctx.Selection.Selected) > 0 },
			Func:        func(ctx *tableview.MenuContext) error { return ctx.View.Copy() },
		},
		&tableview.ActionFunc{
			Text:        "Inspect",
			EnabledFunc: func(ctx *tableview.MenuContext) bool { return ctx.Cell.IsValid() },
			Func: func(ctx *tableview.MenuContext) error {
				return sh.printInfo(ctx.Cell)
			},
		},
	)
	return sh
}

// Run executes the lines read from r until the end of input or quit.
func (sh *Shell) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	fmt.Fprint(sh.out, logx.CmdText("> "))
	for sc.Scan() {
		err := sh.Exec(sc.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(sh.out, logx.ErrorText("error: "+err.Error()))
		}
		fmt.Fprint(sh.out, logx.CmdText("> "))
	}
	return sc.Err()
}

// Exec executes one command line.
func (sh *Shell) Exec(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	name := strings.ToLower(args[0])
	if name == "exit" {
		name = "quit"
	}
	for _, c := range shellCmds {
		if c.name != name {
			continue
		}
		if len(args)-1 < c.minArgs {
			return fmt.Errorf("usage: %s %s", c.name, c.args)
		}
		return c.run(sh, args[1:])
	}
	return fmt.Errorf("unknown command %q; type help for the commands", args[0])
}

func (sh *Shell) help(args []string) error {
	for _, c := range shellCmds {
		usage := strings.TrimSpace(c.name + " " + c.args)
		fmt.Fprintf(sh.out, "  %-52s %s\n", usage, c.help)
	}
	return nil
}

// ints parses the given arguments as integers.
func ints(args []string) ([]int, error) {
	ns := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		ns[i] = n
	}
	return ns, nil
}

func (sh *Shell) show(args []string) error {
	ns, err := ints(args)
	if err != nil {
		return err
	}
	ns = append(ns, 0, 0)
	return sh.s.term.Render(sh.out, ns[0], ns[1])
}

func (sh *Shell) columns(args []string) error {
	m := sh.s.model
	sc, desc, sorted := m.SortKey()
	for col := range m.ColumnCount() {
		c := m.Column(col)
		if c == nil {
			fmt.Fprintf(sh.out, "%d\t(check)\n", col)
			continue
		}
		line := fmt.Sprintf("%d\t%s", col, c.Title)
		if f := m.Filter(c); f != nil {
			line += "\tfilter: " + f.Expr
		}
		switch {
		case sorted && sc == col && desc:
			line += "\tsorted descending"
		case sorted && sc == col:
			line += "\tsorted"
		}
		fmt.Fprintln(sh.out, line)
	}
	return nil
}

func (sh *Shell) filter(args []string) error {
	return sh.s.setFilter(args[0] + "=" + strings.Join(args[1:], " "))
}

func (sh *Shell) reset(args []string) error {
	return sh.s.model.ClearFilters()
}

func (sh *Shell) sort(args []string) error {
	col, err := sh.s.column(args[0])
	if err != nil {
		return err
	}
	desc := len(args) > 1 && strings.HasPrefix(strings.ToLower(args[1]), "desc")
	return sh.s.model.Sort(col, desc)
}

func (sh *Shell) unsort(args []string) error {
	return sh.s.model.ClearSort()
}

func (sh *Shell) move(args []string) error {
	from, err := sh.s.column(args[0])
	if err != nil {
		return err
	}
	to, err := sh.s.column(args[1])
	if err != nil {
		return err
	}
	return sh.s.model.MoveColumn(from, to)
}

func (sh *Shell) mode(args []string) error {
	if len(args) == 0 {
		mode := sh.s.view.Mode().String()
		if sh.s.view.Overridden() {
			mode += " (override)"
		}
		fmt.Fprintln(sh.out, mode)
		return nil
	}
	mode, ok := tableview.ParseSelectionMode(args[0])
	if !ok {
		return fmt.Errorf("unknown selection mode %q", args[0])
	}
	sh.s.view.SetSelectionMode(mode)
	return nil
}

// selectModes are the names of the select modes.
var selectModes = map[string]tableview.SelectModes{
	"one":      tableview.SelectOne,
	"extend":   tableview.ExtendContinuous,
	"toggle":   tableview.ExtendOne,
	"unselect": tableview.Unselect,
}

func (sh *Shell) selectCell(args []string) error {
	c, err := sh.s.cell(args[0], args[1])
	if err != nil {
		return err
	}
	mode := tableview.SelectOne
	if len(args) > 2 {
		m, ok := selectModes[strings.ToLower(args[2])]
		if !ok {
			return fmt.Errorf("unknown select mode %q", args[2])
		}
		mode = m
	}
	return sh.s.view.Select(c, mode)
}

func (sh *Shell) all(args []string) error {
	sh.s.view.SelectAll()
	return nil
}

func (sh *Shell) clear(args []string) error {
	sh.s.view.ClearSelection()
	return nil
}

func (sh *Shell) summary(args []string) error {
	fmt.Fprintln(sh.out, sh.s.view.Summary().String())
	return nil
}

// setChecks sets the check state of the given rows.
func (sh *Shell) setChecks(args []string, state table.CheckStates) error {
	rows, err := ints(args)
	if err != nil {
		return err
	}
	m := sh.s.model
	if !m.Checkable() {
		return fmt.Errorf("the table is not checkable")
	}
	for _, r := range rows {
		if err := m.SetCheckState(r, state); err != nil {
			return err
		}
	}
	return nil
}

func (sh *Shell) check(args []string) error {
	return sh.setChecks(args, table.Checked)
}

func (sh *Shell) uncheck(args []string) error {
	return sh.setChecks(args, table.Unchecked)
}

func (sh *Shell) checked(args []string) error {
	for _, it := range sh.s.model.CheckedItems() {
		fmt.Fprintln(sh.out, it)
	}
	return nil
}

func (sh *Shell) copy(args []string) error {
	if len(args) > 0 && args[0] == "-" {
		text, err := sh.s.view.CopyText()
		if err != nil {
			return err
		}
		fmt.Fprint(sh.out, text)
		return nil
	}
	return sh.s.view.Copy()
}

func (sh *Shell) key(args []string) error {
	ch, err := tableview.ParseChord(args[0])
	if err != nil {
		return err
	}
	handled, err := sh.s.view.KeyDown(ch)
	if err != nil {
		return err
	}
	if !handled {
		fmt.Fprintf(sh.out, "%v: not handled\n", ch)
	}
	return nil
}

func (sh *Shell) keyUp(args []string) error {
	var mods tableview.Modifiers
	if len(args) > 0 {
		ch, err := tableview.ParseChord(args[0])
		if err != nil {
			return err
		}
		mods = ch.Mods
	}
	sh.s.view.KeyUp(mods)
	return nil
}

func (sh *Shell) open(args []string) error {
	c, err := sh.s.cell(args[0], args[1])
	if err != nil {
		return err
	}
	_, err = sh.s.view.DoubleClick(c)
	return err
}

func (sh *Shell) printInfo(c tableview.Cell) error {
	info, err := sh.s.term.Inspect(c)
	if err != nil {
		return err
	}
	fmt.Fprint(sh.out, info)
	return nil
}

func (sh *Shell) info(args []string) error {
	c, err := sh.s.cell(args[0], args[1])
	if err != nil {
		return err
	}
	return sh.printInfo(c)
}

// menuAt returns the context menu of the cell given by the arguments,
// or of the empty area for none.
func (sh *Shell) menuAt(args []string) ([]tableview.MenuEntry, error) {
	c := tableview.NoCell
	if len(args) >= 2 {
		var err error
		c, err = sh.s.cell(args[0], args[1])
		if err != nil {
			return nil, err
		}
	}
	return sh.s.view.ContextMenu(c), nil
}

func (sh *Shell) menu(args []string) error {
	entries, err := sh.menuAt(args)
	if err != nil {
		return err
	}
	for i, e := range entries {
		fmt.Fprintf(sh.out, "%d\t%s\n", i, e.Caption)
	}
	return nil
}

func (sh *Shell) runEntry(args []string) error {
	entries, err := sh.menuAt(args[1:])
	if err != nil {
		return err
	}
	for i, e := range entries {
		if args[0] == strconv.Itoa(i) || strings.EqualFold(args[0], e.Caption) {
			return e.Run()
		}
	}
	return fmt.Errorf("no menu entry %q", args[0])
}
