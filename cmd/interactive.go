package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/merigot/stockman"
	"github.com/merigot/stockman/renderer"
)

type interactiveCmd struct{}

func (*interactiveCmd) Name() string     { return "interactive" }
func (*interactiveCmd) Synopsis() string { return "launch the menu-driven mode" }
func (*interactiveCmd) Usage() string {
	return `smt interactive

  Presents a numbered menu (consolidate, search, summary, exit)
  prompting for parameters on standard input. Errors return to the
  menu instead of ending the session.
`
}

func (*interactiveCmd) SetFlags(_ *flag.FlagSet) {}

func (c *interactiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m := newMenu(os.Stdin, os.Stdout)
	m.show = printMarkdown
	m.run()
	return subcommands.ExitSuccess
}

// menuState is the state of the interactive session's state machine.
type menuState int

const (
	stateMainMenu menuState = iota
	stateAwaitingDirectory
	stateAwaitingSearchParams
	stateAwaitingOutputPath
	stateExiting
)

// menu drives the interactive session. Input and output are injected
// so tests can script a whole session.
type menu struct {
	in    *bufio.Scanner
	out   io.Writer
	show  func(md string) // renders markdown reports
	state menuState
	table *stockman.Table // consolidated once, reused by search and summary
}

func newMenu(r io.Reader, w io.Writer) *menu {
	m := &menu{in: bufio.NewScanner(r), out: w, state: stateMainMenu}
	m.show = func(md string) { fmt.Fprint(w, md) }
	return m
}

// run loops over the state machine until the session exits.
func (m *menu) run() {
	fmt.Fprintln(m.out, "Welcome to the Stock Management Tool")
	for m.state != stateExiting {
		switch m.state {
		case stateMainMenu:
			m.mainMenu()
		case stateAwaitingDirectory:
			m.awaitDirectory()
		case stateAwaitingSearchParams:
			m.awaitSearchParams()
		case stateAwaitingOutputPath:
			m.awaitOutputPath()
		}
	}
	fmt.Fprintln(m.out, "Exiting the program. Goodbye!")
}

// prompt prints 'p' and reads one trimmed input line. ok is false when
// the input is exhausted, which ends the session.
func (m *menu) prompt(p string) (line string, ok bool) {
	fmt.Fprint(m.out, p)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) mainMenu() {
	fmt.Fprintln(m.out, "1. Consolidate CSV Files")
	fmt.Fprintln(m.out, "2. Search Data")
	fmt.Fprintln(m.out, "3. Generate Summary Report")
	fmt.Fprintln(m.out, "4. Exit")

	choice, ok := m.prompt("Enter your choice: ")
	if !ok {
		m.state = stateExiting
		return
	}

	switch choice {
	case "1":
		m.state = stateAwaitingDirectory
	case "2":
		if m.table == nil {
			fmt.Fprintln(m.out, "No data available. Please consolidate CSV files first.")
			return
		}
		m.state = stateAwaitingSearchParams
	case "3":
		if m.table == nil {
			fmt.Fprintln(m.out, "No data available. Please consolidate CSV files first.")
			return
		}
		m.state = stateAwaitingOutputPath
	case "4":
		m.state = stateExiting
	default:
		fmt.Fprintln(m.out, "Invalid choice. Please try again.")
	}
}

func (m *menu) awaitDirectory() {
	m.state = stateMainMenu

	dir, ok := m.prompt("Enter the directory containing CSV files: ")
	if !ok {
		m.state = stateExiting
		return
	}

	table, err := consolidate(dir)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	m.table = table
	fmt.Fprintln(m.out, "CSV files consolidated successfully.")
}

func (m *menu) awaitSearchParams() {
	m.state = stateMainMenu

	column, ok := m.prompt("Enter the column to search: ")
	if !ok {
		m.state = stateExiting
		return
	}
	field, err := stockman.ParseField(column)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}

	value, ok := m.prompt("Enter the search value: ")
	if !ok {
		m.state = stateExiting
		return
	}

	results, err := m.table.Search(field, value)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(m.out, "No matching records found.")
		return
	}
	m.show(renderer.Records("Search Results", results, *currency))
}

func (m *menu) awaitOutputPath() {
	m.state = stateMainMenu

	output, ok := m.prompt("Enter the output file name for the summary report (or press Enter for default): ")
	if !ok {
		m.state = stateExiting
		return
	}
	if output == "" {
		output = stockman.DefaultReportFile
	}

	rows := m.table.Summarize()
	if err := stockman.SaveSummary(output, rows); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Summary report saved to %s\n", output)
	m.show(renderer.Summary(rows, *currency))
}
