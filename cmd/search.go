package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/merigot/stockman"
	"github.com/merigot/stockman/renderer"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	directory string
	column    string
	value     string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the consolidated table for a column value" }
func (*searchCmd) Usage() string {
	return `smt search -d <dir> -column <name> -value <val>

  Consolidates the directory, then prints every record whose column
  equals the value. Numeric columns (quantity, price) compare by
  numeric value; string columns (name, category) by exact,
  case-sensitive equality.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.directory, "d", "", "Directory containing the CSV files to search.")
	f.StringVar(&c.directory, "directory", "", "Alias for -d.")
	f.StringVar(&c.column, "column", "", "Column to search (name, quantity, price or category).")
	f.StringVar(&c.value, "value", "", "Value to search for in the column.")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	field, err := stockman.ParseField(c.column)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	table, err := consolidate(c.directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	results, err := table.Search(field, c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if len(results) == 0 {
		fmt.Println("No matching records found.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Records("Search Results", results, *currency))
	return subcommands.ExitSuccess
}
