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

// consolidateCmd holds the flags for the 'consolidate' subcommand.
type consolidateCmd struct {
	directory string
	output    string
}

func (*consolidateCmd) Name() string     { return "consolidate" }
func (*consolidateCmd) Synopsis() string { return "merge the CSV files of a directory into one table" }
func (*consolidateCmd) Usage() string {
	return `smt consolidate -d <dir> [-o <file>]

  Merges every CSV file of the directory into a single table and
  reports the file and record counts. With -o, also writes the
  combined table to a single CSV file.
`
}

func (c *consolidateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.directory, "d", "", "Directory containing the CSV files to merge.")
	f.StringVar(&c.directory, "directory", "", "Alias for -d.")
	f.StringVar(&c.output, "o", "", "Write the combined table to this CSV file.")
	f.StringVar(&c.output, "output", "", "Alias for -o.")
}

func (c *consolidateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := consolidate(c.directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output != "" {
		if err := saveTable(c.output, table); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Combined table saved to %s\n", c.output)
	}

	printMarkdown(renderer.Consolidation(table))
	return subcommands.ExitSuccess
}

// saveTable writes the combined table to a CSV file.
func saveTable(path string, table *stockman.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write combined table to %q: %w", path, err)
	}
	if err := stockman.EncodeTable(f, table); err != nil {
		f.Close()
		return fmt.Errorf("cannot write combined table to %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write combined table to %q: %w", path, err)
	}
	return nil
}
