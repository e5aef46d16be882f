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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	directory string
	output    string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "write a per-category summary report" }
func (*summaryCmd) Usage() string {
	return `smt summary -d <dir> [-o <file>]

  Consolidates the directory, groups records by category, and writes a
  CSV report with each category's total quantity and average price.
  Without -o the report goes to ` + stockman.DefaultReportFile + `.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.directory, "d", "", "Directory containing the CSV files to report on.")
	f.StringVar(&c.directory, "directory", "", "Alias for -d.")
	f.StringVar(&c.output, "o", stockman.DefaultReportFile, "Output file for the summary report.")
	f.StringVar(&c.output, "output", stockman.DefaultReportFile, "Alias for -o.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := consolidate(c.directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rows := table.Summarize()
	if err := stockman.SaveSummary(c.output, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Summary report saved to %s\n", c.output)

	printMarkdown(renderer.Summary(rows, *currency))
	return subcommands.ExitSuccess
}
