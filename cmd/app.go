// Package cmd implements the CLI application to manage stock CSV
// files.
//
// A main package registers Commands on a subcommands.Commander and
// executes the user-selected one.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/merigot/stockman"
)

// Commands is the list of subcommands.
var Commands = []subcommands.Command{
	&consolidateCmd{},
	&searchCmd{},
	&summaryCmd{},
	&interactiveCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", "", "ISO 4217 code used to display prices (plain numbers when empty)")

// consolidate is the central helper commands use to load the table
// from their directory flag.
func consolidate(dir string) (*stockman.Table, error) {
	if dir == "" {
		return nil, fmt.Errorf("a directory is required (-d flag)")
	}
	return stockman.Consolidate(dir)
}
