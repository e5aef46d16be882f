package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/merigot/stockman/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("smt")

	// without a subcommand, start the interactive menu
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "interactive")
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	dir := predict.Dirs("*")
	csv := predict.Files("*.csv")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"consolidate": {Flags: map[string]complete.Predictor{
				"d": dir, "directory": dir, "o": csv, "output": csv,
			}},
			"search": {Flags: map[string]complete.Predictor{
				"d": dir, "directory": dir,
				"column": predict.Set{"name", "quantity", "price", "category"},
				"value":  predict.Something,
			}},
			"summary": {Flags: map[string]complete.Predictor{
				"d": dir, "directory": dir, "o": csv, "output": csv,
			}},
			"interactive": {},
			"topic":       {Args: predict.Something},
		},
		Flags: map[string]complete.Predictor{
			"currency": predict.Something,
		},
	}
}
