// Command lk tracks share lots and their one-year maturity.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/oguzcan/lotkeeper/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the subcommands and their flags.
// It only takes effect when the shell invokes the binary in completion mode.
func completion() {
	transaction := map[string]complete.Predictor{
		"n": predict.Something,
		"q": predict.Something,
		"d": predict.Something,
	}

	lk := &complete.Command{
		Flags: map[string]complete.Predictor{
			"file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"name": predict.Something,
				"kind": predict.Set{"stock", "etf"},
				"d":    predict.Something,
				"q":    predict.Something,
			}},
			"delete": {Flags: map[string]complete.Predictor{
				"n": predict.Something,
				"y": predict.Nothing,
			}},
			"buy":    {Flags: transaction},
			"sell":   {Flags: transaction},
			"list":   {Flags: map[string]complete.Predictor{"d": predict.Something}},
			"detail": {Flags: map[string]complete.Predictor{"n": predict.Something, "d": predict.Something}},
			"topic":  {Args: predict.Set{"readme", "commands", "maturity", "*"}},
		},
	}
	lk.Complete("lk")
}
