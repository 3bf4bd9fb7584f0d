package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line of the application for shell completion.
// Subcommands and their flags are taken from Commands.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			// builtin commands of subcommands.Commander.
			"help":     {Sub: map[string]*complete.Command{}},
			"commands": {Args: predict.Nothing},
			"flags":    {Args: predict.Nothing},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.json"),
			"env-file":    predict.Files("*"),
			"debug":       predict.Nothing,
		},
	}

	for _, c := range Commands() {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)

		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		f.VisitAll(func(fl *flag.Flag) {
			sub.Flags[fl.Name] = flagPredictor(fl)
		})
		root.Sub[c.Name()] = sub
		root.Sub["help"].Sub[c.Name()] = &complete.Command{}
	}
	return root
}

// flagPredictor predicts nothing after boolean flags and anything after the others.
func flagPredictor(fl *flag.Flag) complete.Predictor {
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}
