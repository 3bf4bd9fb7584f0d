// Command bm is a personal budget manager: it records incomes and expenses in
// a local ledger file and reports the balance.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/budget/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Exits when invoked by the shell for completion.
	cmd.Completion().Complete("bm")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
