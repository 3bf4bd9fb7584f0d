package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the current balance" }
func (*balanceCmd) Usage() string {
	return `balance

  Displays the sum of all incomes minus the sum of all expenses.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return withLedger(func(ledger *budget.Ledger) {
		fmt.Fprint(stdout, renderer.Balance(ledger.Balance()))
	})
}
