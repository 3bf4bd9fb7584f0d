package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	markdown bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*listCmd) Usage() string {
	return `list [-md]

  Lists all transactions in the order they were recorded.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "Render a markdown table with the balance.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return withLedger(func(ledger *budget.Ledger) {
		if c.markdown {
			printMarkdown(renderer.TransactionsMarkdown(ledger.Transactions(), ledger.Balance()))
			return
		}
		fmt.Fprint(stdout, renderer.Transactions(ledger.Transactions()))
	})
}

// printMarkdown renders markdown for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
