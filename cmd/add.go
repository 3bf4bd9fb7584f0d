package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

// addCmd records a transaction of a given kind.
type addCmd struct {
	kind budget.Kind
}

func (c *addCmd) Name() string {
	if c.kind == budget.Expense {
		return "add-expense"
	}
	return "add-income"
}

func (c *addCmd) Synopsis() string {
	if c.kind == budget.Expense {
		return "record money spent"
	}
	return "record money received"
}

func (c *addCmd) Usage() string {
	return fmt.Sprintf(`%[1]s <amount> <description>

  Records a new %[2]s transaction dated now. The amount is recorded as given;
  use "--" before a negative amount. Extra words are joined to the description.

Usage Examples:
$ bm %[1]s 42.50 groceries
`, c.Name(), strings.ToLower(c.kind.String()))
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing amount %q: %v\n", args[0], err)
		return subcommands.ExitUsageError
	}
	description := strings.Join(args[1:], " ")

	return withLedger(func(ledger *budget.Ledger) {
		tx := ledger.Add(amount, description, c.kind)
		fmt.Fprint(stdout, renderer.Added(tx))
	})
}
