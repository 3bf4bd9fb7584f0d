// Package cmd implements the CLI application to manage a budget ledger.
//
// Every command follows the same lifecycle: load the ledger file, run exactly
// one ledger operation, and save the whole ledger back to the file.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, command := range Commands() {
		c.Register(command, "ledger")
	}
}

// Commands returns a new instance of every application command.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&addCmd{kind: budget.Income},
		&addCmd{kind: budget.Expense},
		&balanceCmd{},
		&listCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (defaults to $"+EnvLedgerFile+" or "+DefaultLedgerFile+")")
var envFile = flag.String("env-file", "", "Path to a .env file with "+EnvLedgerFile+" and "+EnvDebug+" (defaults to .env if present)")
var debug = flag.Bool("debug", false, "Enable debug logging")

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// setupLogging installs the default structured logger on stderr.
func setupLogging(debug bool) {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}

// DecodeLedger loads the ledger from path. A missing file is an empty ledger.
func DecodeLedger(path string) (*budget.Ledger, error) {
	slog.Debug("Loading ledger", "path", path)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Info("Ledger file does not exist, starting with an empty ledger", "path", path)
	}

	ledger, err := budget.LoadLedger(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded ledger", "path", path, "transactions", ledger.Len(), "next_id", ledger.NextID())
	return ledger, nil
}

// EncodeLedger saves the whole ledger into path.
func EncodeLedger(path string, ledger *budget.Ledger) error {
	if err := budget.SaveLedger(path, ledger); err != nil {
		return err
	}
	slog.Debug("Saved ledger", "path", path, "transactions", ledger.Len())
	return nil
}

// withLedger runs op on the configured ledger and saves it back.
//
// If the ledger cannot be loaded op is not run and the file is left untouched:
// saving an empty ledger over a malformed file would lose its content.
func withLedger(op func(ledger *budget.Ledger)) subcommands.ExitStatus {
	cfg, err := LoadConfig(*envFile, *ledgerFile, *debug)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	setupLogging(cfg.Debug)

	ledger, err := DecodeLedger(cfg.LedgerFile)
	if err != nil {
		slog.Error("Could not load data", "path", cfg.LedgerFile, "error", err)
		fmt.Fprintf(stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}

	op(ledger)

	if err := EncodeLedger(cfg.LedgerFile, ledger); err != nil {
		slog.Error("Could not save data", "path", cfg.LedgerFile, "error", err)
		fmt.Fprintf(stderr, "Error saving data: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
