// Package cmd implements the CLI application to manage an account book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rvermeulen/bankbook"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "accounts")
	c.Register(&balanceCmd{}, "accounts")
	c.Register(&listCmd{}, "accounts")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&historyCmd{}, "transactions")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&menuCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "bankbook.yaml", "Path to the optional YAML configuration file")
var dataFile = flag.String("f", "", "Path to the account data file (JSON). Overrides the config file.")
var displayCurrency = flag.String("c", "", "ISO currency code used to format amounts. Overrides the config file.")

// appConfig loads the configuration file and applies flag overrides.
func appConfig() bankbook.Config {
	cfg, err := bankbook.LoadConfig(*configFile)
	if err != nil {
		log.Printf("warning, ignoring configuration: %v", err)
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *displayCurrency != "" {
		cfg.Currency = *displayCurrency
	}
	return cfg
}

// openStore is the central function to open the account store. A corrupt
// data file is reported as a warning and the store starts empty; the file on
// disk is only replaced on the next successful save.
func openStore(cfg bankbook.Config) *bankbook.Store {
	store, err := bankbook.Open(cfg.DataFile)
	if err != nil {
		log.Printf("warning, starting with an empty account list: %v", err)
	}
	return store
}

// printMarkdown renders markdown to the terminal. If rendering fails the raw
// markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// reportError prints the message the user should see for a failed operation.
// Each error kind has a distinct message.
func reportError(err error) {
	switch {
	case errors.Is(err, bankbook.ErrInvalidName):
		fmt.Fprintln(os.Stderr, "Error: account name cannot be empty.")
	case errors.Is(err, bankbook.ErrInvalidAmount):
		fmt.Fprintln(os.Stderr, "Error: amount must be a positive number.")
	case errors.Is(err, bankbook.ErrInsufficientFunds):
		fmt.Fprintln(os.Stderr, "Error: insufficient balance.")
	case errors.Is(err, bankbook.ErrAccountNotFound):
		fmt.Fprintln(os.Stderr, "Error: account not found.")
	case errors.Is(err, bankbook.ErrPersistence):
		fmt.Fprintln(os.Stderr, "Error: could not save account data; the operation was not applied.")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// formatAmount renders an amount in the configured display currency.
func formatAmount(cfg bankbook.Config, amount decimal.Decimal) string {
	return bankbook.FormatAmount(amount, cfg.Currency)
}
