package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rvermeulen/bankbook"
)

// --- Deposit Command ---

type depositCmd struct {
	account string
	amount  string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `bnk deposit -a <account> -amount <amount>

  Deposits a positive amount into the account and records the transaction.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account number (e.g. ACC001)")
	f.StringVar(&c.amount, "amount", "", "Amount to deposit")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := bankbook.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q\n", c.amount)
		return subcommands.ExitUsageError
	}

	cfg := appConfig()
	store := openStore(cfg)

	if err := store.Deposit(c.account, amount); err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}

	account, _ := store.GetAccount(c.account)
	fmt.Printf("Deposit recorded. New balance: %s\n", formatAmount(cfg, account.Balance()))
	return subcommands.ExitSuccess
}

// --- Withdraw Command ---

type withdrawCmd struct {
	account string
	amount  string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `bnk withdraw -a <account> -amount <amount>

  Withdraws a positive amount from the account and records the transaction.
  The withdrawal is rejected if it would make the balance negative.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account number (e.g. ACC001)")
	f.StringVar(&c.amount, "amount", "", "Amount to withdraw")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := bankbook.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q\n", c.amount)
		return subcommands.ExitUsageError
	}

	cfg := appConfig()
	store := openStore(cfg)

	if err := store.Withdraw(c.account, amount); err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}

	account, _ := store.GetAccount(c.account)
	fmt.Printf("Withdrawal recorded. New balance: %s\n", formatAmount(cfg, account.Balance()))
	return subcommands.ExitSuccess
}
