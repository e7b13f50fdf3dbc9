package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rvermeulen/bankbook"
)

type createCmd struct {
	name    string
	deposit string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new account" }
func (*createCmd) Usage() string {
	return `bnk create -name <holder> [-deposit <amount>]

  Creates a new account for the given holder. The account number is
  allocated automatically (ACC001, ACC002, ...). An optional initial
  deposit becomes the first transaction.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account holder name")
	f.StringVar(&c.deposit, "deposit", "0", "Initial deposit amount")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := bankbook.ParseAmount(c.deposit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing deposit amount %q\n", c.deposit)
		return subcommands.ExitUsageError
	}

	cfg := appConfig()
	store := openStore(cfg)

	account, err := store.CreateAccount(c.name, amount)
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account created.\n")
	fmt.Printf("  Account Number: %s\n", account.Number())
	fmt.Printf("  Name:           %s\n", account.Name())
	fmt.Printf("  Balance:        %s\n", formatAmount(cfg, account.Balance()))
	return subcommands.ExitSuccess
}
