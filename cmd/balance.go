package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type balanceCmd struct {
	account string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the current balance of an account" }
func (*balanceCmd) Usage() string {
	return `bnk balance -a <account>

  Shows the holder and current balance of the account.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account number (e.g. ACC001)")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	cfg := appConfig()
	store := openStore(cfg)

	account, err := store.GetAccount(c.account)
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account Number:  %s\n", account.Number())
	fmt.Printf("Account Holder:  %s\n", account.Name())
	fmt.Printf("Current Balance: %s\n", formatAmount(cfg, account.Balance()))
	return subcommands.ExitSuccess
}
