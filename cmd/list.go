package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/rvermeulen/bankbook"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "ls" }
func (*listCmd) Synopsis() string { return "list all accounts" }
func (*listCmd) Usage() string {
	return `bnk ls

  Lists all accounts with holder name and current balance, ordered by
  account number.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := appConfig()
	store := openStore(cfg)

	printMarkdown(accountsMarkdown(cfg, store.ListAccounts()))
	return subcommands.ExitSuccess
}

// accountsMarkdown renders account summaries as a markdown table.
func accountsMarkdown(cfg bankbook.Config, accounts []*bankbook.Account) string {
	if len(accounts) == 0 {
		return "No accounts found.\n"
	}
	var b strings.Builder
	b.WriteString("# All Accounts\n\n")
	b.WriteString("| Account Number | Name | Balance |\n")
	b.WriteString("|---|---|---|\n")
	for _, a := range accounts {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", a.Number(), a.Name(), formatAmount(cfg, a.Balance()))
	}
	return b.String()
}
