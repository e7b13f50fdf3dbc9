package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/rvermeulen/bankbook"
)

type historyCmd struct {
	account string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list the transaction history of an account" }
func (*historyCmd) Usage() string {
	return `bnk history -a <account>

  Lists every transaction of the account in chronological order, with the
  balance after each one.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account number (e.g. ACC001)")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(historyMarkdown(cfg, account))
	return subcommands.ExitSuccess
}

// historyMarkdown renders the transaction log as a markdown table.
func historyMarkdown(cfg bankbook.Config, account *bankbook.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transaction History — %s\n\n", account.Number())
	fmt.Fprintf(&b, "Account Holder: %s\n\n", account.Name())

	transactions := account.Transactions()
	if len(transactions) == 0 {
		b.WriteString("No transactions found.\n")
		return b.String()
	}

	b.WriteString("| Date/Time | Type | Amount | Balance After |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, tx := range transactions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			tx.Timestamp,
			strings.ToUpper(string(tx.Kind)),
			formatAmount(cfg, tx.Amount),
			formatAmount(cfg, tx.BalanceAfter),
		)
	}
	return b.String()
}
