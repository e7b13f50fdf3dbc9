package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/subcommands"
	"github.com/rvermeulen/bankbook"
	"github.com/shopspring/decimal"
)

// menuCmd drives the account book as an interactive numbered menu, the way
// the program was originally used. Every error returns to the menu; the loop
// only ends on the exit option or end of input, both with status 0.
type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive menu" }
func (*menuCmd) Usage() string {
	return `bnk menu

  Runs an interactive session: create accounts, deposit, withdraw, check
  balances and list transactions from a numbered menu.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := appConfig()
	store := openStore(cfg)

	// leave cleanly on Ctrl-C, like the exit option
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	m := &menu{cfg: cfg, store: store, in: bufio.NewScanner(os.Stdin), out: os.Stdout}
	m.run()
	return subcommands.ExitSuccess
}

type menu struct {
	cfg   bankbook.Config
	store *bankbook.Store
	in    *bufio.Scanner
	out   io.Writer
}

func (m *menu) run() {
	for {
		fmt.Fprint(m.out, `
==================================================
 BANKBOOK
==================================================
1. Create New Account
2. Deposit Money
3. Withdraw Money
4. Check Balance
5. Transaction History
6. List All Accounts
7. Exit
==================================================
`)
		choice, ok := m.prompt("Enter your choice (1-7): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.createAccount()
		case "2":
			m.move("Deposit", m.store.Deposit)
		case "3":
			m.move("Withdrawal", m.store.Withdraw)
		case "4":
			m.checkBalance()
		case "5":
			m.showHistory()
		case "6":
			printMarkdown(accountsMarkdown(m.cfg, m.store.ListAccounts()))
		case "7":
			fmt.Fprintln(m.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please enter a number between 1 and 7.")
		}
	}
}

// prompt reads one trimmed line; ok is false at end of input.
func (m *menu) prompt(msg string) (line string, ok bool) {
	fmt.Fprint(m.out, msg)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptAmount re-prompts until the user enters a valid decimal amount.
func (m *menu) promptAmount(msg string) (decimal.Decimal, bool) {
	for {
		line, ok := m.prompt(msg)
		if !ok {
			return decimal.Decimal{}, false
		}
		amount, err := bankbook.ParseAmount(line)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input! Please enter a valid number.")
			continue
		}
		return amount, true
	}
}

func (m *menu) createAccount() {
	name, ok := m.prompt("Enter Account Holder Name: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Enter Initial Deposit (0 for no deposit): ")
	if !ok {
		return
	}
	account, err := m.store.CreateAccount(name, amount)
	if err != nil {
		reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Account created: %s (%s), balance %s\n",
		account.Number(), account.Name(), formatAmount(m.cfg, account.Balance()))
}

// move runs a deposit or a withdrawal, which only differ in the store
// operation and the word printed.
func (m *menu) move(verb string, op func(string, decimal.Decimal) error) {
	number, ok := m.prompt("Enter Account Number: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount(fmt.Sprintf("Enter %s Amount: ", verb))
	if !ok {
		return
	}
	if err := op(number, amount); err != nil {
		reportError(err)
		return
	}
	account, err := m.store.GetAccount(number)
	if err != nil {
		reportError(err)
		return
	}
	fmt.Fprintf(m.out, "%s successful! New balance: %s\n", verb, formatAmount(m.cfg, account.Balance()))
}

func (m *menu) checkBalance() {
	number, ok := m.prompt("Enter Account Number: ")
	if !ok {
		return
	}
	account, err := m.store.GetAccount(number)
	if err != nil {
		reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Account Number:  %s\n", account.Number())
	fmt.Fprintf(m.out, "Account Holder:  %s\n", account.Name())
	fmt.Fprintf(m.out, "Current Balance: %s\n", formatAmount(m.cfg, account.Balance()))
}

func (m *menu) showHistory() {
	number, ok := m.prompt("Enter Account Number: ")
	if !ok {
		return
	}
	account, err := m.store.GetAccount(number)
	if err != nil {
		reportError(err)
		return
	}
	printMarkdown(historyMarkdown(m.cfg, account))
}
