package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rvermeulen/bankbook"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the data file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `bnk fmt

  Reads the account data file and writes it back in canonical form:
  accounts ordered by account number, two-space indentation. Useful after
  hand-editing the file.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := appConfig()
	store, err := bankbook.Open(cfg.DataFile)
	if err != nil {
		// unlike the other commands, fmt must not silently replace a corrupt
		// file with an empty one
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := store.Save(); err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %q (%d account(s)).\n", cfg.DataFile, store.Len())
	return subcommands.ExitSuccess
}
