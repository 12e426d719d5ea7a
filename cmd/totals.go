package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
)

type totalsCmd struct {
	start string
	end   string
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display total income, total expense and balance" }
func (*totalsCmd) Usage() string {
	return `bk totals [-s <start_date>] [-e <end_date>]

  Displays the total income, total expense and balance of the ledger, or of
  a date range.
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "First day of the range. Unbounded by default.")
	f.StringVar(&c.end, "e", "", "Last day of the range. Unbounded by default.")
}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore(false)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	records, err := s.Range(c.start, c.end)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.SummaryMarkdown(title("Totals", c.start, c.end), bookkeeping.Summarize(records), options()))
	return subcommands.ExitSuccess
}
