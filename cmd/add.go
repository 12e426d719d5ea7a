package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/date"
	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	amount      string
	kind        string
	date        string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an income or expense record to the ledger" }
func (*addCmd) Usage() string {
	return `bk add -a <amount> -k <income|expense> [-d <date>] [-m <description>]

  Adds a record to the ledger and prints it with its new id.

Usage Examples:
# A salary received today.
$ bk add -a 1000 -k income -m salary

# Groceries on a given day.
$ bk add -a 42.50 -k expense -d 2023-01-06 -m "food market"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount of the record, strictly positive.")
	f.StringVar(&c.kind, "k", "", "Kind of the record: income or expense.")
	f.StringVar(&c.date, "d", "", "Date of the record (defaults to today). See 'bk topic dates'.")
	f.StringVar(&c.description, "m", "", "Free text description.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	kind, err := bookkeeping.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	day := date.Today()
	if c.date != "" {
		day, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if err := bookkeeping.ValidateRecord(amount, kind, day.String()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore(true)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	ok, r := s.Add(amount, kind, day.String(), c.description)
	if !ok {
		fmt.Fprintf(stderr, "Error: could not save ledger %q\n", s.Path())
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RecordMarkdown(fmt.Sprintf("Added record %d", r.ID), r, options()))
	return subcommands.ExitSuccess
}
