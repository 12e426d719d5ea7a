package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id     int
	reason string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a record from the ledger" }
func (*deleteCmd) Usage() string {
	return `bk delete -id <id> [-reason <text>]

  Removes the record with the given id and prints it with the deletion time
  and reason. Once every record is deleted, ids start again at 1.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the record to delete.")
	f.StringVar(&c.reason, "reason", "", "Why the record is deleted.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(stderr, "Error: -id is required and must be positive.")
		return subcommands.ExitUsageError
	}

	s, err := OpenStore(true)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	ok, r := s.Delete(c.id, c.reason)
	if !ok {
		if r == nil {
			fmt.Fprintf(stderr, "Error: no record with id %d\n", c.id)
		} else {
			fmt.Fprintf(stderr, "Error: could not save ledger %q\n", s.Path())
		}
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RecordMarkdown(fmt.Sprintf("Deleted record %d", r.ID), *r, options()))
	return subcommands.ExitSuccess
}
