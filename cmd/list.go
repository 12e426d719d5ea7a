package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bookkeeping/date"
	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	start string
	end   string
	head  int
	tail  int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the records of the ledger" }
func (*listCmd) Usage() string {
	return `bk list [-s <start_date>] [-e <end_date>] [-head <n>] [-tail <n>]

  Lists records in insertion order, optionally restricted to a date range
  (bounds included) and limited to the first or last N records.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "First day of the range. Unbounded by default.")
	f.StringVar(&c.end, "e", "", "Last day of the range. Unbounded by default.")
	f.IntVar(&c.head, "head", 0, "Show only the first N records.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N records.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

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

	if c.head > 0 && len(records) > c.head {
		records = records[:c.head]
	}
	if c.tail > 0 && len(records) > c.tail {
		records = records[len(records)-c.tail:]
	}

	printMarkdown(renderer.RecordsMarkdown(title("Records", c.start, c.end), records, options()))
	return subcommands.ExitSuccess
}

// title appends the range to a section title when it is bounded on any side.
func title(name, start, end string) string {
	if start == "" && end == "" {
		return name
	}
	r, err := date.ParseRange(start, end)
	if err != nil {
		return name
	}
	return fmt.Sprintf("%s %s", name, r)
}
