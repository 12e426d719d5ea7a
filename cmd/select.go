package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/bookkeeping"
	"github.com/google/subcommands"
)

type selectCmd struct {
	start string
	end   string
}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "query the ledger records with a JSONPath expression" }
func (*selectCmd) Usage() string {
	return `bk select [-s <start_date>] [-e <end_date>] <jsonpath>

  Evaluates a JSONPath expression against the records, as they are written in
  the ledger file, and prints the result as JSON.

Usage Examples:
# Amounts of every expense.
$ bk select '$[?(@.kind=="expense")].amount'

# Descriptions of January 2023.
$ bk select -s 2023-01-01 -e 2023-01-31 '$[*].description'
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "First day of the range. Unbounded by default.")
	f.StringVar(&c.end, "e", "", "Last day of the range. Unbounded by default.")
}

func (c *selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: exactly one JSONPath expression is expected.")
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

	result, err := Select(records, f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// Select evaluates a JSONPath expression on the JSON form of records.
func Select(records []bookkeeping.Record, path string) (any, error) {
	var buf bytes.Buffer
	if err := bookkeeping.EncodeRecords(&buf, records); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, err
	}
	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return result, nil
}
