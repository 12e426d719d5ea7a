package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
)

// indicatorFlags are shared by the indicators and profile commands.
type indicatorFlags struct {
	start    string
	end      string
	keywords string
}

func (c *indicatorFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "First day of the range. Unbounded by default.")
	f.StringVar(&c.end, "e", "", "Last day of the range. Unbounded by default.")
	f.StringVar(&c.keywords, "food", "", "Comma separated keywords identifying food expenses. Defaults to "+strings.Join(bookkeeping.FoodKeywords, ",")+".")
}

// engine opens the ledger and returns the records of the range.
func (c *indicatorFlags) engine() (*bookkeeping.Engine, []bookkeeping.Record, subcommands.ExitStatus) {
	s, err := OpenStore(false)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, nil, subcommands.ExitFailure
	}
	records, err := s.Range(c.start, c.end)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitUsageError
	}
	e := bookkeeping.NewEngine(s)
	if c.keywords != "" {
		e.FoodKeywords = strings.Split(c.keywords, ",")
	}
	return e, records, subcommands.ExitSuccess
}

type indicatorsCmd struct{ indicatorFlags }

func (*indicatorsCmd) Name() string     { return "indicators" }
func (*indicatorsCmd) Synopsis() string { return "display the Engel coefficient, APC and MPC" }
func (*indicatorsCmd) Usage() string {
	return `bk indicators [-s <start_date>] [-e <end_date>] [-food <keywords>]

  Computes the economic indicators of the ledger. See 'bk topic indicators'.
`
}

func (c *indicatorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, records, status := c.engine()
	if status != subcommands.ExitSuccess {
		return status
	}
	ind, err := e.IndicatorsOf(records)
	if insufficient(err, "Economic indicators", "No records yet.") {
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IndicatorsMarkdown(ind, options()))
	return subcommands.ExitSuccess
}

type profileCmd struct{ indicatorFlags }

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "display the economic indicators with their interpretation" }
func (*profileCmd) Usage() string {
	return `bk profile [-s <start_date>] [-e <end_date>] [-food <keywords>]

  Computes the economic indicators and explains what they mean.
`
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, records, status := c.engine()
	if status != subcommands.ExitSuccess {
		return status
	}
	p, err := e.ProfileOf(records)
	if insufficient(err, "Economic profile", "No records yet.") {
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProfileMarkdown(p, options()))
	return subcommands.ExitSuccess
}
