package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
)

const trendHint = "At least two distinct dates of income and of expense are needed."

type forecastCmd struct {
	days  int
	start string
	end   string
}

func (*forecastCmd) Name() string { return "forecast" }
func (*forecastCmd) Synopsis() string {
	return "forecast income, expense and net from the linear trend of daily totals"
}
func (*forecastCmd) Usage() string {
	return `bk forecast [-days <n>] [-s <start_date>] [-e <end_date>]

  Fits a linear trend through the daily income and expense totals and
  extends it n steps. See 'bk topic forecast'.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of steps to forecast.")
	f.StringVar(&c.start, "s", "", "Only fit records from this day.")
	f.StringVar(&c.end, "e", "", "Only fit records until this day.")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	forecast, err := bookkeeping.NewEngine(s).ForecastOf(records, c.days)
	if insufficient(err, "Forecast", trendHint) {
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ForecastMarkdown(forecast, options()))
	return subcommands.ExitSuccess
}

type windowCmd struct {
	days  int
	start string
	end   string
}

func (*windowCmd) Name() string { return "window" }
func (*windowCmd) Synopsis() string {
	return "forecast from the daily averages of a date window"
}
func (*windowCmd) Usage() string {
	return `bk window -s <start_date> -e <end_date> [-days <n>]

  Averages income and expense over the window, bounds included, and holds
  the daily averages constant for n days. See 'bk topic forecast'.
`
}

func (c *windowCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of days to forecast.")
	f.StringVar(&c.start, "s", "", "First day of the window.")
	f.StringVar(&c.end, "e", "", "Last day of the window.")
}

func (c *windowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.start == "" || c.end == "" {
		fmt.Fprintln(stderr, "Error: both -s and -e are required.")
		return subcommands.ExitUsageError
	}

	s, err := OpenStore(false)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	forecast, err := bookkeeping.NewEngine(s).ForecastWindow(c.start, c.end, c.days)
	if insufficient(err, "Forecast", "The window needs at least one income and one expense record.") {
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WindowForecastMarkdown(forecast, options()))
	return subcommands.ExitSuccess
}
