package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	days  int
	start string
	end   string
	html  string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display totals, economic profile and forecast together" }
func (*reportCmd) Usage() string {
	return `bk report [-s <start_date>] [-e <end_date>] [-days <n>] [-html <file>]

  Gathers totals, the economic profile and the trend forecast in a single
  document. With -html the document is written to a file as HTML instead.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of steps to forecast.")
	f.StringVar(&c.start, "s", "", "First day of the range. Unbounded by default.")
	f.StringVar(&c.end, "e", "", "Last day of the range. Unbounded by default.")
	f.StringVar(&c.html, "html", "", "Write the report as HTML to this file.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := NewReport(bookkeeping.NewEngine(s), records, c.days)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report.Title = title("Report", c.start, c.end)
	md := renderer.ReportMarkdown(report, options())

	if c.html == "" {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}

	html, err := renderer.HTML(md)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.html, []byte(html), 0644); err != nil {
		fmt.Fprintf(stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stderr, "Report written to %s\n", c.html)
	return subcommands.ExitSuccess
}

// NewReport computes every section of a report on records.
// Sections without enough data are left nil.
func NewReport(e *bookkeeping.Engine, records []bookkeeping.Record, days int) (renderer.Report, error) {
	r := renderer.Report{Title: "Report", Summary: bookkeeping.Summarize(records)}

	p, err := e.ProfileOf(records)
	if err != nil && !errors.Is(err, bookkeeping.ErrInsufficientData) {
		return r, err
	}
	r.Profile = p

	forecast, err := e.ForecastOf(records, days)
	if err != nil && !errors.Is(err, bookkeeping.ErrInsufficientData) {
		return r, err
	}
	r.Forecast = forecast
	return r, nil
}
