package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bookkeeping"
	md "github.com/nao1215/markdown"
)

// ForecastMarkdown renders a trend forecast.
func ForecastMarkdown(f *bookkeeping.Forecast, o Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Forecast for the next %d days", f.Days()))
	doc.PlainText("Linear trend of the daily totals. Each step is the next day with activity, not a calendar day.")
	forecastTable(doc, f, o)
	return doc.String()
}

// WindowForecastMarkdown renders a flat forecast and the window averages it is based on.
func WindowForecastMarkdown(w *bookkeeping.WindowForecast, o Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Forecast for the next %d days", w.Days()))
	doc.PlainText(fmt.Sprintf("Daily averages of %s (%d days) held constant.", w.Window, w.Window.Days()))

	doc.H2("Window averages")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", "Per transaction", "Per day"},
		Rows: [][]string{
			{"Income", o.Float(w.AvgIncome), o.Float(w.DailyIncome)},
			{"Expense", o.Float(w.AvgExpense), o.Float(w.DailyExpense)},
		},
	})

	doc.H2("Forecast")
	forecastTable(doc, &w.Forecast, o)
	return doc.String()
}

func forecastTable(doc *md.Markdown, f *bookkeeping.Forecast, o Options) {
	if f.Days() == 0 {
		doc.PlainText("Empty horizon.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Step", "Income", "Expense", "Net"},
	}
	var income, expense, net float64
	for i := range f.Net {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("+%d", i+1),
			o.Float(f.Income[i]),
			o.Float(f.Expense[i]),
			o.Float(f.Net[i]),
		})
		income += f.Income[i]
		expense += f.Expense[i]
		net += f.Net[i]
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(o.Float(income)),
		md.Bold(o.Float(expense)),
		md.Bold(o.Float(net)),
	})
	doc.Table(table)
}
