package renderer

import (
	"bytes"

	"github.com/etnz/bookkeeping"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders income, expense and balance totals.
func SummaryMarkdown(title string, s bookkeeping.Summary, o Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Total", "Amount"},
		Rows: [][]string{
			{"Income", o.Amount(s.Income)},
			{"Expense", o.Amount(s.Expense)},
			{md.Bold("Balance"), md.Bold(o.Signed(s.Balance))},
		},
	})
	return doc.String()
}
