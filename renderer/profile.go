package renderer

import (
	"bytes"

	"github.com/etnz/bookkeeping"
	md "github.com/nao1215/markdown"
)

// IndicatorsMarkdown renders the economic indicators.
func IndicatorsMarkdown(ind *bookkeeping.Indicators, o Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Economic indicators")
	indicatorsTable(doc, ind, o)
	return doc.String()
}

// ProfileMarkdown renders the economic indicators followed by their analysis.
func ProfileMarkdown(p *bookkeeping.Profile, o Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Economic profile")
	indicatorsTable(doc, &p.Indicators, o)
	doc.H2("Analysis")
	doc.OrderedList(p.Analysis...)
	return doc.String()
}

func indicatorsTable(doc *md.Markdown, ind *bookkeeping.Indicators, o Options) {
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Indicator", "Value"},
		Rows: [][]string{
			{"Total income", o.Amount(ind.TotalIncome)},
			{"Total expense", o.Amount(ind.TotalExpense)},
			{"Food expense", o.Amount(ind.FoodExpense)},
			{"Engel coefficient", ind.Engel.Percent()},
			{"Average propensity to consume (APC)", ind.APC.Percent()},
			{"Marginal propensity to consume (MPC)", ind.MPC.Percent()},
		},
	})
}
