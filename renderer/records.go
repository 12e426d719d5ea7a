package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/bookkeeping"
	md "github.com/nao1215/markdown"
)

// RecordsMarkdown renders records as a table, in the given order.
func RecordsMarkdown(title string, records []bookkeeping.Record, o Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(records) == 0 {
		doc.PlainText("No records.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"ID", "Amount", "Kind", "Date", "Description", "Created"},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(r.ID),
			o.Amount(r.Amount),
			r.Kind.String(),
			r.Date,
			r.Description,
			r.CreatedAt.String(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d record(s).", len(records)))
	return doc.String()
}

// RecordMarkdown renders a single record, like the one returned by an add or a delete.
func RecordMarkdown(title string, r bookkeeping.Record, o Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(title)
	rows := [][]string{
		{"ID", strconv.Itoa(r.ID)},
		{"Amount", o.Amount(r.Amount)},
		{"Kind", r.Kind.String()},
		{"Date", r.Date},
		{"Description", r.Description},
		{"Created", r.CreatedAt.String()},
	}
	if !r.DeletedAt.IsZero() {
		rows = append(rows, []string{"Deleted", r.DeletedAt.String()})
		rows = append(rows, []string{"Reason", r.DeleteReason})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Field", "Value"},
		Rows:      rows,
	})
	return doc.String()
}
