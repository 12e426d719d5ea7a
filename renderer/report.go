package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/bookkeeping"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Report gathers every section of a full ledger report.
// Nil sections are reported as unavailable.
type Report struct {
	Title    string
	Summary  bookkeeping.Summary
	Profile  *bookkeeping.Profile
	Forecast *bookkeeping.Forecast
}

// ReportMarkdown renders a report as a single markdown document.
func ReportMarkdown(r Report, o Options) string {
	var b strings.Builder
	b.WriteString(SummaryMarkdown(r.Title, r.Summary, o))
	b.WriteString("\n\n")
	if r.Profile != nil {
		b.WriteString(ProfileMarkdown(r.Profile, o))
	} else {
		b.WriteString(Unavailable("Economic profile", "No records yet."))
	}
	b.WriteString("\n\n")
	if r.Forecast != nil {
		b.WriteString(ForecastMarkdown(r.Forecast, o))
	} else {
		b.WriteString(Unavailable("Forecast", "At least two distinct dates of income and of expense are needed."))
	}
	b.WriteString("\n")
	return b.String()
}

// Unavailable renders a section that has not enough data.
func Unavailable(title, hint string) string {
	return fmt.Sprintf("# %s\n\n_Insufficient data._ %s\n", title, hint)
}

// HTML converts a markdown document, tables included, to an HTML fragment.
func HTML(markdown string) (string, error) {
	converter := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := converter.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("could not convert report to html: %w", err)
	}
	return buf.String(), nil
}
