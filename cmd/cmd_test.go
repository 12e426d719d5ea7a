package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/bookkeeping"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// setup points the global flags to a new ledger and returns its path.
func setup(t *testing.T) string {
	t.Helper()
	t.Setenv(EnvLedgerFile, "")
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvVerbose, "")

	path := filepath.Join(t.TempDir(), "data", "ledger.json")
	oldLedger, oldCurrency, oldRaw := *ledgerFile, *currency, *rawMarkdown
	oldOut, oldErr := stdout, stderr
	*ledgerFile, *currency, *rawMarkdown = path, "", true
	t.Cleanup(func() {
		*ledgerFile, *currency, *rawMarkdown = oldLedger, oldCurrency, oldRaw
		stdout, stderr = oldOut, oldErr
	})
	return path
}

// run executes c with args and returns its output, error output and status.
func run(t *testing.T, c subcommands.Command, args ...string) (string, string, subcommands.ExitStatus) {
	t.Helper()
	var out, errOut bytes.Buffer
	stdout, stderr = &out, &errOut

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %v: %v", c.Name(), args, err)
	}
	status := c.Execute(context.Background(), f)
	return out.String(), errOut.String(), status
}

// mustRun is like run but fails the test unless c succeeds.
func mustRun(t *testing.T, c subcommands.Command, args ...string) string {
	t.Helper()
	out, errOut, status := run(t, c, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("%s %v = %v, stderr:\n%s", c.Name(), args, status, errOut)
	}
	return out
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}

// seed adds two dates of income and two dates of expense.
func seed(t *testing.T) {
	t.Helper()
	mustRun(t, &addCmd{}, "-a", "300", "-k", "income", "-d", "2023-01-01", "-m", "salary")
	mustRun(t, &addCmd{}, "-a", "100", "-k", "expense", "-d", "2023-01-01", "-m", "food market")
	mustRun(t, &addCmd{}, "-a", "400", "-k", "income", "-d", "2023-01-02", "-m", "bonus")
	mustRun(t, &addCmd{}, "-a", "150", "-k", "expense", "-d", "2023-01-02", "-m", "rent")
}

func TestAddAndList(t *testing.T) {
	path := setup(t)

	out := mustRun(t, &addCmd{}, "-a", "1000", "-k", "income", "-d", "2023-1-5", "-m", "salary")
	assertContains(t, out, "Added record 1", "1000.00", "2023-01-05")

	mustRun(t, &addCmd{}, "-a", "200", "-k", "expense", "-d", "2023-01-06", "-m", "food market")

	out = mustRun(t, &listCmd{})
	assertContains(t, out, "salary", "food market", "2 record(s).")

	out = mustRun(t, &listCmd{}, "-s", "2023-01-06")
	assertContains(t, out, "Records 2023-01-06 to …", "food market", "1 record(s).")

	out = mustRun(t, &listCmd{}, "-tail", "1")
	if strings.Contains(out, "salary") {
		t.Errorf("list -tail 1 shows the first record:\n%s", out)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, string(content), `"date": "2023-01-05"`, `"kind": "expense"`)
}

func TestAdd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative amount", []string{"-a", "-5", "-k", "expense"}},
		{"zero amount", []string{"-a", "0", "-k", "expense"}},
		{"no amount", []string{"-k", "expense"}},
		{"unknown kind", []string{"-a", "5", "-k", "gift"}},
		{"bad date", []string{"-a", "5", "-k", "income", "-d", "yesterday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := setup(t)
			_, errOut, status := run(t, &addCmd{}, tt.args...)
			if status != subcommands.ExitUsageError {
				t.Errorf("add %v = %v, want usage error", tt.args, status)
			}
			if errOut == "" {
				t.Errorf("add %v printed no error", tt.args)
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Errorf("add %v created the ledger file", tt.args)
			}
		})
	}
}

func TestList_HeadAndTail(t *testing.T) {
	setup(t)
	if _, _, status := run(t, &listCmd{}, "-head", "1", "-tail", "1"); status != subcommands.ExitUsageError {
		t.Errorf("list -head -tail = %v, want usage error", status)
	}
	if _, _, status := run(t, &listCmd{}, "-s", "2023-13-01"); status != subcommands.ExitUsageError {
		t.Errorf("list with a malformed bound = %v, want usage error", status)
	}
}

func TestDelete(t *testing.T) {
	setup(t)
	mustRun(t, &addCmd{}, "-a", "10", "-k", "expense", "-d", "2023-01-01", "-m", "coffee")

	_, errOut, status := run(t, &deleteCmd{}, "-id", "9")
	if status != subcommands.ExitFailure {
		t.Errorf("delete -id 9 = %v, want failure", status)
	}
	assertContains(t, errOut, "no record with id 9")

	out := mustRun(t, &deleteCmd{}, "-id", "1", "-reason", "typo")
	assertContains(t, out, "Deleted record 1", "typo")

	out = mustRun(t, &listCmd{})
	assertContains(t, out, "No records.")

	// ids start again at 1 once the ledger is empty.
	out = mustRun(t, &addCmd{}, "-a", "10", "-k", "expense", "-d", "2023-01-01")
	assertContains(t, out, "Added record 1")
}

func TestTotals(t *testing.T) {
	setup(t)
	seed(t)
	*currency = "USD"

	out := mustRun(t, &totalsCmd{})
	assertContains(t, out, "$700.00", "$250.00", "+$450.00")

	out = mustRun(t, &totalsCmd{}, "-e", "2023-01-01")
	assertContains(t, out, "$300.00", "$100.00", "+$200.00")
}

func TestForecast(t *testing.T) {
	setup(t)

	out := mustRun(t, &forecastCmd{}, "-days", "3")
	assertContains(t, out, "_Insufficient data._")

	seed(t)
	out = mustRun(t, &forecastCmd{}, "-days", "2")
	assertContains(t, out, "next 2 days", "500.00", "600.00", "200.00", "250.00")

	out = mustRun(t, &forecastCmd{}, "-days", "2", "-e", "2023-01-01")
	assertContains(t, out, "_Insufficient data._")

	_, errOut, status := run(t, &forecastCmd{}, "-days", "-1")
	if status != subcommands.ExitFailure {
		t.Errorf("forecast -days -1 = %v, want failure", status)
	}
	assertContains(t, errOut, "horizon")
}

func TestWindow(t *testing.T) {
	setup(t)
	if _, _, status := run(t, &windowCmd{}, "-s", "2023-01-01"); status != subcommands.ExitUsageError {
		t.Errorf("window without -e = %v, want usage error", status)
	}

	seed(t)
	out := mustRun(t, &windowCmd{}, "-s", "2023-01-01", "-e", "2023-01-02", "-days", "2")
	// 700 income and 250 expense over 2 days.
	assertContains(t, out, "350.00", "125.00", "225.00", "450.00")

	out = mustRun(t, &windowCmd{}, "-s", "2024-01-01", "-e", "2024-01-31")
	assertContains(t, out, "_Insufficient data._")
}

func TestIndicatorsAndProfile(t *testing.T) {
	setup(t)

	out := mustRun(t, &indicatorsCmd{})
	assertContains(t, out, "_Insufficient data._")

	seed(t)
	out = mustRun(t, &indicatorsCmd{})
	// food 100 of 250 expense, 250 expense of 700 income.
	assertContains(t, out, "40.00%", "35.71%")

	out = mustRun(t, &indicatorsCmd{}, "-food", "rent")
	assertContains(t, out, "60.00%")

	out = mustRun(t, &profileCmd{})
	assertContains(t, out, "## Analysis", "a well-off level", "savings capacity is strong")
}

func TestReport_HTML(t *testing.T) {
	path := setup(t)
	seed(t)

	out := mustRun(t, &reportCmd{}, "-days", "1")
	assertContains(t, out, "# Report", "# Economic profile", "# Forecast for the next 1 days")

	file := filepath.Join(filepath.Dir(path), "report.html")
	mustRun(t, &reportCmd{}, "-html", file)
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, string(content), "<h1>Report</h1>", "<table>")
}

func TestSelect(t *testing.T) {
	setup(t)
	seed(t)

	out := mustRun(t, &selectCmd{}, `$[?(@.kind=="expense")].amount`)
	if out != "[\n  100,\n  150\n]\n" {
		t.Errorf("select expense amounts = %q", out)
	}

	if _, _, status := run(t, &selectCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("select without a query = %v, want usage error", status)
	}
}

func TestSelectFunc(t *testing.T) {
	records := []bookkeeping.Record{
		{ID: 1, Amount: decimal.NewFromInt(10), Kind: bookkeeping.Income, Date: "2023-01-01", Description: "a"},
		{ID: 2, Amount: decimal.NewFromInt(20), Kind: bookkeeping.Expense, Date: "2023-01-02", Description: "b"},
	}
	got, err := Select(records, "$[*].description")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"a", "b"}, got); diff != "" {
		t.Errorf("Select() mismatch (-want +got):\n%s", diff)
	}
	if _, err := Select(records, "$[?("); err == nil {
		t.Error("Select() with a malformed query returned no error")
	}
}

func TestCorruptLedger(t *testing.T) {
	path := setup(t)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, errOut, status := run(t, &addCmd{}, "-a", "5", "-k", "income", "-d", "2023-01-01")
	if status != subcommands.ExitFailure {
		t.Errorf("add on a corrupt ledger = %v, want failure", status)
	}
	assertContains(t, errOut, "refusing to modify")

	out, errOut, status := run(t, &listCmd{})
	if status != subcommands.ExitSuccess {
		t.Errorf("list on a corrupt ledger = %v, want success", status)
	}
	assertContains(t, errOut, "Warning")
	assertContains(t, out, "No records.")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "not json" {
		t.Errorf("corrupt ledger was overwritten: %q", content)
	}
}

func TestTopic(t *testing.T) {
	setup(t)
	out := mustRun(t, &topicCmd{})
	assertContains(t, out, "# bk topics")

	out = mustRun(t, &topicCmd{}, "dates", "ledger")
	assertContains(t, out, "# Dates", "# Ledger")

	if _, _, status := run(t, &topicCmd{}, "missing"); status != subcommands.ExitFailure {
		t.Errorf("topic missing = %v, want failure", status)
	}
}

func TestGlobalsFromEnv(t *testing.T) {
	setup(t)
	*ledgerFile = ""

	if got := LedgerFile(); got != DefaultLedgerFile {
		t.Errorf("LedgerFile() = %q, want %q", got, DefaultLedgerFile)
	}
	t.Setenv(EnvLedgerFile, "other.json")
	t.Setenv(EnvCurrency, "EUR")
	t.Setenv(EnvVerbose, "true")
	if got := LedgerFile(); got != "other.json" {
		t.Errorf("LedgerFile() = %q, want other.json", got)
	}
	if got := Currency(); got != "EUR" {
		t.Errorf("Currency() = %q, want EUR", got)
	}
	if !IsVerbose() {
		t.Error("IsVerbose() = false with BK_VERBOSE=true")
	}
	*ledgerFile = "flag.json"
	if got := LedgerFile(); got != "flag.json" {
		t.Errorf("LedgerFile() = %q, the flag must take precedence", got)
	}
}

func TestIsVerbose_Flag(t *testing.T) {
	setup(t)
	old := *verbose
	t.Cleanup(func() { *verbose = old })

	*verbose = false
	if IsVerbose() {
		t.Error("IsVerbose() = true without -v nor BK_VERBOSE")
	}
	*verbose = true
	if !IsVerbose() {
		t.Error("IsVerbose() = false with -v")
	}
}

func TestRegister(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("bk", flag.ContinueOnError), "bk")
	Register(c)
	for _, cmd := range Commands {
		if _, ok := Groups[cmd.Name()]; !ok {
			t.Errorf("command %q has no group", cmd.Name())
		}
	}
}
