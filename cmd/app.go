// Package cmd implements the bk command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, Groups[cmd.Name()])
	}
}

// Commands lists every bk subcommand.
var Commands = []subcommands.Command{
	&addCmd{},
	&deleteCmd{},
	&listCmd{},
	&selectCmd{},
	&totalsCmd{},
	&forecastCmd{},
	&windowCmd{},
	&indicatorsCmd{},
	&profileCmd{},
	&reportCmd{},
	&topicCmd{},
	&assistCmd{},
}

// Groups is the help section of each subcommand.
var Groups = map[string]string{
	"add":        "records",
	"delete":     "records",
	"list":       "records",
	"select":     "records",
	"totals":     "analytics",
	"forecast":   "analytics",
	"window":     "analytics",
	"indicators": "analytics",
	"profile":    "analytics",
	"report":     "analytics",
	"topic":      "help",
	"assist":     "help",
}

// DefaultLedgerFile is used when neither -ledger-file nor BK_LEDGER_FILE is set.
const DefaultLedgerFile = "data/account_records.json"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile  = flag.String("ledger-file", "", "Path to the ledger file. Defaults to $"+EnvLedgerFile+" or "+DefaultLedgerFile+".")
	currency    = flag.String("currency", "", "ISO 4217 code used to display amounts. Defaults to $"+EnvCurrency+", plain numbers otherwise.")
	verbose     = flag.Bool("v", false, "Log ledger operations to stderr. Defaults to $"+EnvVerbose+".")
	rawMarkdown = flag.Bool("markdown", false, "Print raw markdown instead of rendering it for the terminal.")
)

// stdout and stderr are replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// LoadEnv reads a .env file from the working directory, if any.
// Variables already set in the environment take precedence.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}
	return nil
}

// LedgerFile returns the ledger file path, from the flag first, then the environment.
func LedgerFile() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if v := os.Getenv(EnvLedgerFile); v != "" {
		return v
	}
	return DefaultLedgerFile
}

// Currency returns the display currency, possibly empty.
func Currency() string {
	if *currency != "" {
		return *currency
	}
	return os.Getenv(EnvCurrency)
}

// IsVerbose reports whether ledger operations are logged.
func IsVerbose() bool {
	if *verbose {
		return true
	}
	v, err := strconv.ParseBool(os.Getenv(EnvVerbose))
	return err == nil && v
}

func options() renderer.Options { return renderer.Options{Currency: Currency()} }

func logger() *log.Logger {
	if IsVerbose() {
		return log.New(stderr, "bk: ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// OpenStore opens the ledger file.
//
// A ledger that exists but cannot be read is reported as an error when
// write is set, so that a mutation never overwrites it with an empty ledger.
// Otherwise a warning is printed and the ledger is empty.
func OpenStore(write bool) (*bookkeeping.Store, error) {
	s := bookkeeping.Open(LedgerFile(), bookkeeping.WithLogger(logger()))
	if err := s.LoadErr(); err != nil {
		if write {
			return nil, fmt.Errorf("refusing to modify ledger %q: %w", s.Path(), err)
		}
		fmt.Fprintf(stderr, "Warning: ledger %q could not be read, it is considered empty: %v\n", s.Path(), err)
	}
	return s, nil
}

// printMarkdown prints md rendered for the terminal, or raw with -markdown.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Fprintln(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprintln(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintln(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// insufficient reports err as a notice when it is ErrInsufficientData.
func insufficient(err error, title, hint string) bool {
	if !errors.Is(err, bookkeeping.ErrInsufficientData) {
		return false
	}
	printMarkdown(renderer.Unavailable(title, hint))
	return true
}
