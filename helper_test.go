package bookkeeping

import (
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// testNow is the fixed clock used by test stores.
var testNow = time.Date(2023, time.June, 1, 12, 30, 45, 0, time.Local)

// openTestStore opens a store on a fresh file in a temporary directory.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	return openTestStoreAt(t, filepath.Join(t.TempDir(), "data", "account_records.json"))
}

func openTestStoreAt(t *testing.T, path string) *Store {
	t.Helper()
	return Open(path,
		WithLogger(log.New(io.Discard, "", 0)),
		WithClock(func() time.Time { return testNow }),
	)
}

// D is a helper for test to create an amount from a const string.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// R is a helper for test to create a record without id.
func R(amount string, kind Kind, day, description string) Record {
	return Record{Amount: D(amount), Kind: kind, Date: day, Description: description}
}

// mustAdd adds records to s and fails the test on any persist failure.
func mustAdd(t *testing.T, s *Store, records ...Record) []Record {
	t.Helper()
	added := make([]Record, 0, len(records))
	for _, r := range records {
		ok, rec := s.Add(r.Amount, r.Kind, r.Date, r.Description)
		if !ok {
			t.Fatalf("Add(%v) failed to persist", r)
		}
		added = append(added, rec)
	}
	return added
}

func approx(a, b float64) bool {
	const precision = 1e-9
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// scenarioA is the canonical small ledger: a salary, the rent and some food.
func scenarioA() []Record {
	return []Record{
		R("1000", Income, "2023-01-01", "salary"),
		R("500", Expense, "2023-01-15", "rent"),
		R("200", Expense, "2023-01-20", "food"),
	}
}
