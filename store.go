package bookkeeping

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/etnz/bookkeeping/date"
	"github.com/shopspring/decimal"
)

// Store holds the authoritative set of records in memory and mirrors it to a
// JSON file on every mutation.
//
// A Store is meant to be used by a single goroutine, and only one Store should
// write a given file at a time: the last full snapshot written wins.
type Store struct {
	path    string
	records []Record
	loadErr error

	logger *log.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report storage failures.
func WithLogger(l *log.Logger) Option { return func(s *Store) { s.logger = l } }

// WithClock sets the clock used to stamp CreatedAt and DeletedAt.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// Open opens the ledger file at path.
//
// The containing directory is created if needed. Any failure to load an
// existing snapshot is logged and results in an empty store, see LoadErr.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path:    path,
		records: []Record{},
		logger:  log.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		s.logger.Printf("could not create directory for ledger %q: %v", path, err)
	}

	records, err := loadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// A new ledger, nothing to report.
	case err != nil:
		s.loadErr = err
		s.logger.Printf("warning, starting with an empty ledger: %v", err)
	default:
		s.records = records
	}
	return s
}

// Path returns the ledger file location.
func (s *Store) Path() string { return s.path }

// LoadErr returns the error that was swallowed when opening the store, if any.
// A missing file is not an error.
func (s *Store) LoadErr() error { return s.loadErr }

// Len returns the number of live records.
func (s *Store) Len() int { return len(s.records) }

// nextID returns max(id)+1, or 1 for an empty store.
//
// Ids freed by deletions are not reissued while a higher id exists, but
// deleting every record resets the sequence to 1.
func (s *Store) nextID() int {
	id := 0
	for _, r := range s.records {
		id = max(id, r.ID)
	}
	return id + 1
}

// Add creates a record and persists the whole ledger.
//
// The returned boolean reports whether the ledger was saved. On a save failure
// the record is still kept in memory with its new ID: the data is at risk, not
// lost. An invalid amount or kind is rejected and logged, nothing is stored
// and the returned record has ID 0, which is how callers tell a rejection from
// a save failure. Front ends should call ValidateRecord first to report why.
func (s *Store) Add(amount decimal.Decimal, kind Kind, day, description string) (bool, Record) {
	r := Record{
		Amount:      amount,
		Kind:        kind,
		Date:        day,
		Description: description,
	}
	if err := r.Validate(); err != nil {
		s.logger.Printf("rejected record: %v", err)
		return false, Record{}
	}
	r.ID = s.nextID()
	r.CreatedAt = NewTimestamp(s.now())

	s.records = append(s.records, r)
	return s.Save(), r
}

// Delete removes the first record with this id and persists the ledger.
//
// The removed record is returned stamped with DeletedAt and DeleteReason.
// If no record matches it returns (false, nil) and storage is not touched.
func (s *Store) Delete(id int, reason string) (bool, *Record) {
	i := slices.IndexFunc(s.records, func(r Record) bool { return r.ID == id })
	if i < 0 {
		return false, nil
	}
	removed := s.records[i]
	s.records = slices.Delete(s.records, i, i+1)

	removed.DeletedAt = NewTimestamp(s.now())
	removed.DeleteReason = reason
	return s.Save(), &removed
}

// All returns a copy of the live records in insertion order.
func (s *Store) All() []Record { return slices.Clone(s.records) }

// Range returns the records dated within [start, end], boundaries included.
//
// Either bound may be empty to leave that side open. When start is after end
// the result is empty. Dates are compared as calendar dates; a record whose
// date cannot be parsed never matches a bounded query.
func (s *Store) Range(start, end string) ([]Record, error) {
	r, err := date.ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.InRange(r), nil
}

// InRange is like Range for an already parsed range.
func (s *Store) InRange(r date.Range) []Record {
	if r == (date.Range{}) {
		return s.All()
	}
	matches := []Record{}
	if r.Empty() {
		return matches
	}
	for _, rec := range s.records {
		day, err := rec.Day()
		if err != nil {
			s.logger.Printf("skipping record in range query: %v", err)
			continue
		}
		if r.Contains(day) {
			matches = append(matches, rec)
		}
	}
	return matches
}

// Summary totals the whole ledger, see Summarize.
func (s *Store) Summary() Summary { return Summarize(s.records) }

// Save writes the whole ledger to its file.
//
// On failure the previous file is left untouched, the error is logged and
// false is returned.
func (s *Store) Save() bool {
	if err := saveFile(s.path, s.records); err != nil {
		s.logger.Printf("error saving ledger: %v", err)
		return false
	}
	return true
}

// Summary holds the totals of a set of records.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal // Income - Expense
}

// Summarize totals income and expense amounts of records.
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		switch r.Kind {
		case Income:
			s.Income = s.Income.Add(r.Amount)
		case Expense:
			s.Expense = s.Expense.Add(r.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}
