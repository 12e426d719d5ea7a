package bookkeeping

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/etnz/bookkeeping/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TimestampFormat is the layout of CreatedAt and DeletedAt in the ledger file.
const TimestampFormat = "2006-01-02 15:04:05"

// Timestamp is a local instant with second precision.
type Timestamp struct{ time.Time }

// NewTimestamp truncates t to the second.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{t.Truncate(time.Second)} }

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(TimestampFormat)
}

func (t Timestamp) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}
	v, err := time.ParseInLocation(TimestampFormat, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q want format %q: %w", s, TimestampFormat, err)
	}
	*t = Timestamp{v}
	return nil
}

// Record is a single income or expense transaction.
//
// Records are never mutated: correcting one means deleting it and adding a new one.
type Record struct {
	ID          int
	Amount      decimal.Decimal
	Kind        Kind
	Date        string // YYYY-MM-DD, not validated by the store.
	Description string
	CreatedAt   Timestamp

	// Only set on the value returned by Store.Delete.
	DeletedAt    Timestamp
	DeleteReason string
}

// Day parses the record's date.
func (r Record) Day() (date.Date, error) {
	d, err := date.Parse(r.Date)
	if err != nil {
		return date.Date{}, fmt.Errorf("record %d: %w", r.ID, err)
	}
	return d, nil
}

// Validate checks the fields a caller provides when creating a record.
func (r Record) Validate() error {
	var errs error
	if !r.Amount.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("%w: got %s", ErrInvalidAmount, r.Amount))
	}
	if !r.Kind.Valid() {
		errs = errors.Join(errs, ErrInvalidKind)
	}
	return errs
}

// ValidateRecord checks user input before it is handed to Store.Add.
// Unlike the store, it also requires a well formed date.
func ValidateRecord(amount decimal.Decimal, kind Kind, day string) error {
	errs := Record{Amount: amount, Kind: kind}.Validate()
	if _, err := date.Parse(day); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}

// MarshalJSON writes the record fields in their canonical order.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("amount", r.Amount)
	w.Append("kind", r.Kind)
	w.Append("date", r.Date)
	w.Append("description", r.Description)
	w.Append("created_at", r.CreatedAt)
	w.Optional("deleted_at", r.DeletedAt)
	w.Optional("delete_reason", r.DeleteReason)
	return w.MarshalJSON()
}

// recordJSON is the decoding shape of a ledger file entry.
type recordJSON struct {
	ID           int             `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         Kind            `json:"kind"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	CreatedAt    Timestamp       `json:"created_at"`
	DeletedAt    Timestamp       `json:"deleted_at"`
	DeleteReason string          `json:"delete_reason"`
}

func (r *Record) UnmarshalJSON(b []byte) error {
	var temp recordJSON
	if err := json.Unmarshal(b, &temp); err != nil {
		return err
	}
	if !temp.Kind.Valid() {
		return fmt.Errorf("record %d: %w", temp.ID, ErrInvalidKind)
	}
	*r = Record(temp)
	return nil
}
