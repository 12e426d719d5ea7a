package bookkeeping

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeRecords writes records to w as an indented JSON array, in order.
func EncodeRecords(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

// DecodeRecords reads a JSON array of records from r.
// Records are returned in file order, no validation is performed.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("could not decode records: %w", err)
	}
	return records, nil
}
