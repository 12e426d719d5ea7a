package bookkeeping

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// loadFile reads the ledger snapshot at path.
// A missing file is reported as an error wrapping fs.ErrNotExist.
func loadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return records, nil
}

// saveFile replaces the ledger snapshot at path with records.
//
// The snapshot is written to a temporary file in the same directory and then
// renamed over path, so readers never see a partially written ledger.
func saveFile(path string, records []Record) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error opening temporary ledger file for %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if err := EncodeRecords(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing ledger %q: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing ledger %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing ledger %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing ledger %q: %w", path, err)
	}
	return nil
}
