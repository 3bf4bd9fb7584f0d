package budget

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadLedger reads the ledger stored in the file at path.
//
// A missing file is the first run: it returns an empty ledger and no error.
// Other read errors are ErrIO, and a file that does not hold a valid ledger is
// ErrDeserialization.
func LoadLedger(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not read ledger file %q: %w", ErrIO, path, err)
	}

	ledger, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger overwrites the file at path with every transaction of the ledger.
//
// The ledger is encoded before the file is touched, so a serialization
// failure (ErrSerialization) leaves the file as it was. Filesystem failures
// are ErrIO, and then the file content is undefined. The file is not locked:
// concurrent writers overwrite each other and the last one wins.
func SaveLedger(path string, ledger *Ledger) error {
	data, err := marshalLedger(ledger)
	if err != nil {
		return fmt.Errorf("could not encode ledger for %q: %w", path, err)
	}

	// Ensure the directory for the ledger file exists.
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: could not create directory for ledger %q: %w", ErrIO, path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: could not write ledger file %q: %w", ErrIO, path, err)
	}
	return nil
}
