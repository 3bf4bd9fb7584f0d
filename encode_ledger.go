package budget

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeLedger decodes a ledger from a JSON array of transactions.
//
// Records keep the order of the array, and the ledger's next id is computed
// from them. Read errors are reported as ErrIO, any content that is not a
// JSON array of complete transactions as ErrDeserialization.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading from input: %w", ErrIO, err)
	}

	var records []Transaction
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	// "null" decodes without error into a nil slice.
	if records == nil {
		return nil, fmt.Errorf("%w: ledger must be a JSON array", ErrDeserialization)
	}

	ledger := NewLedger()
	ledger.ReplaceAll(records)
	return ledger, nil
}

// EncodeLedger writes all transactions of the ledger to w as an indented JSON
// array, in insertion order, followed by a newline.
//
// Nothing is written if the ledger cannot be encoded (ErrSerialization).
// Write errors are reported as ErrIO.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	data, err := marshalLedger(ledger)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: failed to write ledger: %w", ErrIO, err)
	}
	return nil
}

// marshalLedger returns the full file content for the ledger.
func marshalLedger(ledger *Ledger) ([]byte, error) {
	data, err := json.Marshal(ledger.Transactions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
