package budget

import "errors"

// Error kinds returned by the persistence layer. Use errors.Is to test for them.
var (
	// ErrIO reports a filesystem problem other than a missing ledger file.
	ErrIO = errors.New("i/o failure")
	// ErrSerialization reports a ledger that cannot be represented in the file format.
	ErrSerialization = errors.New("serialization failure")
	// ErrDeserialization reports a ledger file whose content is not a valid ledger.
	ErrDeserialization = errors.New("deserialization failure")
)
