// Package budget provides a small personal finance ledger: it records income
// and expense transactions, computes the running balance and persists the
// whole ledger to a local, human-readable file.
//
// The core functionalities include:
//   - Ledger: an in-memory, insertion-ordered list of transactions that
//     allocates monotonic, never reused ids.
//   - Persistence: encoding and decoding of the ledger to and from a JSON
//     array, and whole-file load and save helpers. A missing file is an empty
//     ledger, a malformed one is an error.
//
// This package serves as the foundational logic for the `bm` command-line
// tool, which loads the ledger, runs exactly one operation and saves it back.
package budget
