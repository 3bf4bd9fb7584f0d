package budget

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are kept in insertion order, which is not
// necessarily chronological after a reload. The Ledger allocates ids: the next
// id is always greater than every id it holds.
type Ledger struct {
	transactions []Transaction
	nextID       int
	now          func() time.Time
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		nextID:       1,
		now:          time.Now,
	}
}

// WithClock sets the function used to timestamp new transactions and returns the ledger.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Add records a new transaction and returns it.
//
// Amount and description are not validated: zero or negative amounts are
// recorded as given.
func (l *Ledger) Add(amount float64, description string, kind Kind) Transaction {
	tx := Transaction{
		ID:          l.nextID,
		Date:        l.now(),
		Amount:      amount,
		Description: description,
		Kind:        kind,
	}
	l.nextID++
	l.transactions = append(l.transactions, tx)
	return tx
}

// Balance returns the sum of incomes minus the sum of expenses, in insertion order.
// It is 0 for an empty ledger.
func (l *Ledger) Balance() float64 {
	balance := 0.0
	for _, tx := range l.transactions {
		balance += tx.Signed()
	}
	return balance
}

// ExactBalance is like Balance but accumulates in decimal arithmetic, starting
// from the shortest decimal representation of each amount. It avoids the
// rounding drift of Balance over many transactions.
//
// It fails if an amount is NaN or infinite.
func (l *Ledger) ExactBalance() (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, tx := range l.transactions {
		if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
			return decimal.Zero, fmt.Errorf("transaction %d has no decimal value: %v", tx.ID, tx.Amount)
		}
		amount := decimal.NewFromFloat(tx.Amount)
		if tx.Kind == Expense {
			amount = amount.Neg()
		}
		balance = balance.Add(amount)
	}
	return balance, nil
}

// Transactions returns a copy of all transactions in insertion order.
// The result is empty, not nil, for an empty ledger.
func (l *Ledger) Transactions() []Transaction {
	txs := make([]Transaction, len(l.transactions))
	copy(txs, l.transactions)
	return txs
}

// All iterates over the transactions in insertion order, with their position.
func (l *Ledger) All() iter.Seq2[int, Transaction] {
	return slices.All(l.transactions)
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// NextID returns the id the next added transaction will get.
func (l *Ledger) NextID() int { return l.nextID }

// ReplaceAll replaces every transaction in the ledger with records, keeping
// their order, and sets the next id to one past the greatest id in records, or
// 1 if records is empty.
//
// The maximum is used rather than the count: ids are never reused even when
// the records are sparse.
func (l *Ledger) ReplaceAll(records []Transaction) {
	l.transactions = make([]Transaction, len(records))
	copy(l.transactions, records)

	maxID := 0
	for _, tx := range records {
		maxID = max(maxID, tx.ID)
	}
	l.nextID = maxID + 1
}
