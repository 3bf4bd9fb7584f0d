package budget

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Kind tells whether a transaction adds to or subtracts from the balance.
type Kind int

const (
	// Income adds its amount to the balance.
	Income Kind = iota
	// Expense subtracts its amount from the balance.
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses the persisted form of a Kind, either "Income" or "Expense".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "Income":
		return Income, nil
	case "Expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Kind.
func (k Kind) MarshalJSON() ([]byte, error) {
	switch k {
	case Income, Expense:
		return json.Marshal(k.String())
	default:
		return nil, fmt.Errorf("cannot marshal unknown transaction type %d", int(k))
	}
}

// UnmarshalJSON implements the json.Unmarshaler interface for Kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("transaction type must be a string: %w", err)
	}
	v, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Transaction is a single income or expense recorded in a Ledger.
//
// Transactions are created by Ledger.Add and are not modified afterwards.
type Transaction struct {
	ID          int       // ID is unique in its ledger and never reused.
	Date        time.Time // Date is the local wall-clock time of creation.
	Amount      float64   // Amount is stored as given, its sign is not checked.
	Description string
	Kind        Kind
}

// Signed returns the contribution of the transaction to the balance.
func (t Transaction) Signed() float64 {
	if t.Kind == Expense {
		return -t.Amount
	}
	return t.Amount
}

// Equal reports whether t and o hold the same values. Dates are compared as instants.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date.Equal(o.Date) &&
		t.Amount == o.Amount &&
		t.Description == o.Description &&
		t.Kind == o.Kind
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Keys are written in the order id, date, amount, description, t_type.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("amount", t.Amount)
	w.Append("description", t.Description)
	w.Append("t_type", t.Kind)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// Every field is required, unknown keys are ignored.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          *int       `json:"id"`
		Date        *time.Time `json:"date"`
		Amount      *float64   `json:"amount"`
		Description *string    `json:"description"`
		Kind        *Kind      `json:"t_type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	var errs error
	missing := func(name string) { errs = errors.Join(errs, fmt.Errorf("missing field %q", name)) }
	if temp.ID == nil {
		missing("id")
	}
	if temp.Date == nil {
		missing("date")
	}
	if temp.Amount == nil {
		missing("amount")
	}
	if temp.Description == nil {
		missing("description")
	}
	if temp.Kind == nil {
		missing("t_type")
	}
	if errs != nil {
		return errs
	}
	if *temp.ID < 0 {
		return fmt.Errorf("invalid transaction id %d", *temp.ID)
	}

	*t = Transaction{
		ID:          *temp.ID,
		Date:        *temp.Date,
		Amount:      *temp.Amount,
		Description: *temp.Description,
		Kind:        *temp.Kind,
	}
	return nil
}
