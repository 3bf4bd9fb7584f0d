package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/budget"
)

// Transaction renders a transaction on a single line.
func Transaction(tx budget.Transaction) string {
	return fmt.Sprintf("ID: %d, Date: %s, Type: %s, Amount: %s, Description: %s",
		tx.ID, tx.Date.Format(DateFormat), tx.Kind, formatAmount(tx.Amount), tx.Description)
}

// Transactions renders one line per transaction, or a notice when there is none.
func Transactions(txs []budget.Transaction) string {
	if len(txs) == 0 {
		return "No transactions found.\n"
	}
	var b strings.Builder
	for _, tx := range txs {
		b.WriteString(Transaction(tx))
		b.WriteByte('\n')
	}
	return b.String()
}

// Balance renders the current balance.
func Balance(balance float64) string {
	return fmt.Sprintf("Current Balance: %s\n", formatAmount(balance))
}

// Added renders the confirmation printed after a transaction is recorded.
func Added(tx budget.Transaction) string {
	return fmt.Sprintf("%s transaction added.\n", tx.Kind)
}
