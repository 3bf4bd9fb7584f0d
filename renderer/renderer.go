// Package renderer turns ledger data into text for the terminal, either as
// plain lines or as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/budget"
)

//go:embed *.md
var templates embed.FS

// DateFormat is the layout used to display transaction dates.
const DateFormat = "2006-01-02 15:04:05"

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"date":   func(t time.Time) string { return t.Format(DateFormat) },
	"amount": formatAmount,
	"cell":   escapeCell,
}

// report is the data rendered by the transactions template.
type report struct {
	Transactions []budget.Transaction
	Balance      float64
}

// TransactionsMarkdown renders the transactions and the balance as a markdown document.
func TransactionsMarkdown(txs []budget.Transaction, balance float64) string {
	return renderTemplate("transactions", "transactions.md", report{Transactions: txs, Balance: balance})
}

// renderTemplate is a generic utility to render a template file with data.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

func formatAmount(v float64) string { return fmt.Sprintf("%.2f", v) }

// escapeCell makes text safe to use inside a markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
