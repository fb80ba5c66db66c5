package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/indo-german-tax/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *domain.TaxReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("no report data to format")
	}
	var buf bytes.Buffer
	status := "single"
	if r.IsMarried {
		status = "married, joint assessment"
	}
	fmt.Fprintf(&buf, "GERMAN TAX ESTIMATE %d (%s, class %d)\n", r.TaxYear, status, r.TaxClass)
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Gross: %s  Taxable (zvE): %s\n", FormatCurrency(r.TotalGross), FormatCurrency(r.TaxableIncome))
	fmt.Fprintf(&buf, "Foreign income: %s  Effective rate: %s\n", FormatCurrency(r.ForeignIncome), FormatPercentage(r.EffectiveTaxRate))
	fmt.Fprintf(&buf, "Tax: %s  Credits: %s  Net due: %s\n",
		FormatCurrency(r.FinalTaxLiability),
		FormatCurrency(r.Credits.TotalCredits),
		FormatCurrency(r.NetTaxDue),
	)
	fmt.Fprintf(&buf, "Withheld: %s\n", FormatCurrency(r.TotalTaxPaid))
	fmt.Fprintf(&buf, "%s: %s\n", RefundLabel(r.RefundOrPayment), FormatBalance(r.RefundOrPayment))
	for _, w := range r.Warnings {
		fmt.Fprintf(&buf, "! %s\n", w)
	}
	return buf.Bytes(), nil
}
