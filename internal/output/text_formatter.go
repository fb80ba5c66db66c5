package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/indo-german-tax/internal/domain"
)

// Disclaimer is printed at the top of every human-readable report.
const Disclaimer = "DISCLAIMER: This is a non-binding estimate. Consult a tax advisor."

const (
	textRule  = "======================================="
	textLine  = "---------------------------------------"
	textLabel = "%-33s%15s€\n"
)

// TextFormatter renders the plain-text report that is saved next to the input file.
type TextFormatter struct{}

func (t TextFormatter) Name() string { return "text" }

func (t TextFormatter) Format(r *domain.TaxReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("no report data to format")
	}
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INDO-GERMAN TAX REPORT (DUAL INCOME)")
	fmt.Fprintln(&buf, textRule)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, Disclaimer)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "--- INCOME SUMMARY ---")
	fmt.Fprintf(&buf, textLabel, "Person A - Gross:", FormatAmount(r.Input.PersonA.GrossSalary))
	fmt.Fprintf(&buf, textLabel, "Person B - Gross:", FormatAmount(r.Input.PersonB.GrossSalary))
	fmt.Fprintf(&buf, textLabel, "JOINT GROSS:", FormatAmount(r.TotalGross))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "--- DEDUCTIONS & TAXABLE INCOME ---")
	fmt.Fprintf(&buf, textLabel, "(-) Total Social Security:", FormatAmount(r.Deductions.TotalVorsorge))
	fmt.Fprintf(&buf, textLabel, "(-) Total Work Expenses (WK):", FormatAmount(r.Deductions.TotalWerbungskosten))
	fmt.Fprintf(&buf, textLabel, "(-) Other Deductions:", FormatAmount(r.Deductions.OtherDeductions))
	fmt.Fprintln(&buf, textLine)
	fmt.Fprintf(&buf, textLabel, "(=) TAXABLE GERMAN INCOME (zvE):", FormatAmount(r.TaxableIncome))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "--- TAX CALCULATION ---")
	fmt.Fprintf(&buf, textLabel, "(+) Foreign Income (for rate):", FormatAmount(r.ForeignIncome))
	fmt.Fprintf(&buf, "%-33s%16s\n", "(->) Effective Tax Rate:", FormatPercentage(r.EffectiveTaxRate))
	fmt.Fprintln(&buf, textLine)
	fmt.Fprintf(&buf, textLabel, "(=) Calculated German Tax:", FormatAmount(r.FinalTaxLiability))
	fmt.Fprintf(&buf, textLabel, "(-) Credits (§35a, TDS):", "-"+FormatAmount(r.Credits.TotalCredits))
	fmt.Fprintln(&buf, textLine)
	fmt.Fprintf(&buf, textLabel, "(=) NET GERMAN TAX DUE:", FormatAmount(r.NetTaxDue))
	fmt.Fprintf(&buf, textLabel, "(i) Solidarity Surcharge (info):", FormatAmount(r.SolidaritySurcharge))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "--- FINAL RESULT ---")
	fmt.Fprintf(&buf, textLabel, "Tax Already Paid (Lohnsteuer):", FormatAmount(r.TotalTaxPaid))
	fmt.Fprintf(&buf, "--- %s: %s ---\n", RefundLabel(r.RefundOrPayment), FormatBalance(r.RefundOrPayment))

	if len(r.Warnings) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "--- WARNINGS ---")
		for _, w := range r.Warnings {
			fmt.Fprintf(&buf, "* %s\n", strings.TrimSpace(w))
		}
	}
	return buf.Bytes(), nil
}
