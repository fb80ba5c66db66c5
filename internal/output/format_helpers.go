package output

import (
	"github.com/shopspring/decimal"

	money "github.com/rpgo/indo-german-tax/pkg/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as a grouped euro amount with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatAmount formats a decimal with thousands separators and no currency sign.
func FormatAmount(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Grouped()
}

// FormatBalance formats the size of a refund or additional payment without its sign.
func FormatBalance(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Abs().Format()
}

// FormatFormValue formats an amount the way ELSTER form fields expect it, e.g. "1.234,50 €".
func FormatFormValue(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatGerman()
}

// FormatPercentage formats a rate (0.2 for 20%) as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string { return rate.Mul(decimalHundred).StringFixed(2) + "%" }

// RefundLabel returns the headline for the final balance of a report.
func RefundLabel(refundOrPayment decimal.Decimal) string {
	if refundOrPayment.IsPositive() {
		return "ESTIMATED REFUND"
	}
	return "ESTIMATED ADDITIONAL PAYMENT"
}
