package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money represents a euro amount with proper financial precision
type Money struct {
	decimal.Decimal
}

var (
	englishPrinter = message.NewPrinter(language.English)
	germanPrinter  = message.NewPrinter(language.German)
)

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Abs returns the amount without sign
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// Grouped renders the amount with thousands separators, e.g. "12,345.67".
func (m Money) Grouped() string {
	return englishPrinter.Sprintf("%.2f", m.Round().InexactFloat64())
}

// Format renders the grouped amount with a trailing euro sign, e.g. "12,345.67€".
func (m Money) Format() string {
	return m.Grouped() + "€"
}

// FormatGerman renders the amount in German notation, e.g. "12.345,67 €".
func (m Money) FormatGerman() string {
	return germanPrinter.Sprintf("%.2f", m.Round().InexactFloat64()) + " €"
}
