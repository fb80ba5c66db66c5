package calculation

import (
	"github.com/shopspring/decimal"
)

// SoliCalculator computes the solidarity surcharge (Solidaritätszuschlag).
//
// Unlike the estimator and the tariff, an unknown year is not an error here:
// the threshold of the latest configured year is used instead.
type SoliCalculator struct {
	Table *YearTable
	Rate  decimal.Decimal
}

// NewSoliCalculator creates a surcharge calculator backed by the given table
func NewSoliCalculator(table *YearTable) *SoliCalculator {
	if table == nil {
		table = DefaultYearTable()
	}
	return &SoliCalculator{Table: table, Rate: SoliRate}
}

// Threshold returns the exemption threshold for the year, doubled for
// married couples.
func (sc *SoliCalculator) Threshold(year int, isMarried bool) decimal.Decimal {
	c, err := sc.Table.Lookup(year)
	if err != nil {
		c, _ = sc.Table.Lookup(sc.Table.LatestYear())
	}
	if isMarried {
		return c.SoliThreshold.Mul(two)
	}
	return c.SoliThreshold
}

// CalculateSoli returns zero up to the threshold and the full rate on the
// whole liability above it. No transition zone is modelled.
func (sc *SoliCalculator) CalculateSoli(taxLiability decimal.Decimal, year int, isMarried bool) decimal.Decimal {
	if taxLiability.LessThanOrEqual(sc.Threshold(year, isMarried)) {
		return decimal.Zero
	}
	return taxLiability.Mul(sc.Rate)
}

// CalculateSoli computes the surcharge using the built-in year table.
func CalculateSoli(taxLiability decimal.Decimal, year int, isMarried bool) decimal.Decimal {
	return defaultSoliCalculator.CalculateSoli(taxLiability, year, isMarried)
}

var defaultSoliCalculator = NewSoliCalculator(DefaultYearTable())
