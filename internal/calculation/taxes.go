package calculation

import (
	"github.com/shopspring/decimal"
)

// IncomeTaxCalculator applies the progressive German tariff (§32a EStG,
// approximated) with optional joint assessment (Splittingverfahren).
type IncomeTaxCalculator struct {
	Table *YearTable

	// Zone limits are held constant across years; only the basic allowance
	// comes from the year table.
	ProgressionZone1Upper decimal.Decimal
	ProgressionZone2Upper decimal.Decimal
	ProportionalZoneUpper decimal.Decimal
}

// NewIncomeTaxCalculator creates a tariff calculator backed by the given table
func NewIncomeTaxCalculator(table *YearTable) *IncomeTaxCalculator {
	if table == nil {
		table = DefaultYearTable()
	}
	return &IncomeTaxCalculator{
		Table:                 table,
		ProgressionZone1Upper: decimal.NewFromInt(17005),
		ProgressionZone2Upper: decimal.NewFromInt(66760),
		ProportionalZoneUpper: decimal.NewFromInt(277825),
	}
}

var (
	tenThousand = decimal.NewFromInt(10000)
	two         = decimal.NewFromInt(2)

	zone1Coefficient = decimal.NewFromFloat(922.98)
	zone1Base        = decimal.NewFromInt(1400)
	zone2Coefficient = decimal.NewFromFloat(181.19)
	zone2Base        = decimal.NewFromInt(2397)
	zone2Offset      = decimal.NewFromFloat(1025.38)
	rate42           = decimal.NewFromFloat(0.42)
	offset42         = decimal.NewFromFloat(10602.13)
	rate45           = decimal.NewFromFloat(0.45)
	offset45         = decimal.NewFromFloat(18936.88)
)

// CalculateTax returns the income tax on taxableIncome for the year. Married
// couples are assessed jointly: income and basic allowance are halved, the
// tariff applied, and the result doubled.
func (itc *IncomeTaxCalculator) CalculateTax(taxableIncome decimal.Decimal, year int, isMarried bool) (decimal.Decimal, error) {
	c, err := itc.Table.Lookup(year)
	if err != nil {
		return decimal.Zero, err
	}
	if isMarried {
		return itc.TariffTax(taxableIncome.Div(two), c.BasicAllowance.Div(two)).Mul(two), nil
	}
	return itc.TariffTax(taxableIncome, c.BasicAllowance), nil
}

// TariffTax evaluates the piecewise tariff for income x and basic allowance.
func (itc *IncomeTaxCalculator) TariffTax(x, basicAllowance decimal.Decimal) decimal.Decimal {
	var tax decimal.Decimal
	switch {
	case x.LessThanOrEqual(basicAllowance):
		tax = decimal.Zero
	case x.LessThanOrEqual(itc.ProgressionZone1Upper):
		y := x.Sub(basicAllowance).Div(tenThousand)
		tax = zone1Coefficient.Mul(y).Add(zone1Base).Mul(y)
	case x.LessThanOrEqual(itc.ProgressionZone2Upper):
		z := x.Sub(itc.ProgressionZone1Upper).Div(tenThousand)
		tax = zone2Coefficient.Mul(z).Add(zone2Base).Mul(z).Add(zone2Offset)
	case x.LessThanOrEqual(itc.ProportionalZoneUpper):
		tax = rate42.Mul(x).Sub(offset42)
	default:
		tax = rate45.Mul(x).Sub(offset45)
	}
	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax
}

// CalculateTax computes income tax using the built-in year table.
func CalculateTax(taxableIncome decimal.Decimal, year int, isMarried bool) (decimal.Decimal, error) {
	return defaultIncomeTaxCalculator.CalculateTax(taxableIncome, year, isMarried)
}

var defaultIncomeTaxCalculator = NewIncomeTaxCalculator(DefaultYearTable())
