package calculation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rpgo/indo-german-tax/internal/domain"
	"github.com/shopspring/decimal"
)

// ESTIMATION ASSUMPTIONS:
//
// 1. Year constants (basic allowance, child allowance, contribution caps,
//    average additional health insurance rate, Soli threshold) are curated
//    per year for 2024-2026. Nothing is fetched or indexed.
//
// 2. Tariff bracket thresholds (17005 / 66760 / 277825) are the same for
//    every year; only the basic allowance varies.
//
// 3. Indian amounts are converted at a single fixed rate of 0.011 EUR/INR.

// Flat rates and limits shared by all years
var (
	INRToEURRate = decimal.NewFromFloat(0.011)

	WerbungskostenPauschale = decimal.NewFromInt(1230)
	BankFeeFlatRate         = decimal.NewFromInt(16)
	HomeOfficeDayRate       = decimal.NewFromInt(6)
	MaxHomeOfficeDeduction  = decimal.NewFromInt(1260)

	CommuteRateLowKm     = decimal.NewFromFloat(0.30)
	CommuteRateHighKm    = decimal.NewFromFloat(0.38)
	CommuteThresholdKm   = decimal.NewFromInt(20)
	NebenkostenLaborRate = decimal.NewFromFloat(0.20)

	// Two thirds of childcare costs are deductible
	KitaDeductionNumerator   = decimal.NewFromInt(2)
	KitaDeductionDenominator = decimal.NewFromInt(3)

	SoliRate = decimal.NewFromFloat(0.055)
)

// ErrUnsupportedYear is matched by every UnsupportedYearError.
var ErrUnsupportedYear = errors.New("unsupported tax year")

// UnsupportedYearError is returned when a year has no constants entry.
type UnsupportedYearError struct {
	Year int
}

func (e *UnsupportedYearError) Error() string {
	return fmt.Sprintf("tax constants for year %d are not available", e.Year)
}

// Is lets errors.Is(err, ErrUnsupportedYear) match.
func (e *UnsupportedYearError) Is(target error) bool {
	return target == ErrUnsupportedYear
}

// YearTable is a read-only lookup of constants by year. It is never modified
// after construction; lookups hand out copies.
type YearTable struct {
	years map[int]domain.TaxYearConstants
	order []int
}

// NewYearTable copies the given entries into a new table.
func NewYearTable(entries map[int]domain.TaxYearConstants) (*YearTable, error) {
	if len(entries) == 0 {
		return nil, errors.New("year table needs at least one year")
	}
	t := &YearTable{years: make(map[int]domain.TaxYearConstants, len(entries))}
	for year, c := range entries {
		if c.ChildAllowance.IsNegative() || c.AdditionalHealthInsuranceRate.IsNegative() {
			return nil, fmt.Errorf("year %d: allowances and rates cannot be negative", year)
		}
		required := []struct {
			name  string
			value decimal.Decimal
		}{
			{"basic_allowance", c.BasicAllowance},
			{"pension_cap", c.PensionCap},
			{"health_cap", c.HealthCap},
			{"soli_threshold", c.SoliThreshold},
		}
		for _, r := range required {
			if !r.value.IsPositive() {
				return nil, fmt.Errorf("year %d: %s must be set to a positive amount", year, r.name)
			}
		}
		t.years[year] = c
		t.order = append(t.order, year)
	}
	sort.Ints(t.order)
	return t, nil
}

// Lookup returns the constants for a year or an *UnsupportedYearError.
func (t *YearTable) Lookup(year int) (domain.TaxYearConstants, error) {
	c, ok := t.years[year]
	if !ok {
		return domain.TaxYearConstants{}, &UnsupportedYearError{Year: year}
	}
	return c, nil
}

// Has reports whether the year is configured.
func (t *YearTable) Has(year int) bool {
	_, ok := t.years[year]
	return ok
}

// Years returns the configured years in ascending order.
func (t *YearTable) Years() []int {
	return append([]int(nil), t.order...)
}

// LatestYear returns the highest configured year.
func (t *YearTable) LatestYear() int {
	return t.order[len(t.order)-1]
}

var defaultYearTable = mustYearTable(map[int]domain.TaxYearConstants{
	2024: {
		BasicAllowance:                decimal.NewFromInt(11604),
		ChildAllowance:                decimal.NewFromInt(9312),
		PensionCap:                    decimal.NewFromInt(90600),
		HealthCap:                     decimal.NewFromInt(62100),
		AdditionalHealthInsuranceRate: decimal.NewFromFloat(0.017),
		SoliThreshold:                 decimal.NewFromInt(18130),
	},
	2025: {
		BasicAllowance:                decimal.NewFromInt(12096),
		ChildAllowance:                decimal.NewFromInt(9600),
		PensionCap:                    decimal.NewFromInt(96600),
		HealthCap:                     decimal.NewFromInt(66150),
		AdditionalHealthInsuranceRate: decimal.NewFromFloat(0.025),
		SoliThreshold:                 decimal.NewFromInt(19950),
	},
	2026: {
		BasicAllowance:                decimal.NewFromInt(12348),
		ChildAllowance:                decimal.NewFromInt(9756),
		PensionCap:                    decimal.NewFromInt(101400),
		HealthCap:                     decimal.NewFromInt(69750),
		AdditionalHealthInsuranceRate: decimal.NewFromFloat(0.029),
		SoliThreshold:                 decimal.NewFromInt(20350),
	},
})

// DefaultYearTable returns the built-in constants for 2024-2026.
func DefaultYearTable() *YearTable { return defaultYearTable }

func mustYearTable(entries map[int]domain.TaxYearConstants) *YearTable {
	t, err := NewYearTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}
