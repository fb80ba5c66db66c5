package calculation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rpgo/indo-german-tax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertDecimalNear fails when actual is further than tolerance from expected.
func assertDecimalNear(t *testing.T, expected, actual decimal.Decimal, tolerance float64, msgAndArgs ...any) {
	t.Helper()
	diff := actual.Sub(expected).Abs()
	if !diff.LessThanOrEqual(decimal.NewFromFloat(tolerance)) {
		assert.Fail(t, fmt.Sprintf("expected %s, got %s (difference %s)",
			expected.StringFixed(4), actual.StringFixed(4), diff.StringFixed(4)), msgAndArgs...)
	}
}

func TestDefaultYearTable(t *testing.T) {
	table := DefaultYearTable()

	assert.Equal(t, []int{2024, 2025, 2026}, table.Years())
	assert.Equal(t, 2026, table.LatestYear())
	assert.True(t, table.Has(2025))
	assert.False(t, table.Has(2023))

	tests := []struct {
		year           int
		basicAllowance int64
		pensionCap     int64
		healthCap      int64
		soliThreshold  int64
		description    string
	}{
		{2024, 11604, 90600, 62100, 18130, "2024 values"},
		{2025, 12096, 96600, 66150, 19950, "2025 values"},
		{2026, 12348, 101400, 69750, 20350, "2026 values"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			c, err := table.Lookup(tt.year)
			require.NoError(t, err)
			assert.True(t, c.BasicAllowance.Equal(decimal.NewFromInt(tt.basicAllowance)), "basic allowance %s", c.BasicAllowance)
			assert.True(t, c.PensionCap.Equal(decimal.NewFromInt(tt.pensionCap)), "pension cap %s", c.PensionCap)
			assert.True(t, c.HealthCap.Equal(decimal.NewFromInt(tt.healthCap)), "health cap %s", c.HealthCap)
			assert.True(t, c.SoliThreshold.Equal(decimal.NewFromInt(tt.soliThreshold)), "soli threshold %s", c.SoliThreshold)
		})
	}
}

func TestYearTableLookupUnsupportedYear(t *testing.T) {
	_, err := DefaultYearTable().Lookup(2023)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedYear))

	var yearErr *UnsupportedYearError
	require.True(t, errors.As(err, &yearErr))
	assert.Equal(t, 2023, yearErr.Year)
	assert.Equal(t, "tax constants for year 2023 are not available", err.Error())
}

func TestYearTableIsolation(t *testing.T) {
	table := DefaultYearTable()

	years := table.Years()
	years[0] = 1999
	assert.Equal(t, 2024, table.Years()[0], "Years must return a copy")

	c, err := table.Lookup(2024)
	require.NoError(t, err)
	c.BasicAllowance = decimal.NewFromInt(1)
	again, err := table.Lookup(2024)
	require.NoError(t, err)
	assert.True(t, again.BasicAllowance.Equal(decimal.NewFromInt(11604)), "Lookup must hand out copies")
}

// completeYear returns a fully populated year entry for table tests.
func completeYear(basicAllowance int64) domain.TaxYearConstants {
	return domain.TaxYearConstants{
		BasicAllowance:                decimal.NewFromInt(basicAllowance),
		ChildAllowance:                decimal.NewFromInt(9900),
		PensionCap:                    decimal.NewFromInt(104400),
		HealthCap:                     decimal.NewFromInt(71100),
		AdditionalHealthInsuranceRate: decimal.NewFromFloat(0.03),
		SoliThreshold:                 decimal.NewFromInt(20800),
	}
}

func TestNewYearTable(t *testing.T) {
	_, err := NewYearTable(nil)
	assert.Error(t, err, "empty table should be rejected")

	custom, err := NewYearTable(map[int]domain.TaxYearConstants{
		2031: completeYear(13000),
		2030: completeYear(12500),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2030, 2031}, custom.Years())
	assert.Equal(t, 2031, custom.LatestYear())
}

func TestNewYearTableRejectsIncompleteYears(t *testing.T) {
	tests := []struct {
		description string
		mutate      func(c *domain.TaxYearConstants)
		field       string
	}{
		{"missing basic allowance", func(c *domain.TaxYearConstants) { c.BasicAllowance = decimal.Zero }, "basic_allowance"},
		{"negative basic allowance", func(c *domain.TaxYearConstants) { c.BasicAllowance = decimal.NewFromInt(-1) }, "basic_allowance"},
		{"missing pension cap", func(c *domain.TaxYearConstants) { c.PensionCap = decimal.Zero }, "pension_cap"},
		{"missing health cap", func(c *domain.TaxYearConstants) { c.HealthCap = decimal.Zero }, "health_cap"},
		{"missing soli threshold", func(c *domain.TaxYearConstants) { c.SoliThreshold = decimal.Zero }, "soli_threshold"},
		{"negative child allowance", func(c *domain.TaxYearConstants) { c.ChildAllowance = decimal.NewFromInt(-5) }, "cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			c := completeYear(12600)
			tt.mutate(&c)
			_, err := NewYearTable(map[int]domain.TaxYearConstants{2027: c})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
			assert.Contains(t, err.Error(), "year 2027")
		})
	}
}
