package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEstimateSocialSecurity checks the four branches against hand-computed values
func TestEstimateSocialSecurity(t *testing.T) {
	tests := []struct {
		name         string
		gross        decimal.Decimal
		year         int
		children     int
		pension      decimal.Decimal
		unemployment decimal.Decimal
		health       decimal.Decimal
		nursing      decimal.Decimal
		description  string
	}{
		{
			name:         "Below both caps",
			gross:        decimal.NewFromInt(50000),
			year:         2024,
			children:     0,
			pension:      decimal.NewFromInt(4650),
			unemployment: decimal.NewFromInt(650),
			health:       decimal.NewFromInt(4075), // 50000 * (0.073 + 0.017/2)
			nursing:      decimal.NewFromInt(1150), // childless rate 0.023
			description:  "All branches computed off the full salary",
		},
		{
			name:         "Above both caps",
			gross:        decimal.NewFromInt(100000),
			year:         2024,
			children:     0,
			pension:      decimal.NewFromFloat(8425.8),  // 90600 * 0.093
			unemployment: decimal.NewFromFloat(1177.8),  // 90600 * 0.013
			health:       decimal.NewFromFloat(5061.15), // 62100 * 0.0815
			nursing:      decimal.NewFromFloat(1428.3),  // 62100 * 0.023
			description:  "Pension and unemployment capped at 90600, health and nursing at 62100",
		},
		{
			name:         "Between caps with one child",
			gross:        decimal.NewFromInt(80000),
			year:         2025,
			children:     1,
			pension:      decimal.NewFromInt(7440),
			unemployment: decimal.NewFromInt(1040),
			health:       decimal.NewFromFloat(5655.825), // 66150 * 0.0855
			nursing:      decimal.NewFromFloat(1124.55),  // 66150 * 0.017
			description:  "Health cap applies, pension cap does not",
		},
		{
			name:         "Zero salary",
			gross:        decimal.Zero,
			year:         2026,
			children:     3,
			pension:      decimal.Zero,
			unemployment: decimal.Zero,
			health:       decimal.Zero,
			nursing:      decimal.Zero,
			description:  "No income, no contributions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := EstimateSocialSecurity(tt.gross, tt.year, tt.children)
			require.NoError(t, err, tt.description)
			assertDecimalNear(t, tt.pension, c.Pension, 0.001, "pension")
			assertDecimalNear(t, tt.unemployment, c.Unemployment, 0.001, "unemployment")
			assertDecimalNear(t, tt.health, c.Health, 0.001, "health")
			assertDecimalNear(t, tt.nursing, c.Nursing, 0.001, "nursing")
		})
	}
}

func TestNursingRate(t *testing.T) {
	sse := NewSocialSecurityEstimator(nil)

	tests := []struct {
		children    int
		expected    decimal.Decimal
		description string
	}{
		{0, decimal.NewFromFloat(0.023), "childless surcharge"},
		{1, decimal.NewFromFloat(0.017), "base rate"},
		{2, decimal.NewFromFloat(0.0145), "one discounted child"},
		{5, decimal.NewFromFloat(0.007), "four discounted children"},
		{8, decimal.NewFromFloat(0.007), "discount capped at four children"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.True(t, sse.NursingRate(tt.children).Equal(tt.expected),
				"children=%d: expected %s, got %s", tt.children, tt.expected, sse.NursingRate(tt.children))
		})
	}
}

// TestSocialSecurityMonotonicUpToCap verifies each branch never decreases with
// salary and stays constant once its cap is reached.
func TestSocialSecurityMonotonicUpToCap(t *testing.T) {
	for _, year := range DefaultYearTable().Years() {
		c, err := DefaultYearTable().Lookup(year)
		require.NoError(t, err)

		prev, err := EstimateSocialSecurity(decimal.Zero, year, 0)
		require.NoError(t, err)

		for gross := int64(2500); gross <= 150000; gross += 2500 {
			g := decimal.NewFromInt(gross)
			cur, err := EstimateSocialSecurity(g, year, 0)
			require.NoError(t, err)

			assert.True(t, cur.Pension.GreaterThanOrEqual(prev.Pension), "%d pension decreased at %d", year, gross)
			assert.True(t, cur.Unemployment.GreaterThanOrEqual(prev.Unemployment), "%d unemployment decreased at %d", year, gross)
			assert.True(t, cur.Health.GreaterThanOrEqual(prev.Health), "%d health decreased at %d", year, gross)
			assert.True(t, cur.Nursing.GreaterThanOrEqual(prev.Nursing), "%d nursing decreased at %d", year, gross)

			if g.GreaterThan(c.PensionCap) {
				atCap, _ := EstimateSocialSecurity(c.PensionCap, year, 0)
				assert.True(t, cur.Pension.Equal(atCap.Pension), "%d pension not constant above cap", year)
			}
			if g.GreaterThan(c.HealthCap) {
				atCap, _ := EstimateSocialSecurity(c.HealthCap, year, 0)
				assert.True(t, cur.Health.Equal(atCap.Health), "%d health not constant above cap", year)
				assert.True(t, cur.Nursing.Equal(atCap.Nursing), "%d nursing not constant above cap", year)
			}
			prev = cur
		}
	}
}

func TestEstimateSocialSecurityUnsupportedYear(t *testing.T) {
	_, err := EstimateSocialSecurity(decimal.NewFromInt(50000), 2023, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedYear), "unknown years must not be defaulted")
}
