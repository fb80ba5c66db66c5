package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateSoli(t *testing.T) {
	tests := []struct {
		name        string
		liability   decimal.Decimal
		year        int
		married     bool
		expected    decimal.Decimal
		description string
	}{
		{
			name:        "Exactly at threshold",
			liability:   decimal.NewFromInt(18130),
			year:        2024,
			expected:    decimal.Zero,
			description: "The threshold itself is exempt",
		},
		{
			name:        "Just above threshold",
			liability:   decimal.NewFromFloat(18130.01),
			year:        2024,
			expected:    decimal.NewFromFloat(997.15055),
			description: "Full rate on the whole liability",
		},
		{
			name:        "Married threshold doubled",
			liability:   decimal.NewFromInt(30000),
			year:        2024,
			married:     true,
			expected:    decimal.Zero,
			description: "30000 is below 2 * 18130",
		},
		{
			name:        "Same liability single",
			liability:   decimal.NewFromInt(30000),
			year:        2024,
			expected:    decimal.NewFromInt(1650),
			description: "30000 is above 18130",
		},
		{
			name:        "Unknown year falls back to latest",
			liability:   decimal.NewFromInt(20000),
			year:        2028,
			expected:    decimal.Zero,
			description: "2026 threshold 20350 is used, no error",
		},
		{
			name:        "Same liability in 2024",
			liability:   decimal.NewFromInt(20000),
			year:        2024,
			expected:    decimal.NewFromInt(1100),
			description: "Confirms the fallback above changed the outcome",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			soli := CalculateSoli(tt.liability, tt.year, tt.married)
			assert.True(t, soli.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description, tt.expected, soli)
		})
	}
}

func TestSoliThreshold(t *testing.T) {
	sc := NewSoliCalculator(nil)

	assert.True(t, sc.Threshold(2025, false).Equal(decimal.NewFromInt(19950)))
	assert.True(t, sc.Threshold(2025, true).Equal(decimal.NewFromInt(39900)))
	assert.True(t, sc.Threshold(1990, false).Equal(decimal.NewFromInt(20350)), "fallback to the latest year")
}
