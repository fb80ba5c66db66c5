package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFilingInputFromMap(t *testing.T) {
	data := map[string]any{
		"tax_year":          "2025",
		"is_married":        true,
		"tax_class":         1,
		"num_kids":          2.0,
		"kita_costs":        "3000",
		"in_tds_inr":        15000,
		"de_gross_a":        60000.5,
		"de_pension_a":      decimal.NewFromInt(5580),
		"ho_days_a":         "120",
		"bank_fee_a":        "true",
		"de_gross_b":        int64(42000),
		"commute_km_b":      12.5,
		"office_days_b":     float64(180),
		"internet_b":        "not a number",
		"unknown_field_xyz": "ignored",
	}

	in := FilingInputFromMap(data)

	assert.Equal(t, 2025, in.TaxYear)
	assert.True(t, in.IsMarried)
	assert.Equal(t, 1, in.TaxClassIndex)
	assert.Equal(t, 2, in.NumChildren)
	assert.True(t, in.KitaCosts.Equal(decimal.NewFromInt(3000)))
	assert.True(t, in.IndianTDSINR.Equal(decimal.NewFromInt(15000)))

	assert.True(t, in.PersonA.GrossSalary.Equal(decimal.NewFromFloat(60000.5)))
	assert.True(t, in.PersonA.Pension.Equal(decimal.NewFromInt(5580)))
	assert.Equal(t, 120, in.PersonA.HomeOfficeDays)
	assert.True(t, in.PersonA.BankFee)

	assert.True(t, in.PersonB.GrossSalary.Equal(decimal.NewFromInt(42000)))
	assert.True(t, in.PersonB.CommuteKm.Equal(decimal.NewFromFloat(12.5)))
	assert.Equal(t, 180, in.PersonB.OfficeDays)
	assert.True(t, in.PersonB.InternetPhone.IsZero(), "unparseable values default to zero")
	assert.False(t, in.PersonB.BankFee, "absent flags default to false")
}

func TestFilingInputFromEmptyMap(t *testing.T) {
	assert.Equal(t, 0, FilingInputFromMap(nil).TaxYear)
	assert.True(t, FilingInputFromMap(map[string]any{}).TotalGross().IsZero())
}

func TestFilingInputFieldsRoundTrip(t *testing.T) {
	in := FilingInput{
		TaxYear:           2024,
		IsMarried:         true,
		TaxClassIndex:     2,
		NumChildren:       1,
		ParentsSupport:    decimal.NewFromInt(4000),
		NebenkostenLabor:  decimal.NewFromInt(350),
		IndianRentINR:     decimal.NewFromInt(240000),
		IndianInterestINR: decimal.NewFromInt(80000),
		PersonA: PersonInput{
			GrossSalary:    decimal.NewFromInt(72000),
			TaxPaid:        decimal.NewFromInt(14000),
			Health:         decimal.NewFromInt(5061),
			HomeOfficeDays: 90,
			BankFee:        true,
		},
		PersonB: PersonInput{
			GrossSalary: decimal.NewFromInt(18000),
			CommuteKm:   decimal.NewFromInt(22),
			OfficeDays:  150,
		},
	}

	fields := in.Fields()
	assert.Equal(t, 2024, fields["tax_year"])
	assert.Equal(t, true, fields["bank_fee_a"])
	assert.Equal(t, 150, fields["office_days_b"])

	back := FilingInputFromMap(fields)
	assert.Equal(t, in.Fields(), back.Fields())
}

func TestFilingInputTotals(t *testing.T) {
	in := FilingInput{
		PersonA: PersonInput{GrossSalary: decimal.NewFromInt(50000), TaxPaid: decimal.NewFromInt(8000)},
		PersonB: PersonInput{GrossSalary: decimal.NewFromInt(30000), TaxPaid: decimal.NewFromInt(3000)},
	}
	assert.True(t, in.TotalGross().Equal(decimal.NewFromInt(80000)))
	assert.True(t, in.TotalTaxPaid().Equal(decimal.NewFromInt(11000)))
}

func TestPersonInputContributions(t *testing.T) {
	p := PersonInput{
		Pension:      decimal.NewFromInt(4650),
		Unemployment: decimal.NewFromInt(650),
		Health:       decimal.NewFromInt(4075),
		Nursing:      decimal.NewFromInt(1150),
	}
	assert.True(t, p.SocialSecurityTotal().Equal(decimal.NewFromInt(10525)))
	assert.True(t, p.Contributions().Total().Equal(p.SocialSecurityTotal()))
}

func TestPersonInputSetContributions(t *testing.T) {
	p := PersonInput{GrossSalary: decimal.NewFromInt(50000), Pension: decimal.NewFromInt(1)}
	c := SocialSecurityContribution{
		Pension:      decimal.NewFromInt(4650),
		Unemployment: decimal.NewFromInt(650),
		Health:       decimal.NewFromInt(4075),
		Nursing:      decimal.NewFromInt(1150),
	}
	p.SetContributions(c)

	assert.Equal(t, c, p.Contributions())
	assert.True(t, p.SocialSecurityTotal().Equal(decimal.NewFromInt(10525)))
	assert.True(t, p.GrossSalary.Equal(decimal.NewFromInt(50000)), "salary is untouched")
}
