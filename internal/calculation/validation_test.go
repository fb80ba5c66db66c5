package calculation

import (
	"testing"

	"github.com/rpgo/indo-german-tax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRunValidationChecks(t *testing.T) {
	contributing := domain.PersonInput{GrossSalary: decimal.NewFromInt(50000), Pension: decimal.NewFromInt(4650)}

	tests := []struct {
		name        string
		input       domain.FilingInput
		report      *domain.TaxReport
		expected    []string
		description string
	}{
		{
			name:        "Clean input",
			input:       domain.FilingInput{PersonA: contributing},
			report:      &domain.TaxReport{TaxClass: 1, FinalTaxLiability: decimal.NewFromInt(8000)},
			expected:    nil,
			description: "No warnings for a consistent single filer",
		},
		{
			name:        "Missing contributions",
			input:       domain.FilingInput{PersonA: domain.PersonInput{GrossSalary: decimal.NewFromInt(50000)}},
			report:      &domain.TaxReport{TaxClass: 1},
			expected:    []string{WarnMissingContributions},
			description: "Gross above 20000 without contributions",
		},
		{
			name:        "Low income without contributions",
			input:       domain.FilingInput{PersonA: domain.PersonInput{GrossSalary: decimal.NewFromInt(20000)}},
			report:      &domain.TaxReport{TaxClass: 1},
			expected:    nil,
			description: "20000 is not above the limit",
		},
		{
			name: "Missing contributions for person B",
			input: domain.FilingInput{
				IsMarried: true,
				PersonA:   contributing,
				PersonB:   domain.PersonInput{GrossSalary: decimal.NewFromInt(30000)},
			},
			report:      &domain.TaxReport{TaxClass: 4},
			expected:    []string{"Person B: " + WarnMissingContributions},
			description: "Person B gets a labelled warning",
		},
		{
			name:        "Married in class 1",
			input:       domain.FilingInput{IsMarried: true, PersonA: contributing},
			report:      &domain.TaxReport{TaxClass: 1},
			expected:    []string{WarnMarriedTaxClassOne},
			description: "Inconsistent class for a married couple",
		},
		{
			name:        "Children with high liability",
			input:       domain.FilingInput{NumChildren: 2, PersonA: contributing},
			report:      &domain.TaxReport{TaxClass: 1, FinalTaxLiability: decimal.NewFromInt(3001)},
			expected:    []string{NoteChildAllowance},
			description: "Child allowance note",
		},
		{
			name:        "Children with low liability",
			input:       domain.FilingInput{NumChildren: 2, PersonA: contributing},
			report:      &domain.TaxReport{TaxClass: 1, FinalTaxLiability: decimal.NewFromInt(3000)},
			expected:    nil,
			description: "3000 is not above the limit",
		},
		{
			name: "All rules in evaluation order",
			input: domain.FilingInput{
				IsMarried:   true,
				NumChildren: 1,
				PersonA:     domain.PersonInput{GrossSalary: decimal.NewFromInt(90000)},
			},
			report: &domain.TaxReport{TaxClass: 1, FinalTaxLiability: decimal.NewFromInt(20000)},
			expected: []string{
				WarnMissingContributions,
				WarnMarriedTaxClassOne,
				NoteChildAllowance,
			},
			description: "Warnings follow rule order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RunValidationChecks(tt.input, tt.report), tt.description)
		})
	}
}

func TestValidationDoesNotModifyReport(t *testing.T) {
	report := &domain.TaxReport{TaxClass: 1, FinalTaxLiability: decimal.NewFromInt(5000)}
	before := *report

	RunValidationChecks(domain.FilingInput{IsMarried: true, NumChildren: 3}, report)
	assert.Equal(t, before, *report)
}

func TestValidationMessages(t *testing.T) {
	assert.Equal(t, "Social security contributions seem missing. This will cause an overestimation of tax.", WarnMissingContributions)
	assert.Equal(t, "You are filing as married but using Tax Class 1. Tax Class 4 (Splitting) is usually more beneficial.", WarnMarriedTaxClassOne)
	assert.Equal(t, "The tool has applied the Child Allowance (Kinderfreibetrag) as it was more beneficial than Kindergeld.", NoteChildAllowance)
}
