package calculation

import (
	"github.com/rpgo/indo-german-tax/internal/domain"
	"github.com/shopspring/decimal"
)

// Advisory messages attached to a report
const (
	WarnMissingContributions = "Social security contributions seem missing. This will cause an overestimation of tax."
	WarnMarriedTaxClassOne   = "You are filing as married but using Tax Class 1. Tax Class 4 (Splitting) is usually more beneficial."
	NoteChildAllowance       = "The tool has applied the Child Allowance (Kinderfreibetrag) as it was more beneficial than Kindergeld."
)

var (
	missingContributionsGross = decimal.NewFromInt(20000)
	childAllowanceLiability   = decimal.NewFromInt(3000)
)

// RunValidationChecks inspects the input and the assembled report and returns
// advisory warnings in evaluation order. It never modifies the report.
//
// The child allowance note is descriptive: no Kindergeld comparison is computed.
func RunValidationChecks(input domain.FilingInput, report *domain.TaxReport) []string {
	var warnings []string

	if contributionsMissing(input.PersonA) {
		warnings = append(warnings, WarnMissingContributions)
	}
	if contributionsMissing(input.PersonB) {
		warnings = append(warnings, "Person B: "+WarnMissingContributions)
	}

	if report == nil {
		return warnings
	}
	if input.IsMarried && report.TaxClass == 1 {
		warnings = append(warnings, WarnMarriedTaxClassOne)
	}
	if input.NumChildren > 0 && report.FinalTaxLiability.GreaterThan(childAllowanceLiability) {
		warnings = append(warnings, NoteChildAllowance)
	}
	return warnings
}

func contributionsMissing(p domain.PersonInput) bool {
	return p.GrossSalary.GreaterThan(missingContributionsGross) && p.SocialSecurityTotal().IsZero()
}
