package calculation

import (
	"github.com/rpgo/indo-german-tax/internal/domain"
	"github.com/shopspring/decimal"
)

// SocialSecurityEstimator estimates the employee share of German statutory
// social insurance contributions.
type SocialSecurityEstimator struct {
	Table *YearTable

	PensionRate          decimal.Decimal
	UnemploymentRate     decimal.Decimal
	HealthBaseRate       decimal.Decimal
	NursingBaseRate      decimal.Decimal
	NursingChildlessRate decimal.Decimal
	NursingChildDiscount decimal.Decimal // per child from the second on
	MaxDiscountedKids    int
}

// NewSocialSecurityEstimator creates an estimator backed by the given table
func NewSocialSecurityEstimator(table *YearTable) *SocialSecurityEstimator {
	if table == nil {
		table = DefaultYearTable()
	}
	return &SocialSecurityEstimator{
		Table:                table,
		PensionRate:          decimal.NewFromFloat(0.093),
		UnemploymentRate:     decimal.NewFromFloat(0.013),
		HealthBaseRate:       decimal.NewFromFloat(0.073),
		NursingBaseRate:      decimal.NewFromFloat(0.017),
		NursingChildlessRate: decimal.NewFromFloat(0.023),
		NursingChildDiscount: decimal.NewFromFloat(0.0025),
		MaxDiscountedKids:    4,
	}
}

// Estimate computes the four contributions for one person. Each branch is
// capped independently at its own contribution ceiling.
func (sse *SocialSecurityEstimator) Estimate(grossSalary decimal.Decimal, year int, numChildren int) (domain.SocialSecurityContribution, error) {
	c, err := sse.Table.Lookup(year)
	if err != nil {
		return domain.SocialSecurityContribution{}, err
	}

	pensionBase := decimal.Min(grossSalary, c.PensionCap)
	healthBase := decimal.Min(grossSalary, c.HealthCap)

	// Employee pays the base rate plus half of the additional rate
	healthRate := sse.HealthBaseRate.Add(c.AdditionalHealthInsuranceRate.Div(decimal.NewFromInt(2)))

	return domain.SocialSecurityContribution{
		Pension:      pensionBase.Mul(sse.PensionRate),
		Unemployment: pensionBase.Mul(sse.UnemploymentRate),
		Health:       healthBase.Mul(healthRate),
		Nursing:      healthBase.Mul(sse.NursingRate(numChildren)),
	}, nil
}

// NursingRate returns the employee nursing-care rate for the number of children.
// Childless employees pay a surcharge; from the second child on each child
// reduces the rate, for at most MaxDiscountedKids children.
func (sse *SocialSecurityEstimator) NursingRate(numChildren int) decimal.Decimal {
	if numChildren <= 0 {
		return sse.NursingChildlessRate
	}
	discounted := numChildren - 1
	if discounted > sse.MaxDiscountedKids {
		discounted = sse.MaxDiscountedKids
	}
	return sse.NursingBaseRate.Sub(sse.NursingChildDiscount.Mul(decimal.NewFromInt(int64(discounted))))
}

// EstimateSocialSecurity estimates contributions using the built-in year table.
func EstimateSocialSecurity(grossSalary decimal.Decimal, year int, numChildren int) (domain.SocialSecurityContribution, error) {
	return defaultSocialSecurityEstimator.Estimate(grossSalary, year, numChildren)
}

var defaultSocialSecurityEstimator = NewSocialSecurityEstimator(DefaultYearTable())
