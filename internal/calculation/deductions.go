package calculation

import (
	"github.com/rpgo/indo-german-tax/internal/domain"
	"github.com/shopspring/decimal"
)

// DeductionsCalculator computes income-related expenses, special expenses
// and the two tax credits of a household.
type DeductionsCalculator struct{}

// NewDeductionsCalculator creates a new deductions calculator
func NewDeductionsCalculator() *DeductionsCalculator {
	return &DeductionsCalculator{}
}

// HomeOfficeDeduction returns the day-rate home-office deduction, capped per person.
func HomeOfficeDeduction(homeOfficeDays int) decimal.Decimal {
	ho := HomeOfficeDayRate.Mul(decimal.NewFromInt(int64(homeOfficeDays)))
	return decimal.Min(ho, MaxHomeOfficeDeduction)
}

// CommuteDeduction returns the commuter allowance (Entfernungspauschale) for
// the one-way distance and the number of office days. Kilometres above the
// threshold are paid at the higher rate.
func CommuteDeduction(commuteKm decimal.Decimal, officeDays int) decimal.Decimal {
	if officeDays <= 0 || commuteKm.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	days := decimal.NewFromInt(int64(officeDays))
	if commuteKm.LessThanOrEqual(CommuteThresholdKm) {
		return commuteKm.Mul(CommuteRateLowKm).Mul(days)
	}
	perDay := CommuteThresholdKm.Mul(CommuteRateLowKm).
		Add(commuteKm.Sub(CommuteThresholdKm).Mul(CommuteRateHighKm))
	return perDay.Mul(days)
}

// CalculateWerbungskosten compares itemized expenses with the lump sum for one
// person. Bank fee and internet costs only count for itemizers: when the
// Pauschale applies they are reported but not added.
func (dc *DeductionsCalculator) CalculateWerbungskosten(p domain.PersonInput) domain.DeductionResult {
	r := domain.DeductionResult{
		HomeOffice: HomeOfficeDeduction(p.HomeOfficeDays),
		Commute:    CommuteDeduction(p.CommuteKm, p.OfficeDays),
		Internet:   p.InternetPhone,
	}
	if p.BankFee {
		r.BankFee = BankFeeFlatRate
	}
	r.Itemized = r.HomeOffice.Add(r.Commute)

	if r.Itemized.LessThan(WerbungskostenPauschale) {
		r.Werbungskosten = WerbungskostenPauschale
		r.PauschaleApplied = true
		return r
	}
	r.Werbungskosten = r.Itemized.Add(r.BankFee).Add(r.Internet)
	return r
}

// CalculateDeductions computes all deductions for the household. Person B is
// only considered for married couples and, like person A, only with income.
func (dc *DeductionsCalculator) CalculateDeductions(in domain.FilingInput) domain.Deductions {
	var d domain.Deductions

	d.VorsorgeA = in.PersonA.SocialSecurityTotal()
	d.VorsorgeB = in.PersonB.SocialSecurityTotal()
	d.TotalVorsorge = d.VorsorgeA.Add(d.VorsorgeB)

	if in.PersonA.GrossSalary.IsPositive() {
		d.PersonA = dc.CalculateWerbungskosten(in.PersonA)
	}
	if in.IsMarried && in.PersonB.GrossSalary.IsPositive() {
		d.PersonB = dc.CalculateWerbungskosten(in.PersonB)
	}
	d.TotalWerbungskosten = d.PersonA.Werbungskosten.Add(d.PersonB.Werbungskosten)
	d.TotalFlatRates = d.PersonA.BankFee.Add(d.PersonA.Internet).Add(d.PersonB.BankFee).Add(d.PersonB.Internet)

	d.KitaDeduction = in.KitaCosts.Mul(KitaDeductionNumerator).Div(KitaDeductionDenominator)
	d.ParentsSupportDeduction = in.ParentsSupport
	d.OtherDeductions = d.KitaDeduction.Add(d.ParentsSupportDeduction)

	d.TotalDeductions = d.TotalVorsorge.Add(d.TotalWerbungskosten).Add(d.OtherDeductions)
	return d
}

// CalculateCredits computes the §35a household-labour credit and the credit
// for tax withheld in India (TDS).
func (dc *DeductionsCalculator) CalculateCredits(in domain.FilingInput) domain.Credits {
	nk := in.NebenkostenLabor.Mul(NebenkostenLaborRate)
	tds := ConvertINRToEUR(in.IndianTDSINR)
	return domain.Credits{
		NebenkostenCredit: nk,
		TDSCredit:         tds,
		TotalCredits:      nk.Add(tds),
	}
}

// ConvertINRToEUR converts rupees at the fixed rate.
func ConvertINRToEUR(amountINR decimal.Decimal) decimal.Decimal {
	return amountINR.Mul(INRToEURRate)
}
