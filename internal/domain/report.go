package domain

import (
	"github.com/shopspring/decimal"
)

// SocialSecurityContribution is the employee share of the four statutory insurance branches
type SocialSecurityContribution struct {
	Pension      decimal.Decimal `json:"pension" yaml:"pension"`
	Unemployment decimal.Decimal `json:"unemployment" yaml:"unemployment"`
	Health       decimal.Decimal `json:"health" yaml:"health"`
	Nursing      decimal.Decimal `json:"nursing" yaml:"nursing"`
}

// Total returns the sum of all four branches
func (c SocialSecurityContribution) Total() decimal.Decimal {
	return c.Pension.Add(c.Unemployment).Add(c.Health).Add(c.Nursing)
}

// DeductionResult holds the income-related expense (Werbungskosten) breakdown for one person
type DeductionResult struct {
	HomeOffice       decimal.Decimal `json:"home_office"`
	Commute          decimal.Decimal `json:"commute"`
	Itemized         decimal.Decimal `json:"itemized"`
	Werbungskosten   decimal.Decimal `json:"werbungskosten"`
	PauschaleApplied bool            `json:"pauschale_applied"`
	BankFee          decimal.Decimal `json:"bank_fee"`
	Internet         decimal.Decimal `json:"internet"`
}

// Deductions aggregates everything subtracted from gross income before the tariff is applied
type Deductions struct {
	PersonA DeductionResult `json:"person_a"`
	PersonB DeductionResult `json:"person_b"`

	VorsorgeA     decimal.Decimal `json:"vorsorge_a"`
	VorsorgeB     decimal.Decimal `json:"vorsorge_b"`
	TotalVorsorge decimal.Decimal `json:"total_vorsorge"`

	TotalWerbungskosten decimal.Decimal `json:"total_wk"`
	TotalFlatRates      decimal.Decimal `json:"total_flat_rates"`

	KitaDeduction           decimal.Decimal `json:"kita_deduction"`
	ParentsSupportDeduction decimal.Decimal `json:"parents_support_deduction"`
	OtherDeductions         decimal.Decimal `json:"other_deductions"`

	TotalDeductions decimal.Decimal `json:"total_deductions"`
}

// Credits are subtracted from the computed liability, never below zero
type Credits struct {
	NebenkostenCredit decimal.Decimal `json:"nebenkosten_credit"`
	TDSCredit         decimal.Decimal `json:"tds_credit"`
	TotalCredits      decimal.Decimal `json:"total_credits"`
}

// TaxReport is the complete, itemized result of one estimation run
type TaxReport struct {
	Input FilingInput `json:"input"`

	TaxYear   int  `json:"tax_year"`
	IsMarried bool `json:"is_married"`
	TaxClass  int  `json:"tax_class"`

	// Constants are the year values the figures below were computed with
	Constants TaxYearConstants `json:"constants"`

	TotalGross   decimal.Decimal `json:"total_gross"`
	TotalTaxPaid decimal.Decimal `json:"total_tax_paid"`

	Deductions Deductions `json:"deductions"`
	Credits    Credits    `json:"credits"`

	TaxableIncome       decimal.Decimal `json:"taxable_income_de"`
	ForeignIncome       decimal.Decimal `json:"foreign_income"`
	GlobalIncomeForRate decimal.Decimal `json:"global_income_for_rate"`
	TaxOnGlobalIncome   decimal.Decimal `json:"tax_on_global"`
	EffectiveTaxRate    decimal.Decimal `json:"effective_tax_rate"`
	FinalTaxLiability   decimal.Decimal `json:"final_tax_liability"`
	SolidaritySurcharge decimal.Decimal `json:"solidarity_surcharge"`
	NetTaxDue           decimal.Decimal `json:"net_german_tax_due"`
	RefundOrPayment     decimal.Decimal `json:"refund_or_payment"`

	Warnings []string `json:"warnings"`
}

// IsRefund reports whether the filer gets money back
func (r *TaxReport) IsRefund() bool {
	return r.RefundOrPayment.IsPositive()
}

// Fields flattens the report into the stable field names used by renderers
// and by callers that expect the flat questionnaire layout.
func (r *TaxReport) Fields() map[string]any {
	d := r.Deductions
	fields := map[string]any{
		"tax_year":   r.TaxYear,
		"is_married": r.IsMarried,
		"tax_class":  r.TaxClass,

		"de_gross_a":     r.Input.PersonA.GrossSalary,
		"de_tax_paid_a":  r.Input.PersonA.TaxPaid,
		"de_gross_b":     r.Input.PersonB.GrossSalary,
		"de_tax_paid_b":  r.Input.PersonB.TaxPaid,
		"total_gross":    r.TotalGross,
		"total_tax_paid": r.TotalTaxPaid,

		"de_pension_a":      r.Input.PersonA.Pension,
		"de_health_a":       r.Input.PersonA.Health,
		"de_nursing_a":      r.Input.PersonA.Nursing,
		"de_unemployment_a": r.Input.PersonA.Unemployment,
		"de_pension_b":      r.Input.PersonB.Pension,
		"de_health_b":       r.Input.PersonB.Health,
		"de_nursing_b":      r.Input.PersonB.Nursing,
		"de_unemployment_b": r.Input.PersonB.Unemployment,

		"ho_a":                d.PersonA.HomeOffice,
		"commute_a":           d.PersonA.Commute,
		"wk_a":                d.PersonA.Werbungskosten,
		"pauschale_a_applied": d.PersonA.PauschaleApplied,
		"bank_fee_a":          d.PersonA.BankFee,
		"internet_a":          d.PersonA.Internet,
		"ho_b":                d.PersonB.HomeOffice,
		"commute_b":           d.PersonB.Commute,
		"wk_b":                d.PersonB.Werbungskosten,
		"pauschale_b_applied": d.PersonB.PauschaleApplied,
		"bank_fee_b":          d.PersonB.BankFee,
		"internet_b":          d.PersonB.Internet,
		"total_wk":            d.TotalWerbungskosten,
		"total_flat_rates":    d.TotalFlatRates,
		"vorsorge_a":          d.VorsorgeA,
		"vorsorge_b":          d.VorsorgeB,
		"total_vorsorge":      d.TotalVorsorge,
		"kita_deduction":      d.KitaDeduction,
		"parents_support":     d.ParentsSupportDeduction,
		"other_deductions":    d.OtherDeductions,
		"total_deductions":    d.TotalDeductions,

		"nebenkosten_credit": r.Credits.NebenkostenCredit,
		"tds_credit":         r.Credits.TDSCredit,
		"total_credits":      r.Credits.TotalCredits,

		"taxable_income_de":      r.TaxableIncome,
		"foreign_income":         r.ForeignIncome,
		"global_income_for_rate": r.GlobalIncomeForRate,
		"tax_on_global":          r.TaxOnGlobalIncome,
		"effective_tax_rate":     r.EffectiveTaxRate,
		"final_tax_liability":    r.FinalTaxLiability,
		"solidarity_surcharge":   r.SolidaritySurcharge,
		"net_german_tax_due":     r.NetTaxDue,
		"refund_or_payment":      r.RefundOrPayment,

		"warnings": append([]string(nil), r.Warnings...),
	}
	return fields
}

// FilingInstruction tells the filer where a value belongs in the German return
type FilingInstruction struct {
	Form  string          `json:"form"`
	Line  string          `json:"line"`
	Value decimal.Decimal `json:"value"`
	Note  string          `json:"note"`
}
