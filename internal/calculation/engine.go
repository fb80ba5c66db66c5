package calculation

import (
	"fmt"
	"sort"

	"github.com/rpgo/indo-german-tax/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates the full estimation for a household
type CalculationEngine struct {
	Table          *YearTable
	IncomeTax      *IncomeTaxCalculator
	SocialSecurity *SocialSecurityEstimator
	Soli           *SoliCalculator
	Deductions     *DeductionsCalculator
	Debug          bool // Dump raw input and the compiled report through Logger.Debugf
	Logger         Logger
}

// NewCalculationEngine creates a new calculation engine using the built-in year table
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithTable(DefaultYearTable())
}

// NewCalculationEngineWithTable creates a calculation engine backed by a custom
// year table, e.g. one loaded from a constants file.
func NewCalculationEngineWithTable(table *YearTable) *CalculationEngine {
	if table == nil {
		table = DefaultYearTable()
	}
	return &CalculationEngine{
		Table:          table,
		IncomeTax:      NewIncomeTaxCalculator(table),
		SocialSecurity: NewSocialSecurityEstimator(table),
		Soli:           NewSoliCalculator(table),
		Deductions:     NewDeductionsCalculator(),
		Logger:         NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ResolveYear maps a zero year to the latest configured year.
func (ce *CalculationEngine) ResolveYear(year int) int {
	if year == 0 {
		return ce.Table.LatestYear()
	}
	return year
}

// ResolveTaxClass returns the German tax class: 3, 4 or 5 for married filers
// depending on the selector, 1 for single filers.
func ResolveTaxClass(isMarried bool, selectorIndex int) int {
	if isMarried {
		return selectorIndex + 3
	}
	return 1
}

// GenerateFullReport runs the complete estimation pipeline. The only error is
// an unsupported tax year.
func (ce *CalculationEngine) GenerateFullReport(input domain.FilingInput) (*domain.TaxReport, error) {
	year := ce.ResolveYear(input.TaxYear)
	constants, err := ce.Table.Lookup(year)
	if err != nil {
		return nil, err
	}
	ce.dumpFields("REPORT GENERATOR: RAW INPUT DATA", input.Fields())

	report := &domain.TaxReport{
		Input:        input,
		TaxYear:      year,
		IsMarried:    input.IsMarried,
		TaxClass:     ResolveTaxClass(input.IsMarried, input.TaxClassIndex),
		Constants:    constants,
		TotalGross:   input.TotalGross(),
		TotalTaxPaid: input.TotalTaxPaid(),
	}
	ce.Logger.Debugf("marital status: %t | tax class: %d", report.IsMarried, report.TaxClass)

	// Foreign income only raises the rate
	report.ForeignIncome = ConvertINRToEUR(input.IndianRentINR).Add(ConvertINRToEUR(input.IndianInterestINR))

	report.Deductions = ce.Deductions.CalculateDeductions(input)
	report.Credits = ce.Deductions.CalculateCredits(input)

	report.TaxableIncome = decimal.Max(decimal.Zero, report.TotalGross.Sub(report.Deductions.TotalDeductions))
	report.GlobalIncomeForRate = report.TaxableIncome.Add(report.ForeignIncome)

	taxOnGlobal, err := ce.IncomeTax.CalculateTax(report.GlobalIncomeForRate, year, input.IsMarried)
	if err != nil {
		return nil, fmt.Errorf("tax on global income: %w", err)
	}
	report.TaxOnGlobalIncome = taxOnGlobal

	if report.GlobalIncomeForRate.IsPositive() {
		report.EffectiveTaxRate = taxOnGlobal.DivRound(report.GlobalIncomeForRate, 16)
	}
	report.FinalTaxLiability = report.TaxableIncome.Mul(report.EffectiveTaxRate)
	report.SolidaritySurcharge = ce.Soli.CalculateSoli(report.FinalTaxLiability, year, input.IsMarried)

	report.NetTaxDue = decimal.Max(decimal.Zero, report.FinalTaxLiability.Sub(report.Credits.TotalCredits))
	report.RefundOrPayment = report.TotalTaxPaid.Sub(report.NetTaxDue)

	report.Warnings = RunValidationChecks(input, report)
	for _, w := range report.Warnings {
		ce.Logger.Warnf("%s", w)
	}

	ce.dumpFields("FINAL COMPILED REPORT", report.Fields())
	return report, nil
}

// FillEstimatedContributions returns a copy of input in which every person
// with income but no contributions entered gets the estimator's values.
func (ce *CalculationEngine) FillEstimatedContributions(input domain.FilingInput) (domain.FilingInput, error) {
	year := ce.ResolveYear(input.TaxYear)
	for _, p := range []*domain.PersonInput{&input.PersonA, &input.PersonB} {
		if !p.GrossSalary.IsPositive() || !p.SocialSecurityTotal().IsZero() {
			continue
		}
		c, err := ce.SocialSecurity.Estimate(p.GrossSalary, year, input.NumChildren)
		if err != nil {
			return input, err
		}
		p.SetContributions(c)
		ce.Logger.Infof("estimated social security contributions of %s for gross salary %s", c.Total().StringFixed(2), p.GrossSalary.StringFixed(2))
	}
	return input, nil
}

func (ce *CalculationEngine) dumpFields(title string, fields map[string]any) {
	if !ce.Debug {
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ce.Logger.Debugf("--- %s ---", title)
	for _, k := range keys {
		switch v := fields[k].(type) {
		case decimal.Decimal:
			ce.Logger.Debugf("  - %s: %s", k, v.StringFixed(2))
		default:
			ce.Logger.Debugf("  - %s: %v", k, v)
		}
	}
}
