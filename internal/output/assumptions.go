package output

import (
	"fmt"

	calc "github.com/rpgo/indo-german-tax/internal/calculation"
	"github.com/rpgo/indo-german-tax/internal/domain"
)

// DefaultAssumptions lists the estimation assumptions that hold for every tax year.
var DefaultAssumptions = []string{
	fmt.Sprintf("Indian income converted at a fixed %s EUR per INR", calc.INRToEURRate.String()),
	"Indian rent and interest only raise the rate (Progressionsvorbehalt), they are not taxed in Germany",
	fmt.Sprintf("Werbungskosten below the %s€ Pauschale are replaced by the Pauschale", calc.WerbungskostenPauschale.String()),
	"Solidarity surcharge is shown for information and not added to the tax due",
	"Church tax is not estimated",
}

// GenerateAssumptions creates the assumptions list for the constants of one tax year
func GenerateAssumptions(year int, c domain.TaxYearConstants) []string {
	return append([]string{
		fmt.Sprintf("Basic allowance (Grundfreibetrag) %d: %s per person", year, FormatCurrency(c.BasicAllowance)),
		fmt.Sprintf("Pension insurance contribution cap %d: %s", year, FormatCurrency(c.PensionCap)),
		fmt.Sprintf("Health insurance contribution cap %d: %s", year, FormatCurrency(c.HealthCap)),
		fmt.Sprintf("Average additional health insurance rate %d: %s", year, FormatPercentage(c.AdditionalHealthInsuranceRate)),
	}, DefaultAssumptions...)
}

// assumptionsFor uses the constants the report was computed with and falls
// back to the year independent list when none were recorded.
func assumptionsFor(r *domain.TaxReport) []string {
	if !r.Constants.BasicAllowance.IsPositive() {
		return DefaultAssumptions
	}
	return GenerateAssumptions(r.TaxYear, r.Constants)
}
