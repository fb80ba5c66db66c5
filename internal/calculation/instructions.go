package calculation

import (
	"github.com/rpgo/indo-german-tax/internal/domain"
)

// FilingInstructions maps the report onto the forms of the German return
// (ELSTER). Only instructions with a non-zero value are produced.
func FilingInstructions(report *domain.TaxReport) []domain.FilingInstruction {
	if report == nil {
		return nil
	}
	in := report.Input
	var out []domain.FilingInstruction

	persons := []struct {
		label string
		input domain.PersonInput
		wk    domain.DeductionResult
	}{
		{"Person A", in.PersonA, report.Deductions.PersonA},
		{"Person B", in.PersonB, report.Deductions.PersonB},
	}
	if !report.IsMarried {
		// Person B is only assessed jointly
		persons = persons[:1]
	}
	for _, p := range persons {
		if !p.input.GrossSalary.IsPositive() {
			continue
		}
		out = append(out, domain.FilingInstruction{
			Form:  "Anlage N",
			Line:  "3 (Bruttoarbeitslohn)",
			Value: p.input.GrossSalary,
			Note:  p.label + ": gross wage from the Lohnsteuerbescheinigung",
		})
		if p.wk.Werbungskosten.GreaterThan(WerbungskostenPauschale) {
			out = append(out, domain.FilingInstruction{
				Form:  "Anlage N",
				Line:  "31-87 (Werbungskosten)",
				Value: p.wk.Werbungskosten,
				Note:  p.label + ": itemized Werbungskosten (home office, commute, bank fee, internet)",
			})
		}
	}

	if in.IndianInterestINR.IsPositive() {
		eur := ConvertINRToEUR(in.IndianInterestINR)
		out = append(out,
			domain.FilingInstruction{
				Form:  "Anlage KAP",
				Line:  "19 (Ausländische Kapitalerträge)",
				Value: eur,
				Note:  "Indian interest: foreign capital income not subject to German withholding",
			},
			domain.FilingInstruction{
				Form:  "Anlage AUS",
				Line:  "Table 1",
				Value: eur,
				Note:  "Indian interest: country India, income type capital",
			})
	}
	if in.IndianRentINR.IsPositive() {
		out = append(out, domain.FilingInstruction{
			Form:  "Anlage V / Anlage AUS",
			Line:  "Foreign income (Progressionsvorbehalt)",
			Value: ConvertINRToEUR(in.IndianRentINR),
			Note:  "Indian rent: exempt under the treaty, declared for the progression clause only",
		})
	}
	if report.Credits.TDSCredit.IsPositive() {
		out = append(out, domain.FilingInstruction{
			Form:  "Anlage AUS",
			Line:  "Foreign tax",
			Value: report.Credits.TDSCredit,
			Note:  "Tax withheld in India (TDS), creditable foreign tax",
		})
	}
	if in.ParentsSupport.IsPositive() {
		out = append(out, domain.FilingInstruction{
			Form:  "Anlage Unterhalt",
			Line:  "Support payments",
			Value: in.ParentsSupport,
			Note:  "Support paid to parents; one Anlage per supported household",
		})
	}
	if in.NebenkostenLabor.IsPositive() {
		out = append(out, domain.FilingInstruction{
			Form:  "Hauptvordruck",
			Line:  "§35a",
			Value: in.NebenkostenLabor,
			Note:  "Labour share of household services from the Nebenkostenabrechnung",
		})
	}
	return out
}
