package domain

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// PersonInput holds the per-filer values taken from the Lohnsteuerbescheinigung
// and the work-expense questionnaire.
type PersonInput struct {
	GrossSalary    decimal.Decimal `yaml:"gross_salary" json:"gross_salary" validate:"gte=0"`
	TaxPaid        decimal.Decimal `yaml:"tax_paid" json:"tax_paid" validate:"gte=0"`
	Pension        decimal.Decimal `yaml:"pension" json:"pension" validate:"gte=0"`
	Unemployment   decimal.Decimal `yaml:"unemployment" json:"unemployment" validate:"gte=0"`
	Health         decimal.Decimal `yaml:"health" json:"health" validate:"gte=0"`
	Nursing        decimal.Decimal `yaml:"nursing" json:"nursing" validate:"gte=0"`
	HomeOfficeDays int             `yaml:"home_office_days" json:"home_office_days" validate:"gte=0,lte=366"`
	CommuteKm      decimal.Decimal `yaml:"commute_km" json:"commute_km" validate:"gte=0"`
	OfficeDays     int             `yaml:"office_days" json:"office_days" validate:"gte=0,lte=366"`
	BankFee        bool            `yaml:"bank_fee" json:"bank_fee"`
	InternetPhone  decimal.Decimal `yaml:"internet_phone" json:"internet_phone" validate:"gte=0"`
}

// SocialSecurityTotal sums the four employee-side contributions.
func (p PersonInput) SocialSecurityTotal() decimal.Decimal {
	return p.Contributions().Total()
}

// Contributions returns the contributions entered for the person.
func (p PersonInput) Contributions() SocialSecurityContribution {
	return SocialSecurityContribution{
		Pension:      p.Pension,
		Unemployment: p.Unemployment,
		Health:       p.Health,
		Nursing:      p.Nursing,
	}
}

// SetContributions overwrites all four contribution fields.
func (p *PersonInput) SetContributions(c SocialSecurityContribution) {
	p.Pension = c.Pension
	p.Unemployment = c.Unemployment
	p.Health = c.Health
	p.Nursing = c.Nursing
}

// FilingInput is the complete household input for one tax year.
// Every numeric field defaults to zero and every flag to false.
type FilingInput struct {
	TaxYear           int             `yaml:"tax_year" json:"tax_year" validate:"gte=0"`
	IsMarried         bool            `yaml:"is_married" json:"is_married"`
	TaxClassIndex     int             `yaml:"tax_class" json:"tax_class" validate:"gte=0,lte=2"`
	NumChildren       int             `yaml:"num_kids" json:"num_kids" validate:"gte=0,lte=20"`
	ParentsSupport    decimal.Decimal `yaml:"parents_support" json:"parents_support" validate:"gte=0"`
	KitaCosts         decimal.Decimal `yaml:"kita_costs" json:"kita_costs" validate:"gte=0"`
	NebenkostenLabor  decimal.Decimal `yaml:"nk_labor" json:"nk_labor" validate:"gte=0"`
	IndianRentINR     decimal.Decimal `yaml:"in_rent" json:"in_rent" validate:"gte=0"`
	IndianInterestINR decimal.Decimal `yaml:"in_interest" json:"in_interest" validate:"gte=0"`
	IndianTDSINR      decimal.Decimal `yaml:"in_tds_inr" json:"in_tds_inr" validate:"gte=0"`

	PersonA PersonInput `yaml:"person_a" json:"person_a"`
	PersonB PersonInput `yaml:"person_b" json:"person_b"`
}

// TotalGross returns the combined German gross salary of both persons.
func (in FilingInput) TotalGross() decimal.Decimal {
	return in.PersonA.GrossSalary.Add(in.PersonB.GrossSalary)
}

// TotalTaxPaid returns the combined wage tax already withheld.
func (in FilingInput) TotalTaxPaid() decimal.Decimal {
	return in.PersonA.TaxPaid.Add(in.PersonB.TaxPaid)
}

// personFieldSuffixes maps the flat suffix to the person it addresses.
var personFieldSuffixes = []string{"a", "b"}

func (in *FilingInput) person(suffix string) *PersonInput {
	if suffix == "b" {
		return &in.PersonB
	}
	return &in.PersonA
}

// FilingInputFromMap builds a FilingInput from the flat field names used by the
// questionnaire (de_gross_a, commute_km_b, in_tds_inr, ...). Absent keys keep
// their zero value; values are coerced loosely, so "60000", 60000 and 60000.0
// are all accepted.
func FilingInputFromMap(data map[string]any) FilingInput {
	var in FilingInput
	in.TaxYear = cast.ToInt(data["tax_year"])
	in.IsMarried = cast.ToBool(data["is_married"])
	in.TaxClassIndex = cast.ToInt(data["tax_class"])
	in.NumChildren = cast.ToInt(toFloat(data["num_kids"]))
	in.ParentsSupport = toDecimal(data["parents_support"])
	in.KitaCosts = toDecimal(data["kita_costs"])
	in.NebenkostenLabor = toDecimal(data["nk_labor"])
	in.IndianRentINR = toDecimal(data["in_rent"])
	in.IndianInterestINR = toDecimal(data["in_interest"])
	in.IndianTDSINR = toDecimal(data["in_tds_inr"])

	for _, s := range personFieldSuffixes {
		p := in.person(s)
		p.GrossSalary = toDecimal(data["de_gross_"+s])
		p.TaxPaid = toDecimal(data["de_tax_paid_"+s])
		p.Pension = toDecimal(data["de_pension_"+s])
		p.Unemployment = toDecimal(data["de_unemployment_"+s])
		p.Health = toDecimal(data["de_health_"+s])
		p.Nursing = toDecimal(data["de_nursing_"+s])
		p.HomeOfficeDays = cast.ToInt(toFloat(data["ho_days_"+s]))
		p.CommuteKm = toDecimal(data["commute_km_"+s])
		p.OfficeDays = cast.ToInt(toFloat(data["office_days_"+s]))
		p.BankFee = cast.ToBool(data["bank_fee_"+s])
		p.InternetPhone = toDecimal(data["internet_"+s])
	}
	return in
}

// Fields returns the input under its flat field names.
func (in FilingInput) Fields() map[string]any {
	fields := map[string]any{
		"tax_year":        in.TaxYear,
		"is_married":      in.IsMarried,
		"tax_class":       in.TaxClassIndex,
		"num_kids":        in.NumChildren,
		"parents_support": in.ParentsSupport,
		"kita_costs":      in.KitaCosts,
		"nk_labor":        in.NebenkostenLabor,
		"in_rent":         in.IndianRentINR,
		"in_interest":     in.IndianInterestINR,
		"in_tds_inr":      in.IndianTDSINR,
	}
	for _, s := range personFieldSuffixes {
		p := in.person(s)
		fields["de_gross_"+s] = p.GrossSalary
		fields["de_tax_paid_"+s] = p.TaxPaid
		fields["de_pension_"+s] = p.Pension
		fields["de_unemployment_"+s] = p.Unemployment
		fields["de_health_"+s] = p.Health
		fields["de_nursing_"+s] = p.Nursing
		fields["ho_days_"+s] = p.HomeOfficeDays
		fields["commute_km_"+s] = p.CommuteKm
		fields["office_days_"+s] = p.OfficeDays
		fields["bank_fee_"+s] = p.BankFee
		fields["internet_"+s] = p.InternetPhone
	}
	return fields
}

func toFloat(v any) float64 {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return cast.ToFloat64(v)
}

func toDecimal(v any) decimal.Decimal {
	switch t := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return t
	case string:
		if d, err := decimal.NewFromString(t); err == nil {
			return d
		}
		return decimal.Zero
	case int:
		return decimal.NewFromInt(int64(t))
	case int64:
		return decimal.NewFromInt(t)
	}
	return decimal.NewFromFloat(cast.ToFloat64(v))
}
