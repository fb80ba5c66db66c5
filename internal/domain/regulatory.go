package domain

import (
	"github.com/shopspring/decimal"
)

// TaxYearConstants contains the year-indexed values used by the estimator.
// Bracket thresholds of the tariff are not part of it; they are fixed.
type TaxYearConstants struct {
	BasicAllowance                decimal.Decimal `yaml:"basic_allowance" json:"basic_allowance"`
	ChildAllowance                decimal.Decimal `yaml:"child_allowance" json:"child_allowance"`
	PensionCap                    decimal.Decimal `yaml:"pension_cap" json:"pension_cap"`
	HealthCap                     decimal.Decimal `yaml:"health_cap" json:"health_cap"`
	AdditionalHealthInsuranceRate decimal.Decimal `yaml:"additional_health_insurance_rate" json:"additional_health_insurance_rate"`
	SoliThreshold                 decimal.Decimal `yaml:"soli_threshold" json:"soli_threshold"`
}

// RegulatoryConfig is the on-disk form of a constants override file
type RegulatoryConfig struct {
	Metadata RegulatoryMetadata       `yaml:"metadata" json:"metadata"`
	Years    map[int]TaxYearConstants `yaml:"years" json:"years"`
}

// RegulatoryMetadata describes where the constants came from
type RegulatoryMetadata struct {
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}
