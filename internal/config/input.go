package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/rpgo/indo-german-tax/internal/calculation"
	"github.com/rpgo/indo-german-tax/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is matched by every *ValidationError
var ErrInvalidInput = errors.New("invalid filing input")

// ValidationError lists the fields that failed validation, keyed by their
// YAML path (e.g. "person_a.gross_salary").
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "invalid filing input: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// InputParser handles parsing of filing input files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: newValidator()}
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Amounts are compared as numbers by gte/lte
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// LoadFromFile loads a filing input from a YAML file. Both the nested layout
// (person_a / person_b sections) and the flat questionnaire keys
// (de_gross_a, commute_km_b, ...) are accepted.
func (ip *InputParser) LoadFromFile(filename string) (*domain.FilingInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	input, err := ip.Parse(data)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateInput(input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return input, nil
}

// Parse decodes YAML input without validating it
func (ip *InputParser) Parse(data []byte) (*domain.FilingInput, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if isFlatInput(raw) {
		input := domain.FilingInputFromMap(raw)
		return &input, nil
	}

	var input domain.FilingInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &input, nil
}

// ParseJSON decodes a JSON request body without validating it. Both the
// nested and the flat key layout are accepted, as in Parse.
func (ip *InputParser) ParseJSON(data []byte) (*domain.FilingInput, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if isFlatInput(raw) {
		input := domain.FilingInputFromMap(raw)
		return &input, nil
	}

	var input domain.FilingInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &input, nil
}

func isFlatInput(raw map[string]any) bool {
	if _, ok := raw["person_a"]; ok {
		return false
	}
	if _, ok := raw["person_b"]; ok {
		return false
	}
	for k := range raw {
		if strings.HasPrefix(k, "de_") || strings.HasSuffix(k, "_a") || strings.HasSuffix(k, "_b") {
			return true
		}
	}
	return false
}

// ValidateInput rejects negative amounts and out-of-range selectors. The tax
// year itself is checked by the engine.
func (ip *InputParser) ValidateInput(input *domain.FilingInput) error {
	if input == nil {
		return &ValidationError{Fields: map[string]string{"input": "is required"}}
	}
	err := ip.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields[fieldPath(fe.Namespace())] = describe(fe)
	}
	return ve
}

// fieldPath drops the root struct name from a validator namespace
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

// LoadYearTable reads a constants override file and builds an immutable year table from it
func LoadYearTable(filename string) (*calculation.YearTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read constants file %s: %w", filename, err)
	}

	var cfg domain.RegulatoryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse constants file: %w", err)
	}

	table, err := calculation.NewYearTable(cfg.Years)
	if err != nil {
		return nil, fmt.Errorf("invalid constants file %s: %w", filename, err)
	}
	return table, nil
}

// SaveInput writes a filing input as YAML
func SaveInput(input *domain.FilingInput, filename string) error {
	data, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to encode input: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleInput creates an example filing input: a married couple with
// one child and Indian rental and interest income.
func (ip *InputParser) CreateExampleInput() *domain.FilingInput {
	return &domain.FilingInput{
		TaxYear:           2025,
		IsMarried:         true,
		TaxClassIndex:     1,
		NumChildren:       1,
		KitaCosts:         decimal.NewFromInt(2400),
		NebenkostenLabor:  decimal.NewFromInt(350),
		IndianRentINR:     decimal.NewFromInt(240000),
		IndianInterestINR: decimal.NewFromInt(60000),
		IndianTDSINR:      decimal.NewFromInt(6000),
		PersonA: domain.PersonInput{
			GrossSalary:    decimal.NewFromInt(72000),
			TaxPaid:        decimal.NewFromInt(13450),
			Pension:        decimal.NewFromInt(6696),
			Unemployment:   decimal.NewFromInt(936),
			Health:         decimal.NewFromFloat(5655.83),
			Nursing:        decimal.NewFromFloat(1124.55),
			HomeOfficeDays: 120,
			CommuteKm:      decimal.NewFromInt(18),
			OfficeDays:     100,
			BankFee:        true,
			InternetPhone:  decimal.NewFromInt(240),
		},
		PersonB: domain.PersonInput{
			GrossSalary:    decimal.NewFromInt(38000),
			TaxPaid:        decimal.NewFromInt(4100),
			Pension:        decimal.NewFromInt(3534),
			Unemployment:   decimal.NewFromInt(494),
			Health:         decimal.NewFromInt(3249),
			Nursing:        decimal.NewFromInt(646),
			HomeOfficeDays: 60,
		},
	}
}
