package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	calc "github.com/rpgo/indo-german-tax/internal/calculation"
	"github.com/rpgo/indo-german-tax/internal/domain"
)

// HTMLFormatter produces the HTML filing roadmap with the itemized breakdown table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"neg": func(d decimal.Decimal) string {
		return "-" + FormatCurrency(d)
	},
	"balance": FormatBalance,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(r *domain.TaxReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("no report data to format")
	}
	var buf bytes.Buffer
	data := struct {
		*domain.TaxReport
		Refund       bool
		RefundLabel  string
		Disclaimer   string
		Assumptions  []string
		Instructions []domain.FilingInstruction
	}{
		TaxReport:    r,
		Refund:       r.IsRefund(),
		RefundLabel:  RefundLabel(r.RefundOrPayment),
		Disclaimer:   Disclaimer,
		Assumptions:  assumptionsFor(r),
		Instructions: calc.FilingInstructions(r),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
