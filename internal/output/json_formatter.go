package output

import (
	"github.com/goccy/go-json"

	"github.com/rpgo/indo-german-tax/internal/domain"
)

// JSONFormatter serializes the tax report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(r *domain.TaxReport) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
