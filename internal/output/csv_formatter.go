package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rpgo/indo-german-tax/internal/domain"
)

// CSVFormatter writes the flattened report as field,value rows in key order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *domain.TaxReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("no report data to format")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"field", "value"}); err != nil {
		return nil, err
	}
	fields := r.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.Write([]string{k, csvValue(fields[k])}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvValue(v any) string {
	switch t := v.(type) {
	case decimal.Decimal:
		return t.StringFixed(2)
	case []string:
		return strings.Join(t, "; ")
	default:
		return fmt.Sprint(t)
	}
}
