package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/indo-german-tax/internal/domain"
)

// RenderReport formats the report without writing it anywhere.
func RenderReport(report *domain.TaxReport, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(report)
}

// GenerateReport writes the report in the given format into dir and returns
// the file name. "all" writes the text, json and instructions variants.
func GenerateReport(report *domain.TaxReport, format, dir string) ([]string, error) {
	if f := GetFormatterByName(format); f != nil {
		name, err := WriteFormatted(f, report, dir, Extension(f.Name()))
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	}
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var written []string
		for _, f := range []Formatter{TextFormatter{}, JSONFormatter{}, InstructionsFormatter{}} {
			// Same-second timestamps would collide, so each variant gets its own suffix
			name, err := WriteFormatted(f, report, dir, f.Name()+"."+Extension(f.Name()))
			if err != nil {
				return written, err
			}
			written = append(written, name)
		}
		return written, nil
	}
	return nil, unsupported(format)
}

// unsupported enriches the error with available formatters and aliases
func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
