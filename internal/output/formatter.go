package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/indo-german-tax/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown report format names.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.TaxReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.TaxReport) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.TaxReport) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                             { return ff.ID }

// WriteFormatted runs a formatter and writes output to a timestamped file with
// extension inside dir. The directory is created when missing.
func WriteFormatted(f Formatter, report *domain.TaxReport, dir, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("German_Tax_Report_%s.%s", time.Now().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	TextFormatter{},
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	InstructionsFormatter{},
}

// extensions maps canonical formatter names to file extensions.
var extensions = map[string]string{
	"text":         "txt",
	"console":      "txt",
	"json":         "json",
	"csv":          "csv",
	"html":         "html",
	"instructions": "txt",
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	// try normalized name
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"txt":         "text",
	"report":      "text",
	"pretty":      "console",
	"summary":     "console",
	"json-pretty": "json",
	"html-report": "html",
	"roadmap":     "instructions",
	"forms":       "instructions",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// Extension returns the file extension for a format name or alias.
func Extension(name string) string {
	if ext, ok := extensions[NormalizeFormatName(name)]; ok {
		return ext
	}
	return "txt"
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
