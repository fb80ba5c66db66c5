package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/indo-german-tax/internal/calculation"
	"github.com/rpgo/indo-german-tax/internal/config"
	"github.com/rpgo/indo-german-tax/internal/domain"
	"github.com/rpgo/indo-german-tax/internal/output"
)

func loadReport(t *testing.T, path string) *domain.TaxReport {
	t.Helper()
	input, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	report, err := calculation.NewCalculationEngine().GenerateFullReport(*input)
	require.NoError(t, err)
	return report
}

func TestOutputGeneration(t *testing.T) {
	report := loadReport(t, "../testdata/flat_input.yaml")
	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			data, err := output.RenderReport(report, name)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestGenerateReportWritesFiles(t *testing.T) {
	report := loadReport(t, "../testdata/example_input.yaml")
	dir := t.TempDir()

	written, err := output.GenerateReport(report, "all", dir)
	require.NoError(t, err)
	require.Len(t, written, 3)

	for _, name := range written {
		fi, err := os.Stat(name)
		require.NoError(t, err)
		assert.Positive(t, fi.Size())
		assert.True(t, strings.HasPrefix(filepath.Base(name), "German_Tax_Report_"))
	}

	text, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Contains(t, string(text), "ESTIMATED ADDITIONAL PAYMENT: 653.11€")
}

func TestSaveInputRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile("../testdata/flat_input.yaml")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "nested.yaml")
	require.NoError(t, config.SaveInput(input, out))

	reloaded, err := parser.LoadFromFile(out)
	require.NoError(t, err)
	assert.True(t, input.PersonB.GrossSalary.Equal(reloaded.PersonB.GrossSalary))
	assert.True(t, input.KitaCosts.Equal(reloaded.KitaCosts))
	assert.Equal(t, input.PersonA.BankFee, reloaded.PersonA.BankFee)
	assert.Equal(t, input.NumChildren, reloaded.NumChildren)
}
