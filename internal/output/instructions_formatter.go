package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	calc "github.com/rpgo/indo-german-tax/internal/calculation"
	"github.com/rpgo/indo-german-tax/internal/domain"
)

// InstructionsFormatter prints the filing roadmap: which form and line each value goes to.
type InstructionsFormatter struct{}

func (i InstructionsFormatter) Name() string { return "instructions" }

func (i InstructionsFormatter) Format(r *domain.TaxReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("no report data to format")
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "TAX FILING ROADMAP %d\n", r.TaxYear)
	fmt.Fprintln(&buf, "================================")
	items := calc.FilingInstructions(r)
	if len(items) == 0 {
		fmt.Fprintln(&buf, "Nothing to enter.")
		return buf.Bytes(), nil
	}
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORM\tLINE\tVALUE\tNOTE")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.Form, it.Line, FormatFormValue(it.Value), it.Note)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, Disclaimer)
	return buf.Bytes(), nil
}
