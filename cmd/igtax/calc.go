package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/indo-german-tax/internal/output"
)

func parseAmount(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("--%s must not be negative", name)
	}
	return d, nil
}

func newSocialSecurityCmd(a *app) *cobra.Command {
	var (
		gross    string
		year     int
		children int
	)
	cmd := &cobra.Command{
		Use:   "social-security",
		Short: "Estimate the employee social security contributions for a gross salary",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseAmount("gross", gross)
			if err != nil {
				return err
			}
			y := a.engine.ResolveYear(year)
			c, err := a.engine.SocialSecurity.Estimate(g, y, children)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "Year\t%d\t\n", y)
			fmt.Fprintf(tw, "Pension\t%s\t\n", output.FormatCurrency(c.Pension))
			fmt.Fprintf(tw, "Unemployment\t%s\t\n", output.FormatCurrency(c.Unemployment))
			fmt.Fprintf(tw, "Health\t%s\t\n", output.FormatCurrency(c.Health))
			fmt.Fprintf(tw, "Nursing\t%s\t\n", output.FormatCurrency(c.Nursing))
			fmt.Fprintf(tw, "Total\t%s\t\n", output.FormatCurrency(c.Total()))
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&gross, "gross", "0", "annual gross salary in EUR")
	cmd.Flags().IntVar(&year, "year", 0, "tax year (0 for the latest)")
	cmd.Flags().IntVar(&children, "children", 0, "number of children")
	return cmd
}

func newTaxCmd(a *app) *cobra.Command {
	var (
		income  string
		year    int
		married bool
	)
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Apply the income tax tariff to a taxable income",
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseAmount("income", income)
			if err != nil {
				return err
			}
			y := a.engine.ResolveYear(year)
			tax, err := a.engine.IncomeTax.CalculateTax(x, y, married)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Income tax %d on %s: %s\n", y, output.FormatCurrency(x), output.FormatCurrency(tax))
			return nil
		},
	}
	cmd.Flags().StringVar(&income, "income", "0", "taxable income (zvE) in EUR")
	cmd.Flags().IntVar(&year, "year", 0, "tax year (0 for the latest)")
	cmd.Flags().BoolVar(&married, "married", false, "joint assessment (splitting)")
	return cmd
}

func newSoliCmd(a *app) *cobra.Command {
	var (
		liability string
		year      int
		married   bool
	)
	cmd := &cobra.Command{
		Use:   "soli",
		Short: "Compute the solidarity surcharge on an income tax liability",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseAmount("liability", liability)
			if err != nil {
				return err
			}
			y := a.engine.ResolveYear(year)
			soli := a.engine.Soli.CalculateSoli(l, y, married)
			fmt.Fprintf(cmd.OutOrStdout(), "Solidarity surcharge %d on %s (threshold %s): %s\n",
				y, output.FormatCurrency(l), output.FormatCurrency(a.engine.Soli.Threshold(y, married)), output.FormatCurrency(soli))
			return nil
		},
	}
	cmd.Flags().StringVar(&liability, "liability", "0", "income tax liability in EUR")
	cmd.Flags().IntVar(&year, "year", 0, "tax year (0 for the latest)")
	cmd.Flags().BoolVar(&married, "married", false, "married couple (doubled threshold)")
	return cmd
}
