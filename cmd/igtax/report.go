package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/indo-german-tax/internal/output"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		inputFile string
		format    string
		estimate  bool
		write     bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the tax report for a filing input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}
			filing := *input
			if estimate {
				if filing, err = a.engine.FillEstimatedContributions(filing); err != nil {
					return err
				}
			}

			report, err := a.engine.GenerateFullReport(filing)
			if err != nil {
				return err
			}

			if format == "" {
				format = a.settings.OutputFormat
			}
			if write {
				written, err := output.GenerateReport(report, format, a.settings.OutputDir)
				if err != nil {
					return err
				}
				for _, name := range written {
					a.logger.Info("report written", zap.String("op", "report"), zap.String("file", name))
					fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", name)
				}
				return nil
			}

			data, err := output.RenderReport(report, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "filing input YAML file")
	cmd.Flags().StringVar(&format, "format", "", "report format, overrides --output-format")
	cmd.Flags().BoolVar(&estimate, "estimate-contributions", false, "estimate missing social security contributions from gross salary")
	cmd.Flags().BoolVar(&write, "write", false, "write the report into --output-dir instead of stdout")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
