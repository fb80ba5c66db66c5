package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/indo-german-tax/internal/config"
)

func newExampleCmd(a *app) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example filing input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveInput(a.parser.CreateExampleInput(), outputFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example input written to %s\n", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "example_input.yaml", "file to write")
	return cmd
}
