package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/indo-german-tax/internal/calculation"
	"github.com/rpgo/indo-german-tax/internal/config"
)

// app carries the state resolved once in the root pre-run
type app struct {
	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.CalculationEngine
	parser   *config.InputParser
}

func newRootCmd() *cobra.Command {
	a := &app{parser: config.NewInputParser()}
	defaults := config.DefaultSettings()

	var settingsFile string
	root := &cobra.Command{
		Use:           "igtax",
		Short:         "Estimate German income tax for households with Indian income",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, settingsFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&settingsFile, "settings", "", "path to a YAML settings file")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", defaults.LogFormat, "log format (console, json)")
	flags.String("output-format", defaults.OutputFormat, "report format (text, console, json, csv, html, instructions)")
	flags.String("output-dir", defaults.OutputDir, "directory for written reports")
	flags.String("constants", "", "YAML file overriding the tax year constants")
	flags.Bool("debug", false, "dump raw input and the compiled report")

	root.AddCommand(
		newReportCmd(a),
		newSocialSecurityCmd(a),
		newTaxCmd(a),
		newSoliCmd(a),
		newExampleCmd(a),
		newServeCmd(a),
	)
	return root
}

// flagKeys maps persistent flags onto settings keys
var flagKeys = map[string]string{
	"log-level":     "log_level",
	"log-format":    "log_format",
	"output-format": "output_format",
	"output-dir":    "output_dir",
	"constants":     "constants_file",
	"debug":         "debug",
}

func (a *app) setup(cmd *cobra.Command, settingsFile string) error {
	v, err := config.NewViper(settingsFile)
	if err != nil {
		return err
	}
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	a.settings, err = config.LoadSettings(v)
	if err != nil {
		return err
	}

	if a.settings.Debug {
		a.settings.LogLevel = "debug"
	}
	a.logger, err = initializeLogger(a.settings.LogLevel, a.settings.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	table := calculation.DefaultYearTable()
	if a.settings.ConstantsFile != "" {
		table, err = config.LoadYearTable(a.settings.ConstantsFile)
		if err != nil {
			return err
		}
		a.logger.Info("loaded tax year constants",
			zap.String("op", "setup"),
			zap.String("file", a.settings.ConstantsFile),
			zap.Ints("years", table.Years()),
		)
	}
	a.engine = calculation.NewCalculationEngineWithTable(table)
	a.engine.SetLogger(a.logger.Sugar())
	a.engine.Debug = a.settings.Debug
	return nil
}
