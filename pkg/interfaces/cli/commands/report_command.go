package commands

import (
	"github.com/spf13/cobra"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/services/reporting"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/services"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/logging"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/interfaces/cli/output"
)

var reportFlags struct {
	format     string
	outDir     string
	sequential bool
	noColor    bool
}

var reportCmd = &cobra.Command{
	Use:   "report [report-id ...]",
	Short: "load the dataset and run reports",
	Long: `Load the seven input tables, check cross-table references, run the
requested reports (all ten when none are named) and render the results.

Report IDs come from "logistics list". Reports always execute against the
same immutable snapshot, so any selection and any execution order produce
identical rows.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		if reportFlags.format != "" {
			cfg.Output.Format = reportFlags.format
		}
		if reportFlags.outDir != "" {
			cfg.Output.Dir = reportFlags.outDir
		}
		if cmd.Flags().Changed("sequential") {
			cfg.Run.Sequential = reportFlags.sequential
		}
		if cmd.Flags().Changed("no-color") {
			cfg.Output.NoColor = reportFlags.noColor
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		tables, err := loadTables(cfg)
		if err != nil {
			return err
		}

		// Reference gaps are warnings: the joins drop those orders
		// silently, and the run proceeds.
		result, err := services.NewReferenceValidator().ValidateReferences(tables)
		if err != nil {
			return err
		}
		for _, w := range result.Warnings {
			logging.Warn(w)
		}

		runner := reporting.NewRunner()
		runner.Sequential = cfg.Run.Sequential
		set, err := runner.Run(cmd.Context(), tables, args...)
		if err != nil {
			return err
		}

		return output.Generate(set, output.Config{
			Format:  cfg.Output.Format,
			OutDir:  cfg.Output.Dir,
			NoColor: cfg.Output.NoColor,
			Writer:  cmd.OutOrStdout(),
		})
	},
}

func init() {
	f := reportCmd.Flags()
	f.Var(newEnumValue(&reportFlags.format, "pretty", "csv", "json", "html"), "format", "output format: pretty, csv, json, html")
	f.StringVar(&reportFlags.outDir, "out", "", "export directory (stdout when empty)")
	f.BoolVar(&reportFlags.sequential, "sequential", false, "run reports one at a time")
	f.BoolVar(&reportFlags.noColor, "no-color", false, "disable colors in pretty output")
}
