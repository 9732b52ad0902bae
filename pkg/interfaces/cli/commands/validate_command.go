package commands

import (
	"fmt"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/services"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "load the dataset and check cross-table references",
	Long: `Load the seven input tables and report every reference gap the report
joins would silently drop or duplicate: plants without port mappings,
carrier lanes with no freight rates, orders outside every weight band or
inside several, plants missing capacity or cost rows.

A malformed file fails the load. Reference gaps are findings, not errors;
the command prints them and exits zero.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		tables, err := loadTables(cfg)
		if err != nil {
			return err
		}

		result, err := services.NewReferenceValidator().ValidateReferences(tables)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Clean() {
			fmt.Fprintln(out, "dataset clean: every order resolves against the reference tables")
			return nil
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		fmt.Fprintf(out, "%s\n", english.Plural(len(result.Warnings), "finding", ""))
		return nil
	},
}
