package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/services/reporting"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the report catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"ID", "Title", "Description"})
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		for _, def := range reporting.Catalog() {
			table.Append([]string{def.ID, def.Title, def.Description})
		}
		table.Render()
		return nil
	},
}
