package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gridlinehq/gridline/internal/cmd/output"
	"github.com/gridlinehq/gridline/internal/cmd/table"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Short:   "Show the season race calendar",
	Aliases: []string{"races"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client := newFetchClient()
		calendar, err := client.Calendar(cmd.Context())
		if err != nil {
			loadFailed("calendar", err)
			return nil
		}

		formatter, flags, err := formatterFor(cmd)
		if err != nil {
			return err
		}
		if output.Format(flags.Output) == output.FormatTable {
			return formatter.Format(os.Stdout, table.CalendarToTableData(calendar))
		}
		return formatter.Format(os.Stdout, calendar)
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
