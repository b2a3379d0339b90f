package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridlinehq/gridline/internal/cmd/output"
	"github.com/gridlinehq/gridline/internal/cmd/table"
)

var rosterCmd = &cobra.Command{
	Use:     "roster [teams|drivers]",
	Short:   "Show the season's teams and drivers",
	Aliases: []string{"entries"},
	Args:    cobra.MaximumNArgs(1),
	Example: `  gridline roster           # Teams with country and driver count
  gridline roster drivers   # Every driver with nationality and team`,
	RunE: func(cmd *cobra.Command, args []string) error {
		listDrivers := false
		if len(args) == 1 {
			switch args[0] {
			case "teams", "team":
			case "drivers", "driver":
				listDrivers = true
			default:
				return fmt.Errorf("unknown roster listing %q: must be teams or drivers", args[0])
			}
		}

		client := newFetchClient()
		roster, err := client.Roster(cmd.Context())
		if err != nil {
			loadFailed("roster", err)
			return nil
		}

		formatter, flags, err := formatterFor(cmd)
		if err != nil {
			return err
		}
		if output.Format(flags.Output) != output.FormatTable {
			return formatter.Format(os.Stdout, roster)
		}
		if listDrivers {
			return formatter.Format(os.Stdout, table.RosterDriversToTableData(roster))
		}
		return formatter.Format(os.Stdout, table.RosterTeamsToTableData(roster))
	},
}

func init() {
	rootCmd.AddCommand(rosterCmd)
}
