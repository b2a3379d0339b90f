package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridlinehq/gridline/internal/cmd/output"
	"github.com/gridlinehq/gridline/internal/cmd/table"
	"github.com/gridlinehq/gridline/pkg/logging"
	"github.com/gridlinehq/gridline/pkg/season"
)

var standingsCmd = &cobra.Command{
	Use:     "standings [drivers|teams]",
	Short:   "Show all-time leaderboards",
	Aliases: []string{"top"},
	Args:    cobra.MaximumNArgs(1),
	Example: `  gridline standings                # Top 5 drivers by all-time points
  gridline standings teams          # Top 5 teams
  gridline standings drivers --top 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := season.KindDriver
		if len(args) == 1 {
			switch args[0] {
			case "drivers", "driver":
			case "teams", "team":
				kind = season.KindTeam
			default:
				return fmt.Errorf("unknown standings kind %q: must be drivers or teams", args[0])
			}
		}
		top, _ := cmd.Flags().GetInt("top")

		client := newFetchClient()
		stats, err := client.Stats(cmd.Context())
		if err != nil {
			loadFailed("standings", err)
			return nil
		}

		// Roster failure only costs display names; derived names cover it.
		roster, err := client.Roster(cmd.Context())
		if err != nil {
			logging.Warn().Err(err).Msg("Entries unavailable, using derived display names")
		}
		resolver := season.NewResolver(roster)

		standings := season.TopN(stats, resolver, kind, top)

		formatter, flags, err := formatterFor(cmd)
		if err != nil {
			return err
		}
		var data any
		if output.Format(flags.Output) == output.FormatTable {
			data = table.StandingsToTableData(standings)
		} else {
			data = standings
		}
		if !flags.Quiet && output.Format(flags.Output) == output.FormatTable {
			fmt.Fprintf(os.Stderr, "Top %d %ss by all-time points\n", len(standings), kind)
		}
		return formatter.Format(os.Stdout, data)
	},
}

func init() {
	standingsCmd.Flags().Int("top", 5, "Number of entries to show")
	rootCmd.AddCommand(standingsCmd)
}
