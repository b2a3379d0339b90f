package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridlinehq/gridline/internal/cmd/output"
	"github.com/gridlinehq/gridline/internal/cmd/table"
	"github.com/gridlinehq/gridline/pkg/season"
)

// overviewTopN matches the front page's Top 5 lists.
const overviewTopN = 5

// overviewDocument is the structured form of the front page for
// json/yaml output. Sections a document failure emptied are omitted.
type overviewDocument struct {
	TopDrivers []season.Standing  `json:"topDrivers,omitempty"`
	TopTeams   []season.Standing  `json:"topTeams,omitempty"`
	Races      []season.RaceEvent `json:"races,omitempty"`
}

var overviewCmd = &cobra.Command{
	Use:     "overview",
	Short:   "Show the season front page: top drivers, top teams, calendar",
	Aliases: []string{"home"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// One concurrent snapshot; each section renders from its own
		// document and fails alone.
		snap := newFetchClient().Snapshot(cmd.Context())
		resolver := season.NewResolver(snap.Roster)

		formatter, flags, err := formatterFor(cmd)
		if err != nil {
			return err
		}

		if output.Format(flags.Output) != output.FormatTable {
			doc := overviewDocument{}
			if snap.StatsErr == nil {
				doc.TopDrivers = season.TopN(snap.Stats, resolver, season.KindDriver, overviewTopN)
				doc.TopTeams = season.TopN(snap.Stats, resolver, season.KindTeam, overviewTopN)
			}
			if snap.CalendarErr == nil && snap.Calendar != nil {
				doc.Races = snap.Calendar.Races
			}
			return formatter.Format(os.Stdout, doc)
		}

		if snap.StatsErr != nil {
			loadFailed("standings", snap.StatsErr)
		} else {
			fmt.Println("Top drivers")
			if err := formatter.Format(os.Stdout,
				table.StandingsToTableData(season.TopN(snap.Stats, resolver, season.KindDriver, overviewTopN))); err != nil {
				return err
			}
			fmt.Println("Top teams")
			if err := formatter.Format(os.Stdout,
				table.StandingsToTableData(season.TopN(snap.Stats, resolver, season.KindTeam, overviewTopN))); err != nil {
				return err
			}
		}

		if snap.CalendarErr != nil {
			loadFailed("calendar", snap.CalendarErr)
			return nil
		}
		fmt.Println("Calendar")
		return formatter.Format(os.Stdout, table.CalendarToTableData(snap.Calendar))
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
