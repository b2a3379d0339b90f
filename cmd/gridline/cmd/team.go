package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridlinehq/gridline/internal/cmd/output"
	"github.com/gridlinehq/gridline/internal/cmd/table"
	"github.com/gridlinehq/gridline/pkg/logging"
	"github.com/gridlinehq/gridline/pkg/season"
)

var teamCmd = &cobra.Command{
	Use:   "team <name-or-slug>",
	Short: "Show a team's career or season record",
	Long: `Shows a team's per-season records and stored all-time summary, or a
single season with --season. With --drivers the season's driver line-up is
resolved from the stats document by the team-name containment match, which
tolerates sponsor-prefixed team names.`,
	Args: cobra.MinimumNArgs(1),
	Example: `  gridline team red-bull
  gridline team "Red Bull" --season 2026
  gridline team red-bull --season 2026 --drivers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := season.Slugify(strings.Join(args, " "))
		seasonID, _ := cmd.Flags().GetString("season")
		showDrivers, _ := cmd.Flags().GetBool("drivers")

		client := newFetchClient()
		stats, err := client.Stats(cmd.Context())
		if err != nil {
			loadFailed("team stats", err)
			return nil
		}
		roster, err := client.Roster(cmd.Context())
		if err != nil {
			logging.Warn().Err(err).Msg("Entries unavailable, using derived display names")
		}
		resolver := season.NewResolver(roster)
		views := season.NewViews(stats, resolver)

		formatter, flags, err := formatterFor(cmd)
		if err != nil {
			return err
		}
		tableOut := output.Format(flags.Output) == output.FormatTable

		if showDrivers {
			if seasonID == "" {
				seasonID = views.DefaultSeason()
			}
			return renderTeamDrivers(formatter, tableOut, stats, resolver, slug, seasonID)
		}

		if seasonID != "" {
			return renderSeasonView(formatter, tableOut, views.TeamSeason(slug, seasonID))
		}
		return renderCareerView(formatter, tableOut, views.TeamCareer(slug), nil)
	},
}

func init() {
	teamCmd.Flags().String("season", "", "Show a single season instead of the career view")
	teamCmd.Flags().Bool("drivers", false, "Show the team's drivers for the season")
	rootCmd.AddCommand(teamCmd)
}

// renderTeamDrivers prints the approximate team/season join results.
func renderTeamDrivers(formatter output.Formatter, tableOut bool, stats *season.StatsDocument, resolver *season.Resolver, teamSlug, seasonID string) error {
	drivers := season.DriversForTeamSeason(stats, teamSlug, seasonID)
	if !tableOut {
		return formatter.Format(os.Stdout, drivers)
	}
	if len(drivers) == 0 {
		fmt.Printf("No drivers found for %s in %s.\n", season.DisplayNameFromSlug(teamSlug), seasonID)
		return nil
	}
	fmt.Printf("%s drivers in %s\n", season.DisplayNameFromSlug(teamSlug), seasonID)
	return formatter.Format(os.Stdout, table.TeamSeasonDriversToTableData(drivers, resolver))
}
