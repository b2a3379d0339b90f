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

var driverCmd = &cobra.Command{
	Use:   "driver <name-or-slug>",
	Short: "Show a driver's career or season record",
	Long: `Shows a driver's per-season records and stored all-time summary, or a
single season with --season. Feeder series records (e.g. F2) are available
through --series for drivers that have them.

The argument may be a display name or a slug; names are slugified the same
way the documents key them.`,
	Args: cobra.MinimumNArgs(1),
	Example: `  gridline driver max-verstappen
  gridline driver "Max Verstappen" --season 2026
  gridline driver lando-norris --series f2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := season.Slugify(strings.Join(args, " "))
		seasonID, _ := cmd.Flags().GetString("season")
		series, _ := cmd.Flags().GetString("series")

		client := newFetchClient()
		stats, err := client.Stats(cmd.Context())
		if err != nil {
			loadFailed("driver stats", err)
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

		feeder := series != "" && series != season.PrimarySeries
		if feeder {
			if seasonID != "" {
				return renderSeasonView(formatter, tableOut,
					views.DriverFeederSeason(slug, series, seasonID))
			}
			return renderCareerView(formatter, tableOut,
				views.DriverFeederCareer(slug, series), nil)
		}

		if seasonID != "" {
			return renderSeasonView(formatter, tableOut, views.DriverSeason(slug, seasonID))
		}
		return renderCareerView(formatter, tableOut, views.DriverCareer(slug), views)
	},
}

func init() {
	driverCmd.Flags().String("season", "", "Show a single season instead of the career view")
	driverCmd.Flags().String("series", "", "Series to show: f1 (default) or a feeder key like f2")
	rootCmd.AddCommand(driverCmd)
}

// renderCareerView prints a career view or its explicit no-data state. The
// views argument, when non-nil, is used to hint at available feeder series
// after a primary-series table.
func renderCareerView(formatter output.Formatter, tableOut bool, view *season.CareerView, views *season.Views) error {
	if !tableOut {
		return formatter.Format(os.Stdout, view)
	}
	if !view.HasData() {
		fmt.Printf("No %s data for %s.\n", strings.ToUpper(view.Series), view.DisplayName)
		return nil
	}

	fmt.Printf("%s (%s career)\n", view.DisplayName, strings.ToUpper(view.Series))
	if err := formatter.Format(os.Stdout, table.CareerToTableData(view)); err != nil {
		return err
	}

	if views != nil {
		for _, series := range views.FeederSeriesFor(view.Slug) {
			seasons := views.FeederSeasonsFor(view.Slug, series)
			if len(seasons) > 0 {
				fmt.Printf("Feeder series %s available (seasons %s); use --series %s\n",
					strings.ToUpper(series), strings.Join(seasons, ", "), series)
			} else {
				fmt.Printf("Feeder series %s available; use --series %s\n",
					strings.ToUpper(series), series)
			}
		}
	}
	return nil
}

// renderSeasonView prints a single-season view or its explicit
// no-data-for-season state.
func renderSeasonView(formatter output.Formatter, tableOut bool, view *season.SeasonView) error {
	if !tableOut {
		return formatter.Format(os.Stdout, view)
	}
	if !view.HasData() {
		fmt.Printf("No %s data for %s in %s.\n",
			strings.ToUpper(view.Series), view.DisplayName, view.Season)
		return nil
	}
	fmt.Printf("%s (%s %s)\n", view.DisplayName, strings.ToUpper(view.Series), view.Season)
	return formatter.Format(os.Stdout, table.SeasonToTableData(view))
}
