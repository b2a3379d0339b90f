// Package table converts engine views into table data for CLI commands.
package table

import (
	"fmt"
	"strconv"

	"github.com/gridlinehq/gridline/internal/cmd/output"
	"github.com/gridlinehq/gridline/pkg/season"
)

// calendarDateFormat renders race dates as day plus short month.
const calendarDateFormat = "02 Jan"

// StandingsToTableData converts a leaderboard to table format.
func StandingsToTableData(standings []season.Standing) output.Data {
	rows := make([][]string, 0, len(standings))
	for i, s := range standings {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.DisplayName,
			s.Slug,
			FormatPoints(s.Points),
		})
	}
	return output.Data{
		Headers: []string{"#", "Name", "Slug", "Points"},
		Rows:    rows,
		ColumnAlignment: []output.Align{
			output.AlignRight, output.AlignLeft, output.AlignLeft, output.AlignRight,
		},
	}
}

// CareerToTableData converts a career view to table format: the per-season
// rows newest first, then the stored all-time summary as a footer row. The
// footer is shown as given even when it disagrees with the rows above it.
func CareerToTableData(view *season.CareerView) output.Data {
	rows := make([][]string, 0, len(view.Rows)+1)
	for _, row := range view.Rows {
		rows = append(rows, seasonRecordRow(row.Season, row.Record))
	}
	if view.AllTime != nil {
		rows = append(rows, []string{
			"All-time",
			FormatPoints(view.AllTime.Points),
			strconv.Itoa(view.AllTime.Wins),
			strconv.Itoa(view.AllTime.Podiums),
			"-", "-", "-", "-",
		})
	}
	return seasonTable(rows)
}

// SeasonToTableData converts a single-season view to table format.
func SeasonToTableData(view *season.SeasonView) output.Data {
	if view.Record == nil {
		return seasonTable(nil)
	}
	return seasonTable([][]string{seasonRecordRow(view.Season, *view.Record)})
}

// TeamSeasonDriversToTableData renders the team/season join results.
func TeamSeasonDriversToTableData(drivers []season.SeasonDriver, resolver *season.Resolver) output.Data {
	rows := make([][]string, 0, len(drivers))
	for _, d := range drivers {
		rows = append(rows, []string{
			resolver.DisplayName(d.DriverSlug),
			d.DriverSlug,
			FormatPoints(d.Record.PointsValue()),
			strconv.Itoa(d.Record.Wins),
			strconv.Itoa(d.Record.Podiums),
			FormatPosition(d.Record.Position),
		})
	}
	return output.Data{
		Headers: []string{"Driver", "Slug", "Points", "Wins", "Podiums", "Pos"},
		Rows:    rows,
		ColumnAlignment: []output.Align{
			output.AlignLeft, output.AlignLeft, output.AlignRight,
			output.AlignRight, output.AlignRight, output.AlignRight,
		},
	}
}

// CalendarToTableData converts the race calendar to table format, in
// document order.
func CalendarToTableData(calendar *season.Calendar) output.Data {
	rows := make([][]string, 0, len(calendar.Races))
	for _, race := range calendar.Races {
		rows = append(rows, []string{
			race.Date.Format(calendarDateFormat),
			race.Name,
			race.City,
			race.Circuit,
		})
	}
	return output.Data{
		Headers: []string{"Date", "Race", "City", "Circuit"},
		Rows:    rows,
	}
}

// RosterTeamsToTableData lists the season's teams.
func RosterTeamsToTableData(roster *season.Roster) output.Data {
	rows := make([][]string, 0, len(roster.Teams))
	for i := range roster.Teams {
		team := &roster.Teams[i]
		rows = append(rows, []string{
			team.Name,
			team.EffectiveSlug(),
			team.Country,
			strconv.Itoa(len(team.Drivers)),
		})
	}
	return output.Data{
		Headers: []string{"Team", "Slug", "Country", "Drivers"},
		Rows:    rows,
		ColumnAlignment: []output.Align{
			output.AlignLeft, output.AlignLeft, output.AlignLeft, output.AlignRight,
		},
	}
}

// RosterDriversToTableData lists every driver with their team.
func RosterDriversToTableData(roster *season.Roster) output.Data {
	var rows [][]string
	for i := range roster.Teams {
		team := &roster.Teams[i]
		for j := range team.Drivers {
			driver := &team.Drivers[j]
			rows = append(rows, []string{
				driver.Name,
				driver.Slug(),
				driver.Nationality,
				team.Name,
			})
		}
	}
	return output.Data{
		Headers: []string{"Driver", "Slug", "Nationality", "Team"},
		Rows:    rows,
	}
}

// SearchToTableData renders search matches as a disambiguation list.
func SearchToTableData(result season.SearchResult) output.Data {
	rows := make([][]string, 0, len(result.Matches))
	for _, m := range result.Matches {
		rows = append(rows, []string{
			m.DriverName,
			m.DriverSlug,
			m.Nationality,
			m.TeamName,
		})
	}
	return output.Data{
		Headers: []string{"Driver", "Slug", "Nationality", "Team"},
		Rows:    rows,
	}
}

// FormatPoints renders a points total without trailing zeros (half points
// exist in historic seasons).
func FormatPoints(points float64) string {
	return strconv.FormatFloat(points, 'f', -1, 64)
}

// FormatPosition renders a nullable championship rank; absent ranks show
// an explicit unknown marker instead of a zero.
func FormatPosition(position *int) string {
	if position == nil {
		return "-"
	}
	return fmt.Sprintf("P%d", *position)
}

func seasonRecordRow(seasonID string, record season.SeasonRecord) []string {
	return []string{
		seasonID,
		FormatPoints(record.PointsValue()),
		strconv.Itoa(record.Wins),
		strconv.Itoa(record.Podiums),
		strconv.Itoa(record.Poles),
		strconv.Itoa(record.FastestLaps),
		FormatPosition(record.Position),
		record.Team,
	}
}

func seasonTable(rows [][]string) output.Data {
	return output.Data{
		Headers: []string{"Season", "Points", "Wins", "Podiums", "Poles", "FL", "Pos", "Team"},
		Rows:    rows,
		ColumnAlignment: []output.Align{
			output.AlignLeft, output.AlignRight, output.AlignRight, output.AlignRight,
			output.AlignRight, output.AlignRight, output.AlignRight, output.AlignLeft,
		},
	}
}
