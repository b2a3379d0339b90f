package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlinehq/gridline/pkg/season"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "575", FormatPoints(575))
	assert.Equal(t, "287.5", FormatPoints(287.5))
	assert.Equal(t, "0", FormatPoints(0))
}

func TestFormatPosition(t *testing.T) {
	assert.Equal(t, "-", FormatPosition(nil), "absent rank shows the unknown marker")
	assert.Equal(t, "P1", FormatPosition(ip(1)))
}

func TestCareerToTableDataWithFooter(t *testing.T) {
	view := &season.CareerView{
		Slug:        "max-verstappen",
		DisplayName: "Max Verstappen",
		Series:      season.PrimarySeries,
		Rows: []season.SeasonRow{
			{Season: "2026", Record: season.SeasonRecord{Points: fp(400), Wins: 9, Position: ip(1), Team: "Oracle Red Bull Racing"}},
		},
		AllTime: &season.AllTimeRecord{Points: 575, Wins: 61, Podiums: 112},
	}

	data := CareerToTableData(view)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "2026", data.Rows[0][0])
	assert.Equal(t, "400", data.Rows[0][1])
	assert.Equal(t, "P1", data.Rows[0][6])
	assert.Equal(t, "All-time", data.Rows[1][0])
	assert.Equal(t, "575", data.Rows[1][1])
}

func TestCareerToTableDataWithoutAllTime(t *testing.T) {
	view := &season.CareerView{
		Slug:   "some-driver",
		Series: season.PrimarySeries,
		Rows: []season.SeasonRow{
			{Season: "2026", Record: season.SeasonRecord{Points: fp(400), Team: "Red Bull"}},
		},
	}

	data := CareerToTableData(view)

	require.Len(t, data.Rows, 1, "no all-time footer line without a stored record")
	assert.Equal(t, "2026", data.Rows[0][0])
}

func TestStandingsToTableData(t *testing.T) {
	data := StandingsToTableData([]season.Standing{
		{Slug: "max-verstappen", DisplayName: "Max Verstappen", Points: 575},
		{Slug: "lando-norris", DisplayName: "Lando Norris", Points: 350},
	})

	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"1", "Max Verstappen", "max-verstappen", "575"}, data.Rows[0])
	assert.Equal(t, []string{"2", "Lando Norris", "lando-norris", "350"}, data.Rows[1])
}

func TestSeasonToTableDataNoData(t *testing.T) {
	data := SeasonToTableData(&season.SeasonView{Season: "2019"})
	assert.Empty(t, data.Rows)
}

func TestTeamSeasonDriversToTableData(t *testing.T) {
	drivers := []season.SeasonDriver{
		{DriverSlug: "max-verstappen", Record: season.SeasonRecord{Points: fp(400), Wins: 9}},
	}

	data := TeamSeasonDriversToTableData(drivers, season.NewResolver(nil))

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "Max Verstappen", data.Rows[0][0], "derived name from a nil-roster resolver")
	assert.Equal(t, "400", data.Rows[0][2])
	assert.Equal(t, "-", data.Rows[0][5])
}
