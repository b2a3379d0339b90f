package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViews() *Views {
	return NewViews(testStats(), NewResolver(testRoster()))
}

func TestDriverCareer(t *testing.T) {
	view := testViews().DriverCareer("max-verstappen")

	require.True(t, view.HasData())
	assert.Equal(t, "Max Verstappen", view.DisplayName)
	assert.Equal(t, PrimarySeries, view.Series)

	// Rows sorted season-descending.
	require.Len(t, view.Rows, 2)
	assert.Equal(t, "2026", view.Rows[0].Season)
	assert.Equal(t, "2025", view.Rows[1].Season)

	// The stored all-time summary rides along as given, not recomputed:
	// 575 != 400 + 310 and both stand.
	require.NotNil(t, view.AllTime)
	assert.Equal(t, 575.0, view.AllTime.Points)
}

func TestDriverCareerSeasonRowsWithoutAllTime(t *testing.T) {
	stats := &StatsDocument{
		DriverStats: map[string]DriverStats{
			"some-driver": {
				BySeason: map[string]SeasonRecord{
					"2026": {Points: fp(400), Team: "Red Bull"},
				},
			},
		},
	}
	view := NewViews(stats, NewResolver(nil)).DriverCareer("some-driver")

	require.True(t, view.HasData())
	require.Len(t, view.Rows, 1)
	assert.Equal(t, 400.0, view.Rows[0].Record.PointsValue())
	assert.Nil(t, view.AllTime, "no all-time footer when the document has none")
}

func TestDriverCareerNoData(t *testing.T) {
	view := testViews().DriverCareer("no-such-driver")

	assert.False(t, view.HasData())
	assert.Equal(t, "No Such Driver", view.DisplayName, "derived name even without data")
}

func TestDriverSeason(t *testing.T) {
	views := testViews()

	view := views.DriverSeason("max-verstappen", "2026")
	require.True(t, view.HasData())
	assert.Equal(t, 400.0, view.Record.PointsValue())
	assert.Equal(t, "Oracle Red Bull Racing", view.Record.Team)

	// Absent season is an explicit no-data result, not a zeroed record.
	view = views.DriverSeason("max-verstappen", "2019")
	assert.False(t, view.HasData())
	assert.Nil(t, view.Record)
}

func TestTeamViews(t *testing.T) {
	views := testViews()

	career := views.TeamCareer("red-bull")
	require.True(t, career.HasData())
	assert.Equal(t, "Red Bull", career.DisplayName)
	require.Len(t, career.Rows, 1)
	require.NotNil(t, career.AllTime)
	assert.Equal(t, 7200.0, career.AllTime.Points)

	seasonView := views.TeamSeason("red-bull", "2026")
	require.True(t, seasonView.HasData())
	assert.Equal(t, 580.0, seasonView.Record.PointsValue())

	assert.False(t, views.TeamSeason("red-bull", "2001").HasData())
	assert.False(t, views.TeamCareer("no-such-team").HasData())
}

func TestFeederViews(t *testing.T) {
	views := testViews()

	// Feeder views only offered for drivers that have feeder entries.
	assert.Equal(t, []string{"f2"}, views.FeederSeriesFor("lando-norris"))
	assert.Nil(t, views.FeederSeriesFor("max-verstappen"))

	// Season controls only for seasons present in the feeder's bySeason.
	assert.Equal(t, []string{"2017"}, views.FeederSeasonsFor("lando-norris", "f2"))
	assert.Nil(t, views.FeederSeasonsFor("lando-norris", "f3"))

	career := views.DriverFeederCareer("lando-norris", "f2")
	require.True(t, career.HasData())
	assert.Equal(t, "f2", career.Series)
	require.Len(t, career.Rows, 1)
	assert.Equal(t, 185.0, career.AllTime.Points)

	seasonView := views.DriverFeederSeason("lando-norris", "f2", "2017")
	require.True(t, seasonView.HasData())
	assert.Equal(t, 141.0, seasonView.Record.PointsValue())

	assert.False(t, views.DriverFeederSeason("lando-norris", "f2", "2016").HasData())
	assert.False(t, views.DriverFeederCareer("max-verstappen", "f2").HasData())
}

func TestDefaultSeason(t *testing.T) {
	assert.Equal(t, "2026", testViews().DefaultSeason())

	stats := &StatsDocument{Seasons: []string{"2023", "2024", "2025"}}
	assert.Equal(t, "2025", stats.DefaultSeason(), "last in document order without 2026")

	assert.Equal(t, "", (&StatsDocument{}).DefaultSeason())
	assert.Equal(t, "", NewViews(nil, nil).DefaultSeason())
}

func TestViewsNilDocument(t *testing.T) {
	views := NewViews(nil, nil)

	assert.False(t, views.DriverCareer("max-verstappen").HasData())
	assert.False(t, views.DriverSeason("max-verstappen", "2026").HasData())
	assert.False(t, views.TeamCareer("red-bull").HasData())
	assert.Nil(t, views.FeederSeriesFor("lando-norris"))
}
