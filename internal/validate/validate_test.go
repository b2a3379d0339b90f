package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlinehq/gridline/pkg/season"
)

func fp(v float64) *float64 { return &v }

func TestCheckCleanDocuments(t *testing.T) {
	roster := &season.Roster{Teams: []season.Team{
		{Name: "McLaren", Drivers: []season.Driver{{Name: "Lando Norris"}}},
	}}
	stats := &season.StatsDocument{
		DriverStats: map[string]season.DriverStats{
			"lando-norris": {
				AllTime: &season.AllTimeRecord{Points: 350},
				BySeason: map[string]season.SeasonRecord{
					"2026": {Points: fp(280), Team: "McLaren"},
				},
			},
		},
	}

	report := Check(roster, stats)

	assert.True(t, report.Clean())
	assert.Equal(t, 1, report.Summary.EntriesDrivers)
	assert.Equal(t, 1, report.Summary.StatsDrivers)
}

func TestCheckMissingOnBothSides(t *testing.T) {
	roster := &season.Roster{Teams: []season.Team{
		{Name: "Oracle Red Bull Racing", Slug: "red-bull", Drivers: []season.Driver{
			{Name: "Max Verstappen"},
			{Name: "Liam Lawson"},
		}},
	}}
	stats := &season.StatsDocument{
		DriverStats: map[string]season.DriverStats{
			"max-verstappen": {
				AllTime:  &season.AllTimeRecord{Points: 575},
				BySeason: map[string]season.SeasonRecord{"2026": {Points: fp(400), Team: "Red Bull"}},
			},
			"sergio-perez": {
				AllTime:  &season.AllTimeRecord{Points: 120},
				BySeason: map[string]season.SeasonRecord{"2024": {Points: fp(50), Team: "Red Bull"}},
			},
		},
	}

	report := Check(roster, stats)

	assert.False(t, report.Clean())

	require.Len(t, report.MissingInStats, 1)
	assert.Equal(t, "liam-lawson", report.MissingInStats[0].Slug)
	assert.Equal(t, "Liam Lawson", report.MissingInStats[0].Name)
	assert.Equal(t, "red-bull", report.MissingInStats[0].Team)

	require.Len(t, report.MissingInEntries, 1)
	assert.Equal(t, "sergio-perez", report.MissingInEntries[0].Slug)
}

func TestCheckMissingFields(t *testing.T) {
	roster := &season.Roster{}
	stats := &season.StatsDocument{
		DriverStats: map[string]season.DriverStats{
			"no-sections": {},
			"gappy-seasons": {
				AllTime: &season.AllTimeRecord{},
				BySeason: map[string]season.SeasonRecord{
					"2024": {Team: "Alpine"},            // points absent
					"2025": {Points: fp(12)},            // team absent
					"2026": {Points: fp(30), Team: "A"}, // complete
				},
			},
		},
	}

	report := Check(roster, stats)

	require.Len(t, report.DriversWithMissingFields, 2)

	byDriver := map[string]FieldFindings{}
	for _, f := range report.DriversWithMissingFields {
		byDriver[f.Slug] = f
	}

	noSections := byDriver["no-sections"]
	assert.ElementsMatch(t, []string{"allTime", "bySeason"}, noSections.Missing)
	assert.Empty(t, noSections.SeasonsMissing)

	gappy := byDriver["gappy-seasons"]
	assert.Empty(t, gappy.Missing)
	require.Len(t, gappy.SeasonsMissing, 2)
	assert.Equal(t, "2024", gappy.SeasonsMissing[0].Season)
	assert.Equal(t, []string{"points"}, gappy.SeasonsMissing[0].Missing)
	assert.Equal(t, "2025", gappy.SeasonsMissing[1].Season)
	assert.Equal(t, []string{"team"}, gappy.SeasonsMissing[1].Missing)
}

func TestCheckNilDocuments(t *testing.T) {
	report := Check(nil, nil)

	assert.True(t, report.Clean())
	assert.Equal(t, 0, report.Summary.EntriesDrivers)
	assert.Equal(t, 0, report.Summary.StatsDrivers)
}
