package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func testRoster() *Roster {
	return &Roster{Teams: []Team{
		{
			Name:    "Oracle Red Bull Racing",
			Country: "Austria",
			Slug:    "red-bull",
			Drivers: []Driver{
				{Name: "Max Verstappen", Nationality: "Dutch"},
				{Name: "Liam Lawson", Nationality: "New Zealander"},
			},
		},
		{
			Name:    "McLaren",
			Country: "United Kingdom",
			Drivers: []Driver{
				{Name: "Lando Norris", Nationality: "British"},
				{Name: "Oscar Piastri", Nationality: "Australian"},
			},
		},
	}}
}

func testStats() *StatsDocument {
	return &StatsDocument{
		Seasons: []string{"2024", "2025", "2026"},
		DriverStats: map[string]DriverStats{
			"max-verstappen": {
				AllTime: &AllTimeRecord{Points: 575, Wins: 61, Podiums: 112},
				BySeason: map[string]SeasonRecord{
					"2025": {Points: fp(310), Wins: 6, Team: "Red Bull Racing", Position: ip(2)},
					"2026": {Points: fp(400), Wins: 9, Team: "Oracle Red Bull Racing", Position: ip(1)},
				},
			},
			"lando-norris": {
				AllTime: &AllTimeRecord{Points: 350, Wins: 8, Podiums: 30},
				BySeason: map[string]SeasonRecord{
					"2026": {Points: fp(280), Wins: 4, Team: "McLaren", Position: ip(2)},
				},
				Feeder: map[string]FeederSeries{
					"f2": {
						AllTime: &AllTimeRecord{Points: 185, Wins: 9, Podiums: 15},
						BySeason: map[string]SeasonRecord{
							"2017": {Points: fp(141), Wins: 1},
						},
					},
				},
			},
			// Present in stats only; the roster knows nothing about them.
			"sergio-perez": {
				AllTime: &AllTimeRecord{Points: 120, Wins: 1, Podiums: 5},
			},
		},
		TeamStats: map[string]TeamStats{
			"red-bull": {
				AllTime: &AllTimeRecord{Points: 7200, Wins: 122, Podiums: 280},
				BySeason: map[string]SeasonRecord{
					"2026": {Points: fp(580), Wins: 10, Position: ip(1)},
				},
			},
			"mclaren": {
				AllTime: &AllTimeRecord{Points: 6900, Wins: 190, Podiums: 520},
			},
			// No allTime at all; must rank as zero, not be dropped.
			"alpine": {},
		},
	}
}

func TestResolverResolveDisplay(t *testing.T) {
	resolver := NewResolver(testRoster())

	id, ok := resolver.ResolveDisplay("max-verstappen")
	require.True(t, ok)
	assert.Equal(t, "Max Verstappen", id.DisplayName)
	assert.Equal(t, "red-bull", id.TeamSlug)

	// Team slug derived from the name when the document omits it.
	id, ok = resolver.ResolveDisplay("oscar-piastri")
	require.True(t, ok)
	assert.Equal(t, "mclaren", id.TeamSlug)

	_, ok = resolver.ResolveDisplay("sergio-perez")
	assert.False(t, ok)
}

func TestResolverDisplayNameFallback(t *testing.T) {
	resolver := NewResolver(testRoster())

	assert.Equal(t, "Max Verstappen", resolver.DisplayName("max-verstappen"))
	assert.Equal(t, "Sergio Perez", resolver.DisplayName("sergio-perez"))
	assert.Equal(t, "Odd Slug", resolver.DisplayName("--odd--slug-"))
	assert.Equal(t, "", resolver.DisplayName(""))
}

func TestResolverNilRoster(t *testing.T) {
	resolver := NewResolver(nil)

	_, ok := resolver.ResolveDisplay("max-verstappen")
	assert.False(t, ok)
	assert.Equal(t, "Max Verstappen", resolver.DisplayName("max-verstappen"))
}

func TestTeamNameMatches(t *testing.T) {
	tests := []struct {
		name        string
		teamSlug    string
		displayName string
		want        bool
	}{
		{"sponsor-prefixed name contains slug", "red-bull", "Oracle Red Bull Racing", true},
		{"exact", "mclaren", "McLaren", true},
		{"slug contains name", "oracle-red-bull-racing", "Red Bull", true},
		{"unrelated", "red-bull", "McLaren", false},
		{"empty name", "red-bull", "", false},
		{"empty slug", "", "McLaren", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TeamNameMatches(tt.teamSlug, tt.displayName))
		})
	}
}

func TestDriversForTeamSeason(t *testing.T) {
	stats := testStats()

	drivers := DriversForTeamSeason(stats, "red-bull", "2026")
	require.Len(t, drivers, 1)
	assert.Equal(t, "max-verstappen", drivers[0].DriverSlug)
	assert.Equal(t, 400.0, drivers[0].Record.PointsValue())

	// Same team under its older name variant in 2025.
	drivers = DriversForTeamSeason(stats, "red-bull", "2025")
	require.Len(t, drivers, 1)
	assert.Equal(t, "max-verstappen", drivers[0].DriverSlug)

	// Season nobody has a record for.
	assert.Empty(t, DriversForTeamSeason(stats, "red-bull", "1999"))

	// Unknown team.
	assert.Empty(t, DriversForTeamSeason(stats, "no-such-team", "2026"))

	// Nil document degrades to empty.
	assert.Empty(t, DriversForTeamSeason(nil, "red-bull", "2026"))
}
