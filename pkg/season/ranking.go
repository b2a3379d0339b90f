package season

import "sort"

// EntityKind selects which side of the stats document a leaderboard ranks.
type EntityKind string

const (
	// KindDriver ranks entries of driverStats.
	KindDriver EntityKind = "driver"
	// KindTeam ranks entries of teamStats.
	KindTeam EntityKind = "team"
)

// Standing is one leaderboard row.
type Standing struct {
	Slug        string  `json:"slug"`
	DisplayName string  `json:"displayName"`
	Points      float64 `json:"points"`
}

// TopN returns the top n entities of the given kind ordered strictly
// descending by stored all-time points. The sort is stable over the
// canonical sorted-slug order, so tied entries keep that order. A missing
// allTime record ranks as 0 points rather than excluding the entry. The
// result holds min(n, entities) rows; n <= 0 yields nil.
func TopN(stats *StatsDocument, resolver *Resolver, kind EntityKind, n int) []Standing {
	if stats == nil || n <= 0 {
		return nil
	}

	var standings []Standing
	switch kind {
	case KindTeam:
		for _, slug := range sortedTeamSlugs(stats) {
			standings = append(standings, Standing{
				Slug:        slug,
				DisplayName: DisplayNameFromSlug(slug),
				Points:      allTimePoints(stats.TeamStats[slug].AllTime),
			})
		}
	default:
		for _, slug := range sortedDriverSlugs(stats) {
			standings = append(standings, Standing{
				Slug:        slug,
				DisplayName: resolver.DisplayName(slug),
				Points:      allTimePoints(stats.DriverStats[slug].AllTime),
			})
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points > standings[j].Points
	})

	if len(standings) > n {
		standings = standings[:n]
	}
	return standings
}

func allTimePoints(record *AllTimeRecord) float64 {
	if record == nil {
		return 0
	}
	return record.Points
}
