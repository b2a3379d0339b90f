package season

import "strings"

// SearchOutcome tells the caller which cardinality case a query hit, so the
// UI layer can pick between a no-results message, direct navigation, or a
// disambiguation list.
type SearchOutcome string

const (
	// SearchNoResults means the query matched nothing.
	SearchNoResults SearchOutcome = "none"
	// SearchSingleMatch means the query resolved to exactly one driver.
	SearchSingleMatch SearchOutcome = "single"
	// SearchMultipleMatches means the query needs disambiguation.
	SearchMultipleMatches SearchOutcome = "multiple"
)

// SearchMatch is one resolved {team, driver} pair.
type SearchMatch struct {
	TeamName    string `json:"teamName"`
	TeamSlug    string `json:"teamSlug"`
	DriverName  string `json:"driverName"`
	DriverSlug  string `json:"driverSlug"`
	Nationality string `json:"nationality"`
}

// SearchResult is the full outcome of a roster query.
type SearchResult struct {
	Outcome SearchOutcome `json:"outcome"`
	Matches []SearchMatch `json:"matches,omitempty"`
}

// FindDrivers resolves a free-text query against the roster by
// case-insensitive substring match on driver display names, in roster
// order. Stateless and idempotent for a given roster snapshot; a nil roster
// behaves as an empty one.
func FindDrivers(roster *Roster, query string) SearchResult {
	result := SearchResult{Outcome: SearchNoResults}
	if roster == nil {
		return result
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	for i := range roster.Teams {
		team := &roster.Teams[i]
		for j := range team.Drivers {
			driver := &team.Drivers[j]
			if !strings.Contains(strings.ToLower(driver.Name), needle) {
				continue
			}
			result.Matches = append(result.Matches, SearchMatch{
				TeamName:    team.Name,
				TeamSlug:    team.EffectiveSlug(),
				DriverName:  driver.Name,
				DriverSlug:  driver.Slug(),
				Nationality: driver.Nationality,
			})
		}
	}

	switch len(result.Matches) {
	case 0:
	case 1:
		result.Outcome = SearchSingleMatch
	default:
		result.Outcome = SearchMultipleMatches
	}
	return result
}
